// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Config holds optional defaults for connection and trace settings. Values
// only apply to flags the user did not set on the command line.
type Config struct {
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	URL      string `yaml:"url"`
	Username string `yaml:"username"`

	MAC        string `yaml:"mac"`
	TimeFormat string `yaml:"timefmt"`

	Broker   string `yaml:"broker"`
	Topic    string `yaml:"topic"`
	ClientID string `yaml:"client_id"`
}

// LoadConfig reads a YAML config file. A missing file is not an error when
// the path was not explicitly requested.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %v", path, err)
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.vicscope.yaml, or empty when the home
// directory cannot be resolved
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".vicscope.yaml")
}

// loadConfigDefaults seeds unset flags from the config file. Runs as the
// root command's PersistentPreRun so every subcommand sees the merged view.
func loadConfigDefaults(cmd *cobra.Command, args []string) error {
	path := configPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return nil
		}
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if explicit {
			return fmt.Errorf("failed to load config %s: %v", path, err)
		}
		// Implicit default file is optional
		return nil
	}

	flags := cmd.Flags()
	if cfg.Port != "" && !flags.Changed("port") {
		portName = cfg.Port
	}
	if cfg.Baud != 0 && !flags.Changed("baud") {
		baudRate = cfg.Baud
	}
	if cfg.URL != "" && !flags.Changed("url") {
		wsURL = cfg.URL
	}
	if cfg.Username != "" && !flags.Changed("username") {
		wsUsername = cfg.Username
	}
	if cfg.MAC != "" && !flags.Changed("mac") {
		deviceMAC = cfg.MAC
	}
	if cfg.TimeFormat != "" && !flags.Changed("timefmt") {
		timeFormat = cfg.TimeFormat
	}
	if cfg.Broker != "" && !flags.Changed("broker") {
		mqttBroker = cfg.Broker
	}
	if cfg.Topic != "" && !flags.Changed("topic") {
		mqttTopic = cfg.Topic
	}
	if cfg.ClientID != "" && !flags.Changed("client-id") {
		mqttClientID = cfg.ClientID
	}

	return nil
}
