// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/spf13/cobra"
	"github.com/virinco/vicscope/pkg/vicpack"
)

// mqttQuiesce is the number of milliseconds to wait for in-flight publishes
// on disconnect
const mqttQuiesce = 250

var (
	mqttBroker   string
	mqttTopic    string
	mqttClientID string
	forwardQoS   int
)

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Republish decoded packet exports to an MQTT broker",
	Long: `Decode packets from a live feed and publish each export to MQTT.

Every successfully decoded packet is published as one message on the given
topic, JSON-encoded by default or CBOR with --encoding cbor. Decode failures
are logged and skipped so a noisy feed does not stop the forwarder.

Example:
  vicscope forward --port /dev/ttyUSB0 --broker tcp://localhost:1883 --topic vicpack/export`,
	RunE: runForward,
}

func init() {
	rootCmd.AddCommand(forwardCmd)
	forwardCmd.Flags().StringVar(&mqttBroker, "broker", "", "MQTT broker URL (tcp://host:port)")
	forwardCmd.Flags().StringVar(&mqttTopic, "topic", "vicpack/export", "MQTT topic for exports")
	forwardCmd.Flags().StringVar(&mqttClientID, "client-id", "vicscope", "MQTT client id")
	forwardCmd.Flags().IntVar(&forwardQoS, "qos", 0, "MQTT QoS level (0-2)")
	forwardCmd.Flags().StringVar(&exportEncoding, "encoding", "json", "Export encoding: json or cbor")
}

func runForward(cmd *cobra.Command, args []string) error {
	if mqttBroker == "" {
		return fmt.Errorf("--broker must be specified")
	}
	if exportEncoding != "json" && exportEncoding != "cbor" {
		return fmt.Errorf("unsupported encoding: %s (use json or cbor)", exportEncoding)
	}
	if forwardQoS < 0 || forwardQoS > 2 {
		return fmt.Errorf("invalid QoS level: %d", forwardQoS)
	}

	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	opts := mqtt.NewClientOptions().
		AddBroker(mqttBroker).
		SetClientID(mqttClientID).
		SetConnectTimeout(10 * time.Second).
		SetAutoReconnect(true)
	client := mqtt.NewClient(opts)

	t := client.Connect()
	<-t.Done()
	if err := t.Error(); err != nil {
		return fmt.Errorf("failed to connect to broker %s: %v", mqttBroker, err)
	}
	defer client.Disconnect(mqttQuiesce)

	fmt.Printf("Vicscope - Export Forwarder\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Broker: %s, topic: %s (%s)\n", mqttBroker, mqttTopic, exportEncoding)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	stats := vicpack.NewStatistics()

	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		p, exp, err := decodePacket(line)
		if err != nil {
			stats.Update(p, err, 0)
			log.Printf("Decode error: %v", err)
			continue
		}
		stats.Update(p, nil, vicpack.UnknownTypeCount(exp))

		var payload []byte
		if exportEncoding == "cbor" {
			payload, err = exp.EncodeCBOR()
		} else {
			payload, err = exp.EncodeJSON()
		}
		if err != nil {
			log.Printf("Encode error: %v", err)
			continue
		}

		token := client.Publish(mqttTopic, byte(forwardQoS), false, payload)
		// The publish is asynchronous; surface errors without blocking the feed
		go func(t mqtt.Token) {
			<-t.Done()
			if err := t.Error(); err != nil {
				log.Printf("Publish error: %v", err)
			}
		}(token)
	}

	if err := scanner.Err(); err != nil {
		if err == ErrConnectionClosed {
			log.Printf("Connection closed")
		} else {
			log.Printf("Read error: %v", err)
		}
	}

	stats.CalculateRates()
	fmt.Print(stats.String())
	return nil
}
