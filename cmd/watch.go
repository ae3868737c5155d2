// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/virinco/vicscope/pkg/vicpack"
)

var statsInterval int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Decode and display packets from a live feed",
	Long: `Continuously decode and display Vicpack packets as they arrive.

Reads newline-terminated hex-encoded packets from a serial port or WebSocket
feed, prints each packet's trace, and shows a statistics summary at a
configurable interval. Decode failures are counted and logged but do not stop
the stream.

Supports both serial and WebSocket connections.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&summaryMode, "summary", false, "Print one-line summaries instead of full traces")
	watchCmd.Flags().BoolVar(&noSIPrefix, "no-prefix", false, "Disable SI prefixes in traces")
	watchCmd.Flags().StringVar(&deviceMAC, "mac", "n/a", "Device address shown in summary lines")
	watchCmd.Flags().StringVar(&timeFormat, "timefmt", "15:04:05", "Time layout for summary lines")
	watchCmd.Flags().IntVar(&statsInterval, "stats-interval", 60, "Statistics summary interval in seconds (0 disables)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	conn, connInfo, err := OpenConnection()
	if err != nil {
		return err
	}
	defer conn.Close()

	fmt.Printf("Vicscope - Packet Watch\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Press Ctrl+C to exit\n\n")

	stats := vicpack.NewStatistics()
	opts := renderOptions()

	var lastStats time.Time
	if statsInterval > 0 {
		lastStats = time.Now()
	}

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

		trace, err := vicpack.FormatPacket(p, opts)
		if err != nil {
			log.Printf("Format error: %v", err)
			continue
		}
		fmt.Println(trace)

		if statsInterval > 0 && time.Since(lastStats) >= time.Duration(statsInterval)*time.Second {
			stats.CalculateRates()
			fmt.Print(stats.String())
			lastStats = time.Now()
		}
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

// decodePacket parses and exports one hex line, so decode failures are
// classified before any output is produced
func decodePacket(line string) (*vicpack.Packet, *vicpack.Export, error) {
	p, err := vicpack.ParseHex(line)
	if err != nil {
		return nil, nil, err
	}
	exp, err := p.Export()
	if err != nil {
		return p, nil, err
	}
	return p, exp, nil
}
