// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS
//
// Vicscope - Vicpack Telemetry Packet Analyzer
//
// A CLI tool for decoding and monitoring Vicpack telemetry packets
// in human-readable and machine-consumable formats.

package main

import (
	"os"

	"github.com/virinco/vicscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
