// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Virinco AS

package cmd

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/virinco/vicscope/pkg/vicpack"
)

var (
	summaryMode    bool
	noSIPrefix     bool
	exportMode     bool
	exportEncoding string

	deviceMAC  string
	timeFormat string
)

var decodeCmd = &cobra.Command{
	Use:   "decode [hexstring...]",
	Short: "Decode hex-encoded packets from arguments or stdin",
	Long: `Decode one or more hex-encoded Vicpack packets and print them.

Packets are given as arguments, or read one per line from stdin when no
arguments are present. The default output is the detailed measurement trace;
--summary prints the one-line form and --export prints the machine-readable
export instead (JSON, or hex-encoded CBOR with --encoding cbor).

Examples:
  vicscope decode fa0101000301100002012a000000002a00000000ced399
  cat capture.log | vicscope decode --export`,
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().BoolVar(&summaryMode, "summary", false, "Print one-line summaries instead of full traces")
	decodeCmd.Flags().BoolVar(&noSIPrefix, "no-prefix", false, "Disable SI prefixes in traces")
	decodeCmd.Flags().BoolVar(&exportMode, "export", false, "Print the machine-readable export instead of a trace")
	decodeCmd.Flags().StringVar(&exportEncoding, "encoding", "json", "Export encoding: json or cbor")
	decodeCmd.Flags().StringVar(&deviceMAC, "mac", "n/a", "Device address shown in summary lines")
	decodeCmd.Flags().StringVar(&timeFormat, "timefmt", "15:04:05", "Time layout for summary lines")
}

func runDecode(cmd *cobra.Command, args []string) error {
	if exportEncoding != "json" && exportEncoding != "cbor" {
		return fmt.Errorf("unsupported encoding: %s (use json or cbor)", exportEncoding)
	}

	if len(args) > 0 {
		for _, arg := range args {
			if err := decodeOne(arg); err != nil {
				return err
			}
		}
		return nil
	}

	// No arguments: one packet per stdin line
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := decodeOne(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func decodeOne(hexstr string) error {
	p, err := vicpack.ParseHex(hexstr)
	if err != nil {
		return fmt.Errorf("decode %q: %w", hexstr, err)
	}

	if exportMode {
		exp, err := p.Export()
		if err != nil {
			return fmt.Errorf("export %q: %w", hexstr, err)
		}
		switch exportEncoding {
		case "cbor":
			data, err := exp.EncodeCBOR()
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(data))
		default:
			data, err := exp.EncodeJSON()
			if err != nil {
				return err
			}
			fmt.Println(string(data))
		}
		return nil
	}

	trace, err := vicpack.FormatPacket(p, renderOptions())
	if err != nil {
		return fmt.Errorf("format %q: %w", hexstr, err)
	}
	fmt.Println(trace)
	return nil
}

// renderOptions builds trace options from the shared trace flags
func renderOptions() vicpack.RenderOptions {
	opts := vicpack.DefaultRenderOptions()
	opts.Detail = !summaryMode
	opts.SIPrefix = !noSIPrefix
	opts.MAC = deviceMAC
	opts.TimeLayout = timeFormat
	return opts
}
