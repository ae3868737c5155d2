// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"fmt"
	"strings"
	"time"
)

// RenderOptions selects the trace form. Options are passed explicitly per
// call; the renderer keeps no state between packets.
type RenderOptions struct {
	// Detail selects the full per-measurement trace; otherwise a one-line
	// summary is produced.
	Detail bool

	// SIPrefix applies engineering-notation prefixes to SI-eligible values
	// in the detailed trace.
	SIPrefix bool

	// TimeLayout is the Go time layout for the summary line's clock field.
	TimeLayout string

	// MAC is the device address string shown in the summary line. The MAC
	// is not carried in the packet; the host supplies it.
	MAC string
}

// DefaultRenderOptions returns the conventional trace configuration:
// summary form, SI prefixes on, wall-clock time, no known device address.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SIPrefix:   true,
		TimeLayout: "15:04:05",
		MAC:        "n/a",
	}
}

// FormatPacket renders a packet as a human-readable trace. In detail mode
// every measurement becomes one CRLF-terminated line between the header
// lines and the "+--+ eop" terminator; the line prefixes and zero-padded
// field widths are a compatibility contract with the device tooling.
func FormatPacket(p *Packet, opts RenderOptions) (string, error) {
	if !opts.Detail {
		return fmt.Sprintf("%s, mac: %s, index: %03d, measurements: %02d, size: %d bytes",
			time.Now().Format(opts.TimeLayout), opts.MAC, p.id, p.measCount, p.Size()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "+--+ id              : %03d \r\n", p.id)
	fmt.Fprintf(&b, "+--+ request id      : %03d \r\n", p.requestID)
	fmt.Fprintf(&b, "+--+ size            : %03d bytes \r\n", p.Size())

	it := p.Measurements()
	for it.Next() {
		m := it.Measurement()
		b.WriteString(FormatMeasurement(m.Type, m.Value, opts))
		b.WriteString("\r\n")
	}
	if err := it.Err(); err != nil {
		return "", err
	}

	b.WriteString("+--+ eop")
	return b.String(), nil
}

// FormatMeasurement renders one measurement line. Driver-info lines use the
// "+--+ " group prefix, everything else nests under "|  +-- ". Types
// outside the registry render as an empty string.
func FormatMeasurement(code uint8, value uint32, opts RenderOptions) string {
	d, ok := registry[code]
	if !ok {
		return ""
	}

	prefix := "|  +-- "
	if code == TypeDriverInfo {
		prefix = "+--+ "
	}

	if d.SI && opts.SIPrefix {
		scaled, si := Scale(asFloat(d.Decode(value)[0]))
		return prefix + fmt.Sprintf(d.Format, scaled) + fmt.Sprintf(" %s%s", si, d.Units[0])
	}

	msg := prefix + fmt.Sprintf(d.Format, d.Decode(value)...) + " "
	return msg + strings.Join(d.Units, ", ")
}

// asFloat widens any numeric decode output for the SI scaler
func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	default:
		return 0
	}
}
