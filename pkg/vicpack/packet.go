// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"encoding/hex"
	"fmt"
)

// Packet is one decoded Vicpack telemetry message. A Packet is immutable
// after ParseHex and safe to share between goroutines.
type Packet struct {
	raw       []byte
	id        uint8
	requestID uint8
	measCount uint8
}

// ParseHex decodes a hex-encoded packet (case-insensitive pairs of hex
// digits) and extracts the header fields. It returns ErrMalformedInput for
// odd-length or non-hex input, and ErrOutOfRange when the byte sequence is
// shorter than the packet header. Measurement offsets beyond the header are
// not validated here; they are checked lazily by the measurement iterator.
func ParseHex(s string) (*Packet, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(raw) < HeaderLen {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the %d byte header", ErrOutOfRange, len(raw), HeaderLen)
	}
	return &Packet{
		raw:       raw,
		id:        raw[PacketIndexOffset],
		requestID: raw[PacketRequestOffset],
		measCount: raw[PacketMeasOffset],
	}, nil
}

// ID returns the packet sequence id (header byte 2)
func (p *Packet) ID() uint8 {
	return p.id
}

// RequestID returns the request id (header byte 3)
func (p *Packet) RequestID() uint8 {
	return p.requestID
}

// MeasurementCount returns the declared number of measurements (header byte 4)
func (p *Packet) MeasurementCount() int {
	return int(p.measCount)
}

// Size returns the packet length in bytes
func (p *Packet) Size() int {
	return len(p.raw)
}

// Bytes returns the raw packet bytes. The slice must not be modified.
func (p *Packet) Bytes() []byte {
	return p.raw
}
