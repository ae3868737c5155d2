// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "errors"

// Decoder holds one packet at a time, mirroring the add/export/print
// surface of the device tooling. Add replaces the held packet, so a Decoder
// must not be shared between concurrent decode operations: use one Decoder
// per goroutine or serialize access. The registry itself is stateless and
// shared safely.
type Decoder struct {
	packet *Packet
}

// NewDecoder returns an empty decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Add parses a hex-encoded packet and makes it the decoder's current
// packet, replacing any previous one.
func (d *Decoder) Add(hexstr string) error {
	p, err := ParseHex(hexstr)
	if err != nil {
		return err
	}
	d.packet = p
	return nil
}

// Packet returns the current packet, or nil if none has been added
func (d *Decoder) Packet() *Packet {
	return d.packet
}

// Export groups the current packet into sensor-slot records
func (d *Decoder) Export() (*Export, error) {
	if d.packet == nil {
		return nil, errors.New("no packet added")
	}
	return d.packet.Export()
}

// Format renders the current packet as a trace
func (d *Decoder) Format(opts RenderOptions) (string, error) {
	if d.packet == nil {
		return "", errors.New("no packet added")
	}
	return FormatPacket(d.packet, opts)
}
