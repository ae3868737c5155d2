// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "fmt"

// RawMeasurement is one (type, value) record from the measurement region.
// The value is composed big-endian from the four bytes following the type
// byte.
type RawMeasurement struct {
	Index int
	Type  uint8
	Value uint32
}

// MeasurementIterator walks the fixed-stride measurement region of a packet.
// It follows the bufio.Scanner shape: Next advances and reports whether a
// measurement is available, Measurement returns the current record, and Err
// reports the first failure. The sequence is finite (the declared
// measurement count) and not restartable; obtain a fresh iterator from
// Packet.Measurements for each pass.
type MeasurementIterator struct {
	pck  *Packet
	next int
	cur  RawMeasurement
	err  error
}

// Measurements returns an iterator over the packet's measurement records
func (p *Packet) Measurements() *MeasurementIterator {
	return &MeasurementIterator{pck: p}
}

// Next advances to the next measurement. It returns false when the declared
// count is exhausted or when the next record would read past the end of the
// byte sequence; the latter is reported by Err as ErrOutOfRange.
func (it *MeasurementIterator) Next() bool {
	if it.err != nil || it.next >= int(it.pck.measCount) {
		return false
	}
	off := Stride*it.next + HeaderLen
	if off+4 >= len(it.pck.raw) {
		it.err = fmt.Errorf("%w: measurement %d of %d needs bytes %d..%d, packet has %d",
			ErrOutOfRange, it.next, it.pck.measCount, off, off+4, len(it.pck.raw))
		return false
	}
	raw := it.pck.raw
	it.cur = RawMeasurement{
		Index: it.next,
		Type:  raw[off],
		Value: uint32(raw[off+1])<<24 | uint32(raw[off+2])<<16 | uint32(raw[off+3])<<8 | uint32(raw[off+4]),
	}
	it.next++
	return true
}

// Measurement returns the record produced by the last successful Next
func (it *MeasurementIterator) Measurement() RawMeasurement {
	return it.cur
}

// Err returns the first error encountered while iterating, or nil
func (it *MeasurementIterator) Err() error {
	return it.err
}
