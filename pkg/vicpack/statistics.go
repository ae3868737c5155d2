// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"errors"
	"fmt"
	"time"
)

// Statistics tracks decode outcomes and rates for a stream of packets
type Statistics struct {
	StartTime      time.Time
	LastUpdateTime time.Time

	// Counters
	TotalPackets   uint64
	Decoded        uint64
	MalformedInput uint64
	OutOfRange     uint64
	UnknownSensors uint64
	OtherErrors    uint64
	Measurements   uint64
	UnknownTypes   uint64

	// Rates (calculated)
	PacketRate float64 // packets/sec
	ErrorRate  float64 // errors/sec
}

// NewStatistics creates a new statistics tracker
func NewStatistics() *Statistics {
	now := time.Now()
	return &Statistics{
		StartTime:      now,
		LastUpdateTime: now,
	}
}

// Update records one decode attempt. On success pass the packet and the
// number of unknown-type sentinel measurements in its export; on failure
// pass the error (the packet may be nil when loading itself failed).
func (s *Statistics) Update(p *Packet, decodeErr error, unknownTypes int) {
	s.TotalPackets++

	if decodeErr != nil {
		switch {
		case errors.Is(decodeErr, ErrMalformedInput):
			s.MalformedInput++
		case errors.Is(decodeErr, ErrOutOfRange):
			s.OutOfRange++
		case errors.Is(decodeErr, ErrUnknownSensorIndex):
			s.UnknownSensors++
		default:
			s.OtherErrors++
		}
		s.LastUpdateTime = time.Now()
		return
	}

	s.Decoded++
	if p != nil {
		s.Measurements += uint64(p.MeasurementCount())
	}
	s.UnknownTypes += uint64(unknownTypes)
	s.LastUpdateTime = time.Now()
}

// CalculateRates calculates packet and error rates
func (s *Statistics) CalculateRates() {
	elapsed := time.Since(s.StartTime).Seconds()
	if elapsed > 0 {
		s.PacketRate = float64(s.TotalPackets) / elapsed
		errorCount := s.MalformedInput + s.OutOfRange + s.UnknownSensors + s.OtherErrors
		s.ErrorRate = float64(errorCount) / elapsed
	}
}

// String returns a formatted statistics summary
func (s *Statistics) String() string {
	s.CalculateRates()

	var decodedPercent float64
	if s.TotalPackets > 0 {
		decodedPercent = float64(s.Decoded) * 100.0 / float64(s.TotalPackets)
	}

	elapsed := time.Since(s.StartTime)

	result := fmt.Sprintf("=== Statistics (%.0f seconds) ===\n", elapsed.Seconds())
	result += fmt.Sprintf("Total Packets:   %8d\n", s.TotalPackets)
	result += fmt.Sprintf("Decoded:         %8d (%.1f%%)\n", s.Decoded, decodedPercent)
	result += fmt.Sprintf("Measurements:    %8d\n", s.Measurements)

	if s.MalformedInput > 0 {
		result += fmt.Sprintf("Malformed Input: %8d\n", s.MalformedInput)
	}
	if s.OutOfRange > 0 {
		result += fmt.Sprintf("Out of Range:    %8d\n", s.OutOfRange)
	}
	if s.UnknownSensors > 0 {
		result += fmt.Sprintf("Unknown Sensors: %8d\n", s.UnknownSensors)
	}
	if s.OtherErrors > 0 {
		result += fmt.Sprintf("Other Errors:    %8d\n", s.OtherErrors)
	}
	if s.UnknownTypes > 0 {
		result += fmt.Sprintf("Unknown Types:   %8d\n", s.UnknownTypes)
	}

	result += fmt.Sprintf("Packet Rate:     %8.1f pkts/sec\n", s.PacketRate)
	result += fmt.Sprintf("Error Rate:      %8.1f errors/sec\n", s.ErrorRate)
	result += "================================\n"

	return result
}

// Reset resets all statistics counters
func (s *Statistics) Reset() {
	now := time.Now()
	*s = Statistics{StartTime: now, LastUpdateTime: now}
}

// UnknownTypeCount counts sentinel measurements in an export, for feeding
// Statistics.Update.
func UnknownTypeCount(e *Export) int {
	n := 0
	for _, sensor := range e.Sensors {
		for _, m := range sensor.Measurements {
			if m.Key == "n/a" {
				n++
			}
		}
	}
	return n
}
