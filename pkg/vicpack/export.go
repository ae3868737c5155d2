// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
)

// Measurement is one decoded, unit-annotated measurement. Value and Unit
// have matching arity for multi-output types (switch, iaq, tof).
type Measurement struct {
	Key   string   `json:"key"`
	Value []any    `json:"value"`
	Unit  []string `json:"unit"`
}

// Sensor is one sensor-slot record: a driver-info measurement and the data
// measurements that followed it. The enabled state is carried for callers
// but kept out of the export encoding, whose shape is fixed.
type Sensor struct {
	Slot         int           `json:"slot"`
	SensorType   string        `json:"sensorType"`
	Index        int           `json:"index"`
	Measurements []Measurement `json:"measurements"`
	Enabled      bool          `json:"-" cbor:"-"`
}

// Export is the machine-consumable form of a decoded packet. The time map
// is reserved and always empty.
type Export struct {
	Sensors   []Sensor       `json:"sensors"`
	Time      map[string]any `json:"time"`
	PacketID  int            `json:"packetId"`
	RequestID int            `json:"requestId"`
}

// DecodeMeasurement dispatches a raw measurement through the type registry.
// Unknown type codes are tolerated: they decode to the "n/a" sentinel so a
// packet from newer firmware still exports its known measurements.
func DecodeMeasurement(code uint8, value uint32) Measurement {
	d, ok := registry[code]
	if !ok {
		return Measurement{Key: "n/a", Value: []any{0}, Unit: []string{"n/a"}}
	}
	return Measurement{Key: d.Name, Value: d.Decode(value), Unit: d.Units}
}

// Export groups the packet's measurements into sensor-slot records. Each
// driver-info measurement closes the open slot and starts a new one; data
// measurements before any driver info go into a synthetic default slot so
// nothing is dropped. The final slot is always appended when the sequence
// ends. Export is a pure function of the packet: calling it twice yields
// identical results.
func (p *Packet) Export() (*Export, error) {
	exp := &Export{
		Sensors:   []Sensor{},
		Time:      map[string]any{},
		PacketID:  int(p.id),
		RequestID: int(p.requestID),
	}

	var current *Sensor
	it := p.Measurements()
	for it.Next() {
		m := it.Measurement()
		if m.Type == TypeDriverInfo {
			if current != nil {
				exp.Sensors = append(exp.Sensors, *current)
			}
			info := ParseDriverInfo(m.Value)
			name, err := SensorName(info.Driver)
			if err != nil {
				return nil, err
			}
			current = &Sensor{
				Slot:         info.Slot,
				SensorType:   name,
				Index:        info.Index,
				Enabled:      info.Enabled,
				Measurements: []Measurement{},
			}
			continue
		}
		if current == nil {
			current = &Sensor{
				Slot:         DefaultSlot,
				SensorType:   DefaultSensorType,
				Measurements: []Measurement{},
			}
		}
		current.Measurements = append(current.Measurements, DecodeMeasurement(m.Type, m.Value))
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if current != nil {
		exp.Sensors = append(exp.Sensors, *current)
	}

	return exp, nil
}

// EncodeJSON renders the export in its canonical JSON shape
func (e *Export) EncodeJSON() ([]byte, error) {
	return json.Marshal(e)
}

// EncodeCBOR renders the export as CBOR for compact republication
func (e *Export) EncodeCBOR() ([]byte, error) {
	return cbor.Marshal(e)
}
