// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"errors"
	"reflect"
	"testing"

	"github.com/fxamacker/cbor/v2"
)

// driverValue packs a driver-info measurement value
func driverValue(driver, slot, index int, enabled bool) uint32 {
	v := uint32(driver)<<24 | uint32(slot)<<16 | uint32(index)<<8
	if enabled {
		v |= 1
	}
	return v
}

func TestExport_SamplePacket(t *testing.T) {
	p, err := ParseHex(samplePacket)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if exp.PacketID != 1 || exp.RequestID != 0 {
		t.Errorf("Header fields wrong: packetId=%d requestId=%d", exp.PacketID, exp.RequestID)
	}
	if len(exp.Sensors) != 1 {
		t.Fatalf("Expected 1 sensor slot, got %d", len(exp.Sensors))
	}

	s := exp.Sensors[0]
	if s.Slot != 0 || s.SensorType != "SENSOR_DEBUG" || s.Index != 2 || !s.Enabled {
		t.Errorf("Sensor slot wrong: %+v", s)
	}
	if len(s.Measurements) != 2 {
		t.Fatalf("Expected 2 measurements, got %d", len(s.Measurements))
	}
	for i, m := range s.Measurements {
		if m.Key != "gpio_value" {
			t.Errorf("Measurement %d key = %q, want gpio_value", i, m.Key)
		}
	}
}

func TestExport_SlotGrouping(t *testing.T) {
	hexstr := buildPacketHex(1, 0, 3, []testMeas{
		{TypeDriverInfo, driverValue(1, 1, 0, true)},
		{TypeTemperature, 0x00001234},
		{TypeDriverInfo, driverValue(2, 2, 0, true)},
	})
	p, err := ParseHex(hexstr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if len(exp.Sensors) != 2 {
		t.Fatalf("Expected 2 sensor slots, got %d", len(exp.Sensors))
	}
	first, second := exp.Sensors[0], exp.Sensors[1]
	if first.Slot != 1 || first.SensorType != "SENSOR_SI7050_TEMP" {
		t.Errorf("First slot wrong: %+v", first)
	}
	if len(first.Measurements) != 1 || first.Measurements[0].Key != "temperature" {
		t.Errorf("First slot measurements wrong: %+v", first.Measurements)
	}
	if second.Slot != 2 || second.SensorType != "SENSOR_SI7020_HUMIDITY" {
		t.Errorf("Second slot wrong: %+v", second)
	}
	if len(second.Measurements) != 0 {
		t.Errorf("Trailing slot should be empty, got %+v", second.Measurements)
	}
}

func TestExport_LeadingDataGetsDefaultSlot(t *testing.T) {
	hexstr := buildPacketHex(1, 0, 2, []testMeas{
		{TypeValueRaw, 7},
		{TypeDriverInfo, driverValue(16, 0, 0, true)},
	})
	p, err := ParseHex(hexstr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}

	if len(exp.Sensors) != 2 {
		t.Fatalf("Expected 2 sensor slots, got %d", len(exp.Sensors))
	}
	def := exp.Sensors[0]
	if def.Slot != DefaultSlot || def.SensorType != DefaultSensorType {
		t.Errorf("Default slot wrong: %+v", def)
	}
	if len(def.Measurements) != 1 || def.Measurements[0].Key != "value_raw" {
		t.Errorf("Default slot measurements wrong: %+v", def.Measurements)
	}
}

func TestExport_UnknownTypeSentinel(t *testing.T) {
	m := DecodeMeasurement(250, 12345)
	if m.Key != "n/a" {
		t.Errorf("Key = %q, want n/a", m.Key)
	}
	if len(m.Value) != 1 || m.Value[0] != 0 {
		t.Errorf("Value = %v, want [0]", m.Value)
	}
	if len(m.Unit) != 1 || m.Unit[0] != "n/a" {
		t.Errorf("Unit = %v, want [n/a]", m.Unit)
	}
}

func TestExport_UnknownSensorIndex(t *testing.T) {
	hexstr := buildPacketHex(1, 0, 1, []testMeas{
		{TypeDriverInfo, driverValue(200, 0, 0, true)},
	})
	p, err := ParseHex(hexstr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if _, err := p.Export(); !errors.Is(err, ErrUnknownSensorIndex) {
		t.Errorf("Expected ErrUnknownSensorIndex, got %v", err)
	}
}

func TestExport_ZeroMeasurements(t *testing.T) {
	p, err := ParseHex(buildPacketHex(3, 1, 0, nil))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if len(exp.Sensors) != 0 {
		t.Errorf("Expected no sensors, got %d", len(exp.Sensors))
	}
	if exp.PacketID != 3 || exp.RequestID != 1 {
		t.Errorf("Header fields wrong: %+v", exp)
	}
}

func TestExport_Idempotent(t *testing.T) {
	p, err := ParseHex(samplePacket)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	first, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	second, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Repeated exports of the same packet must be identical")
	}
}

func TestExport_JSONShape(t *testing.T) {
	hexstr := buildPacketHex(7, 9, 2, []testMeas{
		{TypeDriverInfo, driverValue(16, 0, 2, true)},
		{TypeGPIOValue, 5},
	})
	p, err := ParseHex(hexstr)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	data, err := exp.EncodeJSON()
	if err != nil {
		t.Fatalf("EncodeJSON error: %v", err)
	}

	expected := `{"sensors":[{"slot":0,"sensorType":"SENSOR_DEBUG","index":2,` +
		`"measurements":[{"key":"gpio_value","value":[5],"unit":[""]}]}],` +
		`"time":{},"packetId":7,"requestId":9}`
	if string(data) != expected {
		t.Errorf("JSON shape mismatch:\n got: %s\nwant: %s", data, expected)
	}
}

func TestExport_CBORRoundTrip(t *testing.T) {
	p, err := ParseHex(samplePacket)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	exp, err := p.Export()
	if err != nil {
		t.Fatalf("Export error: %v", err)
	}
	data, err := exp.EncodeCBOR()
	if err != nil {
		t.Fatalf("EncodeCBOR error: %v", err)
	}

	var decoded Export
	if err := cbor.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if decoded.PacketID != exp.PacketID || decoded.RequestID != exp.RequestID {
		t.Errorf("Header fields lost in round trip: %+v", decoded)
	}
	if len(decoded.Sensors) != len(exp.Sensors) {
		t.Errorf("Sensor count lost in round trip: %d != %d", len(decoded.Sensors), len(exp.Sensors))
	}
}
