// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import (
	"errors"
	"testing"
)

// ============================================================
// Driver Info Tests
// ============================================================

func TestParseDriverInfo(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		slot    int
		driver  int
		index   int
		enabled bool
	}{
		{"debug sensor slot 0", 0x10000201, 0, 16, 2, true},
		{"temperature sensor slot 1", 0x01010001, 1, 1, 0, true},
		{"disabled sensor", 0x02030400, 3, 2, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseDriverInfo(tt.value)
			if info.Slot != tt.slot || info.Driver != tt.driver || info.Index != tt.index || info.Enabled != tt.enabled {
				t.Errorf("ParseDriverInfo(0x%08X) = %+v", tt.value, info)
			}
		})
	}
}

func TestSensorName(t *testing.T) {
	tests := []struct {
		driver int
		name   string
	}{
		{0, "SENSOR_NO_SENSOR"},
		{1, "SENSOR_SI7050_TEMP"},
		{16, "SENSOR_DEBUG"},
		{23, "SENSOR_SONAR"},
	}
	for _, tt := range tests {
		name, err := SensorName(tt.driver)
		if err != nil {
			t.Errorf("SensorName(%d) error: %v", tt.driver, err)
			continue
		}
		if name != tt.name {
			t.Errorf("SensorName(%d) = %q, want %q", tt.driver, name, tt.name)
		}
	}
}

func TestSensorName_OutOfRange(t *testing.T) {
	for _, driver := range []int{-1, 24, 200} {
		if _, err := SensorName(driver); !errors.Is(err, ErrUnknownSensorIndex) {
			t.Errorf("SensorName(%d): expected ErrUnknownSensorIndex, got %v", driver, err)
		}
	}
}

// ============================================================
// Scalar Conversion Tests
// ============================================================

func TestDecode_Voltages(t *testing.T) {
	tests := []struct {
		name     string
		code     uint8
		value    uint32
		expected float64
	}{
		{"on-die millivolts", TypeInternalBatteryOnDie, 3300, 3.3},
		{"battery microvolts", TypeInternalBattery, 3300000, 3.3},
		{"terminal voltage midscale", TypeVoltage, 0x00000080, 1.5},
		{"terminal vref midscale", TypeVoltageRef, 0x00000080, 1.5},
		{"terminal diff midscale", TypeVoltageDiff, 0x00000080, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Lookup(tt.code)
			if !ok {
				t.Fatalf("no descriptor for type %d", tt.code)
			}
			got := d.Decode(tt.value)[0].(float64)
			if !almostEqual(got, tt.expected, 1e-9) {
				t.Errorf("decode(0x%08X) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDecode_OnDieTemperature(t *testing.T) {
	tests := []struct {
		name     string
		value    uint32
		expected float64
	}{
		{"positive", 2325, 23.25},
		{"negative wraps through signed 16-bit", 0xFFFFFF38, -2.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeOnDieTemperature(tt.value)[0].(float64)
			if !almostEqual(got, tt.expected, 1e-9) {
				t.Errorf("decodeOnDieTemperature(0x%08X) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDecode_ExternalTemperatureHumidity(t *testing.T) {
	// Conversion offsets from the SI7021 datasheet
	if got := decodeExternalTemperature(0)[0].(float64); !almostEqual(got, -46.85, 1e-9) {
		t.Errorf("temperature zero point = %v, want -46.85", got)
	}
	if got := decodeExternalHumidity(0)[0].(float64); !almostEqual(got, -6.0, 1e-9) {
		t.Errorf("humidity zero point = %v, want -6", got)
	}
}

func TestDecode_Acceleration(t *testing.T) {
	tests := []struct {
		name     string
		value    uint32
		expected float64
	}{
		{"positive g", 0x00004000, 0.9984},
		{"negative g", 0x0000C000, -0.9984},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeAcceleration(tt.value)[0].(float64)
			if !almostEqual(got, tt.expected, 1e-9) {
				t.Errorf("decodeAcceleration(0x%08X) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestDecode_Charge(t *testing.T) {
	got := decodeCharge(0x0001FFFF)
	if v := got[0].(uint16); v != 0xFFFF {
		t.Errorf("decodeCharge should keep the low 16 bits: got %d", v)
	}
}

func TestDecode_SwitchValue(t *testing.T) {
	got := decodeSwitchValue(0x00000102)
	if pin := got[0].(uint32); pin != 1 {
		t.Errorf("pin = %d, want 1", pin)
	}
	if val := got[1].(uint32); val != 2 {
		t.Errorf("value = %d, want 2", val)
	}
}

func TestDecode_AmbientLight(t *testing.T) {
	// Low 16 bits 0x1234 swap to 0x3412: exponent 3, mantissa 0x412
	got := decodeAmbientLight(0x00001234)[0].(float64)
	expected := 0.01 * 8 * 1042
	if !almostEqual(got, expected, 1e-9) {
		t.Errorf("decodeAmbientLight = %v, want %v", got, expected)
	}
}

func TestDecode_ErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		value    uint32
		expected int64
	}{
		{"minus one becomes one", 0xFFFFFFFF, 1},
		{"zero stays zero", 0, 0},
		{"minus five becomes five", 0xFFFFFFFB, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeErrorCode(tt.value)[0].(int64)
			if got != tt.expected {
				t.Errorf("decodeErrorCode(0x%08X) = %d, want %d", tt.value, got, tt.expected)
			}
		})
	}
}

func TestErrorCodeName(t *testing.T) {
	tests := []struct {
		code int64
		name string
	}{
		{0, "No Error"},
		{1, "Generic Error"},
		{21, "Access denied"},
		{22, "Low voltage"},
		{23, "Unknown"},
		{-3, "Unknown"},
	}
	for _, tt := range tests {
		if got := ErrorCodeName(tt.code); got != tt.name {
			t.Errorf("ErrorCodeName(%d) = %q, want %q", tt.code, got, tt.name)
		}
	}
}

func TestDecode_SwVersion(t *testing.T) {
	got := decodeSwVersion(0x00010203)
	if got[0].(uint32) != 1 || got[1].(uint32) != 2 || got[2].(uint32) != 3 {
		t.Errorf("decodeSwVersion = %v, want [1 2 3]", got)
	}
}

// ============================================================
// Byte-Swapped VOC Channel Tests
// ============================================================

func TestDecode_VOCChannels(t *testing.T) {
	// Raw low 16 bits 0x1234 arrive byte swapped as 0x3412 (13330)
	const raw = 0x00001234

	t.Run("iaq", func(t *testing.T) {
		got := decodeVOCIAQ(raw)
		if idx := got[0].(uint32); idx != 13330 {
			t.Errorf("iaq index = %d, want 13330", idx)
		}
		if state := got[1].(uint32); state != 0 {
			t.Errorf("iaq state = %d, want 0", state)
		}
	})
	t.Run("temperature", func(t *testing.T) {
		if got := decodeVOCTemperature(raw)[0].(float64); !almostEqual(got, 1333.0, 1e-9) {
			t.Errorf("voc temperature = %v, want 1333.0", got)
		}
	})
	t.Run("humidity", func(t *testing.T) {
		if got := decodeVOCHumidity(raw)[0].(float64); !almostEqual(got, 133.3, 1e-9) {
			t.Errorf("voc humidity = %v, want 133.3", got)
		}
	})
	t.Run("pressure", func(t *testing.T) {
		if got := decodeVOCPressure(raw)[0].(float64); !almostEqual(got, 133300.0, 1e-9) {
			t.Errorf("voc pressure = %v, want 133300.0", got)
		}
	})
}

func TestDecode_VOCSoundLevel(t *testing.T) {
	t.Run("half scale is silence", func(t *testing.T) {
		// Swapped value 0x8000 puts the microphone voltage at exactly zero
		if got := decodeVOCSoundLevel(0x00000080)[0].(float64); got != 0.0 {
			t.Errorf("sound level at half scale = %v, want 0", got)
		}
	})
	t.Run("below half scale is silence", func(t *testing.T) {
		// Swapped value 0x7FFF makes the microphone voltage negative
		if got := decodeVOCSoundLevel(0x0000FF7F)[0].(float64); got != 0.0 {
			t.Errorf("sound level below half scale = %v, want 0", got)
		}
	})
	t.Run("full scale", func(t *testing.T) {
		got := decodeVOCSoundLevel(0x0000FFFF)[0].(float64)
		if !almostEqual(got, -3.761, 0.05) {
			t.Errorf("sound level at full scale = %v, want about -3.761", got)
		}
	})
}

func TestDecode_TOFDistance(t *testing.T) {
	got := decodeTOFDistance(0x00001234)
	if dist := got[0].(uint32); dist != 5138 {
		t.Errorf("distance = %d, want 5138", dist)
	}
	if state := got[1].(uint32); state != 1 {
		t.Errorf("state = %d, want 1", state)
	}
}

// ============================================================
// Registry Tests
// ============================================================

func TestLookup(t *testing.T) {
	d, ok := Lookup(TypeDriverInfo)
	if !ok {
		t.Fatal("driver_info must be registered")
	}
	if d.Name != "driver_info" {
		t.Errorf("Name = %q, want driver_info", d.Name)
	}

	if _, ok := Lookup(250); ok {
		t.Error("type 250 must not be registered")
	}
}

func TestTypeName(t *testing.T) {
	if got := TypeName(TypeGPIOValue); got != "gpio_value" {
		t.Errorf("TypeName(gpio) = %q", got)
	}
	if got := TypeName(250); got != "n/a" {
		t.Errorf("TypeName(250) = %q, want n/a", got)
	}
}
