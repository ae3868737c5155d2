// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

import "math"

// DecodeFunc converts a raw 32-bit measurement value into one or more
// physical values. Decode functions are pure and total over the input
// domain; numeric domain errors (the sound-level logarithm) are replaced by
// a 0 sentinel rather than propagated.
type DecodeFunc func(value uint32) []any

// swap16 exchanges the two least-significant bytes of the raw value,
// matching the node's on-wire byte order for 16-bit fields. Applied even
// where only 16 bits are semantically used, to match the firmware exactly.
func swap16(v uint32) uint32 {
	return ((v >> 8) & 0xFF) | ((v & 0xFF) << 8)
}

// signed16 reinterprets the low 16 bits as a two's-complement integer
func signed16(v uint32) int16 {
	return int16(uint16(v & 0xFFFF))
}

// DriverInfo is the decoded form of a driver-info measurement (type 1),
// which describes the sensor slot that subsequent measurements belong to.
type DriverInfo struct {
	Slot    int
	Driver  int
	Index   int
	Enabled bool
}

// ParseDriverInfo unpacks a driver-info measurement value
func ParseDriverInfo(v uint32) DriverInfo {
	return DriverInfo{
		Driver:  int(v >> 24),
		Slot:    int((v >> 16) & 0xFF),
		Index:   int((v >> 8) & 0xFF),
		Enabled: v&0xFF != 0,
	}
}

// SensorName resolves a driver byte against the firmware sensor table. A
// driver outside the table returns ErrUnknownSensorIndex: that means the
// node firmware knows drivers this build does not, which must surface
// rather than be silently defaulted.
func SensorName(driver int) (string, error) {
	if driver < 0 || driver >= len(sensorNames) {
		return "", ErrUnknownSensorIndex
	}
	return sensorNames[driver], nil
}

func decodeDefault(v uint32) []any {
	return []any{v}
}

func decodeDriverInfo(v uint32) []any {
	info := ParseDriverInfo(v)
	return []any{info.Slot, info.Driver, info.Index, info.Enabled}
}

func decodeOnDieVoltage(v uint32) []any {
	return []any{float64(v) / 1000.0}
}

func decodeBatteryVoltage(v uint32) []any {
	return []any{float64(v) / 1000000.0}
}

func decodeOnDieTemperature(v uint32) []any {
	return []any{float64(signed16(v)) / 100.0}
}

func decodeExtVoltage(v uint32) []any {
	return []any{float64(v) * 0.0484438}
}

func decodeExtCurrent(v uint32) []any {
	return []any{float64(v) * 0.0000322911}
}

// decodeCharge reinterprets the low 16 bits as unsigned
func decodeCharge(v uint32) []any {
	return []any{uint16(v)}
}

func decodeExternalTemperature(v uint32) []any {
	return []any{float64(v)*175.72/65536 - 46.85}
}

func decodeExternalHumidity(v uint32) []any {
	return []any{float64(v)*125/65536.0 - 6}
}

// decodeAcceleration drops the low 6 bits with an arithmetic shift, then
// scales by 3.9 mg/LSB
func decodeAcceleration(v uint32) []any {
	return []any{float64(signed16(v)>>6) * 0.0039}
}

func decodeSwitchValue(v uint32) []any {
	return []any{v >> 8, v & 0xFF}
}

func decodeAmbientLight(v uint32) []any {
	sw := swap16(v)
	exp := sw >> 12
	man := sw & 0xFFF
	return []any{0.01 * float64(uint32(1)<<exp) * float64(man)}
}

func decodeErrorCode(v uint32) []any {
	return []any{-int64(int32(v))}
}

func decodeSwVersion(v uint32) []any {
	return []any{(v >> 16) & 0xFF, (v >> 8) & 0xFF, v & 0xFF}
}

func decodeVOCIAQ(v uint32) []any {
	sw := swap16(v)
	return []any{sw & 0x3FFF, (sw >> 14) & 3}
}

func decodeVOCTemperature(v uint32) []any {
	return []any{float64(swap16(v)) / 10.0}
}

// decodeVOCHumidity divides the swapped value before the 16-bit mask is
// applied, as the node firmware does. The mask is a no-op for a swapped
// 16-bit field, so the observed scaling is kept as-is pending confirmation
// of the intended behavior.
func decodeVOCHumidity(v uint32) []any {
	return []any{float64(swap16(v)) / 100.0}
}

func decodeVOCPressure(v uint32) []any {
	return []any{float64(swap16(v)&0xFFFF) * 10.0}
}

// decodeVOCSoundLevel converts the microphone counter reading to dB SPL.
// A non-positive intermediate voltage has no logarithm; the firmware treats
// that as silence and reports 0.
func decodeVOCSoundLevel(v uint32) []any {
	const (
		rf   = 82000.0
		rs   = 1000.0
		vref = 11.23 // mV/Pa (peak)
	)
	sw := float64(swap16(v))
	vmic := -(math.Exp2(-17) * rs * 3.0 * (65536 - 2*sw)) / rf
	if vmic/vref <= 0 {
		return []any{0.0}
	}
	return []any{20*math.Log10(vmic/vref) - 42 + 94}
}

func decodeTOFDistance(v uint32) []any {
	sw := swap16(v)
	return []any{sw & 0x1FFF, (sw >> 13) & 7}
}

func decodeTerminalVoltage(v uint32) []any {
	return []any{float64(swap16(v)) * (3.0 / 65536.0)}
}

func decodeTerminalVoltageDiff(v uint32) []any {
	return []any{float64(swap16(v)) * (3.0 / 32768.0)}
}
