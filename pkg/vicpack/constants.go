// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

// Package vicpack provides a reference Go implementation of the Vicpack
// telemetry packet format.
//
// Vicpack is a fixed-layout binary format used by sensor nodes to report
// measurements. Packets arrive hex-encoded; this package decodes them into
// unit-annotated measurement records grouped by sensor slot, and renders a
// human-readable trace for diagnostics.
package vicpack

// Packet layout. The header occupies the first five bytes, and each
// measurement record is one type byte followed by four big-endian value
// bytes.
const (
	PacketIndexOffset   = 2 // packet sequence id
	PacketRequestOffset = 3 // request id
	PacketMeasOffset    = 4 // number of measurements

	HeaderLen = 5
	Stride    = 5
)

// Defaults for an export slot when no driver info has been seen
const (
	DefaultSlot       = -1
	DefaultSensorType = "UNKNOWN"
)

// Measurement type codes
const (
	TypeNoMeasurement      = 0
	TypeDriverInfo         = 1
	TypeSamplingTime       = 2
	TypeSamplingTimeLSB    = 3
	TypeSamplingTimeOffset = 4

	TypeInternalBatteryOnDie = 7
	TypeInternalBattery      = 8
	TypeInternalTemperature  = 11
	TypeVoltageRealPart      = 13
	TypeVoltageImagPart      = 14
	TypeCurrentRealPart      = 15
	TypeCurrentImagPart      = 16

	TypeCharge              = 19
	TypeTemperature         = 20
	TypeHumidity            = 21
	TypePressure            = 22
	TypeAccelerationX       = 23
	TypeAccelerationY       = 24
	TypeAccelerationZ       = 25
	TypeSwitchInterrupt     = 26
	TypeAudioAverage        = 27
	TypeAudioMax            = 28
	TypeAudioSPL            = 29
	TypeAmbientLightVisible = 30
	TypeAmbientLightIR      = 31
	TypeAmbientLightUV      = 32
	TypeCO2Level            = 33
	TypeDistance            = 34
	TypeSampleRate          = 35

	TypeMagnetometer        = 40
	TypeFFTData             = 41
	TypeGPIOValue           = 42
	TypeVOCIAQ              = 43
	TypeVOCTemperature      = 44
	TypeVOCHumidity         = 45
	TypeVOCPressure         = 46
	TypeVOCAmbientLight     = 47
	TypeVOCSoundLevel       = 48
	TypeTOFDistance         = 49
	TypeAccelerometerStatus = 50
	TypeGPS                 = 51
	TypeVoltage             = 52
	TypeVoltageDiff         = 53
	TypeVoltageRef          = 54

	TypeAdvertisement = 100

	TypeStreamStart = 121
	TypeStreamStop  = 122

	TypeValueRaw       = 123
	TypeAppSwVer       = 124
	TypeDriverResp     = 125
	TypePacketAck      = 126
	TypeErrorCode      = 127
	TypeCRCCode        = 128
	TypeShutdown       = 129
	TypeVariableLength = 130
	TypeDeviceID       = 131
	TypeDevicePin      = 132
	TypeRSSILevel      = 133
	TypeCellID         = 134
	TypeConfigVer      = 135
)

// sensorNames maps the driver byte of a driver-info measurement to the
// firmware sensor driver name. The indices match the node firmware's driver
// table and must not be reordered.
var sensorNames = [...]string{
	"SENSOR_NO_SENSOR",       // 0
	"SENSOR_SI7050_TEMP",     // 1
	"SENSOR_SI7020_HUMIDITY", // 2
	"SENSOR_SWITCH",          // 3
	"SENSOR_INTERNAL_ADC",    // 4
	"SENSOR_LTC1864L_ADC",    // 5
	"SENSOR_420MA_LOOP",      // 6
	"SENSOR_UART",            // 7
	"SENSOR_ACCELEROMETER",   // 8
	"SENSOR_DIGITAL_MIC",     // 9
	"SENSOR_AMBIENT_LIGHT",   // 10
	"SENSOR_CO2_MODULE",      // 11
	"SENSOR_CUSTOM_1",        // 12
	"SENSOR_CUSTOM_2",        // 13
	"SENSOR_CUSTOM_3",        // 14
	"SENSOR_CUSTOM_4",        // 15
	"SENSOR_DEBUG",           // 16
	"SENSOR_ENVIRONMENTAL",   // 17
	"SENSOR_GPS",             // 18
	"SENSOR_TERMINAL",        // 19
	"SENSOR_TOF",             // 20
	"SENSOR_PIR",             // 21
	"SENSOR_CAPA",            // 22
	"SENSOR_SONAR",           // 23
}

// errorNames maps firmware error codes (after sign correction) to readable
// names, matching the node firmware's error table.
var errorNames = [...]string{
	"No Error",
	"Generic Error",
	"No Resources",
	"Invalid value",
	"Timeout",
	"Object not found",
	"Invalid state",
	"Hardware error",
	"Device busy",
	"Corrupted resource",
	"Resource in use",
	"Comparison error",
	"Readonly resource",
	"Flash erase",
	"Read error",
	"Write error",
	"Resource already exists",
	"Not supported",
	"Invalid size",
	"Invalid type",
	"Unknown parameter",
	"Access denied",
	"Low voltage",
}

// ErrorCodeName returns the firmware name for an error-code measurement
// value, or "Unknown" for codes outside the firmware table.
func ErrorCodeName(code int64) string {
	if code < 0 || code >= int64(len(errorNames)) {
		return "Unknown"
	}
	return errorNames[code]
}
