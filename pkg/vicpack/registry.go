// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Virinco AS

package vicpack

// Descriptor describes one measurement type: its display template (fmt
// verbs matching the decode function's output), whether the first decoded
// value takes an SI prefix in the trace, the unit label per decoded value,
// and the decode function itself.
type Descriptor struct {
	Name   string
	Format string
	SI     bool
	Units  []string
	Decode DecodeFunc
}

// registry is the static measurement type table. It is built once and never
// mutated, so it is safe to share across goroutines.
var registry = map[uint8]Descriptor{
	TypeNoMeasurement:      {Name: "no_measurement", Format: "unknown       : %d", Units: []string{""}, Decode: decodeDefault},
	TypeDriverInfo:         {Name: "driver_info", Format: "slot: %02d, drv: %02d, index: %02d, ena: %t", Units: []string{""}, Decode: decodeDriverInfo},
	TypeSamplingTime:       {Name: "sampling_time", Format: "%v", Units: []string{"sec"}, Decode: decodeDefault},
	TypeSamplingTimeLSB:    {Name: "sampling_time_lsb", Format: "%v", Units: []string{""}, Decode: decodeDefault},
	TypeSamplingTimeOffset: {Name: "sampling_time_offset", Format: "%v", Units: []string{"usec"}, Decode: decodeDefault},

	TypeInternalBatteryOnDie: {Name: "internal_battery_on_die", Format: "on-die volt   : %.2f", SI: true, Units: []string{"V"}, Decode: decodeOnDieVoltage},
	TypeInternalBattery:      {Name: "internal_battery", Format: "battery       : %.2f", SI: true, Units: []string{"V"}, Decode: decodeBatteryVoltage},
	TypeInternalTemperature:  {Name: "internal_temperature", Format: "on-die temp   : %.2f", SI: true, Units: []string{"C"}, Decode: decodeOnDieTemperature},
	TypeVoltageRealPart:      {Name: "voltage_real_part", Format: "ext. voltage  : %.2f", SI: true, Units: []string{"V"}, Decode: decodeExtVoltage},
	TypeVoltageImagPart:      {Name: "voltage_imag_part", Format: "%v", SI: true, Units: []string{"V"}, Decode: decodeDefault},
	TypeCurrentRealPart:      {Name: "current_real_part", Format: "ext. current  : %.2f", SI: true, Units: []string{"A"}, Decode: decodeExtCurrent},
	TypeCurrentImagPart:      {Name: "current_imag_part", Format: "%v", SI: true, Units: []string{"A"}, Decode: decodeDefault},

	TypeCharge:              {Name: "charge", Format: "%v", SI: true, Units: []string{"C"}, Decode: decodeCharge},
	TypeTemperature:         {Name: "temperature", Format: "temperature   : %.2f", Units: []string{"C"}, Decode: decodeExternalTemperature},
	TypeHumidity:            {Name: "humidity", Format: "humidity      : %.2f", Units: []string{"RH"}, Decode: decodeExternalHumidity},
	TypePressure:            {Name: "pressure", Format: "%v", Units: []string{"bar"}, Decode: decodeDefault},
	TypeAccelerationX:       {Name: "acceleration_x", Format: "acc. x-axis   : %.2f", SI: true, Units: []string{"g"}, Decode: decodeAcceleration},
	TypeAccelerationY:       {Name: "acceleration_y", Format: "acc. y-axis   : %.2f", SI: true, Units: []string{"g"}, Decode: decodeAcceleration},
	TypeAccelerationZ:       {Name: "acceleration_z", Format: "acc. z-axis   : %.2f", SI: true, Units: []string{"g"}, Decode: decodeAcceleration},
	TypeSwitchInterrupt:     {Name: "switch_interrupt", Format: "switch        : %v, %v", Units: []string{"pin", "value"}, Decode: decodeSwitchValue},
	TypeAudioAverage:        {Name: "audio_average", Format: "audio avg     : %d", Units: []string{"count"}, Decode: decodeDefault},
	TypeAudioMax:            {Name: "audio_max", Format: "audio max     : %d", Units: []string{"count"}, Decode: decodeDefault},
	TypeAudioSPL:            {Name: "audio_spl", Format: "audio spl     : %d", Units: []string{"dB"}, Decode: decodeDefault},
	TypeAmbientLightVisible: {Name: "ambient_light_visible", Format: "ambient light : %2f", Units: []string{"lux"}, Decode: decodeAmbientLight},
	TypeAmbientLightIR:      {Name: "ambient_light_ir", Format: "ambient ir    : %2f", Units: []string{"lux"}, Decode: decodeDefault},
	TypeAmbientLightUV:      {Name: "ambient_light_uv", Format: "uv index      : %d", Units: []string{""}, Decode: decodeDefault},
	TypeCO2Level:            {Name: "co2_level", Format: "co2 level     : %d", Units: []string{"g"}, Decode: decodeDefault},
	TypeDistance:            {Name: "distance", Format: "distance      : %d", Units: []string{"mm"}, Decode: decodeDefault},
	TypeSampleRate:          {Name: "sample_rate", Format: "sample rate   : %2d", Units: []string{"msec"}, Decode: decodeDefault},

	TypeMagnetometer:        {Name: "magnetometer", Format: "magnetometer  : %2d", Units: []string{""}, Decode: decodeDefault},
	TypeFFTData:             {Name: "fft_data", Format: "fft_data      : %2d", Units: []string{""}, Decode: decodeDefault},
	TypeGPIOValue:           {Name: "gpio_value", Format: "gpio value    : %2d", Units: []string{""}, Decode: decodeDefault},
	TypeVOCIAQ:              {Name: "voc_iaq", Format: "iaq           : %2d, %d", Units: []string{"index", "state"}, Decode: decodeVOCIAQ},
	TypeVOCTemperature:      {Name: "voc_temperature", Format: "temperature   : %2f", Units: []string{"C"}, Decode: decodeVOCTemperature},
	TypeVOCHumidity:         {Name: "voc_humidity", Format: "humidity      : %2f", Units: []string{"RH%"}, Decode: decodeVOCHumidity},
	TypeVOCPressure:         {Name: "voc_pressure", Format: "pressure      : %2f", Units: []string{"pA"}, Decode: decodeVOCPressure},
	TypeVOCAmbientLight:     {Name: "voc_ambient_light", Format: "ambient light : %2f", Units: []string{"lux"}, Decode: decodeAmbientLight},
	TypeVOCSoundLevel:       {Name: "voc_sound_level", Format: "sound level   : %2f", Units: []string{"dbSpl"}, Decode: decodeVOCSoundLevel},
	TypeTOFDistance:         {Name: "tof_distance", Format: "distance      : %2d, %d", Units: []string{"mm", "state"}, Decode: decodeTOFDistance},
	TypeAccelerometerStatus: {Name: "accelerometer_status", Format: "acc. status   : %2d", Units: []string{"state"}, Decode: decodeDefault},
	TypeGPS:                 {Name: "gps", Format: "gps           : %2d", Units: []string{"state"}, Decode: decodeDefault},
	TypeVoltage:             {Name: "voltage", Format: "voltage       : %.2f", Units: []string{"V"}, Decode: decodeTerminalVoltage},
	TypeVoltageDiff:         {Name: "voltage_diff", Format: "voltage diff  : %.2f", Units: []string{"V"}, Decode: decodeTerminalVoltageDiff},
	TypeVoltageRef:          {Name: "voltage_ref", Format: "voltage vref  : %.2f", Units: []string{"V"}, Decode: decodeTerminalVoltage},

	TypeAdvertisement: {Name: "advertisement", Format: "advertisement : %d", Units: []string{""}, Decode: decodeDefault},

	TypeStreamStart: {Name: "stream_start", Format: "stream start  : %d", Units: []string{""}, Decode: decodeDefault},
	TypeStreamStop:  {Name: "stream_stop", Format: "stream stop   : %d", Units: []string{""}, Decode: decodeDefault},

	TypeValueRaw:       {Name: "value_raw", Format: "raw value     : %d", Units: []string{""}, Decode: decodeDefault},
	TypeAppSwVer:       {Name: "app_sw_ver", Format: "sw ver        : %d.%d.%d", Units: []string{""}, Decode: decodeSwVersion},
	TypeDriverResp:     {Name: "driver_resp", Format: "drv response  : %d", Units: []string{""}, Decode: decodeDefault},
	TypePacketAck:      {Name: "packet_ack", Format: "ack packet id : %d", Units: []string{""}, Decode: decodeDefault},
	TypeErrorCode:      {Name: "error_code", Format: "error code    : %d", Units: []string{""}, Decode: decodeErrorCode},
	TypeCRCCode:        {Name: "crc_code", Format: "crc 16        : 0x%x", Units: []string{""}, Decode: decodeDefault},
	TypeShutdown:       {Name: "shutdown", Format: "shutdown      : %d", Units: []string{""}, Decode: decodeDefault},
	TypeVariableLength: {Name: "variable_length", Format: "varlen        : %d", Units: []string{""}, Decode: decodeDefault},
	TypeDeviceID:       {Name: "device_id", Format: "device id     : %d", Units: []string{""}, Decode: decodeDefault},
	TypeDevicePin:      {Name: "device_pin", Format: "device pin    : %d", Units: []string{""}, Decode: decodeDefault},
	TypeRSSILevel:      {Name: "rssi_level", Format: "rssi level    : %d", Units: []string{""}, Decode: decodeDefault},
	TypeCellID:         {Name: "cell_id", Format: "cell id       : %d", Units: []string{""}, Decode: decodeDefault},
	TypeConfigVer:      {Name: "config_ver", Format: "config ver    : %d", Units: []string{""}, Decode: decodeDefault},
}

// Lookup returns the descriptor for a measurement type code
func Lookup(code uint8) (Descriptor, bool) {
	d, ok := registry[code]
	return d, ok
}

// TypeName returns the registry name for a type code, or "n/a" for codes
// outside the registry.
func TypeName(code uint8) string {
	if d, ok := registry[code]; ok {
		return d.Name
	}
	return "n/a"
}
