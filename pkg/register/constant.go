package register

import "errors"

// Encoding describes how the 16 bit words of a register are to be
// interpreted. Register data is always big-endian. The zero value is
// Uint16 so table entries only state an encoding when it differs from
// the plain unsigned word.
type Encoding int

const (
	Uint16 Encoding = iota
	Bool
	Bitfield
	Hex
	Uint8
	DUint8 // two uint8 metrics packed into one word
	Int16
	Uint32High // higher (MSB) address half of a 32 bit value
	Uint32Low  // lower (LSB) address half, never a primary
	ASCII      // 2 ASCII characters per register
	Time       // packed time value, 430 = 04:30
	PowerFactor
)

// Scaling is the divisor applied to a register's raw value. Divisors
// keep the float arithmetic exact for the decimal steps the device
// uses. The table builder turns an omitted scaling into Unit.
type Scaling int

const (
	Unit  Scaling = 1
	Deci  Scaling = 10
	Centi Scaling = 100
	Milli Scaling = 1000
)

// MeasurementUnit is the unit suffix attached to a metric name; empty
// means a unitless scalar.
type MeasurementUnit string

const (
	Scalar      MeasurementUnit = ""
	EnergyKwh   MeasurementUnit = "kwh"
	PowerW      MeasurementUnit = "w"
	PowerKw     MeasurementUnit = "kw"
	PowerVa     MeasurementUnit = "va"
	FrequencyHz MeasurementUnit = "hz"
	VoltageV    MeasurementUnit = "volts"
	CurrentA    MeasurementUnit = "amps"
	TempC       MeasurementUnit = "temp_c"
	ChargeAh    MeasurementUnit = "ah"
	TimeS       MeasurementUnit = "sec"
	TimeM       MeasurementUnit = "min"
)

// Kind is the prometheus metric kind emitted in # TYPE lines.
type Kind string

const (
	Gauge   Kind = "gauge"
	Counter Kind = "counter"
)

var ErrDecode = errors.New("Register decode error")
