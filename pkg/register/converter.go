package register

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Metric is one unit-scaled reading. Value is a float64 for numeric
// encodings and a string for Hex and ASCII.
type Metric struct {
	Name  string
	Value interface{}
	Unit  MeasurementUnit
	Prom  Kind
}

// SortMetrics orders metrics by name. The sort is stable so repeated
// conversions of the same register dump produce identical sequences.
func SortMetrics(metrics []Metric) {
	sort.SliceStable(metrics, func(i, j int) bool {
		return metrics[i].Name < metrics[j].Name
	})
}

// Convert turns the raw word at the given address into 0, 1 or 2
// metrics. Continuation and unknown addresses yield nothing; their
// content is consumed through the primary definition pointing at them.
// Any violation of an encoding's rules is an ErrDecode: conversion is
// fail-fast, a bad register aborts the whole polling cycle.
func (t *Table) Convert(address uint16, store map[uint16]uint16) ([]Metric, error) {
	d := t.Lookup(address)
	if d.Cont || d.Unknown {
		return nil, nil
	}

	v, ok := store[address]
	if !ok {
		return nil, errors.Wrapf(ErrDecode, "register %d (%q) not present in store", address, d.Name)
	}

	var value interface{}
	switch d.Encoding {
	case Bool:
		if v != 0 && v != d.TrueValue {
			return nil, errors.Wrapf(ErrDecode, "bool value %d unexpected for register %d (%q)", v, address, d.Name)
		}
		if v == d.TrueValue {
			value = float64(1)
		} else {
			value = float64(0)
		}

	case Bitfield:
		value = float64(v)

	case Hex:
		value = fmt.Sprintf("%04x", v)

	case Uint8, Uint16:
		value = scale(float64(v), d.Scaling)

	case DUint8:
		// two metrics packed in 16 bits
		msb, lsb := v/256, v%256
		return []Metric{
			{Name: d.Name, Value: float64(msb), Unit: d.Unit, Prom: d.Prom},
			{Name: d.Second, Value: float64(lsb), Unit: d.Unit, Prom: d.Prom},
		}, nil

	case Int16:
		value = scale(float64(int16(v)), d.Scaling)

	case Uint32High:
		if len(d.More) != 1 || d.More[0] != address+1 {
			return nil, errors.Wrapf(ErrDecode, "uint32 companion %v is not %d for register %d (%q)", d.More, address+1, address, d.Name)
		}
		low, ok := store[d.More[0]]
		if !ok {
			return nil, errors.Wrapf(ErrDecode, "register %d (%q) companion %d not present in store", address, d.Name, d.More[0])
		}
		value = scale(float64(uint32(v)<<16|uint32(low)), d.Scaling)

	case Uint32Low:
		// only valid as the companion consumed by Uint32High
		return nil, errors.Wrapf(ErrDecode, "uint32 low half defined as primary for register %d (%q)", address, d.Name)

	case ASCII:
		chars := make([]byte, 0, 2*(1+len(d.More)))
		for _, part := range append([]uint16{address}, d.More...) {
			word, ok := store[part]
			if !ok {
				return nil, errors.Wrapf(ErrDecode, "register %d (%q) companion %d not present in store", address, d.Name, part)
			}
			hi, lo := byte(word>>8), byte(word)
			if hi > 0x7F || lo > 0x7F {
				return nil, errors.Wrapf(ErrDecode, "non-ascii bytes %#04x in register %d (%q)", word, part, d.Name)
			}
			chars = append(chars, hi, lo)
		}
		value = string(chars)

	case Time:
		// packed time, 430 = 04:30; the exact mapping is unconfirmed,
		// so the raw integer is passed through
		value = float64(v)

	case PowerFactor:
		// fixed point, zero at 10000, scale 10000
		value = (float64(v) - 10000) / 10000

	default:
		return nil, errors.Wrapf(ErrDecode, "encoding %d unsupported for register %d (%q)", d.Encoding, address, d.Name)
	}

	return []Metric{{Name: d.Name, Value: value, Unit: d.Unit, Prom: d.Prom}}, nil
}

func scale(v float64, s Scaling) float64 {
	return v / float64(s)
}
