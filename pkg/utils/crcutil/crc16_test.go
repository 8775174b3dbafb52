package crcutil

import "testing"

func TestModbus16(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint16
	}{
		// standard check value
		{data: []byte("123456789"), expected: 0x4B37},
		// read input registers, base 0, count 60
		{data: []byte{0x04, 0x00, 0x00, 0x00, 0x3C}, expected: 0xD1D5},
		// read holding registers, base 0, count 60
		{data: []byte{0x03, 0x00, 0x00, 0x00, 0x3C}, expected: 0x1160},
		// read input registers, base 180, count 60
		{data: []byte{0x04, 0x00, 0xB4, 0x00, 0x3C}, expected: 0xF795},
		{data: []byte{}, expected: 0xFFFF},
	}

	for _, tc := range testCases {
		crc := Modbus16(tc.data)
		if crc != tc.expected {
			t.Errorf("Modbus16(%v) returned incorrect CRC: got %#04x, expected %#04x", tc.data, crc, tc.expected)
		}
	}
}
