package runtime

import "errors"

// GivEnergy inverters speak a proprietary TCP framing around a modbus
// style register model. Every frame starts with an 8 byte header:
//
//	u16 transaction id | u16 protocol id | u16 length | u8 unit id | u8 frame function
//
// The length field counts the payload that follows the header plus the
// unit id and frame function bytes, even though those two bytes are
// part of the header on the wire.
const (
	TransactionId uint16 = 0x5959
	ProtocolId    uint16 = 0x0001
	UnitId        byte   = 0x01
	FrameFunction byte   = 0x02

	// 0x11 is the inverter itself but the cloud systems interfere,
	// 0x32 and up address the batteries.
	SlaveAddress byte = 0x32

	// AdapterSerial must be exactly 10 ASCII bytes.
	AdapterSerial        = "AB1234G567"
	Padding       uint64 = 0x0000000000000008

	DefaultPort = 8899

	ReadHoldingRegisters byte = 0x03
	ReadInputRegisters   byte = 0x04

	FrameHeaderSize = 8

	// adapter serial + padding + slave + function code +
	// inverter serial + base register + register count
	responseFixedSize = 10 + 8 + 1 + 1 + 10 + 2 + 2

	// register payload fields covered by the request CRC:
	// function code + base register + register count
	crcDataSize = 5
)

var (
	ErrBadConn     = errors.New("Tcp bad connection")
	ErrFrame       = errors.New("Malformed frame")
	ErrRequest     = errors.New("Invalid read request")
	ErrDeviceError = errors.New("Device error response")
)
