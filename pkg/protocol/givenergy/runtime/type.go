package runtime

import (
	"github.com/pkg/errors"

	"givenergyexporter/pkg/utils/binutil"
	"givenergyexporter/pkg/utils/crcutil"
)

// ReadRequest reads a contiguous block of holding or input registers.
type ReadRequest struct {
	FunctionCode  byte
	BaseRegister  uint16
	RegisterCount uint16
}

func NewReadRequest(functionCode byte, baseRegister, registerCount uint16) (*ReadRequest, error) {
	if functionCode != ReadHoldingRegisters && functionCode != ReadInputRegisters {
		return nil, errors.Wrapf(ErrRequest, "unsupported function code %d", functionCode)
	}
	if baseRegister > 255 {
		return nil, errors.Wrapf(ErrRequest, "base register %d out of range", baseRegister)
	}
	if registerCount < 1 || registerCount > 255-baseRegister {
		return nil, errors.Wrapf(ErrRequest, "register count %d out of range for base %d", registerCount, baseRegister)
	}
	return &ReadRequest{
		FunctionCode:  functionCode,
		BaseRegister:  baseRegister,
		RegisterCount: registerCount,
	}, nil
}

// Encode builds the full wire frame: header plus payload. The CRC only
// covers the 5 byte function code, base register, register count
// sequence; the adapter serial, padding and slave address before it do
// not take part.
func (r *ReadRequest) Encode() []byte {
	crcData := make([]byte, crcDataSize)
	crcData[0] = r.FunctionCode
	binutil.WriteUint16(crcData[1:], r.BaseRegister)
	binutil.WriteUint16(crcData[3:], r.RegisterCount)
	crc := crcutil.Modbus16(crcData)

	payload := make([]byte, 10+8+1+1+2+2+2)
	copy(payload, AdapterSerial)
	binutil.WriteUint64(payload[10:], Padding)
	payload[18] = SlaveAddress
	payload[19] = r.FunctionCode
	binutil.WriteUint16(payload[20:], r.BaseRegister)
	binutil.WriteUint16(payload[22:], r.RegisterCount)
	binutil.WriteUint16(payload[24:], crc)

	message := make([]byte, FrameHeaderSize+len(payload))
	binutil.WriteUint16(message, TransactionId)
	binutil.WriteUint16(message[2:], ProtocolId)
	// length counts the unit id and frame function bytes already
	// written as part of the header
	binutil.WriteUint16(message[4:], uint16(len(payload)+2))
	message[6] = UnitId
	message[7] = FrameFunction
	copy(message[8:], payload)
	return message
}

type FrameHeader struct {
	TransactionId uint16
	ProtocolId    uint16
	Length        uint16
	UnitId        byte
	FrameFunction byte
}

func DecodeFrameHeader(buf []byte) (FrameHeader, error) {
	if len(buf) < FrameHeaderSize {
		return FrameHeader{}, errors.Wrapf(ErrFrame, "header needs %d bytes, got %d", FrameHeaderSize, len(buf))
	}
	return FrameHeader{
		TransactionId: binutil.ParseUint16(buf),
		ProtocolId:    binutil.ParseUint16(buf[2:]),
		Length:        binutil.ParseUint16(buf[4:]),
		UnitId:        buf[6],
		FrameFunction: buf[7],
	}, nil
}

// Response is one decoded register block reply. Registers is populated
// only when the device did not flag an error; Check is the trailing
// checksum as sent, decoded but not verified.
type Response struct {
	AdapterSerial  string
	Padding        uint64
	SlaveAddress   byte
	FunctionCode   byte
	Error          bool
	InverterSerial string
	BaseRegister   uint16
	RegisterCount  uint16
	Registers      map[uint16]uint16
	Check          uint16
}

func DecodeResponse(payload []byte) (*Response, error) {
	// fixed prefix plus the trailing checksum
	if len(payload) < responseFixedSize+2 {
		return nil, errors.Wrapf(ErrFrame, "response payload needs at least %d bytes, got %d", responseFixedSize+2, len(payload))
	}

	r := &Response{
		AdapterSerial: string(payload[:10]),
		Padding:       binutil.ParseUint64(payload[10:]),
		SlaveAddress:  payload[18],
		FunctionCode:  payload[19],
	}
	if r.FunctionCode >= 0x80 {
		r.Error = true
		r.FunctionCode &= 0x7F
	}

	r.InverterSerial = string(payload[20:30])
	r.BaseRegister = binutil.ParseUint16(payload[30:])
	r.RegisterCount = binutil.ParseUint16(payload[32:])

	offset := responseFixedSize
	if !r.Error {
		if len(payload) < responseFixedSize+2*int(r.RegisterCount)+2 {
			return nil, errors.Wrapf(ErrFrame, "response payload truncated: %d registers expected, %d bytes left",
				r.RegisterCount, len(payload)-responseFixedSize)
		}
		r.Registers = make(map[uint16]uint16, r.RegisterCount)
		for reg := r.BaseRegister; reg < r.BaseRegister+r.RegisterCount; reg++ {
			r.Registers[reg] = binutil.ParseUint16(payload[offset:])
			offset += 2
		}
	}

	r.Check = binutil.ParseUint16(payload[offset:])
	return r, nil
}

// Register returns the raw 16 bit value at the given address.
func (r *Response) Register(reg uint16) (uint16, bool) {
	v, ok := r.Registers[reg]
	return v, ok
}
