package crcutil

// Modbus16 computes the CRC-16/MODBUS checksum: polynomial 0xA001
// (reflected 0x8005), initial register 0xFFFF. The raw shift register
// value is returned; the GivEnergy request frame stores it as a
// big-endian 16-bit field.
func Modbus16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < 8; i++ {
			if crc&0x0001 != 0 {
				crc >>= 1
				crc ^= 0xA001
			} else {
				crc >>= 1
			}
		}
	}
	return crc
}
