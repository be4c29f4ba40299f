package system

import "encoding/binary"

const evKey = 0x01

// Linux input-event-codes.h
const (
	KeyEsc   = 1
	KeyQ     = 16
	KeyF     = 33
	KeySpace = 57
	KeyF4    = 62
)

// parseKeyPresses extracts the codes of key-down records from a run of
// input_event records. Partial trailing records are ignored.
func parseKeyPresses(buf []byte, tvSize, eventSize int) []uint16 {
	var codes []uint16
	for off := 0; off+eventSize <= len(buf); off += eventSize {
		rec := buf[off : off+eventSize]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && value == 1 {
			codes = append(codes, code)
		}
	}
	return codes
}
