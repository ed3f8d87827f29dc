package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// headerLength is the fixed size of the DNS message header.
const headerLength = 12

// Bit layout of the two packed flag bytes (RFC 1035 §4.1.1).
// Byte 3: QR(1) Opcode(4) AA(1) TC(1) RD(1)
// Byte 4: RA(1) Z(3) RCODE(4)
const (
	qrShift     = 7
	opcodeShift = 3
	opcodeMask  = 0x0F
	aaShift     = 2
	tcShift     = 1
	raShift     = 7
	zShift      = 4
	zMask       = 0x07
	rcodeMask   = 0x0F
)

// encodeHeader appends the 12-byte wire form of a header to buf.
// Opcode, Z and RCode are masked to their wire widths so an out-of-range
// value can never bleed into neighboring fields.
func encodeHeader(buf *bytes.Buffer, h domain.Header) {
	var id [2]byte
	binary.BigEndian.PutUint16(id[:], h.ID)
	buf.Write(id[:])

	buf.WriteByte(boolBit(h.QR)<<qrShift |
		(uint8(h.Opcode)&opcodeMask)<<opcodeShift |
		boolBit(h.AA)<<aaShift |
		boolBit(h.TC)<<tcShift |
		boolBit(h.RD))
	buf.WriteByte(boolBit(h.RA)<<raShift |
		(h.Z&zMask)<<zShift |
		uint8(h.RCode)&rcodeMask)

	for _, count := range [4]uint16{h.QDCount, h.ANCount, h.NSCount, h.ARCount} {
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], count)
		buf.Write(b[:])
	}
}

// decodeHeader parses the fixed 12-byte header from the front of data and
// returns it together with the offset of the first byte after it.
func decodeHeader(data []byte) (domain.Header, int, error) {
	if len(data) < headerLength {
		return domain.Header{}, 0, fmt.Errorf("header needs %d bytes, have %d: %w", headerLength, len(data), ErrTruncated)
	}

	flags1 := data[2]
	flags2 := data[3]
	h := domain.Header{
		ID:      binary.BigEndian.Uint16(data[0:2]),
		QR:      flags1>>qrShift&1 == 1,
		Opcode:  domain.Opcode(flags1 >> opcodeShift & opcodeMask),
		AA:      flags1>>aaShift&1 == 1,
		TC:      flags1>>tcShift&1 == 1,
		RD:      flags1&1 == 1,
		RA:      flags2>>raShift&1 == 1,
		Z:       flags2 >> zShift & zMask,
		RCode:   domain.RCode(flags2 & rcodeMask),
		QDCount: binary.BigEndian.Uint16(data[4:6]),
		ANCount: binary.BigEndian.Uint16(data[6:8]),
		NSCount: binary.BigEndian.Uint16(data[8:10]),
		ARCount: binary.BigEndian.Uint16(data[10:12]),
	}
	return h, headerLength, nil
}

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
