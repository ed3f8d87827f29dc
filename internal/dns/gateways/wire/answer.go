package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// answerFixedLength is the byte length of an answer past its name:
// 2-byte type, 2-byte class, 4-byte ttl, 2-byte rdata length.
const answerFixedLength = 10

// maxRDataLength is the largest rdata a 16-bit length prefix can express.
const maxRDataLength = 0xFFFF

// encodeAnswer appends the wire form of an answer record to buf.
func encodeAnswer(buf *bytes.Buffer, a domain.Answer) error {
	if err := encodeName(buf, a.Name); err != nil {
		return err
	}
	if len(a.Data) > maxRDataLength {
		return fmt.Errorf("rdata too large: %d bytes (max %d)", len(a.Data), maxRDataLength)
	}
	var b [answerFixedLength]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(a.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(a.Class))
	binary.BigEndian.PutUint32(b[4:8], a.TTL)
	binary.BigEndian.PutUint16(b[8:10], uint16(len(a.Data)))
	buf.Write(b[:])
	buf.Write(a.Data)
	return nil
}

// decodeAnswer parses one answer record starting at offset and returns it
// together with the offset of the first byte after its rdata.
func decodeAnswer(data []byte, offset int) (domain.Answer, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return domain.Answer{}, 0, err
	}
	if offset+answerFixedLength > len(data) {
		return domain.Answer{}, 0, fmt.Errorf("answer needs %d bytes after name, have %d: %w",
			answerFixedLength, len(data)-offset, ErrTruncated)
	}

	a := domain.Answer{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(data[offset : offset+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(data[offset+2 : offset+4])),
		TTL:   binary.BigEndian.Uint32(data[offset+4 : offset+8]),
	}
	rdLen := int(binary.BigEndian.Uint16(data[offset+8 : offset+10]))
	offset += answerFixedLength

	if offset+rdLen > len(data) {
		return domain.Answer{}, 0, fmt.Errorf("rdata declares %d bytes, %d remain: %w",
			rdLen, len(data)-offset, ErrTruncated)
	}
	a.Data = make([]byte, rdLen)
	copy(a.Data, data[offset:offset+rdLen])
	return a, offset + rdLen, nil
}
