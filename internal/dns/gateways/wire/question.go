package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// questionFixedLength is the byte length of a question past its name:
// 2-byte type plus 2-byte class.
const questionFixedLength = 4

// encodeQuestion appends the wire form of a question section entry to buf.
func encodeQuestion(buf *bytes.Buffer, q domain.Question) error {
	if err := encodeName(buf, q.Name); err != nil {
		return err
	}
	var b [questionFixedLength]byte
	binary.BigEndian.PutUint16(b[0:2], uint16(q.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(q.Class))
	buf.Write(b[:])
	return nil
}

// decodeQuestion parses one question entry starting at offset and returns
// it together with the offset of the first byte after it.
func decodeQuestion(data []byte, offset int) (domain.Question, int, error) {
	name, offset, err := decodeName(data, offset)
	if err != nil {
		return domain.Question{}, 0, err
	}
	if offset+questionFixedLength > len(data) {
		return domain.Question{}, 0, fmt.Errorf("question needs %d bytes after name, have %d: %w",
			questionFixedLength, len(data)-offset, ErrTruncated)
	}
	q := domain.Question{
		Name:  name,
		Type:  domain.RRType(binary.BigEndian.Uint16(data[offset : offset+2])),
		Class: domain.RRClass(binary.BigEndian.Uint16(data[offset+2 : offset+4])),
	}
	return q, offset + questionFixedLength, nil
}
