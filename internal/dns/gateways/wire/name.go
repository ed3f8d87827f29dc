package wire

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// maxLabelLength is the largest label a single length byte can express.
// The RFC 1035 limit of 63 bytes is deliberately not enforced; see the
// note on decodeName.
const maxLabelLength = 255

// encodeName appends the wire form of a domain name to buf: each label as
// a length byte followed by its raw bytes, then a single zero terminator.
func encodeName(buf *bytes.Buffer, name domain.Name) error {
	for _, label := range name.Labels {
		if len(label) > maxLabelLength {
			return fmt.Errorf("label %q exceeds %d bytes", label, maxLabelLength)
		}
		buf.WriteByte(byte(len(label)))
		buf.WriteString(label)
	}
	buf.WriteByte(0)
	return nil
}

// decodeName reads a label sequence from data starting at offset and
// returns the parsed name together with the offset just past the zero
// terminator.
//
// Compression pointers (a length byte with its two high bits set, RFC
// 1035 §4.1.4) are not interpreted. Such a byte is read as an ordinary
// length, which on real compressed traffic will normally surface as
// ErrTruncated. Labels longer than the RFC's 63-byte limit are accepted.
func decodeName(data []byte, offset int) (domain.Name, int, error) {
	labels := []string{}
	for {
		if offset >= len(data) {
			return domain.Name{}, 0, fmt.Errorf("reading label length at offset %d: %w", offset, ErrTruncated)
		}
		length := int(data[offset])
		offset++
		if length == 0 {
			return domain.Name{Labels: labels}, offset, nil
		}
		if offset+length > len(data) {
			return domain.Name{}, 0, fmt.Errorf("label declares %d bytes, %d remain: %w", length, len(data)-offset, ErrTruncated)
		}
		label := data[offset : offset+length]
		if !utf8.Valid(label) {
			return domain.Name{}, 0, fmt.Errorf("label at offset %d: %w", offset, ErrMalformedLabel)
		}
		labels = append(labels, string(label))
		offset += length
	}
}
