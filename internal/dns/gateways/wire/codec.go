// Package wire provides encoding and decoding of DNS messages for UDP
// transport. It handles the DNS wire format as specified in RFC 1035:
// the packed 12-byte header, length-prefixed label sequences, and the
// question and answer record layouts.
package wire

import (
	"errors"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// Codec encodes and decodes whole DNS messages.
type Codec interface {
	// EncodeMessage serializes a message: header first, then every
	// question, then every answer, in order.
	EncodeMessage(msg domain.Message) ([]byte, error)

	// DecodeMessage parses a message, using the header counts to bound
	// how many questions and answers are consumed. Bytes past the
	// counted sections are ignored.
	DecodeMessage(data []byte) (domain.Message, error)
}

// ErrTruncated reports that the input ended before a fixed-size field or
// a declared length could be read in full.
var ErrTruncated = errors.New("truncated message")

// ErrMalformedLabel reports a label whose bytes are not valid text.
var ErrMalformedLabel = errors.New("malformed label")
