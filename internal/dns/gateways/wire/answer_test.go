package wire

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

func TestEncodeAnswer(t *testing.T) {
	a := domain.NewAnswer("codecrafters.io", domain.RRTypeA, domain.RRClassIN, 60, []byte{8, 8, 8, 8})

	var buf bytes.Buffer
	err := encodeAnswer(&buf, a)
	require.NoError(t, err)

	want := []byte("\x0ccodecrafters\x02io\x00" +
		"\x00\x01" + // TYPE A
		"\x00\x01" + // CLASS IN
		"\x00\x00\x00\x3c" + // TTL 60
		"\x00\x04" + // RDLENGTH
		"\x08\x08\x08\x08") // RDATA
	assert.Equal(t, want, buf.Bytes())
}

func TestEncodeAnswer_RDataTooLarge(t *testing.T) {
	a := domain.NewAnswer("x.io", domain.RRTypeTXT, domain.RRClassIN, 1, []byte(strings.Repeat("a", maxRDataLength+1)))

	var buf bytes.Buffer
	err := encodeAnswer(&buf, a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rdata too large")
}

func TestDecodeAnswer_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		answer domain.Answer
	}{
		{
			name:   "A record",
			answer: domain.NewAnswer("example.com", domain.RRTypeA, domain.RRClassIN, 300, []byte{1, 2, 3, 4}),
		},
		{
			name:   "empty rdata",
			answer: domain.NewAnswer("example.com", domain.RRTypeTXT, domain.RRClassIN, 0, nil),
		},
		{
			name:   "opaque rdata",
			answer: domain.NewAnswer("example.com", domain.RRType(9999), domain.RRClass(42), 0xFFFFFFFF, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encodeAnswer(&buf, tt.answer))

			decoded, offset, err := decodeAnswer(buf.Bytes(), 0)
			require.NoError(t, err)
			assert.Equal(t, tt.answer, decoded)
			assert.Equal(t, buf.Len(), offset)
		})
	}
}

func TestDecodeAnswer_TruncatedFixedFields(t *testing.T) {
	// name plus only 9 of the 10 fixed bytes
	data := append([]byte("\x02io\x00"), make([]byte, answerFixedLength-1)...)

	_, _, err := decodeAnswer(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestDecodeAnswer_RDataLengthExceedsInput(t *testing.T) {
	a := domain.NewAnswer("io", domain.RRTypeA, domain.RRClassIN, 60, []byte{8, 8, 8, 8})

	var buf bytes.Buffer
	require.NoError(t, encodeAnswer(&buf, a))

	// chop off the last rdata byte so the declared length overruns
	data := buf.Bytes()[:buf.Len()-1]

	_, _, err := decodeAnswer(data, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTruncated)
}
