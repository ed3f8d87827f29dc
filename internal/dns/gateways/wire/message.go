package wire

import (
	"bytes"
	"fmt"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/common/log"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// messageCodec implements the Codec interface for standard DNS over UDP
// messages.
type messageCodec struct {
	logger log.Logger
}

// NewCodec creates a message codec using the provided logger.
func NewCodec(logger log.Logger) *messageCodec {
	return &messageCodec{
		logger: logger,
	}
}

// EncodeMessage serializes msg: header, then questions, then answers.
// The question-before-answer byte order is part of the wire contract.
// Header counts are written exactly as given; producers are expected to
// keep them in sync with the sections (domain.NewMessage does).
func (c *messageCodec) EncodeMessage(msg domain.Message) ([]byte, error) {
	var buf bytes.Buffer
	encodeHeader(&buf, msg.Header)
	for i, q := range msg.Questions {
		if err := encodeQuestion(&buf, q); err != nil {
			return nil, fmt.Errorf("encoding question %d: %w", i, err)
		}
	}
	for i, a := range msg.Answers {
		if err := encodeAnswer(&buf, a); err != nil {
			return nil, fmt.Errorf("encoding answer %d: %w", i, err)
		}
	}

	c.logger.Debug(map[string]any{
		"id":        msg.Header.ID,
		"questions": len(msg.Questions),
		"answers":   len(msg.Answers),
		"size":      buf.Len(),
	}, "Encoded DNS message")

	return buf.Bytes(), nil
}

// DecodeMessage parses a DNS message from data. The header is parsed
// first and its counts drive how many questions and answers are consumed;
// record content never influences the repetition. The first failing step
// aborts the whole decode. Trailing bytes past the counted sections are
// ignored.
func (c *messageCodec) DecodeMessage(data []byte) (domain.Message, error) {
	header, offset, err := decodeHeader(data)
	if err != nil {
		return domain.Message{}, err
	}

	questions := make([]domain.Question, 0, header.QDCount)
	for i := 0; i < int(header.QDCount); i++ {
		q, next, err := decodeQuestion(data, offset)
		if err != nil {
			return domain.Message{}, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
		offset = next
	}

	answers := make([]domain.Answer, 0, header.ANCount)
	for i := 0; i < int(header.ANCount); i++ {
		a, next, err := decodeAnswer(data, offset)
		if err != nil {
			return domain.Message{}, fmt.Errorf("answer %d: %w", i, err)
		}
		answers = append(answers, a)
		offset = next
	}

	c.logger.Debug(map[string]any{
		"id":        header.ID,
		"opcode":    header.Opcode.String(),
		"questions": len(questions),
		"answers":   len(answers),
		"consumed":  offset,
		"size":      len(data),
	}, "Decoded DNS message")

	return domain.Message{
		Header:    header,
		Questions: questions,
		Answers:   answers,
	}, nil
}

var _ Codec = &messageCodec{}
