// Package responder builds the canned response this server returns for
// every decoded DNS request. It is deliberately not a resolver: the
// question content of the request is never inspected, only its header.
package responder

import (
	"context"
	"net"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/common/log"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// Options configures a Responder.
type Options struct {
	// AnswerName is the domain name used in the canned question/answer pair.
	AnswerName string

	// AnswerAddr is the IPv4 address returned as the canned answer's rdata.
	AnswerAddr net.IP

	// AnswerTTL is the TTL in seconds on the canned answer.
	AnswerTTL uint32

	Logger log.Logger
}

// Responder maps decoded requests to canned responses.
type Responder struct {
	question domain.Question
	answer   domain.Answer
	logger   log.Logger
}

// New constructs a Responder from opts. The logger defaults to a no-op
// logger and the answer address to 0.0.0.0 if unset.
func New(opts Options) *Responder {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	addr := opts.AnswerAddr.To4()
	if addr == nil {
		addr = net.IPv4zero.To4()
	}
	rdata := make([]byte, net.IPv4len)
	copy(rdata, addr)

	return &Responder{
		question: domain.NewQuestion(opts.AnswerName, domain.RRTypeA, domain.RRClassIN),
		answer:   domain.NewAnswer(opts.AnswerName, domain.RRTypeA, domain.RRClassIN, opts.AnswerTTL, rdata),
		logger:   logger,
	}
}

// Respond maps a decoded request to its response and logs the outcome.
// It satisfies the transport handler contract and never fails.
func (r *Responder) Respond(ctx context.Context, req domain.Message, clientAddr net.Addr) domain.Message {
	resp := Respond(req, r.question, r.answer)

	r.logger.Debug(map[string]any{
		"client": clientAddr.String(),
		"id":     req.Header.ID,
		"opcode": req.Header.Opcode.String(),
		"rcode":  resp.Header.RCode.String(),
	}, "Built DNS response")

	return resp
}

// Respond is the pure mapping from request to response. The response
// preserves the request's transaction id, opcode and recursion-desired
// flag, is marked as a response, and carries exactly one question and one
// answer regardless of what the request held. The response code is
// NOERROR for a standard query and NOTIMP for every other opcode.
func Respond(req domain.Message, question domain.Question, answer domain.Answer) domain.Message {
	rcode := domain.RCodeNoError
	if req.Header.Opcode != domain.OpcodeQuery {
		rcode = domain.RCodeNotImplemented
	}

	header := domain.Header{
		ID:     req.Header.ID,
		QR:     true,
		Opcode: req.Header.Opcode,
		RD:     req.Header.RD,
		RCode:  rcode,
	}
	return domain.NewMessage(header, []domain.Question{question}, []domain.Answer{answer})
}
