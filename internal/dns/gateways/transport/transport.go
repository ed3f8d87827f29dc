// Package transport provides network transport for the DNS server. It
// owns the socket, the dispatch queue between the receive loop and the
// handler, and the wire format conversion at both edges, so the service
// layer only ever sees domain messages.
package transport

import (
	"context"
	"net"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/domain"
)

// Handler is how the service layer receives decoded DNS requests.
// The transport decodes the datagram before calling it and encodes the
// returned message for transmission. Building a response never fails, so
// the handler returns no error.
type Handler interface {
	Respond(ctx context.Context, req domain.Message, clientAddr net.Addr) domain.Message
}

// ServerTransport defines the interface for DNS server transport
// implementations. Different transport types (UDP, DoH, DoT, DoQ) can
// implement this interface while providing the same contract to the
// service layer.
type ServerTransport interface {
	// Start binds the transport and begins feeding requests to handler.
	Start(ctx context.Context, handler Handler) error

	// Stop shuts down the transport, closing the socket and stopping
	// the pipeline goroutines.
	Stop() error

	// Address returns the network address the transport is bound to.
	Address() string
}

// TransportType represents the different types of DNS transport protocols supported.
type TransportType string

const (
	// TransportUDP represents standard DNS over UDP (RFC 1035)
	TransportUDP TransportType = "udp"

	// TransportDoH represents DNS over HTTPS (RFC 8484) - future implementation
	TransportDoH TransportType = "doh"

	// TransportDoT represents DNS over TLS (RFC 7858) - future implementation
	TransportDoT TransportType = "dot"

	// TransportDoQ represents DNS over QUIC (RFC 9250) - future implementation
	TransportDoQ TransportType = "doq"
)
