package transport

import (
	"fmt"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/common/log"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/gateways/wire"
)

// NewTransport creates a new transport instance based on the specified
// type. This factory allows for additional transport protocols in the
// future while keeping a consistent interface.
func NewTransport(transportType TransportType, addr string, queueSize int, codec wire.Codec, logger log.Logger) (ServerTransport, error) {
	switch transportType {
	case TransportUDP:
		return NewUDPTransport(addr, queueSize, codec, logger), nil

	case TransportDoH:
		return nil, fmt.Errorf("DNS over HTTPS transport not yet implemented")

	case TransportDoT:
		return nil, fmt.Errorf("DNS over TLS transport not yet implemented")

	case TransportDoQ:
		return nil, fmt.Errorf("DNS over QUIC transport not yet implemented")

	default:
		return nil, fmt.Errorf("unsupported transport type: %s", transportType)
	}
}

// GetSupportedTransports returns a list of currently supported transport types.
func GetSupportedTransports() []TransportType {
	return []TransportType{
		TransportUDP,
	}
}

// IsTransportSupported checks if a given transport type is currently supported.
func IsTransportSupported(transportType TransportType) bool {
	for _, t := range GetSupportedTransports() {
		if t == transportType {
			return true
		}
	}
	return false
}
