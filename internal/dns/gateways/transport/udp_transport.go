package transport

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/common/log"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/gateways/wire"
)

const (
	// defaultQueueSize bounds the dispatch queue when no size is given.
	defaultQueueSize = 1024

	// maxDatagramSize is the standard DNS UDP packet size limit.
	maxDatagramSize = 512
)

// packet carries one received datagram through the dispatch queue.
type packet struct {
	data []byte
	addr *net.UDPAddr
}

// UDPTransport implements ServerTransport for standard DNS over UDP
// (RFC 1035). Datagrams are read by a single receive goroutine and pushed
// onto a bounded queue consumed by a single handler goroutine running
// decode, respond, encode, send. When the queue is full the receive loop
// blocks rather than dropping, so load surfaces as backpressure on the
// socket. With one consumer, responses leave in arrival order.
//
// The socket is polled for reads only by the receive goroutine; the
// handler goroutine shares it for sends, which *net.UDPConn permits
// concurrently.
type UDPTransport struct {
	addr      string
	queueSize int
	conn      *net.UDPConn
	codec     wire.Codec
	logger    log.Logger

	// Synchronization for graceful shutdown
	mu      sync.RWMutex
	running bool
	stopCh  chan struct{}
}

// NewUDPTransport creates a new UDP transport instance. queueSize bounds
// the dispatch queue; values below 1 fall back to the default.
func NewUDPTransport(addr string, queueSize int, codec wire.Codec, logger log.Logger) *UDPTransport {
	if queueSize < 1 {
		queueSize = defaultQueueSize
	}
	return &UDPTransport{
		addr:      addr,
		queueSize: queueSize,
		codec:     codec,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// Start binds the UDP socket and launches the receive and handler
// goroutines.
func (t *UDPTransport) Start(ctx context.Context, handler Handler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("UDP transport already running")
	}

	udpAddr, err := net.ResolveUDPAddr("udp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to resolve UDP address %s: %w", t.addr, err)
	}

	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return fmt.Errorf("failed to bind UDP socket on %s: %w", t.addr, err)
	}

	t.conn = conn
	t.running = true

	queue := make(chan packet, t.queueSize)
	go t.receiveLoop(ctx, queue)
	go t.handleLoop(ctx, queue, handler)

	t.logger.Info(map[string]any{
		"transport":  "udp",
		"address":    t.addr,
		"queue_size": t.queueSize,
	}, "DNS transport started")

	return nil
}

// Stop gracefully shuts down the UDP transport.
func (t *UDPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	// Signal stop and close connection
	close(t.stopCh)

	var closeErr error
	if t.conn != nil {
		closeErr = t.conn.Close()
		if closeErr != nil {
			t.logger.Warn(map[string]any{
				"error": closeErr.Error(),
			}, "Error closing UDP connection")
		}
	}

	t.running = false

	t.logger.Info(map[string]any{
		"transport": "udp",
		"address":   t.addr,
	}, "DNS transport stopped")

	return closeErr
}

// Address returns the network address the transport is bound to.
func (t *UDPTransport) Address() string {
	return t.addr
}

// receiveLoop reads datagrams and pushes them onto the dispatch queue.
// It is the only reader of the socket. The queue send blocks when the
// queue is full; nothing is dropped silently.
func (t *UDPTransport) receiveLoop(ctx context.Context, queue chan<- packet) {
	defer close(queue)
	buffer := make([]byte, maxDatagramSize)

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug(nil, "UDP receive loop stopping due to context cancellation")
			return
		case <-t.stopCh:
			t.logger.Debug(nil, "UDP receive loop stopping due to stop signal")
			return
		default:
		}

		n, clientAddr, err := t.conn.ReadFromUDP(buffer)
		if err != nil {
			// Check if we're shutting down
			t.mu.RLock()
			running := t.running
			t.mu.RUnlock()

			if !running {
				return // Normal shutdown
			}

			t.logger.Warn(map[string]any{
				"error": err.Error(),
			}, "Failed to read UDP packet")
			continue
		}

		t.logger.Debug(map[string]any{
			"client": clientAddr.String(),
			"size":   n,
		}, "Received datagram")

		data := make([]byte, n)
		copy(data, buffer[:n])

		select {
		case queue <- packet{data: data, addr: clientAddr}:
		case <-ctx.Done():
			return
		case <-t.stopCh:
			return
		}
	}
}

// handleLoop pulls packets off the dispatch queue one at a time and runs
// each through decode, respond, encode, send.
func (t *UDPTransport) handleLoop(ctx context.Context, queue <-chan packet, handler Handler) {
	for {
		select {
		case <-ctx.Done():
			t.logger.Debug(nil, "UDP handler loop stopping due to context cancellation")
			return
		case <-t.stopCh:
			t.logger.Debug(nil, "UDP handler loop stopping due to stop signal")
			return
		case p, ok := <-queue:
			if !ok {
				return
			}
			t.handlePacket(ctx, p, handler)
		}
	}
}

// handlePacket processes a single datagram. Any failure is terminal for
// this datagram only: it is logged, no response is sent, and the loop
// moves on.
func (t *UDPTransport) handlePacket(ctx context.Context, p packet, handler Handler) {
	req, err := t.codec.DecodeMessage(p.data)
	if err != nil {
		t.logger.Warn(map[string]any{
			"client": p.addr.String(),
			"error":  err.Error(),
			"size":   len(p.data),
		}, "Dropping undecodable DNS query")
		return
	}

	resp := handler.Respond(ctx, req, p.addr)

	data, err := t.codec.EncodeMessage(resp)
	if err != nil {
		t.logger.Error(map[string]any{
			"client": p.addr.String(),
			"id":     resp.Header.ID,
			"error":  err.Error(),
		}, "Failed to encode DNS response")
		return
	}

	n, err := t.conn.WriteToUDP(data, p.addr)
	if err != nil {
		t.logger.Error(map[string]any{
			"client": p.addr.String(),
			"id":     resp.Header.ID,
			"error":  err.Error(),
		}, "Failed to send DNS response")
		return
	}

	t.logger.Debug(map[string]any{
		"client": p.addr.String(),
		"id":     resp.Header.ID,
		"rcode":  resp.Header.RCode.String(),
		"size":   n,
	}, "Sent DNS response")
}

var _ ServerTransport = &UDPTransport{}
