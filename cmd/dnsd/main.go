package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/johnny423/codecrafters-dns-server/internal/dns/common/log"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/config"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/gateways/transport"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/gateways/wire"
	"github.com/johnny423/codecrafters-dns-server/internal/dns/services/responder"
)

const (
	version = "0.1.0"
	appName = "dnsd"

	defaultShutdownTimeout = 5 * time.Second
)

// Application holds the wired components of the DNS server.
type Application struct {
	config    *config.AppConfig
	transport *transport.UDPTransport
	responder *responder.Responder
}

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	// Configure global logging
	err = log.Configure(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}

	log.Info(map[string]any{
		"app":         appName,
		"version":     version,
		"env":         cfg.Env,
		"log_level":   cfg.LogLevel,
		"port":        cfg.Port,
		"queue_size":  cfg.QueueSize,
		"answer_name": cfg.AnswerName,
		"answer_addr": cfg.AnswerAddr,
	}, "Starting DNS server")

	app, err := buildApplication(cfg)
	if err != nil {
		log.Fatal(map[string]any{"error": err}, "Failed to build application")
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Info(map[string]any{"signal": sig.String()}, "Shutdown signal received")
		cancel()
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatal(map[string]any{"error": err}, "Server failed")
	}

	log.Info(nil, "DNS server stopped gracefully")
}

// buildApplication constructs all components and wires them together
func buildApplication(cfg *config.AppConfig) (*Application, error) {
	logger := log.GetLogger()

	codec := wire.NewCodec(logger)

	// AnswerAddr was validated as an IPv4 literal at config load.
	answerAddr := net.ParseIP(cfg.AnswerAddr)
	if answerAddr == nil {
		return nil, fmt.Errorf("invalid answer address: %s", cfg.AnswerAddr)
	}

	responderService := responder.New(responder.Options{
		AnswerName: cfg.AnswerName,
		AnswerAddr: answerAddr,
		AnswerTTL:  cfg.AnswerTTL,
		Logger:     logger,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	udpTransport := transport.NewUDPTransport(addr, cfg.QueueSize, codec, logger)

	return &Application{
		config:    cfg,
		transport: udpTransport,
		responder: responderService,
	}, nil
}

// Run starts the DNS server and blocks until the context is cancelled
func (app *Application) Run(ctx context.Context) error {
	if err := app.transport.Start(ctx, app.responder); err != nil {
		return fmt.Errorf("failed to start UDP transport: %w", err)
	}

	log.Info(map[string]any{
		"address":   app.transport.Address(),
		"transport": "UDP",
	}, "DNS server started")

	<-ctx.Done()

	log.Info(nil, "Shutdown initiated")

	// Bound how long shutdown may take; transport.Stop is synchronous
	// today but future transports may not be.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- app.transport.Stop()
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Warn(map[string]any{"error": err}, "Error during transport shutdown")
		}
	case <-shutdownCtx.Done():
		log.Warn(nil, "Transport shutdown timed out")
	}

	return nil
}
