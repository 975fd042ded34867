// Package nats runs the embedded NATS server that carries submitted orders
// from the wizard to downstream consumers.
package nats

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/macroplate/macroplate/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

// Bus is an in-process NATS server with a JetStream context.
type Bus struct {
	server   *server.Server
	conn     *nats.Conn
	js       jetstream.JetStream
	storeDir string
	ownsDir  bool
}

// Start launches an embedded server without network listeners. JetStream
// needs a store directory even when every stream uses memory storage; when
// storeDir is empty a temporary one is created and removed on Close.
func Start(storeDir string) (*Bus, error) {
	ownsDir := false
	if storeDir == "" {
		dir, err := os.MkdirTemp("", "macroplate-nats-*")
		if err != nil {
			return nil, fmt.Errorf("creating nats store dir: %w", err)
		}
		storeDir = dir
		ownsDir = true
	}
	logger.Debug("Starting embedded NATS server with store dir: %s", storeDir)

	opts := &server.Options{
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		logger.Error("Failed to create NATS server: %v", err)
		return nil, err
	}
	go ns.Start()

	if !ns.ReadyForConnections(4 * time.Second) {
		logger.Error("NATS server failed to start within 4s timeout")
		ns.Shutdown()
		return nil, errors.New("nats server failed to start within timeout")
	}

	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		logger.Error("Failed to connect to NATS in-process: %v", err)
		ns.Shutdown()
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	logger.Debug("NATS server ready for connections")
	return &Bus{server: ns, conn: nc, js: js, storeDir: storeDir, ownsDir: ownsDir}, nil
}

// JetStream returns the bus JetStream context.
func (b *Bus) JetStream() jetstream.JetStream {
	return b.js
}

// Conn returns the in-process client connection.
func (b *Bus) Conn() *nats.Conn {
	return b.conn
}

// Close drains the connection and shuts the server down, waiting at most a
// few seconds for each.
func (b *Bus) Close() error {
	logger.Debug("Starting NATS shutdown")

	if b.conn != nil {
		drainDone := make(chan error, 1)
		go func() {
			drainDone <- b.conn.Drain()
		}()

		select {
		case err := <-drainDone:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				b.conn.Close()
			}
		case <-time.After(2 * time.Second):
			logger.Warn("NATS drain timed out after 2s, forcing close")
			b.conn.Close()
		}
	}

	var shutdownErr error
	if b.server != nil {
		b.server.Shutdown()

		shutdownDone := make(chan struct{})
		go func() {
			b.server.WaitForShutdown()
			close(shutdownDone)
		}()

		select {
		case <-shutdownDone:
			logger.Debug("NATS server shut down cleanly")
		case <-time.After(5 * time.Second):
			logger.Error("NATS server shutdown timed out after 5s")
			shutdownErr = errors.New("NATS server shutdown timed out")
		}
	}

	if b.ownsDir {
		if err := os.RemoveAll(b.storeDir); err != nil {
			logger.Warn("Removing NATS store dir: %v", err)
		}
	}
	return shutdownErr
}
