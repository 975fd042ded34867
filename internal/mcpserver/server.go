// Package mcpserver exposes the signup flow over MCP so remote clients can
// drive a checkout without the terminal UI. Every remote session owns its own
// controller.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/macroplate/macroplate/internal/hooks"
	"github.com/macroplate/macroplate/internal/logger"
	"github.com/macroplate/macroplate/internal/orders"
	"github.com/macroplate/macroplate/internal/signup"
	"github.com/mark3labs/mcp-go/server"
)

// OrderLister lists orders accepted so far.
type OrderLister interface {
	Orders(ctx context.Context) ([]orders.SubmittedOrder, error)
}

// Options configure the signup tools.
type Options struct {
	Catalog   signup.Catalog
	Rules     signup.RecommendationRules
	GoalLimit int
	Submitter orders.Submitter
	Orders    OrderLister // optional; enables signup-orders
	Hooks     *hooks.Config
	WorkDir   string
	// SessionIdleTimeout evicts sessions with no tool call for this long.
	// Defaults to DefaultSessionIdleTimeout.
	SessionIdleTimeout time.Duration
}

// DefaultSessionIdleTimeout is how long an abandoned checkout is kept.
const DefaultSessionIdleTimeout = 30 * time.Minute

// Server manages an embedded MCP HTTP server with the signup tools.
type Server struct {
	opts       Options
	sessions   *registry
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	stdServer  *http.Server // Standard HTTP server that uses the listener
	stopReaper chan struct{}
	addr       string
	mu         sync.Mutex
}

// New creates a server. The server is not started until Start() is called.
func New(opts Options) *Server {
	if len(opts.Catalog) == 0 {
		opts.Catalog = signup.DefaultCatalog()
	}
	if opts.GoalLimit <= 0 {
		opts.GoalLimit = signup.DefaultGoalLimit
	}
	if opts.Submitter == nil {
		opts.Submitter = orders.LogSubmitter{Rules: opts.Rules}
	}
	if opts.SessionIdleTimeout <= 0 {
		opts.SessionIdleTimeout = DefaultSessionIdleTimeout
	}
	s := &Server{
		opts:     opts,
		sessions: newRegistry(),
	}
	s.mcpServer = server.NewMCPServer(
		"macroplate",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// Start listens on addr ("127.0.0.1:0" when empty) and serves MCP on /mcp.
// Returns the bound address.
func (s *Server) Start(ctx context.Context, addr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return "", fmt.Errorf("server already started")
	}
	if addr == "" {
		addr = "127.0.0.1:0"
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.addr = listener.Addr().String()

	// Pass the listener directly to avoid a TOCTOU race on the port.
	mux := http.NewServeMux()
	mcpHandler := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
	mux.Handle("/mcp", mcpHandler)

	s.stdServer = &http.Server{
		Handler: mux,
	}
	s.httpServer = mcpHandler

	logger.Debug("Starting MCP server on %s", s.addr)

	// Capture stdServer for the goroutine to avoid a race with Stop()
	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	s.stopReaper = make(chan struct{})
	go s.reapIdleSessions(s.stopReaper)

	logger.Info("MCP server ready on %s", s.addr)
	return s.addr, nil
}

// reapIdleSessions evicts idle sessions until stop is closed.
func (s *Server) reapIdleSessions(stop <-chan struct{}) {
	ticker := time.NewTicker(max(s.opts.SessionIdleTimeout/4, time.Second))
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.evictIdleSessions()
		}
	}
}

func (s *Server) evictIdleSessions() int {
	evicted := s.sessions.evictIdle(s.opts.SessionIdleTimeout)
	for _, id := range evicted {
		logger.Info("Signup session %s evicted after %s idle", id, s.opts.SessionIdleTimeout)
	}
	return len(evicted)
}

// Stop stops the MCP HTTP server. Open signup sessions are discarded.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil // Already stopped
	}

	logger.Debug("Stopping MCP server")
	if s.stopReaper != nil {
		close(s.stopReaper)
		s.stopReaper = nil
	}
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.httpServer = nil
	s.stdServer = nil
	if n := s.sessions.clear(); n > 0 {
		logger.Info("Discarded %d open signup session(s)", n)
	}
	logger.Debug("MCP server stopped")
	return nil
}

// URL returns the HTTP URL for the MCP server endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://%s/mcp", s.addr)
}
