package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/haukened/sitewatch/internal/site/common/log"
)

const shutdownTimeout = 5 * time.Second

// HTTPTransport implements ServerTransport over plain HTTP on a TCP listener.
type HTTPTransport struct {
	addr   string
	logger log.Logger

	// Synchronization for graceful shutdown
	mu       sync.RWMutex
	running  bool
	listener net.Listener
	server   *http.Server
	done     chan struct{}
}

// NewHTTPTransport creates a new HTTP transport instance.
func NewHTTPTransport(addr string, logger log.Logger) *HTTPTransport {
	return &HTTPTransport{
		addr:   addr,
		logger: log.OrNoop(logger),
	}
}

// Start binds the TCP listener and serves handler in the background.
// Cancelling ctx stops the transport like Stop does.
func (t *HTTPTransport) Start(ctx context.Context, handler http.Handler) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return fmt.Errorf("HTTP transport already running")
	}

	ln, err := net.Listen("tcp", t.addr)
	if err != nil {
		return fmt.Errorf("failed to bind TCP socket on %s: %w", t.addr, err)
	}

	t.listener = ln
	t.server = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	t.done = make(chan struct{})
	t.running = true

	t.logger.Info(map[string]any{
		"transport": "http",
		"address":   ln.Addr().String(),
	}, "API transport started")

	go t.serve(t.server, ln, t.done)
	go func(done <-chan struct{}) {
		select {
		case <-ctx.Done():
			t.logger.Debug(nil, "HTTP transport stopping due to context cancellation")
			_ = t.Stop()
		case <-done:
		}
	}(t.done)

	return nil
}

func (t *HTTPTransport) serve(srv *http.Server, ln net.Listener, done chan struct{}) {
	defer close(done)
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.logger.Error(map[string]any{
			"error": err.Error(),
		}, "HTTP transport failed")
	}
}

// Stop gracefully shuts down the HTTP transport.
func (t *HTTPTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := t.server.Shutdown(ctx)
	if err != nil {
		t.logger.Warn(map[string]any{
			"error": err.Error(),
		}, "Error shutting down HTTP server")
	}
	<-t.done

	t.running = false

	t.logger.Info(map[string]any{
		"transport": "http",
		"address":   t.listener.Addr().String(),
	}, "API transport stopped")

	return err
}

// Address returns the bound address once started, or the configured one before.
func (t *HTTPTransport) Address() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.listener != nil {
		return t.listener.Addr().String()
	}
	return t.addr
}
