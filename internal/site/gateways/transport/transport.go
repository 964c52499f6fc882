// Package transport exposes the site services to the browser-side glue over HTTP.
// It converts JSON requests to domain objects and back; the services only see domain types.
package transport

import (
	"context"
	"net/http"
)

// ServerTransport is the daemon's network listener.
type ServerTransport interface {
	// Start binds the listener and serves handler until Stop or ctx cancellation.
	Start(ctx context.Context, handler http.Handler) error

	// Stop gracefully shuts the listener down, waiting for in-flight requests.
	Stop() error

	// Address returns the address the transport is bound to.
	Address() string
}
