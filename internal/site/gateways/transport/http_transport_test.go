package transport

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/sitewatch/internal/site/common/log"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
}

func TestHTTPTransport_StartServeStop(t *testing.T) {
	tr := NewHTTPTransport("127.0.0.1:0", log.NewNoopLogger())
	assert.Equal(t, "127.0.0.1:0", tr.Address())

	require.NoError(t, tr.Start(context.Background(), okHandler()))
	addr := tr.Address()
	assert.NotEqual(t, "127.0.0.1:0", addr)

	resp, err := http.Get("http://" + addr + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	// second start is rejected while running
	assert.Error(t, tr.Start(context.Background(), okHandler()))

	require.NoError(t, tr.Stop())
	// stop is idempotent
	require.NoError(t, tr.Stop())

	_, err = http.Get("http://" + addr + "/")
	assert.Error(t, err)
}

func TestHTTPTransport_StopsOnContextCancel(t *testing.T) {
	tr := NewHTTPTransport("127.0.0.1:0", nil)
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, tr.Start(ctx, okHandler()))
	addr := tr.Address()

	cancel()
	assert.Eventually(t, func() bool {
		_, err := http.Get("http://" + addr + "/")
		return err != nil
	}, 2*time.Second, 20*time.Millisecond)
}

func TestHTTPTransport_BindError(t *testing.T) {
	tr := NewHTTPTransport("256.0.0.1:http", nil)
	assert.Error(t, tr.Start(context.Background(), okHandler()))
}

var _ ServerTransport = (*HTTPTransport)(nil)
