package webserver

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeShutsDownOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ws := NewHTTPWebServer(http.NotFoundHandler(), 100*time.Millisecond)

	done := make(chan error, 1)
	go func() {
		done <- ws.Serve(ctx, 0)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err, "cancellation is a clean shutdown, not an error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestShutdownTimeoutDefault(t *testing.T) {
	ws := NewHTTPWebServer(http.NotFoundHandler(), 0)
	require.Equal(t, defaultShutdownTimeout, ws.shutdownTimeout)

	ws = NewHTTPWebServer(http.NotFoundHandler(), time.Second)
	require.Equal(t, time.Second, ws.shutdownTimeout)
}
