package webserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultShutdownTimeout = 5 * time.Second

// NewHTTPWebServer wraps handler in a server that shuts down gracefully,
// draining in-flight board requests for at most shutdownTimeout. A zero
// timeout selects the default.
func NewHTTPWebServer(handler http.Handler, shutdownTimeout time.Duration) *httpWebServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &httpWebServer{
		handler:         handler,
		shutdownTimeout: shutdownTimeout,
	}
}

type httpWebServer struct {
	handler         http.Handler
	shutdownTimeout time.Duration
}

// Serve runs until ctx is cancelled, then shuts down gracefully.
func (w *httpWebServer) Serve(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:    addr,
		Handler: w.handler,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("server start error: %v", err)
			errCh <- err
		}
	}()
	log.Printf("Departures board on URL: http://localhost:%d/", port)
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("initiating graceful shutdown of server...")
		ctxShutDown, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutDown); err != nil {
			log.Printf("error during graceful shutdown: %v", err)
		}
		return nil
	}
}
