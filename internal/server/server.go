// internal/server/server.go
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"time"

	"activity-signup/internal/common/logger"
	"activity-signup/internal/common/observability"
	"activity-signup/internal/registry"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// defaultReadHeaderTimeout caps how long a client may take to send headers.
const defaultReadHeaderTimeout = 5 * time.Second

// defaultShutdownTimeout caps the graceful-shutdown drain on exit.
const defaultShutdownTimeout = 5 * time.Second

//go:embed static
var staticFS embed.FS

// Config defines the inputs for the signup HTTP server.
type Config struct {
	Address           string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server hosts the activity-signup HTTP API.
type Server struct {
	registry        *registry.Registry
	cache           *registry.ListCache
	obs             *observability.Observability
	logger          logger.Logger
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

// New builds a configured server. cache and obs may be nil.
func New(cfg Config, reg *registry.Registry, cache *registry.ListCache, obs *observability.Observability, log logger.Logger) (*Server, error) {
	if cfg.Address == "" {
		return nil, errors.New("server address is required")
	}
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	if cfg.ReadHeaderTimeout <= 0 {
		cfg.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	s := &Server{
		registry:        reg,
		cache:           cache,
		obs:             obs,
		logger:          log.WithFields(map[string]interface{}{"component": "server"}),
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	return s, nil
}

// Handler returns the full route table. Exposed so tests and the e2e suite
// can drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.instrument("/", s.handleRoot))
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	mux.HandleFunc("GET /activities", s.instrument("/activities", s.handleListActivities))
	mux.HandleFunc("POST /activities/{name}/signup", s.instrument("/activities/{name}/signup", s.handleSignup))
	mux.HandleFunc("DELETE /activities/{name}/unregister", s.instrument("/activities/{name}/unregister", s.handleUnregister))

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	s.logger.Info("listening", map[string]interface{}{"address": s.httpServer.Addr})
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
