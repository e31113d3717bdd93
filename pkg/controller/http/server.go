package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/combine/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr       string
	healthPath string
	sourceName string
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithHealthPath sets the path of the health check endpoint. An empty path
// disables it, so every path is served as a combo request.
func WithHealthPath(path string) Option {
	return func(c *config) {
		c.healthPath = path
	}
}

// WithSourceName sets the asset source name reported by the health check
func WithSourceName(name string) Option {
	return func(c *config) {
		c.sourceName = name
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	comboUC interfaces.ComboUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr:       "localhost:8300",
		sourceName: "local",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	if cfg.healthPath != "" {
		router.Handle(cfg.healthPath, newHealthHandler(cfg.sourceName))
	}

	// Every other path and method is a combo request
	comboHandler := NewComboHandler(comboUC)
	router.Handle("/*", http.HandlerFunc(comboHandler.Handle))

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}
