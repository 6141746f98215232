// Package router assembles the HTTP surface: the tool-dispatch
// endpoint, health, and Prometheus metrics.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mindwell/voicedesk/internal/http/handlers"
	httpmiddleware "github.com/mindwell/voicedesk/internal/http/middleware"
	"github.com/mindwell/voicedesk/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ToolsHandler       *handlers.ToolsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", handlers.Health)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// The voice platform posts every tool call here. Method filtering
	// stays inside the handler so non-POST requests get the documented
	// envelope, not Chi's bare 405.
	r.HandleFunc("/api/tools", cfg.ToolsHandler.Handle)

	return r
}
