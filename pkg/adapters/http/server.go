package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	autocopilot "github.com/benfrussell/AutoCopilot"
	"github.com/benfrussell/AutoCopilot/internal/presentation/graph"
	"github.com/benfrussell/AutoCopilot/pkg/codec"
	"github.com/benfrussell/AutoCopilot/pkg/domain"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Copilot defines what the HTTP adapter needs from the copilot.
type Copilot interface {
	Instructions() *domain.Group
	Encode(w io.Writer, format codec.Format) error
	Publish(ctx context.Context) error
}

// Server exposes the current instruction tree over HTTP.
type Server struct {
	Copilot Copilot
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*options)

type options struct {
	logger  *slog.Logger
	metrics http.Handler
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsHandler mounts h (typically a promhttp handler) on /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(o *options) {
		o.metrics = h
	}
}

// NewHandler creates a new HTTP handler for the copilot.
//
//	GET  /healthz
//	GET  /instructions?format=json|yaml
//	GET  /graph
//	GET  /kinds
//	POST /publish
//	GET  /metrics (when configured)
func NewHandler(cp Copilot, opts ...Option) http.Handler {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	s := &Server{Copilot: cp, Logger: o.logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.Health)
	r.Get("/instructions", s.GetInstructions)
	r.Get("/graph", s.GetGraph)
	r.Get("/kinds", s.GetKinds)
	r.Post("/publish", s.Publish)
	if o.metrics != nil {
		r.Handle("/metrics", o.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// GetInstructions handles GET /instructions.
func (s *Server) GetInstructions(w http.ResponseWriter, r *http.Request) {
	format, err := codec.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if err := s.Copilot.Encode(w, format); err != nil {
		http.Error(w, fmt.Sprintf("Serialization error: %v", err), http.StatusInternalServerError)
		s.Logger.Error("GetInstructions: encode failed", "error", err, "format", format)
	}
}

// GetGraph handles GET /graph.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(s.Copilot.Instructions())))
}

// GetKinds handles GET /kinds.
func (s *Server) GetKinds(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(domain.ActionCatalog()); err != nil {
		s.Logger.Error("GetKinds: encode failed", "error", err)
	}
}

// Publish handles POST /publish.
func (s *Server) Publish(w http.ResponseWriter, r *http.Request) {
	if err := s.Copilot.Publish(r.Context()); err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, autocopilot.ErrNoPublisher) {
			status = http.StatusServiceUnavailable
		}
		http.Error(w, fmt.Sprintf("Publish error: %v", err), status)
		s.Logger.Warn("Publish failed", "error", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
