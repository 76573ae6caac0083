// Package server exposes the step generators over HTTP.
//
// Every run endpoint streams application/x-ndjson: one JSON snapshot per
// line, flushed as soon as the player releases it. The catalog, a health
// probe and Prometheus metrics are served alongside.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/stepviz/catalog"
	"github.com/katalvlaran/stepviz/graphsearch"
	"github.com/katalvlaran/stepviz/internal/config"
	"github.com/katalvlaran/stepviz/internal/logging"
	"github.com/katalvlaran/stepviz/pathfind"
	"github.com/katalvlaran/stepviz/player"
	"github.com/katalvlaran/stepviz/search"
	"github.com/katalvlaran/stepviz/sorting"
)

// ErrBadRequest wraps malformed query parameters and bodies.
var ErrBadRequest = errors.New("server: bad request")

// Request limits.
const (
	MaxValues    = 1000
	MaxMagnitude = 1_000_000 // bound on |v| for every array value
	MaxBodySize  = 1 << 20
)

var validate = validator.New()

// Server holds the shared dependencies of every handler.
type Server struct {
	cfg      config.Config
	catalog  *catalog.Catalog
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *player.Metrics
	paced    bool
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and playback logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegistry registers the playback metrics with reg and serves reg at
// /metrics. Without it the server uses a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// WithoutPacing streams frames as fast as the client reads them.
func WithoutPacing() Option {
	return func(s *Server) { s.paced = false }
}

// New returns a Server using cfg for defaults (speed, size, seed, heartbeat,
// maze density).
func New(cfg config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		catalog: catalog.Default(),
		logger:  logging.NewNop(),
		paced:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = player.NewMetrics(s.registry)

	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, s.logRequests)

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/algorithms", s.algorithms)
		r.Get("/sort/{algorithm}", s.sort)
		r.Get("/search/{algorithm}", s.search)
		r.Post("/pathfind/{algorithm}", s.pathfind)
		r.Post("/graph/{algorithm}", s.graph)
	})

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) algorithms(w http.ResponseWriter, r *http.Request) {
	family := r.URL.Query().Get("family")
	if family == "" {
		writeJSON(w, http.StatusOK, s.catalog.All())
		return
	}
	for _, f := range catalog.Families() {
		if string(f) == family {
			writeJSON(w, http.StatusOK, s.catalog.ByFamily(f))
			return
		}
	}
	fail(w, http.StatusBadRequest, errors.New("server: unknown family "+family))
}

// statusFor maps construction errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sorting.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrUnknownAlgorithm),
		errors.Is(err, pathfind.ErrUnknownAlgorithm),
		errors.Is(err, graphsearch.ErrUnknownAlgorithm):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
