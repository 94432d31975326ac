// Package server exposes the translator over HTTP.
//
// All endpoints share one set of indices loaded at startup:
//
//	POST /v1/translate   {"declarations": "...", "options": {...}}
//	POST /v1/sort        {"classes": "..."}
//	POST /v1/responsive  {"inputs": ["...", "..."], "breakpoints": ["md"]}
//	GET  /v1/classes     ?plugin=backgroundColor
//	GET  /v1/info
//	GET  /healthz
//
// Every response carries an X-Request-ID header. A valid UUID sent by the
// client is reused, anything else is replaced.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/figwind/pkg/httputil"
	"github.com/matzehuels/figwind/pkg/observability"
	"github.com/matzehuels/figwind/pkg/pipeline"
	"github.com/matzehuels/figwind/pkg/translate"
)

// RequestIDHeader carries the request id.
const RequestIDHeader = "X-Request-ID"

// Defaults for Config.
const (
	DefaultAddr           = "127.0.0.1:8787"
	DefaultRequestTimeout = 30 * time.Second
)

// Config configures a Server.
type Config struct {
	Addr           string
	RequestTimeout time.Duration
	// Options are used when a translate request sends none.
	Options translate.Options
}

// DefaultConfig returns the default server configuration.
func DefaultConfig() Config {
	return Config{
		Addr:           DefaultAddr,
		RequestTimeout: DefaultRequestTimeout,
		Options:        translate.DefaultOptions(),
	}
}

// Server serves the HTTP API.
type Server struct {
	cfg    Config
	runner *pipeline.Runner
	ix     *pipeline.Indexes
	logger *log.Logger
}

// New creates a server over loaded indices.
func New(cfg Config, runner *pipeline.Runner, ix *pipeline.Indexes, logger *log.Logger) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg, runner: runner, ix: ix, logger: logger}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.instrument)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	r.NotFound(httputil.NotFound)
	r.MethodNotAllowed(httputil.MethodNotAllowed)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/translate", s.handleTranslate)
		r.Post("/sort", s.handleSort)
		r.Post("/responsive", s.handleResponsive)
		r.Get("/classes", s.handleClasses)
		r.Get("/info", s.handleInfo)
	})
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type ctxKey struct{}

// RequestID returns the request id stored by the middleware.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, time.Since(start))
		s.logger.Debug("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start))
	})
}
