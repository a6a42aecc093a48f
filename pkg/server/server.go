// Package server exposes the generation pipeline over HTTP.
//
// The router serves a small HTML front end, a JSON API and the generated
// artifacts:
//
//	GET  /                    prompt form
//	POST /generate            form submission, renders the result page
//	POST /api/generate        JSON pipeline.Options in, pipeline.Result out
//	GET  /api/history         recent generations
//	GET  /api/history/{id}    one generation
//	GET  /generated/{name}    a PDF or PNG artifact
//	GET  /healthz             liveness
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pipeline"
)

// DefaultRequestTimeout bounds a single generation.
const DefaultRequestTimeout = 2 * time.Minute

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithRequestTimeout bounds each generation request.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

// WithSizes sets the page sizes rendered for form submissions and for API
// requests that name none. Empty means pipeline.DefaultSizes.
func WithSizes(sizes []string) Option {
	return func(s *Server) { s.sizes = slices.Clone(sizes) }
}

// Server handles HTTP requests against a pipeline runner.
type Server struct {
	runner  *pipeline.Runner
	logger  *log.Logger
	timeout time.Duration
	sizes   []string
	pages   pageTemplates
	router  chi.Router
}

// New builds the router. The runner must have a writer; its directory is
// what /generated serves.
func New(runner *pipeline.Runner, opts ...Option) (*Server, error) {
	if runner == nil || runner.Writer == nil {
		return nil, perrors.New(perrors.ErrCodeInvalidConfig, "server needs a runner with an artifact writer")
	}
	s := &Server{runner: runner, timeout: DefaultRequestTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if _, err := canvas.ParsePageSizes(s.sizes); err != nil {
		return nil, err
	}
	pages, err := parseTemplates()
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "load templates")
	}
	s.pages = pages
	s.router = s.routes()
	return s, nil
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/generated/{name}", s.handleArtifact)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(s.timeout))
		r.Get("/", s.handleIndex)
		r.Post("/generate", s.handleGenerateForm)
		r.Route("/api", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateAPI)
			r.Get("/history", s.handleHistoryList)
			r.Get("/history/{id}", s.handleHistoryGet)
		})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      s.timeout + 15*time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return perrors.Wrap(perrors.ErrCodeNetwork, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "shutdown")
	}
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
