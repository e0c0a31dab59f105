package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/smallnest/studymap/config"
	"github.com/smallnest/studymap/log"
	"github.com/smallnest/studymap/roadmap"
	"github.com/smallnest/studymap/study"
	"github.com/smallnest/studymap/tool"
)

// Generator produces roadmaps and notes. *study.Generator implements it.
type Generator interface {
	GenerateRoadmap(ctx context.Context, topic string) (roadmap.Tree, error)
	GenerateNotes(ctx context.Context, topic string) (string, error)
}

// Finder looks up resources. *study.Finder implements it.
type Finder interface {
	Find(ctx context.Context, topic string) *study.Resources
	FindVideo(ctx context.Context, topic string) (*tool.Video, error)
	FindArticles(ctx context.Context, topic string) ([]tool.Article, error)
}

// Server is the studymap HTTP API. It keeps no per-user state.
type Server struct {
	gen     Generator
	finder  Finder
	logger  log.Logger
	metrics *Metrics
	limiter *rateLimiter
	origins []string
	tracing bool
	now     func() time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithAllowedOrigins sets the CORS origins.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		s.origins = origins
	}
}

// WithRateLimit limits each client to cfg.MaxRequests per cfg.Window. Zero
// MaxRequests turns limiting off.
func WithRateLimit(cfg config.RateLimitConfig) Option {
	return func(s *Server) {
		if cfg.MaxRequests <= 0 {
			s.limiter = nil
			return
		}
		s.limiter = newRateLimiter(cfg.MaxRequests, cfg.Window)
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithTracing wraps the handler with OpenTelemetry instrumentation.
func WithTracing(enabled bool) Option {
	return func(s *Server) {
		s.tracing = enabled
	}
}

// WithClock sets the time source used for timestamps and file names.
func WithClock(now func() time.Time) Option {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a Server.
func New(gen Generator, finder Finder, opts ...Option) *Server {
	s := &Server{
		gen:     gen,
		finder:  finder,
		origins: []string{config.DefaultOrigin},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = log.OrDefault(s.logger)
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}
	return s
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
