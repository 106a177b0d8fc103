// Package server exposes the scoring engine as a small JSON HTTP API with
// Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/blackwell-systems/lettergrade/internal/engine"
)

// shutdownTimeout bounds how long in-flight requests get after ctx ends.
const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	MaxInputChars int // 0 disables the cap
	Version       string
	Logger        *zap.Logger
	// Registry receives the server's collectors. A nil Registry gets a
	// private one, which keeps tests from sharing global state.
	Registry *prometheus.Registry
}

// Server routes HTTP requests to the engine.
type Server struct {
	engine        *engine.Engine
	maxInputChars int
	version       string
	log           *zap.Logger
	metrics       *Metrics
	router        *gin.Engine
}

// New builds a Server with its routes and middleware registered.
func New(eng *engine.Engine, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	s := &Server{
		engine:        eng,
		maxInputChars: opts.MaxInputChars,
		version:       opts.Version,
		log:           log,
		metrics:       NewMetrics(reg),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(
		RequestID(),
		Logging(log, s.metrics),
		Recovery(log),
	)

	r.GET("/healthz", s.handleHealth)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("/api/v1")
	api.POST("/analyse", s.handleAnalyse)
	api.GET("/roles", s.handleRoles)

	s.router = r
	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Addr normalises a port or address into a listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}
