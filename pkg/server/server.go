// Package server exposes the assessment engine over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobguard/go-jobguard/pkg/config"
	"github.com/jobguard/go-jobguard/pkg/engine"
	"github.com/jobguard/go-jobguard/pkg/storage"
)

// Server wires the engine, storage and HTTP surface together.
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	guard     *engine.JobGuard
	store     storage.AssessmentStore
	limiter   *ipRateLimiter
	metrics   *metrics
	router    *gin.Engine
	startedAt time.Time
}

// New builds a fully routed server. The caller owns the logger's
// lifecycle.
func New(cfg *config.Config, logger *zap.Logger, guard *engine.JobGuard, store storage.AssessmentStore) *Server {
	gin.SetMode(gin.ReleaseMode)
	registerValidations()

	s := &Server{
		cfg:       cfg,
		logger:    logger,
		guard:     guard,
		store:     store,
		limiter:   newIPRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitPerHour),
		metrics:   newMetrics(),
		startedAt: time.Now(),
	}
	s.router = s.buildRouter()
	return s
}

// Router exposes the gin engine, mainly for httptest.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	if len(s.cfg.TrustedProxies) > 0 {
		// Errors here mean a malformed CIDR in config; validated at load
		// time, so ignore.
		_ = r.SetTrustedProxies(s.cfg.TrustedProxies)
	} else {
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(s.requestID())
	r.Use(s.requestLogger())
	r.Use(s.cors())
	r.Use(gin.Recovery())
	r.Use(s.observeRequests())
	r.Use(s.rateLimit())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	if s.cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(s.metrics.handler()))
	}

	api := r.Group("/api/v1")
	api.POST("/analyze-job", s.handleAnalyzeJob)
	api.GET("/health", s.handleAPIHealth)
	api.GET("/stats", s.handleStats)

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", s.cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
