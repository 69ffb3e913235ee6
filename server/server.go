package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Server wires the query handlers into a gin engine.
type Server struct {
	cfg    Config
	engine *gin.Engine
	nextID atomic.Uint64
}

// New validates cfg and builds the router. It does not touch gin's
// process-wide mode; callers apply cfg.Mode with gin.SetMode.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Server{cfg: cfg, engine: gin.New()}
	s.engine.Use(gin.Logger(), gin.Recovery(), s.requestID())

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := s.engine.Group("/v1")
	v1.GET("/path", s.handlePath)
	v1.GET("/distances", s.handleDistances)
	v1.GET("/components", s.handleComponents)

	return s, nil
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// requestID stamps every response with a monotonically increasing X-Request-Id.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := s.nextID.Add(1)
		c.Header("X-Request-Id", strconv.FormatUint(id, 10))
		c.Next()
	}
}
