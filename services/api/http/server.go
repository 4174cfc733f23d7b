package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hydrolens/aquaview-demo/services/api/alerts"
	"github.com/hydrolens/aquaview-demo/services/api/config"
	"github.com/hydrolens/aquaview-demo/services/api/session"
	"github.com/hydrolens/aquaview-demo/services/api/watergrid"
)

// sessionKey is the gin context key requireSession stores the resolved
// session under.
const sessionKey = "aquaview.session"

// Server bundles router and dependencies for the REST API.
type Server struct {
	cfg      config.Config
	sessions *session.Manager
	engine   *gin.Engine
}

// New constructs a server with routes and middleware.
func New(cfg config.Config, sessions *session.Manager) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())
	engine.Use(corsMiddleware(cfg.CORSOrigin))

	registerValidations()

	server := &Server{cfg: cfg, sessions: sessions, engine: engine}
	engine.Use(server.metricsMiddleware())
	server.registerRoutes()
	return server
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.registerV1Routes()
}

// requireSession resolves the X-Session-ID header into a live session
// and stashes it on the gin context for the handlers downstream.
// Missing header is a 400, unknown or expired ids are a 404.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Session-ID")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header is required"})
			return
		}

		sess, err := s.sessions.Get(id)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func sessionFrom(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// renderApplyError maps reducer errors onto HTTP statuses. Unknown
// targets surface as 404, a session swept mid-request as 404, anything
// else as 500.
func renderApplyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, watergrid.ErrNoSuchCell), errors.Is(err, alerts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, session.ErrClosed):
		c.JSON(http.StatusNotFound, gin.H{"error": "session expired"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, X-Session-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
