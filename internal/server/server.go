package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"c1check/internal/apperr"
	"c1check/internal/config"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const (
	GracefulShutdownTimeout = 10 * time.Second
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

type Server struct {
	Echo *echo.Echo

	cfg    config.ServerConfig
	health HealthChecker
}

// New builds the echo instance with middlewares and routes registered.
func New(cfg config.ServerConfig, health HealthChecker) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.DisableHTTP2 = !cfg.UseHTTP2
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()

	s := &Server{
		Echo:   e,
		cfg:    cfg,
		health: health,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(Logger())
	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.cfg.CorsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	s.Echo.Use(middleware.BodyLimit(bodyLimit(s.cfg.MaxSourceBytes)))
}

func (s *Server) setupRoutes() {
	s.Echo.GET("/health", s.healthHandler)

	v1 := s.Echo.Group("/v1")
	v1.POST("/validate", validateHandler)
	v1.POST("/tokens", tokensHandler)
}

func (s *Server) healthHandler(c echo.Context) error {
	if !s.health.Healthy(c.Request().Context()) {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.Echo.Start(":" + s.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	return s.Echo.Shutdown(shutdownCtx)
}
