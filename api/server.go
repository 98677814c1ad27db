package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nuts-foundation/nuts-pades/logging"
)

// Config of the HTTP server.
type Config struct {
	Address string
}

// Server is the HTTP server of the signing gateway.
type Server struct {
	config Config
	echo   *echo.Echo
}

// New creates a Server with request logging and panic recovery installed.
func New(config Config) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(NewStructuredLogger(logging.Log()))
	e.Use(middleware.Recover())
	return &Server{config: config, echo: e}
}

// Router returns the router to register handlers on.
func (s *Server) Router() *echo.Echo {
	return s.echo
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	logging.Log().Infof("Starting http server on %s", s.config.Address)
	if err := s.echo.Start(s.config.Address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for running requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
