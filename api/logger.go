package api

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// NewStructuredLogger returns a middleware that logs every request as a single logrus entry.
// Handler errors are passed to the echo error handler first, so the logged status is the one sent.
func NewStructuredLogger(logger *logrus.Entry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)
			if err != nil {
				ctx.Error(err)
			}

			req := ctx.Request()
			res := ctx.Response()
			entry := logger.WithFields(logrus.Fields{
				"method":   req.Method,
				"uri":      req.URL.Path,
				"remote":   ctx.RealIP(),
				"status":   res.Status,
				"bytes":    res.Size,
				"duration": time.Since(start).String(),
			})
			switch {
			case res.Status >= 500:
				entry.WithError(err).Error("Request failed")
			case res.Status >= 400:
				entry.Warn("Request rejected")
			default:
				entry.Info("Request handled")
			}
			return nil
		}
	}
}
