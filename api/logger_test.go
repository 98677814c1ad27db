package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewStructuredLogger(t *testing.T) {
	setup := func() (*echo.Echo, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		logger := logrus.New()
		logger.Out = buf
		logger.Formatter = &logrus.JSONFormatter{}
		e := echo.New()
		e.Use(NewStructuredLogger(logrus.NewEntry(logger)))
		return e, buf
	}

	t.Run("ok", func(t *testing.T) {
		e, buf := setup()
		e.GET("/ok", func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "hello")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), `"uri":"/ok"`)
		assert.Contains(t, buf.String(), `"level":"info"`)
	})

	t.Run("http error", func(t *testing.T) {
		e, buf := setup()
		e.GET("/missing", func(ctx echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "not here")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"status":404`)
		assert.Contains(t, buf.String(), `"level":"warning"`)
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "a request is logged exactly once")
	})

	t.Run("internal error", func(t *testing.T) {
		e, buf := setup()
		e.GET("/fail", func(ctx echo.Context) error {
			return errors.New("database on fire")
		})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "database on fire")
	})
}
