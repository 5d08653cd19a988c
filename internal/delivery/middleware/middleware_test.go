package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"foodcart/config"
	deliverycontext "foodcart/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses client id", incoming: "req-42", keep: true},
		{name: "generates when missing", incoming: ""},
		{name: "replaces oversized id", incoming: strings.Repeat("x", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			handler := NewRequestIDMiddleware(slog.Default()).Process(func(c echo.Context) error {
				ctxID = deliverycontext.RequestIDFromContext(c.Request().Context())
				assert.NotNil(t, deliverycontext.Logger(c.Request().Context()))

				return nil
			})
			require.NoError(t, handler(c))

			headerID := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, ctxID, headerID)
			if tt.keep {
				assert.Equal(t, tt.incoming, headerID)
			} else {
				assert.NotEqual(t, tt.incoming, headerID)
				assert.NotEmpty(t, headerID)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	newLogged := func(debug bool) (*LoggerMiddleware, *bytes.Buffer) {
		buf := &bytes.Buffer{}
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		return NewLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)), cfg), buf
	}

	serve := func(m *LoggerMiddleware, h echo.HandlerFunc) *httptest.ResponseRecorder {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/orders?page=2", nil), rec)
		require.NoError(t, m.Handle(h)(c))

		return rec
	}

	t.Run("success is quiet outside debug", func(t *testing.T) {
		m, buf := newLogged(false)
		serve(m, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		assert.Empty(t, buf.String())
	})

	t.Run("success is logged in debug", func(t *testing.T) {
		m, buf := newLogged(true)
		serve(m, func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		assert.Contains(t, buf.String(), `"status":200`)
		assert.Contains(t, buf.String(), `"query":"page=2"`)
	})

	t.Run("handler error is rendered then logged", func(t *testing.T) {
		m, buf := newLogged(false)
		rec := serve(m, func(c echo.Context) error {
			return echo.NewHTTPError(http.StatusNotFound, "missing")
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), `"status":404`)
	})
}
