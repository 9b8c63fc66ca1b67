package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"contacts/config"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id kept", header: "client-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "oversized id replaced", header: strings.Repeat("a", maxRequestIDLength+1)},
		{name: "control characters replaced", header: "bad\tid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			err := m.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantStatus string
		wantLevel  string
	}{
		{name: "success", wantStatus: "status=200", wantLevel: "level=INFO"},
		{name: "app error", handlerErr: errors.Wrap(domainerrors.ErrContactNotFound, "find"), wantStatus: "status=404", wantLevel: "level=WARN"},
		{name: "echo error", handlerErr: echo.ErrMethodNotAllowed, wantStatus: "status=405", wantLevel: "level=WARN"},
		{name: "unknown error", handlerErr: errors.New("boom"), wantStatus: "status=500", wantLevel: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = true
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/contacts?page=2", nil), httptest.NewRecorder())
			deliverycontext.SetUser(c, &entity.User{Username: "alice"})

			err := m.Handle(func(c echo.Context) error {
				if tt.handlerErr != nil {
					return tt.handlerErr
				}

				return c.NoContent(http.StatusOK)
			})(c)
			assert.Equal(t, tt.handlerErr, err)

			line := buf.String()
			assert.Contains(t, line, tt.wantStatus)
			assert.Contains(t, line, tt.wantLevel)
			assert.Contains(t, line, "username=alice")
			assert.Contains(t, line, `query="page=2"`)
		})
	}
}

func TestLoggerMiddlewareDisabled(t *testing.T) {
	var buf bytes.Buffer
	m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{})

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.Empty(t, buf.String())
}
