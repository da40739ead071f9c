package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type pingRoutes struct{}

func (pingRoutes) Register(e *echo.Echo) {
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
}

func TestServer_Routes(t *testing.T) {
	srv := New(":0", true, pingRoutes{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	tests := []struct {
		path string
		code int
	}{
		{"/health", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/ping", http.StatusOK},
		{"/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.code, w.Code, tt.path)
	}
}

func TestServer_MetricsDisabled(t *testing.T) {
	srv := New(":0", false, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
