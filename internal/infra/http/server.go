package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes — то, что вешает свои маршруты на общий echo.
type Routes interface {
	Register(e *echo.Echo)
}

type Server struct {
	srv *http.Server
	e   *echo.Echo
}

func New(addr string, exposeMetrics bool, routes Routes, log *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(log))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	if exposeMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}
	if routes != nil {
		routes.Register(e)
	}

	return &Server{
		srv: &http.Server{Addr: addr, Handler: e, ReadHeaderTimeout: 10 * time.Second},
		e:   e,
	}
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req, res := c.Request(), c.Response()
			log.Debug("http request",
				"method", req.Method,
				"uri", req.RequestURI,
				"status", res.Status,
				"size", res.Size,
				"took", time.Since(start),
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

func (s *Server) Handler() http.Handler { return s.e }

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
