package middleware

import (
	"context"
	"strconv"
	"time"

	"localxp-api/core/constants"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Middleware struct {
	metrics        *metrics.Metrics
	requestTimeout time.Duration
}

func NewMiddleware(m *metrics.Metrics, requestTimeout time.Duration) *Middleware {
	if requestTimeout <= 0 {
		requestTimeout = constants.DefaultRequestTimeout
	}
	return &Middleware{metrics: m, requestTimeout: requestTimeout}
}

// RequestID reuses the caller's X-Request-ID or generates a new one.
func (m *Middleware) RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(constants.HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Set(constants.ContextRequestID, id)
			c.Response().Header().Set(constants.HeaderRequestID, id)
			return next(c)
		}
	}
}

func (m *Middleware) Timeout() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), m.requestTimeout)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// AccessLog logs every request and records its latency.
func (m *Middleware) AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			duration := time.Since(start)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			if m.metrics != nil {
				m.metrics.HTTPRequestDuration.
					WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).
					Observe(duration.Seconds())
			}

			logger.Info("HTTP:Request",
				"request_id", c.Get(constants.ContextRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration", duration,
			)
			return nil
		}
	}
}
