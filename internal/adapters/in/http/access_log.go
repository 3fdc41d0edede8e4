package http

import (
	"time"

	"repairshop/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// AccessLog logs one line per request.
func AccessLog(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			log.Info("http_request",
				logger.String("method", req.Method),
				logger.String("path", req.URL.Path),
				logger.Int("status", res.Status),
				logger.Int64("bytes", res.Size),
				logger.Duration("duration", time.Since(start)),
				logger.String("remote_ip", c.RealIP()),
				logger.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
				logger.String("actor", req.Header.Get(ActorHeader)),
			)
			return nil
		}
	}
}
