package logger

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// probePaths are polled by the orchestrator and scraper; successful hits
// are not logged
var probePaths = []string{"/ping", "/health", "/ready", "/metrics"}

func isProbe(path string) bool {
	for _, p := range probePaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// ZapEchoMiddleware logs every request through the Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// transaction is created by the nrecho middleware when New Relic is enabled
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			req := c.Request()
			path := req.URL.Path
			if raw := req.URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if err == nil && status < http.StatusBadRequest && isProbe(req.URL.Path) {
				return nil
			}

			latency := time.Since(start)
			driverID, _ := c.Get("driver_id").(string)
			if driverID == "" {
				driverID = "anonymous"
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
			}

			logger.LogHTTPRequest(txn, req.Method, path, c.RealIP(), driverID, requestID, status, latency, err)
			return nil
		}
	}
}
