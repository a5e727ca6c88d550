package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"

	"github.com/labstack/echo/v4"
)

// transaction and reconciliation listings can be large, only the head is logged
const maxLoggedBodySize = 4 << 10

var (
	maskedHeaders = map[string]bool{
		"authorization": true,
		"cookie":        true,
		"set-cookie":    true,
		"x-secret-key":  true,
	}

	silentRoutes = map[string]bool{
		"/api/health": true,
		"/metrics":    true,
	}
)

// Logger writes one access log line per request. Bodies are kept because postings and approval
// decisions are audited from these lines.
func (m *AppMiddleware) Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if silentRoutes[c.Path()] {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			reqBody := m.parseRequestBody(c)
			resBody := m.getResponseBodyBuffer(c)

			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			ctx := c.Request().Context()
			fields := []log.Field{
				log.String("method", req.Method),
				log.String("route", c.Path()),
				log.String("url", req.URL.String()),
				log.Int("status", status),
				log.Duration("latency", time.Since(start)),
				log.String("actor", ctxdata.GetActor(ctx)),
				log.String("idempotencyKey", req.Header.Get(constants.HeaderIdempotencyKey)),
				log.String("requestHeader", maskHeaders(req.Header)),
				log.String("requestBody", truncateBody(reqBody)),
				log.String("responseBody", truncateBody(resBody.Bytes())),
			}

			message := "[HTTP] " + req.Method + " " + c.Path()
			switch {
			case status >= http.StatusInternalServerError:
				log.Error(ctx, message, fields...)
			case status >= http.StatusBadRequest:
				log.Warn(ctx, message, fields...)
			default:
				log.Info(ctx, message, fields...)
			}

			return nil
		}
	}
}

func maskHeaders(h http.Header) string {
	masked := make(map[string]string, len(h))
	for k := range h {
		if maskedHeaders[strings.ToLower(k)] {
			masked[k] = "*****"
			continue
		}
		masked[k] = h.Get(k)
	}

	b, _ := json.Marshal(masked)
	return string(b)
}

func truncateBody(b []byte) string {
	if len(b) <= maxLoggedBodySize {
		return string(b)
	}
	return string(b[:maxLoggedBodySize]) + "...(truncated)"
}

// parseRequestBody reads the body and puts it back for the handler.
func (m *AppMiddleware) parseRequestBody(c echo.Context) []byte {
	if c.Request().Body == nil {
		return nil
	}
	body, _ := io.ReadAll(c.Request().Body)
	c.Request().Body = io.NopCloser(bytes.NewReader(body))
	return body
}
