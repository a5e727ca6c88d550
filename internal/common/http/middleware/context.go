package middleware

import (
	"os"

	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	"github.com/trustbooks/go-trust-ledger/internal/common/idgenerator"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"

	"github.com/labstack/echo/v4"
)

// Context stores the correlation id, host and actor of the request on its context so every log
// line and published event of the request carries them.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	host, _ := os.Hostname()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			correlationID := req.Header.Get(constants.HeaderCorrelationID)
			if correlationID == "" {
				correlationID = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			if correlationID == "" {
				correlationID = idgenerator.NewCorrelationID()
			}
			c.Response().Header().Set(constants.HeaderCorrelationID, correlationID)

			ctx := ctxdata.Sets(req.Context(),
				ctxdata.SetCorrelationId(correlationID),
				ctxdata.SetHost(host),
				ctxdata.SetActor(req.Header.Get(constants.HeaderActor)),
			)
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}
