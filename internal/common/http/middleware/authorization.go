package middleware

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	commonhttp "github.com/trustbooks/go-trust-ledger/internal/common/http"

	"github.com/labstack/echo/v4"
)

var (
	errRequiredSecretKey = errors.New("required secret key")
	errInvalidSecretKey  = errors.New("invalid secret key")
)

func (m *AppMiddleware) InternalAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			secretKey := c.Request().Header.Get(constants.HeaderSecretKey)
			if secretKey == "" {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errRequiredSecretKey)
			}

			if subtle.ConstantTimeCompare([]byte(secretKey), []byte(m.conf.SecretKey)) != 1 {
				return commonhttp.RestErrorResponse(c, http.StatusUnauthorized, errInvalidSecretKey)
			}

			return next(c)
		}
	}
}
