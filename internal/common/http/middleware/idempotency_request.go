package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/trustbooks/go-trust-ledger/internal/common"
	"github.com/trustbooks/go-trust-ledger/internal/common/constants"
	commonhttp "github.com/trustbooks/go-trust-ledger/internal/common/http"
	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/models"

	"github.com/labstack/echo/v4"
)

// CheckIdempotentRequest makes a POST replay safe: the first request with a key takes a lock, a
// successful response is cached under the key and replayed for the same key and body.
func (m *AppMiddleware) CheckIdempotentRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			idempotencyKey := c.Request().Header.Get(constants.HeaderIdempotencyKey)
			if idempotencyKey == "" {
				return commonhttp.RestDomainErrorResponse(c, common.ErrMissingIdempotencyKey)
			}

			// detached from the request so the lock is still released after a client timeout
			ctx := context.WithoutCancel(c.Request().Context())
			reqBody := m.parseRequestBody(c)

			idm, err := m.getOrCreateIdempotency(ctx, idempotencyKey, c.Path(), reqBody)
			if err != nil {
				if errors.Is(err, common.ErrInvalidFingerprint) || errors.Is(err, common.ErrRequestBeingProcessed) {
					return commonhttp.RestDomainErrorResponse(c, err)
				}
				return commonhttp.RestErrorResponse(c, http.StatusInternalServerError, err)
			}

			if idm.IsFinished() {
				for k, v := range idm.ResponseHeaders {
					c.Response().Header().Set(k, v)
				}
				return c.Blob(idm.HTTPStatusCode, c.Response().Header().Get(echo.HeaderContentType), []byte(idm.ResponseBody))
			}

			resBody := m.getResponseBodyBuffer(c)
			if err = next(c); err != nil {
				c.Error(err)
			}

			statusCode := c.Response().Status
			if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
				// a failed request may be retried with the same key
				if err := m.releaseLock(ctx, idm); err != nil {
					log.Error(ctx, "[IDEMPOTENCY] failed to release lock", log.Err(err))
				}
				return nil
			}

			headers := make(map[string]string)
			for k, v := range c.Response().Header() {
				if len(v) > 0 {
					headers[k] = v[len(v)-1]
				}
			}
			idm.Finish(statusCode, headers, resBody.String())

			if err := m.saveResponseToCache(ctx, idm); err != nil {
				// the response is already written; the next replay will be rejected as in flight until the lock expires
				log.Error(ctx, "[IDEMPOTENCY] failed to save response", log.Err(err))
			}

			return nil
		}
	}
}

// getOrCreateIdempotency returns the finished record for key, or takes the pending lock when the
// key is new.
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key, route string, requestBody []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, route, requestBody)

	strIdm, err := m.cacheRepo.Get(ctx, idm.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		if err = m.createLock(ctx, idm); err != nil {
			return nil, err
		}
		return idm, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	var cachedIdm models.Idempotency
	if err = json.Unmarshal([]byte(strIdm), &cachedIdm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency data: %w", err)
	}

	if !cachedIdm.SameFingerprint(idm) {
		return nil, common.ErrInvalidFingerprint
	}

	if !cachedIdm.IsFinished() {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cachedIdm, nil
}

func (m *AppMiddleware) saveResponseToCache(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	if err = m.cacheRepo.Set(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency); err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	set, err := m.cacheRepo.SetIfNotExists(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// the same request may be in flight on another instance
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	if err := m.cacheRepo.Del(ctx, idm.CacheKey); err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}

	return nil
}
