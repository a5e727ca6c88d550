package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/trustbooks/go-trust-ledger/internal/common/log"
	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"
	"github.com/trustbooks/go-trust-ledger/internal/common/metrics"
	"github.com/trustbooks/go-trust-ledger/internal/config"
	"github.com/trustbooks/go-trust-ledger/internal/monitoring"
)

// NewRestyClient builds a client that retries transient upstream failures
// and reports each call as a newrelic external segment.
func NewRestyClient(cfg config.HTTPConfiguration) *resty.Client {
	client := resty.New()
	client = client.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		return isRetryableStatus(r.StatusCode())
	})

	return client.
		SetTransport(monitoring.NewMiddlewareRoundTripper(client.GetClient().Transport)).
		SetBaseURL(cfg.BaseURL).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(time.Duration(cfg.RetryWaitTime) * time.Millisecond).
		SetTimeout(cfg.Timeout)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request. route is the templated path recorded in metrics, so ids in url do
// not explode the label set.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, url, route string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []log.Field{
		log.String("url", url),
		log.String("method", method),
	}

	log.Info(ctx, w.logPrefix, append(logFields, log.String("message", "send request"))...)

	req := w.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json; charset=utf-8").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx))
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var (
		httpRes *resty.Response
		err     error
	)

	switch method {
	case http.MethodGet:
		httpRes, err = req.Get(url)
	case http.MethodPost:
		httpRes, err = req.Post(url)
	case http.MethodPut:
		httpRes, err = req.Put(url)
	case http.MethodDelete:
		httpRes, err = req.Delete(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		log.Warn(ctx, w.logPrefix, append(logFields, log.Err(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.GetHTTPClientPrometheus().Record(
			time.Since(startTime),
			w.serviceName,
			method,
			route,
			httpRes.StatusCode(),
		)
	}

	logFields = append(logFields,
		log.String("httpStatusCode", httpRes.Status()),
		log.String("httpResponse", string(httpRes.Body())),
	)

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		log.Warn(ctx, w.logPrefix, logFields...)
	} else {
		log.Info(ctx, w.logPrefix, logFields...)
	}

	return httpRes, nil
}
