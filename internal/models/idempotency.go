package models

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

type IdempotencyStatus string

const (
	IdempotencyStatusPending  IdempotencyStatus = "pending"
	IdempotencyStatusFinished IdempotencyStatus = "finished"

	idempotencyKeyPrefix = "trust-ledger:idempotency:"

	// TTLIdempotency covers a client retrying a posting or check run through the next business day.
	TTLIdempotency = 24 * time.Hour
)

// Idempotency is the cached record behind an X-Idempotency-Key. A pending record is the lock
// held while the first request runs; a finished one carries the response to replay.
type Idempotency struct {
	CacheKey string            `json:"cacheKey"`
	Status   IdempotencyStatus `json:"status"`

	// Fingerprint covers the route and the body, so a key reused on another endpoint is rejected too.
	Fingerprint string `json:"fingerprint"`

	HTTPStatusCode  int               `json:"httpStatusCode,omitempty"`
	ResponseBody    string            `json:"responseBody,omitempty"`
	ResponseHeaders map[string]string `json:"responseHeaders,omitempty"`
}

func NewIdempotency(key, route string, requestBody []byte) *Idempotency {
	h := sha256.New()
	h.Write([]byte(route))
	h.Write([]byte{0})
	h.Write(requestBody)

	return &Idempotency{
		CacheKey:    idempotencyKeyPrefix + key,
		Status:      IdempotencyStatusPending,
		Fingerprint: hex.EncodeToString(h.Sum(nil)),
	}
}

// Finish records the response to replay.
func (i *Idempotency) Finish(httpStatusCode int, responseHeaders map[string]string, responseBody string) {
	i.HTTPStatusCode = httpStatusCode
	i.ResponseHeaders = responseHeaders
	i.ResponseBody = responseBody
	i.Status = IdempotencyStatusFinished
}

func (i Idempotency) IsFinished() bool {
	return i.Status == IdempotencyStatusFinished
}

func (i Idempotency) SameFingerprint(other *Idempotency) bool {
	return other != nil && i.Fingerprint == other.Fingerprint
}
