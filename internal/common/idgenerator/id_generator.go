// Package idgenerator generates entity ids composed of a type prefix, a millisecond timestamp
// and a base64 encoded UUID, so ids of one type sort roughly by creation time.
package idgenerator

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entity prefixes
const (
	PrefixTrustAccount     = "TA"
	PrefixClientLedger     = "CL"
	PrefixTransaction      = "TX"
	PrefixReconciliation   = "RC"
	PrefixApprovalWorkflow = "AW"
	PrefixApprovalRequest  = "AR"
	PrefixApprovalDecision = "AD"
	PrefixVendorBill       = "VB"
	PrefixCheckRun         = "CR"
	PrefixCheckRunItem     = "CI"
	PrefixEvent            = "EV"
)

type Generator interface {
	Generate(prefixes ...string) string
}

type IDGenerator struct {
	now func() time.Time
}

func New() Generator {
	return &IDGenerator{now: time.Now}
}

// Generate joins prefixes with "-" and appends the timestamp and encoded UUID.
// Without a prefix only the timestamp and UUID are returned.
func (g *IDGenerator) Generate(prefixes ...string) string {
	prefix := strings.Join(prefixes, "-")
	epocTime := g.now().UnixMilli()
	encodedUUID := rawURLEncodedUUID(uuid.New())

	if prefix == "" {
		return fmt.Sprintf("%d%s", epocTime, encodedUUID)
	}
	return fmt.Sprintf("%s-%d%s", prefix, epocTime, encodedUUID)
}

// NewCorrelationID returns a plain UUID string for request and job correlation.
func NewCorrelationID() string {
	return uuid.NewString()
}

func rawURLEncodedUUID(id uuid.UUID) string {
	return base64.RawURLEncoding.EncodeToString(id[:])
}
