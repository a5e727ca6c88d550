package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerUnknown    = "unknown"
)

type Monitor struct {
	ctx         context.Context
	segmentName string

	// layer is which this struct places, is it in repository, delivery, or service
	layer string

	start time.Time

	segment ender
}

type ender interface {
	End()
}

type initOptions struct {
	layer       string
	segmentName string

	// datastore segments are reported to newrelic as postgres operations
	collection string
	operation  string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// WithDatastore reports the segment as a datastore call on the given table.
func WithDatastore(collection, operation string) InitOption {
	return func(o *initOptions) {
		o.collection = collection
		o.operation = operation
	}
}

func New(ctx context.Context, opts ...InitOption) *Monitor {
	fOpts := &initOptions{}
	for _, opt := range opts {
		opt(fOpts)
	}

	if fOpts.segmentName == "" {

		// WARNING: don't refactor lines below, it will break the segment name
		pc, file, _, ok := runtime.Caller(1)
		if !ok {
			// Handle cases where runtime information is not available
			pc = 0
		}

		var segmentName string

		fn := runtime.FuncForPC(pc)
		if fn != nil {
			segmentName = segmentNameFromFunc(fn.Name())
		} else {
			segmentName = "unknown"
		}

		fOpts.segmentName = segmentName
		fOpts.layer = layerFromFile(file)
	}

	txn := newrelic.FromContext(ctx)

	var segment ender
	if fOpts.collection != "" {
		ds := &newrelic.DatastoreSegment{
			StartTime:  txn.StartSegmentNow(),
			Product:    newrelic.DatastorePostgres,
			Collection: fOpts.collection,
			Operation:  fOpts.operation,
		}
		segment = ds
	} else if s := txn.StartSegment(fOpts.segmentName); s != nil {
		s.AddAttribute("layer", fOpts.layer)
		segment = s
	}

	return &Monitor{
		ctx:   ctx,
		layer: fOpts.layer,
		start: time.Now(),

		segmentName: fOpts.segmentName,
		segment:     segment,
	}
}

func layerFromFile(file string) string {
	switch {
	case strings.Contains(file, LayerRepository):
		return LayerRepository
	case strings.Contains(file, LayerService):
		return LayerService
	case strings.Contains(file, LayerDelivery):
		return LayerDelivery
	default:
		return LayerUnknown
	}
}

func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	// nr txn already exists on request.Context(), so no need to pass context

	if next == nil {
		next = http.DefaultTransport
	}

	return newrelic.NewRoundTripper(next)
}
