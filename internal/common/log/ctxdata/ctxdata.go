// Package ctxdata carries request scoped values that every log line should include.
package ctxdata

import "context"

type ctxKey struct{}

type Data struct {
	CorrelationId string
	Host          string
	Actor         string
}

type Option func(*Data)

func SetCorrelationId(id string) Option {
	return func(d *Data) {
		d.CorrelationId = id
	}
}

func SetHost(host string) Option {
	return func(d *Data) {
		d.Host = host
	}
}

func SetActor(actor string) Option {
	return func(d *Data) {
		d.Actor = actor
	}
}

// Sets copies the existing data on ctx, applies opts and stores the result on a child context.
func Sets(ctx context.Context, opts ...Option) context.Context {
	d := Get(ctx)
	for _, opt := range opts {
		opt(&d)
	}
	return context.WithValue(ctx, ctxKey{}, d)
}

func Get(ctx context.Context) Data {
	if ctx == nil {
		return Data{}
	}
	if d, ok := ctx.Value(ctxKey{}).(Data); ok {
		return d
	}
	return Data{}
}

func GetCorrelationId(ctx context.Context) string {
	return Get(ctx).CorrelationId
}

func GetActor(ctx context.Context) string {
	return Get(ctx).Actor
}
