package log

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/trustbooks/go-trust-ledger/internal/common/log/ctxdata"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String   = zap.String
	Strings  = zap.Strings
	Int      = zap.Int
	Int32    = zap.Int32
	Int64    = zap.Int64
	Bool     = zap.Bool
	Duration = zap.Duration
	Time     = zap.Time
	Any      = zap.Any
)

func Err(err error) Field {
	return zap.Error(err)
}

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

type options struct {
	level      zapcore.Level
	env        string
	caller     bool
	callerSkip int
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) {
		if l, err := zapcore.ParseLevel(strings.ToLower(level)); err == nil {
			o.level = l
		}
	}
}

func WithDebugLevel() Option {
	return func(o *options) {
		o.level = zapcore.DebugLevel
	}
}

func WithEnv(env string) Option {
	return func(o *options) {
		o.env = env
	}
}

func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.caller = enabled
	}
}

func AddCallerSkip(skip int) Option {
	return func(o *options) {
		o.callerSkip = skip
	}
}

// Init replaces the global logger. It returns the underlying zap logger so it can be handed
// to integrations that need it (New Relic).
func Init(appName string, opts ...Option) *zap.Logger {
	o := &options{level: zapcore.InfoLevel}
	for _, opt := range opts {
		opt(o)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "message"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(os.Stdout),
		zap.NewAtomicLevelAt(o.level),
	)

	zapOpts := []zap.Option{zap.Fields(zap.String("app", appName), zap.String("env", o.env))}
	if o.caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(o.callerSkip))
	}

	l := zap.New(core, zapOpts...)
	logger.Store(l)
	return l
}

// InitForTest installs a logger that discards everything.
func InitForTest() {
	logger.Store(zap.NewNop())
}

func Logger() *zap.Logger {
	return logger.Load()
}

func Sync() {
	_ = logger.Load().Sync()
}

func withContext(ctx context.Context, fields []Field) []Field {
	d := ctxdata.Get(ctx)
	if d.CorrelationId != "" {
		fields = append(fields, zap.String("correlation_id", d.CorrelationId))
	}
	if d.Host != "" {
		fields = append(fields, zap.String("host", d.Host))
	}
	if d.Actor != "" {
		fields = append(fields, zap.String("actor", d.Actor))
	}
	return fields
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Error(msg, withContext(ctx, fields)...)
}

func Panic(ctx context.Context, msg string, fields ...Field) {
	logger.Load().Panic(msg, withContext(ctx, fields)...)
}

func Debugf(ctx context.Context, format string, args ...any) {
	Debug(ctx, fmt.Sprintf(format, args...))
}

func Infof(ctx context.Context, format string, args ...any) {
	Info(ctx, fmt.Sprintf(format, args...))
}

func Warnf(ctx context.Context, format string, args ...any) {
	Warn(ctx, fmt.Sprintf(format, args...))
}

func Errorf(ctx context.Context, format string, args ...any) {
	Error(ctx, fmt.Sprintf(format, args...))
}

func Fatalf(ctx context.Context, format string, args ...any) {
	logger.Load().Fatal(fmt.Sprintf(format, args...), withContext(ctx, nil)...)
}
