package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	// LoggerCtxKey is a unique identifier for the context key.
	LoggerCtxKey ctxKey = "Logger"
)

var (
	// Log holds an instance of the sugared logger
	Log     *zap.SugaredLogger
	logonce sync.Once
)

// NewLogger sets up an instance of the sugared zap logging driver.
// Only the first call configures the driver, later calls return the same instance.
func NewLogger(env string, level string, serviceKV map[string]interface{}, hookCore zapcore.Core) (*zap.SugaredLogger, error) {
	var err error
	logonce.Do(func() {
		lvl := zap.NewAtomicLevel()
		if level != "" {
			if uerr := lvl.UnmarshalText([]byte(level)); uerr != nil {
				err = fmt.Errorf("invalid log level %q: %v", level, uerr)
				return
			}
		}

		var config zap.Config
		// Set-up logger based on env
		switch env {
		case "stage", "prod", "perf":
			// Logger that writes JSON to standard error.
			// Stacktraces are automatically included on logs of ErrorLevel and above.
			config = zap.NewProductionConfig()
			config.Sampling = nil
			if level == "" {
				lvl.SetLevel(zapcore.InfoLevel)
			}
		default:
			// Logger that writes DebugLevel and above logs to standard error in a human-friendly format.
			config = zap.NewDevelopmentConfig()
			if level == "" {
				lvl.SetLevel(zapcore.DebugLevel)
			}
		}
		config.Level = lvl

		zlogger, berr := config.Build()
		if berr != nil {
			err = fmt.Errorf("error initializing zap logger: %v", berr)
			return
		}

		if hookCore != nil {
			zlogger = zlogger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
				return zapcore.NewTee(core, hookCore)
			}))
		}
		Log = zlogger.Sugar()

		AppendServiceKV(serviceKV)
	})

	if err == nil && Log == nil {
		err = fmt.Errorf("logger initialization failed earlier")
	}

	return Log, err
}

// AppendServiceKV attaches the service's core information which should exist in each log.
func AppendServiceKV(serviceKV map[string]interface{}) {
	if serviceKV != nil {
		Log = Log.With(MapToSliceOfKV(serviceKV)...)
	}
}

// WithContext returns an instance of the logger with the supplied context values populated
func WithContext(ctx context.Context, ctxFields []string) *zap.SugaredLogger {
	if Log == nil {
		Log = zap.NewNop().Sugar()
	}

	if ctx != nil && len(ctxFields) > 0 {
		var args []interface{}
		for _, field := range ctxFields {
			args = append(args, field, ctx.Value(field))
		}
		return Log.With(args...)
	}

	return Log
}

// Ctx gets logger instance from context if available else returns default.
func Ctx(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(LoggerCtxKey).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return WithContext(ctx, nil)
}

// WithLogger returns a copy of ctx carrying l, picked up later by Ctx.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, LoggerCtxKey, l)
}

// MapToSliceOfKV flattens m into alternating keys and values.
func MapToSliceOfKV(m map[string]interface{}) []interface{} {
	s := make([]interface{}, 0, 2*len(m))
	for k, v := range m {
		s = append(s, k, v)
	}
	return s
}
