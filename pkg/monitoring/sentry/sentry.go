package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/zap/zapcore"
)

var (
	env     string
	appName string
)

// core is a zapcore.Core forwarding entries at or above its level to sentry
type core struct {
	fields map[string]interface{}
	zapcore.LevelEnabler
}

// Config holds sentry config
type Config struct {
	AppName    string
	DSN        string
	Mock       bool
	ErrorLevel int8
}

// Write captures the entry as a sentry event
func (c *core) Write(log zapcore.Entry, fs []zapcore.Field) error {
	// Any additional info goes into extra
	extra := make(map[string]interface{}, len(c.fields)+2)
	extra["Caller"] = log.Caller.String()
	for k, v := range c.fields {
		extra[k] = v
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fs {
		f.AddTo(enc)
	}
	extra["WithFields"] = enc.Fields

	event := &sentry.Event{
		ServerName:  appName,
		Environment: env,
		Level:       sentryLevel(log.Level),
		Message:     log.Message,
		Logger:      log.LoggerName,
		Transaction: log.Stack,
		Extra:       extra,
	}
	sentry.CaptureEvent(event)

	return nil
}

// InitSentry initializes Sentry client and returns a core to be teed into the logger.
// A mock config returns a no-op core.
func InitSentry(conf *Config, environ string) (zapcore.Core, error) {
	if conf == nil || conf.Mock {
		return zapcore.NewNopCore(), nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         conf.DSN,
		Environment: environ,
	})
	if err != nil {
		return nil, fmt.Errorf("sentry initialization failed: %v", err)
	}
	env = environ
	appName = conf.AppName

	return &core{
		LevelEnabler: zapcore.Level(conf.ErrorLevel),
		fields:       make(map[string]interface{}),
	}, nil
}

func (c *core) With(fs []zapcore.Field) zapcore.Core {
	m := make(map[string]interface{}, len(c.fields)+len(fs))
	for k, v := range c.fields {
		m[k] = v
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fs {
		f.AddTo(enc)
	}
	for k, v := range enc.Fields {
		m[k] = v
	}

	return &core{
		fields:       m,
		LevelEnabler: c.LevelEnabler,
	}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Sync() error {
	sentry.Flush(time.Second)
	return nil
}

func sentryLevel(l zapcore.Level) sentry.Level {
	switch l {
	case zapcore.DebugLevel:
		return sentry.LevelDebug
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	default:
		return sentry.LevelFatal
	}
}
