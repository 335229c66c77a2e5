//go:build unit
// +build unit

package sentry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Test_core_Write(t *testing.T) {
	c := &core{LevelEnabler: zapcore.ErrorLevel}
	assert.Nil(t, c.Write(zapcore.Entry{}, make([]zapcore.Field, 0)))
}

func Test_core_Check(t *testing.T) {
	c := &core{LevelEnabler: zapcore.ErrorLevel}

	ce := c.Check(zapcore.Entry{Level: zapcore.InfoLevel}, nil)
	assert.Nil(t, ce)

	ce = c.Check(zapcore.Entry{Level: zapcore.ErrorLevel}, nil)
	assert.NotNil(t, ce)
}

func Test_core_With(t *testing.T) {
	c := &core{LevelEnabler: zapcore.ErrorLevel, fields: map[string]interface{}{"a": "1"}}
	nc := c.With([]zapcore.Field{zap.String("b", "2")}).(*core)

	assert.Equal(t, "1", nc.fields["a"])
	assert.Equal(t, "2", nc.fields["b"])
	// parent is left untouched
	assert.Len(t, c.fields, 1)
	assert.True(t, nc.Enabled(zapcore.ErrorLevel))
}

func TestInitSentry_Mock(t *testing.T) {
	hook, err := InitSentry(&Config{Mock: true}, "dev")
	assert.Nil(t, err)
	assert.False(t, hook.Enabled(zapcore.FatalLevel))

	hook, err = InitSentry(nil, "dev")
	assert.Nil(t, err)
	assert.NotNil(t, hook)
}

func Test_sentryLevel(t *testing.T) {
	assert.Equal(t, sentry.LevelWarning, sentryLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelError, sentryLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelFatal, sentryLevel(zapcore.PanicLevel))
}
