//go:build unit
// +build unit

package merror

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(InvalidArgument, "bad flag")
	assert.Equal(t, InvalidArgument, err.Code())
	assert.Equal(t, "InvalidArgument: bad flag", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(Transport, "status %d", 500)
	assert.Equal(t, "TransportError: status 500", err.Error())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(Connection, nil, "connect"))

	cause := fmt.Errorf("dial tcp: refused")
	err := Wrap(Connection, cause, "failed to connect to broker")

	assert.True(t, Is(err, Connection))
	assert.False(t, Is(err, Transport))
	assert.Equal(t, cause, errors.Cause(err))
	assert.Contains(t, err.Error(), "dial tcp: refused")
}

func TestWrapf(t *testing.T) {
	err := Wrapf(Serialization, context.Canceled, "message %d", 3)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Contains(t, err.Error(), "message 3")
}

func TestCodeOf_Chain(t *testing.T) {
	err := errors.Wrap(New(Serialization, "bad json"), "sending")
	assert.Equal(t, Serialization, CodeOf(err))
	assert.Equal(t, Unknown, CodeOf(fmt.Errorf("plain")))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(New(InvalidArgument, "x")))
	assert.Equal(t, 3, ExitCode(New(Connection, "x")))
	assert.Equal(t, 4, ExitCode(New(Serialization, "x")))
	assert.Equal(t, 5, ExitCode(New(Transport, "x")))
	assert.Equal(t, 1, ExitCode(fmt.Errorf("plain")))
}

func TestCode_String(t *testing.T) {
	assert.Equal(t, "TransportError", Transport.String())
	assert.Equal(t, "Unknown", Code(42).String())
}
