//go:build unit
// +build unit

package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_NewClient(t *testing.T) {
	assert.Nil(t, NewClient(nil))

	assert.NotNil(t, NewClient(&Config{
		ConnectTimeoutMS:        10000,
		ConnKeepAliveMS:         0,
		ExpectContinueTimeoutMS: 0,
		IdleConnTimeoutMS:       60000,
		MaxAllIdleConns:         1000,
		MaxHostIdleConns:        1000,
		ResponseHeaderTimeoutMS: 25000,
		TLSHandshakeTimeoutMS:   2000,
	}))
}

func Test_NewClient_Defaults(t *testing.T) {
	client := NewClient(&Config{MaxHostIdleConns: 5})

	tr, ok := client.Transport.(*http.Transport)
	assert.True(t, ok)
	// explicit value wins
	assert.Equal(t, 5, tr.MaxIdleConnsPerHost)
	// zero values are filled from defaults
	assert.Equal(t, DefaultConfig.MaxAllIdleConns, tr.MaxIdleConns)
	assert.Equal(t, time.Duration(DefaultConfig.ResponseHeaderTimeoutMS)*time.Millisecond, tr.ResponseHeaderTimeout)
}
