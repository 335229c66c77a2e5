package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/imdario/mergo"
)

// Config contains config the init a new http client
type Config struct {
	ConnectTimeoutMS        int
	ConnKeepAliveMS         int
	ExpectContinueTimeoutMS int
	IdleConnTimeoutMS       int
	MaxAllIdleConns         int
	MaxHostIdleConns        int
	ResponseHeaderTimeoutMS int
	TLSHandshakeTimeoutMS   int
}

// DefaultConfig fills any zero valued field of a Config passed to NewClient
var DefaultConfig = Config{
	ConnectTimeoutMS:        10000,
	ConnKeepAliveMS:         30000,
	ExpectContinueTimeoutMS: 1000,
	IdleConnTimeoutMS:       60000,
	MaxAllIdleConns:         100,
	MaxHostIdleConns:        10,
	ResponseHeaderTimeoutMS: 25000,
	TLSHandshakeTimeoutMS:   2000,
}

// NewClient return a http client
func NewClient(config *Config) *http.Client {
	if config == nil {
		return nil
	}

	merged := *config
	// only errors on mismatched types
	_ = mergo.Merge(&merged, DefaultConfig)

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: time.Duration(merged.ResponseHeaderTimeoutMS) * time.Millisecond,
		DialContext: (&net.Dialer{
			KeepAlive: time.Duration(merged.ConnKeepAliveMS) * time.Millisecond,
			Timeout:   time.Duration(merged.ConnectTimeoutMS) * time.Millisecond,
		}).DialContext,
		MaxIdleConns:          merged.MaxAllIdleConns,
		IdleConnTimeout:       time.Duration(merged.IdleConnTimeoutMS) * time.Millisecond,
		TLSHandshakeTimeout:   time.Duration(merged.TLSHandshakeTimeoutMS) * time.Millisecond,
		MaxIdleConnsPerHost:   merged.MaxHostIdleConns,
		ExpectContinueTimeout: time.Duration(merged.ExpectContinueTimeoutMS) * time.Millisecond,
	}

	return &http.Client{Transport: tr}
}
