package health

import (
	"context"
	"fmt"
	"net/http"
	"sync"
)

// Core tracks whether the running process should be reported as healthy.
type Core struct {
	isHealthy bool
	mutex     sync.Mutex
}

// NewCore creates Core.
func NewCore(_ context.Context) *Core {
	return &Core{
		isHealthy: true,
	}
}

// RunHealthCheck returns true until the process is marked unhealthy.
func (c *Core) RunHealthCheck(_ context.Context) (bool, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.isHealthy {
		return false, fmt.Errorf("marked unhealthy")
	}
	return true, nil
}

// MarkUnhealthy marks the process as unhealthy for health check to return negative
func (c *Core) MarkUnhealthy() {
	c.mutex.Lock()
	c.isHealthy = false
	c.mutex.Unlock()
}

// Handler serves the health status, 200 when healthy and 503 otherwise
func (c *Core) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, err := c.RunHealthCheck(r.Context())
		if !ok {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}
