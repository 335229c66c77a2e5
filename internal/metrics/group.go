package metrics

import (
	"context"

	"github.com/razorpay/pipeline-testkit/internal/config"
	"golang.org/x/sync/errgroup"
)

// RunAlongside runs fn and, when an address is configured, serves the
// metrics endpoint until fn returns. The first error of either is returned.
func RunAlongside(ctx context.Context, conf config.Metrics, fn func(context.Context) error) error {
	if conf.Address == "" {
		return fn(ctx)
	}

	group, gctx := errgroup.WithContext(ctx)
	serverCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()

	server := NewServer(gctx, conf.Address, conf.ShutdownTimeoutSec)
	group.Go(func() error {
		return server.Run(serverCtx)
	})
	group.Go(func() error {
		defer stopServer()
		return fn(gctx)
	})

	return group.Wait()
}
