package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/razorpay/pipeline-testkit/internal/boot"
	"github.com/razorpay/pipeline-testkit/internal/cli"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
)

func main() {
	// Initialize context, canceled on SIGINT (Ctrl+C) or SIGTERM
	ctx, stop := signal.NotifyContext(boot.NewContext(context.Background()), syscall.SIGINT, syscall.SIGTERM)

	// Init app dependencies
	env := boot.GetEnv()
	if err := boot.InitProducer(ctx, env); err != nil {
		log.Fatalf("failed to init producer: %v", err)
	}

	err := cli.NewProducerCommand(run).ExecuteContext(ctx)
	stop()
	if err != nil {
		logger.Ctx(ctx).Errorw("producer failed", "error", err.Error(), "code", merror.CodeOf(err).String())
	}

	// Shutdown tracer
	_ = boot.Closer.Close()
	_ = logger.Ctx(ctx).Sync()

	os.Exit(merror.ExitCode(err))
}
