package main

import (
	"context"
	"time"

	"github.com/razorpay/pipeline-testkit/internal/boot"
	"github.com/razorpay/pipeline-testkit/internal/cli"
	"github.com/razorpay/pipeline-testkit/internal/consumer"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/internal/metrics"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
)

func run(ctx context.Context, args cli.ConsumerArgs) error {
	variant := boot.Config.Broker.Variant

	client, err := messagebroker.NewConsumerClient(ctx, variant, boot.Config.Broker.BrokerConfig(), &messagebroker.ConsumerClientOptions{
		Topic:        args.Topic,
		Subscription: args.SubscriptionName,
		ConsumerName: args.ConsumerName,
	})
	if err != nil {
		return merror.Wrapf(merror.Connection, err, "failed to subscribe %v to %v", args.SubscriptionName, args.Topic)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), time.Duration(boot.Config.Consumer.CloseTimeoutSec)*time.Second)
		defer cancel()
		if cerr := client.Close(closeCtx); cerr != nil {
			logger.Ctx(ctx).Warnw("failed to close consumer", "topic", args.Topic, "error", cerr.Error())
		}
	}()

	logger.Ctx(ctx).Infow("consuming messages", "variant", variant, "topic", args.Topic,
		"subscription", args.SubscriptionName, "consumer", args.ConsumerName)

	runner := consumer.NewRunner(client, args.Topic)
	err = metrics.RunAlongside(ctx, boot.Config.Metrics, runner.Run)

	logger.Ctx(ctx).Infow("consumer finished", "count", runner.Count())
	return err
}
