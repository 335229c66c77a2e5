package main

import (
	"context"
	"time"

	"github.com/razorpay/pipeline-testkit/internal/boot"
	"github.com/razorpay/pipeline-testkit/internal/cli"
	"github.com/razorpay/pipeline-testkit/internal/destination"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/internal/metrics"
	"github.com/razorpay/pipeline-testkit/internal/producer"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
)

const (
	defaultProducerNamePrefix = "pipeline-testkit-producer-"
	closeTimeout              = 10 * time.Second
)

func run(ctx context.Context, args cli.ProducerArgs) error {
	dest, label, err := newDestination(ctx, args)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if cerr := dest.Close(closeCtx); cerr != nil {
			logger.Ctx(ctx).Warnw("failed to close destination", "destination", dest.String(), "error", cerr.Error())
		}
	}()

	runner := producer.NewRunner(dest, label, args.Count, args.SizeKB)
	return metrics.RunAlongside(ctx, boot.Config.Metrics, func(ctx context.Context) error {
		_, err := runner.Run(ctx)
		return err
	})
}

// newDestination builds the destination selected by args along with its metrics label
func newDestination(ctx context.Context, args cli.ProducerArgs) (destination.Destination, string, error) {
	if args.IsHTTP() {
		dest, err := destination.NewHTTPDestination(args.HTTPEndpoint, args.AuthToken, boot.Config.HTTPClient)
		if err != nil {
			return nil, "", err
		}
		return dest, "http", nil
	}

	variant := boot.Config.Broker.Variant
	bConfig := boot.Config.Broker.BrokerConfig()

	if boot.Config.Producer.CreateTopic {
		createTopic(ctx, variant, bConfig, args.Topic)
	}

	dest, err := destination.DialBroker(ctx, variant, bConfig, &messagebroker.ProducerClientOptions{
		Topic:      args.Topic,
		Name:       producerName(),
		TimeoutSec: boot.Config.Producer.SendTimeoutSec,
	})
	if err != nil {
		return nil, "", err
	}
	return dest, variant, nil
}

// createTopic provisions the topic before the run, failures only warn since
// the topic may already exist or be auto created by the broker
func createTopic(ctx context.Context, variant string, bConfig *messagebroker.BrokerConfig, topic string) {
	admin, err := messagebroker.NewAdminClient(ctx, variant, bConfig, &messagebroker.AdminClientOptions{})
	if err != nil {
		logger.Ctx(ctx).Warnw("failed to create admin client", "error", merror.Wrap(merror.Connection, err, "admin").Error())
		return
	}

	_, err = admin.CreateTopic(ctx, messagebroker.CreateTopicRequest{
		Name:          topic,
		NumPartitions: boot.Config.Producer.TopicPartitions,
	})
	if err != nil {
		logger.Ctx(ctx).Warnw("failed to create topic", "topic", topic, "error", err.Error())
		return
	}
	logger.Ctx(ctx).Infow("created topic", "topic", topic)
}

func producerName() string {
	if boot.Config.Producer.Name != "" {
		return boot.Config.Producer.Name
	}
	return defaultProducerNamePrefix + boot.RunID[:8]
}
