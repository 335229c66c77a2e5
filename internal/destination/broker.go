package destination

import (
	"context"
	"fmt"

	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
)

// BrokerDestination publishes to a topic through a message broker producer
type BrokerDestination struct {
	variant  string
	topic    string
	producer messagebroker.Producer
}

// NewBrokerDestination wraps an already connected producer
func NewBrokerDestination(variant, topic string, producer messagebroker.Producer) *BrokerDestination {
	return &BrokerDestination{variant: variant, topic: topic, producer: producer}
}

// DialBroker connects a producer for topic on the configured broker variant
func DialBroker(ctx context.Context, variant string, bConfig *messagebroker.BrokerConfig, options *messagebroker.ProducerClientOptions) (*BrokerDestination, error) {
	producer, err := messagebroker.NewProducerClient(ctx, variant, bConfig, options)
	if err != nil {
		return nil, merror.Wrapf(merror.Connection, err, "failed to create %v producer for topic %v", variant, options.Topic)
	}
	return NewBrokerDestination(variant, options.Topic, producer), nil
}

// Deliver publishes body and waits for the broker receipt
func (b *BrokerDestination) Deliver(ctx context.Context, body []byte) error {
	resp, err := b.producer.SendMessage(ctx, messagebroker.SendMessageToTopicRequest{
		Topic:   b.topic,
		Message: body,
	})
	if err != nil {
		return merror.Wrapf(merror.Transport, err, "failed to send message to topic %v", b.topic)
	}

	logger.Ctx(ctx).Debugw("message published", "topic", b.topic, "messageID", resp.MessageID)
	return nil
}

// Close closes the underlying producer
func (b *BrokerDestination) Close(ctx context.Context) error {
	return b.producer.Close(ctx)
}

func (b *BrokerDestination) String() string {
	return fmt.Sprintf("%v topic %v", b.variant, b.topic)
}
