// Package consumer receives, acknowledges and counts test messages from a subscription.
package consumer

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/razorpay/pipeline-testkit/internal/merror"
	"github.com/razorpay/pipeline-testkit/internal/payload"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
	"github.com/razorpay/pipeline-testkit/pkg/messagebroker"
)

// Runner pulls messages off a subscription one at a time
type Runner struct {
	consumer messagebroker.Consumer
	topic    string
	count    uint
}

// NewRunner returns a Runner reading from consumer
func NewRunner(consumer messagebroker.Consumer, topic string) *Runner {
	return &Runner{consumer: consumer, topic: topic}
}

// Count returns the number of messages successfully decoded so far
func (r *Runner) Count() uint {
	return r.count
}

// Run receives until the stream ends, ctx is done, or a message fails to decode.
// Every message is acked before it is decoded, so a malformed message is
// consumed and ends the run. Those three endings return nil, receive and
// ack failures return a transport error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		msg, err := r.consumer.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, messagebroker.ErrStreamClosed) || ctx.Err() != nil {
				logger.Ctx(ctx).Infow("stopping consumer", "topic", r.topic, "count", r.count)
				return nil
			}
			return merror.Wrapf(merror.Transport, err, "failed to receive message from %v", r.topic)
		}
		messagesReceived.WithLabelValues(env, r.topic).Inc()

		stop, err := r.handle(ctx, msg)
		if err != nil || stop {
			return err
		}
	}
}

// handle acks and decodes a single message, stop is set when the loop must end
func (r *Runner) handle(ctx context.Context, msg *messagebroker.ReceivedMessage) (stop bool, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Consumer.Handle",
		messagebroker.SpanContextOption(messagebroker.GetSpanContext(ctx, msg.Attributes)))
	defer span.Finish()

	if err = r.consumer.Commit(ctx, msg); err != nil {
		return true, merror.Wrapf(merror.Transport, err, "failed to ack message %v", msg.MessageID)
	}
	messagesAcked.WithLabelValues(env, r.topic).Inc()

	data, err := payload.Decode(msg.Data)
	if err != nil {
		deserializeFailures.WithLabelValues(env, r.topic).Inc()
		span.SetTag("error", true)
		logger.Ctx(ctx).Errorw("could not deserialize message", append(msg.LogFields(), "error", err.Error())...)
		return true, nil
	}

	logger.Ctx(ctx).Debugw("received message", "data", data.Data)
	r.count++
	logger.Ctx(ctx).Infof("got %d messages", r.count)

	return false, nil
}
