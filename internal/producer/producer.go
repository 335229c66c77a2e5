// Package producer sends synthetic test messages to a destination.
package producer

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/razorpay/pipeline-testkit/internal/destination"
	"github.com/razorpay/pipeline-testkit/internal/payload"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
)

// Runner sends count messages of sizeKB kilobytes each, one at a time
type Runner struct {
	dest   destination.Destination
	count  uint
	sizeKB uint
	label  string
}

// NewRunner returns a Runner delivering to dest. label names the destination kind in metrics.
func NewRunner(dest destination.Destination, label string, count, sizeKB uint) *Runner {
	return &Runner{dest: dest, count: count, sizeKB: sizeKB, label: label}
}

// Run sends the messages in order. The first failure aborts the run and is
// returned along with the number of messages sent before it. A canceled ctx
// stops the run early without an error.
func (r *Runner) Run(ctx context.Context) (uint, error) {
	logger.Ctx(ctx).Infow("sending messages", "destination", r.dest.String(), "count", r.count, "sizeKB", r.sizeKB)

	var sent uint
	for i := uint(0); i < r.count; i++ {
		if ctx.Err() != nil {
			r.logInterrupted(ctx, sent)
			return sent, nil
		}
		if err := r.send(ctx, i); err != nil {
			if ctx.Err() != nil {
				r.logInterrupted(ctx, sent)
				return sent, nil
			}
			sendErrors.WithLabelValues(env, r.label).Inc()
			return sent, err
		}
		sent++

		logger.Ctx(ctx).Infof("Sent message %d of %d (size: %dKB)", i+1, r.count, r.sizeKB)
	}

	logger.Ctx(ctx).Infof("Finished sending %d messages", r.count)
	return sent, nil
}

func (r *Runner) logInterrupted(ctx context.Context, sent uint) {
	logger.Ctx(ctx).Warnf("Interrupted after sending %d of %d messages", sent, r.count)
}

func (r *Runner) send(ctx context.Context, i uint) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "Producer.Send")
	defer span.Finish()
	span.SetTag("message.index", i)

	body, err := payload.Encode(payload.New(i, r.sizeKB))
	if err != nil {
		return err
	}

	startTime := time.Now()
	if err = r.dest.Deliver(ctx, body); err != nil {
		span.SetTag("error", true)
		return err
	}
	deliveryTimeTaken.WithLabelValues(env, r.label).Observe(time.Now().Sub(startTime).Seconds())
	messagesSent.WithLabelValues(env, r.label).Inc()
	bytesSent.WithLabelValues(env, r.label).Add(float64(len(body)))

	return nil
}
