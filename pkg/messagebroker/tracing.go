package messagebroker

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/razorpay/pipeline-testkit/pkg/logger"
)

type spanContextOption struct {
	messageContext opentracing.SpanContext
}

func (r spanContextOption) Apply(o *opentracing.StartSpanOptions) {
	if r.messageContext != nil {
		opentracing.ChildOf(r.messageContext).Apply(o)
	}
	ext.SpanKindConsumer.Apply(o)
}

// SpanContextOption returns a StartSpanOption appropriate for a Consumer span
// with `messageContext` representing the metadata for the producer Span if available. otherwise it will be a root span
func SpanContextOption(messageContext opentracing.SpanContext) opentracing.StartSpanOption {
	return spanContextOption{messageContext}
}

// GetSpanContext will extract information from attributes and return a SpanContext
func GetSpanContext(ctx context.Context, attributes map[string]string) opentracing.SpanContext {
	if len(attributes) == 0 {
		return nil
	}
	spanContext, extractErr := opentracing.GlobalTracer().Extract(opentracing.TextMap, opentracing.TextMapCarrier(attributes))
	if extractErr != nil {
		if extractErr != opentracing.ErrSpanContextNotFound {
			logger.Ctx(ctx).Warnw("failed to get span context from message", "error", extractErr.Error())
		}
		return nil
	}
	return spanContext
}

// injectSpanContext writes the span context of the active span in ctx into attributes
func injectSpanContext(ctx context.Context, attributes map[string]string) map[string]string {
	span := opentracing.SpanFromContext(ctx)
	if span == nil {
		return attributes
	}
	if attributes == nil {
		attributes = make(map[string]string)
	}
	if err := span.Tracer().Inject(span.Context(), opentracing.TextMap, opentracing.TextMapCarrier(attributes)); err != nil {
		logger.Ctx(ctx).Warnw("failed to inject span context into message", "error", err.Error())
	}
	return attributes
}
