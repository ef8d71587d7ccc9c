package tracer

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	traceSpan "go.opentelemetry.io/otel/trace"

	"github.com/stratal/objstore/v1/observability"
)

// observer turns completed operations into OpenTelemetry spans.
type observer struct {
	client *Tracer
}

// NewObserver returns an observability.Observer that emits one span per
// observed operation. The span is named after the operation and carries the
// component, resource and payload size as attributes. Because the Observer
// is called after the operation completes, the span is backdated so that its
// start and end timestamps bracket the reported duration.
//
// Example:
//
//	tracerClient := tracer.NewClient(cfg, log)
//	client = client.WithObserver(tracer.NewObserver(tracerClient))
func NewObserver(client *Tracer) observability.Observer {
	return &observer{client: client}
}

func (o *observer) ObserveOperation(opCtx observability.OperationContext) {
	end := time.Now()
	start := end.Add(-opCtx.Duration)

	tracer := o.client.tracer.Tracer("")
	_, span := tracer.Start(context.Background(), opCtx.Operation,
		traceSpan.WithTimestamp(start),
		traceSpan.WithSpanKind(traceSpan.SpanKindClient),
	)

	attrs := []attribute.KeyValue{
		attribute.String("component", opCtx.Component),
	}
	if opCtx.Resource != "" {
		attrs = append(attrs, attribute.String("bucket", opCtx.Resource))
	}
	if opCtx.SubResource != "" {
		attrs = append(attrs, attribute.String("key", opCtx.SubResource))
	}
	if opCtx.Size > 0 {
		attrs = append(attrs, attribute.Int64("size_bytes", opCtx.Size))
	}
	for k, v := range opCtx.Metadata {
		attrs = append(attrs, attribute.String(k, stringify(v)))
	}
	span.SetAttributes(attrs...)

	if opCtx.Error != nil {
		span.RecordError(opCtx.Error)
		span.SetStatus(codes.Error, opCtx.Error.Error())
	}

	span.End(traceSpan.WithTimestamp(end))
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
