package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ToolObserver records tool invocation counts and latency.
type ToolObserver struct {
	invocations metric.Int64Counter
	latency     metric.Float64Histogram
}

// NewToolObserver creates a tool observer bound to the provided meter.
func NewToolObserver(meter metric.Meter) (*ToolObserver, error) {
	invocations, err := meter.Int64Counter(
		"bank_support.tool.invocations",
		metric.WithDescription("Number of tool invocations"),
	)
	if err != nil {
		return nil, err
	}
	latency, err := meter.Float64Histogram(
		"bank_support.tool.latency",
		metric.WithDescription("Tool latency in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &ToolObserver{invocations: invocations, latency: latency}, nil
}

// ObserveInvoke records one finished invocation. isError marks results the
// protocol reports as errors; backendFailed marks backend calls that failed
// even though the tool answered normally. A nil observer is a no-op.
func (o *ToolObserver) ObserveInvoke(ctx context.Context, toolName string, elapsed time.Duration, isError, backendFailed bool) {
	if o == nil {
		return
	}
	options := metric.WithAttributes(
		attribute.String("tool_name", toolName),
		attribute.Bool("is_error", isError),
		attribute.Bool("backend_failed", backendFailed),
	)
	o.invocations.Add(ctx, 1, options)
	o.latency.Record(ctx, elapsed.Seconds(), options)
}
