package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records binding metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordBind records a binding being attached to a target.
	RecordBind(ctx context.Context, event, method string)

	// RecordUnbind records a binding being detached from a target.
	RecordUnbind(ctx context.Context, event, method string)

	// RecordDispatch records one invocation of a bound receiver method.
	RecordDispatch(ctx context.Context, event, method string, duration time.Duration, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	binds           metric.Int64Counter
	unbinds         metric.Int64Counter
	activeBindings  metric.Int64UpDownCounter
	dispatches      metric.Int64Counter
	dispatchErrors  metric.Int64Counter
	dispatchLatency metric.Float64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily builds the shared OTel instruments.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("eventmanager")

	binds, err := meter.Int64Counter("eventmanager.binds",
		metric.WithDescription("Number of bindings attached"),
	)
	if err != nil {
		return nil, err
	}

	unbinds, err := meter.Int64Counter("eventmanager.unbinds",
		metric.WithDescription("Number of bindings detached"),
	)
	if err != nil {
		return nil, err
	}

	activeBindings, err := meter.Int64UpDownCounter("eventmanager.bindings.active",
		metric.WithDescription("Bindings currently attached to targets"),
	)
	if err != nil {
		return nil, err
	}

	dispatches, err := meter.Int64Counter("eventmanager.dispatches",
		metric.WithDescription("Number of receiver method invocations"),
	)
	if err != nil {
		return nil, err
	}

	dispatchErrors, err := meter.Int64Counter("eventmanager.dispatch.errors",
		metric.WithDescription("Number of receiver method invocations that returned an error"),
	)
	if err != nil {
		return nil, err
	}

	dispatchLatency, err := meter.Float64Histogram("eventmanager.dispatch.latency_ms",
		metric.WithDescription("Receiver method latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		binds:           binds,
		unbinds:         unbinds,
		activeBindings:  activeBindings,
		dispatches:      dispatches,
		dispatchErrors:  dispatchErrors,
		dispatchLatency: dispatchLatency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func bindingAttrs(event, method string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("event", event),
		attribute.String("method", method),
	)
}

// RecordBind records a binding being attached.
func (m *otelMetrics) RecordBind(ctx context.Context, event, method string) {
	attrs := bindingAttrs(event, method)
	m.binds.Add(ctx, 1, attrs)
	m.activeBindings.Add(ctx, 1, attrs)
}

// RecordUnbind records a binding being detached.
func (m *otelMetrics) RecordUnbind(ctx context.Context, event, method string) {
	attrs := bindingAttrs(event, method)
	m.unbinds.Add(ctx, 1, attrs)
	m.activeBindings.Add(ctx, -1, attrs)
}

// RecordDispatch records a receiver method invocation.
func (m *otelMetrics) RecordDispatch(ctx context.Context, event, method string, duration time.Duration, err error) {
	attrs := bindingAttrs(event, method)
	m.dispatches.Add(ctx, 1, attrs)
	m.dispatchLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)

	if err != nil {
		m.dispatchErrors.Add(ctx, 1, attrs)
	}
}
