package eventmanager

import (
	"log/slog"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager/observability"
)

// DefaultMethodPrefix is prepended to the event name when Bind or Unbind is
// called without a method name: "login" resolves to "onlogin".
const DefaultMethodPrefix = "on"

// options holds manager configuration shared with every Callback it creates.
type options struct {
	prefix  string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	onError func(*DispatchError)
}

// defaultOptions returns a silent configuration with the "on" prefix.
func defaultOptions() options {
	return options{
		prefix:  DefaultMethodPrefix,
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

// Option configures a Manager.
type Option func(*options)

// WithMethodPrefix sets the prefix used to derive a method name from an event
// name when none is given.
// Default: "on"
//
// An empty prefix makes the default method name equal to the event name.
func WithMethodPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithLogger sets the logger for bind, unbind and dispatch failures.
// A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter provider.
//
// Example:
//
//	otel.SetMeterProvider(provider)
//	m := eventmanager.New(target, receiver, eventmanager.WithMetrics(true))
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.metrics = observability.NewMetricsRecorder()
		} else {
			o.metrics = observability.NoopMetrics{}
		}
	}
}

// WithMetricsRecorder sets a custom metrics recorder.
func WithMetricsRecorder(r observability.MetricsRecorder) Option {
	return func(o *options) {
		if r != nil {
			o.metrics = r
		}
	}
}

// WithTracing enables one OpenTelemetry span per receiver method invocation,
// using the global tracer provider.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		if enabled {
			o.spans = observability.NewSpanManager()
		} else {
			o.spans = observability.NoopSpanManager{}
		}
	}
}

// WithSpanManager sets a custom span manager.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(o *options) {
		if sm != nil {
			o.spans = sm
		}
	}
}

// WithOnError sets a hook called when a receiver method returns an error.
// The hook runs synchronously inside the target's dispatch.
func WithOnError(fn func(*DispatchError)) Option {
	return func(o *options) {
		o.onError = fn
	}
}
