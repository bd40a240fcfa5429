// Package observability provides logging, metrics, and tracing for
// eventmanager bindings.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds binding context to a logger.
// Returns a new logger with event and method fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "login", "onlogin")
//	enriched.Info("handling") // includes event, method
func EnrichLogger(logger *slog.Logger, event, method string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("event", event),
		slog.String("method", method),
	)
}

// LogBind logs a new binding.
func LogBind(logger *slog.Logger, event, method, callbackID string, fixedArgs int) {
	if logger == nil {
		return
	}
	logger.Debug("binding added",
		slog.String("event", event),
		slog.String("method", method),
		slog.String("callback_id", callbackID),
		slog.Int("fixed_args", fixedArgs),
	)
}

// LogUnbind logs the removal of a binding.
func LogUnbind(logger *slog.Logger, event, method, callbackID string) {
	if logger == nil {
		return
	}
	logger.Debug("binding removed",
		slog.String("event", event),
		slog.String("method", method),
		slog.String("callback_id", callbackID),
	)
}

// LogBindError logs a rejected bind.
func LogBindError(logger *slog.Logger, event, method string, err error) {
	if logger == nil {
		return
	}
	logger.Error("bind failed",
		slog.String("event", event),
		slog.String("method", method),
		slog.String("error", err.Error()),
	)
}

// LogDispatchError logs a receiver method that returned an error.
// Dispatch errors never reach the target, so this is where they surface.
func LogDispatchError(logger *slog.Logger, event, method, callbackID string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("receiver method failed",
		slog.String("event", event),
		slog.String("method", method),
		slog.String("callback_id", callbackID),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
