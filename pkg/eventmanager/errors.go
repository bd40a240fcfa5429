package eventmanager

import (
	"errors"
	"fmt"
)

// Sentinel errors for binding.
var (
	// ErrMissingMethod indicates the receiver has no method under the resolved name.
	ErrMissingMethod = errors.New("receiver method not found")

	// ErrEmptyEvent indicates Bind was called without an event name.
	ErrEmptyEvent = errors.New("event name is required")
)

// ErrorKind classifies a BindingError.
type ErrorKind int

const (
	// KindMissingMethod means the resolved method is absent on the receiver.
	KindMissingMethod ErrorKind = iota + 1
	// KindInvalidEvent means the event name cannot be bound.
	KindInvalidEvent
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingMethod:
		return "MissingMethod"
	case KindInvalidEvent:
		return "InvalidEvent"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// BindingError is returned when a binding cannot be created.
// Nothing is attached to the target when Bind returns a BindingError.
type BindingError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Event is the event name passed to Bind.
	Event string
	// Method is the resolved receiver method name.
	Method string
	// Err is the underlying sentinel.
	Err error
}

// Error implements the error interface.
func (e *BindingError) Error() string {
	return fmt.Sprintf("bind %s -> %s: %v", e.Event, e.Method, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BindingError) Unwrap() error {
	return e.Err
}

// DispatchError describes a receiver method that returned an error while
// handling an event. It is delivered to the WithOnError hook.
type DispatchError struct {
	Event      string
	Method     string
	CallbackID string
	Err        error
}

// Error implements the error interface.
func (e *DispatchError) Error() string {
	return fmt.Sprintf("dispatch %s -> %s: %v", e.Event, e.Method, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DispatchError) Unwrap() error {
	return e.Err
}
