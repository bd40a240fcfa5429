package eventmanager

import (
	"context"
	"slices"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager/observability"
)

// Callback is the listener a Manager registers on its target for one
// binding. It holds the receiver method and the fixed arguments given to
// Bind. Callbacks are compared by pointer identity.
type Callback struct {
	id     string
	event  string
	method string
	fn     Method
	args   []any
	opts   *options
}

// Compile-time interface check.
var _ Listener = (*Callback)(nil)

// ID returns the generated callback identifier used in logs and spans.
func (c *Callback) ID() string { return c.id }

// Event returns the event name the callback is bound to.
func (c *Callback) Event() string { return c.event }

// MethodName returns the resolved receiver method name.
func (c *Callback) MethodName() string { return c.method }

// Args returns a copy of the fixed arguments.
func (c *Callback) Args() []any { return slices.Clone(c.args) }

// Handle invokes the receiver method with the fixed arguments followed by
// emitted. A method error is reported through the manager's logger, metrics,
// span and OnError hook; it is not returned to the target.
func (c *Callback) Handle(emitted ...any) {
	args := make([]any, 0, len(c.args)+len(emitted))
	args = append(args, c.args...)
	args = append(args, emitted...)

	ctx, span := c.opts.spans.StartDispatchSpan(context.Background(), c.event, c.method, c.id)
	elapsed := observability.TimedOperation()

	err := c.fn(args...)

	c.opts.metrics.RecordDispatch(ctx, c.event, c.method, elapsed(), err)
	c.opts.spans.EndSpanWithError(span, err)

	if err == nil {
		return
	}
	observability.LogDispatchError(c.opts.logger, c.event, c.method, c.id, err)
	if c.opts.onError != nil {
		c.opts.onError(&DispatchError{
			Event:      c.event,
			Method:     c.method,
			CallbackID: c.id,
			Err:        err,
		})
	}
}
