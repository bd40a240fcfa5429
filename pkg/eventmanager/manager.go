package eventmanager

import (
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager/observability"
)

// Manager maps events emitted by a target onto receiver methods and records
// every binding so it can be removed later.
//
// The target and receiver are borrowed; the caller owns their lifetime. The
// manager keeps exactly one listener on the target per (event, method) pair
// it has recorded, and none for pairs it has not. Call UnbindAll before
// discarding a Manager to detach everything it attached.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	target   Target
	receiver Receiver
	bindings map[string]map[string]*Callback
	opts     *options
}

// Binding identifies one active (event, method) pair.
type Binding struct {
	Event  string
	Method string
}

// New creates a Manager that binds events of target to methods of receiver.
func New(target Target, receiver Receiver, opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Manager{
		target:   target,
		receiver: receiver,
		bindings: make(map[string]map[string]*Callback),
		opts:     &o,
	}
}

// Target returns the observed target.
func (m *Manager) Target() Target { return m.target }

// Receiver returns the receiver whose methods are invoked.
func (m *Manager) Receiver() Receiver { return m.receiver }

// resolveMethod applies the default method name for an empty method.
func (m *Manager) resolveMethod(event, method string) string {
	if method == "" {
		return m.opts.prefix + event
	}
	return method
}

// Bind invokes the receiver method whenever the target emits event.
//
// An empty method resolves to the prefixed event name ("login" -> "onlogin").
// args are passed to the method before the emitted arguments on every call.
// Binding an (event, method) pair that is already bound replaces the old
// listener on the target.
//
// Returns a *BindingError wrapping ErrMissingMethod if the receiver has no
// such method, or ErrEmptyEvent if event is empty. Nothing is attached on
// error.
//
// Example:
//
//	m.Bind("login", "")                  // onlogin(emitted...)
//	m.Bind("click", "sort", "name", "asc") // sort("name", "asc", emitted...)
func (m *Manager) Bind(event, method string, args ...any) error {
	method = m.resolveMethod(event, method)
	fn, err := m.lookup(event, method)
	if err != nil {
		observability.LogBindError(m.opts.logger, event, method, err)
		return err
	}
	m.attach(event, method, fn, args)
	return nil
}

// MustBind is like Bind but panics on error. It returns the Manager so
// calls can be chained during setup.
func (m *Manager) MustBind(event, method string, args ...any) *Manager {
	if err := m.Bind(event, method, args...); err != nil {
		panic(err)
	}
	return m
}

// BindAll binds each event to its method, without fixed arguments.
// Empty method names resolve as in Bind.
//
// Every pair is checked before any is bound: if one fails, the error is
// returned and no binding is added. Pairs are attached in event-name order.
func (m *Manager) BindAll(pairs map[string]string) error {
	type pending struct {
		event, method string
		fn            Method
	}

	resolved := make([]pending, 0, len(pairs))
	for _, event := range slices.Sorted(maps.Keys(pairs)) {
		method := m.resolveMethod(event, pairs[event])
		fn, err := m.lookup(event, method)
		if err != nil {
			observability.LogBindError(m.opts.logger, event, method, err)
			return err
		}
		resolved = append(resolved, pending{event: event, method: method, fn: fn})
	}

	for _, p := range resolved {
		m.attach(p.event, p.method, p.fn, nil)
	}
	return nil
}

func (m *Manager) lookup(event, method string) (Method, error) {
	if event == "" {
		return nil, &BindingError{Kind: KindInvalidEvent, Event: event, Method: method, Err: ErrEmptyEvent}
	}
	fn, ok := m.receiver.Method(method)
	if !ok || fn == nil {
		return nil, &BindingError{Kind: KindMissingMethod, Event: event, Method: method, Err: ErrMissingMethod}
	}
	return fn, nil
}

// attach registers a new callback, detaching any callback already recorded
// for the same slot so no listener is orphaned on the target.
func (m *Manager) attach(event, method string, fn Method, args []any) {
	m.Unbind(event, method)

	cb := &Callback{
		id:     uuid.New().String(),
		event:  event,
		method: method,
		fn:     fn,
		args:   slices.Clone(args),
		opts:   m.opts,
	}
	m.target.On(event, cb)

	methods, ok := m.bindings[event]
	if !ok {
		methods = make(map[string]*Callback)
		m.bindings[event] = methods
	}
	methods[method] = cb

	m.opts.metrics.RecordBind(context.Background(), event, method)
	observability.LogBind(m.opts.logger, event, method, cb.id, len(cb.args))
}

// Unbind removes the binding of event to method. An empty method resolves
// as in Bind. Unbinding a pair that is not bound does nothing.
func (m *Manager) Unbind(event, method string) *Manager {
	method = m.resolveMethod(event, method)

	methods, ok := m.bindings[event]
	if !ok {
		return m
	}
	cb, ok := methods[method]
	if !ok {
		return m
	}

	m.target.Off(event, cb)
	delete(methods, method)
	if len(methods) == 0 {
		delete(m.bindings, event)
	}

	m.opts.metrics.RecordUnbind(context.Background(), event, method)
	observability.LogUnbind(m.opts.logger, event, method, cb.id)
	return m
}

// UnbindEvent removes every binding for event.
func (m *Manager) UnbindEvent(event string) *Manager {
	for method := range m.bindings[event] {
		m.Unbind(event, method)
	}
	delete(m.bindings, event)
	return m
}

// UnbindAll removes every binding the manager holds.
func (m *Manager) UnbindAll() *Manager {
	for event := range m.bindings {
		m.UnbindEvent(event)
	}
	return m
}

// Has reports whether event is bound to method. An empty method resolves
// as in Bind.
func (m *Manager) Has(event, method string) bool {
	_, ok := m.bindings[event][m.resolveMethod(event, method)]
	return ok
}

// Callback returns the listener registered for event and method, if any.
func (m *Manager) Callback(event, method string) (*Callback, bool) {
	cb, ok := m.bindings[event][m.resolveMethod(event, method)]
	return cb, ok
}

// Len returns the number of active bindings.
func (m *Manager) Len() int {
	n := 0
	for _, methods := range m.bindings {
		n += len(methods)
	}
	return n
}

// Bindings returns the active bindings sorted by event, then method.
func (m *Manager) Bindings() []Binding {
	out := make([]Binding, 0, m.Len())
	for event, methods := range m.bindings {
		for method := range methods {
			out = append(out, Binding{Event: event, Method: method})
		}
	}
	slices.SortFunc(out, func(a, b Binding) int {
		return cmp.Or(cmp.Compare(a.Event, b.Event), cmp.Compare(a.Method, b.Method))
	})
	return out
}
