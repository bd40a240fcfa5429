package eventmanager_test

import (
	"github.com/randalmurphal/eventmanager/pkg/eventmanager"
)

// emitter is a minimal Target: listeners per event, removed by identity.
type emitter struct {
	listeners map[string][]eventmanager.Listener
}

func newEmitter() *emitter {
	return &emitter{listeners: make(map[string][]eventmanager.Listener)}
}

func (e *emitter) On(event string, l eventmanager.Listener) {
	e.listeners[event] = append(e.listeners[event], l)
}

func (e *emitter) Off(event string, l eventmanager.Listener) {
	ls := e.listeners[event]
	for i, existing := range ls {
		if existing == l {
			e.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Emit calls every listener registered for event at the time of the call.
func (e *emitter) Emit(event string, args ...any) {
	ls := append([]eventmanager.Listener(nil), e.listeners[event]...)
	for _, l := range ls {
		l.Handle(args...)
	}
}

func (e *emitter) Count(event string) int {
	return len(e.listeners[event])
}

func (e *emitter) Total() int {
	n := 0
	for _, ls := range e.listeners {
		n += len(ls)
	}
	return n
}

// foreignListener is registered directly on the emitter, outside any manager.
type foreignListener struct {
	calls int
}

func (f *foreignListener) Handle(...any) { f.calls++ }

// call is one recorded receiver invocation.
type call struct {
	Method string
	Args   []any
}

// recorder builds receiver handlers that record their invocations.
type recorder struct {
	calls []call
}

func (r *recorder) method(name string) eventmanager.Method {
	return func(args ...any) error {
		r.calls = append(r.calls, call{Method: name, Args: args})
		return nil
	}
}

func (r *recorder) handlers(names ...string) *eventmanager.Handlers {
	h := eventmanager.NewHandlers()
	for _, name := range names {
		h.Handle(name, r.method(name))
	}
	return h
}

func (r *recorder) count(method string) int {
	n := 0
	for _, c := range r.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}
