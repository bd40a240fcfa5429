package eventmanager

import (
	"slices"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager/registry"
)

// Method is a receiver handler. It is called with the fixed arguments given
// to Bind followed by the arguments the event was emitted with.
type Method func(args ...any) error

// Receiver resolves method names to handlers. Lookups happen at bind time.
type Receiver interface {
	Method(name string) (Method, bool)
}

// ReceiverFunc adapts a lookup function to the Receiver interface.
type ReceiverFunc func(name string) (Method, bool)

// Method calls f(name).
func (f ReceiverFunc) Method(name string) (Method, bool) {
	return f(name)
}

// Handlers is a Receiver backed by a table of named handlers.
// It is safe for concurrent use.
//
//	h := eventmanager.NewHandlers().
//	    Handle("onlogin", onLogin).
//	    Handle("sort", sortBy)
type Handlers struct {
	table *registry.Registry[string, Method]
}

// Compile-time interface check.
var _ Receiver = (*Handlers)(nil)

// NewHandlers creates an empty handler table.
func NewHandlers() *Handlers {
	return &Handlers{table: registry.New[string, Method]()}
}

// Handle registers fn under name, replacing any previous handler.
// A nil fn is ignored.
func (h *Handlers) Handle(name string, fn Method) *Handlers {
	if fn != nil {
		h.table.Register(name, fn)
	}
	return h
}

// HandleMany registers every entry of methods. Nil handlers are skipped.
func (h *Handlers) HandleMany(methods map[string]Method) *Handlers {
	valid := make(map[string]Method, len(methods))
	for name, fn := range methods {
		if fn != nil {
			valid[name] = fn
		}
	}
	h.table.RegisterMany(valid)
	return h
}

// Method implements Receiver.
func (h *Handlers) Method(name string) (Method, bool) {
	return h.table.Get(name)
}

// Has reports whether a handler is registered under name.
func (h *Handlers) Has(name string) bool {
	return h.table.Has(name)
}

// Remove deletes the handler under name and reports whether it existed.
// Existing bindings keep the handler they resolved at bind time.
func (h *Handlers) Remove(name string) bool {
	return h.table.Delete(name)
}

// Names returns the registered method names in sorted order.
func (h *Handlers) Names() []string {
	names := h.table.Keys()
	slices.Sort(names)
	return names
}
