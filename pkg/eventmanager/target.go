package eventmanager

// Listener receives the arguments an event was emitted with.
//
// Targets compare listeners with == when removing them, so implementations
// must be comparable. The manager only ever registers *Callback values.
type Listener interface {
	Handle(args ...any)
}

// Target is the object whose events are observed.
//
// On registers l for event. Off removes exactly the listener equal to l,
// leaving any other listeners for the same event in place. A Target must
// allow several independent listeners per event.
type Target interface {
	On(event string, l Listener)
	Off(event string, l Listener)
}
