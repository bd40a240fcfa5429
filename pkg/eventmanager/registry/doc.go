// Package registry provides a generic thread-safe table of values indexed by key.
//
// The eventmanager package uses it to back receiver handler tables, where
// method names map to callable handlers:
//
//	methods := registry.New[string, eventmanager.Method]()
//	methods.Register("onlogin", onLogin)
//
//	fn, ok := methods.Get("onlogin")
//
// Tables are usually filled once at start-up and read on every Bind, so the
// implementation favours readers with a sync.RWMutex.
//
// # Thread Safety
//
// All Registry methods are safe for concurrent use. Keys returns a copy;
// callers may mutate the registry while iterating over it.
package registry
