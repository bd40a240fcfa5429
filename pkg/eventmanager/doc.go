/*
Package eventmanager binds named events emitted by a target onto methods of
a receiver, and remembers each binding so it can be removed later one at a
time, per event, or all at once.

# Overview

A Target is anything that can register and remove listeners by identity:

	type Target interface {
	    On(event string, l Listener)
	    Off(event string, l Listener)
	}

A Receiver resolves method names to handlers. Handlers is the ready-made
table implementation:

	receiver := eventmanager.NewHandlers().
	    Handle("onlogin", func(args ...any) error {
	        fmt.Println("welcome", args[0])
	        return nil
	    }).
	    Handle("sort", func(args ...any) error {
	        col, order := args[0], args[1]
	        return table.Sort(col.(string), order.(string))
	    })

# Binding

	m := eventmanager.New(user, receiver)

	m.Bind("login", "")                    // user emits "login" -> onlogin(emitted...)
	m.Bind("click", "sort", "name", "asc") // -> sort("name", "asc", emitted...)

	err := m.BindAll(map[string]string{
	    "login":  "onLogin",
	    "logout": "onLogout",
	})

An empty method name resolves to the event name with the "on" prefix; change
the prefix with WithMethodPrefix. Bind fails fast with a *BindingError
wrapping ErrMissingMethod when the receiver has no such method, and attaches
nothing. Re-binding the same event and method replaces the listener on the
target rather than adding a second one.

# Unbinding

	m.Unbind("login", "onLogin") // one binding
	m.UnbindEvent("login")       // every method bound to "login"
	m.UnbindAll()                // everything

Unbinding is idempotent: removing a binding that does not exist is a no-op.
Only listeners the manager registered are removed; other listeners on the
same target and event are left alone.

# Errors from Receiver Methods

Targets have no error channel, so an error returned by a receiver method is
logged (WithLogger), counted (WithMetrics), recorded on the dispatch span
(WithTracing) and passed to the WithOnError hook.

# Configuration Files

Binding tables and options can be loaded from YAML or JSON:

	# bindings.yaml
	prefix: on
	metrics: true
	bindings:
	  login: onLogin
	  logout: onLogout

	cfg, err := config.FromFile("bindings.yaml")
	m := eventmanager.New(user, receiver, eventmanager.OptionsFromConfig(cfg)...)
	pairs, err := eventmanager.BindingsFromConfig(cfg)
	err = m.BindAll(pairs)

# Concurrency

A Manager is meant for a single goroutine. Bind and Unbind run to completion
before returning and never block; receiver methods run synchronously inside
the target's own dispatch.
*/
package eventmanager
