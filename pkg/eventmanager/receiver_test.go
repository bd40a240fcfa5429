package eventmanager_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager"
)

func noop(...any) error { return nil }

func TestHandlers(t *testing.T) {
	h := eventmanager.NewHandlers().
		Handle("onlogin", noop).
		Handle("sort", noop).
		Handle("ignored", nil)

	assert.Equal(t, []string{"onlogin", "sort"}, h.Names())
	assert.True(t, h.Has("sort"))
	assert.False(t, h.Has("ignored"))

	fn, ok := h.Method("onlogin")
	require.True(t, ok)
	assert.NotNil(t, fn)

	_, ok = h.Method("missing")
	assert.False(t, ok)
}

func TestHandlersHandleMany(t *testing.T) {
	h := eventmanager.NewHandlers().HandleMany(map[string]eventmanager.Method{
		"onLogin":  noop,
		"onLogout": noop,
		"broken":   nil,
	})

	assert.Equal(t, []string{"onLogin", "onLogout"}, h.Names())
}

func TestHandlersRemove(t *testing.T) {
	user := newEmitter()
	rec := &recorder{}
	h := rec.handlers("onlogin")
	m := eventmanager.New(user, h)

	require.NoError(t, m.Bind("login", ""))

	assert.True(t, h.Remove("onlogin"))
	assert.False(t, h.Remove("onlogin"))

	// The existing binding keeps the handler it resolved.
	user.Emit("login")
	assert.Equal(t, 1, rec.count("onlogin"))

	// New binds see the removal.
	assert.ErrorIs(t, m.Bind("login", "onlogin"), eventmanager.ErrMissingMethod)
}

func TestReceiverFunc(t *testing.T) {
	rec := &recorder{}
	receiver := eventmanager.ReceiverFunc(func(name string) (eventmanager.Method, bool) {
		if name == "onclick" {
			return rec.method(name), true
		}
		return nil, false
	})

	list := newEmitter()
	m := eventmanager.New(list, receiver)

	require.NoError(t, m.Bind("click", ""))
	assert.ErrorIs(t, m.Bind("hover", ""), eventmanager.ErrMissingMethod)

	list.Emit("click", 1, 2)
	require.Len(t, rec.calls, 1)
	assert.Equal(t, []any{1, 2}, rec.calls[0].Args)
}
