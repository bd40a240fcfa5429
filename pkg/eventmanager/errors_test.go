package eventmanager_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/eventmanager/pkg/eventmanager"
)

func TestBindingError(t *testing.T) {
	err := &eventmanager.BindingError{
		Kind:   eventmanager.KindMissingMethod,
		Event:  "login",
		Method: "onlogin",
		Err:    eventmanager.ErrMissingMethod,
	}

	assert.Equal(t, "bind login -> onlogin: receiver method not found", err.Error())
	assert.True(t, errors.Is(err, eventmanager.ErrMissingMethod))
	assert.False(t, errors.Is(err, eventmanager.ErrEmptyEvent))
}

func TestDispatchErrorUnwrap(t *testing.T) {
	cause := errors.New("bad column")
	err := &eventmanager.DispatchError{Event: "click", Method: "sort", CallbackID: "cb", Err: cause}

	assert.Equal(t, "dispatch click -> sort: bad column", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind eventmanager.ErrorKind
		want string
	}{
		{eventmanager.KindMissingMethod, "MissingMethod"},
		{eventmanager.KindInvalidEvent, "InvalidEvent"},
		{eventmanager.ErrorKind(0), "ErrorKind(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.String())
		})
	}
}
