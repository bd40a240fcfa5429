package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	var m MetricsRecorder = NoopMetrics{}
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordBind(ctx, "login", "onlogin")
		m.RecordUnbind(ctx, "login", "onlogin")
		m.RecordDispatch(ctx, "login", "onlogin", time.Millisecond, errors.New("x"))
		m.RecordDispatch(ctx, "", "", 0, nil)
	})
}

func TestNoopSpanManager(t *testing.T) {
	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()

	gotCtx, span := sm.StartDispatchSpan(ctx, "login", "onlogin", "cb-1")
	assert.Equal(t, ctx, gotCtx)
	assert.False(t, span.IsRecording())

	assert.NotPanics(t, func() {
		sm.EndSpanWithError(span, errors.New("x"))
		sm.EndSpanWithError(nil, nil)
	})
}
