package stderr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustadex/stderr/pkg/config"
	"github.com/rustadex/stderr/pkg/trace"
)

func TestSpanRendersWhenTraceEnabled(t *testing.T) {
	l, buf := newBufLogger(config.Config{Trace: true})

	require.NoError(t, l.Span("deploy", func(sc *trace.Scope) error {
		return sc.Step("uploading bundle")
	}))

	want := "λ┄┄┄[deploy]\n" +
		"├┄┄> uploading bundle\n" +
		"└┄┄> deploy\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 0, l.TraceDepth())
}

func TestSpanSilentWhenTraceDisabled(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	// gating lives at the emitter: depth bookkeeping still runs
	require.NoError(t, l.Span("deploy", func(sc *trace.Scope) error {
		assert.Equal(t, 1, l.TraceDepth())
		return sc.Step("uploading bundle")
	}))

	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, l.TraceDepth())
}

func TestSpanSilentWhenQuiet(t *testing.T) {
	l, buf := newBufLogger(config.Config{Quiet: true, Trace: true})

	require.NoError(t, l.Span("deploy", func(sc *trace.Scope) error {
		return nil
	}))
	assert.Equal(t, "", buf.String())
}

func TestEnterCloseThroughLogger(t *testing.T) {
	l, buf := newBufLogger(config.Config{Trace: true})

	outer, err := l.Enter("outer")
	require.NoError(t, err)
	inner, err := l.Enter("inner")
	require.NoError(t, err)
	assert.Equal(t, 2, l.TraceDepth())

	require.NoError(t, inner.Close())
	require.NoError(t, outer.Close())
	assert.Equal(t, 0, l.TraceDepth())

	want := "λ┄┄┄[outer]\n" +
		"┆   λ┄┄┄[inner]\n" +
		"┆   └┄┄> inner\n" +
		"└┄┄> outer\n"
	assert.Equal(t, want, buf.String())
}
