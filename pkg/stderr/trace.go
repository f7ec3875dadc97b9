package stderr

import (
	"github.com/rustadex/stderr/pkg/glyphs"
	"github.com/rustadex/stderr/pkg/trace"
)

// traceEmitter routes assembled trace lines through the logger's trace
// gate and color, then to the sink.
type traceEmitter struct {
	l *Stderr
}

func (e traceEmitter) EmitTrace(line string) error {
	if e.l.config.Quiet || !e.l.config.Trace {
		return nil
	}
	return e.l.write(e.l.styled(line, glyphs.ColorGrey) + "\n")
}

// Enter pushes a named trace frame and returns its scope handle. The
// handle must be released exactly once with Close; prefer Span, which
// guarantees the release on every exit path.
func (l *Stderr) Enter(name string) (*trace.Scope, error) {
	return l.stack.Enter(name)
}

// Span runs body inside a named trace frame, releasing the frame on
// every exit path — normal return, error return, or panic.
func (l *Stderr) Span(name string, body func(*trace.Scope) error) error {
	return l.stack.Span(name, body)
}

// TraceDepth returns the number of currently open trace frames.
func (l *Stderr) TraceDepth() int {
	return l.stack.Depth()
}
