// Package trace maintains the hierarchical stack of named frames behind
// call-trace output.
//
// A frame is entered with Enter, which returns a Scope handle bound to
// it. Only the handle for the topmost frame may emit steps or close;
// anything else is a HANDLE_MISUSE error. Span wraps a body function
// and guarantees the exit line and the pop on every path out of the
// body, including error returns and panics — prefer it over manual
// Enter/Close pairs.
//
// The stack itself is pure bookkeeping plus text assembly. Rendered
// lines go through an Emitter supplied by the owner, which applies
// gating and color and performs the actual write.
package trace

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/rustadex/stderr/pkg/errors"
	"github.com/rustadex/stderr/pkg/glyphs"
	"github.com/rustadex/stderr/pkg/logging"
)

// Emitter receives assembled trace lines. Emit returns the sink write
// error, if any; an emitter whose gate is off writes nothing and
// returns nil.
type Emitter interface {
	EmitTrace(line string) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(line string) error

// EmitTrace implements Emitter.
func (f EmitterFunc) EmitTrace(line string) error { return f(line) }

// Stack is the ordered set of currently open frames. Depth always
// equals the number of unreleased Scope handles. Not safe for
// concurrent use; the embedding program must serialize access.
type Stack struct {
	frames  []*Scope
	emitter Emitter
	log     zerolog.Logger
}

// NewStack creates an empty stack that renders through the emitter.
func NewStack(emitter Emitter) *Stack {
	return &Stack{
		emitter: emitter,
		log:     logging.GetLogger("trace"),
	}
}

// Depth returns the number of open frames.
func (s *Stack) Depth() int {
	return len(s.frames)
}

// indent returns the continuation columns for a frame at the given
// depth: one dotted vertical per still-open ancestor.
func indent(depth int) string {
	if depth <= 1 {
		return ""
	}
	return strings.Repeat(glyphs.TraceDotted+"   ", depth-1)
}

// Enter pushes a new frame, renders its header line, and returns the
// handle bound to it. The returned error is a sink write failure; the
// frame is pushed regardless, so the handle must still be closed.
func (s *Stack) Enter(name string) (*Scope, error) {
	scope := &Scope{stack: s, name: name, depth: len(s.frames) + 1}
	s.frames = append(s.frames, scope)
	s.log.Trace().Str("frame", name).Int("depth", scope.depth).Msg("frame entered")

	header := indent(scope.depth) + glyphs.TraceHeader + "[" + name + "]"
	return scope, s.emitter.EmitTrace(header)
}

// Span enters a frame, runs body with its handle, and closes the frame
// on every exit path. A panic in body still pops the frame and emits
// the exit line before the panic resumes.
func (s *Stack) Span(name string, body func(*Scope) error) (err error) {
	scope, enterErr := s.Enter(name)
	defer func() {
		closeErr := scope.Close()
		if err == nil {
			err = closeErr
		}
	}()
	if enterErr != nil {
		return enterErr
	}
	return body(scope)
}

// Scope is a caller-held handle to exactly one frame. It grants the
// right to emit step lines and, on Close, the exit line.
type Scope struct {
	stack  *Stack
	name   string
	depth  int
	closed bool
}

// Name returns the frame's name.
func (sc *Scope) Name() string { return sc.name }

// Depth returns the frame's depth, counted from 1.
func (sc *Scope) Depth() int { return sc.depth }

// top reports whether this scope is the open topmost frame.
func (sc *Scope) top() bool {
	n := len(sc.stack.frames)
	return !sc.closed && n > 0 && sc.stack.frames[n-1] == sc
}

// Step emits an intermediate branch line under this frame. Calling it
// on a closed or non-top scope is a HANDLE_MISUSE error.
func (sc *Scope) Step(text string) error {
	if err := sc.check("step"); err != nil {
		return err
	}
	return sc.stack.emitter.EmitTrace(indent(sc.depth) + glyphs.TraceBranch + " " + text)
}

// StepLabel emits a labelled branch line, e.g. `└┄┄[ ✔ ] done`.
func (sc *Scope) StepLabel(label, text string) error {
	if err := sc.check("step"); err != nil {
		return err
	}
	return sc.stack.emitter.EmitTrace(indent(sc.depth) + glyphs.TraceLabel + "[ " + label + " ] " + text)
}

// Labelled step shorthands matching the stock marker vocabulary.

func (sc *Scope) StepAdd(text string) error   { return sc.StepLabel("+", text) }
func (sc *Scope) StepSub(text string) error   { return sc.StepLabel("-", text) }
func (sc *Scope) StepFound(text string) error { return sc.StepLabel(glyphs.Spark, text) }
func (sc *Scope) StepDone(text string) error  { return sc.StepLabel(glyphs.Pass, text) }
func (sc *Scope) StepItem(text string) error  { return sc.StepLabel(glyphs.Diamond, text) }

// Close emits the terminal branch line and pops the frame. It must be
// called exactly once; a second Close, or closing under an open child
// frame, is a HANDLE_MISUSE error and leaves the stack unchanged.
func (sc *Scope) Close() error {
	if err := sc.check("close"); err != nil {
		return err
	}
	sc.closed = true
	sc.stack.frames = sc.stack.frames[:len(sc.stack.frames)-1]
	sc.stack.log.Trace().Str("frame", sc.name).Int("depth", sc.depth).Msg("frame released")

	return sc.stack.emitter.EmitTrace(indent(sc.depth) + glyphs.TraceTerminal + " " + sc.name)
}

func (sc *Scope) check(op string) error {
	if sc.closed {
		return errors.Newf(errors.ErrHandleMisuse, "%s on released scope %q", op, sc.name)
	}
	if !sc.top() {
		return errors.Newf(errors.ErrHandleMisuse, "%s on non-top scope %q at depth %d", op, sc.name, sc.depth).
			WithDetail("depth", sc.depth).
			WithDetail("stackDepth", sc.stack.Depth())
	}
	return nil
}
