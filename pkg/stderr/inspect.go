package stderr

import (
	"fmt"

	"github.com/rustadex/stderr/pkg/glyphs"
)

// Debuggable is the capability of producing a human-readable dump of
// oneself. Values passed to the inspector that implement it are
// rendered with DebugString; everything else falls back to fmt's %+v.
type Debuggable interface {
	DebugString() string
}

// DebugPrinter pretty-prints arbitrary values through the logger's
// level gates. Obtain one with Inspect.
type DebugPrinter struct {
	l *Stderr
}

// Inspect returns the pretty-debug printer interface.
func (l *Stderr) Inspect() *DebugPrinter {
	return &DebugPrinter{l: l}
}

func (p *DebugPrinter) render(v interface{}) string {
	if d, ok := v.(Debuggable); ok {
		return d.DebugString()
	}
	return fmt.Sprintf("%+v", v)
}

func (p *DebugPrinter) Error(v interface{}) error {
	return p.l.print(glyphs.LevelError, p.render(v))
}

func (p *DebugPrinter) Warn(v interface{}) error {
	return p.l.print(glyphs.LevelWarn, p.render(v))
}

func (p *DebugPrinter) Info(v interface{}) error {
	return p.l.print(glyphs.LevelInfo, p.render(v))
}

func (p *DebugPrinter) Okay(v interface{}) error {
	return p.l.print(glyphs.LevelOkay, p.render(v))
}

func (p *DebugPrinter) Note(v interface{}) error {
	return p.l.print(glyphs.LevelNote, p.render(v))
}

func (p *DebugPrinter) Debug(v interface{}) error {
	return p.l.print(glyphs.LevelDebug, p.render(v))
}

func (p *DebugPrinter) Devlog(v interface{}) error {
	return p.l.print(glyphs.LevelDevlog, p.render(v))
}

func (p *DebugPrinter) Trace(v interface{}) error {
	return p.l.print(glyphs.LevelTrace, p.render(v))
}

func (p *DebugPrinter) Magic(v interface{}) error {
	return p.l.print(glyphs.LevelMagic, p.render(v))
}

func (p *DebugPrinter) Silly(v interface{}) error {
	return p.l.print(glyphs.LevelSilly, p.render(v))
}
