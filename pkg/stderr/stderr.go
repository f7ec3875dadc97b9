package stderr

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"

	"github.com/rustadex/stderr/pkg/config"
	"github.com/rustadex/stderr/pkg/errors"
	"github.com/rustadex/stderr/pkg/glyphs"
	"github.com/rustadex/stderr/pkg/logging"
	"github.com/rustadex/stderr/pkg/trace"
)

// defaultWidth is used when the sink is not a terminal.
const defaultWidth = 80

// Stderr is a configurable logger for emitting glyph-prefixed, colored
// messages to a terminal sink. See the package documentation for the
// gating rules and the single-writer obligation.
type Stderr struct {
	config  config.Config
	sink    io.Writer
	out     *termenv.Output
	profile termenv.Profile
	width   int
	label   string
	glyphs  glyphs.Set
	ctx     contextState
	stack   *trace.Stack
	log     zerolog.Logger
}

// New creates a logger that resolves its configuration from the
// environment and writes to standard error.
func New() *Stderr {
	return WithConfig(config.FromEnv())
}

// WithConfig creates a logger with an explicit configuration, writing
// to standard error.
func WithConfig(cfg config.Config) *Stderr {
	l := &Stderr{
		config: cfg,
		glyphs: glyphs.Default(),
		log:    logging.GetLogger("stderr"),
	}
	l.setSink(os.Stderr)
	l.stack = trace.NewStack(traceEmitter{l})
	return l
}

// setSink installs the sink and re-detects color profile and width.
func (l *Stderr) setSink(w io.Writer) {
	l.sink = w
	l.profile = termenv.Ascii
	l.width = defaultWidth
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		l.profile = termenv.EnvColorProfile()
		l.width = pterm.GetTerminalWidth()
	}
	l.out = termenv.NewOutput(w, termenv.WithProfile(l.profile))
}

// WithSink redirects output to w. Any io.Writer is a conforming sink;
// color is disabled unless w is a terminal.
func (l *Stderr) WithSink(w io.Writer) *Stderr {
	l.setSink(w)
	return l
}

// WithWidth overrides the detected terminal width.
func (l *Stderr) WithWidth(width int) *Stderr {
	if width > 0 {
		l.width = width
	}
	return l
}

// WithProfile overrides the detected color profile.
func (l *Stderr) WithProfile(p termenv.Profile) *Stderr {
	l.profile = p
	l.out = termenv.NewOutput(l.sink, termenv.WithProfile(p))
	return l
}

// WithLabel prefixes every message with [label].
func (l *Stderr) WithLabel(label string) *Stderr {
	l.label = label
	return l
}

// ClearLabel removes the message label.
func (l *Stderr) ClearLabel() *Stderr {
	l.label = ""
	return l
}

// WithGlyphs replaces the glyph table.
func (l *Stderr) WithGlyphs(set glyphs.Set) *Stderr {
	l.glyphs = set
	return l
}

// ApplyTheme merges a loaded theme's glyph overrides into the logger.
func (l *Stderr) ApplyTheme(t *config.Theme) *Stderr {
	l.glyphs = t.Apply(l.glyphs)
	return l
}

// Config returns the logger's current configuration.
func (l *Stderr) Config() config.Config {
	return l.config
}

// Glyphs returns the logger's current glyph table.
func (l *Stderr) Glyphs() glyphs.Set {
	return l.glyphs
}

// Width returns the layout width used by banners.
func (l *Stderr) Width() int {
	return l.width
}

// Configuration overrides.

func (l *Stderr) SetQuiet(quiet bool) *Stderr {
	l.config.Quiet = quiet
	return l
}

func (l *Stderr) SetDebug(debug bool) *Stderr {
	l.config.Debug = debug
	return l
}

func (l *Stderr) SetTrace(enabled bool) *Stderr {
	l.config.Trace = enabled
	return l
}

func (l *Stderr) SetSilly(silly bool) *Stderr {
	l.config.Silly = silly
	return l
}

func (l *Stderr) SetDev(dev bool) *Stderr {
	l.config.Dev = dev
	return l
}

// gate reports whether a message at the given level produces output.
// Error and okay are never suppressed; quiet silences everything else;
// debug, devlog, trace, magic and silly additionally require their
// respective flags.
func (l *Stderr) gate(level glyphs.Level) bool {
	switch level {
	case glyphs.LevelError, glyphs.LevelOkay:
		return true
	}
	if l.config.Quiet {
		return false
	}
	switch level {
	case glyphs.LevelDebug:
		return l.config.Debug
	case glyphs.LevelDevlog:
		return l.config.Dev
	case glyphs.LevelTrace:
		return l.config.Trace
	case glyphs.LevelMagic, glyphs.LevelSilly:
		return l.config.Silly
	default:
		return true
	}
}

// styled applies a foreground color through the sink's color profile.
// On a non-terminal sink this is the identity.
func (l *Stderr) styled(s string, c termenv.Color) string {
	return l.out.String(s).Foreground(l.profile.Convert(c)).String()
}

// bold applies bold plus a foreground color.
func (l *Stderr) bold(s string, c termenv.Color) string {
	return l.out.String(s).Foreground(l.profile.Convert(c)).Bold().String()
}

// write sends text to the sink, surfacing failures as IO errors.
func (l *Stderr) write(s string) error {
	if _, err := io.WriteString(l.sink, s); err != nil {
		return errors.Wrap(err, errors.ErrIO, "sink write failed")
	}
	return nil
}

// print renders one gated, glyph-prefixed message line.
func (l *Stderr) print(level glyphs.Level, msg string) error {
	if !l.gate(level) {
		return nil
	}
	prefix := "[" + l.glyphs.For(level) + "]"
	if l.label != "" {
		prefix = "[" + l.label + "]" + prefix
	}
	return l.write(l.styled(prefix, glyphs.Color(level)) + " " + msg + "\n")
}

// Log emits a message at an arbitrary level.
func (l *Stderr) Log(level glyphs.Level, msg string) error {
	return l.print(level, msg)
}

// Error prints an error message. Never suppressed.
func (l *Stderr) Error(msg string) error {
	return l.print(glyphs.LevelError, msg)
}

// Okay prints a success message. Never suppressed.
func (l *Stderr) Okay(msg string) error {
	return l.print(glyphs.LevelOkay, msg)
}

// Warn prints a warning. Suppressed only in quiet mode.
func (l *Stderr) Warn(msg string) error {
	return l.print(glyphs.LevelWarn, msg)
}

// Info prints an informational message. Suppressed only in quiet mode.
func (l *Stderr) Info(msg string) error {
	return l.print(glyphs.LevelInfo, msg)
}

// Note prints a side note. Suppressed only in quiet mode.
func (l *Stderr) Note(msg string) error {
	return l.print(glyphs.LevelNote, msg)
}

// Debug prints a message shown only when the debug gate is enabled.
func (l *Stderr) Debug(msg string) error {
	return l.print(glyphs.LevelDebug, msg)
}

// Devlog prints a message shown only when the dev gate is enabled.
func (l *Stderr) Devlog(msg string) error {
	return l.print(glyphs.LevelDevlog, msg)
}

// Trace prints a message shown only when the trace gate is enabled.
func (l *Stderr) Trace(msg string) error {
	return l.print(glyphs.LevelTrace, msg)
}

// Magic prints a message shown only when the silly gate is enabled.
func (l *Stderr) Magic(msg string) error {
	return l.print(glyphs.LevelMagic, msg)
}

// Silly prints a message shown only when the silly gate is enabled.
func (l *Stderr) Silly(msg string) error {
	return l.print(glyphs.LevelSilly, msg)
}
