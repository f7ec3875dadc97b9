// Package glyphs holds the glyph and color table used as visual markers
// for semantic log levels, plus a small catalog of Unicode symbols that
// the rest of the library (and its users) can reuse.
package glyphs

import "github.com/muesli/termenv"

// Level is a semantic message level. Each level maps to a glyph and a
// color; the mapping is static by default and can be overridden per
// logger via Set.
type Level int

const (
	LevelOkay Level = iota
	LevelInfo
	LevelNote
	LevelWarn
	LevelError
	LevelDebug
	LevelDevlog
	LevelTrace
	LevelMagic
	LevelSilly
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelOkay:
		return "okay"
	case LevelInfo:
		return "info"
	case LevelNote:
		return "note"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelDebug:
		return "debug"
	case LevelDevlog:
		return "devlog"
	case LevelTrace:
		return "trace"
	case LevelMagic:
		return "magic"
	case LevelSilly:
		return "silly"
	default:
		return "unknown"
	}
}

// Preferred ANSI-256 palette.
var (
	ColorRed    = termenv.ANSI256Color(1)
	ColorRed2   = termenv.ANSI256Color(197)
	ColorOrange = termenv.ANSI256Color(214)
	ColorGreen  = termenv.ANSI256Color(10)
	ColorBlue   = termenv.ANSI256Color(4)
	ColorCyan   = termenv.ANSI256Color(6)
	ColorGrey   = termenv.ANSI256Color(245)
	ColorPurple = termenv.ANSI256Color(213)
	ColorMagenta = termenv.ANSI256Color(5)
	ColorWhite  = termenv.ANSI256Color(7)
)

// Set is the per-logger glyph table. A zero Set is not usable; start
// from Default and override individual entries.
type Set struct {
	Okay   string
	Info   string
	Note   string
	Warn   string
	Error  string
	Debug  string
	Devlog string
	Trace  string
	Magic  string
	Silly  string
}

// Default returns the stock glyph table.
func Default() Set {
	return Set{
		Okay:   Pass,
		Info:   Lambda,
		Note:   ArrowRight,
		Warn:   Delta,
		Error:  Fail,
		Debug:  Benzene,
		Devlog: Benzene,
		Trace:  Ellipsis,
		Magic:  Bolt,
		Silly:  Phi,
	}
}

// For returns the glyph for a level.
func (s Set) For(level Level) string {
	switch level {
	case LevelOkay:
		return s.Okay
	case LevelInfo:
		return s.Info
	case LevelNote:
		return s.Note
	case LevelWarn:
		return s.Warn
	case LevelError:
		return s.Error
	case LevelDebug:
		return s.Debug
	case LevelDevlog:
		return s.Devlog
	case LevelTrace:
		return s.Trace
	case LevelMagic:
		return s.Magic
	case LevelSilly:
		return s.Silly
	default:
		return Bullet
	}
}

// Override replaces the glyph for a level, returning the modified set.
func (s Set) Override(level Level, glyph string) Set {
	switch level {
	case LevelOkay:
		s.Okay = glyph
	case LevelInfo:
		s.Info = glyph
	case LevelNote:
		s.Note = glyph
	case LevelWarn:
		s.Warn = glyph
	case LevelError:
		s.Error = glyph
	case LevelDebug:
		s.Debug = glyph
	case LevelDevlog:
		s.Devlog = glyph
	case LevelTrace:
		s.Trace = glyph
	case LevelMagic:
		s.Magic = glyph
	case LevelSilly:
		s.Silly = glyph
	}
	return s
}

// Color returns the default color for a level.
func Color(level Level) termenv.Color {
	switch level {
	case LevelOkay:
		return ColorGreen
	case LevelInfo:
		return ColorBlue
	case LevelNote:
		return ColorBlue
	case LevelWarn:
		return ColorOrange
	case LevelError:
		return ColorRed
	case LevelDebug:
		return ColorCyan
	case LevelDevlog:
		return ColorRed2
	case LevelTrace:
		return ColorGrey
	case LevelMagic:
		return ColorPurple
	case LevelSilly:
		return ColorMagenta
	default:
		return ColorWhite
	}
}
