// pkg/stderr/stderr_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test level gating, glyph prefixes and sink error handling

package stderr_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustadex/stderr/pkg/config"
	"github.com/rustadex/stderr/pkg/errors"
	"github.com/rustadex/stderr/pkg/glyphs"
	"github.com/rustadex/stderr/pkg/stderr"
)

// newBufLogger makes a logger writing into a fresh buffer. A bytes
// buffer is not a terminal, so color collapses to plain text and the
// width defaults to 80.
func newBufLogger(cfg config.Config) (*stderr.Stderr, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return stderr.WithConfig(cfg).WithSink(buf), buf
}

func TestLevelGlyphPrefixes(t *testing.T) {
	cfg := config.Config{Debug: true, Dev: true, Trace: true, Silly: true}

	tests := []struct {
		name string
		emit func(l *stderr.Stderr) error
		want string
	}{
		{"okay", func(l *stderr.Stderr) error { return l.Okay("done") }, "[✓] done\n"},
		{"info", func(l *stderr.Stderr) error { return l.Info("hello") }, "[λ] hello\n"},
		{"note", func(l *stderr.Stderr) error { return l.Note("aside") }, "[→] aside\n"},
		{"warn", func(l *stderr.Stderr) error { return l.Warn("careful") }, "[△] careful\n"},
		{"error", func(l *stderr.Stderr) error { return l.Error("broke") }, "[✕] broke\n"},
		{"debug", func(l *stderr.Stderr) error { return l.Debug("state") }, "[⌬] state\n"},
		{"devlog", func(l *stderr.Stderr) error { return l.Devlog("wip") }, "[⌬] wip\n"},
		{"trace", func(l *stderr.Stderr) error { return l.Trace("crumb") }, "[…] crumb\n"},
		{"magic", func(l *stderr.Stderr) error { return l.Magic("sparkle") }, "[↯] sparkle\n"},
		{"silly", func(l *stderr.Stderr) error { return l.Silly("noise") }, "[φ] noise\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newBufLogger(cfg)
			require.NoError(t, tt.emit(l))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestQuietSuppressesAllButErrorAndOkay(t *testing.T) {
	// every other gate wide open: quiet still wins
	l, buf := newBufLogger(config.Config{Quiet: true, Debug: true, Dev: true, Trace: true, Silly: true})

	require.NoError(t, l.Info("hidden"))
	require.NoError(t, l.Warn("hidden"))
	require.NoError(t, l.Note("hidden"))
	require.NoError(t, l.Debug("hidden"))
	require.NoError(t, l.Devlog("hidden"))
	require.NoError(t, l.Trace("hidden"))
	require.NoError(t, l.Magic("hidden"))
	require.NoError(t, l.Silly("hidden"))
	assert.Equal(t, "", buf.String())

	require.NoError(t, l.Error("shown"))
	require.NoError(t, l.Okay("shown"))
	assert.Equal(t, "[✕] shown\n[✓] shown\n", buf.String())
}

func TestGatedLevelsRequireTheirFlags(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		emit func(l *stderr.Stderr) error
	}{
		{"debug", config.Config{Debug: true}, func(l *stderr.Stderr) error { return l.Debug("x") }},
		{"devlog", config.Config{Dev: true}, func(l *stderr.Stderr) error { return l.Devlog("x") }},
		{"trace", config.Config{Trace: true}, func(l *stderr.Stderr) error { return l.Trace("x") }},
		{"magic", config.Config{Silly: true}, func(l *stderr.Stderr) error { return l.Magic("x") }},
		{"silly", config.Config{Silly: true}, func(l *stderr.Stderr) error { return l.Silly("x") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, offBuf := newBufLogger(config.Config{})
			require.NoError(t, tt.emit(off))
			assert.Equal(t, "", offBuf.String(), "suppressed without its flag")

			on, onBuf := newBufLogger(tt.cfg)
			require.NoError(t, tt.emit(on))
			assert.NotEqual(t, "", onBuf.String(), "emitted with its flag")
		})
	}
}

func TestLabelPrefix(t *testing.T) {
	l, buf := newBufLogger(config.Config{})
	l.WithLabel("api")

	require.NoError(t, l.Info("request served"))
	assert.Equal(t, "[api][λ] request served\n", buf.String())

	buf.Reset()
	l.ClearLabel()
	require.NoError(t, l.Info("request served"))
	assert.Equal(t, "[λ] request served\n", buf.String())
}

func TestLogArbitraryLevel(t *testing.T) {
	l, buf := newBufLogger(config.Config{})
	require.NoError(t, l.Log(glyphs.LevelWarn, "via Log"))
	assert.Equal(t, "[△] via Log\n", buf.String())
}

func TestRuntimeGateOverrides(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	require.NoError(t, l.Debug("off"))
	assert.Equal(t, "", buf.String())

	l.SetDebug(true)
	require.NoError(t, l.Debug("on"))
	assert.Equal(t, "[⌬] on\n", buf.String())

	buf.Reset()
	l.SetQuiet(true)
	require.NoError(t, l.Debug("silenced"))
	require.NoError(t, l.Info("silenced"))
	assert.Equal(t, "", buf.String())
	assert.True(t, l.Config().Quiet)
}

func TestGlyphOverride(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	set := glyphs.Default().Override(glyphs.LevelOkay, "OK")
	l.WithGlyphs(set)

	require.NoError(t, l.Okay("custom"))
	assert.Equal(t, "[OK] custom\n", buf.String())
	assert.Equal(t, "OK", l.Glyphs().For(glyphs.LevelOkay))
}

func TestNonTerminalSinkDefaults(t *testing.T) {
	l, _ := newBufLogger(config.Config{})
	assert.Equal(t, 80, l.Width())

	l.WithWidth(120)
	assert.Equal(t, 120, l.Width())

	// non-positive widths are ignored
	l.WithWidth(0)
	assert.Equal(t, 120, l.Width())
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, stderrors.New("disk full")
}

func TestSinkWriteFailureIsIOError(t *testing.T) {
	l := stderr.WithConfig(config.Config{}).WithSink(failWriter{})

	err := l.Error("does not land")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
	assert.Contains(t, err.Error(), "disk full")
}

type debuggableWidget struct {
	ID int
}

func (w debuggableWidget) DebugString() string {
	return "widget#42"
}

type plainWidget struct {
	ID int
}

func TestInspectPrefersDebugString(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	require.NoError(t, l.Inspect().Info(debuggableWidget{ID: 42}))
	assert.Equal(t, "[λ] widget#42\n", buf.String())
}

func TestInspectFallsBackToVerbFormatting(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	require.NoError(t, l.Inspect().Info(plainWidget{ID: 7}))
	assert.Equal(t, "[λ] {ID:7}\n", buf.String())
}

func TestInspectRespectsGates(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	require.NoError(t, l.Inspect().Debug(plainWidget{ID: 7}))
	assert.Equal(t, "", buf.String())
}

func TestFormatHelpersQuietGated(t *testing.T) {
	l, buf := newBufLogger(config.Config{Quiet: true})

	require.NoError(t, l.BoxLight("hidden"))
	require.NoError(t, l.SimpleTable([][]string{{"a"}}))
	require.NoError(t, l.Columns([]string{"a", "b"}, 2))
	require.NoError(t, l.List([]string{"a"}, "•"))
	require.NoError(t, l.NumberedList([]string{"a"}))
	assert.Equal(t, "", buf.String())
}

func TestTablePrependsHeaders(t *testing.T) {
	l, buf := newBufLogger(config.Config{})

	require.NoError(t, l.Table([]string{"name", "value"}, [][]string{{"shell", "zsh"}}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name   value", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "-----"))
}
