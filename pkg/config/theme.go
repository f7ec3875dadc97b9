package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/rustadex/stderr/pkg/errors"
	"github.com/rustadex/stderr/pkg/glyphs"
	"github.com/rustadex/stderr/pkg/logging"
)

// Theme overrides the default glyph table. Keys of Glyphs are level
// names (okay, info, note, warn, error, debug, devlog, trace, magic,
// silly); unknown keys are ignored.
type Theme struct {
	Glyphs map[string]string `toml:"glyphs" yaml:"glyphs"`
}

// Theme file names searched under the XDG config directory, in order.
var themeFiles = []string{"rdx/theme.toml", "rdx/theme.yaml", "rdx/theme.yml"}

// LoadTheme reads a theme file. The format is chosen by extension:
// .toml, or .yaml/.yml.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read theme file %s", path)
	}

	var theme Theme
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &theme); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid YAML theme %s", path)
		}
	default:
		if err := toml.Unmarshal(data, &theme); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid TOML theme %s", path)
		}
	}
	return &theme, nil
}

// DiscoverTheme searches the XDG config directories for a theme file
// and loads the first one found. A missing theme is not an error; it
// returns (nil, nil).
func DiscoverTheme() (*Theme, error) {
	logger := logging.GetLogger("config")

	for _, rel := range themeFiles {
		path, err := xdg.SearchConfigFile(rel)
		if err != nil {
			continue
		}
		logger.Debug().Str("path", path).Msg("Loading theme file")
		return LoadTheme(path)
	}
	return nil, nil
}

// Apply merges the theme's overrides into a glyph set and returns the
// result. The input set is not modified.
func (t *Theme) Apply(set glyphs.Set) glyphs.Set {
	if t == nil {
		return set
	}
	for name, glyph := range t.Glyphs {
		if glyph == "" {
			continue
		}
		if level, ok := levelByName(name); ok {
			set = set.Override(level, glyph)
		}
	}
	return set
}

func levelByName(name string) (glyphs.Level, bool) {
	for _, l := range []glyphs.Level{
		glyphs.LevelOkay, glyphs.LevelInfo, glyphs.LevelNote,
		glyphs.LevelWarn, glyphs.LevelError, glyphs.LevelDebug,
		glyphs.LevelDevlog, glyphs.LevelTrace, glyphs.LevelMagic,
		glyphs.LevelSilly,
	} {
		if l.String() == strings.ToLower(name) {
			return l, true
		}
	}
	return 0, false
}
