package main

import (
	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/style"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Emit one message at every semantic level",
	Long: `Emits one message per level so you can see which gates apply.
Run with --quiet, --debug, --trace, --silly or --dev to watch levels
appear and disappear.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		_ = log.Okay("okay: shown even in quiet mode")
		_ = log.Info("info: everyday progress message")
		_ = log.Note("note: something worth remembering")
		_ = log.Warn("warn: not fatal, not nothing")
		_ = log.Error("error: shown even in quiet mode")
		_ = log.Debug("debug: only with the debug gate")
		_ = log.Devlog("devlog: only with the dev gate")
		_ = log.Trace("trace: only with the trace gate")
		_ = log.Magic("magic: only with the silly gate")
		_ = log.Silly("silly: only with the silly gate")

		type build struct {
			Target string
			Steps  int
		}
		return log.Inspect().Info(build{Target: "demo", Steps: 3})
	},
}

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Show the level glyph table",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		set := log.Glyphs()
		cmd.Println(style.SubtitleStyle.Render("Level glyphs"))
		return log.SimpleTable([][]string{
			{"level", "glyph"},
			{"okay", set.Okay},
			{"info", set.Info},
			{"note", set.Note},
			{"warn", set.Warn},
			{"error", set.Error},
			{"debug", set.Debug},
			{"devlog", set.Devlog},
			{"trace", set.Trace},
			{"magic", set.Magic},
			{"silly", set.Silly},
		})
	},
}
