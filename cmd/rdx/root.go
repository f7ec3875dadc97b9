package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/internal/version"
	"github.com/rustadex/stderr/pkg/config"
	"github.com/rustadex/stderr/pkg/logging"
	"github.com/rustadex/stderr/pkg/stderr"
)

var (
	verbosity int
	quiet     bool
	debugMode bool
	traceMode bool
	sillyMode bool
	devMode   bool

	rootCmd = &cobra.Command{
		Use:   "rdx",
		Short: "Showcase for the rustadex stderr rendering library",
		Long: `rdx exercises every surface of the stderr library: semantic log
levels, hierarchical call traces, context banners, tables, column
layouts, boxes and flag bitmaps. Each subcommand mirrors one feature.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase diagnostic verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors and okay messages")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable the debug level")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable the trace level and call traces")
	rootCmd.PersistentFlags().BoolVar(&sillyMode, "silly", false, "Enable the magic and silly levels")
	rootCmd.PersistentFlags().BoolVar(&devMode, "dev", false, "Enable the devlog level")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(boxCmd)
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(colorgridCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(topicsCmd)
}

// newLogger builds the logger the subcommands demonstrate, merging env
// resolution, command-line flags and any discovered theme file.
func newLogger() *stderr.Stderr {
	cfg := config.FromEnv()
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debugMode
	cfg.Trace = cfg.Trace || traceMode
	cfg.Silly = cfg.Silly || sillyMode
	cfg.Dev = cfg.Dev || devMode

	l := stderr.WithConfig(cfg)

	theme, err := config.DiscoverTheme()
	if err != nil {
		log.Warn().Err(err).Msg("Ignoring broken theme file")
	} else if theme != nil {
		l.ApplyTheme(theme)
	}
	return l
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rdx version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
