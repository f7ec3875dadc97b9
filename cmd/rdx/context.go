package main

import (
	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context",
	Short: "Demonstrate context banners",
	Long: `Switches between semantic contexts and shows when banners do
and do not fire: repeats are silent, clears don't reset the banner
memory, and scoped contexts restore the previous state on exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		_ = log.SetContext("@build")
		_ = log.Info("compiling sources")
		_ = log.SetContext("@build") // same context, no second banner
		_ = log.Info("still compiling")

		_ = log.SetContext("@deploy")
		_ = log.Info("uploading artifacts")

		err := log.WithContext("@migrate", func() error {
			_ = log.Info("running migrations")
			return nil
		})
		if err != nil {
			return err
		}

		// back under @deploy; no banner because it was restored, not re-set
		_ = log.Info("finalizing deploy")

		log.ClearContext()
		_ = log.SetContext("@deploy") // cleared but remembered: still no banner
		return log.Okay("context demo finished")
	},
}
