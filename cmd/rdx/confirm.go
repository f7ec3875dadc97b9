package main

import (
	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/borders"
)

var confirmBoxed bool

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Ask a styled yes/no question",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		answer, err := log.ConfirmBuilder("Proceed with the demo?").
			Boxed(confirmBoxed).
			Style(borders.Heavy).
			Ask()
		if err != nil {
			return err
		}

		switch {
		case answer == nil:
			return log.Note("aborted")
		case *answer:
			return log.Okay("confirmed")
		default:
			return log.Warn("declined")
		}
	},
}

func init() {
	confirmCmd.Flags().BoolVar(&confirmBoxed, "boxed", false, "Wrap the prompt in a box")
}
