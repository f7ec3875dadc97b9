package main

import (
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render an aligned table",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		return log.Table(
			[]string{"KEY", "VALUE", "SCOPE"},
			[][]string{
				{"editor", "vim", "user"},
				{"pager", "less", "user"},
				{"theme", "solarized-dark", "project"},
				{"shell", "zsh"}, // ragged on purpose
			},
		)
	},
}

var tableColumnCount int

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Lay items out in columns",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		items := []string{
			"alpha", "beta", "gamma", "delta", "epsilon",
			"zeta", "eta", "theta", "iota", "kappa", "lambda",
		}
		return log.Columns(items, tableColumnCount)
	},
}

func init() {
	columnsCmd.Flags().IntVarP(&tableColumnCount, "cols", "c", 4, "Number of columns")
}
