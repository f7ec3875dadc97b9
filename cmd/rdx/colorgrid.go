package main

import (
	"github.com/spf13/cobra"
)

var colorgridCols int

var colorgridCmd = &cobra.Command{
	Use:   "colorgrid",
	Short: "Print the 256-color ANSI palette",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		return log.ColorGrid(colorgridCols)
	},
}

func init() {
	colorgridCmd.Flags().IntVarP(&colorgridCols, "cols", "c", 16, "Swatches per row")
}
