package main

import (
	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/grid"
	"github.com/rustadex/stderr/pkg/style"
)

var (
	flagsValue    uint64
	flagsBitWidth int
)

var flagsCmd = &cobra.Command{
	Use:   "flags",
	Short: "Render a bitmask as a flag table",
	Long: `Renders a bitmask as labelled bit cells, most significant bit
first, and prints the logger's own verbosity gates as badges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		labels := []string{"qt", "dv", "db", "tr", "sy", "cx", "lb", "th"}
		if flagsBitWidth < len(labels) {
			labels = labels[:flagsBitWidth]
		}
		err := log.FlagTable(grid.FlagSpec{
			BitWidth: flagsBitWidth,
			Labels:   labels,
			Value:    flagsValue,
		}, parseBorderStyleOrLight(boxStyleName))
		if err != nil {
			return err
		}

		cfg := log.Config()
		cmd.Println(formatHeader("gates"))
		for _, gate := range []struct {
			name string
			on   bool
		}{
			{"quiet", cfg.Quiet},
			{"dev", cfg.Dev},
			{"debug", cfg.Debug},
			{"trace", cfg.Trace},
			{"silly", cfg.Silly},
		} {
			badge := style.BadgeStyle(style.BadgeOff).Sprint(" off ")
			if gate.on {
				badge = style.BadgeStyle(style.BadgeOn).Sprint(" on  ")
			}
			cmd.Printf("%s %s\n", badge, gate.name)
		}
		return nil
	},
}

func parseBorderStyleOrLight(name string) (s borders.Style) {
	s, err := parseBorderStyle(name)
	if err != nil {
		return borders.Light
	}
	return s
}

func init() {
	flagsCmd.Flags().Uint64VarP(&flagsValue, "value", "V", 0b10100110, "Bitmask value to display")
	flagsCmd.Flags().IntVarP(&flagsBitWidth, "bits", "b", 8, "Declared bit width")
	flagsCmd.Flags().StringVarP(&boxStyleName, "style", "s", "light", "Border style: light, heavy, double")
}
