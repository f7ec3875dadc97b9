package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/errors"
)

var boxStyleName string

var boxCmd = &cobra.Command{
	Use:   "box [text...]",
	Short: "Render text in a bordered box",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		text := "The same glyph set frames\nthe whole box, never mixed."
		if len(args) > 0 {
			text = strings.Join(args, " ")
		}

		style, err := parseBorderStyle(boxStyleName)
		if err != nil {
			return err
		}
		return log.Boxed(text, style)
	},
}

func init() {
	boxCmd.Flags().StringVarP(&boxStyleName, "style", "s", "light", "Border style: light, heavy, double, none")
}

func parseBorderStyle(name string) (borders.Style, error) {
	switch strings.ToLower(name) {
	case "light":
		return borders.Light, nil
	case "heavy":
		return borders.Heavy, nil
	case "double":
		return borders.Double, nil
	case "none":
		return borders.None, nil
	default:
		return borders.Light, errors.Newf(errors.ErrLayout, "unknown border style %q", name)
	}
}
