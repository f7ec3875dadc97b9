// Package style defines the lipgloss styles used by the demo CLI's own
// output surface (headings, hints, status badges). The library core
// does not depend on this package; its colors come from the glyph
// table.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Color definitions using AdaptiveColor for automatic light/dark mode switching
var (
	HeadingColor = lipgloss.AdaptiveColor{
		Light: "#007ACC",
		Dark:  "#3D9EFF",
	}

	MutedColor = lipgloss.AdaptiveColor{
		Light: "#6C757D",
		Dark:  "#A0A8B0",
	}

	SuccessColor = lipgloss.AdaptiveColor{
		Light: "#28A745",
		Dark:  "#4CDD76",
	}

	ErrorColor = lipgloss.AdaptiveColor{
		Light: "#DC3545",
		Dark:  "#FF6B7D",
	}
)

var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Code and sample output
	SampleStyle = lipgloss.NewStyle().
			PaddingLeft(2)
)

// Badge kinds for the demo's status lines.
type Badge string

const (
	BadgeOn  Badge = "on"
	BadgeOff Badge = "off"
)

// BadgeStyle returns the pterm style for a flag badge.
func BadgeStyle(b Badge) *pterm.Style {
	switch b {
	case BadgeOn:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case BadgeOff:
		return pterm.NewStyle(pterm.BgDefault, pterm.FgGray)
	default:
		return pterm.NewStyle(pterm.FgDefault)
	}
}
