package main

import (
	"strings"

	"github.com/pterm/pterm"
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	return pterm.Bold.Sprint(s)
}

// formatHeader formats a section header: uppercased and bold
func formatHeader(s string) string {
	return pterm.Bold.Sprint(strings.ToUpper(s))
}
