package stderr

import (
	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/grid"
)

// Boxed renders msg inside a border of the given style. Suppressed in
// quiet mode. The layout is delegated to grid.Box, so for a fixed style
// and message the emitted bytes are identical across runs.
func (l *Stderr) Boxed(msg string, style borders.Style) error {
	if l.config.Quiet {
		return nil
	}
	return l.write(grid.Box(msg, style))
}

// BoxLight renders msg in a box with light, single-line borders.
func (l *Stderr) BoxLight(msg string) error {
	return l.Boxed(msg, borders.Light)
}

// BoxHeavy renders msg in a box with heavy, bold borders.
func (l *Stderr) BoxHeavy(msg string) error {
	return l.Boxed(msg, borders.Heavy)
}

// BoxDouble renders msg in a box with double-line borders.
func (l *Stderr) BoxDouble(msg string) error {
	return l.Boxed(msg, borders.Double)
}

// Help displays help text in a light box.
func (l *Stderr) Help(helpText string) error {
	return l.Boxed(helpText, borders.Light)
}

// SimpleTable renders rows with aligned columns; the first row is the
// header. Suppressed in quiet mode.
func (l *Stderr) SimpleTable(rows [][]string) error {
	if l.config.Quiet {
		return nil
	}
	return l.write(grid.SimpleTable(rows))
}

// Table renders a header row followed by data rows.
func (l *Stderr) Table(headers []string, rows [][]string) error {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, headers)
	all = append(all, rows...)
	return l.SimpleTable(all)
}

// Columns lays items into n columns, row-major.
func (l *Stderr) Columns(items []string, n int) error {
	if l.config.Quiet {
		return nil
	}
	return l.write(grid.Columns(items, n))
}

// List prints items one per line behind a bullet.
func (l *Stderr) List(items []string, bullet string) error {
	if l.config.Quiet {
		return nil
	}
	return l.write(grid.List(items, bullet))
}

// NumberedList prints items one per line with 1-based numbering.
func (l *Stderr) NumberedList(items []string) error {
	if l.config.Quiet {
		return nil
	}
	return l.write(grid.NumberedList(items))
}

// FlagTable renders a bitmask as a table of labelled bit cells. A spec
// with more labels than bits surfaces a LAYOUT error.
func (l *Stderr) FlagTable(spec grid.FlagSpec, style borders.Style) error {
	if l.config.Quiet {
		return nil
	}
	s, err := grid.FlagTable(spec, style)
	if err != nil {
		return err
	}
	return l.write(s)
}
