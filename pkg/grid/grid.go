// Package grid implements the width and wrap arithmetic shared by
// tables, column layouts, boxes and flag bitmaps.
//
// Every function here is pure: it takes values and returns the rendered
// text. For a fixed input the output is byte-identical across runs; the
// caller decides where the bytes go and what color, if any, wraps them.
//
// Widths are Unicode display widths (via go-runewidth), not byte or
// rune counts, so multi-byte glyphs line up.
package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/rustadex/stderr/pkg/borders"
)

// Width returns the display width of a string.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// pad right-pads s with spaces to display width w.
func pad(s string, w int) string {
	gap := w - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// SimpleTable renders rows with aligned columns. The first row is the
// header and is followed by a dash separator sized per column. Ragged
// rows are padded with empty cells before width computation, so the
// effective column count is the longest row's length.
func SimpleTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	numCols := 0
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, numCols)
		copy(padded[i], row)
	}

	colWidths := make([]int, numCols)
	for _, row := range padded {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	var b strings.Builder
	for rowIdx, row := range padded {
		cells := make([]string, numCols)
		for i, cell := range row {
			cells[i] = pad(cell, colWidths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")

		if rowIdx == 0 {
			seps := make([]string, numCols)
			for i, w := range colWidths {
				seps[i] = strings.Repeat("-", w)
			}
			b.WriteString(strings.Join(seps, "  "))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Columns lays items into n columns, filling row-major. Each column is
// as wide as its widest item plus two spaces of padding; the final
// partial row is left-aligned with missing cells left blank.
func Columns(items []string, n int) string {
	if len(items) == 0 || n <= 0 {
		return ""
	}

	colWidths := make([]int, n)
	for i, item := range items {
		col := i % n
		if w := runewidth.StringWidth(item); w > colWidths[col] {
			colWidths[col] = w
		}
	}

	var b strings.Builder
	for start := 0; start < len(items); start += n {
		end := start + n
		if end > len(items) {
			end = len(items)
		}
		var line strings.Builder
		for col, item := range items[start:end] {
			line.WriteString(pad(item, colWidths[col]+2))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	return b.String()
}

// Box wraps text in a border. Text is split on line breaks; the
// interior width is the widest line plus one space of padding on each
// side. All border glyphs come from the chosen style's fixed set; with
// borders.None only the padded content lines are emitted.
func Box(text string, style borders.Style) string {
	chars := borders.ForStyle(style)
	lines := strings.Split(text, "\n")

	contentWidth := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > contentWidth {
			contentWidth = w
		}
	}
	interior := contentWidth + 2

	var b strings.Builder
	if chars.Horizontal != "" {
		b.WriteString(chars.TopLeft)
		b.WriteString(strings.Repeat(chars.Horizontal, interior))
		b.WriteString(chars.TopRight)
		b.WriteString("\n")
	}
	for _, line := range lines {
		b.WriteString(chars.Vertical)
		b.WriteString(" ")
		b.WriteString(pad(line, contentWidth))
		b.WriteString(" ")
		b.WriteString(chars.Vertical)
		b.WriteString("\n")
	}
	if chars.Horizontal != "" {
		b.WriteString(chars.BottomLeft)
		b.WriteString(strings.Repeat(chars.Horizontal, interior))
		b.WriteString(chars.BottomRight)
		b.WriteString("\n")
	}
	return b.String()
}

// List renders items one per line behind a bullet.
func List(items []string, bullet string) string {
	var b strings.Builder
	for _, item := range items {
		b.WriteString(bullet)
		b.WriteString(" ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	return b.String()
}

// NumberedList renders items one per line with 1-based numbering.
func NumberedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item)
	}
	return b.String()
}
