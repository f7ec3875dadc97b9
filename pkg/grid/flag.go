package grid

import (
	"fmt"
	"strings"

	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/errors"
)

// FlagSpec describes a bitmask to render as a table of labelled cells.
//
// Labels are declared most-significant-bit-first: Labels[0] names bit
// BitWidth-1, and the rendered cells read the value's bits high to low,
// so labels appear left to right in declared order. Supplying fewer
// labels than BitWidth pads the low bits with blank labels; supplying
// more is a layout error.
type FlagSpec struct {
	BitWidth int
	Labels   []string
	Value    uint64
}

// cellsPerRow fixes how many bit cells share one framed row.
const cellsPerRow = 16

// FlagTable renders a bitmask as rows of framed cells, each showing the
// bit index, the bit's value, and its label. Higher bits render first.
func FlagTable(spec FlagSpec, style borders.Style) (string, error) {
	if spec.BitWidth <= 0 {
		return "", nil
	}
	if len(spec.Labels) > spec.BitWidth {
		return "", errors.Newf(errors.ErrLayout,
			"flag table has %d labels for %d bits", len(spec.Labels), spec.BitWidth).
			WithDetail("bitWidth", spec.BitWidth).
			WithDetail("labels", len(spec.Labels))
	}

	chars := borders.ForStyle(style)
	h4 := strings.Repeat(chars.Horizontal, 4)

	// labelFor maps a bit index to its MSB-first label.
	labelFor := func(bit int) string {
		idx := spec.BitWidth - 1 - bit
		if idx < len(spec.Labels) {
			return spec.Labels[idx]
		}
		return ""
	}

	numRows := (spec.BitWidth + cellsPerRow - 1) / cellsPerRow

	var b strings.Builder
	for j := numRows - 1; j >= 0; j-- {
		start := j * cellsPerRow
		end := start + cellsPerRow - 1
		if end > spec.BitWidth-1 {
			end = spec.BitWidth - 1
		}
		numCols := end - start + 1

		topBorder := "# " + chars.TopLeft + h4 + strings.Repeat(chars.TeeDown+h4, numCols-1)
		midBorder := "# " + chars.TeeRight + h4 + strings.Repeat(chars.Cross+h4, numCols-1)
		botBorder := "# " + chars.BottomLeft + h4 + strings.Repeat(chars.TeeUp+h4, numCols-1)

		indexRow := "# " + chars.Vertical
		valueRow := "# " + chars.Vertical
		labelRow := "# " + chars.Vertical

		for i := end; i >= start; i-- {
			indexRow += fmt.Sprintf(" %02d %s", i, chars.Vertical)
			valueRow += fmt.Sprintf("  %d %s", (spec.Value>>uint(i))&1, chars.Vertical)
			labelRow += fmt.Sprintf(" %2.2s %s", labelFor(i), chars.Vertical)
		}

		b.WriteString(topBorder + chars.TopRight + "\n")
		b.WriteString(indexRow + "\n")
		b.WriteString(midBorder + chars.TeeLeft + "\n")
		b.WriteString(valueRow + "\n")
		b.WriteString(labelRow + "\n")
		b.WriteString(botBorder + chars.BottomRight + "\n")
	}

	return b.String(), nil
}
