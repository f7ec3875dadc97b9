package stderr

import (
	"fmt"

	"github.com/muesli/termenv"
)

// ColorGrid prints all 256 ANSI colors as numbered swatches, cols per
// row, picking a black or white foreground for contrast. Suppressed in
// quiet mode.
func (l *Stderr) ColorGrid(cols int) error {
	if l.config.Quiet {
		return nil
	}
	if cols <= 0 {
		cols = 16
	}

	for i := 0; i < 256; i++ {
		fg := termenv.ANSI256Color(15) // white
		if gridCellIsBright(i) {
			fg = termenv.ANSI256Color(0) // black
		}

		cell := l.out.String(fmt.Sprintf(" %-3d ", i)).
			Background(l.profile.Convert(termenv.ANSI256Color(i))).
			Foreground(l.profile.Convert(fg)).
			String()

		sep := " "
		if (i+1)%cols == 0 {
			sep = "\n"
		}
		if err := l.write(cell + sep); err != nil {
			return err
		}
	}
	return l.write("\n")
}

// gridCellIsBright decides whether an ANSI-256 color needs a dark
// foreground: a brightness heuristic on the 6x6x6 cube, fixed choices
// for the first 16 colors, and a threshold on the grayscale ramp.
func gridCellIsBright(i int) bool {
	switch {
	case i >= 16 && i < 232:
		r := ((i - 16) / 36) * 51
		g := (((i - 16) % 36) / 6) * 51
		b := ((i - 16) % 6) * 51
		return r+g+b > 382
	case i < 16:
		return i != 0 && i != 8
	default:
		return i > 243
	}
}
