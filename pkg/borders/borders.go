// Package borders defines the box-drawing glyph sets used by boxes,
// tables and flag bitmaps.
//
// Reference: https://en.wikipedia.org/wiki/Box-drawing_characters
package borders

// Style names a fixed set of corner and edge glyphs. A style is atomic:
// a rendered box or table uses exactly one style's glyphs throughout.
type Style int

const (
	Light Style = iota
	Heavy
	Double
	None
)

// String returns the lowercase style name.
func (s Style) String() string {
	switch s {
	case Light:
		return "light"
	case Heavy:
		return "heavy"
	case Double:
		return "double"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// Chars is the glyph set for one border style.
type Chars struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	TeeRight    string // ├
	TeeLeft     string // ┤
	TeeDown     string // ┬
	TeeUp       string // ┴
	Cross       string // ┼
}

// ForStyle returns the glyph set for a style. None yields empty glyphs;
// renderers skip border rows entirely when Horizontal is empty.
func ForStyle(s Style) Chars {
	switch s {
	case Heavy:
		return Chars{
			TopLeft:     "┏", // ┏
			TopRight:    "┓", // ┓
			BottomLeft:  "┗", // ┗
			BottomRight: "┛", // ┛
			Horizontal:  "━", // ━
			Vertical:    "┃", // ┃
			TeeRight:    "┣", // ┣
			TeeLeft:     "┫", // ┫
			TeeDown:     "┳", // ┳
			TeeUp:       "┻", // ┻
			Cross:       "╋", // ╋
		}
	case Double:
		return Chars{
			TopLeft:     "╔", // ╔
			TopRight:    "╗", // ╗
			BottomLeft:  "╚", // ╚
			BottomRight: "╝", // ╝
			Horizontal:  "═", // ═
			Vertical:    "║", // ║
			TeeRight:    "╠", // ╠
			TeeLeft:     "╣", // ╣
			TeeDown:     "╦", // ╦
			TeeUp:       "╩", // ╩
			Cross:       "╬", // ╬
		}
	case None:
		return Chars{}
	default:
		return Chars{
			TopLeft:     "┌", // ┌
			TopRight:    "┐", // ┐
			BottomLeft:  "└", // └
			BottomRight: "┘", // ┘
			Horizontal:  "─", // ─
			Vertical:    "│", // │
			TeeRight:    "├", // ├
			TeeLeft:     "┤", // ┤
			TeeDown:     "┬", // ┬
			TeeUp:       "┴", // ┴
			Cross:       "┼", // ┼
		}
	}
}
