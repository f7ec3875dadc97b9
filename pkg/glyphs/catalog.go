package glyphs

// Catalog of Unicode symbols. Grouped roughly by purpose; not all of
// these are used by the library itself.

// Level markers and status symbols.
const (
	Lambda   = "λ" // λ
	Delta    = "△" // △
	Fail     = "✕" // ✕
	Pass     = "✓" // ✓
	Ellipsis = "…" // …
	Benzene  = "⌬" // ⌬
	Bolt     = "↯" // ↯
	Phi      = "φ" // φ
	Star     = "★" // ★
	Spark    = "✻" // ✻
	Info     = "ℹ" // ℹ
	Gear     = "⛭" // ⛭
	FlagOff  = "⚐" // ⚐
	FlagOn   = "⚑" // ⚑
)

// Arrows and pointers.
const (
	ArrowRight      = "→" // →
	ArrowLeft       = "←" // ←
	ArrowUp         = "↑" // ↑
	ArrowDown       = "↓" // ↓
	ArrowDownRight  = "↳" // ↳
	ArrowUpRight    = "↱" // ↱
	HeavyArrowRight = "➜" // ➜
	Pointer         = "▶" // ▶
	Redo            = "↻" // ↻
	Return          = "↩" // ↩
)

// Bullets.
const (
	Bullet      = "•" // •
	Dot         = "∙" // ∙
	Target      = "◎" // ◎
	RadioOn     = "◉" // ◉
	RadioOff    = "○" // ○
	SmallSquare = "▫" // ▫
	Diamond     = "⟡" // ⟡
)

// Trace tree drawing. The dashed variants give trace output a texture
// distinct from the solid box-drawing set used by borders.
const (
	TraceHeader   = "λ┄┄┄" // λ┄┄┄
	TraceDotted   = "┆"                   // ┆
	TraceBranch   = "├┄┄>"      // ├┄┄>
	TraceTerminal = "└┄┄>"      // └┄┄>
	TraceLabel    = "└┄┄"       // └┄┄
)

// Miscellaneous.
const (
	Section   = "§" // §
	Therefore = "∴" // ∴
	NotEqual  = "≠" // ≠
	Approx    = "≈" // ≈
	Degree    = "°" // °
	Anchor    = "⚓" // ⚓
	Note      = "♪" // ♪
	Sword     = "⚔" // ⚔
	Sun       = "☀" // ☀
	Moon      = "☾" // ☾
)
