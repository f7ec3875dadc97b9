package stderr

import (
	"fmt"
	"strings"

	"github.com/rustadex/stderr/pkg/glyphs"
)

// bannerCap limits context banner width on wide terminals.
const bannerCap = 60

// contextState tracks the caller-declared semantic context and the last
// context a banner was actually shown for. lastShown changes only at
// the moment a banner is emitted.
type contextState struct {
	current   *string
	lastShown *string
}

// Context returns the current context label, if one is set.
func (l *Stderr) Context() (string, bool) {
	if l.ctx.current == nil {
		return "", false
	}
	return *l.ctx.current, true
}

// SetContext declares the current semantic context. If it differs from
// the last context a banner was shown for, a banner naming it is
// rendered first; repeated calls with the same context render at most
// one banner total until the context changes.
func (l *Stderr) SetContext(c string) error {
	var err error
	if l.ctx.lastShown == nil || *l.ctx.lastShown != c {
		err = l.contextBanner(c)
		shown := c
		l.ctx.lastShown = &shown
	}
	cur := c
	l.ctx.current = &cur
	return err
}

// ClearContext drops the current context without rendering anything.
// The banner-novelty memory is deliberately untouched: re-setting the
// same context after a clear does not re-trigger a banner.
func (l *Stderr) ClearContext() {
	l.ctx.current = nil
}

// WithContext runs body under context c, then restores the prior
// context state verbatim — including the banner-novelty memory — on
// every exit path, so context changes inside body never leak out.
func (l *Stderr) WithContext(c string, body func() error) error {
	saved := l.ctx
	defer func() {
		l.ctx = saved
	}()

	if err := l.SetContext(c); err != nil {
		return err
	}
	return body()
}

// contextBanner renders the context-change banner: the context name
// centered in a dashed rule, capped at bannerCap columns.
func (l *Stderr) contextBanner(c string) error {
	if l.config.Quiet {
		return nil
	}

	msg := fmt.Sprintf(" Context: %s ", c)
	width := l.width
	if width > bannerCap {
		width = bannerCap
	}

	msgLen := len([]rune(msg))
	if msgLen >= width {
		return l.write(fmt.Sprintf("--- %s ---\n", c))
	}

	totalFill := width - msgLen
	leftFill := totalFill / 2
	rightFill := totalFill - leftFill

	line := strings.Repeat("-", leftFill) +
		l.styled(msg, glyphs.ColorBlue) +
		strings.Repeat("-", rightFill)
	return l.write(line + "\n")
}

// Banner renders msg centered in a rule of fill characters spanning the
// full layout width. Suppressed in quiet mode.
func (l *Stderr) Banner(msg string, fill rune) error {
	if l.config.Quiet {
		return nil
	}

	msgLen := len([]rune(msg)) + 2 // one space each side
	if msgLen >= l.width {
		return l.write(fmt.Sprintf(" %s \n", msg))
	}

	totalFill := l.width - msgLen
	leftFill := totalFill / 2
	rightFill := totalFill - leftFill

	line := strings.Repeat(string(fill), leftFill) +
		" " + l.bold(msg, glyphs.ColorBlue) + " " +
		strings.Repeat(string(fill), rightFill)
	return l.write(line + "\n")
}
