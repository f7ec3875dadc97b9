package stderr

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/rustadex/stderr/pkg/borders"
	"github.com/rustadex/stderr/pkg/errors"
	"github.com/rustadex/stderr/pkg/glyphs"
)

// ConfirmBuilder configures a styled confirmation prompt. Created via
// Stderr.ConfirmBuilder; finalized by Ask.
type ConfirmBuilder struct {
	l           *Stderr
	prompt      string
	useBox      bool
	style       borders.Style
	promptColor termenv.Color
	reader      io.Reader
}

// Confirm asks a simple yes/no/quit question with the builder's
// defaults. See ConfirmBuilder for options.
func (l *Stderr) Confirm(prompt string) (*bool, error) {
	return l.ConfirmBuilder(prompt).Ask()
}

// ConfirmBuilder creates a builder for a flexible confirmation prompt.
func (l *Stderr) ConfirmBuilder(prompt string) *ConfirmBuilder {
	return &ConfirmBuilder{
		l:           l,
		prompt:      prompt,
		style:       borders.Light,
		promptColor: glyphs.ColorWhite,
	}
}

// Boxed wraps the prompt text in a box before asking.
func (b *ConfirmBuilder) Boxed(useBox bool) *ConfirmBuilder {
	b.useBox = useBox
	return b
}

// Style sets the border style used when the box is enabled.
func (b *ConfirmBuilder) Style(style borders.Style) *ConfirmBuilder {
	b.style = style
	return b
}

// PromptColor sets the color of the question line.
func (b *ConfirmBuilder) PromptColor(c termenv.Color) *ConfirmBuilder {
	b.promptColor = c
	return b
}

// WithReader substitutes the input source. Without it, Ask reads from
// standard input and refuses to run when stdin is not a terminal.
func (b *ConfirmBuilder) WithReader(r io.Reader) *ConfirmBuilder {
	b.reader = r
	return b
}

// Ask renders the prompt and reads the answer. It returns a pointer to
// true or false for yes/no, nil for quit, and an INPUT error when the
// input source is non-interactive or ends before an answer. In quiet
// mode it auto-confirms without rendering.
func (b *ConfirmBuilder) Ask() (*bool, error) {
	if b.l.config.Quiet {
		yes := true
		return &yes, nil
	}

	reader := b.reader
	if reader == nil {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil, errors.New(errors.ErrInput,
				"cannot ask for confirmation on a non-interactive stdin")
		}
		reader = os.Stdin
	}

	if b.useBox {
		if err := b.l.Boxed(b.prompt, b.style); err != nil {
			return nil, err
		}
	}

	scanner := bufio.NewScanner(reader)
	for {
		question := b.prompt + " [y/n/q] > "
		if b.useBox {
			question = "Your choice [y/n/q] -> "
		}
		if err := b.l.write(b.l.bold(question, b.promptColor)); err != nil {
			return nil, err
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrap(err, errors.ErrInput, "failed to read confirmation input")
			}
			return nil, errors.New(errors.ErrInput, "confirmation input ended before an answer")
		}

		answer := strings.TrimSpace(scanner.Text())
		var first byte
		if answer != "" {
			first = answer[0]
		}
		switch first {
		case 'y', 'Y':
			yes := true
			return &yes, nil
		case 'n', 'N':
			no := false
			return &no, nil
		case 'q', 'Q':
			return nil, nil
		default:
			if err := b.l.Warn("Invalid input. Please try again."); err != nil {
				return nil, err
			}
		}
	}
}
