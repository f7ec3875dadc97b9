package topics

import "github.com/charmbracelet/glamour"

// Renderer formats topic content for display. The format argument is
// the topic file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// Plain returns content unchanged. It is the right choice when output
// is piped.
type Plain struct{}

func (Plain) Render(content string, format string) string {
	return content
}

// Markdown renders .md topics with glamour; other formats pass through
// unchanged. Any rendering failure falls back to the raw content.
type Markdown struct {
	Style string // glamour style name, or empty for auto-detection
	Width int    // word-wrap width, 0 for no wrap
}

func (r Markdown) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	if r.Style != "" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	options = append(options, glamour.WithWordWrap(r.Width))

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
