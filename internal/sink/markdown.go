package sink

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer returns a ContentRenderer that renders markdown using glamour.
// Light or dark style is picked from the terminal background.
func NewMarkdownRenderer() (ContentRenderer, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}
