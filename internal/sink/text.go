package sink

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ContentRenderer transforms a line before it is printed (e.g. markdown to ANSI).
type ContentRenderer func(string) (string, error)

// Text prints "Received: <line>" with a coloured prefix when the terminal supports it.
type Text struct {
	out      *termenv.Output
	renderer ContentRenderer
	prefix   string
}

// TextOption defines configuration for Text.
type TextOption func(*Text)

// WithRenderer sets the renderer applied to each line. Render failures fall back to the raw line.
func WithRenderer(r ContentRenderer) TextOption {
	return func(t *Text) {
		t.renderer = r
	}
}

// WithProfile forces a colour profile instead of detecting one from the writer.
func WithProfile(p termenv.Profile) TextOption {
	return func(t *Text) {
		t.out = termenv.NewOutput(t.out.Writer(), termenv.WithProfile(p))
	}
}

// WithPrefix replaces the "Received:" prefix.
func WithPrefix(prefix string) TextOption {
	return func(t *Text) {
		t.prefix = prefix
	}
}

// NewText creates a text sink writing to w, or os.Stdout when w is nil.
func NewText(w io.Writer, opts ...TextOption) *Text {
	if w == nil {
		w = os.Stdout
	}
	t := &Text{
		out:    termenv.NewOutput(w),
		prefix: "Received:",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Text) Write(ctx context.Context, line string) error {
	body := line
	if t.renderer != nil {
		if rendered, err := t.renderer(line); err == nil {
			body = strings.TrimSpace(rendered)
		}
	}
	prefix := t.out.String(t.prefix).Foreground(t.out.Color("#a78bfa")).Bold()
	_, err := fmt.Fprintf(t.out, "%s %s\n", prefix, body)
	return err
}

func (t *Text) Close() error {
	return nil
}
