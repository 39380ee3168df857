// Package markdown turns the help prose into terminal text with glamour.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// flat strips glamour's document margin so prose lines up with the key table.
const flat = `{"document": {"margin": 0, "block_prefix": "", "block_suffix": ""}}`

// Options controls wrapping and theme.
type Options struct {
	Width int
	// Style is a glamour standard style ("dark", "light", "notty"); empty
	// picks one from the terminal background.
	Style string
}

func (o Options) termOptions() []glamour.TermRendererOption {
	theme := glamour.WithAutoStyle()
	if o.Style != "" {
		theme = glamour.WithStandardStyle(o.Style)
	}
	return []glamour.TermRendererOption{
		theme,
		glamour.WithStylesFromJSONBytes([]byte(flat)),
		glamour.WithWordWrap(o.Width),
	}
}

// Render converts md, dropping trailing newlines.
func Render(md string, opts Options) (string, error) {
	r, err := glamour.NewTermRenderer(opts.termOptions()...)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.TrimRight(out, "\n"), nil
}
