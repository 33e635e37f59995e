package deck

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"deckgrip/internal/domain"
)

type rendererKey struct {
	theme domain.Theme
	width int
}

type outputKey struct {
	rendererKey
	body string
}

// Renderer turns slide Markdown into styled terminal text. Renderers and
// output are cached per theme and width.
type Renderer struct {
	mu        sync.Mutex
	renderers map[rendererKey]*glamour.TermRenderer
	output    map[outputKey]string
}

// NewRenderer creates an empty renderer cache
func NewRenderer() *Renderer {
	return &Renderer{
		renderers: make(map[rendererKey]*glamour.TermRenderer),
		output:    make(map[outputKey]string),
	}
}

// Render renders markdown for the given theme, wrapped at width columns
func (r *Renderer) Render(markdown string, theme domain.Theme, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	rk := rendererKey{theme: theme, width: width}
	ok := outputKey{rendererKey: rk, body: markdown}

	r.mu.Lock()
	defer r.mu.Unlock()

	if out, hit := r.output[ok]; hit {
		return out, nil
	}

	tr, hit := r.renderers[rk]
	if !hit {
		style := "dark"
		if theme == domain.ThemeLight {
			style = "light"
		}
		var err error
		tr, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create renderer: %w", err)
		}
		r.renderers[rk] = tr
	}

	out, err := tr.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render slide: %w", err)
	}
	out = strings.Trim(out, "\n")
	r.output[ok] = out
	return out, nil
}

// Reset drops cached output, e.g. after the deck reloads
func (r *Renderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.output)
}
