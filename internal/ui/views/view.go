package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StatusKind selects the status line color
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// Screen contains all the state needed to draw the main slide screen
type Screen struct {
	Width      int
	Height     int
	Fullscreen bool

	DeckTitle        string
	SlideTitle       string
	Rendered         string // slide body, already rendered for the terminal
	Number           int    // 1-based
	Total            int
	ShowSlideNumbers bool

	Notes    string // shown below the slide when non-empty
	Progress string // pre-rendered progress block, empty when hidden
	Status   string
	Kind     StatusKind
	HelpHint string
}

// RenderScreen produces the slide screen. In fullscreen only the slide is
// drawn.
func RenderScreen(s *Styles, sc Screen) string {
	if sc.Width <= 0 || sc.Height <= 0 {
		return ""
	}
	if sc.Fullscreen {
		body := Clip(sc.Rendered, sc.Height)
		return lipgloss.Place(sc.Width, sc.Height, lipgloss.Center, lipgloss.Center, body)
	}

	var top []string
	header := s.Title.Render(sc.DeckTitle)
	if sc.ShowSlideNumbers && sc.Total > 0 {
		counter := s.Counter.Render(Counter(sc.Number, sc.Total))
		gap := sc.Width - lipgloss.Width(header) - lipgloss.Width(counter)
		header += strings.Repeat(" ", max(1, gap)) + counter
	}
	top = append(top, header)

	var bottom []string
	if sc.Notes != "" {
		notes := s.Frame.Width(max(10, sc.Width-2)).Render(s.Section.Render("Notes") + "\n" + s.Notes.Render(Clip(sc.Notes, 6)))
		bottom = append(bottom, notes)
	}
	if sc.Progress != "" {
		bottom = append(bottom, sc.Progress)
	}
	bottom = append(bottom, renderStatus(s, sc))

	chrome := lipgloss.Height(strings.Join(top, "\n")) + lipgloss.Height(strings.Join(bottom, "\n"))
	// frame border takes two lines
	bodyHeight := max(1, sc.Height-chrome-2)
	body := s.Frame.
		Width(max(10, sc.Width-2)).
		Height(bodyHeight).
		Render(Clip(sc.Rendered, bodyHeight))

	parts := append(top, body)
	parts = append(parts, bottom...)
	return strings.Join(parts, "\n")
}

func renderStatus(s *Styles, sc Screen) string {
	style := s.Status
	switch sc.Kind {
	case StatusError:
		style = s.StatusError
	case StatusSuccess:
		style = s.StatusSuccess
	}
	line := style.Render(sc.Status)
	if sc.HelpHint != "" {
		hint := s.Dim.Render(sc.HelpHint)
		gap := sc.Width - lipgloss.Width(line) - lipgloss.Width(hint)
		if gap > 0 {
			line += strings.Repeat(" ", gap) + hint
		}
	}
	return line
}

// Counter formats the slide counter, e.g. "3 / 12"
func Counter(number, total int) string {
	return strconv.Itoa(number) + " / " + strconv.Itoa(total)
}

// Clip keeps at most n lines of s
func Clip(s string, n int) string {
	if n <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s
	}
	return strings.Join(lines[:n], "\n")
}

// Truncate shortens s to w cells, marking the cut with an ellipsis
func Truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return ansi.Truncate(s, w, "…")
}
