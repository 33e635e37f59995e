package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"deckgrip/internal/presentation"
)

// Presenter holds the presenter view contents
type Presenter struct {
	Width, Height int

	Rendered  string // current slide
	Title     string
	NextTitle string // empty on the last slide
	Notes     string
	Now       time.Time
	Started   bool
	Progress  presentation.ProgressView
}

// RenderPresenter draws the current slide on the left and notes, next
// slide and timers on the right
func RenderPresenter(s *Styles, p Presenter) string {
	if p.Width <= 0 || p.Height <= 0 {
		return ""
	}
	leftW := p.Width * 3 / 5
	rightW := p.Width - leftW - 1
	innerH := max(1, p.Height-2)

	left := s.Frame.
		Width(max(10, leftW-2)).
		Height(innerH).
		Render(Clip(p.Rendered, innerH))

	var b strings.Builder
	b.WriteString(s.Clock.Render(p.Now.Format("15:04:05")))
	b.WriteString("\n\n")

	b.WriteString(s.Section.Render("Elapsed") + "  ")
	b.WriteString(presentation.FormatDuration(p.Progress.ElapsedSeconds))
	b.WriteString("\n")
	timer := TimerLabel(p.Progress)
	if p.Progress.IsOvertime {
		b.WriteString(s.Overtime.Render(timer))
	} else {
		b.WriteString(s.Desc.Render(timer))
	}
	if !p.Started {
		b.WriteString("\n" + s.Dim.Render("timer not started"))
	}
	b.WriteString("\n\n")

	b.WriteString(s.Section.Render("Slide") + "  ")
	b.WriteString(Counter(p.Progress.CurrentSlide, p.Progress.TotalSlides) + "  " + s.Title.Render(Truncate(p.Title, rightW-12)))
	b.WriteString("\n")
	next := "end of deck"
	if p.NextTitle != "" {
		next = p.NextTitle
	}
	b.WriteString(s.Section.Render("Next") + "   " + s.Desc.Render(Truncate(next, rightW-10)))
	b.WriteString("\n\n")

	b.WriteString(s.Section.Render("Notes"))
	b.WriteString("\n")
	notes := p.Notes
	if notes == "" {
		notes = s.Dim.Render("no notes for this slide")
	} else {
		notes = s.Notes.Width(max(10, rightW-4)).Render(notes)
	}
	b.WriteString(notes)

	right := s.Frame.
		Width(max(10, rightW-2)).
		Height(innerH).
		Render(Clip(b.String(), innerH))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
