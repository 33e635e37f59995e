package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"deckgrip/internal/presentation"
)

// ProgressBar draws slide progress, section ticks and the talk timer
type ProgressBar struct {
	styles  *Styles
	reduced bool
	bar     progress.Model
	timeBar progress.Model
}

// NewProgressBar creates a bar for the given styles. Reduced motion swaps
// the gradient for a solid fill.
func NewProgressBar(s *Styles, reducedMotion bool) *ProgressBar {
	opts := []progress.Option{progress.WithoutPercentage()}
	if reducedMotion {
		opts = append(opts, progress.WithSolidFill(s.SolidFill))
	} else {
		opts = append(opts, progress.WithGradient(s.GradientA, s.GradientB))
	}
	return &ProgressBar{
		styles:  s,
		reduced: reducedMotion,
		bar:     progress.New(opts...),
		timeBar: progress.New(progress.WithoutPercentage(), progress.WithSolidFill(s.SolidFill)),
	}
}

// Matches reports whether the bar was built for these settings
func (p *ProgressBar) Matches(s *Styles, reducedMotion bool) bool {
	return p.styles == s && p.reduced == reducedMotion
}

// Render draws the bar in width cells. sectionStarts are 0-based slide
// indexes where a section begins. The slide counter is left out unless
// showNumbers is set.
func (p *ProgressBar) Render(pv presentation.ProgressView, sectionStarts []int, width int, showNumbers bool) string {
	var label string
	if showNumbers {
		label = p.styles.Counter.Render(Counter(pv.CurrentSlide, pv.TotalSlides))
	}
	timer := TimerLabel(pv)
	timerStyled := p.styles.Clock.Render(timer)
	if pv.IsOvertime {
		timerStyled = p.styles.Overtime.Render(timer)
	}

	lead := 0
	if label != "" {
		lead = lipgloss.Width(label) + 1
	}
	barWidth := max(10, width-lead-lipgloss.Width(timerStyled)-1)
	p.bar.Width = barWidth
	p.timeBar.Width = barWidth

	line := p.bar.ViewAs(pv.Fraction) + " " + timerStyled
	if label != "" {
		line = label + " " + line
	}
	pad := strings.Repeat(" ", lead)

	lines := []string{line}
	if ticks := SectionTicks(sectionStarts, pv.TotalSlides, barWidth); strings.TrimSpace(ticks) != "" {
		lines = append(lines, pad+p.styles.Tick.Render(ticks))
	}
	lines = append(lines, pad+p.timeBar.ViewAs(min(pv.TimeFraction, 1))+" "+p.styles.Clock.Render(CompleteLabel(pv)))
	return strings.Join(lines, "\n")
}

// CompleteLabel returns "N% complete" for the slides with the share of the
// estimated time used alongside
func CompleteLabel(pv presentation.ProgressView) string {
	return fmt.Sprintf("%d%% complete, %d%% of time", pv.Percent, pv.TimePercent)
}

// TimerLabel returns "m:ss left" or "+m:ss overtime"
func TimerLabel(pv presentation.ProgressView) string {
	if pv.IsOvertime {
		return "+" + presentation.FormatDuration(pv.ElapsedSeconds-pv.EstimatedDurationSec) + " overtime"
	}
	return presentation.FormatDuration(pv.RemainingSeconds) + " left"
}

// SectionTicks returns a width-cell line with a marker under the bar
// position where each section starts
func SectionTicks(starts []int, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	line := []rune(strings.Repeat(" ", width))
	for _, start := range starts {
		if start <= 0 || start >= total {
			continue
		}
		pos := start * width / total
		if pos >= width {
			pos = width - 1
		}
		line[pos] = '╵'
	}
	return string(line)
}
