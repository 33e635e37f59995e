package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"deckgrip/internal/domain"
	"deckgrip/internal/presentation"
)

func TestCounterClipTruncate(t *testing.T) {
	assert.Equal(t, "3 / 12", Counter(3, 12))

	assert.Equal(t, "a\nb", Clip("a\nb\nc", 2))
	assert.Equal(t, "a", Clip("a", 5))
	assert.Equal(t, "", Clip("a", 0))

	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcd…", Truncate("abcdefgh", 5))
	assert.Equal(t, "", Truncate("abc", 0))
}

func TestTimerLabel(t *testing.T) {
	pv := presentation.ProgressView{RemainingSeconds: 125, EstimatedDurationSec: 300, ElapsedSeconds: 175}
	assert.Equal(t, "2:05 left", TimerLabel(pv))

	pv = presentation.ProgressView{IsOvertime: true, EstimatedDurationSec: 300, ElapsedSeconds: 367}
	assert.Equal(t, "+1:07 overtime", TimerLabel(pv))
}

func TestSectionTicks(t *testing.T) {
	ticks := SectionTicks([]int{0, 5}, 10, 20)
	assert.Equal(t, 20, len([]rune(ticks)))
	assert.Equal(t, '╵', []rune(ticks)[10])
	assert.Equal(t, 1, strings.Count(ticks, "╵"), "a section at slide 0 has no tick")

	assert.Equal(t, "", SectionTicks([]int{1}, 0, 20))
}

func TestRenderScreenFullscreenHidesChrome(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	sc := Screen{
		Width: 60, Height: 20,
		DeckTitle: "My Talk", SlideTitle: "Intro", Rendered: "HELLO",
		Number: 1, Total: 3, ShowSlideNumbers: true,
		Status: "Slide 1 of 3: Intro",
	}

	normal := StripANSI(RenderScreen(s, sc))
	assert.Contains(t, normal, "My Talk")
	assert.Contains(t, normal, "1 / 3")
	assert.Contains(t, normal, "HELLO")
	assert.Contains(t, normal, "Slide 1 of 3: Intro")

	sc.Fullscreen = true
	full := StripANSI(RenderScreen(s, sc))
	assert.Contains(t, full, "HELLO")
	assert.NotContains(t, full, "My Talk")
	assert.NotContains(t, full, "Slide 1 of 3")
}

func TestRenderScreenHidesNumbers(t *testing.T) {
	s := NewStyles(domain.ThemeLight)
	out := StripANSI(RenderScreen(s, Screen{Width: 40, Height: 10, DeckTitle: "T", Number: 2, Total: 4}))
	assert.NotContains(t, out, "2 / 4")
}

func TestProgressBarRender(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	bar := NewProgressBar(s, true)
	assert.True(t, bar.Matches(s, true))
	assert.False(t, bar.Matches(s, false))

	pv := presentation.Progress(presentation.State{CurrentSlide: 1, TotalSlides: 4, ElapsedSeconds: 60}, 10*time.Minute)
	out := StripANSI(bar.Render(pv, []int{2}, 60, true))
	assert.Contains(t, out, "2 / 4")
	assert.Contains(t, out, "9:00 left")
	assert.Contains(t, out, "╵")
	assert.Contains(t, out, "50% complete, 10% of time")
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestProgressBarHidesCounter(t *testing.T) {
	bar := NewProgressBar(NewStyles(domain.ThemeDark), true)
	pv := presentation.Progress(presentation.State{CurrentSlide: 1, TotalSlides: 4}, 10*time.Minute)

	out := StripANSI(bar.Render(pv, nil, 60, false))
	assert.NotContains(t, out, "2 / 4")
	assert.Contains(t, out, "10:00 left")
	assert.Contains(t, out, "50% complete, 0% of time")
	assert.Len(t, strings.Split(out, "\n"), 2)
}

func TestCompleteLabel(t *testing.T) {
	pv := presentation.Progress(presentation.State{CurrentSlide: 2, TotalSlides: 4, ElapsedSeconds: 900}, 10*time.Minute)
	assert.Equal(t, "75% complete, 100% of time", CompleteLabel(pv))
}

func TestRenderPresenter(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	out := StripANSI(RenderPresenter(s, Presenter{
		Width: 120, Height: 30,
		Rendered: "BODY", Title: "Intro", NextTitle: "Details",
		Notes: "remember the demo",
		Now:   time.Date(2026, 3, 14, 9, 30, 5, 0, time.UTC),
		Progress: presentation.ProgressView{
			CurrentSlide: 1, TotalSlides: 2, RemainingSeconds: 600, EstimatedDurationSec: 600,
		},
	}))
	assert.Contains(t, out, "09:30:05")
	assert.Contains(t, out, "Details")
	assert.Contains(t, out, "remember the demo")
	assert.Contains(t, out, "timer not started")
}

func TestRenderOverviewMarksCursor(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	cells := []OverviewCell{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}
	out := StripANSI(RenderOverview(s, cells, 2, 0, 100, 30))
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, " 1•")
	assert.Contains(t, out, "Three")

	assert.Contains(t, StripANSI(RenderOverview(s, nil, 0, 0, 40, 10)), "no slides")
}

func TestRenderPanels(t *testing.T) {
	s := NewStyles(domain.ThemeDark)
	groups := []ShortcutGroup{{
		Title:    "Navigation",
		Bindings: []key.Binding{key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next slide"))},
	}}
	out := StripANSI(RenderShortcuts(s, help.New(), groups, 100, 30))
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "next slide")

	out = StripANSI(RenderSettings(s, []SettingRow{{Label: "Theme", Value: "dark"}}, 0, 100, 30))
	assert.Contains(t, out, "› Theme")
}
