package ui

import (
	"path/filepath"

	"deckgrip/internal/domain"
	"deckgrip/internal/presentation"
	"deckgrip/internal/ui/views"
)

func (m *Model) currentStyles() *views.Styles {
	theme := m.display.Theme()
	if m.styles == nil || m.styles.Theme != theme {
		m.styles = views.NewStyles(theme)
	}
	return m.styles
}

func (m *Model) progressBar(s *views.Styles, reduced bool) *views.ProgressBar {
	if m.bar == nil || !m.bar.Matches(s, reduced) {
		m.bar = views.NewProgressBar(s, reduced)
	}
	return m.bar
}

func (m *Model) renderSlide(slide domain.Slide, width int) string {
	out, err := m.renderer.Render(slide.Body, m.display.Theme(), width)
	if err != nil {
		m.log.Debug("render failed, showing source")
		return slide.Body
	}
	return out
}

func (m *Model) deckTitle() string {
	if m.deck.Title != "" {
		return m.deck.Title
	}
	if m.deck.Path != "" {
		return filepath.Base(m.deck.Path)
	}
	return "deckgrip"
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}

	s := m.currentStyles()
	st := m.store.State()
	settings := st.Settings
	estimated := m.deck.EstimatedDuration(m.estimated)
	pv := presentation.Progress(st, estimated)
	slide, _ := m.deck.Slide(st.CurrentSlide)

	// overlays take the whole screen, topmost first
	switch {
	case m.mode == modeGoTo:
		return views.RenderPrompt(s, "Go to slide", m.gotoInput.View(), "enter jumps · esc cancels", m.width, m.height)
	case m.mode == modeNoteEditor:
		return views.RenderPrompt(s, "Notes: "+slide.Title, m.noteEditor.View(), "ctrl+s saves · esc discards", m.width, m.height)
	case st.ShortcutsVisible:
		return views.RenderShortcuts(s, m.help, shortcutGroups(m.registry), m.width, m.height)
	case st.AccessibilityPanelOpen:
		return views.RenderSettings(s, m.settingsRows(), m.settingsCursor, m.width, m.height)
	}

	if st.PresenterViewOpen {
		next := ""
		if n, ok := m.deck.Slide(st.CurrentSlide + 1); ok {
			next = n.Title
		}
		return views.RenderPresenter(s, views.Presenter{
			Width:     m.width,
			Height:    m.height,
			Rendered:  m.renderSlide(slide, m.width*3/5-4),
			Title:     slide.Title,
			NextTitle: next,
			Notes:     m.notesFor(slide),
			Now:       m.clock.Now(),
			Started:   st.StartTime != nil,
			Progress:  pv,
		})
	}

	if st.OverviewMode {
		cells := make([]views.OverviewCell, 0, m.deck.Len())
		for _, sl := range m.deck.Slides {
			cells = append(cells, views.OverviewCell{Title: sl.Title, Section: sl.Section})
		}
		return views.RenderOverview(s, cells, m.overviewCursor, st.CurrentSlide, m.width, m.height)
	}

	sc := views.Screen{
		Width:            m.width,
		Height:           m.height,
		Fullscreen:       m.display.Fullscreen(),
		DeckTitle:        m.deckTitle(),
		SlideTitle:       slide.Title,
		Rendered:         m.renderSlide(slide, m.width-4),
		Number:           pv.CurrentSlide,
		Total:            pv.TotalSlides,
		ShowSlideNumbers: settings.ShowSlideNumbers,
		Status:           m.status,
		Kind:             m.statusKind,
		HelpHint:         "? shortcuts",
	}
	if settings.ShowNotes || st.PresenterMode {
		sc.Notes = m.notesFor(slide)
	}
	if settings.ShowProgress {
		starts := make([]int, 0)
		for _, sec := range m.deck.Sections() {
			starts = append(starts, sec.Start)
		}
		sc.Progress = m.progressBar(s, settings.ReducedMotion).Render(pv, starts, m.width, settings.ShowSlideNumbers)
	}
	return views.RenderScreen(s, sc)
}

func (m *Model) notesFor(slide domain.Slide) string {
	if n := m.store.NoteForSlide(slide.ID); n != "" {
		return n
	}
	return slide.Notes
}
