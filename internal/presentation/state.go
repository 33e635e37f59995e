// Package presentation holds the navigation state machine that drives a
// slide deck: current slide, mode flags, timing, notes and settings.
//
// All transitions go through Reduce, a pure function over State. Store wraps
// it with a clock, a display surface, a persister and an event bus.
package presentation

import (
	"maps"
	"time"

	"deckgrip/internal/domain"
)

// State is the complete navigation state of a presentation
type State struct {
	CurrentSlide int
	TotalSlides  int
	Direction    domain.Direction

	PresenterMode          bool
	PresenterViewOpen      bool
	OverviewMode           bool
	Fullscreen             bool
	ShortcutsVisible       bool
	AccessibilityPanelOpen bool

	StartTime      *time.Time
	ElapsedSeconds int
	SessionID      string
	SlideEnteredAt time.Time

	Notes    map[string]domain.Note
	Settings domain.Settings
}

// NewState returns the initial state with default settings
func NewState() State {
	return State{
		Direction: domain.Forward,
		Notes:     make(map[string]domain.Note),
		Settings:  domain.DefaultSettings(),
	}
}

// NoteForSlide returns the note content for a slide or "" when none exists
func (s State) NoteForSlide(slideID string) string {
	return s.Notes[slideID].Content
}

// Snapshot extracts the persisted subset
func (s State) Snapshot() domain.Snapshot {
	return domain.Snapshot{
		Settings: s.Settings,
		Notes:    maps.Clone(s.Notes),
	}
}

// CanGoNext reports whether NextSlide would move
func (s State) CanGoNext() bool {
	return s.CurrentSlide < s.TotalSlides-1
}

// CanGoPrevious reports whether PreviousSlide would move
func (s State) CanGoPrevious() bool {
	return s.CurrentSlide > 0
}

// clone copies the note map so a reduced state never aliases its input
func (s State) clone() State {
	s.Notes = maps.Clone(s.Notes)
	if s.Notes == nil {
		s.Notes = make(map[string]domain.Note)
	}
	if s.StartTime != nil {
		t := *s.StartTime
		s.StartTime = &t
	}
	return s
}

func (s State) clampSlide(i int) int {
	if i > s.TotalSlides-1 {
		i = s.TotalSlides - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
