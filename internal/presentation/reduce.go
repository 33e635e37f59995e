package presentation

import (
	"time"

	"deckgrip/internal/domain"
)

// Effect is a side effect requested by Reduce and carried out by the Store
type Effect interface {
	effect()
}

// FullscreenEffect asks the display surface to enter or leave fullscreen
type FullscreenEffect struct {
	On bool
}

// ThemeEffect asks the display surface to apply a theme
type ThemeEffect struct {
	Theme domain.Theme
}

// PersistEffect asks for the notes/settings snapshot to be written
type PersistEffect struct{}

// EventEffect asks for an event to be published
type EventEffect struct {
	Event domain.DomainEvent
}

func (FullscreenEffect) effect() {}
func (ThemeEffect) effect()      {}
func (PersistEffect) effect()    {}
func (EventEffect) effect()      {}

// Reduce applies cmd to s and returns the new state together with the
// effects the transition requires. It never fails: out-of-range input is
// clamped and unknown commands leave the state unchanged.
func Reduce(s State, cmd Command, now time.Time) (State, []Effect) {
	next := s.clone()
	var effects []Effect

	switch c := cmd.(type) {
	case SetTotalSlides:
		if c.Total < 0 {
			c.Total = 0
		}
		next.TotalSlides = c.Total

	case NextSlide:
		if next.CanGoNext() {
			effects = next.moveTo(next.CurrentSlide+1, now, effects)
		}

	case PreviousSlide:
		if next.CanGoPrevious() {
			effects = next.moveTo(next.CurrentSlide-1, now, effects)
		}

	case GoToSlide:
		effects = next.jumpTo(next.clampSlide(c.Index), now, effects)
		effects = next.setMode("overview", &next.OverviewMode, false, effects)

	case FirstSlide:
		effects = next.moveTo(0, now, effects)
		effects = next.setMode("overview", &next.OverviewMode, false, effects)

	case LastSlide:
		effects = next.moveTo(next.clampSlide(next.TotalSlides-1), now, effects)
		effects = next.setMode("overview", &next.OverviewMode, false, effects)

	case SetCurrentSlide:
		effects = next.jumpTo(next.clampSlide(c.Index), now, effects)

	case TogglePresenterMode:
		effects = next.setMode("presenter", &next.PresenterMode, !next.PresenterMode, effects)

	case SetPresenterViewOpen:
		effects = next.setMode("presenter_view", &next.PresenterViewOpen, c.Open, effects)

	case ToggleOverviewMode:
		effects = next.setMode("overview", &next.OverviewMode, !next.OverviewMode, effects)

	case ToggleFullscreen:
		effects = next.setFullscreen(!next.Fullscreen, effects)

	case ToggleKeyboardShortcuts:
		effects = next.setMode("shortcuts", &next.ShortcutsVisible, !next.ShortcutsVisible, effects)

	case ToggleAccessibilityPanel:
		effects = next.setMode("accessibility", &next.AccessibilityPanelOpen, !next.AccessibilityPanelOpen, effects)

	case ExitOverlay:
		switch {
		case next.ShortcutsVisible:
			effects = next.setMode("shortcuts", &next.ShortcutsVisible, false, effects)
		case next.AccessibilityPanelOpen:
			effects = next.setMode("accessibility", &next.AccessibilityPanelOpen, false, effects)
		case next.PresenterViewOpen:
			effects = next.setMode("presenter_view", &next.PresenterViewOpen, false, effects)
		case next.OverviewMode:
			effects = next.setMode("overview", &next.OverviewMode, false, effects)
		case next.Fullscreen:
			effects = next.setFullscreen(false, effects)
		}

	case StartPresentation:
		started := now
		next.StartTime = &started
		next.ElapsedSeconds = 0
		next.SessionID = c.SessionID
		effects = next.moveTo(0, now, effects)
		next.SlideEnteredAt = now
		effects = append(effects, EventEffect{domain.PresentationStartedEvent{SessionID: c.SessionID}})

	case ResetPresentation:
		next.StartTime = nil
		next.ElapsedSeconds = 0
		effects = next.moveTo(0, now, effects)
		effects = next.setMode("presenter", &next.PresenterMode, false, effects)
		effects = next.setMode("overview", &next.OverviewMode, false, effects)
		effects = next.setFullscreen(false, effects)
		effects = append(effects, EventEffect{domain.PresentationResetEvent{SessionID: next.SessionID}})

	case UpdateElapsedTime:
		if c.Seconds < 0 {
			c.Seconds = 0
		}
		next.ElapsedSeconds = c.Seconds

	case Tick:
		if next.StartTime == nil {
			break
		}
		if elapsed := int(now.Sub(*next.StartTime) / time.Second); elapsed > 0 {
			next.ElapsedSeconds = elapsed
		} else {
			next.ElapsedSeconds = 0
		}
		if next.Settings.AutoProgress && next.CanGoNext() {
			dwell := time.Duration(next.Settings.AutoProgressDurationSeconds) * time.Second
			if now.Sub(next.SlideEnteredAt) >= dwell {
				effects = next.moveTo(next.CurrentSlide+1, now, effects)
			}
		}

	case UpdateNote:
		next.Notes[c.SlideID] = domain.Note{
			SlideID:      c.SlideID,
			Content:      c.Content,
			LastModified: now,
		}
		effects = append(effects,
			PersistEffect{},
			EventEffect{domain.NoteUpdatedEvent{SlideID: c.SlideID}})

	case UpdateSettings:
		merged := next.Settings.Merge(c.Patch)
		if merged != next.Settings {
			themeChanged := merged.Theme != next.Settings.Theme
			next.Settings = merged
			if themeChanged {
				effects = append(effects, ThemeEffect{Theme: merged.Theme})
			}
			effects = append(effects,
				PersistEffect{},
				EventEffect{domain.SettingsChangedEvent{Settings: merged}})
		}

	case ToggleTheme:
		next.Settings.Theme = next.Settings.Theme.Opposite()
		effects = append(effects,
			ThemeEffect{Theme: next.Settings.Theme},
			PersistEffect{},
			EventEffect{domain.SettingsChangedEvent{Settings: next.Settings}})

	case ToggleNotes:
		next.Settings.ShowNotes = !next.Settings.ShowNotes
		effects = append(effects,
			PersistEffect{},
			EventEffect{domain.SettingsChangedEvent{Settings: next.Settings}})

	default:
		return s, nil
	}

	return next, effects
}

// moveTo sets the current slide and the direction relative to the previous
// one. Moving to the slide already shown keeps the direction.
// jumpTo is moveTo for direct jumps, where a jump onto the current slide
// still counts as a backward move
func (s *State) jumpTo(target int, now time.Time, effects []Effect) []Effect {
	if target == s.CurrentSlide {
		s.Direction = domain.Backward
	}
	return s.moveTo(target, now, effects)
}

func (s *State) moveTo(target int, now time.Time, effects []Effect) []Effect {
	from := s.CurrentSlide
	if target == from {
		return effects
	}
	if target > from {
		s.Direction = domain.Forward
	} else {
		s.Direction = domain.Backward
	}
	s.CurrentSlide = target
	s.SlideEnteredAt = now
	return append(effects, EventEffect{domain.SlideChangedEvent{From: from, To: target, Direction: s.Direction}})
}

func (s *State) setMode(name string, flag *bool, value bool, effects []Effect) []Effect {
	if *flag == value {
		return effects
	}
	*flag = value
	return append(effects, EventEffect{domain.ModeChangedEvent{Mode: name, Enabled: value}})
}

func (s *State) setFullscreen(on bool, effects []Effect) []Effect {
	if s.Fullscreen == on {
		return effects
	}
	effects = s.setMode("fullscreen", &s.Fullscreen, on, effects)
	return append(effects, FullscreenEffect{On: on})
}
