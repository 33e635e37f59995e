package presentation

import "deckgrip/internal/domain"

// Command is a request to change presentation state. Commands that Reduce
// does not know are ignored, which lets the UI bind its own commands in the
// same shortcut registry.
type Command interface {
	Type() string
}

// Navigation commands
type NextSlide struct{}

func (c NextSlide) Type() string { return "next_slide" }

type PreviousSlide struct{}

func (c PreviousSlide) Type() string { return "previous_slide" }

type FirstSlide struct{}

func (c FirstSlide) Type() string { return "first_slide" }

type LastSlide struct{}

func (c LastSlide) Type() string { return "last_slide" }

type GoToSlide struct {
	Index int
}

func (c GoToSlide) Type() string { return "go_to_slide" }

type SetCurrentSlide struct {
	Index int
}

func (c SetCurrentSlide) Type() string { return "set_current_slide" }

type SetTotalSlides struct {
	Total int
}

func (c SetTotalSlides) Type() string { return "set_total_slides" }

// Mode commands
type TogglePresenterMode struct{}

func (c TogglePresenterMode) Type() string { return "toggle_presenter_mode" }

type SetPresenterViewOpen struct {
	Open bool
}

func (c SetPresenterViewOpen) Type() string { return "set_presenter_view_open" }

type ToggleOverviewMode struct{}

func (c ToggleOverviewMode) Type() string { return "toggle_overview_mode" }

type ToggleFullscreen struct{}

func (c ToggleFullscreen) Type() string { return "toggle_fullscreen" }

type ToggleKeyboardShortcuts struct{}

func (c ToggleKeyboardShortcuts) Type() string { return "toggle_keyboard_shortcuts" }

type ToggleAccessibilityPanel struct{}

func (c ToggleAccessibilityPanel) Type() string { return "toggle_accessibility_panel" }

// ExitOverlay closes the top-most open overlay
type ExitOverlay struct{}

func (c ExitOverlay) Type() string { return "exit_overlay" }

// Timing commands
type StartPresentation struct {
	SessionID string
}

func (c StartPresentation) Type() string { return "start_presentation" }

type ResetPresentation struct{}

func (c ResetPresentation) Type() string { return "reset_presentation" }

type UpdateElapsedTime struct {
	Seconds int
}

func (c UpdateElapsedTime) Type() string { return "update_elapsed_time" }

// Tick recomputes elapsed time from the clock and drives auto-progress
type Tick struct{}

func (c Tick) Type() string { return "tick" }

// Notes and settings commands
type UpdateNote struct {
	SlideID string
	Content string
}

func (c UpdateNote) Type() string { return "update_note" }

type UpdateSettings struct {
	Patch domain.SettingsPatch
}

func (c UpdateSettings) Type() string { return "update_settings" }

type ToggleTheme struct{}

func (c ToggleTheme) Type() string { return "toggle_theme" }

// ToggleNotes flips Settings.ShowNotes
type ToggleNotes struct{}

func (c ToggleNotes) Type() string { return "toggle_notes" }
