package domain

import "time"

// Theme is the color scheme applied to the display surface
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Opposite returns the other theme
func (t Theme) Opposite() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Direction records which way the last slide move went
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Note is a speaker note attached to a slide
type Note struct {
	SlideID      string    `toml:"slide_id"`
	Content      string    `toml:"content"`
	LastModified time.Time `toml:"last_modified"`
}

// Settings are the user preferences that survive restarts
type Settings struct {
	Theme                       Theme `toml:"theme"`
	ReducedMotion               bool  `toml:"reduced_motion"`
	AutoProgress                bool  `toml:"auto_progress"`
	AutoProgressDurationSeconds int   `toml:"auto_progress_duration_seconds"`
	ShowNotes                   bool  `toml:"show_notes"`
	ShowProgress                bool  `toml:"show_progress"`
	ShowSlideNumbers            bool  `toml:"show_slide_numbers"`
}

// DefaultSettings returns the settings used when nothing has been persisted
func DefaultSettings() Settings {
	return Settings{
		Theme:                       ThemeDark,
		ReducedMotion:               false,
		AutoProgress:                false,
		AutoProgressDurationSeconds: 30,
		ShowNotes:                   false,
		ShowProgress:                true,
		ShowSlideNumbers:            true,
	}
}

// SettingsPatch is a partial settings update. Nil fields are left alone.
type SettingsPatch struct {
	Theme                       *Theme
	ReducedMotion               *bool
	AutoProgress                *bool
	AutoProgressDurationSeconds *int
	ShowNotes                   *bool
	ShowProgress                *bool
	ShowSlideNumbers            *bool
}

// Merge applies the non-nil fields of p on top of s
func (s Settings) Merge(p SettingsPatch) Settings {
	if p.Theme != nil && (*p.Theme == ThemeDark || *p.Theme == ThemeLight) {
		s.Theme = *p.Theme
	}
	if p.ReducedMotion != nil {
		s.ReducedMotion = *p.ReducedMotion
	}
	if p.AutoProgress != nil {
		s.AutoProgress = *p.AutoProgress
	}
	if p.AutoProgressDurationSeconds != nil && *p.AutoProgressDurationSeconds > 0 {
		s.AutoProgressDurationSeconds = *p.AutoProgressDurationSeconds
	}
	if p.ShowNotes != nil {
		s.ShowNotes = *p.ShowNotes
	}
	if p.ShowProgress != nil {
		s.ShowProgress = *p.ShowProgress
	}
	if p.ShowSlideNumbers != nil {
		s.ShowSlideNumbers = *p.ShowSlideNumbers
	}
	return s
}

// Snapshot is the persisted subset of presentation state
type Snapshot struct {
	Settings Settings        `toml:"settings"`
	Notes    map[string]Note `toml:"notes"`
}

// DefaultSnapshot returns an empty snapshot with default settings
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Settings: DefaultSettings(),
		Notes:    make(map[string]Note),
	}
}

// Slide describes one slide of a deck
type Slide struct {
	ID       string
	Title    string
	Section  string
	Duration time.Duration // optional, zero when unset
	Notes    string        // speaker notes authored in the deck file
	Body     string        // markdown source
}
