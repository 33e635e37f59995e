package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlideChanged        EventType = "SlideChanged"
	EventModeChanged         EventType = "ModeChanged"
	EventPresentationStarted EventType = "PresentationStarted"
	EventPresentationReset   EventType = "PresentationReset"
	EventNoteUpdated         EventType = "NoteUpdated"
	EventSettingsChanged     EventType = "SettingsChanged"
	EventDeckReloaded        EventType = "DeckReloaded"
	EventPersistFailed       EventType = "PersistFailed"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SlideChangedEvent is emitted whenever the current slide moves
type SlideChangedEvent struct {
	From      int
	To        int
	Direction Direction
}

func (e SlideChangedEvent) Type() EventType { return EventSlideChanged }

// ModeChangedEvent is emitted when one of the mode flags flips
type ModeChangedEvent struct {
	Mode    string // "presenter", "presenter_view", "overview", "fullscreen", "shortcuts", "accessibility"
	Enabled bool
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// PresentationStartedEvent is emitted by StartPresentation
type PresentationStartedEvent struct {
	SessionID string
}

func (e PresentationStartedEvent) Type() EventType { return EventPresentationStarted }

// PresentationResetEvent is emitted by ResetPresentation
type PresentationResetEvent struct {
	SessionID string
}

func (e PresentationResetEvent) Type() EventType { return EventPresentationReset }

// NoteUpdatedEvent is emitted when a speaker note is written
type NoteUpdatedEvent struct {
	SlideID string
}

func (e NoteUpdatedEvent) Type() EventType { return EventNoteUpdated }

// SettingsChangedEvent carries the settings after a change
type SettingsChangedEvent struct {
	Settings Settings
}

func (e SettingsChangedEvent) Type() EventType { return EventSettingsChanged }

// DeckReloadedEvent is emitted when the deck file changed on disk and was parsed again
type DeckReloadedEvent struct {
	Path   string
	Slides int
	Err    error // parse error, the previous deck stays active
}

func (e DeckReloadedEvent) Type() EventType { return EventDeckReloaded }

// PersistFailedEvent is emitted when writing the snapshot failed
type PersistFailedEvent struct {
	Err error
}

func (e PersistFailedEvent) Type() EventType { return EventPersistFailed }
