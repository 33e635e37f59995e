package presentation

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deckgrip/internal/domain"
)

// Options wires a Store to its collaborators. Nil fields get no-op defaults.
type Options struct {
	Clock     Clock
	Display   Display
	Persister Persister
	Bus       Publisher
	Logger    *zap.Logger
}

// Store owns the presentation state. It is the only writer of State.
type Store struct {
	mu        sync.RWMutex
	state     State
	clock     Clock
	display   Display
	persister Persister
	bus       Publisher
	log       *zap.Logger
}

// NewStore creates a store and restores notes and settings from the persister.
// A failing or empty persister leaves the defaults in place.
func NewStore(opts Options) *Store {
	s := &Store{
		state:     NewState(),
		clock:     opts.Clock,
		display:   opts.Display,
		persister: opts.Persister,
		bus:       opts.Bus,
		log:       opts.Logger,
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.display == nil {
		s.display = nopDisplay{}
	}
	if s.persister == nil {
		s.persister = nopPersister{}
	}
	if s.bus == nil {
		s.bus = nopPublisher{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.Named("store")

	snap, found, err := s.persister.Load()
	switch {
	case err != nil:
		s.log.Warn("loading persisted state failed, using defaults", zap.Error(err))
	case found:
		s.state.Settings = sanitizeSettings(snap.Settings)
		if snap.Notes != nil {
			s.state.Notes = snap.Notes
		}
	}
	return s
}

func sanitizeSettings(in domain.Settings) domain.Settings {
	def := domain.DefaultSettings()
	if in.Theme != domain.ThemeDark && in.Theme != domain.ThemeLight {
		in.Theme = def.Theme
	}
	if in.AutoProgressDurationSeconds <= 0 {
		in.AutoProgressDurationSeconds = def.AutoProgressDurationSeconds
	}
	return in
}

// State returns a copy of the current state
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

// Apply runs cmd through Reduce and carries out the resulting effects.
// Unknown commands are ignored.
func (s *Store) Apply(cmd Command) {
	if start, ok := cmd.(StartPresentation); ok && start.SessionID == "" {
		start.SessionID = uuid.NewString()
		cmd = start
	}

	s.mu.Lock()
	next, effects := Reduce(s.state, cmd, s.clock.Now())
	s.state = next
	var snap domain.Snapshot
	persist := false
	for _, e := range effects {
		if _, ok := e.(PersistEffect); ok {
			snap = next.Snapshot()
			persist = true
		}
	}
	s.mu.Unlock()

	// Effects run outside the lock so collaborators may read the store.
	for _, e := range effects {
		switch e := e.(type) {
		case FullscreenEffect:
			if e.On {
				s.display.RequestFullscreen()
			} else {
				s.display.ExitFullscreen()
			}
		case ThemeEffect:
			s.display.ApplyTheme(e.Theme)
		case EventEffect:
			s.bus.Publish(e.Event)
		}
	}
	if persist {
		if err := s.persister.Save(snap); err != nil {
			s.log.Warn("persisting state failed", zap.Error(err))
			s.bus.Publish(domain.PersistFailedEvent{Err: err})
		}
	}
}

func (s *Store) SetTotalSlides(n int)        { s.Apply(SetTotalSlides{Total: n}) }
func (s *Store) NextSlide()                  { s.Apply(NextSlide{}) }
func (s *Store) PreviousSlide()              { s.Apply(PreviousSlide{}) }
func (s *Store) GoToSlide(i int)             { s.Apply(GoToSlide{Index: i}) }
func (s *Store) SetCurrentSlide(i int)       { s.Apply(SetCurrentSlide{Index: i}) }
func (s *Store) TogglePresenterMode()        { s.Apply(TogglePresenterMode{}) }
func (s *Store) SetPresenterViewOpen(b bool) { s.Apply(SetPresenterViewOpen{Open: b}) }
func (s *Store) ToggleOverviewMode()         { s.Apply(ToggleOverviewMode{}) }
func (s *Store) ToggleFullscreen()           { s.Apply(ToggleFullscreen{}) }
func (s *Store) ToggleKeyboardShortcuts()    { s.Apply(ToggleKeyboardShortcuts{}) }
func (s *Store) ToggleAccessibilityPanel()   { s.Apply(ToggleAccessibilityPanel{}) }
func (s *Store) StartPresentation()          { s.Apply(StartPresentation{}) }
func (s *Store) ResetPresentation()          { s.Apply(ResetPresentation{}) }
func (s *Store) UpdateElapsedTime(sec int)   { s.Apply(UpdateElapsedTime{Seconds: sec}) }
func (s *Store) Tick()                       { s.Apply(Tick{}) }
func (s *Store) ToggleTheme()                { s.Apply(ToggleTheme{}) }

// UpdateNote upserts the note for a slide
func (s *Store) UpdateNote(slideID, content string) {
	s.Apply(UpdateNote{SlideID: slideID, Content: content})
}

// NoteForSlide returns the note content for a slide or "" when there is none
func (s *Store) NoteForSlide(slideID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.NoteForSlide(slideID)
}

// UpdateSettings merges the non-nil fields of patch into the settings
func (s *Store) UpdateSettings(patch domain.SettingsPatch) {
	s.Apply(UpdateSettings{Patch: patch})
}

// Settings returns the current settings
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings
}
