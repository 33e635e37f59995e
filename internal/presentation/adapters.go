package presentation

import "deckgrip/internal/domain"

// Display is the surface the presentation is shown on. Calls are
// fire-and-forget; an implementation that cannot honour one ignores it.
type Display interface {
	RequestFullscreen()
	ExitFullscreen()
	ApplyTheme(theme domain.Theme)
}

// Persister stores the notes/settings snapshot between sessions
type Persister interface {
	// Load returns the stored snapshot. found is false when nothing was
	// stored yet.
	Load() (snap domain.Snapshot, found bool, err error)
	Save(snap domain.Snapshot) error
}

// Publisher receives the events produced by transitions
type Publisher interface {
	Publish(event domain.DomainEvent)
}

type nopDisplay struct{}

func (nopDisplay) RequestFullscreen()        {}
func (nopDisplay) ExitFullscreen()           {}
func (nopDisplay) ApplyTheme(_ domain.Theme) {}

type nopPersister struct{}

func (nopPersister) Load() (domain.Snapshot, bool, error) {
	return domain.DefaultSnapshot(), false, nil
}
func (nopPersister) Save(domain.Snapshot) error { return nil }

type nopPublisher struct{}

func (nopPublisher) Publish(domain.DomainEvent) {}
