package ui

import (
	"time"

	"deckgrip/internal/deck"
	"deckgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// DeckReloadedMsg carries a deck that changed on disk. Err is set when the
// new version failed to parse; Deck is then the version still shown.
type DeckReloadedMsg struct {
	Deck *deck.Deck
	Err  error
}

// tickMsg drives the presentation clock once per second
type tickMsg time.Time

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}
