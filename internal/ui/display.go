package ui

import (
	"sync"

	"deckgrip/internal/domain"
)

// TerminalDisplay is the display surface of the terminal UI. The program
// always runs in the alternate screen; fullscreen hides the surrounding
// chrome and the theme selects the style set.
type TerminalDisplay struct {
	mu         sync.RWMutex
	fullscreen bool
	theme      domain.Theme
}

// NewTerminalDisplay creates a display showing theme
func NewTerminalDisplay(theme domain.Theme) *TerminalDisplay {
	return &TerminalDisplay{theme: theme}
}

func (d *TerminalDisplay) RequestFullscreen() {
	d.mu.Lock()
	d.fullscreen = true
	d.mu.Unlock()
}

func (d *TerminalDisplay) ExitFullscreen() {
	d.mu.Lock()
	d.fullscreen = false
	d.mu.Unlock()
}

func (d *TerminalDisplay) ApplyTheme(theme domain.Theme) {
	d.mu.Lock()
	d.theme = theme
	d.mu.Unlock()
}

// Fullscreen reports whether chrome is hidden
func (d *TerminalDisplay) Fullscreen() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.fullscreen
}

// Theme returns the applied theme
func (d *TerminalDisplay) Theme() domain.Theme {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.theme
}
