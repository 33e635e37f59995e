package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"deckgrip/internal/presentation"
)

// Handler turns raw terminal input into commands applied to a Target
type Handler struct {
	registry *Registry
	target   Target
	swipe    *SwipeDetector
	wheel    *WheelGate
	gestures map[Gesture]presentation.Command
}

// Options configures gesture thresholds. Zero values use the package defaults.
type Options struct {
	MinSwipeDistance    float64
	MaxVerticalDistance float64
	WheelCooldown       time.Duration
}

// New creates a handler dispatching registry shortcuts to target
func New(registry *Registry, target Target, opts Options) *Handler {
	return &Handler{
		registry: registry,
		target:   target,
		swipe:    NewSwipeDetector(opts.MinSwipeDistance, opts.MaxVerticalDistance),
		wheel:    NewWheelGate(opts.WheelCooldown),
		gestures: map[Gesture]presentation.Command{
			// content follows the finger: dragging left reveals the next slide
			GestureSwipeLeft:  presentation.NextSlide{},
			GestureSwipeRight: presentation.PreviousSlide{},
			GestureWheelDown:  presentation.NextSlide{},
			GestureWheelUp:    presentation.PreviousSlide{},
		},
	}
}

// Registry returns the shortcut registry
func (h *Handler) Registry() *Registry {
	return h.registry
}

// HandleKey dispatches a bubbletea key message. It reports whether a
// shortcut fired.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx Context) bool {
	if ctx != nil && ctx.TextEntryFocused() {
		return false
	}
	return h.HandleKeyEvent(FromKeyMsg(msg), ctx)
}

// HandleKeyEvent normalizes ev, looks up its shortcut and applies the bound
// command. Nothing happens while a text field has focus.
func (h *Handler) HandleKeyEvent(ev KeyEvent, ctx Context) bool {
	if ctx != nil && ctx.TextEntryFocused() {
		return false
	}
	shortcut, ok := h.registry.Lookup(Normalize(ev))
	if !ok {
		return false
	}
	h.target.Apply(shortcut.Command)
	return true
}

// HandleMouse feeds a mouse message to the swipe detector and wheel gate.
// at is the arrival time used for the wheel cooldown.
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx Context, at time.Time) bool {
	if ctx != nil && ctx.TextEntryFocused() {
		h.swipe.Cancel()
		return false
	}

	var g Gesture
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		g = h.wheel.Feed(0, -1, at)
	case msg.Button == tea.MouseButtonWheelDown:
		g = h.wheel.Feed(0, 1, at)
	case msg.Button == tea.MouseButtonWheelLeft:
		g = h.wheel.Feed(-1, 0, at)
	case msg.Button == tea.MouseButtonWheelRight:
		g = h.wheel.Feed(1, 0, at)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		h.swipe.Begin(float64(msg.X), float64(msg.Y))
		return false
	case msg.Action == tea.MouseActionRelease:
		g = h.swipe.End(float64(msg.X), float64(msg.Y))
	}
	return h.HandleGesture(g)
}

// HandleGesture applies the command bound to g
func (h *Handler) HandleGesture(g Gesture) bool {
	cmd, ok := h.gestures[g]
	if !ok {
		return false
	}
	h.target.Apply(cmd)
	return true
}
