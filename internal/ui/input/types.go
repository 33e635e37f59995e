package input

import "deckgrip/internal/presentation"

// Category groups shortcuts in the help panel
type Category string

const (
	CategoryNavigation   Category = "navigation"
	CategoryPresentation Category = "presentation"
	CategoryTools        Category = "tools"
)

// Categories lists every category in display order
var Categories = []Category{CategoryNavigation, CategoryPresentation, CategoryTools}

// Shortcut binds a normalized key identifier to a command
type Shortcut struct {
	Key         string
	Description string
	Category    Category
	Command     presentation.Command
}

// KeyEvent is a key press reduced to what normalization needs. Code names
// the physical key for arrows, space and escape ("ArrowLeft", "Space",
// "Escape"); Key holds the produced key text for everything else.
type KeyEvent struct {
	Code  string
	Key   string
	Meta  bool
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Context provides read-only access to UI state needed for input handling
type Context interface {
	// TextEntryFocused reports whether a text field currently owns the keyboard
	TextEntryFocused() bool
}

// Target receives the commands produced by input
type Target interface {
	Apply(cmd presentation.Command)
}

// Gesture is an abstract pointer gesture
type Gesture string

const (
	GestureNone       Gesture = ""
	GestureSwipeLeft  Gesture = "swipe-left"
	GestureSwipeRight Gesture = "swipe-right"
	GestureWheelUp    Gesture = "wheel-up"
	GestureWheelDown  Gesture = "wheel-down"
)
