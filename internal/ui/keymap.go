package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"deckgrip/internal/presentation"
	"deckgrip/internal/ui/input"
	"deckgrip/internal/ui/views"
)

// Commands handled by the UI itself. The store ignores them.
type (
	QuitCommand                struct{}
	EditNoteCommand            struct{}
	GoToPromptCommand          struct{}
	OutlinePagerCommand        struct{}
	TogglePresenterViewCommand struct{}
)

func (QuitCommand) Type() string                { return "quit" }
func (EditNoteCommand) Type() string            { return "edit_note" }
func (GoToPromptCommand) Type() string          { return "go_to_prompt" }
func (OutlinePagerCommand) Type() string        { return "outline_pager" }
func (TogglePresenterViewCommand) Type() string { return "toggle_presenter_view" }

// DefaultShortcuts returns the built-in key bindings
func DefaultShortcuts() []input.Shortcut {
	nav, pres, tools := input.CategoryNavigation, input.CategoryPresentation, input.CategoryTools
	return []input.Shortcut{
		{Key: "right", Description: "Next slide", Category: nav, Command: presentation.NextSlide{}},
		{Key: "space", Description: "Next slide", Category: nav, Command: presentation.NextSlide{}},
		{Key: "l", Description: "Next slide", Category: nav, Command: presentation.NextSlide{}},
		{Key: "pgdown", Description: "Next slide", Category: nav, Command: presentation.NextSlide{}},
		{Key: "left", Description: "Previous slide", Category: nav, Command: presentation.PreviousSlide{}},
		{Key: "h", Description: "Previous slide", Category: nav, Command: presentation.PreviousSlide{}},
		{Key: "backspace", Description: "Previous slide", Category: nav, Command: presentation.PreviousSlide{}},
		{Key: "pgup", Description: "Previous slide", Category: nav, Command: presentation.PreviousSlide{}},
		{Key: "up", Description: "First slide", Category: nav, Command: presentation.FirstSlide{}},
		{Key: "home", Description: "First slide", Category: nav, Command: presentation.FirstSlide{}},
		{Key: "down", Description: "Last slide", Category: nav, Command: presentation.LastSlide{}},
		{Key: "end", Description: "Last slide", Category: nav, Command: presentation.LastSlide{}},
		{Key: ":", Description: "Go to slide number or title", Category: nav, Command: GoToPromptCommand{}},

		{Key: "p", Description: "Toggle presenter mode", Category: pres, Command: presentation.TogglePresenterMode{}},
		{Key: "v", Description: "Toggle presenter view", Category: pres, Command: TogglePresenterViewCommand{}},
		{Key: "n", Description: "Toggle notes", Category: pres, Command: presentation.ToggleNotes{}},
		{Key: "f", Description: "Toggle fullscreen", Category: pres, Command: presentation.ToggleFullscreen{}},
		{Key: "escape", Description: "Close overlay / exit fullscreen", Category: pres, Command: presentation.ExitOverlay{}},
		{Key: "b", Description: "Start timer from the first slide", Category: pres, Command: presentation.StartPresentation{}},
		{Key: "ctrl+r", Description: "Reset presentation", Category: pres, Command: presentation.ResetPresentation{}},

		{Key: "g", Description: "Overview grid", Category: tools, Command: presentation.ToggleOverviewMode{}},
		{Key: "t", Description: "Toggle theme", Category: tools, Command: presentation.ToggleTheme{}},
		{Key: "k", Description: "Keyboard shortcuts", Category: tools, Command: presentation.ToggleKeyboardShortcuts{}},
		{Key: "?", Description: "Keyboard shortcuts", Category: tools, Command: presentation.ToggleKeyboardShortcuts{}},
		{Key: "s", Description: "Accessibility & settings", Category: tools, Command: presentation.ToggleAccessibilityPanel{}},
		{Key: "e", Description: "Edit speaker note", Category: tools, Command: EditNoteCommand{}},
		{Key: "o", Description: "Outline in pager", Category: tools, Command: OutlinePagerCommand{}},
		{Key: "q", Description: "Quit", Category: tools, Command: QuitCommand{}},
		{Key: "ctrl+c", Description: "Quit", Category: tools, Command: QuitCommand{}},
	}
}

var keyLabels = map[string]string{
	"right":  "→",
	"left":   "←",
	"up":     "↑",
	"down":   "↓",
	"escape": "esc",
}

// shortcutGroups turns the registry into help bindings, merging keys that
// share a description
func shortcutGroups(r *input.Registry) []views.ShortcutGroup {
	titles := map[input.Category]string{
		input.CategoryNavigation:   "Navigation",
		input.CategoryPresentation: "Presentation",
		input.CategoryTools:        "Tools",
	}

	var groups []views.ShortcutGroup
	for _, cat := range input.Categories {
		var order []string
		keys := make(map[string][]string)
		for _, s := range r.ByCategory(cat) {
			if _, seen := keys[s.Description]; !seen {
				order = append(order, s.Description)
			}
			keys[s.Description] = append(keys[s.Description], s.Key)
		}

		g := views.ShortcutGroup{Title: titles[cat]}
		for _, desc := range order {
			labels := make([]string, 0, len(keys[desc]))
			for _, k := range keys[desc] {
				if l, ok := keyLabels[k]; ok {
					k = l
				}
				labels = append(labels, k)
			}
			g.Bindings = append(g.Bindings, key.NewBinding(
				key.WithKeys(keys[desc]...),
				key.WithHelp(strings.Join(labels, "/"), desc),
			))
		}
		groups = append(groups, g)
	}
	return groups
}
