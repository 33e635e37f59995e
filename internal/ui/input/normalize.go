package input

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

var codeTokens = map[string]string{
	"ArrowLeft":  "left",
	"ArrowRight": "right",
	"ArrowUp":    "up",
	"ArrowDown":  "down",
	"Space":      "space",
	"Escape":     "escape",
}

// Normalize turns a key event into its shortcut identifier, e.g.
// "ctrl+shift+right". Modifiers always appear in the order meta, ctrl, alt,
// shift.
func Normalize(ev KeyEvent) string {
	base, ok := codeTokens[ev.Code]
	if !ok {
		base = strings.ToLower(ev.Key)
	}

	var mods []string
	if ev.Meta {
		mods = append(mods, "meta")
	}
	if ev.Ctrl {
		mods = append(mods, "ctrl")
	}
	if ev.Alt {
		mods = append(mods, "alt")
	}
	if ev.Shift {
		mods = append(mods, "shift")
	}
	if len(mods) == 0 {
		return base
	}
	return strings.Join(mods, "+") + "+" + base
}

// terminal key names that correspond to a physical code
var teaCodes = map[string]string{
	"left":  "ArrowLeft",
	"right": "ArrowRight",
	"up":    "ArrowUp",
	"down":  "ArrowDown",
	" ":     "Space",
	"space": "Space",
	"esc":   "Escape",
}

// FromKeyMsg converts a bubbletea key message into a KeyEvent. Terminals
// report shifted letters as upper-case runes, so those set Shift.
func FromKeyMsg(msg tea.KeyMsg) KeyEvent {
	var ev KeyEvent
	s := msg.String()

	// plain runes are taken as typed so "+" is not read as a separator
	if msg.Type == tea.KeyRunes && !msg.Alt {
		ev.Key = string(msg.Runes)
		if r, _ := utf8.DecodeRuneInString(ev.Key); utf8.RuneCountInString(ev.Key) == 1 && unicode.IsUpper(r) {
			ev.Shift = true
		}
		return ev
	}

	for {
		switch {
		case strings.HasPrefix(s, "ctrl+") && len(s) > len("ctrl+"):
			ev.Ctrl = true
			s = s[len("ctrl+"):]
			continue
		case strings.HasPrefix(s, "alt+") && len(s) > len("alt+"):
			ev.Alt = true
			s = s[len("alt+"):]
			continue
		case strings.HasPrefix(s, "shift+") && len(s) > len("shift+"):
			ev.Shift = true
			s = s[len("shift+"):]
			continue
		}
		break
	}

	if code, ok := teaCodes[s]; ok {
		ev.Code = code
		return ev
	}
	ev.Key = s
	if r, size := utf8.DecodeRuneInString(s); size == len(s) && unicode.IsUpper(r) {
		ev.Shift = true
	}
	return ev
}
