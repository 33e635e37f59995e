package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortcutGroup is one category of the shortcut panel
type ShortcutGroup struct {
	Title    string
	Bindings []key.Binding
}

// RenderShortcuts draws the keyboard shortcut panel, one column per
// category
func RenderShortcuts(s *Styles, h help.Model, groups []ShortcutGroup, width, height int) string {
	h.Styles.FullKey = s.Key
	h.Styles.FullDesc = s.Desc
	h.Styles.FullSeparator = s.Dim

	var cols []string
	for _, g := range groups {
		if len(g.Bindings) == 0 {
			continue
		}
		col := s.Section.Render(g.Title) + "\n" + h.FullHelpView([][]key.Binding{g.Bindings})
		cols = append(cols, lipgloss.NewStyle().MarginRight(4).Render(col))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, cols...)
	return Overlay(s, "Keyboard shortcuts", body+"\n\n"+s.Dim.Render("esc or k to close"), width, height)
}

// SettingRow is one editable line of the accessibility panel
type SettingRow struct {
	Label string
	Value string
}

// RenderSettings draws the accessibility and settings panel
func RenderSettings(s *Styles, rows []SettingRow, cursor, width, height int) string {
	labelW := 0
	for _, r := range rows {
		labelW = max(labelW, lipgloss.Width(r.Label))
	}

	var b strings.Builder
	for i, r := range rows {
		line := fmt.Sprintf("%-*s  %s", labelW, r.Label, s.Key.Render(r.Value))
		if i == cursor {
			line = s.Cursor.Render("› " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.Dim.Render("↑/↓ select · enter toggles · ←/→ adjust · esc closes"))
	return Overlay(s, "Accessibility & settings", b.String(), width, height)
}

// RenderPrompt draws a small input popup, e.g. the go-to prompt
func RenderPrompt(s *Styles, title, field, hint string, width, height int) string {
	body := field
	if hint != "" {
		body += "\n\n" + s.Dim.Render(hint)
	}
	return Overlay(s, title, body, width, height)
}
