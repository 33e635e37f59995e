package views

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes color and style sequences
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Overlay centers a styled popup in a width×height area
func Overlay(s *Styles, title, body string, width, height int) string {
	content := body
	if title != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, s.PopupTitle.Render(title), body)
	}
	popup := s.Popup.Render(content)

	// keep a small margin
	if lipgloss.Width(popup) > width-2 {
		popup = s.Popup.Width(max(10, width-6)).Render(content)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, popup)
}
