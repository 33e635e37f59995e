package views

import (
	"github.com/charmbracelet/lipgloss"

	"deckgrip/internal/domain"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Theme domain.Theme

	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Frame         lipgloss.Style
	Bare          lipgloss.Style
	Popup         lipgloss.Style
	PopupTitle    lipgloss.Style
	Section       lipgloss.Style
	Key           lipgloss.Style
	Desc          lipgloss.Style
	Cursor        lipgloss.Style
	Current       lipgloss.Style
	Cell          lipgloss.Style
	Notes         lipgloss.Style
	Clock         lipgloss.Style
	Overtime      lipgloss.Style
	Tick          lipgloss.Style
	Counter       lipgloss.Style

	// progress gradient endpoints
	GradientA string
	GradientB string
	SolidFill string
}

type palette struct {
	accent, muted, text, err, ok, warn, highlight, selection, border, fill string
}

var palettes = map[domain.Theme]palette{
	domain.ThemeDark: {
		accent: "99", muted: "241", text: "252", err: "203", ok: "78",
		warn: "214", highlight: "226", selection: "238", border: "62",
		fill: "#7D79F2",
	},
	domain.ThemeLight: {
		accent: "55", muted: "245", text: "236", err: "160", ok: "28",
		warn: "130", highlight: "94", selection: "254", border: "61",
		fill: "#5A56E0",
	},
}

// NewStyles creates the styles for a theme
func NewStyles(theme domain.Theme) *Styles {
	p, ok := palettes[theme]
	if !ok {
		theme = domain.ThemeDark
		p = palettes[theme]
	}
	return &Styles{
		Theme: theme,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)),
		Dim:           lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.err)),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(p.ok)),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		Bare: lipgloss.NewStyle(),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.accent)).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.warn)),
		Key:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.highlight)),
		Desc:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Cursor:   lipgloss.NewStyle().Background(lipgloss.Color(p.selection)).Bold(true),
		Current:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.ok)).Bold(true),
		Cell:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Notes:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Italic(true),
		Clock:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		Overtime: lipgloss.NewStyle().Foreground(lipgloss.Color(p.err)).Bold(true),
		Tick:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),
		Counter:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),

		GradientA: "#5A56E0",
		GradientB: "#EE6FF8",
		SolidFill: p.fill,
	}
}
