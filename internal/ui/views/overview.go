package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverviewCell is one slide in the overview grid
type OverviewCell struct {
	Title   string
	Section string
}

const cellWidth = 26

// OverviewColumns returns how many cells fit side by side
func OverviewColumns(width int) int {
	return max(1, width/(cellWidth+2))
}

// RenderOverview draws all slides as a grid, highlighting the cursor and
// marking the current slide
func RenderOverview(s *Styles, cells []OverviewCell, cursor, current, width, height int) string {
	if len(cells) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.Dim.Render("no slides"))
	}
	cols := OverviewColumns(width)

	var rows []string
	for start := 0; start < len(cells); start += cols {
		end := min(start+cols, len(cells))
		var row []string
		for i := start; i < end; i++ {
			row = append(row, renderCell(s, cells[i], i, i == cursor, i == current))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	// keep the cursor row visible
	cursorRow := cursor / cols
	rowH := lipgloss.Height(rows[0])
	visible := max(1, (height-2)/rowH)
	first := 0
	if cursorRow >= visible {
		first = cursorRow - visible + 1
	}
	last := min(len(rows), first+visible)

	header := s.Title.Render("Overview") + s.Dim.Render("  arrows move · enter opens · esc closes")
	return header + "\n" + strings.Join(rows[first:last], "\n")
}

func renderCell(s *Styles, c OverviewCell, i int, selected, current bool) string {
	num := fmt.Sprintf("%2d", i+1)
	if current {
		num = s.Current.Render(num + "•")
	} else {
		num = s.Counter.Render(num + " ")
	}
	title := Truncate(c.Title, cellWidth-4)
	section := s.Dim.Render(Truncate(c.Section, cellWidth-2))

	body := num + " " + s.Cell.Render(title) + "\n" + section
	style := s.Frame.Width(cellWidth)
	if selected {
		style = style.BorderForeground(s.Key.GetForeground()).Inherit(s.Cursor)
	}
	return style.Render(body)
}
