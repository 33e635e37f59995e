package deck

import (
	"fmt"
	"strings"
)

// Outline renders the deck as plain text, one entry per slide with its
// speaker notes. stored returns notes edited during a session; they take
// precedence over the notes written in the deck. stored may be nil.
func (d *Deck) Outline(stored func(slideID string) string) string {
	var b strings.Builder
	if d.Title != "" {
		b.WriteString(d.Title)
		if d.Author != "" {
			b.WriteString(" by " + d.Author)
		}
		b.WriteString("\n\n")
	}

	section := ""
	for i, s := range d.Slides {
		if s.Section != "" && s.Section != section {
			section = s.Section
			fmt.Fprintf(&b, "[%s]\n", section)
		}
		fmt.Fprintf(&b, "%3d. %s (%s)", i+1, s.Title, s.ID)
		if s.Duration > 0 {
			fmt.Fprintf(&b, " %s", s.Duration)
		}
		b.WriteString("\n")

		notes := s.Notes
		if stored != nil {
			if n := stored(s.ID); n != "" {
				notes = n
			}
		}
		for _, line := range strings.Split(strings.TrimSpace(notes), "\n") {
			if line != "" {
				b.WriteString("       " + line + "\n")
			}
		}
	}
	return b.String()
}
