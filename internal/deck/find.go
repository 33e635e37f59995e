package deck

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Find resolves a go-to query to a slide index. A number selects that slide
// (1-based); anything else matches titles: a substring match wins, then the
// closest title by edit distance if it is close enough.
func Find(d *Deck, query string) (int, bool) {
	query = strings.TrimSpace(query)
	if query == "" || d.Len() == 0 {
		return 0, false
	}

	if n, err := strconv.Atoi(query); err == nil {
		if n < 1 || n > d.Len() {
			return 0, false
		}
		return n - 1, true
	}

	q := strings.ToLower(query)
	for i, s := range d.Slides {
		if strings.Contains(strings.ToLower(s.Title), q) || strings.EqualFold(s.ID, query) {
			return i, true
		}
	}

	best, bestDist := -1, 0
	for i, s := range d.Slides {
		dist := levenshtein.ComputeDistance(q, strings.ToLower(s.Title))
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	if bestDist > maxDistance(len(q)) {
		return 0, false
	}
	return best, true
}

func maxDistance(n int) int {
	if n < 6 {
		return 2
	}
	return n / 3
}
