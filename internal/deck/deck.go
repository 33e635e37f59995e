// Package deck loads Markdown slide decks.
//
// A deck is a Markdown file whose slides are separated by lines containing
// only "---". An optional YAML header at the top of the file, fenced by
// "---" lines, carries the title, author and planned talk duration:
//
//	---
//	title: Shipping Go
//	author: Dana
//	duration: 30m
//	---
//	# First slide
//
// A slide may start with a metadata comment and may carry speaker notes:
//
//	<!-- slide
//	id: intro
//	section: Basics
//	duration: 2m
//	-->
//	# Welcome
//	<!-- notes
//	Say hello.
//	-->
//
// Separators inside fenced code blocks are ignored.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"deckgrip/internal/domain"
)

// Deck is an ordered list of slides plus header metadata
type Deck struct {
	Path     string
	Title    string
	Author   string
	Duration time.Duration // zero when the header does not set one
	Slides   []domain.Slide
}

// Section is a run of consecutive slides sharing a section name
type Section struct {
	Title string
	Start int
}

type header struct {
	Title    string `yaml:"title"`
	Author   string `yaml:"author"`
	Duration string `yaml:"duration"`
}

type slideMeta struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Section  string `yaml:"section"`
	Duration string `yaml:"duration"`
}

const separator = "---"

var headerKeys = []string{"title", "author", "duration"}

// isHeader reports whether block is a YAML mapping carrying a header key
func isHeader(block string) bool {
	var raw map[string]any
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return false
	}
	for _, k := range headerKeys {
		if _, ok := raw[k]; ok {
			return true
		}
	}
	return false
}

// Load reads and parses the deck at path
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	d.Path = path
	return d, nil
}

// Parse parses deck source
func Parse(src []byte) (*Deck, error) {
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	d := &Deck{}
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == separator {
		end := -1
		for i := 1; i < len(lines); i++ {
			if strings.TrimSpace(lines[i]) == separator {
				end = i
				break
			}
		}
		block := lines[1:]
		if end >= 0 {
			block = lines[1:end]
		}
		// a leading separator without header keys is just a separator
		if raw := strings.Join(block, "\n"); isHeader(raw) {
			if end < 0 {
				return nil, errors.New("unterminated deck header")
			}
			var h header
			if err := yaml.Unmarshal([]byte(raw), &h); err != nil {
				return nil, fmt.Errorf("invalid deck header: %w", err)
			}
			dur, err := parseDuration(h.Duration)
			if err != nil {
				return nil, fmt.Errorf("invalid deck duration: %w", err)
			}
			d.Title, d.Author, d.Duration = h.Title, h.Author, dur
			lines = lines[end+1:]
		}
	}

	for _, chunk := range splitSlides(lines) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		s, err := parseSlide(chunk, len(d.Slides)+1)
		if err != nil {
			return nil, fmt.Errorf("slide %d: %w", len(d.Slides)+1, err)
		}
		d.Slides = append(d.Slides, s)
	}
	return d, nil
}

func splitSlides(lines []string) []string {
	var chunks []string
	var cur []string
	inFence := false
	fence := ""

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case !inFence:
				inFence, fence = true, marker
			case strings.HasPrefix(trimmed, fence):
				inFence = false
			}
		}
		if !inFence && trimmed == separator {
			chunks = append(chunks, strings.Join(cur, "\n"))
			cur = nil
			continue
		}
		cur = append(cur, line)
	}
	return append(chunks, strings.Join(cur, "\n"))
}

func fenceMarker(line string) string {
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(line, m) {
			return m
		}
	}
	return ""
}

func parseSlide(chunk string, n int) (domain.Slide, error) {
	s := domain.Slide{ID: fmt.Sprintf("slide-%02d", n)}
	body := strings.TrimLeft(chunk, "\n")

	if rest, ok := strings.CutPrefix(body, "<!-- slide"); ok {
		raw, after, found := strings.Cut(rest, "-->")
		if !found {
			return s, errors.New("unterminated slide metadata")
		}
		var meta slideMeta
		if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
			return s, fmt.Errorf("invalid slide metadata: %w", err)
		}
		dur, err := parseDuration(meta.Duration)
		if err != nil {
			return s, fmt.Errorf("invalid slide duration: %w", err)
		}
		if meta.ID != "" {
			s.ID = meta.ID
		}
		s.Title, s.Section, s.Duration = meta.Title, meta.Section, dur
		body = after
	}

	var notes []string
	for {
		start := strings.Index(body, "<!-- notes")
		if start < 0 {
			break
		}
		end := strings.Index(body[start:], "-->")
		if end < 0 {
			return s, errors.New("unterminated notes block")
		}
		notes = append(notes, strings.TrimSpace(body[start+len("<!-- notes"):start+end]))
		body = body[:start] + body[start+end+len("-->"):]
	}

	s.Notes = strings.Join(notes, "\n\n")
	s.Body = strings.TrimSpace(body)
	if s.Title == "" {
		s.Title = headingTitle(s.Body)
	}
	if s.Title == "" {
		s.Title = fmt.Sprintf("Slide %d", n)
	}
	return s, nil
}

func headingTitle(body string) string {
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			return strings.TrimSpace(strings.TrimLeft(line, "#"))
		}
	}
	return ""
}

func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}
	return d, nil
}

// Len returns the number of slides
func (d *Deck) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Slides)
}

// Slide returns slide i
func (d *Deck) Slide(i int) (domain.Slide, bool) {
	if d == nil || i < 0 || i >= len(d.Slides) {
		return domain.Slide{}, false
	}
	return d.Slides[i], true
}

// EstimatedDuration returns the header duration, the sum of per-slide
// durations when every slide has one, or fallback.
func (d *Deck) EstimatedDuration(fallback time.Duration) time.Duration {
	if d == nil {
		return fallback
	}
	if d.Duration > 0 {
		return d.Duration
	}
	var sum time.Duration
	for _, s := range d.Slides {
		if s.Duration <= 0 {
			return fallback
		}
		sum += s.Duration
	}
	if sum > 0 {
		return sum
	}
	return fallback
}

// Sections returns where each named section starts. Slides without a
// section continue the previous one.
func (d *Deck) Sections() []Section {
	var out []Section
	current := ""
	for i, s := range d.Slides {
		if s.Section != "" && s.Section != current {
			current = s.Section
			out = append(out, Section{Title: current, Start: i})
		}
	}
	return out
}

// Validate reports problems that do not stop a deck from loading
func (d *Deck) Validate() error {
	var errs []error
	if len(d.Slides) == 0 {
		errs = append(errs, errors.New("deck has no slides"))
	}
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if prev, ok := seen[s.ID]; ok {
			errs = append(errs, fmt.Errorf("slide %d reuses id %q from slide %d", i+1, s.ID, prev+1))
			continue
		}
		seen[s.ID] = i
	}
	return errors.Join(errs...)
}
