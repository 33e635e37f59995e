package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deckgrip/internal/domain"
)

const sample = "---\n" +
	"title: Shipping Go\n" +
	"author: Dana\n" +
	"duration: 20m\n" +
	"---\n" +
	"<!-- slide\n" +
	"id: intro\n" +
	"section: Basics\n" +
	"duration: 2m\n" +
	"-->\n" +
	"# Welcome\n" +
	"\n" +
	"Hello there.\n" +
	"<!-- notes\n" +
	"Introduce yourself.\n" +
	"-->\n" +
	"---\n" +
	"## Code\n" +
	"\n" +
	"```yaml\n" +
	"a: 1\n" +
	"---\n" +
	"b: 2\n" +
	"```\n" +
	"---\n" +
	"<!-- slide\n" +
	"section: Wrap-up\n" +
	"-->\n" +
	"Just text, no heading.\n"

func TestParse(t *testing.T) {
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "Shipping Go", d.Title)
	assert.Equal(t, "Dana", d.Author)
	assert.Equal(t, 20*time.Minute, d.Duration)
	require.Equal(t, 3, d.Len())

	intro := d.Slides[0]
	assert.Equal(t, "intro", intro.ID)
	assert.Equal(t, "Welcome", intro.Title)
	assert.Equal(t, "Basics", intro.Section)
	assert.Equal(t, 2*time.Minute, intro.Duration)
	assert.Equal(t, "Introduce yourself.", intro.Notes)
	assert.Equal(t, "# Welcome\n\nHello there.", intro.Body)

	code := d.Slides[1]
	assert.Equal(t, "slide-02", code.ID)
	assert.Equal(t, "Code", code.Title)
	assert.Contains(t, code.Body, "a: 1\n---\nb: 2", "separator inside a fence stays in the slide")

	last := d.Slides[2]
	assert.Equal(t, "slide-03", last.ID)
	assert.Equal(t, "Slide 3", last.Title)
	assert.Equal(t, "Wrap-up", last.Section)

	assert.Equal(t, []Section{{Title: "Basics", Start: 0}, {Title: "Wrap-up", Start: 2}}, d.Sections())
	assert.NoError(t, d.Validate())
}

func TestParseWithoutHeader(t *testing.T) {
	d, err := Parse([]byte("# One\n---\n# Two\n---\n\n"))
	require.NoError(t, err)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "", d.Title)
	assert.Equal(t, "slide-01", d.Slides[0].ID)
	assert.Equal(t, "Two", d.Slides[1].Title)
}

func TestParseLeadingSeparatorKeepsFirstSlide(t *testing.T) {
	d, err := Parse([]byte("---\n# Intro\n---\n# Second\n---\n# Third\n"))
	require.NoError(t, err)
	require.Equal(t, 3, d.Len())
	assert.Equal(t, "", d.Title)
	assert.Equal(t, "Intro", d.Slides[0].Title)
	assert.Equal(t, "Third", d.Slides[2].Title)

	d, err = Parse([]byte("---\nlayout: wide\n---\n# Only\n"))
	require.NoError(t, err)
	assert.Equal(t, "", d.Title, "front matter without header keys is not a deck header")
	assert.Equal(t, "Only", d.Slides[d.Len()-1].Title)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"unterminated header":   "---\ntitle: x\n",
		"bad header duration":   "---\nduration: soon\n---\n# a\n",
		"unterminated metadata": "<!-- slide\nid: x\n",
		"bad slide yaml":        "<!-- slide\nid: [\n-->\n# a\n",
		"unterminated notes":    "# a\n<!-- notes\nhello\n",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestValidateDuplicateIDs(t *testing.T) {
	d, err := Parse([]byte("<!-- slide\nid: a\n-->\n# A\n---\n<!-- slide\nid: a\n-->\n# B\n"))
	require.NoError(t, err)

	err = d.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `reuses id "a"`)

	assert.Error(t, (&Deck{}).Validate())
}

func TestEstimatedDuration(t *testing.T) {
	fallback := 45 * time.Minute

	assert.Equal(t, fallback, (*Deck)(nil).EstimatedDuration(fallback))
	assert.Equal(t, 10*time.Minute, (&Deck{Duration: 10 * time.Minute}).EstimatedDuration(fallback))

	timed := &Deck{Slides: []domain.Slide{{Duration: time.Minute}, {Duration: 2 * time.Minute}}}
	assert.Equal(t, 3*time.Minute, timed.EstimatedDuration(fallback))

	partial := &Deck{Slides: []domain.Slide{{Duration: time.Minute}, {}}}
	assert.Equal(t, fallback, partial.EstimatedDuration(fallback))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, 3, d.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	d := &Deck{Slides: []domain.Slide{
		{ID: "slide-01", Title: "Welcome"},
		{ID: "arch", Title: "Architecture Overview"},
		{ID: "slide-03", Title: "Benchmarks"},
	}}

	tests := []struct {
		query string
		want  int
		ok    bool
	}{
		{"2", 1, true},
		{"0", 0, false},
		{"4", 0, false},
		{"bench", 2, true},
		{"ARCH", 1, true},
		{"welcom", 0, true},
		{"benchmrks", 2, true},
		{"zzzzzzzz", 0, false},
		{"  ", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Find(d, tt.query)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRendererCachesAndThemes(t *testing.T) {
	r := NewRenderer()

	dark, err := r.Render("# Hello\n\nworld", domain.ThemeDark, 60)
	require.NoError(t, err)
	assert.Contains(t, dark, "world")

	again, err := r.Render("# Hello\n\nworld", domain.ThemeDark, 60)
	require.NoError(t, err)
	assert.Equal(t, dark, again)

	_, err = r.Render("# Hello\n\nworld", domain.ThemeLight, 60)
	require.NoError(t, err)
	assert.Len(t, r.renderers, 2)

	r.Reset()
	assert.Empty(t, r.output)
}

func TestOutline(t *testing.T) {
	d, err := Parse([]byte(sample))
	require.NoError(t, err)

	out := d.Outline(func(id string) string {
		if id == "slide-02" {
			return "edited in session"
		}
		return ""
	})
	assert.Contains(t, out, "Shipping Go by Dana")
	assert.Contains(t, out, "[Basics]")
	assert.Contains(t, out, "  1. Welcome (intro) 2m0s")
	assert.Contains(t, out, "       Introduce yourself.")
	assert.Contains(t, out, "       edited in session")
	assert.Contains(t, out, "[Wrap-up]")

	assert.NotContains(t, (&Deck{}).Outline(nil), "[")
}
