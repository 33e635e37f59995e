package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"deckgrip/internal/deck"
)

// DefaultMaxDepth limits how far below a root the scan descends
const DefaultMaxDepth = 5

// DeckFile is a markdown file that looks like a slide deck
type DeckFile struct {
	Path   string
	Title  string
	Slides int
}

// Scanner finds slide decks below a set of directories
type Scanner struct {
	MaxDepth int
	log      *zap.Logger
}

// NewScanner creates a scanner
func NewScanner(log *zap.Logger) *Scanner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scanner{MaxDepth: DefaultMaxDepth, log: log.Named("discovery")}
}

var skipDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	"venv":         true,
}

// Scan walks every root and returns the decks found, sorted by path.
// Unreadable entries are logged and skipped.
func (s *Scanner) Scan(ctx context.Context, roots []string) ([]DeckFile, error) {
	var (
		mu    sync.Mutex
		found []DeckFile
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, root := range roots {
		g.Go(func() error {
			return s.scanRoot(ctx, root, func(f DeckFile) {
				mu.Lock()
				found = append(found, f)
				mu.Unlock()
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Path < found[j].Path })
	return found, nil
}

func (s *Scanner) scanRoot(ctx context.Context, root string, emit func(DeckFile)) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			if path == root {
				return err
			}
			s.log.Debug("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			rel, _ := filepath.Rel(root, path)
			if strings.Count(rel, string(filepath.Separator)) >= s.MaxDepth {
				return fs.SkipDir
			}
			name := d.Name()
			if skipDirs[name] || strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}

		if !isMarkdown(d.Name()) {
			return nil
		}
		if f, ok := s.inspect(path); ok {
			emit(f)
		}
		return nil
	})
	return err
}

// inspect parses a markdown file and keeps it when it has a deck header or
// more than one slide
func (s *Scanner) inspect(path string) (DeckFile, bool) {
	d, err := deck.Load(path)
	if err != nil {
		s.log.Debug("not a deck", zap.String("path", path), zap.Error(err))
		return DeckFile{}, false
	}
	if d.Title == "" && d.Len() < 2 {
		return DeckFile{}, false
	}
	title := d.Title
	if title == "" {
		if first, ok := d.Slide(0); ok {
			title = first.Title
		}
	}
	return DeckFile{Path: path, Title: title, Slides: d.Len()}, true
}

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}
