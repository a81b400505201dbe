package pattern

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Library maps pattern identifiers to patterns, preserving registration order.
// It is populated once at startup and read afterwards.
type Library struct {
	order []ID
	pats  map[ID]Pattern
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{pats: map[ID]Pattern{}}
}

// Register adds or replaces the pattern stored under id.
func (l *Library) Register(id ID, p Pattern) {
	if id == "" {
		return
	}
	if _, ok := l.pats[id]; !ok {
		l.order = append(l.order, id)
	}
	l.pats[id] = p
}

// Get returns the pattern stored under id.
func (l *Library) Get(id ID) (Pattern, bool) {
	p, ok := l.pats[id]
	return p, ok
}

// IDs returns the identifiers in registration order.
func (l *Library) IDs() []ID {
	return append([]ID(nil), l.order...)
}

// Len returns the number of registered patterns.
func (l *Library) Len() int { return len(l.order) }

// Next returns the identifier registered after id, wrapping around. Unknown
// ids yield the first entry.
func (l *Library) Next(id ID, delta int) ID {
	if len(l.order) == 0 {
		return ""
	}
	idx := -1
	for i, v := range l.order {
		if v == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return l.order[0]
	}
	n := len(l.order)
	return l.order[((idx+delta)%n+n)%n]
}

var imageExts = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".bmp": true}

// LoadDir decodes every image in dir concurrently and registers each under
// its file name without extension. Files that fail to decode are logged and
// skipped; only a failure to list the directory is returned.
func (l *Library) LoadDir(ctx context.Context, dir string, maxSide int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, "[LoadDir] failed to read directory: %s", dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)

	results := make([]Pattern, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := LoadFile(filepath.Join(dir, name), maxSide)
			if err != nil {
				log.Printf("pattern: skipping %s: %v", name, err)
				return nil
			}
			results[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrapf(err, "[LoadDir] loading %s", dir)
	}

	for i, name := range files {
		if len(results[i]) == 0 {
			continue
		}
		l.Register(ID(strings.TrimSuffix(name, filepath.Ext(name))), results[i])
	}
	return nil
}
