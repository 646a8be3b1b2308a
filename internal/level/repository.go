package level

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dmasubuchi/kurumegrid/internal/level/formats"
)

// Repository holds the set of loadable levels and exposes lookup by ID.
// It is read-only after construction.
type Repository struct {
	levels map[int]Level
	order  []int
}

// NewRepository creates a repository from an already-parsed level set.
// Every level is validated; a duplicate ID is a load error.
func NewRepository(levels []Level) (*Repository, error) {
	r := &Repository{levels: make(map[int]Level, len(levels))}
	for _, lvl := range levels {
		if err := lvl.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.levels[lvl.ID]; exists {
			return nil, fmt.Errorf("level: duplicate level id %d", lvl.ID)
		}
		r.levels[lvl.ID] = lvl
		r.order = append(r.order, lvl.ID)
	}
	sort.Ints(r.order)
	return r, nil
}

// LoadDir creates a repository by recursively scanning a directory for
// level files in any supported format.
func LoadDir(root string) (*Repository, error) {
	levels, err := loadFS(os.DirFS(root))
	if err != nil {
		return nil, fmt.Errorf("level: loading %s: %w", root, err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("level: no level files found in %s", root)
	}
	return NewRepository(levels)
}

// Find returns the level with the given ID.
// Callers must leave their prior state untouched when this fails.
func (r *Repository) Find(id int) (Level, error) {
	lvl, ok := r.levels[id]
	if !ok {
		return Level{}, fmt.Errorf("level: no such level %d", id)
	}
	return lvl, nil
}

// List returns all levels sorted by ID.
func (r *Repository) List() []Level {
	out := make([]Level, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.levels[id])
	}
	return out
}

// Len returns the number of loadable levels.
func (r *Repository) Len() int {
	return len(r.levels)
}

// loadFS walks a filesystem and parses every supported level file,
// routing by extension.
func loadFS(fsys fs.FS) ([]Level, error) {
	var levels []Level

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		parsed, err := parseByExtension(data, ext)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		levels = append(levels, Level{
			ID:     parsed.ID,
			Name:   parsed.Name,
			Width:  parsed.Width,
			Height: parsed.Height,
			Tiles:  parsed.Tiles,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return levels, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".json":
		return formats.ParseJSON(data)
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
