package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !slices.Contains(FormatExtensions(), ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	level, err := ParseYAML(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	level.FilePath = path
	return level, nil
}

// Catalog returns the built-in levels followed by the levels found in dir.
// A user level with the same ID as a built-in one replaces it in place.
// An empty dir returns the built-in levels only.
func Catalog(dir string) ([]Level, error) {
	levels, err := Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return levels, nil
	}

	user, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(levels))
	for i, lvl := range levels {
		index[lvl.ID] = i
	}
	for _, lvl := range user {
		if i, ok := index[lvl.ID]; ok {
			levels[i] = lvl
			continue
		}
		index[lvl.ID] = len(levels)
		levels = append(levels, lvl)
	}
	return levels, nil
}
