package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Builtin returns the levels shipped with the binary, in file name order.
func Builtin() ([]Level, error) {
	paths, err := fs.Glob(builtinFS, "builtin/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("listing builtin levels: %w", err)
	}
	sort.Strings(paths)

	levels := make([]Level, 0, len(paths))
	for _, path := range paths {
		data, err := builtinFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading builtin level %s: %w", path, err)
		}
		lvl, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parsing builtin level %s: %w", path, err)
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}
