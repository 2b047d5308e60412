// Package levels provides the level catalog for the platformer: built-in
// plans embedded in the binary and user level files loaded from disk.
// This package does not depend on the simulation; it only carries plans.
package levels

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrLevelNotFound is returned when no level has the requested ID.
	ErrLevelNotFound = errors.New("levels: level not found")
	// ErrInvalidLevel is returned for structurally broken level definitions.
	ErrInvalidLevel = errors.New("levels: invalid level")
)

// Level is a named textual plan.
type Level struct {
	ID          string
	Name        string
	Plan        []string
	FinishDelay float64           // 0 means use the configured default
	Legend      map[rune]string   // Extra symbol -> actor name mappings
	Metadata    map[string]string // Free-form author data
	FilePath    string            // Empty for built-in levels
}

// Width returns the length of the longest row in runes.
func (l Level) Width() int {
	w := 0
	for _, row := range l.Plan {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows.
func (l Level) Height() int {
	return len(l.Plan)
}

// Validate checks that the level can be parsed into a playable grid.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if len(l.Plan) == 0 {
		return fmt.Errorf("%w: %s has an empty plan", ErrInvalidLevel, l.ID)
	}
	if l.FinishDelay < 0 {
		return fmt.Errorf("%w: %s has a negative finish_delay", ErrInvalidLevel, l.ID)
	}
	return nil
}

// Find returns the level with the given id.
func Find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrLevelNotFound, id)
}
