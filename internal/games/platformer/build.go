package platformer

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// BuildLevel parses a catalog level with the default dictionary extended by
// the level's legend. finishDelay is used when the level does not set one.
func BuildLevel(def levels.Level, finishDelay float64, rng *rand.Rand) (*Level, error) {
	if len(def.Plan) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyPlan, def.ID)
	}

	dict := DefaultDictionary(rng)
	// Sorted so the reported error is stable.
	for _, symbol := range slices.Sorted(maps.Keys(def.Legend)) {
		factory, err := FactoryByName(def.Legend[symbol], rng)
		if err != nil {
			return nil, fmt.Errorf("platformer: level %s legend %q: %w", def.ID, symbol, err)
		}
		dict[symbol] = factory
	}

	level := NewParser(dict).Parse(def.Plan)
	level.FinishDelay = finishDelay
	if def.FinishDelay > 0 {
		level.FinishDelay = def.FinishDelay
	}
	return level, nil
}
