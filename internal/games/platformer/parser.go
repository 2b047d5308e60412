package platformer

import (
	"fmt"
	"maps"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Factory creates an actor whose spawn cell is pos. A nil result is skipped.
type Factory func(pos core.Vec) *Actor

// DefaultDictionary returns the standard symbol legend. Coins draw their
// bobbing phase from rng.
//
//	'@' = player
//	'o' = coin
//	'h', '=' = horizontal fireball
//	'v', '|' = vertical fireball
//	'f' = fire rain
func DefaultDictionary(rng *rand.Rand) map[rune]Factory {
	coin := func(pos core.Vec) *Actor { return NewCoin(pos, rng) }
	return map[rune]Factory{
		'@': NewPlayer,
		'o': coin,
		'h': NewHorizontalFireball,
		'=': NewHorizontalFireball,
		'v': NewVerticalFireball,
		'|': NewVerticalFireball,
		'f': NewFireRain,
	}
}

// FactoryByName resolves an actor name (see Variant.String) to a factory.
func FactoryByName(name string, rng *rand.Rand) (Factory, error) {
	switch name {
	case "player":
		return NewPlayer, nil
	case "coin":
		return func(pos core.Vec) *Actor { return NewCoin(pos, rng) }, nil
	case "fireball", "horizontal_fireball":
		return NewHorizontalFireball, nil
	case "vertical_fireball":
		return NewVerticalFireball, nil
	case "fire_rain":
		return NewFireRain, nil
	case "actor":
		return BaseActor, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownActor, name)
	}
}

// Parser turns a textual plan into a Level. Each rune of a row is either a
// grid symbol ('x' wall, '!' lava) or an actor symbol from the dictionary.
type Parser struct {
	dict map[rune]Factory
}

// NewParser creates a parser with a private copy of dict.
func NewParser(dict map[rune]Factory) *Parser {
	return &Parser{dict: maps.Clone(dict)}
}

// ActorFromSymbol looks up the factory for symbol.
func (p *Parser) ActorFromSymbol(symbol rune) (Factory, bool) {
	f, ok := p.dict[symbol]
	return f, ok
}

// ObstacleFromSymbol maps 'x' to a wall and '!' to lava.
func (p *Parser) ObstacleFromSymbol(symbol rune) (Kind, bool) {
	switch symbol {
	case 'x':
		return KindWall, true
	case '!':
		return KindLava, true
	}
	return KindNone, false
}

// CreateGrid maps every rune of the plan through ObstacleFromSymbol.
func (p *Parser) CreateGrid(plan []string) [][]Kind {
	grid := make([][]Kind, len(plan))
	for y, line := range plan {
		row := []rune(line)
		grid[y] = make([]Kind, len(row))
		for x, symbol := range row {
			if kind, ok := p.ObstacleFromSymbol(symbol); ok {
				grid[y][x] = kind
			}
		}
	}
	return grid
}

// CreateActors instantiates an actor for every rune that has a factory,
// positioned at its (column, row). Nil factories and nil actors are skipped.
func (p *Parser) CreateActors(plan []string) []*Actor {
	var actors []*Actor
	for y, line := range plan {
		for x, symbol := range []rune(line) {
			factory, ok := p.ActorFromSymbol(symbol)
			if !ok || factory == nil {
				continue
			}
			if a := factory(core.V(float64(x), float64(y))); a != nil {
				actors = append(actors, a)
			}
		}
	}
	return actors
}

// Parse builds a new Level from plan.
func (p *Parser) Parse(plan []string) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
