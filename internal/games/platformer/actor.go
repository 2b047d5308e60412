// Package platformer implements a grid-and-actors platformer: static walls and
// lava on a sparse grid, moving actors (player, coins, fireballs) and the
// win/lose rules that tie them together.
//
// The simulation core (Actor, Level, Parser) is pure and deterministic. Game
// drives it one tick at a time for the terminal platform.
package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Variant selects an actor's motion rule. The set is closed; Act switches on it.
type Variant int

const (
	VariantActor Variant = iota // Static base actor
	VariantPlayer
	VariantCoin
	VariantFireball
	VariantHorizontalFireball
	VariantVerticalFireball
	VariantFireRain
)

// String returns the name accepted by FactoryByName.
func (v Variant) String() string {
	switch v {
	case VariantPlayer:
		return "player"
	case VariantCoin:
		return "coin"
	case VariantFireball:
		return "fireball"
	case VariantHorizontalFireball:
		return "horizontal_fireball"
	case VariantVerticalFireball:
		return "vertical_fireball"
	case VariantFireRain:
		return "fire_rain"
	default:
		return "actor"
	}
}

// DefaultSize is the box of a base actor and of every fireball.
var DefaultSize = core.V(1, 1)

// Actor is a moving or static entity with an axis-aligned bounding box.
type Actor struct {
	pos     core.Vec
	size    core.Vec
	speed   core.Vec
	variant Variant

	// Variant state
	start  core.Vec // FireRain respawn point, Coin rest position
	spring float64  // Coin bobbing phase
}

// NewActor creates a base actor. Size components must be non-negative.
func NewActor(pos, size, speed core.Vec) (*Actor, error) {
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeSize, size)
	}
	return &Actor{pos: pos, size: size, speed: speed, variant: VariantActor}, nil
}

// BaseActor creates a static 1x1 actor at pos.
func BaseActor(pos core.Vec) *Actor {
	return &Actor{pos: pos, size: DefaultSize, variant: VariantActor}
}

// Pos returns the top-left corner.
func (a *Actor) Pos() core.Vec { return a.pos }

// Size returns the box dimensions.
func (a *Actor) Size() core.Vec { return a.size }

// Speed returns the velocity in units per second.
func (a *Actor) Speed() core.Vec { return a.speed }

// Variant returns the motion rule of the actor.
func (a *Actor) Variant() Variant { return a.variant }

// Kind returns the gameplay role consulted by Level.PlayerTouched.
func (a *Actor) Kind() Kind {
	switch a.variant {
	case VariantPlayer:
		return KindPlayer
	case VariantCoin:
		return KindCoin
	case VariantFireball, VariantHorizontalFireball, VariantVerticalFireball, VariantFireRain:
		return KindFireball
	default:
		return KindActor
	}
}

// Box edges.
func (a *Actor) Left() float64 { return a.pos.X }
func (a *Actor) Top() float64 { return a.pos.Y }
func (a *Actor) Right() float64 { return a.pos.X + a.size.X }
func (a *Actor) Bottom() float64 { return a.pos.Y + a.size.Y }

// Intersects reports whether the boxes of a and other overlap. Intervals are
// open on both axes, so actors that only share an edge do not intersect, and
// an actor never intersects itself. Panics with ErrNilActor if other is nil.
func (a *Actor) Intersects(other *Actor) bool {
	mustActor(other)
	if other == a {
		return false
	}
	return other.Left() < a.Right() &&
		other.Right() > a.Left() &&
		other.Top() < a.Bottom() &&
		other.Bottom() > a.Top()
}

// Act advances the actor by elapsed seconds. Static actors and the player do
// nothing here; player control belongs to the driver.
func (a *Actor) Act(elapsed float64, level *Level) {
	switch a.variant {
	case VariantFireball, VariantHorizontalFireball, VariantVerticalFireball, VariantFireRain:
		a.actFireball(elapsed, level)
	case VariantCoin:
		a.actCoin(elapsed)
	}
}

// NextPosition returns where the actor would be after elapsed seconds of
// straight-line motion. It does not move the actor.
func (a *Actor) NextPosition(elapsed float64) core.Vec {
	return a.pos.Plus(a.speed.Times(elapsed))
}

// String implements fmt.Stringer.
func (a *Actor) String() string {
	return fmt.Sprintf("%s@%v", a.variant, a.pos)
}
