package platformer

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

const (
	CoinSpringSpeed    = 8.0  // Phase advance per second
	CoinSpringDistance = 0.07 // Vertical bobbing amplitude
)

var (
	coinOffset = core.V(0.2, 0.1)
	coinSize   = core.V(0.6, 0.6)
)

// NewCoin creates a coin inset into the cell at pos. The bobbing phase starts
// at a random angle drawn from rng; nil uses the global source.
func NewCoin(pos core.Vec, rng *rand.Rand) *Actor {
	var r float64
	if rng != nil {
		r = rng.Float64()
	} else {
		r = rand.Float64()
	}

	start := pos.Plus(coinOffset)
	return &Actor{
		pos:     start,
		size:    coinSize,
		variant: VariantCoin,
		start:   start,
		spring:  r * 2 * math.Pi,
	}
}

// Spring returns the current bobbing phase of a coin.
func (a *Actor) Spring() float64 { return a.spring }

// Coins never consult the level: they only bob around their rest position.
func (a *Actor) actCoin(elapsed float64) {
	a.spring += CoinSpringSpeed * elapsed
	wobble := core.V(0, math.Sin(a.spring)*CoinSpringDistance)
	a.pos = a.start.Plus(wobble)
}
