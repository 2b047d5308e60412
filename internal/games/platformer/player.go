package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

var (
	playerOffset = core.V(0, -0.5)
	playerSize   = core.V(0.8, 1.5)
)

// NewPlayer creates the player standing on the cell at pos. The box is taller
// than a cell, so it starts half a cell above the spawn coordinate.
func NewPlayer(pos core.Vec) *Actor {
	return &Actor{
		pos:     pos.Plus(playerOffset),
		size:    playerSize,
		variant: VariantPlayer,
	}
}
