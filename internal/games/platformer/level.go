package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// DefaultFinishDelay is the grace period, in seconds, between an outcome and
// the level reporting itself finished.
const DefaultFinishDelay = 1.0

// Level owns the static obstacle grid and the live actors.
type Level struct {
	grid   [][]Kind
	width  int
	height int

	// actors is an arena: RemoveActor only marks entries in removed, Compact
	// drops them once no scan is in progress.
	actors  []*Actor
	removed []bool

	status    Status
	player    *Actor
	collected int

	// FinishDelay is decremented by the driver once status is set.
	FinishDelay float64
}

// NewLevel creates a level from a grid of obstacle kinds (rows may differ in
// length) and a set of actors. Both slices are copied.
func NewLevel(grid [][]Kind, actors []*Actor) *Level {
	l := &Level{
		grid:        make([][]Kind, len(grid)),
		height:      len(grid),
		actors:      make([]*Actor, 0, len(actors)),
		FinishDelay: DefaultFinishDelay,
	}

	for y, row := range grid {
		l.grid[y] = append([]Kind(nil), row...)
		if len(row) > l.width {
			l.width = len(row)
		}
	}

	for _, a := range actors {
		if a == nil {
			continue
		}
		l.actors = append(l.actors, a)
		if l.player == nil && a.Kind() == KindPlayer {
			l.player = a
		}
	}
	l.removed = make([]bool, len(l.actors))

	return l
}

// Width returns the length of the longest grid row.
func (l *Level) Width() int { return l.width }

// Height returns the number of grid rows.
func (l *Level) Height() int { return l.height }

// Status returns the current outcome.
func (l *Level) Status() Status { return l.status }

// Player returns the first player actor found at construction, or nil.
func (l *Level) Player() *Actor { return l.player }

// CoinsCollected returns the number of coins removed by the player.
func (l *Level) CoinsCollected() int { return l.collected }

// Cell returns the obstacle at grid cell (x, y); KindNone for empty or
// out-of-range cells.
func (l *Level) Cell(x, y int) Kind {
	if y < 0 || y >= len(l.grid) {
		return KindNone
	}
	row := l.grid[y]
	if x < 0 || x >= len(row) {
		return KindNone
	}
	return row[x]
}

// Actors returns the live actors in collection order.
func (l *Level) Actors() []*Actor {
	out := make([]*Actor, 0, len(l.actors))
	for i, a := range l.actors {
		if !l.removed[i] {
			out = append(out, a)
		}
	}
	return out
}

// ObstacleAt returns the obstacle covering the box at pos with the given
// size. Leaving the grid sideways or through the top hits a wall, falling out
// of the bottom hits lava. ok is false when the box is clear.
func (l *Level) ObstacleAt(pos, size core.Vec) (kind Kind, ok bool) {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	if xStart < 0 || xEnd > l.width || yStart < 0 {
		return KindWall, true
	}
	if yEnd > l.height {
		return KindLava, true
	}

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if obstacle := l.Cell(x, y); obstacle != KindNone {
				return obstacle, true
			}
		}
	}
	return KindNone, false
}

// ActorAt returns some live actor other than a whose box intersects a, or nil.
// Panics with ErrNilActor if a is nil.
func (l *Level) ActorAt(a *Actor) *Actor {
	mustActor(a)
	for i, other := range l.actors {
		if l.removed[i] {
			continue
		}
		if other.Intersects(a) {
			return other
		}
	}
	return nil
}

// RemoveActor marks a as removed. It is a no-op if a is not in the level.
func (l *Level) RemoveActor(a *Actor) {
	for i, other := range l.actors {
		if other == a {
			l.removed[i] = true
		}
	}
}

// Compact drops removed actors from the arena.
func (l *Level) Compact() {
	n := 0
	for i, a := range l.actors {
		if l.removed[i] {
			continue
		}
		l.actors[n] = a
		n++
	}
	for i := n; i < len(l.actors); i++ {
		l.actors[i] = nil
	}
	l.actors = l.actors[:n]
	l.removed = make([]bool, n)
}

// NoMoreActors reports whether no live actor has the given kind.
func (l *Level) NoMoreActors(kind Kind) bool {
	for i, a := range l.actors {
		if !l.removed[i] && a.Kind() == kind {
			return false
		}
	}
	return true
}

// PlayerTouched applies the consequence of the player touching something of
// the given kind. Lava and fireballs lose the level. A coin is collected and
// the level is won when it was the last one. Ignored once status is set.
//
// A level that starts without coins can therefore never be won.
func (l *Level) PlayerTouched(kind Kind, a *Actor) {
	if l.status != StatusPlaying {
		return
	}

	switch kind {
	case KindLava, KindFireball:
		l.status = StatusLost
	case KindCoin:
		if a != nil && l.contains(a) {
			l.collected++
		}
		l.RemoveActor(a)
		if l.NoMoreActors(KindCoin) {
			l.status = StatusWon
		}
	}
}

// IsFinished reports whether an outcome is set and the finish delay ran out.
func (l *Level) IsFinished() bool {
	return l.status != StatusPlaying && l.FinishDelay < 0
}

func (l *Level) contains(a *Actor) bool {
	for i, other := range l.actors {
		if other == a && !l.removed[i] {
			return true
		}
	}
	return false
}
