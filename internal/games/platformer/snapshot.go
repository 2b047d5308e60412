package platformer

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick        uint64
	LevelID     string
	Status      string
	FinishDelay float64
	Collected   int

	// Actor state, 7 values per actor: Variant, X, Y, W, H, VX, VY
	ActorCount int
	ActorData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.tick,
		LevelID: g.def.ID,
	}
	if g.level == nil {
		return snap
	}

	snap.Status = g.level.Status().String()
	snap.FinishDelay = g.level.FinishDelay
	snap.Collected = g.level.CoinsCollected()

	actors := g.level.Actors()
	snap.ActorCount = len(actors)
	snap.ActorData = make([]float64, 0, len(actors)*7)
	for _, a := range actors {
		snap.ActorData = append(snap.ActorData,
			float64(a.variant),
			a.pos.X, a.pos.Y,
			a.size.X, a.size.Y,
			a.speed.X, a.speed.Y,
		)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.LevelID {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, r := range snap.Status {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.FinishDelay)
	h = h*31 + uint64(snap.Collected)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ActorCount) //#nosec G115 -- hash computation

	for _, v := range snap.ActorData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
