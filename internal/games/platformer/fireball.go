package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Fixed fireball velocities.
var (
	HorizontalFireballSpeed = core.V(2, 0)
	VerticalFireballSpeed   = core.V(0, 2)
	FireRainSpeed           = core.V(0, 3)
)

// NewFireball creates a 1x1 fireball moving with speed that bounces off obstacles.
func NewFireball(pos, speed core.Vec) *Actor {
	return &Actor{pos: pos, size: DefaultSize, speed: speed, variant: VariantFireball}
}

// NewHorizontalFireball creates a fireball patrolling left and right.
func NewHorizontalFireball(pos core.Vec) *Actor {
	a := NewFireball(pos, HorizontalFireballSpeed)
	a.variant = VariantHorizontalFireball
	return a
}

// NewVerticalFireball creates a fireball patrolling up and down.
func NewVerticalFireball(pos core.Vec) *Actor {
	a := NewFireball(pos, VerticalFireballSpeed)
	a.variant = VariantVerticalFireball
	return a
}

// NewFireRain creates a falling fireball that respawns at pos when it hits
// something instead of bouncing.
func NewFireRain(pos core.Vec) *Actor {
	a := NewFireball(pos, FireRainSpeed)
	a.variant = VariantFireRain
	a.start = pos
	return a
}

// HandleObstacle reacts to a blocked move: fire rain teleports back to its
// start, every other fireball reverses its velocity.
func (a *Actor) HandleObstacle() {
	switch a.variant {
	case VariantFireRain:
		a.pos = a.start
	case VariantFireball, VariantHorizontalFireball, VariantVerticalFireball:
		a.speed = a.speed.Times(-1)
	}
}

func (a *Actor) actFireball(elapsed float64, level *Level) {
	next := a.NextPosition(elapsed)
	if _, blocked := level.ObstacleAt(next, a.size); blocked {
		a.HandleObstacle()
		return
	}
	a.pos = next
}
