package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Physics holds the player control parameters.
type Physics struct {
	Gravity     float64 // Downward acceleration, units/s^2
	JumpSpeed   float64 // Initial upward speed of a jump
	PlayerSpeed float64 // Horizontal running speed
}

// Control is the player's held input for one sub-step.
type Control struct {
	Left, Right, Jump bool
}

// ControlFromInput extracts the player control from an input frame.
func ControlFromInput(in core.InputFrame) Control {
	return Control{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
	}
}

// Steer moves the player for one sub-step against the level's obstacles.
// Obstacles met on the way are reported through PlayerTouched, so running
// into lava loses the level. After a loss the player sinks and shrinks.
func (a *Actor) Steer(step float64, ctl Control, phys Physics, level *Level) {
	if level.Status() == StatusLost {
		a.pos = a.pos.Plus(core.V(0, step))
		a.size = core.V(a.size.X, math.Max(0, a.size.Y-step))
		return
	}
	a.steerX(step, ctl, phys, level)
	a.steerY(step, ctl, phys, level)
}

func (a *Actor) steerX(step float64, ctl Control, phys Physics, level *Level) {
	speedX := 0.0
	if ctl.Left {
		speedX -= phys.PlayerSpeed
	}
	if ctl.Right {
		speedX += phys.PlayerSpeed
	}
	a.speed = core.V(speedX, a.speed.Y)

	next := a.pos.Plus(core.V(speedX*step, 0))
	if obstacle, hit := level.ObstacleAt(next, a.size); hit {
		level.PlayerTouched(obstacle, nil)
		return
	}
	a.pos = next
}

func (a *Actor) steerY(step float64, ctl Control, phys Physics, level *Level) {
	speedY := a.speed.Y + step*phys.Gravity

	next := a.pos.Plus(core.V(0, speedY*step))
	if obstacle, hit := level.ObstacleAt(next, a.size); hit {
		level.PlayerTouched(obstacle, nil)
		// Only a landing (moving down) can start a jump.
		if ctl.Jump && speedY > 0 {
			speedY = -phys.JumpSpeed
		} else {
			speedY = 0
		}
		a.speed = core.V(a.speed.X, speedY)
		return
	}
	a.speed = core.V(a.speed.X, speedY)
	a.pos = next
}
