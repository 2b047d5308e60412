package core

import "fmt"

// Vec is an immutable 2D point or displacement in level units.
// Every operation returns a new value; the receiver is never modified.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and other.
func (v Vec) Plus(other Vec) Vec {
	return Vec{X: v.X + other.X, Y: v.Y + other.Y}
}

// Times returns v scaled by factor.
func (v Vec) Times(factor float64) Vec {
	return Vec{X: v.X * factor, Y: v.Y * factor}
}

// String implements fmt.Stringer.
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
