package platformer

import "errors"

var (
	// ErrNilActor is raised when an operation that requires an actor gets nil.
	ErrNilActor = errors.New("platformer: actor is nil")
	// ErrNegativeSize is returned when an actor box has a negative dimension.
	ErrNegativeSize = errors.New("platformer: actor size must be non-negative")
	// ErrUnknownActor is returned when an actor name has no factory.
	ErrUnknownActor = errors.New("platformer: unknown actor")
	// ErrEmptyPlan is returned when a level plan has no rows.
	ErrEmptyPlan = errors.New("platformer: empty level plan")
)

// mustActor panics with ErrNilActor if a is nil. A nil actor is a caller
// bug and must never be treated as "no actor".
func mustActor(a *Actor) {
	if a == nil {
		panic(ErrNilActor)
	}
}
