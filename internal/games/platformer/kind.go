package platformer

// Kind tags both static terrain (wall, lava) and actor roles (player, coin,
// fireball). PlayerTouched receives either, so they share one enum.
type Kind int

const (
	KindNone Kind = iota // Empty terrain / no result
	KindActor
	KindPlayer
	KindCoin
	KindFireball
	KindWall
	KindLava
)

// String returns the lower-case name used in level files and logs.
func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindFireball:
		return "fireball"
	case KindWall:
		return "wall"
	case KindLava:
		return "lava"
	default:
		return ""
	}
}

// IsObstacle reports whether k is a static terrain kind.
func (k Kind) IsObstacle() bool {
	return k == KindWall || k == KindLava
}

// Status is the level outcome. Transitions are one-way: playing -> won or lost.
type Status int

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}
