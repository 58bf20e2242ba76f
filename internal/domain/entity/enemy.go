package entity

// EnemyType is the closed set of enemy kinds.
type EnemyType int

const (
	EnemyGoomba EnemyType = iota
	EnemyKoopa
)

// String returns the string representation of the enemy type
func (t EnemyType) String() string {
	switch t {
	case EnemyGoomba:
		return "goomba"
	case EnemyKoopa:
		return "koopa"
	default:
		return "unknown"
	}
}

// Enemy is a patrolling actor. Dead enemies stay in the level's slice
// with Alive=false as a tombstone; collision and physics skip them.
type Enemy struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	Type      EnemyType
	Alive     bool
	OnGround  bool
	Direction int // -1 left, 1 right; flips only via collision or ledge probe
}

// NewEnemy creates an enemy walking left, the way every spawn starts.
func NewEnemy(x, y float64, t EnemyType, width, height, moveSpeed float64) *Enemy {
	return &Enemy{
		X:         x,
		Y:         y,
		VX:        -moveSpeed,
		Width:     width,
		Height:    height,
		Type:      t,
		Alive:     true,
		Direction: -1,
	}
}

// Bounds returns the collision box.
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Reverse flips the patrol direction.
func (e *Enemy) Reverse() {
	e.VX = -e.VX
	e.Direction = -e.Direction
}
