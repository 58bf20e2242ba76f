package entity

// Player is the player-controlled actor.
type Player struct {
	X, Y   float64
	VX, VY float64
	Width  float64
	Height float64

	OnGround    bool
	FacingRight bool
	Running     bool
	Sliding     bool

	// Power state
	Big  bool
	Fire bool
	Star bool

	// Timers (ticks)
	StarTimer   int
	Invincible  int
	JumpFrames  int

	// Session counters carried across levels
	Lives int
	Coins int
	Score int
}

// NewPlayer creates a player at its spawn position with starting lives.
func NewPlayer(spawnX, spawnY float64, width, height float64, lives int) *Player {
	p := &Player{
		Width:  width,
		Height: height,
		Lives:  lives,
	}
	p.ResetForLevel(spawnX, spawnY)
	return p
}

// ResetForLevel places the player at a level's spawn point and clears all
// motion and transient state. Lives, score, coins and power state survive
// level transitions and restarts; only a full session reset touches those.
func (p *Player) ResetForLevel(spawnX, spawnY float64) {
	p.X = spawnX
	p.Y = spawnY
	p.VX = 0
	p.VY = 0
	p.OnGround = false
	p.FacingRight = true
	p.Running = false
	p.Sliding = false
	p.Star = false
	p.StarTimer = 0
	p.Invincible = 0
	p.JumpFrames = 0
}

// ResetSession restores the full starting state after a game-over restart.
func (p *Player) ResetSession(spawnX, spawnY float64, lives int) {
	p.ResetForLevel(spawnX, spawnY)
	p.Big = false
	p.Fire = false
	p.Lives = lives
	p.Coins = 0
	p.Score = 0
}

// Bounds returns the collision box.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// IsVulnerable reports whether contact damage currently applies.
func (p *Player) IsVulnerable() bool {
	return p.Invincible == 0 && !p.Star
}
