package system

import "github.com/younwookim/mf/internal/infrastructure/config"

// Camera eases toward keeping its target centered and never scrolls
// past the left edge of the level.
type Camera struct {
	X   float64
	cfg *config.PhysicsConfig
}

func NewCamera(cfg *config.PhysicsConfig) *Camera {
	return &Camera{cfg: cfg}
}

func (c *Camera) Follow(targetX float64) {
	target := targetX - float64(c.cfg.Display.ScreenWidth)/2
	c.X += (target - c.X) * c.cfg.Camera.Lerp
	if c.X < 0 {
		c.X = 0
	}
}

func (c *Camera) Reset() {
	c.X = 0
}
