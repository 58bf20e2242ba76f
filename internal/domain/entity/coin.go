package entity

import "math"

const (
	// CoinFadeTicks is the length of the post-collection rise/fade animation.
	CoinFadeTicks = 30

	// CoinSize is the square pickup hitbox side length.
	CoinSize = 24
)

// Coin is a floating collectible. Once Collected is set it never
// un-collects; after the fade timer reaches CoinFadeTicks the coin is
// removed from the level by the end-of-tick compaction pass.
type Coin struct {
	X, Y      float64
	Collected bool

	// CollectTimer runs 0..CoinFadeTicks once collected.
	CollectTimer int

	// Bob is the idle hover offset, rendering only.
	Bob float64
}

// NewCoin creates a coin at a world position.
func NewCoin(x, y float64) *Coin {
	return &Coin{X: x, Y: y}
}

// Update advances the bob animation, or the fade timer once collected.
func (c *Coin) Update(frame int) {
	if c.Collected {
		if c.CollectTimer < CoinFadeTicks {
			c.CollectTimer++
		}
		return
	}
	c.Bob = math.Sin(float64(frame)*0.2) * 4
}

// Expired reports whether the collect animation has finished and the
// coin should be removed from the level.
func (c *Coin) Expired() bool {
	return c.Collected && c.CollectTimer >= CoinFadeTicks
}

// Bounds returns the pickup hitbox.
func (c *Coin) Bounds() Rect {
	return Rect{X: c.X, Y: c.Y, W: CoinSize, H: CoinSize}
}
