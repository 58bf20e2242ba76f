package system

import (
	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// BlockHit records a first-time bottom hit on a block and the reward it
// carries. The flow applies rewards after the resolution pass so the
// block list is never mutated while it is being scanned.
type BlockHit struct {
	Index  int
	Remove bool
	Score  int
	Coins  int
}

// TileEffects collects the side effects of one player-versus-tile pass.
type TileEffects struct {
	Hits []BlockHit
}

// EnemyEffects collects the side effects of one player-versus-enemy pass.
type EnemyEffects struct {
	Stomped []int
	Damaged bool
}

// CoinEffects collects the coins touched during one pass.
type CoinEffects struct {
	Collected []int
	Score     int
}

// CollisionSystem resolves overlaps between actors, tiles, enemies and
// coins. Resolution uses minimum translation: for each overlapping tile
// the axis with the smallest penetration depth wins, and exactly that
// axis is corrected.
type CollisionSystem struct {
	cfg *config.PhysicsConfig
}

func NewCollisionSystem(cfg *config.PhysicsConfig) *CollisionSystem {
	return &CollisionSystem{cfg: cfg}
}

// ResolvePlayerBlocks pushes the player out of every overlapping tile
// and reports bottom hits. Ties between depths resolve in the order
// top, bottom, side, so landing wins over wall contact on corners.
func (s *CollisionSystem) ResolvePlayerBlocks(p *entity.Player, lvl *entity.Level) TileEffects {
	ts := float64(s.cfg.Display.TileSize)
	p.OnGround = false
	var fx TileEffects
	for i := range lvl.Blocks {
		b := lvl.Blocks[i]
		box := b.Bounds(ts)
		pb := p.Bounds()
		if !pb.Overlaps(box) {
			continue
		}
		left, right, top, bottom := pb.Depths(box)
		min := minDepth(left, right, top, bottom)
		switch {
		case min == top && p.VY > 0:
			p.Y = box.Y - p.Height
			p.VY = 0
			p.OnGround = true
		case min == bottom && p.VY < 0:
			p.Y = box.Bottom()
			p.VY = 0
			if !b.Hit {
				hit := BlockHit{Index: i}
				switch b.Type {
				case entity.BlockQuestion:
					hit.Score = s.cfg.Scoring.QuestionBlock
					hit.Coins = b.Contains
				case entity.BlockBrick:
					hit.Score = s.cfg.Scoring.Brick
					hit.Remove = p.Big
				}
				fx.Hits = append(fx.Hits, hit)
			}
		case (min == left || min == right) && p.VX != 0:
			if p.X < b.X {
				p.X = box.X - p.Width
			} else {
				p.X = box.Right()
			}
			p.VX = 0
		}
	}
	if !p.OnGround && p.VY >= 0 && s.groundContact(p, lvl, ts) {
		// An exact-flush landing never overlaps, so the top case above
		// cannot zero the fall speed. Grounded implies vy == 0.
		p.OnGround = true
		p.VY = 0
	}
	return fx
}

// groundContact probes one pixel below the player so standing flush on
// a tile top keeps the grounded state between ticks.
func (s *CollisionSystem) groundContact(p *entity.Player, lvl *entity.Level, ts float64) bool {
	probe := p.Bounds()
	probe.Y++
	for i := range lvl.Blocks {
		if probe.Overlaps(lvl.Blocks[i].Bounds(ts)) {
			return true
		}
	}
	return false
}

// ResolvePlayerEnemies applies stomps and contact damage. A falling
// player above the enemy stomps it and bounces; any other contact hurts
// a vulnerable player, and the pass stops at the first hurt because the
// level is about to restart anyway.
func (s *CollisionSystem) ResolvePlayerEnemies(p *entity.Player, lvl *entity.Level) EnemyEffects {
	var fx EnemyEffects
	pb := p.Bounds()
	for i := range lvl.Enemies {
		e := lvl.Enemies[i]
		if !e.Alive {
			continue
		}
		if !pb.Overlaps(e.Bounds()) {
			continue
		}
		if p.VY > 0 && p.Y < e.Y {
			fx.Stomped = append(fx.Stomped, i)
			p.VY = s.cfg.Jump.StompBounce
		} else if p.IsVulnerable() {
			fx.Damaged = true
			return fx
		}
	}
	return fx
}

// CollectCoins reports which live coins the player touches this tick.
func (s *CollisionSystem) CollectCoins(p *entity.Player, lvl *entity.Level) CoinEffects {
	var fx CoinEffects
	pb := p.Bounds()
	for i := range lvl.Coins {
		c := lvl.Coins[i]
		if c.Collected {
			continue
		}
		if !pb.Overlaps(c.Bounds()) {
			continue
		}
		fx.Collected = append(fx.Collected, i)
	}
	fx.Score = len(fx.Collected) * s.cfg.Scoring.Coin
	return fx
}

// ResolveEnemyBlocks pushes an enemy out of overlapping tiles. Landing
// zeroes vertical speed; ceiling and wall contact reverse the patrol.
func (s *CollisionSystem) ResolveEnemyBlocks(e *entity.Enemy, lvl *entity.Level) {
	ts := float64(s.cfg.Display.TileSize)
	e.OnGround = false
	for i := range lvl.Blocks {
		box := lvl.Blocks[i].Bounds(ts)
		eb := e.Bounds()
		if !eb.Overlaps(box) {
			continue
		}
		switch {
		case e.VY > 0 && e.Y < box.Y:
			e.Y = box.Y - e.Height
			e.VY = 0
			e.OnGround = true
		case e.VY < 0:
			e.Y = box.Bottom()
			e.VY = 0
			e.Reverse()
		case e.VX != 0:
			if e.X < box.X {
				e.X = box.X - e.Width
			} else {
				e.X = box.Right()
			}
			e.Reverse()
		}
	}
}

func minDepth(vals ...float64) float64 {
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
