package system

import (
	"math"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// PhysicsSystem integrates actor motion. All tuning comes from the
// physics config so hot-reloaded values take effect on the next tick.
type PhysicsSystem struct {
	cfg *config.PhysicsConfig
}

func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{cfg: cfg}
}

// UpdatePlayer applies one tick of player motion: gravity, horizontal
// easing, the variable-height jump ladder, air control and sliding,
// then integrates position. Returns true when a jump started this tick.
func (s *PhysicsSystem) UpdatePlayer(p *entity.Player, in InputState) bool {
	if !p.OnGround {
		p.VY += s.cfg.Physics.Gravity
		if p.VY > s.cfg.Physics.TerminalVelocity {
			p.VY = s.cfg.Physics.TerminalVelocity
		}
	} else {
		p.JumpFrames = 0
	}

	speed := s.cfg.Movement.WalkSpeed
	if p.Running {
		speed = s.cfg.Movement.RunSpeed
	}
	targetVX := 0.0
	switch {
	case in.Left:
		targetVX = -speed
		p.FacingRight = false
	case in.Right:
		targetVX = speed
		p.FacingRight = true
	}

	if targetVX != 0 {
		p.VX += (targetVX - p.VX) * s.cfg.Movement.Acceleration
	} else if p.OnGround {
		p.VX *= s.cfg.Movement.Deceleration
	} else {
		p.VX *= s.cfg.Movement.AirResistance
	}

	jumped := false
	switch {
	case p.JumpFrames > 0 && in.Jump && p.VY < 0:
		if p.JumpFrames <= s.cfg.Jump.ExtensionTime {
			// Counteract part of gravity while the button is held so
			// longer presses reach higher apexes.
			p.VY -= s.cfg.Physics.Gravity * s.cfg.Jump.ExtensionGravityFactor
			p.JumpFrames++
		} else {
			p.JumpFrames = 0
		}
	case in.Jump && p.OnGround:
		p.VY = s.cfg.Jump.Power
		p.OnGround = false
		p.JumpFrames = 1
		jumped = true
	case !in.Jump:
		p.JumpFrames = 0
	}

	if !p.OnGround {
		if in.Left {
			p.VX -= s.cfg.Movement.AirControl
		}
		if in.Right {
			p.VX += s.cfg.Movement.AirControl
		}
	}

	p.Sliding = false
	if p.OnGround && math.Abs(p.VX) > s.cfg.Movement.SlideThreshold {
		if (p.VX > 0 && targetVX < 0) || (p.VX < 0 && targetVX > 0) {
			p.Sliding = true
		}
	}

	p.X += p.VX
	p.Y += p.VY

	if p.StarTimer > 0 {
		p.StarTimer--
		if p.StarTimer == 0 {
			p.Star = false
		}
	}
	if p.Invincible > 0 {
		p.Invincible--
	}
	return jumped
}

// UpdateEnemy applies gravity and patrol movement. A grounded enemy
// probes one pixel ahead of its leading edge and turns around at ledges
// and walls before it walks into them.
func (s *PhysicsSystem) UpdateEnemy(e *entity.Enemy, lvl *entity.Level) {
	if !e.Alive {
		return
	}
	e.VY += s.cfg.Physics.Gravity
	if e.VY > s.cfg.Physics.TerminalVelocity {
		e.VY = s.cfg.Physics.TerminalVelocity
	}

	if e.OnGround {
		ts := float64(s.cfg.Display.TileSize)
		checkX := e.X - 1
		if e.VX > 0 {
			checkX = e.X + e.Width
		}
		groundAhead := false
		wallAhead := false
		for _, b := range lvl.Blocks {
			if checkX < b.X || checkX >= b.X+ts {
				continue
			}
			if (b.Type == entity.BlockGround || b.Type == entity.BlockBrick) && b.Y == e.Y+e.Height {
				groundAhead = true
			}
			if (b.Type == entity.BlockBrick || b.Type == entity.BlockPipe) && b.Y <= e.Y && e.Y < b.Y+ts {
				wallAhead = true
			}
		}
		if !groundAhead || wallAhead {
			e.Reverse()
		}
	}

	e.X += e.VX
	e.Y += e.VY
}
