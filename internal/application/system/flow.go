package system

import (
	"fmt"

	"github.com/younwookim/mf/internal/application/state"
	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// LevelProvider builds a fresh level layout for a world/level pair.
type LevelProvider interface {
	Build(world, level int) (*entity.Level, error)
}

// StepEvents reports what happened during one tick so the scene can
// trigger sounds and feedback without the simulation knowing about
// audio at all.
type StepEvents struct {
	Jumped        bool
	Stomped       bool
	CoinCollected bool
	BlockHit      bool
	Damaged       bool
	Died          bool
	LevelComplete bool
}

// Flow drives one gameplay session: it owns the player, the current
// level, and the per-tick pipeline of physics, collision resolution and
// rule checks. It is fully headless; the scene feeds it InputState and
// renders whatever it holds.
type Flow struct {
	cfg       *config.GameConfig
	session   *state.Session
	provider  LevelProvider
	physics   *PhysicsSystem
	collision *CollisionSystem
	camera    *Camera

	Player *entity.Player
	Level  *entity.Level
	frame  int
}

func NewFlow(cfg *config.GameConfig, session *state.Session, provider LevelProvider) *Flow {
	pc := cfg.Entities.Player
	return &Flow{
		cfg:       cfg,
		session:   session,
		provider:  provider,
		physics:   NewPhysicsSystem(cfg.Physics),
		collision: NewCollisionSystem(cfg.Physics),
		camera:    NewCamera(cfg.Physics),
		Player:    entity.NewPlayer(pc.SpawnX, pc.SpawnY, pc.Width, pc.Height, cfg.Physics.Rules.StartLives),
	}
}

func (f *Flow) Session() *state.Session { return f.session }
func (f *Flow) CameraX() float64       { return f.camera.X }
func (f *Flow) Frame() int             { return f.frame }

// StartLevel builds the level named by the session and respawns the
// player into it. Score, coins, lives and power-ups survive the reset.
func (f *Flow) StartLevel() error {
	lvl, err := f.provider.Build(f.session.World, f.session.Level)
	if err != nil {
		return fmt.Errorf("build level %d-%d: %w", f.session.World, f.session.Level, err)
	}
	if lvl.Time == 0 {
		lvl.Time = f.cfg.Physics.Rules.LevelTime
	}
	f.Level = lvl
	pc := f.cfg.Entities.Player
	f.Player.ResetForLevel(pc.SpawnX, pc.SpawnY)
	f.camera.Reset()
	f.frame = 0
	f.session.Mode = state.StatePlaying
	return nil
}

// RestartSession fully resets the run after a game over: session back
// to world 1-1, player counters back to their starting values.
func (f *Flow) RestartSession() {
	f.session.Reset()
	pc := f.cfg.Entities.Player
	f.Player.ResetSession(pc.SpawnX, pc.SpawnY, f.cfg.Physics.Rules.StartLives)
	f.Level = nil
	f.camera.Reset()
	f.frame = 0
}

// Step advances the simulation by one tick and returns the events that
// occurred plus the state the game should be in afterwards. The order
// within the tick is fixed: player motion, player-versus-tile,
// player-versus-enemy, coin pickup, enemy motion and tiles, rule checks
// (goal, falling, timer), animation upkeep, camera.
func (f *Flow) Step(in InputState) (StepEvents, state.GameState) {
	var ev StepEvents
	f.frame++
	p := f.Player
	p.Running = in.Run
	ev.Jumped = f.physics.UpdatePlayer(p, in)

	if f.frame%f.cfg.Physics.Display.Framerate == 0 {
		f.Level.Time--
		if f.Level.Time <= 0 {
			return f.loseLife(ev)
		}
	}

	tileFX := f.collision.ResolvePlayerBlocks(p, f.Level)
	var removed []int
	for _, hit := range tileFX.Hits {
		b := f.Level.Blocks[hit.Index]
		b.Hit = true
		b.HitTimer = entity.BlockHitBounce
		p.Score += hit.Score
		// Block coins bypass the 100-coin life counter.
		p.Coins += hit.Coins
		if hit.Remove {
			removed = append(removed, hit.Index)
		}
		ev.BlockHit = true
	}
	f.Level.RemoveBlocks(removed)

	enemyFX := f.collision.ResolvePlayerEnemies(p, f.Level)
	for _, idx := range enemyFX.Stomped {
		f.Level.Enemies[idx].Alive = false
		p.Score += f.cfg.Physics.Scoring.Stomp
		ev.Stomped = true
	}
	if enemyFX.Damaged {
		if p.Big {
			p.Big = false
			p.Invincible = f.cfg.Physics.Combat.HurtInvincibilityFrames
			ev.Damaged = true
		} else {
			return f.loseLife(ev)
		}
	}

	coinFX := f.collision.CollectCoins(p, f.Level)
	for _, idx := range coinFX.Collected {
		c := f.Level.Coins[idx]
		c.Collected = true
		c.CollectTimer = 0
	}
	if len(coinFX.Collected) > 0 {
		ev.CoinCollected = true
		p.Score += coinFX.Score
		f.addCoins(len(coinFX.Collected))
	}

	for _, e := range f.Level.Enemies {
		if !e.Alive {
			continue
		}
		f.physics.UpdateEnemy(e, f.Level)
		f.collision.ResolveEnemyBlocks(e, f.Level)
	}

	for _, c := range f.Level.Coins {
		c.Update(f.frame)
	}
	f.Level.CompactCoins()
	for _, b := range f.Level.Blocks {
		b.TickBounce()
	}

	if p.X >= f.Level.GoalX {
		ev.LevelComplete = true
		next := f.session.AdvanceLevel()
		if next == state.StatePlaying {
			if err := f.StartLevel(); err != nil {
				// The scene trusts session.Mode, so a failed build must
				// not leave the session in Playing over the old level.
				f.session.Mode = state.StateMenu
				return ev, state.StateMenu
			}
		}
		return ev, next
	}

	if p.Y > float64(f.cfg.Physics.Display.ScreenHeight+f.cfg.Physics.Rules.DeathMargin) {
		return f.loseLife(ev)
	}

	f.camera.Follow(p.X)
	return ev, state.StatePlaying
}

// loseLife handles every death cause the same way: one life gone, then
// either a fresh attempt at the same level or game over.
func (f *Flow) loseLife(ev StepEvents) (StepEvents, state.GameState) {
	ev.Died = true
	f.Player.Lives--
	if f.Player.Lives <= 0 {
		f.session.Mode = state.StateGameOver
		return ev, state.StateGameOver
	}
	if err := f.StartLevel(); err != nil {
		f.session.Mode = state.StateGameOver
		return ev, state.StateGameOver
	}
	return ev, state.StatePlaying
}

// addCoins applies pickups one at a time so crossing the life threshold
// awards exactly one life and wraps the counter to zero.
func (f *Flow) addCoins(n int) {
	for i := 0; i < n; i++ {
		f.Player.Coins++
		if f.Player.Coins >= f.cfg.Physics.Rules.CoinsPerLife {
			f.Player.Coins = 0
			f.Player.Lives++
		}
	}
}
