// Package playing provides the main gameplay scene: menu, world map,
// level play and game over, switched by the session mode.
package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/mf/internal/application/replay"
	"github.com/younwookim/mf/internal/application/scene"
	"github.com/younwookim/mf/internal/application/state"
	"github.com/younwookim/mf/internal/application/system"
	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/audio"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorSky       = color.RGBA{92, 148, 252, 255}
	colorHill      = color.RGBA{60, 180, 80, 255}
	colorCloud     = color.RGBA{250, 250, 250, 255}
	colorGround    = color.RGBA{150, 90, 40, 255}
	colorGroundTop = color.RGBA{110, 200, 70, 255}
	colorBrick     = color.RGBA{180, 80, 50, 255}
	colorMortar    = color.RGBA{120, 50, 30, 255}
	colorQuestion  = color.RGBA{250, 180, 40, 255}
	colorSpent     = color.RGBA{140, 130, 110, 255}
	colorPipe      = color.RGBA{40, 160, 60, 255}
	colorPipeDark  = color.RGBA{25, 110, 40, 255}
	colorCoin      = color.RGBA{255, 215, 0, 255}
	colorPlayer    = color.RGBA{220, 60, 50, 255}
	colorPlayerBig = color.RGBA{250, 90, 70, 255}
	colorGoomba    = color.RGBA{140, 80, 40, 255}
	colorKoopa     = color.RGBA{70, 190, 90, 255}
	colorEye       = color.RGBA{255, 255, 255, 255}
	colorPupil     = color.RGBA{10, 10, 10, 255}
	colorFlagPole  = color.RGBA{190, 190, 190, 255}
	colorFlag      = color.RGBA{230, 230, 230, 255}
	colorGameOver  = color.RGBA{100, 0, 0, 180}
)

var starCycle = []color.RGBA{
	{250, 220, 60, 255},
	{240, 90, 70, 255},
	{90, 200, 240, 255},
	{120, 230, 90, 255},
}

// Options configures a Playing scene.
type Options struct {
	Seed       int64
	Muted      bool
	RecordPath string
	Replayer   *replay.Replayer

	// ConfigReloads delivers freshly loaded configs from the file
	// watcher. They are applied at the top of a tick so the simulation
	// never sees a half-written config.
	ConfigReloads <-chan *config.GameConfig
}

// Playing is the gameplay scene. It owns the session flow and renders
// whichever mode the session is in.
type Playing struct {
	cfg         *config.GameConfig
	flow        *system.Flow
	inputSystem *system.InputSystem
	music       *audio.Player

	screenW  int
	screenH  int
	tileSize int
	frame    int // render animation clock, independent of the simulation

	seed           int64
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer
	reloads        <-chan *config.GameConfig
}

// New creates the scene. The provider decides where levels come from;
// the scene never builds layouts itself.
func New(cfg *config.GameConfig, provider system.LevelProvider, opts Options) *Playing {
	session := state.NewSession()
	p := &Playing{
		cfg:            cfg,
		flow:           system.NewFlow(cfg, session, provider),
		inputSystem:    system.NewInputSystem(),
		music:          audio.NewPlayer(opts.Muted),
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		tileSize:       cfg.Physics.Display.TileSize,
		seed:           opts.Seed,
		recordFilename: opts.RecordPath,
		replayer:       opts.Replayer,
		reloads:        opts.ConfigReloads,
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(opts.Seed, session.World, session.Level)
		log.Info("recording enabled", "path", opts.RecordPath, "seed", opts.Seed)
	}
	if opts.Replayer != nil {
		log.Info("replay mode", "frames", opts.Replayer.TotalFrames(), "seed", opts.Replayer.Seed())
	}

	return p
}

// Flow exposes the simulation, used by tests and the replay runner.
func (p *Playing) Flow() *system.Flow {
	return p.flow
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.frame++
	p.applyReloads()
	p.music.Update()

	in, live := p.nextInput()
	if !live && p.replayer != nil {
		// recording exhausted; idle input keeps the world running
		in = system.InputState{}
	}

	sess := p.flow.Session()
	switch sess.Mode {
	case state.StateMenu:
		if in.Confirm {
			sess.Mode = state.StateWorldMap
		}

	case state.StateWorldMap:
		if in.Cancel {
			sess.Mode = state.StateMenu
			return nil, nil
		}
		if in.Confirm {
			if err := p.flow.StartLevel(); err != nil {
				return nil, err
			}
		}

	case state.StatePlaying:
		if in.Cancel {
			sess.Mode = state.StateMenu
			return nil, nil
		}
		ev, next := p.flow.Step(in)
		p.playFeedback(ev)
		if next == state.StateGameOver && p.recorder != nil {
			p.saveRecording()
		}

	case state.StateGameOver:
		// Cancel also leaves through a full restart so the menu never
		// holds a session with zero lives.
		if in.Confirm || in.Cancel {
			p.flow.RestartSession()
			p.music.Reset()
			if p.recordFilename != "" {
				p.recorder = NewRecorder(p.seed, sess.World, sess.Level)
			}
		}
	}

	return nil, nil // single-scene game, never transitions out
}

// applyReloads drains pending config reloads. The watcher goroutine
// only loads and sends; all mutation happens here, on the game loop.
func (p *Playing) applyReloads() {
	if p.reloads == nil {
		return
	}
	for {
		select {
		case fresh, ok := <-p.reloads:
			if !ok {
				p.reloads = nil
				return
			}
			*p.cfg.Physics = *fresh.Physics
			*p.cfg.Entities = *fresh.Entities
			log.Info("config reloaded")
		default:
			return
		}
	}
}

func (p *Playing) nextInput() (system.InputState, bool) {
	if p.replayer != nil {
		ri, ok := p.replayer.GetInput()
		return system.InputState{
			Left:    ri.Left,
			Right:   ri.Right,
			Jump:    ri.Jump,
			Run:     ri.Run,
			Confirm: ri.Confirm,
			Cancel:  ri.Cancel,
		}, ok
	}

	in := p.inputSystem.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	return in, true
}

func (p *Playing) playFeedback(ev system.StepEvents) {
	if ev.Jumped {
		p.music.Play(audio.EffectJump)
	}
	if ev.CoinCollected {
		p.music.Play(audio.EffectCoin)
	}
	if ev.Stomped {
		p.music.Play(audio.EffectStomp)
	}
	if ev.BlockHit {
		p.music.Play(audio.EffectBlockHit)
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}
	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "err", err)
	} else {
		log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {}

// OnExit implements scene.Scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.FrameCount() > 0 {
		p.saveRecording()
	}
}

// Draw renders the current mode (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	switch p.flow.Session().Mode {
	case state.StateMenu:
		p.drawMenu(screen)
	case state.StateWorldMap:
		p.drawWorldMap(screen)
	case state.StatePlaying:
		p.drawPlaying(screen)
	case state.StateGameOver:
		p.drawPlaying(screen)
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawMenu(screen *ebiten.Image) {
	screen.Fill(colorSky)
	p.drawBackdrop(screen, 0)

	// big blocky title from filled rects
	title := "SUPER PLUMBER"
	ebitenutil.DebugPrintAt(screen, title, p.screenW/2-len(title)*3, p.screenH/3)
	ebitenutil.DrawRect(screen, float64(p.screenW/2-80), float64(p.screenH/3-20), 160, 8, colorBrick)
	ebitenutil.DrawRect(screen, float64(p.screenW/2-80), float64(p.screenH/3+20), 160, 8, colorBrick)

	if (p.frame/30)%2 == 0 {
		prompt := "PRESS SPACE TO START"
		ebitenutil.DebugPrintAt(screen, prompt, p.screenW/2-len(prompt)*3, p.screenH/2+40)
	}
}

func (p *Playing) drawWorldMap(screen *ebiten.Image) {
	screen.Fill(colorSky)
	sess := p.flow.Session()

	header := fmt.Sprintf("WORLD %d", sess.World)
	ebitenutil.DebugPrintAt(screen, header, p.screenW/2-len(header)*3, p.screenH/4)

	// one node per level, the current one pulsing
	spacing := 120
	startX := p.screenW/2 - spacing*(state.LevelsPerWorld-1)/2
	y := p.screenH / 2
	for i := 1; i <= state.LevelsPerWorld; i++ {
		x := startX + (i-1)*spacing
		r := float32(14)
		c := colorSpent
		if i < sess.Level {
			c = colorGroundTop
		}
		if i == sess.Level {
			c = colorCoin
			r += float32(math.Sin(float64(p.frame)*0.1) * 3)
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, c, true)
		if i > 1 {
			ebitenutil.DrawLine(screen, float64(x-spacing+14), float64(y), float64(x-14), float64(y), colorFlagPole)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d-%d", sess.World, i), x-10, y+25)
	}

	prompt := "SPACE: ENTER LEVEL   ESC: MENU"
	ebitenutil.DebugPrintAt(screen, prompt, p.screenW/2-len(prompt)*3, p.screenH-80)
}

func (p *Playing) drawPlaying(screen *ebiten.Image) {
	screen.Fill(colorSky)
	if p.flow.Level == nil {
		return
	}
	camX := p.flow.CameraX()

	p.drawBackdrop(screen, camX)
	p.drawBlocks(screen, camX)
	p.drawCoins(screen, camX)
	p.drawGoal(screen, camX)
	p.drawEnemies(screen, camX)
	p.drawPlayer(screen, camX)
	p.drawHUD(screen)
}

// drawBackdrop paints parallax hills and clouds behind the level.
func (p *Playing) drawBackdrop(screen *ebiten.Image, camX float64) {
	hillCam := camX * 0.3
	for i := 0; i < 12; i++ {
		hx := float64(i)*420 - math.Mod(hillCam, 420*12)
		vector.DrawFilledCircle(screen, float32(hx), float32(p.screenH-60), 120, colorHill, true)
		vector.DrawFilledCircle(screen, float32(hx+210), float32(p.screenH-60), 80, colorHill, true)
	}

	cloudCam := camX * 0.5
	for i := 0; i < 10; i++ {
		cx := float64(i)*360 + 80 - math.Mod(cloudCam, 360*10)
		cy := float64(70 + (i%3)*50)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), 22, colorCloud, true)
		vector.DrawFilledCircle(screen, float32(cx+24), float32(cy+4), 18, colorCloud, true)
		vector.DrawFilledCircle(screen, float32(cx-24), float32(cy+4), 18, colorCloud, true)
	}
}

func (p *Playing) drawBlocks(screen *ebiten.Image, camX float64) {
	ts := float64(p.tileSize)
	for _, b := range p.flow.Level.Blocks {
		box := b.Bounds(ts)
		sx := box.X - camX
		if sx+box.W < 0 || sx > float64(p.screenW) {
			continue
		}
		sy := box.Y
		if b.HitTimer > 0 {
			sy -= math.Sin(float64(b.HitTimer)*0.5) * 5
		}

		switch b.Type {
		case entity.BlockGround:
			ebitenutil.DrawRect(screen, sx, sy, box.W, box.H, colorGround)
			ebitenutil.DrawRect(screen, sx, sy, box.W, 6, colorGroundTop)
		case entity.BlockBrick:
			ebitenutil.DrawRect(screen, sx, sy, box.W, box.H, colorBrick)
			ebitenutil.DrawLine(screen, sx, sy+box.H/2, sx+box.W, sy+box.H/2, colorMortar)
			ebitenutil.DrawLine(screen, sx+box.W/2, sy, sx+box.W/2, sy+box.H/2, colorMortar)
			ebitenutil.DrawLine(screen, sx+box.W/4, sy+box.H/2, sx+box.W/4, sy+box.H, colorMortar)
		case entity.BlockQuestion:
			c := colorQuestion
			if b.Hit {
				c = colorSpent
			}
			ebitenutil.DrawRect(screen, sx, sy, box.W, box.H, c)
			if !b.Hit {
				ebitenutil.DebugPrintAt(screen, "?", int(sx+box.W/2-3), int(sy+box.H/2-8))
			}
		case entity.BlockPipe:
			ebitenutil.DrawRect(screen, sx+4, sy, box.W-8, box.H, colorPipe)
			// lip
			ebitenutil.DrawRect(screen, sx, sy, box.W, 14, colorPipeDark)
		}
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, camX float64) {
	for _, c := range p.flow.Level.Coins {
		sx := c.X - camX
		if sx+entity.CoinSize < 0 || sx > float64(p.screenW) {
			continue
		}
		cx := float32(sx + entity.CoinSize/2)

		if c.Collected {
			// rise and shrink during the fade
			t := float64(c.CollectTimer)
			cy := float32(c.Y + entity.CoinSize/2 - t*2)
			r := float32(entity.CoinSize/2) * float32(1-t/entity.CoinFadeTicks)
			if r <= 0 {
				continue
			}
			vector.DrawFilledCircle(screen, cx, cy, r, colorCoin, true)
			continue
		}

		cy := float32(c.Y + entity.CoinSize/2 + c.Bob)
		vector.DrawFilledCircle(screen, cx, cy, entity.CoinSize/2, colorCoin, true)
		vector.DrawFilledCircle(screen, cx, cy, entity.CoinSize/2-5, colorQuestion, true)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX float64) {
	for _, e := range p.flow.Level.Enemies {
		if !e.Alive {
			continue
		}
		sx := e.X - camX
		if sx+e.Width < 0 || sx > float64(p.screenW) {
			continue
		}

		body := colorGoomba
		if e.Type == entity.EnemyKoopa {
			body = colorKoopa
		}
		ebitenutil.DrawRect(screen, sx, e.Y, e.Width, e.Height, body)
		if e.Type == entity.EnemyKoopa {
			// shell band
			ebitenutil.DrawRect(screen, sx+3, e.Y+e.Height/2, e.Width-6, e.Height/3, colorCloud)
		}

		// eyes track the patrol direction
		eyeOff := float32(e.Width / 4)
		if e.Direction > 0 {
			eyeOff = float32(3 * e.Width / 4)
		}
		vector.DrawFilledCircle(screen, float32(sx)+eyeOff, float32(e.Y+6), 4, colorEye, true)
		vector.DrawFilledCircle(screen, float32(sx)+eyeOff, float32(e.Y+6), 2, colorPupil, true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX float64) {
	pl := p.flow.Player

	// flicker during mercy frames
	if pl.Invincible > 0 && (pl.Invincible/4)%2 == 0 {
		return
	}

	c := colorPlayer
	if pl.Big {
		c = colorPlayerBig
	}
	if pl.Star {
		c = starCycle[(p.frame/4)%len(starCycle)]
	}

	sx := pl.X - camX
	ebitenutil.DrawRect(screen, sx, pl.Y, pl.Width, pl.Height, c)

	// cap
	ebitenutil.DrawRect(screen, sx-2, pl.Y, pl.Width+4, 6, colorPlayer)

	eyeX := float32(sx + pl.Width/4)
	if pl.FacingRight {
		eyeX = float32(sx + 3*pl.Width/4)
	}
	vector.DrawFilledCircle(screen, eyeX, float32(pl.Y+12), 3, colorEye, true)
}

func (p *Playing) drawGoal(screen *ebiten.Image, camX float64) {
	lvl := p.flow.Level
	sx := lvl.GoalX - camX
	if sx < -40 || sx > float64(p.screenW) {
		return
	}
	base := 500.0
	ebitenutil.DrawRect(screen, sx, base-320, 6, 320, colorFlagPole)
	ebitenutil.DrawRect(screen, sx+6, base-320, 36, 24, colorFlag)
	vector.DrawFilledCircle(screen, float32(sx+3), float32(base-320), 8, colorCoin, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	pl := p.flow.Player
	sess := p.flow.Session()

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %06d", pl.Score), 10, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("COINS %02d", pl.Coins), 180, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("WORLD %d-%d", sess.World, sess.Level), 300, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TIME %3d", p.flow.Level.Time), 440, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LIVES %d", pl.Lives), 560, 10)

	if p.replayer != nil {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()),
			10, p.screenH-20)
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, "REC", p.screenW-40, p.screenH-20)
	}
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorGameOver)

	text := fmt.Sprintf("GAME OVER\n\nFinal score: %d\n\nPress SPACE to continue", p.flow.Player.Score)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}
