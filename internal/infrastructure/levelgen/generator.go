package levelgen

import (
	"math/rand"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// generator builds a procedural stage. Layouts scale with world and
// level: later stages are longer with more gaps, pipes and enemies.
type generator struct {
	cfg *config.GameConfig
	rng *rand.Rand
}

func newGenerator(cfg *config.GameConfig, seed int64) *generator {
	return &generator{cfg: cfg, rng: rand.New(rand.NewSource(seed))}
}

// randTile picks a tile column in [lo, hi] inclusive.
func (g *generator) randTile(lo, hi int) int {
	return g.rng.Intn(hi-lo+1) + lo
}

func (g *generator) generate(world, level int) *entity.Level {
	ts := float64(g.cfg.Physics.Display.TileSize)
	length := 100 + world*50 + level*30

	lvl := &entity.Level{
		World:  world,
		Number: level,
		GoalX:  float64(length-5) * ts,
		Time:   g.cfg.Physics.Rules.LevelTime,
	}

	groundY := 500.0
	for i := 0; i < length; i++ {
		x := float64(i) * ts
		lvl.Blocks = append(lvl.Blocks,
			entity.NewBlock(x, groundY, entity.BlockGround),
			entity.NewBlock(x, groundY+ts, entity.BlockGround),
		)
	}

	// punch gaps into the ground
	for i := 0; i < 2+world; i++ {
		gapX := float64(g.randTile(20, length-20)) * ts
		kept := lvl.Blocks[:0]
		for _, b := range lvl.Blocks {
			if b.X >= gapX && b.X < gapX+3*ts && b.Y >= groundY {
				continue
			}
			kept = append(kept, b)
		}
		lvl.Blocks = kept
	}

	// floating platforms of bricks or question blocks
	for i := 0; i < 5+world*3; i++ {
		px := float64(g.randTile(5, length-10)) * ts
		py := float64(g.randTile(8, 12)) * ts
		bt := entity.BlockBrick
		if g.rng.Intn(2) == 1 {
			bt = entity.BlockQuestion
		}
		count := g.randTile(3, 6)
		for j := 0; j < count; j++ {
			lvl.Blocks = append(lvl.Blocks, entity.NewBlock(px+float64(j)*ts, py, bt))
		}
	}

	// pipes
	for i := 0; i < 2+world; i++ {
		px := float64(g.randTile(10, length-20)) * ts
		lvl.Blocks = append(lvl.Blocks, entity.NewBlock(px, groundY-ts, entity.BlockPipe))
	}

	// one staircase near the end section
	stairX := float64(g.randTile(30, length-60)) * ts
	for i := 0; i < 8; i++ {
		for j := 0; j <= i; j++ {
			lvl.Blocks = append(lvl.Blocks, entity.NewBlock(stairX+float64(j)*ts, groundY-float64(i)*ts, entity.BlockBrick))
		}
	}

	// enemies
	for i := 0; i < 3+world*2; i++ {
		ex := float64(g.randTile(10, length-20)) * ts
		name := "goomba"
		et := entity.EnemyGoomba
		if g.rng.Float64() > 0.7 {
			name = "koopa"
			et = entity.EnemyKoopa
		}
		ec, ok := g.cfg.Entities.Enemies[name]
		if !ok {
			ec = config.EnemyConfig{Width: 24, Height: 24, MoveSpeed: 1.0}
		}
		lvl.Enemies = append(lvl.Enemies, entity.NewEnemy(ex, groundY-ec.Height, et, ec.Width, ec.Height, ec.MoveSpeed))
	}

	// coins
	for i := 0; i < 10+world*5; i++ {
		cx := float64(g.randTile(5, length-10)) * ts
		cy := float64(g.randTile(6, 12)) * ts
		lvl.Coins = append(lvl.Coins, entity.NewCoin(cx, cy))
	}

	return lvl
}
