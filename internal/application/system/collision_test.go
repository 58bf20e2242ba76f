package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

func groundRow(tiles int, y float64) []*entity.Block {
	blocks := make([]*entity.Block, 0, tiles)
	for i := 0; i < tiles; i++ {
		blocks = append(blocks, entity.NewBlock(float64(i)*32, y, entity.BlockGround))
	}
	return blocks
}

func TestMinimumTranslationResolvesSmallestAxis(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: []*entity.Block{entity.NewBlock(100, 100, entity.BlockGround)}}

	// Overlap depths: left 5, right 51, top 2, bottom 62. Top wins.
	p := newTestPlayer()
	p.X, p.Y = 81, 70
	p.VY = 3
	p.VX = 1

	col.ResolvePlayerBlocks(p, lvl)

	assert.Equal(t, 68.0, p.Y, "player must snap to the tile top")
	assert.Equal(t, 0.0, p.VY)
	assert.True(t, p.OnGround)
	assert.Equal(t, 81.0, p.X, "horizontal position must be untouched")
	assert.Equal(t, 1.0, p.VX)
}

func TestSideResolutionStopsHorizontalMotion(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: []*entity.Block{entity.NewBlock(100, 100, entity.BlockGround)}}

	// Deep vertical overlap, shallow horizontal: the side axis wins.
	p := newTestPlayer()
	p.X, p.Y = 100-24+3, 105
	p.VX = 4
	p.VY = 0

	col.ResolvePlayerBlocks(p, lvl)

	assert.Equal(t, 100.0-24, p.X, "player must be pushed out to the tile's left edge")
	assert.Equal(t, 0.0, p.VX)
	assert.False(t, p.OnGround)
}

func TestCeilingHitStopsAscent(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	b := entity.NewBlock(96, 96, entity.BlockGround)
	lvl := &entity.Level{Blocks: []*entity.Block{b}}

	p := newTestPlayer()
	p.X, p.Y = 100, 96+32-3 // head 3px into the tile from below
	p.VY = -8

	col.ResolvePlayerBlocks(p, lvl)

	assert.Equal(t, 128.0, p.Y, "player must snap under the tile")
	assert.Equal(t, 0.0, p.VY)
}

func TestQuestionBlockRewardsOnlyFirstHit(t *testing.T) {
	cfg := config.Default()
	col := NewCollisionSystem(cfg)
	b := entity.NewBlock(96, 96, entity.BlockQuestion)
	lvl := &entity.Level{Blocks: []*entity.Block{b}}

	hitFromBelow := func() TileEffects {
		p := newTestPlayer()
		p.X, p.Y = 100, 96+32-3
		p.VY = -8
		return col.ResolvePlayerBlocks(p, lvl)
	}

	fx := hitFromBelow()
	require.Len(t, fx.Hits, 1)
	assert.Equal(t, cfg.Scoring.QuestionBlock, fx.Hits[0].Score)
	assert.Equal(t, 1, fx.Hits[0].Coins)
	assert.False(t, fx.Hits[0].Remove)

	// the flow marks the block after applying rewards
	b.Hit = true

	fx = hitFromBelow()
	assert.Empty(t, fx.Hits, "a spent block must not pay out again")
}

func TestBrickRemovedOnlyWhenBig(t *testing.T) {
	cfg := config.Default()
	col := NewCollisionSystem(cfg)

	hit := func(big bool) BlockHit {
		lvl := &entity.Level{Blocks: []*entity.Block{entity.NewBlock(96, 96, entity.BlockBrick)}}
		p := newTestPlayer()
		p.Big = big
		p.X, p.Y = 100, 96+32-3
		p.VY = -8
		fx := col.ResolvePlayerBlocks(p, lvl)
		require.Len(t, fx.Hits, 1)
		return fx.Hits[0]
	}

	small := hit(false)
	assert.False(t, small.Remove)
	assert.Equal(t, cfg.Scoring.Brick, small.Score)

	big := hit(true)
	assert.True(t, big.Remove, "a big player breaks bricks")
}

func TestGroundContactPersistsWhenFlush(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: groundRow(10, 500)}

	p := newTestPlayer()
	p.X, p.Y = 100, 500-p.Height // resting exactly on the row
	p.VY = 0

	for i := 0; i < 10; i++ {
		col.ResolvePlayerBlocks(p, lvl)
		assert.True(t, p.OnGround, "flush contact must keep the player grounded")
		assert.Equal(t, 0.0, p.VY)
		assert.Equal(t, 500-p.Height, p.Y)
	}
}

func TestExactFlushLandingZeroesFallSpeed(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: groundRow(10, 500)}

	// Landing exactly flush produces no overlap, so only the probe can
	// ground the player. It must also stop the fall.
	p := newTestPlayer()
	p.X, p.Y = 100, 500-p.Height
	p.VY = 5

	col.ResolvePlayerBlocks(p, lvl)

	assert.True(t, p.OnGround)
	assert.Equal(t, 0.0, p.VY, "grounded implies no vertical speed")
}

func TestPipeUsesDoubleFootprint(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	pipe := entity.NewBlock(200, 468, entity.BlockPipe)
	lvl := &entity.Level{Blocks: []*entity.Block{pipe}}

	// standing on the right half of the pipe, past a single tile's width
	p := newTestPlayer()
	p.X, p.Y = 240, 468-p.Height+2
	p.VY = 2

	col.ResolvePlayerBlocks(p, lvl)
	assert.True(t, p.OnGround, "the pipe collider spans two tiles")
	assert.Equal(t, 468-p.Height, p.Y)
}

func TestStompKillsFallingFromAbove(t *testing.T) {
	cfg := config.Default()
	col := NewCollisionSystem(cfg)

	e := entity.NewEnemy(100, 476, entity.EnemyGoomba, 24, 24, 1.0)
	lvl := &entity.Level{Enemies: []*entity.Enemy{e}}

	p := newTestPlayer()
	p.X, p.Y = 100, e.Y-p.Height+4
	p.VY = 6

	fx := col.ResolvePlayerEnemies(p, lvl)
	assert.Equal(t, []int{0}, fx.Stomped)
	assert.False(t, fx.Damaged, "a stomp never also damages")
	assert.Equal(t, cfg.Jump.StompBounce, p.VY, "stomp must bounce the player")
}

func TestSideContactDamagesVulnerablePlayer(t *testing.T) {
	col := NewCollisionSystem(config.Default())

	e := entity.NewEnemy(100, 476, entity.EnemyGoomba, 24, 24, 1.0)
	lvl := &entity.Level{Enemies: []*entity.Enemy{e}}

	p := newTestPlayer()
	p.X, p.Y = 90, 476 // level with the enemy, walking into it
	p.VY = 0

	fx := col.ResolvePlayerEnemies(p, lvl)
	assert.Empty(t, fx.Stomped)
	assert.True(t, fx.Damaged)
}

func TestInvinciblePlayerIgnoresContact(t *testing.T) {
	col := NewCollisionSystem(config.Default())

	e := entity.NewEnemy(100, 476, entity.EnemyGoomba, 24, 24, 1.0)
	lvl := &entity.Level{Enemies: []*entity.Enemy{e}}

	p := newTestPlayer()
	p.X, p.Y = 90, 476
	p.Invincible = 60

	fx := col.ResolvePlayerEnemies(p, lvl)
	assert.False(t, fx.Damaged, "mercy frames must suppress damage")
}

func TestDeadEnemyIsNotTouchable(t *testing.T) {
	col := NewCollisionSystem(config.Default())

	e := entity.NewEnemy(100, 476, entity.EnemyGoomba, 24, 24, 1.0)
	e.Alive = false
	lvl := &entity.Level{Enemies: []*entity.Enemy{e}}

	p := newTestPlayer()
	p.X, p.Y = 100, 476

	fx := col.ResolvePlayerEnemies(p, lvl)
	assert.Empty(t, fx.Stomped)
	assert.False(t, fx.Damaged)
}

func TestCoinCollectionScoresPerCoin(t *testing.T) {
	cfg := config.Default()
	col := NewCollisionSystem(cfg)

	lvl := &entity.Level{Coins: []*entity.Coin{
		entity.NewCoin(100, 300),
		entity.NewCoin(110, 300),
		entity.NewCoin(400, 300), // out of reach
	}}

	p := newTestPlayer()
	p.X, p.Y = 100, 300

	fx := col.CollectCoins(p, lvl)
	assert.Equal(t, []int{0, 1}, fx.Collected)
	assert.Equal(t, 2*cfg.Scoring.Coin, fx.Score)
}

func TestCollectedCoinNotCollectedTwice(t *testing.T) {
	col := NewCollisionSystem(config.Default())

	c := entity.NewCoin(100, 300)
	c.Collected = true
	lvl := &entity.Level{Coins: []*entity.Coin{c}}

	p := newTestPlayer()
	p.X, p.Y = 100, 300

	fx := col.CollectCoins(p, lvl)
	assert.Empty(t, fx.Collected)
}

func TestEnemyLandsOnGround(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: groundRow(10, 500)}

	e := entity.NewEnemy(100, 500-24+3, entity.EnemyGoomba, 24, 24, 1.0)
	e.VY = 4

	col.ResolveEnemyBlocks(e, lvl)
	assert.True(t, e.OnGround)
	assert.Equal(t, 0.0, e.VY)
	assert.Equal(t, 500.0-24, e.Y)
}

func TestEnemySideHitReversesPatrol(t *testing.T) {
	col := NewCollisionSystem(config.Default())
	lvl := &entity.Level{Blocks: []*entity.Block{entity.NewBlock(96, 468, entity.BlockBrick)}}

	e := entity.NewEnemy(96+32-3, 470, entity.EnemyGoomba, 24, 24, 1.0)
	e.VX = -1
	e.VY = 0

	col.ResolveEnemyBlocks(e, lvl)
	assert.Positive(t, e.VX, "wall contact reverses the patrol direction")
	assert.Equal(t, 96.0+32, e.X)
}
