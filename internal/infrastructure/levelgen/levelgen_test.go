package levelgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

func testGameConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics:  config.Default(),
		Entities: config.DefaultEntities(),
	}
}

func TestParseStageExpandsRepeats(t *testing.T) {
	data := []byte(`
name: test
time: 300
goalX: 640
blocks:
  - {type: ground, x: 0, y: 500, repeat: 10}
  - {type: question, x: 96, y: 400}
enemies:
  - {type: goomba, x: 200, y: 476}
coins:
  - {x: 100, y: 380}
`)
	lvl, err := ParseStage(data, 1, 1, config.DefaultEntities(), 32)
	require.NoError(t, err)

	assert.Len(t, lvl.Blocks, 11)
	assert.Equal(t, 300, lvl.Time)
	assert.Equal(t, 640.0, lvl.GoalX)
	assert.Equal(t, 32.0, lvl.Blocks[1].X, "repeat steps by tile size")
	assert.Equal(t, entity.BlockQuestion, lvl.Blocks[10].Type)
	require.Len(t, lvl.Enemies, 1)
	assert.Equal(t, entity.EnemyGoomba, lvl.Enemies[0].Type)
	assert.Len(t, lvl.Coins, 1)
}

func TestParseStageRejectsUnknownBlockType(t *testing.T) {
	data := []byte(`
blocks:
  - {type: lava, x: 0, y: 500}
`)
	_, err := ParseStage(data, 1, 1, config.DefaultEntities(), 32)
	assert.Error(t, err)
}

func TestParseStageUnknownEnemyFallsBack(t *testing.T) {
	data := []byte(`
enemies:
  - {type: spiny, x: 200, y: 476}
`)
	lvl, err := ParseStage(data, 1, 1, config.DefaultEntities(), 32)
	require.NoError(t, err)
	require.Len(t, lvl.Enemies, 1)
	assert.Equal(t, entity.EnemyGoomba, lvl.Enemies[0].Type)
	assert.Equal(t, 24.0, lvl.Enemies[0].Width)
}

func TestProviderServesAuthoredStage(t *testing.T) {
	p := NewProvider(testGameConfig(), 42)

	lvl, err := p.Build(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 6080.0, lvl.GoalX)
	assert.NotEmpty(t, lvl.Blocks)
	assert.NotEmpty(t, lvl.Enemies)
}

func TestProviderGeneratesMissingStages(t *testing.T) {
	p := NewProvider(testGameConfig(), 42)

	lvl, err := p.Build(3, 2)
	require.NoError(t, err)
	assert.NotEmpty(t, lvl.Blocks)
	assert.NotEmpty(t, lvl.Enemies)
	assert.NotEmpty(t, lvl.Coins)
	assert.Equal(t, 400, lvl.Time)
	assert.Positive(t, lvl.GoalX)
}

func TestGeneratedStageIsDeterministicPerSeed(t *testing.T) {
	a := NewProvider(testGameConfig(), 7)
	b := NewProvider(testGameConfig(), 7)

	la, err := a.Build(2, 3)
	require.NoError(t, err)
	lb, err := b.Build(2, 3)
	require.NoError(t, err)

	require.Equal(t, len(la.Blocks), len(lb.Blocks))
	for i := range la.Blocks {
		assert.Equal(t, la.Blocks[i].X, lb.Blocks[i].X)
		assert.Equal(t, la.Blocks[i].Y, lb.Blocks[i].Y)
		assert.Equal(t, la.Blocks[i].Type, lb.Blocks[i].Type)
	}
	require.Equal(t, len(la.Enemies), len(lb.Enemies))
	for i := range la.Enemies {
		assert.Equal(t, la.Enemies[i].X, lb.Enemies[i].X)
		assert.Equal(t, la.Enemies[i].Type, lb.Enemies[i].Type)
	}
}

func TestRebuildingSameLevelIsStable(t *testing.T) {
	p := NewProvider(testGameConfig(), 7)

	la, err := p.Build(4, 1)
	require.NoError(t, err)
	lb, err := p.Build(4, 1)
	require.NoError(t, err)

	require.Equal(t, len(la.Blocks), len(lb.Blocks))
	assert.Equal(t, la.GoalX, lb.GoalX)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := NewProvider(testGameConfig(), 1)
	b := NewProvider(testGameConfig(), 2)

	la, err := a.Build(5, 2)
	require.NoError(t, err)
	lb, err := b.Build(5, 2)
	require.NoError(t, err)

	same := len(la.Blocks) == len(lb.Blocks)
	if same {
		for i := range la.Blocks {
			if la.Blocks[i].X != lb.Blocks[i].X || la.Blocks[i].Y != lb.Blocks[i].Y {
				same = false
				break
			}
		}
	}
	assert.False(t, same, "different seeds should produce different layouts")
}

func TestGeneratedGoalIsReachableBeforeLevelEnd(t *testing.T) {
	p := NewProvider(testGameConfig(), 99)
	ts := 32.0

	lvl, err := p.Build(6, 3)
	require.NoError(t, err)

	var maxX float64
	for _, b := range lvl.Blocks {
		if b.X > maxX {
			maxX = b.X
		}
	}
	assert.Less(t, lvl.GoalX, maxX+ts, "goal sits within the built level")
}
