package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPhysicsJSON = []byte(`{
  "display": {"screenWidth": 800, "screenHeight": 600, "scale": 1, "framerate": 60, "tileSize": 32},
  "physics": {"gravity": 0.75, "terminalVelocity": 12.0},
  "movement": {"walkSpeed": 5.0, "runSpeed": 7.5, "acceleration": 0.3, "deceleration": 0.85, "airResistance": 0.95, "airControl": 0.1, "slideThreshold": 3.0},
  "jump": {"power": -15.0, "extensionTime": 12, "extensionGravityFactor": 0.5, "stompBounce": -10.0},
  "combat": {"hurtInvincibilityFrames": 120},
  "camera": {"lerp": 0.08},
  "rules": {"levelTime": 400, "deathMargin": 100, "coinsPerLife": 100, "startLives": 3},
  "scoring": {"questionBlock": 200, "brick": 50, "coin": 10, "stomp": 100}
}`)

var testEntitiesJSON = []byte(`{
  "player": {"width": 24, "height": 32, "spawnX": 100, "spawnY": 300},
  "enemies": {
    "goomba": {"width": 24, "height": 24, "moveSpeed": 1.0},
    "koopa": {"width": 24, "height": 24, "moveSpeed": 1.0}
  }
}`)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"physics.json":  {Data: testPhysicsJSON},
		"entities.json": {Data: testEntitiesJSON},
	}
}

func TestLoadPhysics(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadPhysics()
	require.NoError(t, err)

	assert.Equal(t, 0.75, cfg.Physics.Gravity)
	assert.Equal(t, -15.0, cfg.Jump.Power)
	assert.Equal(t, 12, cfg.Jump.ExtensionTime)
	assert.Equal(t, 100, cfg.Rules.CoinsPerLife)
	assert.Equal(t, 32, cfg.Display.TileSize)
}

func TestLoadEntities(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadEntities()
	require.NoError(t, err)

	assert.Equal(t, 24.0, cfg.Player.Width)
	assert.Equal(t, 300.0, cfg.Player.SpawnY)
	require.Contains(t, cfg.Enemies, "koopa")
	assert.Equal(t, 1.0, cfg.Enemies["koopa"].MoveSpeed)
}

func TestLoadAll(t *testing.T) {
	loader := NewFSLoader(testFS())

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.NotNil(t, cfg.Physics)
	assert.NotNil(t, cfg.Entities)
}

func TestLoadPhysicsMissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{})

	_, err := loader.LoadPhysics()
	assert.Error(t, err)
}

func TestLoadPhysicsMalformed(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{
		"physics.json": {Data: []byte(`{"display": nope}`)},
	})

	_, err := loader.LoadPhysics()
	assert.Error(t, err)
}

func TestDefaultMatchesEmbeddedValues(t *testing.T) {
	loader := NewFSLoader(testFS())

	loaded, err := loader.LoadPhysics()
	require.NoError(t, err)
	assert.Equal(t, Default(), loaded, "Default() must track the shipped physics.json")
}

func TestIsConfigFile(t *testing.T) {
	assert.True(t, isConfigFile("physics.json"))
	assert.True(t, isConfigFile("dir/entities.json"))
	assert.False(t, isConfigFile("notes.txt"))
	assert.False(t, isConfigFile("physics.json.bak"))
}
