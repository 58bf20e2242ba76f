package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player  PlayerConfig           `json:"player"`
	Enemies map[string]EnemyConfig `json:"enemies"`
}

type PlayerConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	SpawnX float64 `json:"spawnX"`
	SpawnY float64 `json:"spawnY"`
}

type EnemyConfig struct {
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	MoveSpeed float64 `json:"moveSpeed"`
}

// DefaultEntities mirrors the embedded entities.json.
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{
			Width:  24,
			Height: 32,
			SpawnX: 100,
			SpawnY: 300,
		},
		Enemies: map[string]EnemyConfig{
			"goomba": {Width: 24, Height: 24, MoveSpeed: 1.0},
			"koopa":  {Width: 24, Height: 24, MoveSpeed: 1.0},
		},
	}
}
