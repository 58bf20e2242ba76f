package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display"`
	Physics  PhysicsSettings `json:"physics"`
	Movement MovementConfig  `json:"movement"`
	Jump     JumpConfig      `json:"jump"`
	Combat   CombatConfig    `json:"combat"`
	Camera   CameraConfig    `json:"camera"`
	Rules    RulesConfig     `json:"rules"`
	Scoring  ScoringConfig   `json:"scoring"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
	TileSize     int `json:"tileSize"`
}

type PhysicsSettings struct {
	Gravity          float64 `json:"gravity"`
	TerminalVelocity float64 `json:"terminalVelocity"`
}

type MovementConfig struct {
	WalkSpeed      float64 `json:"walkSpeed"`
	RunSpeed       float64 `json:"runSpeed"`
	Acceleration   float64 `json:"acceleration"`
	Deceleration   float64 `json:"deceleration"`
	AirResistance  float64 `json:"airResistance"`
	AirControl     float64 `json:"airControl"`
	SlideThreshold float64 `json:"slideThreshold"`
}

type JumpConfig struct {
	// Power is the initial vertical velocity; negative is upward.
	Power                  float64 `json:"power"`
	ExtensionTime          int     `json:"extensionTime"`
	ExtensionGravityFactor float64 `json:"extensionGravityFactor"`
	StompBounce            float64 `json:"stompBounce"`
}

type CombatConfig struct {
	HurtInvincibilityFrames int `json:"hurtInvincibilityFrames"`
}

type CameraConfig struct {
	Lerp float64 `json:"lerp"`
}

type RulesConfig struct {
	LevelTime    int `json:"levelTime"`
	DeathMargin  int `json:"deathMargin"`
	CoinsPerLife int `json:"coinsPerLife"`
	StartLives   int `json:"startLives"`
}

type ScoringConfig struct {
	QuestionBlock int `json:"questionBlock"`
	Brick         int `json:"brick"`
	Coin          int `json:"coin"`
	Stomp         int `json:"stomp"`
}

// Default returns the stock tuning. The embedded physics.json carries the
// same values; this is what tests and the loader fall back on.
func Default() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			Scale:        1,
			Framerate:    60,
			TileSize:     32,
		},
		Physics: PhysicsSettings{
			Gravity:          0.75,
			TerminalVelocity: 12.0,
		},
		Movement: MovementConfig{
			WalkSpeed:      5.0,
			RunSpeed:       7.5,
			Acceleration:   0.3,
			Deceleration:   0.85,
			AirResistance:  0.95,
			AirControl:     0.1,
			SlideThreshold: 3.0,
		},
		Jump: JumpConfig{
			Power:                  -15.0,
			ExtensionTime:          12,
			ExtensionGravityFactor: 0.5,
			StompBounce:            -10.0,
		},
		Combat: CombatConfig{
			HurtInvincibilityFrames: 120,
		},
		Camera: CameraConfig{
			Lerp: 0.08,
		},
		Rules: RulesConfig{
			LevelTime:    400,
			DeathMargin:  100,
			CoinsPerLife: 100,
			StartLives:   3,
		},
		Scoring: ScoringConfig{
			QuestionBlock: 200,
			Brick:         50,
			Coin:          10,
			Stomp:         100,
		},
	}
}
