package levelgen

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

// stageFile is the YAML schema for a hand-authored level. Block entries
// may describe a horizontal run via repeat/step instead of one entry
// per tile.
type stageFile struct {
	Name    string       `yaml:"name"`
	Time    int          `yaml:"time"`
	GoalX   float64      `yaml:"goalX"`
	Blocks  []stageBlock `yaml:"blocks"`
	Enemies []stageEnemy `yaml:"enemies"`
	Coins   []stageCoin  `yaml:"coins"`
}

type stageBlock struct {
	Type   string  `yaml:"type"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Repeat int     `yaml:"repeat"`
	Step   float64 `yaml:"step"`
}

type stageEnemy struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type stageCoin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func blockTypeFromString(s string) (entity.BlockType, error) {
	switch s {
	case "ground":
		return entity.BlockGround, nil
	case "brick":
		return entity.BlockBrick, nil
	case "question":
		return entity.BlockQuestion, nil
	case "pipe":
		return entity.BlockPipe, nil
	default:
		return 0, fmt.Errorf("unknown block type %q", s)
	}
}

// ParseStage decodes a YAML stage into a level. Unknown enemy types
// degrade to a goomba-shaped patroller rather than failing the load.
func ParseStage(data []byte, world, level int, entities *config.EntitiesConfig, tileSize float64) (*entity.Level, error) {
	var sf stageFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse stage: %w", err)
	}

	lvl := &entity.Level{
		World:  world,
		Number: level,
		GoalX:  sf.GoalX,
		Time:   sf.Time,
	}

	for _, sb := range sf.Blocks {
		bt, err := blockTypeFromString(sb.Type)
		if err != nil {
			return nil, err
		}
		repeat := sb.Repeat
		if repeat < 1 {
			repeat = 1
		}
		step := sb.Step
		if step == 0 {
			step = tileSize
		}
		for i := 0; i < repeat; i++ {
			lvl.Blocks = append(lvl.Blocks, entity.NewBlock(sb.X+float64(i)*step, sb.Y, bt))
		}
	}

	for _, se := range sf.Enemies {
		ec, ok := entities.Enemies[se.Type]
		if !ok {
			ec = config.EnemyConfig{Width: 24, Height: 24, MoveSpeed: 1.0}
		}
		et := entity.EnemyGoomba
		if se.Type == "koopa" {
			et = entity.EnemyKoopa
		}
		lvl.Enemies = append(lvl.Enemies, entity.NewEnemy(se.X, se.Y, et, ec.Width, ec.Height, ec.MoveSpeed))
	}

	for _, sc := range sf.Coins {
		lvl.Coins = append(lvl.Coins, entity.NewCoin(sc.X, sc.Y))
	}

	return lvl, nil
}
