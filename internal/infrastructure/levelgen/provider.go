package levelgen

import (
	"embed"
	"fmt"

	"github.com/younwookim/mf/internal/domain/entity"
	"github.com/younwookim/mf/internal/infrastructure/config"
)

//go:embed levels/*.yaml
var stagesFS embed.FS

// Provider serves levels: hand-authored YAML stages when one exists for
// the world/level pair, procedural generation otherwise. Generation is
// deterministic per (seed, world, level), so restarting a level yields
// the same layout and replays stay reproducible.
type Provider struct {
	cfg  *config.GameConfig
	seed int64
}

func NewProvider(cfg *config.GameConfig, seed int64) *Provider {
	return &Provider{cfg: cfg, seed: seed}
}

func (p *Provider) Build(world, level int) (*entity.Level, error) {
	name := fmt.Sprintf("levels/world%d-%d.yaml", world, level)
	if data, err := stagesFS.ReadFile(name); err == nil {
		return ParseStage(data, world, level, p.cfg.Entities, float64(p.cfg.Physics.Display.TileSize))
	}

	g := newGenerator(p.cfg, p.seed^int64(world*31+level))
	return g.generate(world, level), nil
}
