package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/mf/internal/application/replay"
	"github.com/younwookim/mf/internal/application/scene/playing"
	"github.com/younwookim/mf/internal/infrastructure/levelgen"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded session",
	Long: `Play back a previously recorded session. The recording's seed is
used for level generation, so the playback meets the same layouts the
original run did.

Examples:
  game replay run.json
  game replay run.json --scale 2 --mute`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		return fmt.Errorf("load replay: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Info("replaying", "file", args[0], "frames", len(data.Frames), "seed", data.Seed)

	provider := levelgen.NewProvider(cfg, data.Seed)
	sc := playing.New(cfg, provider, playing.Options{
		Seed:     data.Seed,
		Muted:    flagMute,
		Replayer: replay.NewReplayer(*data),
	})

	return run(cfg, sc)
}
