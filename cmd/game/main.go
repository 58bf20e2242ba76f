// game is a side-scrolling platformer.
//
// Usage:
//
//	game                     - Play from the menu
//	game replay <file>       - Play back a recorded session
//
// Global flags:
//
//	--seed <value>   - RNG seed for level generation (0 = time-based)
//	--scale <n>      - Window scale factor
//	--mute           - Disable audio
//	--config <dir>   - Load configs from a directory instead of the embedded ones
//	--watch          - Hot-reload configs on change (requires --config)
//	--record <file>  - Record inputs for later replay
package main

import (
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/mf/internal/application/game"
	"github.com/younwookim/mf/internal/application/scene/playing"
	"github.com/younwookim/mf/internal/infrastructure/config"
	"github.com/younwookim/mf/internal/infrastructure/levelgen"
)

var (
	flagSeed      int64
	flagScale     int
	flagMute      bool
	flagConfigDir string
	flagWatch     bool
	flagRecord    string
)

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "A side-scrolling platformer",
	Long: `A side-scrolling platformer: run, jump, stomp enemies and clear
eight worlds of four levels each.

Controls:
  Arrow keys / A,D - Move
  Space            - Jump / confirm
  Shift            - Run
  Esc              - Back to menu

Examples:
  game
  game --seed 42 --scale 2
  game --record run.json
  game replay run.json`,
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for level generation (0 = time-based)")
	rootCmd.PersistentFlags().IntVar(&flagScale, "scale", 1, "Window scale factor")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Hot-reload configs on change (requires --config)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to this file")

	rootCmd.AddCommand(replayCmd)
}

func main() {
	log.SetReportTimestamp(true)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (*config.GameConfig, error) {
	if flagConfigDir != "" {
		return config.NewLoader(flagConfigDir).LoadAll()
	}
	sub, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(sub).LoadAll()
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", "seed", seed, "scale", flagScale)

	var reloads <-chan *config.GameConfig
	if flagWatch {
		if flagConfigDir == "" {
			return fmt.Errorf("--watch requires --config")
		}
		ch, stop, err := watchConfigs(flagConfigDir)
		if err != nil {
			return fmt.Errorf("watch configs: %w", err)
		}
		defer stop()
		reloads = ch
	}

	provider := levelgen.NewProvider(cfg, seed)
	sc := playing.New(cfg, provider, playing.Options{
		Seed:          seed,
		Muted:         flagMute,
		RecordPath:    flagRecord,
		ConfigReloads: reloads,
	})

	return run(cfg, sc)
}

func run(cfg *config.GameConfig, sc *playing.Playing) error {
	w := cfg.Physics.Display.ScreenWidth
	h := cfg.Physics.Display.ScreenHeight

	ebiten.SetWindowSize(w*flagScale, h*flagScale)
	ebiten.SetWindowTitle("Super Plumber")
	ebiten.SetTPS(cfg.Physics.Display.Framerate)

	return ebiten.RunGame(game.New(sc, w, h))
}

// watchConfigs loads fresh configs when the files change and hands them
// to the game loop over a channel. This goroutine never touches the
// live config; the scene applies updates between ticks.
func watchConfigs(dir string) (<-chan *config.GameConfig, func(), error) {
	watcher, err := config.NewWatcher(dir)
	if err != nil {
		return nil, nil, err
	}

	loader := config.NewLoader(dir)
	reloads := make(chan *config.GameConfig, 1)
	go func() {
		for {
			select {
			case path, ok := <-watcher.Events:
				if !ok {
					return
				}
				fresh, err := loader.LoadAll()
				if err != nil {
					log.Error("config reload failed", "path", path, "err", err)
					continue
				}
				// Replace any stale queued config; only this
				// goroutine sends, so the re-send cannot block.
				select {
				case <-reloads:
				default:
				}
				reloads <- fresh
				log.Info("config change queued", "path", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("config watcher", "err", err)
			}
		}
	}()

	return reloads, func() { _ = watcher.Close() }, nil
}
