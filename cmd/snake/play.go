package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arena/internal/audio"
	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/platform/tui"
	"github.com/vovakirdan/snake-arena/internal/registry"
)

var (
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play the arena",
	Long: `Start the arena in the given front-end (default: tui).

Controls:
  Arrows/WASD/HJKL  - Move
  P/Space           - Pause
  T                 - Toggle wall collision
  1-4               - Pick difficulty (menu and game over)
  Enter             - Start / play again
  R                 - Restart after game over
  B/Esc             - Back to menu
  Q/Ctrl+C          - Quit

Difficulties:
  easy     - 300ms ticks, screen wrap
  medium   - 200ms ticks, screen wrap
  hard     - 100ms ticks, walls kill
  extreme  - 50ms ticks, walls kill

Examples:
  snake play
  snake play raw
  snake play --difficulty hard
  snake play --sound --volume 0.3
  snake play --config ./my-arena.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu: easy, medium, hard, extreme or 1-4")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
}

func runPlay(cmd *cobra.Command, args []string) error {
	id := tui.ID
	if len(args) > 0 {
		id = args[0]
	}

	frontend, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("%w\nRun 'snake list' to see available front-ends", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logger, closeLog := newLogger("snake", true)
	defer closeLog()

	env, store, err := buildEnv(logger, width, height)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if flagDifficulty != "" {
		d, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		env.Start = &d
	}

	if flagSound {
		player := audio.NewPlayer(flagVolume, logger)
		if err := player.Init(); err == nil {
			defer player.Close()
			env.Listeners = append(env.Listeners, player)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", id, "seed", env.Runtime.Seed, "store", flagStore)
	if err := frontend.Run(ctx, env); err != nil {
		return fmt.Errorf("running %s: %w", id, err)
	}
	return nil
}
