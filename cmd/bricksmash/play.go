package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bricksmash/bricksmash/internal/audio"
	"github.com/bricksmash/bricksmash/internal/core"
	"github.com/bricksmash/bricksmash/internal/platform/tui"
	"github.com/bricksmash/bricksmash/internal/sim"
	"github.com/bricksmash/bricksmash/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/Left     - Move paddle left
  D/Right    - Move paddle right
  1          - Pause
  2          - Resume
  R          - Restart with a fresh seed
  Q/Ctrl+C   - Quit

Examples:
  bricksmash play
  bricksmash play --config ./my-tuning.yaml
  bricksmash play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sim.SetConfigPath(flagConfig)
	game := sim.New()

	if flagMute {
		game.SetAudio(audio.NopSink())
	} else {
		player := audio.NewPlayer()
		player.Init()
		defer player.Close()
		game.SetAudio(player.Sink())
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
