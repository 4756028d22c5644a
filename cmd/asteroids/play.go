package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termarcade/asteroids/internal/core"
	"github.com/termarcade/asteroids/internal/games/asteroids"
	"github.com/termarcade/asteroids/internal/platform/tui"
	"github.com/termarcade/asteroids/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play asteroids",
	Long: `Start a game in the current terminal.

Controls:
  W/Up       - Thrust
  S/Down     - Reverse thrust
  A/Left     - Turn left
  D/Right    - Turn right
  Space      - Shoot
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More lives, slower and rarer asteroids
  normal - Default balance
  hard   - Fewer lives, faster and denser asteroids

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --seed 42
  asteroids play --config ./my-asteroids.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
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

	// Set config path and difficulty before the game is created
	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)

	game := asteroids.New()

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
