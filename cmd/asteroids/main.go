// asteroids is a terminal rendition of the classic space shooter: steer a
// ship, blast drifting rocks into ever-smaller fragments, and chase the
// high score table.
//
// Usage:
//
//	asteroids play           - Play in the current terminal
//	asteroids scores         - Show the high score table
//	asteroids serve          - Start SSH server for remote play
//	asteroids config         - Print the active gameplay configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.asteroids/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - Classic space shooter in your terminal",
	Long: `Asteroids is a terminal-based rendition of the classic space shooter.
Steer your ship, destroy asteroids before they hit you, and watch them
split into smaller, faster fragments.

Available commands:
  play     - Play in the current terminal
  scores   - View the high score table
  serve    - Start SSH server for remote play
  config   - Print the active gameplay configuration

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids serve --ssh :2222
  asteroids scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
