package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termarcade/asteroids/internal/platform/tui"
	"github.com/termarcade/asteroids/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the recorded game results, best first.

Opens an interactive scoreboard in a terminal; prints a plain table when
the output is piped or --plain is given.

Examples:
  asteroids scores
  asteroids scores --plain
  asteroids scores --db ./scores.db`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive view")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Interactive scoreboard when attached to a terminal
	if !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printScores(store)
}

// printScores writes a plain-text results table to stdout.
func printScores(store *storage.Store) {
	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Asteroids")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "Rank", "Score", "Level", "Accuracy", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-9s  %s\n", "----", "-----", "-----", "--------", "----")

	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %7.1f%%  %s\n", i+1, r.Score, r.Level, r.Accuracy, dateStr)
	}

	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games played: %d   Best: %d   Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
