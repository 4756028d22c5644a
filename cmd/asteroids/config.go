package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/termarcade/asteroids/internal/config"
)

var (
	flagCfgPath       string
	flagCfgDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the active gameplay configuration",
	Long: `Print the gameplay configuration as YAML, after resolution.

Resolution order:
  1. --config <path> if given
  2. ~/.asteroids/configs/asteroids.yaml
  3. ./configs/asteroids.yaml
  4. Built-in defaults

The output can be saved and edited as a starting point for a custom config:
  asteroids config > my-asteroids.yaml
  asteroids play --config my-asteroids.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCfgPath, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagCfgDifficulty, "difficulty", "", "Difficulty preset to apply: easy, normal, hard")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadAsteroids(flagCfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagCfgDifficulty != "" {
		config.ApplyAsteroidsPreset(&cfg, config.DifficultyPreset(flagCfgDifficulty))
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}

	os.Stdout.Write(out)
}
