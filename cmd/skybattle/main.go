// skybattle is a side-scrolling aerial shooter for the terminal.
//
// Usage:
//
//	skybattle play [level]   - Fly the campaign
//	skybattle menu           - Start the main menu
//	skybattle serve          - Start SSH server for remote play
//	skybattle scores         - Show high scores
//	skybattle levels         - List the configured levels
//	skybattle sim            - Run the campaign headless with an autopilot
//	skybattle settings       - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate (default: from config)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skybattle/scores.db)
//	--config <path>       - Use a custom YAML config
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skybattle",
	Short: "Sky Battle - an aerial shooter in your terminal",
	Long: `Sky Battle is a side-scrolling aerial shooter. Fly through four levels,
shoot down the enemy waves, beat the shielded boss and keep the enemy from
getting past you.

Available commands:
  play      - Fly the campaign directly
  menu      - Main menu with scores, controls and settings
  serve     - Start SSH server for remote play
  scores    - View high scores
  levels    - List the configured levels
  sim       - Run the campaign headless with an autopilot
  settings  - Show or change saved settings

Examples:
  skybattle play
  skybattle play three --difficulty hard
  skybattle menu
  skybattle serve --ssh :2222
  skybattle sim --seed 42 --log-level debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the config's tick_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skybattle/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed (default: saved setting)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(settingsCmd)
}

// newLogger creates the CLI logger at the level given by --log-level.
func newLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// difficultyFlag parses --difficulty. An empty flag returns "".
func difficultyFlag() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// loadConfig loads the game configuration and applies --fps.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.World.TickMillis = max(1, 1000/flagFPS)
	}
	return cfg, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: 1000 / max(1, cfg.World.TickMillis),
		Seed:     flagSeed,
	}
}
