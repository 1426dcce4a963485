package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/sim"
)

var (
	flagSimTicks    int
	flagSimFire     int
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the campaign headless with an autopilot",
	Long: `Play the campaign without a terminal. An autopilot flies the plane,
tracking the nearest enemy and firing on a fixed cadence. Level events are
logged at debug level.

Examples:
  skybattle sim --seed 42
  skybattle sim --log-level debug --ticks 5000
  skybattle sim --realtime --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 200000, "Stop after this many ticks (0 = until the campaign ends)")
	simCmd.Flags().IntVar(&flagSimFire, "fire-every", 3, "Autopilot fire cadence in ticks")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Tick at the configured rate instead of as fast as possible")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("skybattle-sim")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	preset, err := difficultyFlag()
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}
	config.ApplyPreset(&cfg, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := campaign.New(cfg, campaign.WithSinks(campaign.NewLogSink(logger)))
	opts := sim.Options{
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1000 / cfg.World.TickMillis, Seed: seed},
		MaxTicks:  flagSimTicks,
		FireEvery: flagSimFire,
		Logger:    logger,
	}
	if flagSimRealtime {
		opts.Interval = c.TickInterval()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "seed", seed, "difficulty", preset)
	res, err := sim.Run(ctx, c, opts)
	switch {
	case err == nil:
	case errors.Is(err, sim.ErrTickLimit), errors.Is(err, context.Canceled):
		logger.Warn("simulation stopped early", "reason", err)
	default:
		return err
	}

	result := "shot down"
	if res.Summary.Won {
		result = "victory"
	}
	fmt.Printf("Seed:           %d\n", seed)
	fmt.Printf("Result:         %s\n", result)
	fmt.Printf("Score:          %d\n", res.Summary.Score)
	fmt.Printf("Reached:        %s\n", res.Summary.Reached)
	fmt.Printf("Levels cleared: %d\n", res.Summary.LevelsCleared)
	fmt.Printf("Ticks:          %d (%d steps in %s)\n", res.Summary.Ticks, res.Steps, res.Elapsed.Round(time.Millisecond))
	return nil
}
