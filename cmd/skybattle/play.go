package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/campaign"
	"github.com/vovakirdan/sky-battle/internal/level"
	"github.com/vovakirdan/sky-battle/internal/platform/tui"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Fly the campaign",
	Long: `Start the campaign, optionally from a later level.

Controls:
  Arrows/WASD  - Fly
  Space        - Fire
  P/Esc        - Pause menu (resume, restart level, main menu)
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Extra hearts, fewer enemies, slow fire-rate ramp
  normal - Start at 30% difficulty, progresses to max
  hard   - One heart less, more enemies, the boss shields more often
  fixed  - No progression, plays the config as written

Examples:
  skybattle play
  skybattle play two
  skybattle play --difficulty hard
  skybattle play --config ./my-levels.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	var start level.ID
	if len(args) == 1 {
		id, err := level.ParseID(args[0])
		if err != nil {
			return fmt.Errorf("%w (run 'skybattle levels' to list them)", err)
		}
		start = id
	}

	logger, err := newLogger("skybattle")
	if err != nil {
		return err
	}
	env, cleanup, err := localEnv(logger, !flagMute)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, ok := env.Config.Level(start.String()); !ok {
		return fmt.Errorf("level %s is not in the configuration", start)
	}
	env.Options = append(env.Options, campaign.WithStartLevel(start))

	if err := tui.Run(env.NewCampaign(), env.Store, env.Runtime, env.ModelOptions()...); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
