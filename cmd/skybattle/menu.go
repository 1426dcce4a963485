package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start Sky Battle in interactive menu mode.

The menu offers the campaign, the high score table, a controls page and
settings (sound, volume, difficulty). After a run ends you return to the
menu to fly again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change a setting
  Enter/Space  - Select
  B/Esc        - Back
  Q            - Quit

Examples:
  skybattle menu
  skybattle menu --difficulty easy
  skybattle menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("skybattle")
	if err != nil {
		return err
	}
	env, cleanup, err := localEnv(logger, !flagMute)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := tui.RunSession(env); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
