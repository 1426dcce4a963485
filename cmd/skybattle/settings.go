package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sky-battle/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key value]",
	Short: "Show or change saved settings",
	Long: `Without arguments, print the saved settings. With a key and a value,
change one setting and save it.

Keys:
  sound       - on or off
  volume      - 0.0 to 1.0
  difficulty  - easy, normal, hard or fixed

Examples:
  skybattle settings
  skybattle settings sound off
  skybattle settings volume 0.4
  skybattle settings difficulty hard`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or a key and a value, got %d", len(args))
		}
		return nil
	},
	RunE: runSettings,
}

func runSettings(_ *cobra.Command, args []string) error {
	logger, err := newLogger("skybattle")
	if err != nil {
		return err
	}
	m := openSettings(logger)

	if len(args) == 2 {
		key, value := strings.ToLower(args[0]), strings.ToLower(args[1])
		switch key {
		case "sound":
			on, err := parseSwitch(value)
			if err != nil {
				return err
			}
			m.SetSoundEnabled(on)
		case "volume":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return fmt.Errorf("invalid volume %q: %w", value, err)
			}
			m.SetVolume(v)
		case "difficulty":
			if err := m.SetDifficulty(config.DifficultyPreset(value)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown setting %q (want sound, volume or difficulty)", key)
		}
		if !m.Persistent() {
			return fmt.Errorf("settings storage is unavailable")
		}
		if err := m.Save(); err != nil {
			return err
		}
	}

	s := m.Get()
	sound := "off"
	if s.SoundEnabled {
		sound = "on"
	}
	fmt.Printf("sound       %s\n", sound)
	fmt.Printf("volume      %.1f\n", s.Volume)
	fmt.Printf("difficulty  %s\n", s.Difficulty)
	return nil
}

func parseSwitch(v string) (bool, error) {
	switch v {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid switch %q (want on or off)", v)
	}
}
