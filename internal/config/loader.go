package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name searched for on disk.
const FileName = "skybattle.yaml"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.skybattle/configs/skybattle.yaml -> ./configs/skybattle.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", FileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile reads an optional config file. Unreadable or invalid files are skipped.
func tryFile(path string) (Config, bool) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skybattle", "configs", filename)
}

// Validate checks level references and value ranges. It runs once at load,
// runtime values are never re-validated by the engine.
func (c Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("%w: world size must be positive", ErrInvalid)
	}
	if c.World.TickMillis <= 0 {
		return fmt.Errorf("%w: tick_ms must be positive", ErrInvalid)
	}
	if c.World.EnemyMaxY() < 0 {
		return fmt.Errorf("%w: enemy_y_margin exceeds world height", ErrInvalid)
	}
	if c.Boss.MovesPerCycle <= 0 || c.Boss.MaxFramesWithSameMove <= 0 {
		return fmt.Errorf("%w: boss movement pattern must be non-empty", ErrInvalid)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("%w: no levels defined", ErrInvalid)
	}

	ids := make(map[string]bool, len(c.Levels))
	for _, l := range c.Levels {
		if l.ID == "" {
			return fmt.Errorf("%w: level without id", ErrInvalid)
		}
		if ids[l.ID] {
			return fmt.Errorf("%w: duplicate level %q", ErrInvalid, l.ID)
		}
		ids[l.ID] = true
	}

	for _, l := range c.Levels {
		switch l.Kind {
		case KindWave:
			if _, ok := c.Enemies[l.Enemy]; !ok {
				return fmt.Errorf("%w: level %q uses unknown enemy %q", ErrInvalid, l.ID, l.Enemy)
			}
			if l.TotalEnemies <= 0 || l.KillTarget <= 0 {
				return fmt.Errorf("%w: level %q needs total_enemies and kill_target", ErrInvalid, l.ID)
			}
			if l.SpawnProbability < 0 || l.SpawnProbability > 1 {
				return fmt.Errorf("%w: level %q spawn_probability out of [0, 1]", ErrInvalid, l.ID)
			}
		case KindBoss:
		default:
			return fmt.Errorf("%w: level %q has unknown kind %q", ErrInvalid, l.ID, l.Kind)
		}
		if l.PlayerHealth <= 0 {
			return fmt.Errorf("%w: level %q player_health must be positive", ErrInvalid, l.ID)
		}
		if l.Next != "" && !ids[l.Next] {
			return fmt.Errorf("%w: level %q points to unknown next level %q", ErrInvalid, l.ID, l.Next)
		}
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Levels may share a backing array with the caller's config.
	cfg.Levels = slices.Clone(cfg.Levels)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		for i := range cfg.Levels {
			cfg.Levels[i].PlayerHealth += 2
			cfg.Levels[i].SpawnProbability *= 0.75
		}
	case DifficultyHard:
		for i := range cfg.Levels {
			cfg.Levels[i].PlayerHealth = max(1, cfg.Levels[i].PlayerHealth-1)
			cfg.Levels[i].SpawnProbability = min(1, cfg.Levels[i].SpawnProbability*1.5)
		}
		cfg.Boss.ShieldProbability *= 2
	}
}
