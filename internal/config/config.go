// Package config provides YAML-based configuration loading and difficulty
// management for Sky Battle. All world values are in world units (the default
// playfield is 1300x750); the renderer scales them onto the terminal.
package config

// Config contains the complete game configuration.
type Config struct {
	World       WorldConfig            `yaml:"world"`
	Player      PlayerConfig           `yaml:"player"`
	Enemies     map[string]EnemyConfig `yaml:"enemies"`
	Boss        BossConfig             `yaml:"boss"`
	Projectiles ProjectileSet          `yaml:"projectiles"`
	Levels      []LevelConfig          `yaml:"levels"`
	Difficulty  DifficultyConfig       `yaml:"difficulty"`
}

// WorldConfig defines the playfield and the simulation clock.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	EnemyYMargin float64 `yaml:"enemy_y_margin"` // Enemies spawn in [0, Height-EnemyYMargin]
	TickMillis   int     `yaml:"tick_ms"`        // Fixed tick interval
}

// EnemyMaxY returns the largest vertical spawn position for wave enemies.
func (w WorldConfig) EnemyMaxY() float64 {
	return w.Height - w.EnemyYMargin
}

// Size is a sprite size in world units.
type Size struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Offset is a spawn offset relative to an actor's current position.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig defines the player aircraft.
type PlayerConfig struct {
	X                float64 `yaml:"x"`
	Y                float64 `yaml:"y"`
	Size             Size    `yaml:"size"`
	Speed            float64 `yaml:"speed"`
	MinX             float64 `yaml:"min_x"`
	MaxX             float64 `yaml:"max_x"`
	MinY             float64 `yaml:"min_y"`
	MaxY             float64 `yaml:"max_y"`
	ProjectileOffset Offset  `yaml:"projectile_offset"`
}

// EnemyConfig defines one enemy aircraft type.
type EnemyConfig struct {
	Health           int     `yaml:"health"`
	Velocity         float64 `yaml:"velocity"` // Horizontal, negative = towards the player
	FireRate         float64 `yaml:"fire_rate"`
	Size             Size    `yaml:"size"`
	ProjectileOffset Offset  `yaml:"projectile_offset"`
}

// BossConfig defines the boss aircraft and its behavior constants.
type BossConfig struct {
	X                     float64 `yaml:"x"`
	Y                     float64 `yaml:"y"`
	Size                  Size    `yaml:"size"`
	Health                int     `yaml:"health"`
	FireRate              float64 `yaml:"fire_rate"`
	ShieldProbability     float64 `yaml:"shield_probability"`
	MaxShieldFrames       int     `yaml:"max_shield_frames"`
	VerticalSpeed         float64 `yaml:"vertical_speed"`
	MovesPerCycle         int     `yaml:"moves_per_cycle"`
	MaxFramesWithSameMove int     `yaml:"max_frames_with_same_move"`
	MinY                  float64 `yaml:"min_y"`
	MaxY                  float64 `yaml:"max_y"`
	ProjectileOffset      Offset  `yaml:"projectile_offset"`
}

// ProjectileConfig defines a projectile type.
type ProjectileConfig struct {
	Velocity float64 `yaml:"velocity"`
	Size     Size    `yaml:"size"`
}

// ProjectileSet groups the three projectile types.
type ProjectileSet struct {
	User  ProjectileConfig `yaml:"user"`
	Enemy ProjectileConfig `yaml:"enemy"`
	Boss  ProjectileConfig `yaml:"boss"`
}

// Level kinds.
const (
	KindWave = "wave"
	KindBoss = "boss"
)

// LevelConfig defines the constants of one level.
type LevelConfig struct {
	ID               string  `yaml:"id"`
	Name             string  `yaml:"name"`
	Background       string  `yaml:"background"`
	Kind             string  `yaml:"kind"`  // "wave" or "boss"
	Enemy            string  `yaml:"enemy"` // Key into Config.Enemies (wave levels)
	TotalEnemies     int     `yaml:"total_enemies"`
	KillTarget       int     `yaml:"kill_target"`
	SpawnProbability float64 `yaml:"spawn_probability"`
	PlayerHealth     int     `yaml:"player_health"`
	Next             string  `yaml:"next"` // Empty for the final level
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Kills/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FireRateMultiplier float64 `yaml:"fire_rate_multiplier"` // Added to enemy fire rate at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Level returns the level definition with the given ID.
func (c Config) Level(id string) (LevelConfig, bool) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, true
		}
	}
	return LevelConfig{}, false
}
