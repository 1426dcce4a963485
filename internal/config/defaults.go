package config

import (
	_ "embed"
)

//go:embed defaults/skybattle.yaml
var defaultYAML []byte

// Enemy type keys used by the default level table.
const (
	EnemyFighter = "fighter"
	EnemyHeavy   = "heavy"
)

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/skybattle.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			Width:        1300,
			Height:       750,
			EnemyYMargin: 150,
			TickMillis:   50,
		},
		Player: PlayerConfig{
			X:                5,
			Y:                300,
			Size:             Size{W: 120, H: 40},
			Speed:            8,
			MinX:             0,
			MaxX:             1000,
			MinY:             0,
			MaxY:             690,
			ProjectileOffset: Offset{X: 128, Y: 20},
		},
		Enemies: map[string]EnemyConfig{
			EnemyFighter: {
				Health:           1,
				Velocity:         -6,
				FireRate:         0.01,
				Size:             Size{W: 100, H: 40},
				ProjectileOffset: Offset{X: -100, Y: 20},
			},
			EnemyHeavy: {
				Health:           10,
				Velocity:         -6,
				FireRate:         0.01,
				Size:             Size{W: 140, H: 60},
				ProjectileOffset: Offset{X: -100, Y: 30},
			},
		},
		Boss: BossConfig{
			X:                     1000,
			Y:                     400,
			Size:                  Size{W: 200, H: 90},
			Health:                20,
			FireRate:              0.04,
			ShieldProbability:     0.0005,
			MaxShieldFrames:       500,
			VerticalSpeed:         8,
			MovesPerCycle:         5,
			MaxFramesWithSameMove: 10,
			MinY:                  0,
			MaxY:                  600,
			ProjectileOffset:      Offset{X: -60, Y: 35},
		},
		Projectiles: ProjectileSet{
			User:  ProjectileConfig{Velocity: 15, Size: Size{W: 40, H: 12}},
			Enemy: ProjectileConfig{Velocity: -10, Size: Size{W: 40, H: 12}},
			Boss:  ProjectileConfig{Velocity: -15, Size: Size{W: 50, H: 25}},
		},
		Levels: []LevelConfig{
			{
				ID:               "one",
				Name:             "Level One",
				Background:       "clouds",
				Kind:             KindWave,
				Enemy:            EnemyFighter,
				TotalEnemies:     5,
				KillTarget:       10,
				SpawnProbability: 0.20,
				PlayerHealth:     5,
				Next:             "two",
			},
			{
				ID:           "two",
				Name:         "Level Two",
				Background:   "storm",
				Kind:         KindBoss,
				PlayerHealth: 5,
				Next:         "three",
			},
			{
				ID:               "three",
				Name:             "Level Three",
				Background:       "dusk",
				Kind:             KindWave,
				Enemy:            EnemyFighter,
				TotalEnemies:     10,
				KillTarget:       15,
				SpawnProbability: 0.30,
				PlayerHealth:     4,
				Next:             "four",
			},
			{
				ID:               "four",
				Name:             "Level Four",
				Background:       "night",
				Kind:             KindWave,
				Enemy:            EnemyHeavy,
				TotalEnemies:     2,
				KillTarget:       3,
				SpawnProbability: 0.30,
				PlayerHealth:     5,
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 15,
			},
			Scaling: ScalingConfig{
				FireRateMultiplier: 1.0,
			},
		},
	}
}
