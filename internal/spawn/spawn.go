// Package spawn decides which enemies enter a level on each tick.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/config"
)

// Policy returns the enemies to add this tick given the current live count.
// Returned actors are owned by the caller.
type Policy interface {
	Spawn(current int, rng *rand.Rand) []actor.Actor
}

// RateFunc returns the fire rate for an enemy spawned now.
type RateFunc func() float64

// Wave refills missing enemy slots with one Bernoulli trial per slot, so the
// live count approaches Total without ever exceeding it.
type Wave struct {
	total       int
	probability float64
	kind        actor.Kind
	enemy       config.EnemyConfig
	projectile  config.ProjectileConfig
	world       config.WorldConfig
	fireRate    RateFunc
}

// NewWave creates a wave policy for a level. A nil fireRate uses the enemy's
// configured rate.
func NewWave(lvl config.LevelConfig, kind actor.Kind, enemy config.EnemyConfig, projectile config.ProjectileConfig, world config.WorldConfig, fireRate RateFunc) *Wave {
	if fireRate == nil {
		fireRate = func() float64 { return enemy.FireRate }
	}
	return &Wave{
		total:       lvl.TotalEnemies,
		probability: lvl.SpawnProbability,
		kind:        kind,
		enemy:       enemy,
		projectile:  projectile,
		world:       world,
		fireRate:    fireRate,
	}
}

// Total returns the enemy cap.
func (w *Wave) Total() int {
	return w.total
}

// Spawn rolls once per missing slot. New enemies start at the right edge
// with a uniform Y in [0, enemyMaxY].
func (w *Wave) Spawn(current int, rng *rand.Rand) []actor.Actor {
	var spawned []actor.Actor
	for i := current; i < w.total; i++ {
		if rng.Float64() >= w.probability {
			continue
		}
		y := rng.Float64() * w.world.EnemyMaxY()
		e := actor.NewEnemy(w.kind, w.world.Width, y, w.enemy, w.fireRate(), w.projectile, w.world.Width)
		spawned = append(spawned, e)
	}
	return spawned
}

// BossOnce spawns a single boss the first time the level has no enemies and
// never replenishes it.
type BossOnce struct {
	cfg        config.BossConfig
	projectile config.ProjectileConfig
	worldWidth float64
	boss       *actor.Boss
}

// NewBossOnce creates the boss policy.
func NewBossOnce(cfg config.BossConfig, projectile config.ProjectileConfig, worldWidth float64) *BossOnce {
	return &BossOnce{cfg: cfg, projectile: projectile, worldWidth: worldWidth}
}

// Spawn returns the boss on the first call with current == 0.
func (p *BossOnce) Spawn(current int, rng *rand.Rand) []actor.Actor {
	if p.boss != nil || current != 0 {
		return nil
	}
	p.boss = actor.NewBoss(p.cfg, p.projectile, p.worldWidth, rng)
	return []actor.Actor{p.boss}
}

// Boss returns the spawned boss, or nil before it appeared.
func (p *BossOnce) Boss() *actor.Boss {
	return p.boss
}
