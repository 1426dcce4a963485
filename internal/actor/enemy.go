package actor

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// Enemy is a wave aircraft flying towards the player and firing at random.
type Enemy struct {
	Fighter
	velocity   float64
	fireRate   float64
	offset     config.Offset
	projectile config.ProjectileConfig
	worldWidth float64
}

// NewEnemy creates an enemy of kind KindEnemy or KindHeavy at (x, y).
// fireRate is the per-tick firing probability, fixed for the enemy's lifetime.
func NewEnemy(kind Kind, x, y float64, cfg config.EnemyConfig, fireRate float64, projectile config.ProjectileConfig, worldWidth float64) *Enemy {
	return &Enemy{
		Fighter:    newFighter(kind, x, y, cfg.Size.W, cfg.Size.H, cfg.Health),
		velocity:   cfg.Velocity,
		fireRate:   fireRate,
		offset:     cfg.ProjectileOffset,
		projectile: projectile,
		worldWidth: worldWidth,
	}
}

// FireRate returns the per-tick firing probability.
func (e *Enemy) FireRate() float64 {
	return e.fireRate
}

// Update moves the enemy, then rolls its fire rate.
func (e *Enemy) Update(rng *rand.Rand) *Projectile {
	if e.destroyed {
		return nil
	}
	e.translateX += e.velocity

	if rng.Float64() >= e.fireRate {
		return nil
	}
	x, y := e.Position()
	return NewProjectile(KindEnemyProjectile, x+e.offset.X, y+e.offset.Y, e.projectile, e.worldWidth)
}
