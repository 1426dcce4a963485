package actor

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// Projectile flies horizontally at a fixed velocity and dies on the first hit.
type Projectile struct {
	Body
	velocity   float64
	worldWidth float64
}

// NewProjectile creates a projectile of the given kind at (x, y).
// It expires once it leaves [0, worldWidth] horizontally.
func NewProjectile(kind Kind, x, y float64, cfg config.ProjectileConfig, worldWidth float64) *Projectile {
	return &Projectile{
		Body:       newBody(kind, x, y, cfg.Size.W, cfg.Size.H),
		velocity:   cfg.Velocity,
		worldWidth: worldWidth,
	}
}

// Velocity returns the horizontal velocity in world units per tick.
func (p *Projectile) Velocity() float64 {
	return p.velocity
}

// Update moves the projectile. Projectiles never fire.
func (p *Projectile) Update(_ *rand.Rand) *Projectile {
	if p.destroyed {
		return nil
	}
	p.translateX += p.velocity

	b := p.Bounds()
	if b.Right() < 0 || b.X > p.worldWidth {
		p.Destroy(CauseExpired)
	}
	return nil
}

// TakeDamage destroys the projectile.
func (p *Projectile) TakeDamage() {
	p.Destroy(CauseCombat)
}
