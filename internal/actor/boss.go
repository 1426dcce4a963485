package actor

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/config"
)

// Boss is the scripted end-of-level aircraft. It holds its X position, walks a
// shuffled vertical move pattern and periodically raises a shield that blocks
// all damage.
type Boss struct {
	Fighter
	cfg        config.BossConfig
	projectile config.ProjectileConfig
	worldWidth float64

	pattern        []float64
	index          int
	sameMoveFrames int

	shielded     bool
	shieldFrames int
}

// NewBoss creates the boss at its configured position. The move pattern is
// MovesPerCycle copies of {+v, -v, 0}, shuffled with rng.
func NewBoss(cfg config.BossConfig, projectile config.ProjectileConfig, worldWidth float64, rng *rand.Rand) *Boss {
	b := &Boss{
		Fighter:    newFighter(KindBoss, cfg.X, cfg.Y, cfg.Size.W, cfg.Size.H, cfg.Health),
		cfg:        cfg,
		projectile: projectile,
		worldWidth: worldWidth,
	}
	for i := 0; i < cfg.MovesPerCycle; i++ {
		b.pattern = append(b.pattern, cfg.VerticalSpeed, -cfg.VerticalSpeed, 0)
	}
	b.shuffle(rng)
	return b
}

// Update runs one tick: move, shield, fire.
func (b *Boss) Update(rng *rand.Rand) *Projectile {
	if b.destroyed {
		return nil
	}
	b.move(rng)
	b.updateShield(rng)

	if rng.Float64() >= b.cfg.FireRate {
		return nil
	}
	x, y := b.Position()
	return NewProjectile(KindBossProjectile, x+b.cfg.ProjectileOffset.X, y+b.cfg.ProjectileOffset.Y, b.projectile, b.worldWidth)
}

// TakeDamage is ignored while the shield is up.
func (b *Boss) TakeDamage() {
	if b.shielded {
		return
	}
	b.Fighter.TakeDamage()
}

// Shielded reports whether the shield is up.
func (b *Boss) Shielded() bool {
	return b.shielded
}

// ShieldFrames returns the ticks elapsed since the shield was raised.
func (b *Boss) ShieldFrames() int {
	return b.shieldFrames
}

// ActivateShield raises the shield and resets its timer.
func (b *Boss) ActivateShield() {
	b.shielded = true
	b.shieldFrames = 0
}

func (b *Boss) deactivateShield() {
	b.shielded = false
	b.shieldFrames = 0
}

func (b *Boss) updateShield(rng *rand.Rand) {
	if b.shielded {
		b.shieldFrames++
	} else if rng.Float64() < b.cfg.ShieldProbability {
		b.ActivateShield()
	}
	if b.shieldFrames >= b.cfg.MaxShieldFrames {
		b.deactivateShield()
	}
}

func (b *Boss) move(rng *rand.Rand) {
	prevY := b.translateY
	b.translateY += b.nextMove(rng)
	if y := b.layoutY + b.translateY; y < b.cfg.MinY || y > b.cfg.MaxY {
		b.translateY = prevY
	}
}

// nextMove returns the current pattern entry. After MaxFramesWithSameMove
// ticks the pattern is reshuffled and the index advances, wrapping at the end.
func (b *Boss) nextMove(rng *rand.Rand) float64 {
	move := b.pattern[b.index]
	b.sameMoveFrames++
	if b.sameMoveFrames == b.cfg.MaxFramesWithSameMove {
		b.shuffle(rng)
		b.sameMoveFrames = 0
		b.index++
	}
	if b.index == len(b.pattern) {
		b.index = 0
	}
	return move
}

func (b *Boss) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(b.pattern), func(i, j int) {
		b.pattern[i], b.pattern[j] = b.pattern[j], b.pattern[i]
	})
}

// Pattern returns a copy of the current move pattern.
func (b *Boss) Pattern() []float64 {
	return append([]float64(nil), b.pattern...)
}
