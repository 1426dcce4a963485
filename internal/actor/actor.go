// Package actor implements the simulated entities of a level: the player,
// enemy aircraft, the boss and projectiles.
//
// Actors never touch shared collections. Update returns an optional fired
// projectile and the level engine decides where it goes.
package actor

import (
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/core"
)

// Kind identifies the concrete type of an actor.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindHeavy
	KindBoss
	KindUserProjectile
	KindEnemyProjectile
	KindBossProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindHeavy:
		return "heavy"
	case KindBoss:
		return "boss"
	case KindUserProjectile:
		return "user-projectile"
	case KindEnemyProjectile:
		return "enemy-projectile"
	case KindBossProjectile:
		return "boss-projectile"
	default:
		return "unknown"
	}
}

// IsProjectile reports whether the kind is one of the projectile kinds.
func (k Kind) IsProjectile() bool {
	return k == KindUserProjectile || k == KindEnemyProjectile || k == KindBossProjectile
}

// Cause records why an actor was destroyed.
type Cause int

const (
	CauseNone        Cause = iota
	CauseCombat            // Health exhausted or projectile hit
	CausePenetration       // Enemy crossed the defenses
	CauseExpired           // Projectile left the playfield
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCombat:
		return "combat"
	case CausePenetration:
		return "penetration"
	case CauseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Actor is the capability set every simulated entity provides.
type Actor interface {
	Kind() Kind

	// Update advances the actor by one tick. A non-nil result is a fired
	// projectile the caller must insert into the matching collection.
	Update(rng *rand.Rand) *Projectile

	TakeDamage()
	Destroy(cause Cause)
	Destroyed() bool
	Cause() Cause

	Bounds() core.Box
	Position() (x, y float64)
	TranslateX() float64
}

// Body holds the state shared by all actors: layout position, translation,
// sprite size and destruction state.
type Body struct {
	kind       Kind
	layoutX    float64
	layoutY    float64
	translateX float64
	translateY float64
	w, h       float64
	destroyed  bool
	cause      Cause
}

func newBody(kind Kind, x, y, w, h float64) Body {
	return Body{kind: kind, layoutX: x, layoutY: y, w: w, h: h}
}

// Kind returns the actor kind.
func (b *Body) Kind() Kind {
	return b.kind
}

// Destroy marks the actor destroyed. The first cause wins.
func (b *Body) Destroy(cause Cause) {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.cause = cause
}

// Destroyed reports whether the actor has been destroyed.
func (b *Body) Destroyed() bool {
	return b.destroyed
}

// Cause returns the destruction cause, CauseNone while alive.
func (b *Body) Cause() Cause {
	return b.cause
}

// Position returns the current top-left position in world units.
func (b *Body) Position() (float64, float64) {
	return b.layoutX + b.translateX, b.layoutY + b.translateY
}

// TranslateX returns the horizontal offset from the layout position.
func (b *Body) TranslateX() float64 {
	return b.translateX
}

// Bounds returns the collision box at the current position.
func (b *Body) Bounds() core.Box {
	x, y := b.Position()
	return core.NewBox(x, y, b.w, b.h)
}

// Fighter adds health to a Body.
type Fighter struct {
	Body
	health    int
	maxHealth int
}

func newFighter(kind Kind, x, y, w, h float64, health int) Fighter {
	return Fighter{Body: newBody(kind, x, y, w, h), health: health, maxHealth: health}
}

// Health returns the remaining health.
func (f *Fighter) Health() int {
	return f.health
}

// MaxHealth returns the health the fighter started with.
func (f *Fighter) MaxHealth() int {
	return f.maxHealth
}

// TakeDamage removes one health point. At zero the fighter is destroyed.
func (f *Fighter) TakeDamage() {
	if f.destroyed {
		return
	}
	f.health--
	if f.health <= 0 {
		f.health = 0
		f.Destroy(CauseCombat)
	}
}

var (
	_ Actor = (*Player)(nil)
	_ Actor = (*Enemy)(nil)
	_ Actor = (*Boss)(nil)
	_ Actor = (*Projectile)(nil)
)
