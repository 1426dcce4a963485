package level

import "github.com/vovakirdan/sky-battle/internal/actor"

// Event is a notification emitted by the engine during a tick. The set of
// events is closed: only types in this package implement it.
type Event interface {
	event()
}

// ProjectileFired is emitted when a projectile enters the level.
type ProjectileFired struct {
	Kind actor.Kind
	X, Y float64
}

// ActorDestroyed is emitted when a destroyed actor is reaped.
type ActorDestroyed struct {
	Kind  actor.Kind
	Cause actor.Cause
	X, Y  float64
}

// EnemyPenetrated is emitted when an enemy crosses the player's defenses.
type EnemyPenetrated struct {
	Kind   actor.Kind
	Health int // Player health after the penalty
	Kills  int // Kill counter after the penalty
}

// HealthChanged is emitted when the player's health differs from the last
// reported value.
type HealthChanged struct {
	Health int
	Max    int
}

// ShieldChanged is emitted when the boss raises or drops its shield.
type ShieldChanged struct {
	Shielded bool
}

// LevelWon is emitted once when the level goal is met.
type LevelWon struct {
	Level   ID
	Next    ID
	HasNext bool
	Kills   int
}

// LevelLost is emitted once when the player is destroyed.
type LevelLost struct {
	Level ID
	Kills int
}

func (ProjectileFired) event() {}
func (ActorDestroyed) event()  {}
func (EnemyPenetrated) event() {}
func (HealthChanged) event()   {}
func (ShieldChanged) event()   {}
func (LevelWon) event()        {}
func (LevelLost) event()       {}

// Sink receives engine events synchronously on the tick goroutine.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit calls f(e).
func (f SinkFunc) Emit(e Event) {
	f(e)
}

// Scene mirrors the level's actors for rendering. The engine only adds and
// removes; layout belongs to the scene.
type Scene interface {
	Add(a actor.Actor)
	Remove(a actor.Actor)
}

type nopScene struct{}

func (nopScene) Add(actor.Actor)    {}
func (nopScene) Remove(actor.Actor) {}
