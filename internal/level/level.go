// Package level implements the per-tick level engine: spawning, actor
// updates, collision passes, reaping, kill attribution and the terminal
// check. A level owns all its actors; nothing is shared across levels.
package level

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/collision"
	"github.com/vovakirdan/sky-battle/internal/config"
	"github.com/vovakirdan/sky-battle/internal/core"
	"github.com/vovakirdan/sky-battle/internal/spawn"
)

// Level is one running level instance. It is not safe for concurrent use:
// Tick, Fire and the movement commands must be called from one goroutine.
type Level struct {
	id      ID
	cfg     config.LevelConfig
	world   config.WorldConfig
	rng     *rand.Rand
	scene   Scene
	sinks   []Sink
	policy  spawn.Policy
	boss    *spawn.BossOnce // nil on wave levels
	next    ID
	hasNext bool

	player           *actor.Player
	friendly         []actor.Actor
	enemies          []actor.Actor
	userProjectiles  []actor.Actor
	enemyProjectiles []actor.Actor

	currentEnemies int
	ticks          int
	lastHealth     int
	lastShield     bool
	outcome        Outcome
}

// Option configures a Level at construction.
type Option func(*Level)

// WithScene sets the render scene sink.
func WithScene(s Scene) Option {
	return func(l *Level) {
		l.scene = s
	}
}

// WithSinks registers event sinks.
func WithSinks(sinks ...Sink) Option {
	return func(l *Level) {
		l.sinks = append(l.sinks, sinks...)
	}
}

// WithRand replaces the level's random source.
func WithRand(rng *rand.Rand) Option {
	return func(l *Level) {
		l.rng = rng
	}
}

// New builds the level identified by id from the configuration. It is the
// only way levels are constructed; the campaign calls it again with the
// Next ID of a won level.
func New(id ID, cfg config.Config, runtime core.RuntimeConfig, opts ...Option) (*Level, error) {
	lc, ok := cfg.Level(id.String())
	if !ok {
		return nil, fmt.Errorf("level: %s not configured", id)
	}

	l := &Level{
		id:    id,
		cfg:   lc,
		world: cfg.World,
		rng:   rand.New(rand.NewSource(runtime.Seed + int64(id))),
		scene: nopScene{},
	}
	if lc.Next != "" {
		next, err := ParseID(lc.Next)
		if err != nil {
			return nil, err
		}
		l.next, l.hasNext = next, true
	}
	for _, opt := range opts {
		opt(l)
	}

	l.player = actor.NewPlayer(cfg.Player, cfg.Projectiles.User, lc.PlayerHealth, cfg.World.Width)
	l.friendly = []actor.Actor{l.player}
	l.lastHealth = l.player.Health()

	switch lc.Kind {
	case config.KindBoss:
		l.boss = spawn.NewBossOnce(cfg.Boss, cfg.Projectiles.Boss, cfg.World.Width)
		l.policy = l.boss
	case config.KindWave:
		enemy, ok := cfg.Enemies[lc.Enemy]
		if !ok {
			return nil, fmt.Errorf("level: %s uses unknown enemy %q", id, lc.Enemy)
		}
		kind := actor.KindEnemy
		if lc.Enemy == config.EnemyHeavy {
			kind = actor.KindHeavy
		}
		dm := config.NewDifficultyManager(cfg.Difficulty)
		rate := func() float64 {
			return dm.FireRate(enemy.FireRate, l.player.Kills(), l.ticks)
		}
		l.policy = spawn.NewWave(lc, kind, enemy, cfg.Projectiles.Enemy, cfg.World, rate)
	default:
		return nil, fmt.Errorf("level: %s has unknown kind %q", id, lc.Kind)
	}

	l.scene.Add(l.player)
	return l, nil
}

// Tick runs one fixed-interval frame and returns the resulting outcome.
// Once the level is terminal, Tick does nothing and returns the same outcome.
func (l *Level) Tick() Outcome {
	if l.outcome.Terminal() {
		return l.outcome
	}
	l.ticks++

	l.spawnEnemies()
	l.updateActors()
	l.currentEnemies = len(l.enemies)
	l.handlePenetration()

	collision.Resolve(l.friendly, l.enemies)
	collision.Resolve(l.userProjectiles, l.enemies)
	collision.Resolve(l.enemyProjectiles, l.friendly)

	l.reapAll()
	l.reportHealth()
	l.outcome = l.checkTerminal()
	return l.outcome
}

// spawnEnemies asks the policy to fill up to the live collection, which
// holds everything reaped last tick plus anything inserted since.
func (l *Level) spawnEnemies() {
	for _, a := range l.policy.Spawn(len(l.enemies), l.rng) {
		l.enemies = append(l.enemies, a)
		l.scene.Add(a)
	}
}

// updateActors updates every live actor. Fired projectiles are collected and
// inserted after all groups are updated, so they first move next tick.
func (l *Level) updateActors() {
	var friendlyFire, enemyFire []*actor.Projectile

	for _, a := range l.friendly {
		if p := update(a, l.rng); p != nil {
			friendlyFire = append(friendlyFire, p)
		}
	}
	for _, a := range l.enemies {
		if p := update(a, l.rng); p != nil {
			enemyFire = append(enemyFire, p)
		}
	}
	for _, a := range l.userProjectiles {
		update(a, l.rng)
	}
	for _, a := range l.enemyProjectiles {
		update(a, l.rng)
	}

	for _, p := range friendlyFire {
		l.userProjectiles = l.insertProjectile(l.userProjectiles, p)
	}
	for _, p := range enemyFire {
		l.enemyProjectiles = l.insertProjectile(l.enemyProjectiles, p)
	}

	if b := l.Boss(); b != nil && b.Shielded() != l.lastShield {
		l.lastShield = b.Shielded()
		l.emit(ShieldChanged{Shielded: l.lastShield})
	}
}

func update(a actor.Actor, rng *rand.Rand) *actor.Projectile {
	if a.Destroyed() {
		return nil
	}
	return a.Update(rng)
}

func (l *Level) insertProjectile(group []actor.Actor, p *actor.Projectile) []actor.Actor {
	l.scene.Add(p)
	x, y := p.Position()
	l.emit(ProjectileFired{Kind: p.Kind(), X: x, Y: y})
	return append(group, p)
}

// handlePenetration destroys enemies that flew past the defenses. Each one
// costs the player one health and one kill.
func (l *Level) handlePenetration() {
	for _, e := range l.enemies {
		if e.Destroyed() || math.Abs(e.TranslateX()) <= l.world.Width {
			continue
		}
		e.Destroy(actor.CausePenetration)
		l.player.TakeDamage()
		l.player.DecrementKills()
		l.emit(EnemyPenetrated{Kind: e.Kind(), Health: l.player.Health(), Kills: l.player.Kills()})
	}
}

func (l *Level) reapAll() {
	l.friendly = l.reap(l.friendly)
	l.enemies = l.reap(l.enemies)
	l.userProjectiles = l.reap(l.userProjectiles)
	l.enemyProjectiles = l.reap(l.enemyProjectiles)
}

// reap removes destroyed actors from group, preserving order. Enemies
// destroyed in combat are credited as kills.
func (l *Level) reap(group []actor.Actor) []actor.Actor {
	alive := group[:0]
	for _, a := range group {
		if !a.Destroyed() {
			alive = append(alive, a)
			continue
		}
		l.scene.Remove(a)
		x, y := a.Position()
		l.emit(ActorDestroyed{Kind: a.Kind(), Cause: a.Cause(), X: x, Y: y})
		if isEnemy(a.Kind()) && a.Cause() == actor.CauseCombat {
			l.player.IncrementKills()
		}
	}
	clear(group[len(alive):])
	return alive
}

func isEnemy(k actor.Kind) bool {
	return k == actor.KindEnemy || k == actor.KindHeavy || k == actor.KindBoss
}

func (l *Level) reportHealth() {
	if h := l.player.Health(); h != l.lastHealth {
		l.lastHealth = h
		l.emit(HealthChanged{Health: h, Max: l.player.MaxHealth()})
	}
}

func (l *Level) checkTerminal() Outcome {
	if l.player.Destroyed() {
		l.emit(LevelLost{Level: l.id, Kills: l.player.Kills()})
		return Outcome{Status: Lost}
	}
	if l.goalReached() {
		l.emit(LevelWon{Level: l.id, Next: l.next, HasNext: l.hasNext, Kills: l.player.Kills()})
		return Outcome{Status: Won, Next: l.next, HasNext: l.hasNext}
	}
	return Outcome{Status: Playing}
}

func (l *Level) goalReached() bool {
	if l.boss != nil {
		b := l.boss.Boss()
		return b != nil && b.Destroyed()
	}
	return l.player.Kills() >= l.cfg.KillTarget
}

func (l *Level) emit(e Event) {
	for _, s := range l.sinks {
		s.Emit(e)
	}
}

// Fire inserts a player projectile. It is ignored once the level has ended.
func (l *Level) Fire() {
	if l.outcome.Terminal() {
		return
	}
	if p := l.player.Fire(); p != nil {
		l.userProjectiles = l.insertProjectile(l.userProjectiles, p)
	}
}

func (l *Level) MoveUp()         { l.player.MoveUp() }
func (l *Level) MoveDown()       { l.player.MoveDown() }
func (l *Level) MoveLeft()       { l.player.MoveLeft() }
func (l *Level) MoveRight()      { l.player.MoveRight() }
func (l *Level) StopVertical()   { l.player.StopVertical() }
func (l *Level) StopHorizontal() { l.player.StopHorizontal() }

// ID returns the level identifier.
func (l *Level) ID() ID { return l.id }

// Config returns the level's configuration constants.
func (l *Level) Config() config.LevelConfig { return l.cfg }

// World returns the playfield configuration.
func (l *Level) World() config.WorldConfig { return l.world }

// Outcome returns the result of the last tick.
func (l *Level) Outcome() Outcome { return l.outcome }

// Ticks returns the number of ticks run so far.
func (l *Level) Ticks() int { return l.ticks }

// Player returns the player actor.
func (l *Level) Player() *actor.Player { return l.player }

// Kills returns the player's kill counter.
func (l *Level) Kills() int { return l.player.Kills() }

// EnemyCount returns the enemy count recomputed during the last tick.
func (l *Level) EnemyCount() int { return l.currentEnemies }

// Boss returns the boss once spawned, nil on wave levels.
func (l *Level) Boss() *actor.Boss {
	if l.boss == nil {
		return nil
	}
	return l.boss.Boss()
}

// Enemies returns the live enemy collection. Callers must not modify it.
func (l *Level) Enemies() []actor.Actor { return l.enemies }

// UserProjectiles returns the player's projectiles. Callers must not modify it.
func (l *Level) UserProjectiles() []actor.Actor { return l.userProjectiles }

// EnemyProjectiles returns enemy and boss projectiles. Callers must not modify it.
func (l *Level) EnemyProjectiles() []actor.Actor { return l.enemyProjectiles }

// Insert adds an enemy or projectile directly, bypassing the spawn policy.
// Used by tests and scripted scenarios.
func (l *Level) Insert(a actor.Actor) {
	switch {
	case isEnemy(a.Kind()):
		l.enemies = append(l.enemies, a)
	case a.Kind() == actor.KindUserProjectile:
		l.userProjectiles = append(l.userProjectiles, a)
	case a.Kind().IsProjectile():
		l.enemyProjectiles = append(l.enemyProjectiles, a)
	default:
		l.friendly = append(l.friendly, a)
	}
	l.scene.Add(a)
}
