package campaign

import (
	"github.com/vovakirdan/sky-battle/internal/actor"
	"github.com/vovakirdan/sky-battle/internal/core"
)

// sprite is the terminal look of an actor kind. Rows are stretched or
// squeezed to the actor's scaled bounds.
type sprite struct {
	rows  []string
	color core.Color
}

var sprites = map[actor.Kind]sprite{
	actor.KindPlayer:          {rows: []string{"═╦═►"}, color: core.ColorBrightCyan},
	actor.KindEnemy:           {rows: []string{"◄═╦═"}, color: core.ColorRed},
	actor.KindHeavy:           {rows: []string{"◄═╬═╣", "◄▓▓▓▓"}, color: core.ColorMagenta},
	actor.KindBoss:            {rows: []string{"◢████◣", "◄██▓▓█", "◥████◤"}, color: core.ColorBrightRed},
	actor.KindUserProjectile:  {rows: []string{"─"}, color: core.ColorYellow},
	actor.KindEnemyProjectile: {rows: []string{"•"}, color: core.ColorOrange},
	actor.KindBossProjectile:  {rows: []string{"●"}, color: core.ColorBrightRed},
}

// Scene keeps the actors currently on screen in insertion order. It
// implements level.Scene; the level adds and removes, the renderer reads.
type Scene struct {
	actors []actor.Actor
	index  map[actor.Actor]int
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{index: make(map[actor.Actor]int)}
}

// Add appends an actor. Adding an actor twice is a no-op.
func (s *Scene) Add(a actor.Actor) {
	if _, ok := s.index[a]; ok {
		return
	}
	s.index[a] = len(s.actors)
	s.actors = append(s.actors, a)
}

// Remove deletes an actor, keeping the order of the others.
func (s *Scene) Remove(a actor.Actor) {
	i, ok := s.index[a]
	if !ok {
		return
	}
	delete(s.index, a)
	s.actors = append(s.actors[:i], s.actors[i+1:]...)
	for j := i; j < len(s.actors); j++ {
		s.index[s.actors[j]] = j
	}
}

// Reset empties the scene before a new level is mounted.
func (s *Scene) Reset() {
	s.actors = nil
	clear(s.index)
}

// Len returns the number of actors on screen.
func (s *Scene) Len() int {
	return len(s.actors)
}

// Actors returns the actors in draw order. Callers must not modify it.
func (s *Scene) Actors() []actor.Actor {
	return s.actors
}
