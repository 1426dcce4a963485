// Package collision resolves hits between two groups of actors.
package collision

import "github.com/vovakirdan/sky-battle/internal/actor"

// Resolve damages both actors of every intersecting pair (a, b) with a taken
// from as and b from bs, and returns the number of pairs that hit.
//
// Pairs where either side is already destroyed are skipped, so an actor
// destroyed earlier in the pass no longer absorbs hits. An actor that
// survives one hit can still be hit by another partner in the same pass.
func Resolve[A, B actor.Actor](as []A, bs []B) int {
	hits := 0
	for _, a := range as {
		for _, b := range bs {
			if a.Destroyed() || b.Destroyed() {
				continue
			}
			if a.Bounds().Intersects(b.Bounds()) {
				a.TakeDamage()
				b.TakeDamage()
				hits++
			}
		}
	}
	return hits
}
