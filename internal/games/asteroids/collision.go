package asteroids

import "github.com/termarcade/asteroids/internal/core"

// Collider is the minimal surface the detector needs: a center point and a
// collision radius. Every entity body satisfies it.
type Collider interface {
	Center() core.Vec2
	CollisionRadius() float64
}

// Pair is one overlapping (A, B) combination reported by the detector.
type Pair[A, B Collider] struct {
	A A
	B B
}

// FindCollisions returns every (a, b) pair across two groups whose circles
// touch or overlap. The detector is read-only: it never mutates or removes
// entities; interpreting the pairs is the caller's responsibility.
// Complexity is O(|A|*|B|), fine at the tens-of-entities scale of this game.
func FindCollisions[A, B Collider](groupA []A, groupB []B) []Pair[A, B] {
	var pairs []Pair[A, B]
	for _, a := range groupA {
		for _, b := range groupB {
			if core.CirclesOverlap(a.Center(), a.CollisionRadius(), b.Center(), b.CollisionRadius()) {
				pairs = append(pairs, Pair[A, B]{A: a, B: b})
			}
		}
	}
	return pairs
}

// FindCollisionsWithin returns every overlapping unordered pair inside a
// single group. Each pair is reported at most once and no entity is paired
// with itself.
func FindCollisionsWithin[T Collider](group []T) []Pair[T, T] {
	var pairs []Pair[T, T]
	for i, a := range group {
		for _, b := range group[i+1:] {
			if core.CirclesOverlap(a.Center(), a.CollisionRadius(), b.Center(), b.CollisionRadius()) {
				pairs = append(pairs, Pair[T, T]{A: a, B: b})
			}
		}
	}
	return pairs
}
