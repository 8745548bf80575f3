// Package physics holds the per-body rules of the simulation: gravity
// integration and the top-only landing and hazard overlap tests.
package physics

import "github.com/milk9111/scroller/ecs/component"

// Integrate moves b by its velocity, then accelerates it by gravity unless its
// projected bottom would pass floor. Position is updated before gravity is
// added, so the frame after a landing does not count gravity twice.
func Integrate(b *component.Body, gravity, floor float64) {
	if b == nil {
		return
	}
	b.Pos = b.Pos.Add(b.Vel)
	if NextBottom(b) <= floor {
		b.Vel.Y += gravity
	}
}

// NextBottom is the bottom edge b will have after one more integration step.
func NextBottom(b *component.Body) float64 {
	return b.Bottom() + b.Vel.Y
}
