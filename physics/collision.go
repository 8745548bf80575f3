package physics

import "github.com/milk9111/scroller/ecs/component"

// Lands reports whether actor comes down onto the top of platform this frame:
// moving down or resting, bottom at or above the top now and at or below it
// next frame, and horizontally overlapping.
func Lands(actor, platform *component.Body) bool {
	if actor.Vel.Y < 0 {
		return false
	}
	top := platform.Top()
	bottomNow := actor.Bottom()
	bottomNext := NextBottom(actor)
	withinX := actor.Right() > platform.Left() && actor.Left() < platform.Right()
	return bottomNow <= top && bottomNext >= top && withinX
}

// ResolveLanding tests actor against every platform in order, snapping it onto
// each one it lands on, and returns the index of the platform it ended up on
// or -1. There is no early exit: when tops coincide the last matching
// platform wins. Sides and undersides are never resolved.
func ResolveLanding(actor *component.Body, platforms []*component.Body) int {
	landed := -1
	for i, p := range platforms {
		if !Lands(actor, p) {
			continue
		}
		actor.Pos.Y = p.Top() - actor.H
		actor.Vel.Y = 0
		landed = i
	}
	return landed
}

// Overlaps is a strict AABB intersection; touching edges do not count.
func Overlaps(a, b *component.Body) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}
