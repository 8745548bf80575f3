package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/scroller/ecs/component"
)

const (
	testGravity = 1.2
	testFloor   = 576.0
)

func body(x, y, w, h float64) *component.Body {
	return &component.Body{Pos: cp.Vector{X: x, Y: y}, W: w, H: h}
}

func TestIntegrate(t *testing.T) {
	tests := []struct {
		name    string
		start   component.Body
		wantPos cp.Vector
		wantVel cp.Vector
	}{
		{
			name:    "free_fall_moves_then_accelerates",
			start:   component.Body{Pos: cp.Vector{X: 10, Y: 100}, Vel: cp.Vector{X: 6, Y: 2}, W: 10, H: 10},
			wantPos: cp.Vector{X: 16, Y: 102},
			wantVel: cp.Vector{X: 6, Y: 2 + testGravity},
		},
		{
			name:    "no_gravity_past_floor",
			start:   component.Body{Pos: cp.Vector{X: 0, Y: 560}, Vel: cp.Vector{Y: 5}, W: 10, H: 10},
			wantPos: cp.Vector{X: 0, Y: 565},
			wantVel: cp.Vector{Y: 5},
		},
		{
			name:    "gravity_exactly_at_floor",
			start:   component.Body{Pos: cp.Vector{X: 0, Y: 556}, Vel: cp.Vector{Y: 5}, W: 10, H: 10},
			wantPos: cp.Vector{X: 0, Y: 561},
			wantVel: cp.Vector{Y: 5 + testGravity},
		},
		{
			name:    "resting_body_only_gains_gravity",
			start:   component.Body{Pos: cp.Vector{X: 0, Y: 320}, W: 66, H: 150},
			wantPos: cp.Vector{X: 0, Y: 320},
			wantVel: cp.Vector{Y: testGravity},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.start
			Integrate(&b, testGravity, testFloor)
			assert.InDelta(t, tc.wantPos.X, b.Pos.X, 1e-9)
			assert.InDelta(t, tc.wantPos.Y, b.Pos.Y, 1e-9)
			assert.InDelta(t, tc.wantVel.X, b.Vel.X, 1e-9)
			assert.InDelta(t, tc.wantVel.Y, b.Vel.Y, 1e-9)
		})
	}
}

func TestLands(t *testing.T) {
	platform := body(0, 470, 1000, 50)

	tests := []struct {
		name  string
		actor *component.Body
		vy    float64
		want  bool
	}{
		{"crossing_top_next_frame", body(100, 315, 66, 150), 6, true},
		{"resting_on_top", body(100, 320, 66, 150), 0, true},
		{"resting_with_gravity", body(100, 320, 66, 150), testGravity, true},
		{"still_above", body(100, 100, 66, 150), 6, false},
		{"already_below_top", body(100, 321, 66, 150), 1, false},
		{"moving_up", body(100, 319, 66, 150), -2, false},
		{"left_of_platform", body(-66, 320, 66, 150), 1, false},
		{"right_of_platform", body(1000, 320, 66, 150), 1, false},
		{"one_pixel_overlap_left", body(-65, 320, 66, 150), 1, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.actor.Vel.Y = tc.vy
			assert.Equal(t, tc.want, Lands(tc.actor, platform))
		})
	}
}

func TestResolveLandingSnapsExactly(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		vy   float64
	}{
		{"fast_fall", 300, 25},
		{"slow_fall", 319.5, 0.7},
		{"resting", 320, 0},
		{"fractional_velocity", 318.8, 1.2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actor := body(100, tc.y, 66, 150)
			actor.Vel.Y = tc.vy
			platform := body(0, 470, 1000, 50)

			idx := ResolveLanding(actor, []*component.Body{platform})
			require.Equal(t, 0, idx)
			assert.Equal(t, platform.Top(), actor.Pos.Y+actor.H)
			assert.Equal(t, 0.0, actor.Vel.Y)
		})
	}
}

func TestResolveLandingChecksEveryPlatform(t *testing.T) {
	actor := body(500, 100, 66, 150)
	actor.Vel.Y = 10
	platforms := []*component.Body{
		body(0, 470, 400, 50),   // not under the actor
		body(450, 255, 200, 20), // under the actor, crossed next frame
		body(900, 255, 200, 20), // same top, not under the actor
	}

	idx := ResolveLanding(actor, platforms)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 255.0, actor.Bottom())
}

func TestResolveLandingLastMatchWins(t *testing.T) {
	actor := body(500, 100, 66, 150)
	actor.Vel.Y = 10
	platforms := []*component.Body{
		body(450, 255, 200, 20),
		body(480, 255, 100, 20),
	}

	assert.Equal(t, 1, ResolveLanding(actor, platforms))
	assert.Equal(t, 255.0, actor.Bottom())
}

func TestResolveLandingIgnoresSideContact(t *testing.T) {
	actor := body(380, 400, 66, 150)
	actor.Vel.Y = 3
	platform := body(400, 470, 200, 50)

	assert.Equal(t, -1, ResolveLanding(actor, []*component.Body{platform}))
	assert.Equal(t, 400.0, actor.Pos.Y)
	assert.Equal(t, 3.0, actor.Vel.Y)
}

func TestFallConvergesWithoutOvershoot(t *testing.T) {
	actor := body(100, 50, 66, 150)
	ground := body(0, 470, 1000, 50)
	platforms := []*component.Body{ground}

	grounded := false
	for frame := 0; frame < 200; frame++ {
		grounded = ResolveLanding(actor, platforms) >= 0
		require.LessOrEqual(t, actor.Bottom(), ground.Top(), "frame %d", frame)
		if grounded {
			require.Equal(t, 0.0, actor.Vel.Y)
			require.Equal(t, ground.Top()-actor.H, actor.Pos.Y)
		}
		Integrate(actor, testGravity, testFloor)
		require.LessOrEqual(t, actor.Bottom(), ground.Top(), "frame %d", frame)
	}

	assert.True(t, grounded)
	assert.Equal(t, 470.0-150.0, actor.Pos.Y)
}

func TestOverlaps(t *testing.T) {
	a := body(0, 0, 10, 10)
	tests := []struct {
		name string
		b    *component.Body
		want bool
	}{
		{"inside", body(2, 2, 2, 2), true},
		{"partial", body(5, 5, 10, 10), true},
		{"touching_right_edge", body(10, 0, 10, 10), false},
		{"touching_bottom_edge", body(0, 10, 10, 10), false},
		{"apart", body(20, 20, 5, 5), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, a))
		})
	}
}
