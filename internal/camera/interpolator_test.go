package camera

import (
	"math"
	"testing"

	"github.com/ivlev/cardmotion/internal/geom"
)

func quatDistance(a, b geom.Quaternion) float64 {
	// Quaternions are sign-ambiguous: compare against both q and -q.
	d1 := math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y) + (a.Z-b.Z)*(a.Z-b.Z) + (a.W-b.W)*(a.W-b.W))
	n := b.Negate()
	d2 := math.Sqrt((a.X-n.X)*(a.X-n.X) + (a.Y-n.Y)*(a.Y-n.Y) + (a.Z-n.Z)*(a.Z-n.Z) + (a.W-n.W)*(a.W-n.W))
	return math.Min(d1, d2)
}

func TestSlerpIdenticalQuaternions(t *testing.T) {
	q := geom.Quaternion{X: 0.1, Y: 0.2, Z: 0.3, W: 0.9}.Normalize()

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := Slerp(q, q, tt)
		if quatDistance(got, q) > 1e-9 {
			t.Errorf("Slerp(q, q, %.2f) should return q, got %+v", tt, got)
		}
		if math.Abs(got.Length()-1) > 1e-6 {
			t.Errorf("Slerp result not normalized at t=%.2f: length %.9f", tt, got.Length())
		}
	}
}

func TestSlerpEndpoints(t *testing.T) {
	q1 := geom.Quaternion{W: 1}
	q2 := geom.Quaternion{Y: math.Sin(math.Pi / 4), W: math.Cos(math.Pi / 4)} // 90° yaw

	if got := Slerp(q1, q2, 0); quatDistance(got, q1) > 1e-9 {
		t.Errorf("Slerp at t=0 should return q1, got %+v", got)
	}
	if got := Slerp(q1, q2, 1); quatDistance(got, q2) > 1e-9 {
		t.Errorf("Slerp at t=1 should return q2, got %+v", got)
	}
}

func TestSlerpShortestPath(t *testing.T) {
	q1 := geom.Quaternion{W: 1}
	// Same rotation as a small positive yaw, but with all components negated.
	small := geom.Quaternion{Y: math.Sin(0.1), W: math.Cos(0.1)}
	q2 := small.Negate()

	mid := Slerp(q1, q2, 0.5)
	want := geom.Quaternion{Y: math.Sin(0.05), W: math.Cos(0.05)}
	if quatDistance(mid, want) > 1e-6 {
		t.Errorf("Slerp should take the shorter arc, got %+v want %+v", mid, want)
	}
}

func TestSlerpResultsAreUnit(t *testing.T) {
	q1 := geom.Quaternion{X: 0.3, Y: -0.4, Z: 0.1, W: 0.85}.Normalize()
	q2 := geom.Quaternion{X: -0.2, Y: 0.6, Z: -0.3, W: 0.7}.Normalize()

	for i := 0; i <= 20; i++ {
		tt := float64(i) / 20
		if l := Slerp(q1, q2, tt).Length(); math.Abs(l-1) > 1e-6 {
			t.Errorf("Slerp at t=%.2f not unit: length %.9f", tt, l)
		}
	}
}

func TestInterpolateNoKeyframes(t *testing.T) {
	state := Interpolate(nil, 10, 60, 0.5)

	if state.FOV != 60 {
		t.Errorf("Fallback camera should carry the default FOV, got %g", state.FOV)
	}
	if state.Rotation != geom.IdentityQuaternion() {
		t.Errorf("Fallback camera should use identity rotation, got %+v", state.Rotation)
	}
}

func TestInterpolateSingleKeyframe(t *testing.T) {
	kf := Keyframe{
		Frame:    30,
		Position: geom.Point3D{X: 1, Y: 2, Z: 3},
		Rotation: geom.IdentityQuaternion(),
		FOV:      45,
	}

	for _, frame := range []float64{0, 30, 100} {
		state := Interpolate([]Keyframe{kf}, frame, 60, 0.5)
		if state.Position != kf.Position {
			t.Errorf("Single keyframe at frame %g: expected its position verbatim, got %+v", frame, state.Position)
		}
		if state.FOV != 45 {
			t.Errorf("Single keyframe: expected its FOV, got %g", state.FOV)
		}
	}
}

func TestInterpolateBrackets(t *testing.T) {
	keyframes := []Keyframe{
		{Frame: 0, Position: geom.Point3D{X: 0}, Rotation: geom.IdentityQuaternion(), FOV: 60},
		{Frame: 30, Position: geom.Point3D{X: 10}, Rotation: geom.IdentityQuaternion(), FOV: 40},
		{Frame: 60, Position: geom.Point3D{X: 20}, Rotation: geom.IdentityQuaternion(), FOV: 60},
	}

	state := Interpolate(keyframes, 15, 60, 0.5)
	if state.Position.X < 0 || state.Position.X > 10 {
		t.Errorf("Midway position should stay between bracketing keyframes, got %g", state.Position.X)
	}
	if math.Abs(state.FOV-50) > 1e-9 {
		t.Errorf("FOV should interpolate linearly: expected 50, got %g", state.FOV)
	}

	// Exactly on a keyframe.
	at := Interpolate(keyframes, 30, 60, 0.5)
	if math.Abs(at.Position.X-10) > 1e-9 {
		t.Errorf("At keyframe frame: expected its position, got %g", at.Position.X)
	}

	// Clamped outside the range.
	before := Interpolate(keyframes, -10, 60, 0.5)
	after := Interpolate(keyframes, 500, 60, 0.5)
	if before.Position != keyframes[0].Position || after.Position != keyframes[2].Position {
		t.Errorf("Out-of-range frames should clamp to the end keyframes")
	}
}

func TestInterpolateMissingFOVFallsBack(t *testing.T) {
	keyframes := []Keyframe{
		{Frame: 0, Rotation: geom.IdentityQuaternion()}, // no FOV
		{Frame: 30, Rotation: geom.IdentityQuaternion(), FOV: 40},
	}

	state := Interpolate(keyframes, 15, 60, 0.5)
	if math.Abs(state.FOV-50) > 1e-9 {
		t.Errorf("Missing FOV should fall back to default 60 for the lerp: expected 50, got %g", state.FOV)
	}
}
