package camera

import (
	"math"
	"testing"

	"github.com/ivlev/cardmotion/internal/geom"
)

func lineKeyframes(n int) []Keyframe {
	keyframes := make([]Keyframe, n)
	for i := range keyframes {
		keyframes[i] = Keyframe{
			Frame:    i * 10,
			Position: geom.Point3D{X: float64(i)},
			Rotation: geom.IdentityQuaternion(),
			FOV:      60,
		}
	}
	return keyframes
}

func TestSimplifyCollinearCollapses(t *testing.T) {
	keyframes := lineKeyframes(10)

	simplified := Simplify(keyframes, 0.01)
	if len(simplified) != 2 {
		t.Errorf("Collinear keyframes should collapse to endpoints, got %d", len(simplified))
	}
	if simplified[0].Frame != 0 || simplified[len(simplified)-1].Frame != 90 {
		t.Errorf("Simplify must preserve first and last keyframe: %+v", simplified)
	}
}

func TestSimplifyKeepsDeviations(t *testing.T) {
	keyframes := lineKeyframes(10)
	keyframes[5].Position.Y = 3 // a real camera move, not noise

	simplified := Simplify(keyframes, 0.5)
	found := false
	for _, kf := range simplified {
		if kf.Frame == 50 {
			found = true
		}
	}
	if !found {
		t.Errorf("Keyframe deviating beyond tolerance must survive: %+v", simplified)
	}
	if len(simplified) > len(keyframes) {
		t.Errorf("Simplify must never grow the sequence: %d -> %d", len(keyframes), len(simplified))
	}
}

func TestSimplifyTinyInputs(t *testing.T) {
	for n := 0; n <= 2; n++ {
		keyframes := lineKeyframes(n)
		simplified := Simplify(keyframes, 1)
		if len(simplified) != n {
			t.Errorf("%d keyframes should pass through unchanged, got %d", n, len(simplified))
		}
	}
}

func TestResampleUniformSpacing(t *testing.T) {
	keyframes := []Keyframe{
		{Frame: 0, Position: geom.Point3D{X: 0}, Rotation: geom.IdentityQuaternion()},
		{Frame: 47, Position: geom.Point3D{X: 5, Y: 2}, Rotation: geom.IdentityQuaternion()},
		{Frame: 90, Position: geom.Point3D{X: 10}, Rotation: geom.IdentityQuaternion()},
	}

	resampled := Resample(keyframes, 10, 60, 0.5)

	if resampled[0].Frame != 0 {
		t.Errorf("Resample should start at the first frame, got %d", resampled[0].Frame)
	}
	if resampled[len(resampled)-1].Frame != 90 {
		t.Errorf("Resample should end at the last frame, got %d", resampled[len(resampled)-1].Frame)
	}
	for i := 1; i < len(resampled)-1; i++ {
		if resampled[i].Frame-resampled[i-1].Frame != 10 {
			t.Errorf("Uneven interval between %d and %d", resampled[i-1].Frame, resampled[i].Frame)
		}
	}
}

func TestResampleReproducesOriginalKeyframes(t *testing.T) {
	keyframes := []Keyframe{
		{Frame: 0, Position: geom.Point3D{X: 0, Y: 1}, Rotation: geom.IdentityQuaternion()},
		{Frame: 30, Position: geom.Point3D{X: 4, Y: 2, Z: -1}, Rotation: geom.IdentityQuaternion()},
		{Frame: 60, Position: geom.Point3D{X: 8, Y: 0, Z: 1}, Rotation: geom.IdentityQuaternion()},
		{Frame: 90, Position: geom.Point3D{X: 12, Y: 3}, Rotation: geom.IdentityQuaternion()},
	}

	resampled := Resample(keyframes, 5, 60, 0.5)

	for _, original := range keyframes {
		state := Interpolate(resampled, float64(original.Frame), 60, 0.5)
		if d := state.Position.Distance(original.Position); d > 0.1 {
			t.Errorf("Frame %d: resampled path deviates %.4f from the original keyframe", original.Frame, d)
		}
	}
}

func TestSmoothAveragesPositionOnly(t *testing.T) {
	rot := geom.Quaternion{Y: 0.5, W: 0.866}
	keyframes := []Keyframe{
		{Frame: 0, Position: geom.Point3D{X: 0}, Rotation: rot},
		{Frame: 10, Position: geom.Point3D{X: 10, Y: 6}, Rotation: rot}, // jitter spike
		{Frame: 20, Position: geom.Point3D{X: 20}, Rotation: rot},
	}

	smoothed := Smooth(keyframes, 1)

	if math.Abs(smoothed[1].Position.Y-2) > 1e-9 {
		t.Errorf("Expected averaged Y=2 at the spike, got %g", smoothed[1].Position.Y)
	}
	for i, kf := range smoothed {
		if kf.Rotation != rot {
			t.Errorf("Keyframe %d: rotation must pass through unchanged, got %+v", i, kf.Rotation)
		}
	}
}

func TestSmoothBoundariesShrinkWindow(t *testing.T) {
	keyframes := lineKeyframes(5)
	smoothed := Smooth(keyframes, 2)

	// First keyframe averages indices 0..2 of a straight line: X = 1.
	if math.Abs(smoothed[0].Position.X-1) > 1e-9 {
		t.Errorf("Boundary average wrong: expected X=1, got %g", smoothed[0].Position.X)
	}
	if len(smoothed) != len(keyframes) {
		t.Errorf("Smooth must preserve the keyframe count")
	}
}
