package path

import (
	"math"
	"testing"

	"github.com/ivlev/cardmotion/internal/geom"
)

func TestLinearMidpoint(t *testing.T) {
	p := NewLinearPath(map[string]float64{
		"startX": -3, "startY": 2, "startZ": 7,
		"endX": 5, "endY": -4, "endZ": 1,
	})

	mid := p.GetPositionAt(0.5)
	want := geom.Point3D{X: 1, Y: -1, Z: 4}
	if mid.Distance(want) > 1e-12 {
		t.Errorf("Expected midpoint %+v, got %+v", want, mid)
	}

	if start := p.GetPositionAt(0); start.Distance(geom.Point3D{X: -3, Y: 2, Z: 7}) > 1e-12 {
		t.Errorf("Expected start point, got %+v", start)
	}
	if end := p.GetPositionAt(1); end.Distance(geom.Point3D{X: 5, Y: -4, Z: 1}) > 1e-12 {
		t.Errorf("Expected end point, got %+v", end)
	}
}

func TestLinearDegenerateTangent(t *testing.T) {
	p := NewLinearPath(map[string]float64{
		"startX": 1, "startY": 1, "startZ": 1,
		"endX": 1, "endY": 1, "endZ": 1,
	})

	tangent := p.GetTangentAt(0.5)
	want := geom.Point3D{X: 0, Y: 0, Z: 1}
	if tangent != want {
		t.Errorf("Expected fallback tangent (0,0,1) for zero-length segment, got %+v", tangent)
	}
}

func TestCircularReferencePoints(t *testing.T) {
	p := NewCircularPath(map[string]float64{
		"radiusX": 5, "radiusY": 5, "clockwise": 1,
		"heightAmplitude": 0, "tiltX": 0, "tiltY": 0,
		"centerX": 0, "centerY": 0, "centerZ": 0,
	})

	tests := []struct {
		progress float64
		want     geom.Point3D
	}{
		{0, geom.Point3D{X: 5, Y: 0, Z: 0}},
		{0.25, geom.Point3D{X: 0, Y: 0, Z: 5}},
		{0.5, geom.Point3D{X: -5, Y: 0, Z: 0}},
		{0.75, geom.Point3D{X: 0, Y: 0, Z: -5}},
	}

	for _, tt := range tests {
		got := p.GetPositionAt(tt.progress)
		if got.Distance(tt.want) > 1e-9 {
			t.Errorf("At progress %.2f: expected %+v, got %+v", tt.progress, tt.want, got)
		}
	}
}

func TestCircularEllipseLength(t *testing.T) {
	// For a circle of radius 5 the Ramanujan approximation collapses to the
	// exact circumference.
	p := NewCircularPath(map[string]float64{"radiusX": 5, "radiusY": 5})

	want := 2 * math.Pi * 5
	if got := p.GetLength(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected circumference %.6f, got %.6f", want, got)
	}
}

func TestSplineEndpoints(t *testing.T) {
	points := []geom.Point3D{
		{X: -5, Y: 0, Z: 0},
		{X: -2, Y: 3, Z: 1},
		{X: 2, Y: -1, Z: -2},
		{X: 6, Y: 2, Z: 4},
	}
	p := NewSplinePath(points, nil)

	if got := p.GetPositionAt(0); got != points[0] {
		t.Errorf("Expected exact first control point %+v, got %+v", points[0], got)
	}
	if got := p.GetPositionAt(1); got != points[3] {
		t.Errorf("Expected exact last control point %+v, got %+v", points[3], got)
	}
}

func TestSplineClosedWraps(t *testing.T) {
	points := []geom.Point3D{
		{X: 5, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: 5},
		{X: -5, Y: 0, Z: 0},
		{X: 0, Y: 0, Z: -5},
	}
	p := NewSplinePath(points, map[string]float64{"closed": 1})

	start := p.GetPositionAt(0)
	end := p.GetPositionAt(1)
	if start.Distance(end) > 1e-9 {
		t.Errorf("Closed spline should wrap: start %+v vs end %+v", start, end)
	}
}

func TestSplineSinglePoint(t *testing.T) {
	only := geom.Point3D{X: 1, Y: 2, Z: 3}
	p := NewSplinePath([]geom.Point3D{only}, nil)

	if got := p.GetPositionAt(0.7); got != only {
		t.Errorf("Single-point spline should pin to its point, got %+v", got)
	}
	if tangent := p.GetTangentAt(0.7); tangent != (geom.Point3D{X: 0, Y: 0, Z: 1}) {
		t.Errorf("Single-point spline should use fallback tangent, got %+v", tangent)
	}
}

func TestTangentsAreUnitLength(t *testing.T) {
	generators := map[string]Generator{
		"linear":    NewLinearPath(nil),
		"circular":  NewCircularPath(map[string]float64{"tiltX": 0.4, "tiltY": -0.2, "heightAmplitude": 2}),
		"lissajous": NewLissajousPath(nil),
		"spline":    NewSplinePath(nil, nil),
		"lorenz":    NewLorenzPath(map[string]float64{"steps": 1000}),
	}

	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			for i := 0; i <= 20; i++ {
				progress := float64(i) / 20
				l := gen.GetTangentAt(progress).Length()
				if math.Abs(l-1) > 1e-6 {
					t.Errorf("Tangent at progress %.2f has length %.9f, want 1", progress, l)
				}
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	for _, id := range Default.GetTypes() {
		t.Run(id, func(t *testing.T) {
			a := Default.Create(id, nil)
			b := Default.Create(id, nil)
			for i := 0; i <= 10; i++ {
				progress := float64(i) / 10
				if a.GetPositionAt(progress) != b.GetPositionAt(progress) {
					t.Errorf("Position at %.2f differs between identical instances", progress)
				}
				if a.GetTangentAt(progress) != b.GetTangentAt(progress) {
					t.Errorf("Tangent at %.2f differs between identical instances", progress)
				}
			}
		})
	}
}

func TestProgressClamping(t *testing.T) {
	p := NewCircularPath(nil)

	if got, want := p.GetPositionAt(-0.5), p.GetPositionAt(0); got != want {
		t.Errorf("Negative progress should clamp to 0: got %+v want %+v", got, want)
	}
	if got, want := p.GetPositionAt(1.5), p.GetPositionAt(1); got != want {
		t.Errorf("Progress above 1 should clamp to 1: got %+v want %+v", got, want)
	}
}

func TestPrecomputeSampleCount(t *testing.T) {
	for _, id := range Default.GetTypes() {
		gen := Default.Create(id, nil)
		samples := gen.PrecomputePath(64)
		if len(samples) != 65 {
			t.Errorf("%s: expected 65 samples for resolution 64, got %d", id, len(samples))
		}
	}
}

func TestSetParamsInvalidatesCache(t *testing.T) {
	p := NewLinearPath(nil)
	before := p.PrecomputePath(16)

	p.SetParams(map[string]float64{"endX": 50})
	after := p.PrecomputePath(16)

	if before[16] == after[16] {
		t.Errorf("Cache should be invalidated after a param change, end sample unchanged: %+v", after[16])
	}

	// Setting the same values must not rebuild anything.
	again := p.PrecomputePath(16)
	p.SetParams(map[string]float64{"endX": 50})
	if &again[0] != &p.PrecomputePath(16)[0] {
		t.Errorf("Unchanged params should keep the cached sample array")
	}
}

func TestParamsMergeOverDefaults(t *testing.T) {
	p := NewCircularPath(map[string]float64{"radiusX": 9})
	params := p.GetParams()

	if params["radiusX"] != 9 {
		t.Errorf("Override not applied: radiusX=%g", params["radiusX"])
	}
	if params["radiusY"] != 5 {
		t.Errorf("Missing key should fall back to default: radiusY=%g", params["radiusY"])
	}

	// The snapshot is a copy; mutating it must not affect the generator.
	params["radiusX"] = 100
	if p.GetParams()["radiusX"] != 9 {
		t.Errorf("GetParams should return a snapshot, not the live mapping")
	}
}

func TestLissajousRebakesOnParamChange(t *testing.T) {
	p := NewLissajousPath(nil)
	before := p.GetPositionAt(0.35)

	p.SetParams(map[string]float64{"amplitudeX": 20})
	after := p.GetPositionAt(0.35)

	if before == after {
		t.Errorf("Lissajous should rebake after amplitude change, position unchanged: %+v", after)
	}
}

func TestLorenzCenterAtOrigin(t *testing.T) {
	p := NewLorenzPath(map[string]float64{"steps": 2000, "centerAtOrigin": 1})

	samples := p.PrecomputePath(200)
	min, max := samples[0], samples[0]
	for _, s := range samples {
		min.X = math.Min(min.X, s.X)
		min.Y = math.Min(min.Y, s.Y)
		min.Z = math.Min(min.Z, s.Z)
		max.X = math.Max(max.X, s.X)
		max.Y = math.Max(max.Y, s.Y)
		max.Z = math.Max(max.Z, s.Z)
	}

	mid := min.Add(max).Scale(0.5)
	if mid.Length() > 1.0 {
		t.Errorf("Recentered attractor bounding-box midpoint too far from origin: %+v", mid)
	}
	t.Logf("Attractor bounds: min=%+v max=%+v length=%.2f", min, max, p.GetLength())
}

func TestLorenzLengthPositive(t *testing.T) {
	p := NewLorenzPath(map[string]float64{"steps": 500})
	if l := p.GetLength(); l <= 0 {
		t.Errorf("Expected positive arc length, got %g", l)
	}
}
