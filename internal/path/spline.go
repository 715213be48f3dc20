package path

import (
	"github.com/ivlev/cardmotion/internal/geom"
)

// TypeSpline is the registry id of the Catmull-Rom spline path.
const TypeSpline = "spline"

// SplinePath follows a Catmull-Rom spline through an ordered list of control
// points. Open curves clamp the virtual neighbors at each end to the nearest
// real point; closed curves wrap indices modulo the point count.
type SplinePath struct {
	params map[string]float64
	points []geom.Point3D
	cache  sampleCache
}

// SplineConfig returns the static metadata of the spline path type.
func SplineConfig() Config {
	defaults := map[string]float64{
		"tension": 0.5,
		"closed":  0,
	}
	return Config{
		Type:          TypeSpline,
		Name:          "Catmull-Rom Spline",
		Description:   "Smooth curve through ordered control points",
		DefaultParams: defaults,
		Parameters: []ParamMeta{
			{Key: "tension", Label: "Tension", Min: 0, Max: 1, Step: 0.01, Default: 0.5},
			{Key: "closed", Label: "Closed", Min: 0, Max: 1, Step: 1, Default: 0, Description: "1 closes the curve back to its first point"},
		},
	}
}

// defaultSplinePoints is the control polygon used when the caller supplies
// no points (e.g. a freshly created path in the editor).
func defaultSplinePoints() []geom.Point3D {
	return []geom.Point3D{
		{X: -5, Y: 0, Z: 0},
		{X: -2, Y: 2, Z: 3},
		{X: 2, Y: -1, Z: -3},
		{X: 5, Y: 0, Z: 0},
	}
}

// NewSplinePath creates a spline path. A nil or empty points list falls back
// to a default control polygon.
func NewSplinePath(points []geom.Point3D, params map[string]float64) *SplinePath {
	if len(points) == 0 {
		points = defaultSplinePoints()
	}
	p := &SplinePath{params: mergeParams(SplineConfig().DefaultParams, params)}
	p.points = make([]geom.Point3D, len(points))
	copy(p.points, points)
	return p
}

// SetControlPoints replaces the control polygon and invalidates the cache.
func (p *SplinePath) SetControlPoints(points []geom.Point3D) {
	if len(points) == 0 {
		points = defaultSplinePoints()
	}
	p.points = make([]geom.Point3D, len(points))
	copy(p.points, points)
	p.cache.invalidate()
}

// GetControlPoints returns a copy of the control polygon.
func (p *SplinePath) GetControlPoints() []geom.Point3D {
	out := make([]geom.Point3D, len(p.points))
	copy(out, p.points)
	return out
}

func (p *SplinePath) closed() bool {
	return p.params["closed"] != 0
}

// segmentCount returns the number of spline segments: n for a closed curve,
// n-1 for an open one.
func (p *SplinePath) segmentCount() int {
	n := len(p.points)
	if p.closed() {
		return n
	}
	return n - 1
}

// controlPoint resolves a possibly out-of-range control index: closed curves
// wrap, open curves clamp to the nearest real point.
func (p *SplinePath) controlPoint(i int) geom.Point3D {
	n := len(p.points)
	if p.closed() {
		return p.points[((i%n)+n)%n]
	}
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return p.points[i]
}

// locate maps a clamped progress to (segment index, local t).
func (p *SplinePath) locate(progress float64) (int, float64) {
	numSegments := p.segmentCount()
	scaled := clampProgress(progress) * float64(numSegments)
	seg := int(scaled)
	if seg >= numSegments {
		seg = numSegments - 1
	}
	return seg, scaled - float64(seg)
}

// segment returns the four control points surrounding a segment.
func (p *SplinePath) segment(seg int) (p0, p1, p2, p3 geom.Point3D) {
	return p.controlPoint(seg - 1), p.controlPoint(seg), p.controlPoint(seg + 1), p.controlPoint(seg + 2)
}

// GetPositionAt evaluates the spline at the given progress. The t=0 and t=1
// basis weights collapse to a single control point, so an open curve starts
// and ends exactly on its first and last points.
func (p *SplinePath) GetPositionAt(progress float64) geom.Point3D {
	if len(p.points) == 1 {
		return p.points[0]
	}
	seg, t := p.locate(progress)
	p0, p1, p2, p3 := p.segment(seg)

	s := 1 - p.params["tension"]
	m1 := p2.Sub(p0).Scale(s / 2)
	m2 := p3.Sub(p1).Scale(s / 2)

	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return p1.Scale(h00).Add(m1.Scale(h10)).Add(p2.Scale(h01)).Add(m2.Scale(h11))
}

// GetTangentAt evaluates the analytic basis derivative, normalized.
func (p *SplinePath) GetTangentAt(progress float64) geom.Point3D {
	if len(p.points) == 1 {
		return geom.Point3D{X: 0, Y: 0, Z: 1}
	}
	seg, t := p.locate(progress)
	p0, p1, p2, p3 := p.segment(seg)

	s := 1 - p.params["tension"]
	m1 := p2.Sub(p0).Scale(s / 2)
	m2 := p3.Sub(p1).Scale(s / 2)

	t2 := t * t
	dh00 := 6*t2 - 6*t
	dh10 := 3*t2 - 4*t + 1
	dh01 := -6*t2 + 6*t
	dh11 := 3*t2 - 2*t

	return p1.Scale(dh00).Add(m1.Scale(dh10)).Add(p2.Scale(dh01)).Add(m2.Scale(dh11)).Normalize()
}

// GetConfig returns the spline path metadata.
func (p *SplinePath) GetConfig() Config {
	return SplineConfig()
}

// PrecomputePath returns resolution+1 evenly spaced samples.
func (p *SplinePath) PrecomputePath(resolution int) []geom.Point3D {
	if samples, ok := p.cache.get(resolution); ok {
		return samples
	}
	samples := samplePositions(resolution, p.GetPositionAt)
	p.cache.put(resolution, samples)
	return samples
}

// GetLength returns the summed chord length over a sampled polyline.
func (p *SplinePath) GetLength() float64 {
	return chordLength(p.PrecomputePath(128))
}

// SetParams merge-updates the parameters and invalidates the sample cache
// when anything actually changed.
func (p *SplinePath) SetParams(params map[string]float64) {
	merged := mergeParams(p.params, params)
	if paramsEqual(merged, p.params) {
		return
	}
	p.params = merged
	p.cache.invalidate()
}

// GetParams returns a snapshot of the current parameters.
func (p *SplinePath) GetParams() map[string]float64 {
	return cloneParams(p.params)
}
