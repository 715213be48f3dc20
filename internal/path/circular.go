package path

import (
	"math"

	"github.com/ivlev/cardmotion/internal/geom"
)

// TypeCircular is the registry id of the circular/orbital path.
const TypeCircular = "circular"

// CircularPath orbits an ellipse in the XZ plane with an optional vertical
// sinusoid, tilted around the X and Y axes and translated to a center point.
type CircularPath struct {
	params map[string]float64
	cache  sampleCache
}

// CircularConfig returns the static metadata of the circular path type.
func CircularConfig() Config {
	defaults := map[string]float64{
		"radiusX": 5, "radiusY": 5,
		"tiltX": 0, "tiltY": 0,
		"centerX": 0, "centerY": 0, "centerZ": 0,
		"heightAmplitude": 0, "heightFrequency": 1,
		"clockwise": 1,
	}
	return Config{
		Type:          TypeCircular,
		Name:          "Circular / Orbital",
		Description:   "Elliptical orbit with optional tilt and vertical oscillation",
		DefaultParams: defaults,
		Parameters: []ParamMeta{
			{Key: "radiusX", Label: "Radius X", Min: 0, Max: 100, Step: 0.1, Default: 5},
			{Key: "radiusY", Label: "Radius Y", Min: 0, Max: 100, Step: 0.1, Default: 5, Description: "Ellipse radius along the Z axis"},
			{Key: "tiltX", Label: "Tilt X", Min: -math.Pi, Max: math.Pi, Step: 0.01, Default: 0, Description: "Rotation of the orbit plane around X (radians)"},
			{Key: "tiltY", Label: "Tilt Y", Min: -math.Pi, Max: math.Pi, Step: 0.01, Default: 0, Description: "Rotation of the orbit plane around Y (radians)"},
			{Key: "centerX", Label: "Center X", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "centerY", Label: "Center Y", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "centerZ", Label: "Center Z", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "heightAmplitude", Label: "Height Amplitude", Min: 0, Max: 50, Step: 0.1, Default: 0},
			{Key: "heightFrequency", Label: "Height Frequency", Min: 0, Max: 10, Step: 0.1, Default: 1},
			{Key: "clockwise", Label: "Direction", Min: -1, Max: 1, Step: 2, Default: 1, Description: "1 clockwise, -1 counter-clockwise"},
		},
	}
}

// NewCircularPath creates a circular path, merging params over the defaults.
func NewCircularPath(params map[string]float64) *CircularPath {
	return &CircularPath{params: mergeParams(CircularConfig().DefaultParams, params)}
}

func (p *CircularPath) direction() float64 {
	if p.params["clockwise"] < 0 {
		return -1
	}
	return 1
}

// GetPositionAt returns the orbit position at the given progress.
func (p *CircularPath) GetPositionAt(progress float64) geom.Point3D {
	angle := clampProgress(progress) * 2 * math.Pi * p.direction()

	base := geom.Point3D{
		X: p.params["radiusX"] * math.Cos(angle),
		Y: p.params["heightAmplitude"] * math.Sin(angle*p.params["heightFrequency"]),
		Z: p.params["radiusY"] * math.Sin(angle),
	}

	tilted := base.RotateX(p.params["tiltX"]).RotateY(p.params["tiltY"])
	return tilted.Add(geom.Point3D{X: p.params["centerX"], Y: p.params["centerY"], Z: p.params["centerZ"]})
}

// GetTangentAt returns the analytic orbit derivative, subjected to the same
// tilt rotations and normalized.
func (p *CircularPath) GetTangentAt(progress float64) geom.Point3D {
	dir := p.direction()
	angle := clampProgress(progress) * 2 * math.Pi * dir

	deriv := geom.Point3D{
		X: -p.params["radiusX"] * math.Sin(angle) * dir,
		Y: p.params["heightAmplitude"] * p.params["heightFrequency"] * math.Cos(angle*p.params["heightFrequency"]) * dir,
		Z: p.params["radiusY"] * math.Cos(angle) * dir,
	}

	return deriv.RotateX(p.params["tiltX"]).RotateY(p.params["tiltY"]).Normalize()
}

// GetConfig returns the circular path metadata.
func (p *CircularPath) GetConfig() Config {
	return CircularConfig()
}

// PrecomputePath returns resolution+1 evenly spaced samples.
func (p *CircularPath) PrecomputePath(resolution int) []geom.Point3D {
	if samples, ok := p.cache.get(resolution); ok {
		return samples
	}
	samples := samplePositions(resolution, p.GetPositionAt)
	p.cache.put(resolution, samples)
	return samples
}

// GetLength approximates the ellipse circumference using Ramanujan's
// formula. The vertical oscillation is ignored, which keeps the value
// closed-form and is close enough for speed normalization.
func (p *CircularPath) GetLength() float64 {
	a, b := p.params["radiusX"], p.params["radiusY"]
	return math.Pi * (3*(a+b) - math.Sqrt((3*a+b)*(a+3*b)))
}

// SetParams merge-updates the parameters and invalidates the sample cache
// when anything actually changed.
func (p *CircularPath) SetParams(params map[string]float64) {
	merged := mergeParams(p.params, params)
	if paramsEqual(merged, p.params) {
		return
	}
	p.params = merged
	p.cache.invalidate()
}

// GetParams returns a snapshot of the current parameters.
func (p *CircularPath) GetParams() map[string]float64 {
	return cloneParams(p.params)
}
