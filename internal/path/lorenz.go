package path

import (
	"math"

	"github.com/ivlev/cardmotion/internal/geom"
)

// TypeLorenz is the registry id of the Lorenz attractor path.
const TypeLorenz = "lorenz"

// LorenzPath traces the Lorenz attractor, integrated once with forward Euler
// at construction time and on parameter change. Position and tangent queries
// interpolate between baked samples by index fraction, not by arc length:
// traversal speed varies visibly along the curve, which is the intended
// look. The cumulative arc-length table is still built for GetLength.
type LorenzPath struct {
	params     map[string]float64
	baked      []geom.Point3D
	arcLengths []float64
	cache      sampleCache
}

// LorenzConfig returns the static metadata of the Lorenz path type.
func LorenzConfig() Config {
	defaults := map[string]float64{
		"sigma": 10, "rho": 28, "beta": 8.0 / 3.0,
		"scale": 0.2, "dt": 0.005, "steps": 4000,
		"centerAtOrigin": 1,
	}
	return Config{
		Type:          TypeLorenz,
		Name:          "Lorenz Attractor",
		Description:   "Chaotic butterfly orbit from the Lorenz ODE system",
		DefaultParams: defaults,
		Parameters: []ParamMeta{
			{Key: "sigma", Label: "Sigma", Min: 0.1, Max: 50, Step: 0.1, Default: 10},
			{Key: "rho", Label: "Rho", Min: 0.1, Max: 100, Step: 0.1, Default: 28},
			{Key: "beta", Label: "Beta", Min: 0.1, Max: 10, Step: 0.01, Default: 8.0 / 3.0},
			{Key: "scale", Label: "Scale", Min: 0.001, Max: 10, Step: 0.001, Default: 0.2},
			{Key: "dt", Label: "Time Step", Min: 0.0001, Max: 0.05, Step: 0.0001, Default: 0.005},
			{Key: "steps", Label: "Steps", Min: 100, Max: 50000, Step: 100, Default: 4000},
			{Key: "centerAtOrigin", Label: "Center At Origin", Min: 0, Max: 1, Step: 1, Default: 1},
		},
	}
}

// NewLorenzPath creates a Lorenz path and integrates the attractor.
func NewLorenzPath(params map[string]float64) *LorenzPath {
	p := &LorenzPath{params: mergeParams(LorenzConfig().DefaultParams, params)}
	p.integrate()
	return p
}

// integrate runs the forward Euler integration from a fixed near-origin
// initial condition and bakes the sample and arc-length tables.
func (p *LorenzPath) integrate() {
	sigma := p.params["sigma"]
	rho := p.params["rho"]
	beta := p.params["beta"]
	scale := p.params["scale"]
	dt := p.params["dt"]
	steps := int(p.params["steps"])
	if steps < 2 {
		steps = 2
	}

	x, y, z := 0.1, 0.0, 0.0
	samples := make([]geom.Point3D, steps)
	for i := 0; i < steps; i++ {
		dx := sigma * (y - x)
		dy := x*(rho-z) - y
		dz := x*y - beta*z
		x += dx * dt
		y += dy * dt
		z += dz * dt
		// Simulation y/z are swapped so the butterfly reads upright on screen.
		samples[i] = geom.Point3D{X: x * scale, Y: z * scale, Z: y * scale}
	}

	if p.params["centerAtOrigin"] != 0 {
		min := samples[0]
		max := samples[0]
		for _, s := range samples {
			min.X = math.Min(min.X, s.X)
			min.Y = math.Min(min.Y, s.Y)
			min.Z = math.Min(min.Z, s.Z)
			max.X = math.Max(max.X, s.X)
			max.Y = math.Max(max.Y, s.Y)
			max.Z = math.Max(max.Z, s.Z)
		}
		mid := min.Add(max).Scale(0.5)
		for i := range samples {
			samples[i] = samples[i].Sub(mid)
		}
	}

	arcLengths := make([]float64, len(samples))
	for i := 1; i < len(samples); i++ {
		arcLengths[i] = arcLengths[i-1] + samples[i].Distance(samples[i-1])
	}

	p.baked = samples
	p.arcLengths = arcLengths
}

// GetPositionAt interpolates between baked samples by index fraction.
func (p *LorenzPath) GetPositionAt(progress float64) geom.Point3D {
	scaled := clampProgress(progress) * float64(len(p.baked)-1)
	idx := int(scaled)
	if idx >= len(p.baked)-1 {
		return p.baked[len(p.baked)-1]
	}
	return p.baked[idx].Lerp(p.baked[idx+1], scaled-float64(idx))
}

// GetTangentAt estimates the tangent from neighboring baked samples.
func (p *LorenzPath) GetTangentAt(progress float64) geom.Point3D {
	last := len(p.baked) - 1
	idx := int(clampProgress(progress) * float64(last))
	lo := idx - 1
	if lo < 0 {
		lo = 0
	}
	hi := idx + 1
	if hi > last {
		hi = last
	}
	return p.baked[hi].Sub(p.baked[lo]).Normalize()
}

// GetConfig returns the Lorenz path metadata.
func (p *LorenzPath) GetConfig() Config {
	return LorenzConfig()
}

// PrecomputePath returns resolution+1 evenly spaced samples.
func (p *LorenzPath) PrecomputePath(resolution int) []geom.Point3D {
	if samples, ok := p.cache.get(resolution); ok {
		return samples
	}
	samples := samplePositions(resolution, p.GetPositionAt)
	p.cache.put(resolution, samples)
	return samples
}

// GetLength returns the total integrated arc length.
func (p *LorenzPath) GetLength() float64 {
	return p.arcLengths[len(p.arcLengths)-1]
}

// SetParams merge-updates the parameters; any actual change invalidates the
// sample cache and re-integrates the attractor.
func (p *LorenzPath) SetParams(params map[string]float64) {
	merged := mergeParams(p.params, params)
	if paramsEqual(merged, p.params) {
		return
	}
	p.params = merged
	p.cache.invalidate()
	p.integrate()
}

// GetParams returns a snapshot of the current parameters.
func (p *LorenzPath) GetParams() map[string]float64 {
	return cloneParams(p.params)
}
