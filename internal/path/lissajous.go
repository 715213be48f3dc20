package path

import (
	"math"

	"github.com/ivlev/cardmotion/internal/geom"
)

// TypeLissajous is the registry id of the 3D Lissajous path.
const TypeLissajous = "lissajous"

// LissajousPath traces a 3D Lissajous figure: A·sin(f·θ+φ) per axis over one
// full 2π cycle. The curve is baked into a sample table at construction time
// and on parameter change; arbitrary-progress queries interpolate between
// the two nearest baked samples.
type LissajousPath struct {
	params map[string]float64
	baked  []geom.Point3D
	cache  sampleCache
}

// LissajousConfig returns the static metadata of the Lissajous path type.
func LissajousConfig() Config {
	defaults := map[string]float64{
		"amplitudeX": 5, "amplitudeY": 3, "amplitudeZ": 5,
		"frequencyX": 3, "frequencyY": 2, "frequencyZ": 5,
		"phaseX": 0, "phaseY": math.Pi / 2, "phaseZ": 0,
		"resolution": 256,
	}
	return Config{
		Type:          TypeLissajous,
		Name:          "Lissajous 3D",
		Description:   "Three-axis harmonic figure baked over one full cycle",
		DefaultParams: defaults,
		Parameters: []ParamMeta{
			{Key: "amplitudeX", Label: "Amplitude X", Min: 0, Max: 50, Step: 0.1, Default: 5},
			{Key: "amplitudeY", Label: "Amplitude Y", Min: 0, Max: 50, Step: 0.1, Default: 3},
			{Key: "amplitudeZ", Label: "Amplitude Z", Min: 0, Max: 50, Step: 0.1, Default: 5},
			{Key: "frequencyX", Label: "Frequency X", Min: 1, Max: 20, Step: 1, Default: 3},
			{Key: "frequencyY", Label: "Frequency Y", Min: 1, Max: 20, Step: 1, Default: 2},
			{Key: "frequencyZ", Label: "Frequency Z", Min: 1, Max: 20, Step: 1, Default: 5},
			{Key: "phaseX", Label: "Phase X", Min: 0, Max: 2 * math.Pi, Step: 0.01, Default: 0},
			{Key: "phaseY", Label: "Phase Y", Min: 0, Max: 2 * math.Pi, Step: 0.01, Default: math.Pi / 2},
			{Key: "phaseZ", Label: "Phase Z", Min: 0, Max: 2 * math.Pi, Step: 0.01, Default: 0},
			{Key: "resolution", Label: "Bake Resolution", Min: 16, Max: 4096, Step: 1, Default: 256},
		},
	}
}

// NewLissajousPath creates a Lissajous path and bakes its sample table.
func NewLissajousPath(params map[string]float64) *LissajousPath {
	p := &LissajousPath{params: mergeParams(LissajousConfig().DefaultParams, params)}
	p.bake()
	return p
}

func (p *LissajousPath) bake() {
	resolution := int(p.params["resolution"])
	if resolution < 2 {
		resolution = 2
	}
	samples := make([]geom.Point3D, resolution+1)
	for i := 0; i <= resolution; i++ {
		theta := 2 * math.Pi * float64(i) / float64(resolution)
		samples[i] = geom.Point3D{
			X: p.params["amplitudeX"] * math.Sin(p.params["frequencyX"]*theta+p.params["phaseX"]),
			Y: p.params["amplitudeY"] * math.Sin(p.params["frequencyY"]*theta+p.params["phaseY"]),
			Z: p.params["amplitudeZ"] * math.Sin(p.params["frequencyZ"]*theta+p.params["phaseZ"]),
		}
	}
	p.baked = samples
}

// GetPositionAt interpolates linearly between the two baked samples nearest
// to the given progress.
func (p *LissajousPath) GetPositionAt(progress float64) geom.Point3D {
	scaled := clampProgress(progress) * float64(len(p.baked)-1)
	idx := int(scaled)
	if idx >= len(p.baked)-1 {
		return p.baked[len(p.baked)-1]
	}
	return p.baked[idx].Lerp(p.baked[idx+1], scaled-float64(idx))
}

// GetTangentAt estimates the tangent from a finite difference over a small
// window of neighboring baked samples, normalized.
func (p *LissajousPath) GetTangentAt(progress float64) geom.Point3D {
	last := len(p.baked) - 1
	idx := int(clampProgress(progress) * float64(last))

	window := 2
	lo := idx - window
	if lo < 0 {
		lo = 0
	}
	hi := idx + window
	if hi > last {
		hi = last
	}
	return p.baked[hi].Sub(p.baked[lo]).Normalize()
}

// GetConfig returns the Lissajous path metadata.
func (p *LissajousPath) GetConfig() Config {
	return LissajousConfig()
}

// PrecomputePath returns resolution+1 evenly spaced samples.
func (p *LissajousPath) PrecomputePath(resolution int) []geom.Point3D {
	if samples, ok := p.cache.get(resolution); ok {
		return samples
	}
	samples := samplePositions(resolution, p.GetPositionAt)
	p.cache.put(resolution, samples)
	return samples
}

// GetLength returns the summed chord length over the baked table.
func (p *LissajousPath) GetLength() float64 {
	return chordLength(p.baked)
}

// SetParams merge-updates the parameters; any actual change invalidates the
// sample cache and rebakes the curve.
func (p *LissajousPath) SetParams(params map[string]float64) {
	merged := mergeParams(p.params, params)
	if paramsEqual(merged, p.params) {
		return
	}
	p.params = merged
	p.cache.invalidate()
	p.bake()
}

// GetParams returns a snapshot of the current parameters.
func (p *LissajousPath) GetParams() map[string]float64 {
	return cloneParams(p.params)
}
