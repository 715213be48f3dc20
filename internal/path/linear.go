package path

import (
	"github.com/ivlev/cardmotion/internal/geom"
)

// TypeLinear is the registry id of the straight-line path.
const TypeLinear = "linear"

// LinearPath moves in a straight line from a start point to an end point.
type LinearPath struct {
	params map[string]float64
	cache  sampleCache
}

// LinearConfig returns the static metadata of the linear path type.
func LinearConfig() Config {
	defaults := map[string]float64{
		"startX": -5, "startY": 0, "startZ": 0,
		"endX": 5, "endY": 0, "endZ": 0,
	}
	return Config{
		Type:          TypeLinear,
		Name:          "Linear",
		Description:   "Straight line between two points",
		DefaultParams: defaults,
		Parameters: []ParamMeta{
			{Key: "startX", Label: "Start X", Min: -100, Max: 100, Step: 0.1, Default: -5},
			{Key: "startY", Label: "Start Y", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "startZ", Label: "Start Z", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "endX", Label: "End X", Min: -100, Max: 100, Step: 0.1, Default: 5},
			{Key: "endY", Label: "End Y", Min: -100, Max: 100, Step: 0.1, Default: 0},
			{Key: "endZ", Label: "End Z", Min: -100, Max: 100, Step: 0.1, Default: 0},
		},
	}
}

// NewLinearPath creates a linear path, merging params over the defaults.
func NewLinearPath(params map[string]float64) *LinearPath {
	return &LinearPath{params: mergeParams(LinearConfig().DefaultParams, params)}
}

func (p *LinearPath) start() geom.Point3D {
	return geom.Point3D{X: p.params["startX"], Y: p.params["startY"], Z: p.params["startZ"]}
}

func (p *LinearPath) end() geom.Point3D {
	return geom.Point3D{X: p.params["endX"], Y: p.params["endY"], Z: p.params["endZ"]}
}

// GetPositionAt returns the lerp between start and end at the given progress.
func (p *LinearPath) GetPositionAt(progress float64) geom.Point3D {
	return p.start().Lerp(p.end(), clampProgress(progress))
}

// GetTangentAt returns the constant direction from start to end, or (0,0,1)
// for a zero-length segment.
func (p *LinearPath) GetTangentAt(progress float64) geom.Point3D {
	return p.end().Sub(p.start()).Normalize()
}

// GetConfig returns the linear path metadata.
func (p *LinearPath) GetConfig() Config {
	return LinearConfig()
}

// PrecomputePath returns resolution+1 evenly spaced samples.
func (p *LinearPath) PrecomputePath(resolution int) []geom.Point3D {
	if samples, ok := p.cache.get(resolution); ok {
		return samples
	}
	samples := samplePositions(resolution, p.GetPositionAt)
	p.cache.put(resolution, samples)
	return samples
}

// GetLength returns the exact segment length.
func (p *LinearPath) GetLength() float64 {
	return p.end().Distance(p.start())
}

// SetParams merge-updates the parameters and invalidates the sample cache
// when anything actually changed.
func (p *LinearPath) SetParams(params map[string]float64) {
	merged := mergeParams(p.params, params)
	if paramsEqual(merged, p.params) {
		return
	}
	p.params = merged
	p.cache.invalidate()
}

// GetParams returns a snapshot of the current parameters.
func (p *LinearPath) GetParams() map[string]float64 {
	return cloneParams(p.params)
}
