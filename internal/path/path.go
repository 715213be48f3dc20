package path

import (
	"github.com/ivlev/cardmotion/internal/geom"
)

// ParamMeta describes a single numeric parameter of a path type for
// UI/validation purposes.
type ParamMeta struct {
	Key         string  `yaml:"key" json:"key"`
	Label       string  `yaml:"label" json:"label"`
	Min         float64 `yaml:"min" json:"min"`
	Max         float64 `yaml:"max" json:"max"`
	Step        float64 `yaml:"step" json:"step"`
	Default     float64 `yaml:"default" json:"default"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
}

// Config is the static metadata of a path type. One instance per registered
// type; identical across generator instances of that type.
type Config struct {
	Type          string             `yaml:"type" json:"type"`
	Name          string             `yaml:"name" json:"name"`
	Description   string             `yaml:"description" json:"description"`
	DefaultParams map[string]float64 `yaml:"defaultParams" json:"defaultParams"`
	Parameters    []ParamMeta        `yaml:"parameters" json:"parameters"`
}

// Generator is the contract all path algorithms implement. Progress is
// always clamped to [0,1] by the generator itself; callers must not rely on
// extrapolation. Position and tangent queries are deterministic and
// side-effect-free given the current parameters.
type Generator interface {
	// GetPositionAt returns the path position for a progress value in [0,1].
	GetPositionAt(progress float64) geom.Point3D

	// GetTangentAt returns a unit tangent for a progress value in [0,1].
	// Degenerate geometry falls back to (0,0,1).
	GetTangentAt(progress float64) geom.Point3D

	// GetConfig returns the static metadata of the generator's type.
	GetConfig() Config

	// PrecomputePath returns resolution+1 evenly-progress-spaced samples.
	// Implementations may cache the array keyed by resolution; the cache is
	// invalidated when parameters change.
	PrecomputePath(resolution int) []geom.Point3D

	// GetLength returns the approximate arc length of the path.
	GetLength() float64

	// SetParams merge-updates the parameter mapping. Setting params that
	// actually change values invalidates any sample cache and, for baked
	// paths, triggers recomputation.
	SetParams(params map[string]float64)

	// GetParams returns a snapshot of the current parameter mapping.
	GetParams() map[string]float64
}

// ControlPointPath is implemented by generators driven by an explicit list
// of control points (the spline path) in addition to their numeric params.
type ControlPointPath interface {
	SetControlPoints(points []geom.Point3D)
	GetControlPoints() []geom.Point3D
}

// clampProgress clamps a progress value to [0,1].
func clampProgress(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// mergeParams overlays overrides on top of defaults. The result always
// contains every key present in defaults; missing keys fall back to the
// default value, never to zero.
func mergeParams(defaults, overrides map[string]float64) map[string]float64 {
	merged := make(map[string]float64, len(defaults))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

// cloneParams returns a copy of a parameter mapping.
func cloneParams(params map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(params))
	for k, v := range params {
		out[k] = v
	}
	return out
}

// paramsEqual reports whether two parameter mappings hold the same values.
// Used to skip redundant recomputation when SetParams changes nothing.
func paramsEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// chordLength sums the straight-line distances of a polyline.
func chordLength(samples []geom.Point3D) float64 {
	total := 0.0
	for i := 1; i < len(samples); i++ {
		total += samples[i].Distance(samples[i-1])
	}
	return total
}

// samplePositions builds resolution+1 evenly spaced samples by querying fn.
func samplePositions(resolution int, fn func(progress float64) geom.Point3D) []geom.Point3D {
	if resolution < 1 {
		resolution = 1
	}
	samples := make([]geom.Point3D, resolution+1)
	for i := 0; i <= resolution; i++ {
		samples[i] = fn(float64(i) / float64(resolution))
	}
	return samples
}

// sampleCache holds precomputed polylines keyed by resolution. It is an
// internal optimization, invalidated synchronously on any parameter write.
type sampleCache struct {
	entries map[int][]geom.Point3D
}

func (c *sampleCache) get(resolution int) ([]geom.Point3D, bool) {
	if c.entries == nil {
		return nil, false
	}
	samples, ok := c.entries[resolution]
	return samples, ok
}

func (c *sampleCache) put(resolution int, samples []geom.Point3D) {
	if c.entries == nil {
		c.entries = make(map[int][]geom.Point3D)
	}
	c.entries[resolution] = samples
}

func (c *sampleCache) invalidate() {
	c.entries = nil
}
