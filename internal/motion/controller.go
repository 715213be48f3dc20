package motion

import (
	"math"

	"github.com/ivlev/cardmotion/internal/path"
)

// Controller maps a frame number to a full transform state for one animated
// object: progress calculation, path query, then the modifier pipeline. Each
// controller owns its path generator exclusively; instances are never shared
// across objects.
type Controller struct {
	cfg      Config
	registry *path.Registry
	gen      path.Generator
	runtime  []Modifier
}

// NewController creates a controller resolving path types against the
// default registry.
func NewController(cfg Config) *Controller {
	return NewControllerWith(path.Default, cfg)
}

// NewControllerWith creates a controller with an explicit registry, for
// hosts (and tests) that need isolated path type sets.
func NewControllerWith(registry *path.Registry, cfg Config) *Controller {
	c := &Controller{registry: registry}
	c.SetConfig(cfg)
	return c
}

// SetConfig replaces the configuration. The path instance is re-resolved
// when the path type changes and re-parameterized in place otherwise.
func (c *Controller) SetConfig(cfg Config) {
	sameType := c.gen != nil && c.cfg.PathType == cfg.PathType
	c.cfg = normalizeConfig(cfg)

	if sameType {
		c.gen.SetParams(c.cfg.PathParams)
	} else {
		c.gen = c.registry.Create(c.cfg.PathType, c.cfg.PathParams)
	}

	if cp, ok := c.gen.(path.ControlPointPath); ok && len(c.cfg.Points) > 0 {
		cp.SetControlPoints(c.cfg.Points)
	}
}

// GetConfig returns the current configuration.
func (c *Controller) GetConfig() Config {
	return c.cfg
}

// Path returns the owned path generator, or nil when the configured type
// could not be resolved.
func (c *Controller) Path() path.Generator {
	return c.gen
}

// AddModifier attaches a runtime modifier, applied after the declarative
// list in attachment order.
func (c *Controller) AddModifier(m Modifier) {
	c.runtime = append(c.runtime, m)
}

// RemoveModifier detaches a previously attached runtime modifier.
func (c *Controller) RemoveModifier(m Modifier) {
	for i, existing := range c.runtime {
		if existing == m {
			c.runtime = append(c.runtime[:i], c.runtime[i+1:]...)
			return
		}
	}
}

// normalizeConfig fills in the pieces a partial configuration leaves out.
func normalizeConfig(cfg Config) Config {
	if cfg.Speed == 0 {
		cfg.Speed = 1
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 60
	}
	if cfg.Loop == "" {
		cfg.Loop = LoopLoop
	}
	return cfg
}

// CalculateProgress maps a frame number to a normalized progress value.
// Before startFrame the motion holds at its progress offset; afterwards the
// raw progress is loop-mapped per the configured mode.
func (c *Controller) CalculateProgress(frame float64) float64 {
	localFrame := frame - c.cfg.StartFrame
	if localFrame < 0 {
		return clamp01(c.cfg.ProgressOffset)
	}

	raw := localFrame/c.cfg.Duration*c.cfg.Speed + c.cfg.ProgressOffset
	return mapProgress(raw, c.cfg.Loop)
}

// mapProgress applies a loop mode to a raw progress value.
func mapProgress(raw float64, loop string) float64 {
	switch loop {
	case LoopLoop:
		p := math.Mod(raw, 1)
		if p < 0 {
			p += 1
		}
		return p
	case LoopPingPong:
		cycle := math.Floor(raw)
		frac := raw - cycle
		if int(cycle)%2 != 0 {
			frac = 1 - frac
		}
		return frac
	default: // LoopNone: freeze at the end
		return clamp01(raw)
	}
}

// Evaluate computes the motion state for (frame, fps). The result starts
// from the path position/tangent at the computed progress and is threaded
// through every enabled modifier in declaration order, then through the
// runtime-attached ones.
func (c *Controller) Evaluate(frame, fps float64) State {
	state := DefaultState()
	state.Progress = c.CalculateProgress(frame)

	if c.gen != nil {
		state.Position = c.gen.GetPositionAt(state.Progress)
		state.Tangent = c.gen.GetTangentAt(state.Progress)
	}

	if fps <= 0 {
		fps = 30
	}
	t := frame / fps

	for _, mc := range c.cfg.Modifiers {
		if !mc.Enabled {
			continue
		}
		state = applyModifier(state, mc, t)
	}
	for _, m := range c.runtime {
		state = m.Apply(state, t)
	}

	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
