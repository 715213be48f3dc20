package motion

import (
	"github.com/ivlev/cardmotion/internal/geom"
)

// Loop modes for progress mapping.
const (
	LoopNone     = "none"
	LoopLoop     = "loop"
	LoopPingPong = "pingpong"
)

// State is the computed transform delta for one frame. It is a pure value,
// computed fresh each call and never mutated once returned; the host adds it
// to the object's base transform.
type State struct {
	Position geom.Point3D `yaml:"position" json:"position"`
	Rotation geom.Point3D `yaml:"rotation" json:"rotation"` // Euler radians (pitch, yaw, roll)
	Scale    geom.Point3D `yaml:"scale" json:"scale"`
	Progress float64      `yaml:"progress" json:"progress"`
	Tangent  geom.Point3D `yaml:"tangent" json:"tangent"`
}

// DefaultState returns the identity motion state: zero position and
// rotation, unit scale, default tangent.
func DefaultState() State {
	return State{
		Scale:   geom.Point3D{X: 1, Y: 1, Z: 1},
		Tangent: geom.Point3D{X: 0, Y: 0, Z: 1},
	}
}

// ModifierConfig declares one modifier in a motion configuration. Modifiers
// are stateless beyond their params; order in the list is significant.
type ModifierConfig struct {
	Type    string             `yaml:"type" json:"type"`
	Enabled bool               `yaml:"enabled" json:"enabled"`
	Params  map[string]float64 `yaml:"params" json:"params"`
}

// Config is the complete, serializable description of one object's motion.
// It is owned by scene/object data, not by the engine.
type Config struct {
	PathType       string             `yaml:"pathType" json:"pathType"`
	PathParams     map[string]float64 `yaml:"pathParams,omitempty" json:"pathParams,omitempty"`
	Points         []geom.Point3D     `yaml:"points,omitempty" json:"points,omitempty"`
	Speed          float64            `yaml:"speed" json:"speed"`
	ProgressOffset float64            `yaml:"progressOffset" json:"progressOffset"`
	Loop           string             `yaml:"loop" json:"loop"`
	Modifiers      []ModifierConfig   `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Duration       float64            `yaml:"duration" json:"duration"`
	StartFrame     float64            `yaml:"startFrame" json:"startFrame"`
}

// Modifier transforms a motion state as a pure (state, time) -> state
// function. Runtime-attached modifiers implement this interface and are
// applied after the declarative list.
type Modifier interface {
	Apply(state State, t float64) State
}
