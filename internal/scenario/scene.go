package scenario

import (
	"github.com/ivlev/cardmotion/internal/camera"
	"github.com/ivlev/cardmotion/internal/motion"
)

// Scene represents a complete animation scene for a bake: the animated
// objects with their motion configurations plus the camera track.
type Scene struct {
	Version    string      `yaml:"version"`
	FPS        int         `yaml:"fps"`
	FrameCount int         `yaml:"frameCount"`
	Objects    []Object    `yaml:"objects"`
	Camera     CameraTrack `yaml:"camera"`
}

// Object represents a single animated object and its motion configuration.
type Object struct {
	Name   string        `yaml:"name"`
	Motion motion.Config `yaml:"motion"`
}

// CameraTrack holds the recorded or authored camera keyframes together with
// the interpolation settings the bake should use.
type CameraTrack struct {
	DefaultFOV float64           `yaml:"defaultFov"`
	Tension    float64           `yaml:"tension"`
	Keyframes  []camera.Keyframe `yaml:"keyframes,omitempty"`
}
