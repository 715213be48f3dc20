package motion

import (
	"log"
	"math"

	"github.com/ivlev/cardmotion/internal/geom"
)

// Modifier type ids used in ModifierConfig.Type.
const (
	ModifierRotation   = "rotation"
	ModifierWobble     = "wobble"
	ModifierScalePulse = "scalePulse"
	ModifierLookAt     = "lookAt"
)

// applyModifier dispatches one declarative modifier. Unknown types get a
// logged diagnostic and pass the state through unchanged.
func applyModifier(state State, cfg ModifierConfig, t float64) State {
	switch cfg.Type {
	case ModifierRotation:
		return applyRotation(state, cfg.Params, t)
	case ModifierWobble:
		return applyWobble(state, cfg.Params, t)
	case ModifierScalePulse:
		return applyScalePulse(state, cfg.Params, t)
	case ModifierLookAt:
		return applyLookAt(state, cfg.Params)
	default:
		log.Printf("[!] Unknown modifier type %q, skipping", cfg.Type)
		return state
	}
}

func param(params map[string]float64, key string, fallback float64) float64 {
	if v, ok := params[key]; ok {
		return v
	}
	return fallback
}

// applyRotation adds (or replaces, when additive is 0) a per-axis rotation
// proportional to elapsed time. Speeds are in revolutions per second.
func applyRotation(state State, params map[string]float64, t float64) State {
	delta := geom.Point3D{
		X: param(params, "speedX", 0) * t * 2 * math.Pi,
		Y: param(params, "speedY", 0.25) * t * 2 * math.Pi,
		Z: param(params, "speedZ", 0) * t * 2 * math.Pi,
	}
	if param(params, "additive", 1) != 0 {
		state.Rotation = state.Rotation.Add(delta)
	} else {
		state.Rotation = delta
	}
	return state
}

// applyWobble adds a sinusoidal positional offset per axis. The axes share
// frequency and phase but carry fixed phase skews so they never move in
// mechanical-looking sync.
func applyWobble(state State, params map[string]float64, t float64) State {
	freq := param(params, "frequency", 1)
	phase := param(params, "phase", 0)
	omega := 2 * math.Pi * freq

	state.Position = state.Position.Add(geom.Point3D{
		X: param(params, "amplitudeX", 0.5) * math.Sin(omega*t+phase),
		Y: param(params, "amplitudeY", 0.5) * math.Sin(omega*t+phase+0.5),
		Z: param(params, "amplitudeZ", 0.5) * math.Sin(omega*t+phase+1.0),
	})
	return state
}

// applyScalePulse multiplies scale by a breathing factor oscillating between
// minScale and maxScale. With uniform set to 0 the Y and Z axes run at
// slightly different frequencies and phases to desynchronize the pulse.
func applyScalePulse(state State, params map[string]float64, t float64) State {
	freq := param(params, "frequency", 1)
	minScale := param(params, "minScale", 0.8)
	maxScale := param(params, "maxScale", 1.2)

	pulse := func(frequency, phase float64) float64 {
		wave := 0.5 + 0.5*math.Sin(2*math.Pi*frequency*t+phase)
		return minScale + (maxScale-minScale)*wave
	}

	factorX := pulse(freq, 0)
	factorY, factorZ := factorX, factorX
	if param(params, "uniform", 1) == 0 {
		factorY = pulse(freq*1.15, 0.5)
		factorZ = pulse(freq*0.9, 1.0)
	}

	state.Scale = geom.Point3D{
		X: state.Scale.X * factorX,
		Y: state.Scale.Y * factorY,
		Z: state.Scale.Z * factorZ,
	}
	return state
}

// applyLookAt overwrites rotation, aiming either along the path tangent
// (followPath) or at a fixed target point. Pitch goes to rotation X, yaw to
// rotation Y.
func applyLookAt(state State, params map[string]float64) State {
	var dir geom.Point3D
	if param(params, "followPath", 0) != 0 {
		dir = state.Tangent
	} else {
		target := geom.Point3D{
			X: param(params, "targetX", 0),
			Y: param(params, "targetY", 0),
			Z: param(params, "targetZ", 0),
		}
		dir = target.Sub(state.Position).Normalize()
	}

	yaw := math.Atan2(dir.X, dir.Z)
	pitch := math.Asin(clampUnit(-dir.Y))

	state.Rotation = geom.Point3D{X: pitch, Y: yaw, Z: 0}
	return state
}

// clampUnit keeps asin input inside its domain against rounding drift.
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
