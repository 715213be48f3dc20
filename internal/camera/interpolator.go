package camera

import (
	"math"

	"github.com/ivlev/cardmotion/internal/geom"
)

// Keyframe represents a recorded or authored camera pose at a frame number.
// Keyframe sequences are assumed sorted ascending by frame; the engine does
// not validate ordering or duplicates.
type Keyframe struct {
	Frame    int             `yaml:"frame" json:"frame"`
	Position geom.Point3D    `yaml:"position" json:"position"`
	Rotation geom.Quaternion `yaml:"rotation" json:"rotation"`
	FOV      float64         `yaml:"fov,omitempty" json:"fov,omitempty"` // 0 means unset
}

// State represents the interpolated camera at a specific frame.
type State struct {
	Position geom.Point3D    `yaml:"position" json:"position"`
	Rotation geom.Quaternion `yaml:"rotation" json:"rotation"`
	FOV      float64         `yaml:"fov" json:"fov"`
}

// Slerp performs spherical quaternion interpolation with shortest-path
// correction. Near-identical quaternions fall back to linear interpolation
// plus normalization to avoid the near-zero sin denominator.
func Slerp(a, b geom.Quaternion, t float64) geom.Quaternion {
	dot := a.Dot(b)

	// Take the shorter arc.
	if dot < 0 {
		b = b.Negate()
		dot = -dot
	}

	if dot > 0.9995 {
		return geom.Quaternion{
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
			W: a.W + (b.W-a.W)*t,
		}.Normalize()
	}

	theta := math.Acos(clampUnit(dot))
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta

	return geom.Quaternion{
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
		W: a.W*wa + b.W*wb,
	}.Normalize()
}

// catmullRom evaluates the tension-scaled Catmull-Rom basis for one scalar
// axis. The same basis the spline path uses, applied independently to x/y/z.
func catmullRom(p0, p1, p2, p3, t, tension float64) float64 {
	s := 1 - tension
	m1 := s * (p2 - p0) / 2
	m2 := s * (p3 - p1) / 2

	t2 := t * t
	t3 := t2 * t
	return (2*t3-3*t2+1)*p1 + (t3-2*t2+t)*m1 + (-2*t3+3*t2)*p2 + (t3-t2)*m2
}

// catmullRomPoint interpolates a position through the four keyframes
// surrounding the queried segment.
func catmullRomPoint(p0, p1, p2, p3 geom.Point3D, t, tension float64) geom.Point3D {
	return geom.Point3D{
		X: catmullRom(p0.X, p1.X, p2.X, p3.X, t, tension),
		Y: catmullRom(p0.Y, p1.Y, p2.Y, p3.Y, t, tension),
		Z: catmullRom(p0.Z, p1.Z, p2.Z, p3.Z, t, tension),
	}
}

// keyframeFOV resolves a keyframe's FOV, falling back to the default when
// the keyframe carries none.
func keyframeFOV(kf Keyframe, defaultFOV float64) float64 {
	if kf.FOV > 0 {
		return kf.FOV
	}
	return defaultFOV
}

// Interpolate calculates the camera state at a given frame from a sparse
// keyframe sequence: Catmull-Rom for position, Slerp for rotation, linear
// interpolation for FOV.
func Interpolate(keyframes []Keyframe, frame float64, defaultFOV, tension float64) State {
	if len(keyframes) == 0 {
		return State{
			Position: geom.Point3D{X: 0, Y: 0, Z: 10},
			Rotation: geom.IdentityQuaternion(),
			FOV:      defaultFOV,
		}
	}

	if len(keyframes) == 1 || frame <= float64(keyframes[0].Frame) {
		kf := keyframes[0]
		return State{
			Position: kf.Position,
			Rotation: kf.Rotation.Normalize(),
			FOV:      keyframeFOV(kf, defaultFOV),
		}
	}

	last := keyframes[len(keyframes)-1]
	if frame >= float64(last.Frame) {
		return State{
			Position: last.Position,
			Rotation: last.Rotation.Normalize(),
			FOV:      keyframeFOV(last, defaultFOV),
		}
	}

	// Find the bracketing keyframe pair. A linear scan is fine at the
	// keyframe counts recorded paths produce.
	i := 0
	for ; i < len(keyframes)-1; i++ {
		if frame >= float64(keyframes[i].Frame) && frame < float64(keyframes[i+1].Frame) {
			break
		}
	}

	k1 := keyframes[i]
	k2 := keyframes[i+1]

	frameDelta := float64(k2.Frame - k1.Frame)
	if frameDelta == 0 {
		frameDelta = 1 // Coincident keyframes: avoid division by zero
	}
	t := clamp01((frame - float64(k1.Frame)) / frameDelta)

	// Neighbors for the spline, clamped at the sequence boundaries: the
	// first/last keyframe is reused as its own virtual neighbor.
	k0 := keyframes[maxInt(i-1, 0)]
	k3 := keyframes[minInt(i+2, len(keyframes)-1)]

	return State{
		Position: catmullRomPoint(k0.Position, k1.Position, k2.Position, k3.Position, t, tension),
		Rotation: Slerp(k1.Rotation.Normalize(), k2.Rotation.Normalize(), t),
		FOV:      keyframeFOV(k1, defaultFOV) + (keyframeFOV(k2, defaultFOV)-keyframeFOV(k1, defaultFOV))*t,
	}
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

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
