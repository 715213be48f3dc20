package geom

import "math"

// Quaternion holds a rotation in xyzw order.
type Quaternion struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
	W float64 `yaml:"w" json:"w"`
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{X: 0, Y: 0, Z: 0, W: 1}
}

// Dot returns the four-component dot product of q and r.
func (q Quaternion) Dot(r Quaternion) float64 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Length returns the four-component Euclidean length of q.
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns q scaled to unit length. A degenerate quaternion falls
// back to the identity rotation.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l < 1e-12 {
		return IdentityQuaternion()
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Negate returns -q. Note that q and -q represent the same rotation.
func (q Quaternion) Negate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}
