package geom

import "math"

// Point3D holds a 3D coordinate. It is a plain value type used for
// positions, tangents, Euler rotations and per-axis scales alike.
type Point3D struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// Add returns the component-wise sum of p and q.
func (p Point3D) Add(q Point3D) Point3D {
	return Point3D{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the component-wise difference p - q.
func (p Point3D) Sub(q Point3D) Point3D {
	return Point3D{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p multiplied by the scalar s.
func (p Point3D) Scale(s float64) Point3D {
	return Point3D{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Dot returns the dot product of p and q.
func (p Point3D) Dot(q Point3D) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p × q.
func (p Point3D) Cross(q Point3D) Point3D {
	return Point3D{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Length returns the Euclidean length of p.
func (p Point3D) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Distance returns the Euclidean distance between p and q.
func (p Point3D) Distance(q Point3D) float64 {
	return p.Sub(q).Length()
}

// Normalize returns p scaled to unit length. Degenerate (near zero length)
// input falls back to the default direction (0,0,1) instead of producing NaN.
func (p Point3D) Normalize() Point3D {
	l := p.Length()
	if l < 1e-12 {
		return Point3D{X: 0, Y: 0, Z: 1}
	}
	return Point3D{X: p.X / l, Y: p.Y / l, Z: p.Z / l}
}

// Lerp performs linear interpolation between p and q.
func (p Point3D) Lerp(q Point3D, t float64) Point3D {
	return Point3D{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
		Z: p.Z + (q.Z-p.Z)*t,
	}
}

// RotateX rotates p around the X axis by angle radians.
func (p Point3D) RotateX(angle float64) Point3D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point3D{
		X: p.X,
		Y: p.Y*c - p.Z*s,
		Z: p.Y*s + p.Z*c,
	}
}

// RotateY rotates p around the Y axis by angle radians.
func (p Point3D) RotateY(angle float64) Point3D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point3D{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// RotateZ rotates p around the Z axis by angle radians.
func (p Point3D) RotateZ(angle float64) Point3D {
	c, s := math.Cos(angle), math.Sin(angle)
	return Point3D{
		X: p.X*c - p.Y*s,
		Y: p.X*s + p.Y*c,
		Z: p.Z,
	}
}
