package vec

import (
	"github.com/chewxy/math32"
	"github.com/itohio/fabrik/pkg/core/math"
)

// V2 is a 2D vector value type. It is copied by value; callers that want to
// keep an original around should take a copy before calling a mutating method.
type V2 struct {
	X, Y float32
}

// NewV2 builds a vector from its components.
func NewV2(x, y float32) V2 {
	return V2{X: x, Y: y}
}

// Add returns v+v1 without modifying either operand.
func (v V2) Add(v1 V2) V2 {
	return V2{v.X + v1.X, v.Y + v1.Y}
}

// Sub returns v-v1 without modifying either operand.
func (v V2) Sub(v1 V2) V2 {
	return V2{v.X - v1.X, v.Y - v1.Y}
}

// MulC returns v scaled by c.
func (v V2) MulC(c float32) V2 {
	return V2{v.X * c, v.Y * c}
}

// DivC returns v divided by c.
func (v V2) DivC(c float32) V2 {
	return V2{v.X / c, v.Y / c}
}

// SumSqr returns the squared magnitude of v.
func (v V2) SumSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Magnitude returns the Euclidean length of v.
func (v V2) Magnitude() float32 {
	return math32.Sqrt(v.SumSqr())
}

// Dot returns the scalar (inner) product of v and v1.
func (v V2) Dot(v1 V2) float32 {
	return v.X*v1.X + v.Y*v1.Y
}

// Cross returns the scalar z-component of the 3D cross product of v and v1
// extended into the plane, i.e. v.X*v1.Y - v1.X*v.Y. Its sign indicates
// whether v1 lies clockwise or anticlockwise of v.
func (v V2) Cross(v1 V2) float32 {
	return v.X*v1.Y - v1.X*v.Y
}

// NormaliseInPlace normalises the receiver and returns it. A zero vector is
// left unchanged, matching the documented FABRIK normalise contract.
func (v *V2) NormaliseInPlace() *V2 {
	d := v.Magnitude()
	if d == 0 {
		return v
	}
	v.X /= d
	v.Y /= d
	return v
}

// Normalise returns a normalised copy of v, leaving v itself untouched. A
// zero vector normalises to itself.
func (v V2) Normalise() V2 {
	c := v
	c.NormaliseInPlace()
	return c
}

// ApproxEqual reports whether v and v1 are within tolerance of each other in
// both components.
func (v V2) ApproxEqual(v1 V2, tolerance float32) bool {
	return math32.Abs(v.X-v1.X) <= tolerance && math32.Abs(v.Y-v1.Y) <= tolerance
}

// RotateDegs rotates v anticlockwise by angleDegs about the origin and
// returns the rotated copy. Positive angles are anticlockwise, matching this
// package's 2D convention.
func (v V2) RotateDegs(angleDegs float32) V2 {
	a := math.DegToRad(angleDegs)
	c := math32.Cos(a)
	s := math32.Sin(a)
	return V2{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}
