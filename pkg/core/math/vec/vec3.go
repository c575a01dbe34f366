package vec

import (
	"github.com/chewxy/math32"
	"github.com/itohio/fabrik/pkg/core/math"
)

// V3 is a 3D vector value type. It is copied by value; callers that want to
// keep an original around should take a copy before calling a mutating method.
type V3 struct {
	X, Y, Z float32
}

// NewV3 builds a vector from its components.
func NewV3(x, y, z float32) V3 {
	return V3{X: x, Y: y, Z: z}
}

// Add returns v+v1 without modifying either operand.
func (v V3) Add(v1 V3) V3 {
	return V3{v.X + v1.X, v.Y + v1.Y, v.Z + v1.Z}
}

// Sub returns v-v1 without modifying either operand.
func (v V3) Sub(v1 V3) V3 {
	return V3{v.X - v1.X, v.Y - v1.Y, v.Z - v1.Z}
}

// MulC returns v scaled by c.
func (v V3) MulC(c float32) V3 {
	return V3{v.X * c, v.Y * c, v.Z * c}
}

// DivC returns v divided by c.
func (v V3) DivC(c float32) V3 {
	return V3{v.X / c, v.Y / c, v.Z / c}
}

// Neg returns -v.
func (v V3) Neg() V3 {
	return V3{-v.X, -v.Y, -v.Z}
}

// SumSqr returns the squared magnitude of v.
func (v V3) SumSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Magnitude returns the Euclidean length of v.
func (v V3) Magnitude() float32 {
	return math32.Sqrt(v.SumSqr())
}

// scalarProduct is the raw (un-normalised) inner product, distinct from the
// user-facing Dot, which operates on normalised copies and therefore returns
// a cosine.
func (v V3) scalarProduct(v1 V3) float32 {
	return v.X*v1.X + v.Y*v1.Y + v.Z*v1.Z
}

// Dot returns the cosine of the angle between v and v1: both operands are
// normalised internally before the inner product is taken, and the result is
// clamped to [-1, 1] so it is always a valid acos argument.
func (v V3) Dot(v1 V3) float32 {
	a := v.Normalise()
	b := v1.Normalise()
	return math.Clamp(a.scalarProduct(b), -1, 1)
}

// Cross returns v x v1.
func (v V3) Cross(v1 V3) V3 {
	return V3{
		X: v.Y*v1.Z - v.Z*v1.Y,
		Y: v.Z*v1.X - v.X*v1.Z,
		Z: v.X*v1.Y - v.Y*v1.X,
	}
}

// NormaliseInPlace normalises the receiver and returns it. A zero vector is
// left unchanged, matching the documented FABRIK normalise contract.
func (v *V3) NormaliseInPlace() *V3 {
	d := v.Magnitude()
	if d == 0 {
		return v
	}
	v.X /= d
	v.Y /= d
	v.Z /= d
	return v
}

// Normalise returns a normalised copy of v, leaving v itself untouched. A
// zero vector normalises to itself.
func (v V3) Normalise() V3 {
	c := v
	c.NormaliseInPlace()
	return c
}

// ApproxEqual reports whether v and v1 are within tolerance of each other in
// every component.
func (v V3) ApproxEqual(v1 V3, tolerance float32) bool {
	return math32.Abs(v.X-v1.X) <= tolerance &&
		math32.Abs(v.Y-v1.Y) <= tolerance &&
		math32.Abs(v.Z-v1.Z) <= tolerance
}

// IsZero reports whether v has zero magnitude.
func (v V3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// UnsignedAngleDegs returns the unsigned angle, in degrees, between v and v1.
func (v V3) UnsignedAngleDegs(v1 V3) float32 {
	return math.RadToDeg(math32.Acos(v.Dot(v1)))
}

// SignedAngleDegs returns the signed angle, in degrees, from v to v1 as
// measured about normal: unsignedAngle(v, v1) with its sign flipped according
// to the sign of dot(cross(v, v1), normal). The result lies in (-180, 180].
func (v V3) SignedAngleDegs(v1 V3, normal V3) float32 {
	unsigned := v.UnsignedAngleDegs(v1)
	c := v.Cross(v1)
	if c.scalarProduct(normal) < 0 {
		return -unsigned
	}
	return unsigned
}

// RotateAboutAxisDegs rotates v about axis (assumed unit length) by angleDegs
// using Rodrigues' rotation formula and returns the rotated copy.
func (v V3) RotateAboutAxisDegs(axis V3, angleDegs float32) V3 {
	a := math.DegToRad(angleDegs)
	cosA := math32.Cos(a)
	sinA := math32.Sin(a)

	term1 := v.MulC(cosA)
	term2 := axis.Cross(v).MulC(sinA)
	term3 := axis.MulC(axis.scalarProduct(v) * (1 - cosA))

	return term1.Add(term2).Add(term3)
}

// ProjectOntoPlane projects v onto the plane through the origin with unit
// normal n and returns the normalised result. n must have non-zero
// magnitude; callers are expected to validate this ahead of time (see
// ErrInvalidArgument in the constraint packages that call it).
func (v V3) ProjectOntoPlane(n V3) V3 {
	vHat := v.Normalise()
	nHat := n.Normalise()
	return vHat.Sub(nHat.MulC(vHat.scalarProduct(nHat))).Normalise()
}

// Limit returns v normalised if the angle between baseline and v is at most
// maxAngleDegs; otherwise it rotates baseline by exactly maxAngleDegs about
// the normalised cross product of baseline and v and returns that. When
// baseline and v are anti-parallel the cross product is ill-defined, so this
// rotates about the fixed axis perpendicular to baseline obtained by crossing
// it with the world X axis (or world Y axis, if baseline is itself parallel
// to X).
func (v V3) Limit(baseline V3, maxAngleDegs float32) V3 {
	baselineHat := baseline.Normalise()
	vHat := v.Normalise()

	angle := baselineHat.UnsignedAngleDegs(vHat)
	if angle <= maxAngleDegs {
		return vHat
	}

	axis := baselineHat.Cross(vHat)
	if axis.IsZero() {
		axis = baselineHat.Cross(V3{1, 0, 0})
		if axis.IsZero() {
			axis = baselineHat.Cross(V3{0, 1, 0})
		}
	}
	axis.NormaliseInPlace()

	return baselineHat.RotateAboutAxisDegs(axis, maxAngleDegs)
}
