// Package mat provides small, fixed-size matrix types used by the rotational
// constraint system. Unlike a general linear-algebra package, it only grows
// the operations the solver actually needs: building and using an
// orthonormal rotation basis aligned to a single direction vector.
package mat

import "github.com/itohio/fabrik/pkg/core/math/vec"

// worldUp is the reference "up" axis used to resolve the basis construction
// in the non-singular branch of Basis3FromDirection.
var worldUp = vec.V3{X: 0, Y: 1, Z: 0}

// Basis3 is an orthonormal rotation basis: X, Y and Z are unit vectors in
// world space, with Z acting as the basis's own "forward" axis.
type Basis3 struct {
	X, Y, Z vec.V3
}

// Basis3FromDirection builds an orthonormal basis that takes d (assumed unit
// length) as its +Z axis. Both branches set Y = X x Z, so X x Y = -Z.
//
// When d is nearly parallel to the world-up axis (|d.y| > 0.9999) the cross
// product against world-up becomes numerically unstable, so this takes a
// manual branch: +X is fixed to world +X and +Y is derived from it. This
// exact branch must be preserved bit-for-bit in spirit: downstream local
// hinge transforms depend on its handedness, and substituting a generic
// Frisvad-style construction flips the sign of the resulting Y axis for some
// inputs.
func Basis3FromDirection(d vec.V3) Basis3 {
	d = d.Normalise()

	if absF32(d.Y) > 0.9999 {
		x := vec.V3{X: 1, Y: 0, Z: 0}
		y := x.Cross(d).Normalise()
		return Basis3{X: x, Y: y, Z: d}
	}

	x := d.Cross(worldUp).Normalise()
	y := x.Cross(d).Normalise()
	return Basis3{X: x, Y: y, Z: d}
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// ToWorld transforms a direction expressed in this basis's local frame into
// world space.
func (b Basis3) ToWorld(v vec.V3) vec.V3 {
	return b.X.MulC(v.X).Add(b.Y.MulC(v.Y)).Add(b.Z.MulC(v.Z))
}

// ToLocal transforms a world-space direction into this basis's local frame.
// Because X, Y, Z are orthonormal, the inverse transform is just the
// transpose applied via raw (non-normalising) dot products.
func (b Basis3) ToLocal(v vec.V3) vec.V3 {
	return vec.V3{X: rawDot(b.X, v), Y: rawDot(b.Y, v), Z: rawDot(b.Z, v)}
}

func rawDot(a, b vec.V3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}
