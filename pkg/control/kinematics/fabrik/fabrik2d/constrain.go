package fabrik2d

import "github.com/itohio/fabrik/pkg/core/math/vec"

// constrainUV clamps dir to lie within [baseline rotated -cwLimitDegs,
// baseline rotated +acwLimitDegs], measuring the signed angle from baseline
// to dir about the implicit 2D plane normal (+Z). dir and baseline are both
// assumed to be unit vectors; the result is always unit length.
func constrainUV(dir, baseline vec.V2, cwLimitDegs, acwLimitDegs float32) vec.V2 {
	signed := signedAngleDegs(baseline, dir)

	switch {
	case signed > acwLimitDegs:
		return baseline.RotateDegs(acwLimitDegs)
	case signed < -cwLimitDegs:
		return baseline.RotateDegs(-cwLimitDegs)
	default:
		return dir
	}
}

// signedAngleDegs returns the signed angle, in degrees, from a to b: positive
// for an anticlockwise rotation, using the sign of the planar cross product
// a.X*b.Y - b.X*a.Y as the z-component of cross(a, b).
func signedAngleDegs(a, b vec.V2) float32 {
	dot := a.Dot(b)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	unsigned := acosDegs(dot)

	if a.Cross(b) < 0 {
		return -unsigned
	}
	return unsigned
}
