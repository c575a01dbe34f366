package fabrik3d

import (
	"github.com/itohio/fabrik/pkg/core/math/mat"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

// constrainToBall limits dir to within rotorLimitDegs of baseline, about
// whichever axis baseline and dir span.
func constrainToBall(dir, baseline vec.V3, rotorLimitDegs float32) vec.V3 {
	return dir.Limit(baseline, rotorLimitDegs)
}

// constrainToHinge projects dir onto the plane perpendicular to axis, then
// limits the projection's signed angle from refAxis (measured about axis)
// to [-cwLimitDegs, acwLimitDegs].
func constrainToHinge(dir, axis, refAxis vec.V3, cwLimitDegs, acwLimitDegs float32) vec.V3 {
	projected := dir.ProjectOntoPlane(axis)
	if projected.IsZero() {
		projected = refAxis
	}

	signed := refAxis.SignedAngleDegs(projected, axis)
	switch {
	case signed > acwLimitDegs:
		return refAxis.RotateAboutAxisDegs(axis, acwLimitDegs)
	case signed < -cwLimitDegs:
		return refAxis.RotateAboutAxisDegs(axis, -cwLimitDegs)
	default:
		return projected
	}
}

// projectOntoHingePlane projects dir onto the plane perpendicular to axis,
// without enforcing any reference-axis angular limit.
func projectOntoHingePlane(dir, axis vec.V3) vec.V3 {
	projected := dir.ProjectOntoPlane(axis)
	if projected.IsZero() {
		return dir
	}
	return projected
}

// resolveHingeFrame returns axis and refAxis in world space, rotating them
// out of frameDir's local frame first if joint is a LocalHinge.
func resolveHingeFrame(frameDir vec.V3, joint Joint) (axis, refAxis vec.V3) {
	if joint.Kind() != LocalHinge {
		return joint.Axis(), joint.RefAxis()
	}
	basis := mat.Basis3FromDirection(frameDir)
	return basis.ToWorld(joint.Axis()), basis.ToWorld(joint.RefAxis())
}

// applyBackwardJointConstraint fully constrains dir given the joint
// installed on the bone whose angle to baseline it governs: a ball limits
// the cone angle, a hinge projects onto its plane and then enforces the
// reference-axis clockwise/anticlockwise limits. For a LocalHinge, axis and
// refAxis are defined in frameDir's local frame and are rotated into world
// space first.
func applyBackwardJointConstraint(dir, baseline, frameDir vec.V3, joint Joint) vec.V3 {
	switch joint.Kind() {
	case Ball:
		return constrainToBall(dir, baseline, joint.RotorLimitDegs())
	case GlobalHinge, LocalHinge:
		axis, refAxis := resolveHingeFrame(frameDir, joint)
		return constrainToHinge(dir, axis, refAxis, joint.CWLimitDegs(), joint.ACWLimitDegs())
	default:
		return dir
	}
}

// applyForwardJointConstraint constrains dir on the forward pass: a ball
// limits the cone angle exactly as on the backward pass, but a hinge only
// projects onto its rotation plane, deliberately skipping the
// reference-axis clockwise/anticlockwise limits (see the design notes on
// why the forward pass enforces hinges more loosely than the backward
// pass).
func applyForwardJointConstraint(dir, baseline, frameDir vec.V3, joint Joint) vec.V3 {
	switch joint.Kind() {
	case Ball:
		return constrainToBall(dir, baseline, joint.RotorLimitDegs())
	case GlobalHinge, LocalHinge:
		axis, _ := resolveHingeFrame(frameDir, joint)
		return projectOntoHingePlane(dir, axis)
	default:
		return dir
	}
}
