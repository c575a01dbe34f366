// Package fabrik3d implements the 3D FABRIK (Forward And Backward Reaching
// Inverse Kinematics) solver: bones, joints, chains and structures operating
// in full 3D, with ball-and-socket or hinge rotational constraints at each
// joint.
package fabrik3d

import (
	"github.com/chewxy/math32"

	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

// perpendicularityTolerance bounds how far from exactly perpendicular a
// hinge's axis and refAxis may be, measured as the absolute value of their
// normalised dot product.
const perpendicularityTolerance = float32(0.01)

// JointKind selects the kind of rotational constraint a bone's joint
// enforces.
type JointKind int

const (
	// Ball constrains a bone to lie within a cone (the "rotor limit") of its
	// reference direction, with no preferred azimuth.
	Ball JointKind = iota
	// GlobalHinge constrains a bone to rotate about a fixed axis expressed
	// in world space, within signed limits either side of refAxis.
	GlobalHinge
	// LocalHinge is a GlobalHinge whose axis and refAxis are expressed in
	// the local frame of a reference bone instead of world space, and are
	// rotated into world space every solve using that bone's direction.
	LocalHinge
)

// Joint describes the rotational constraint of a single 3D bone. The zero
// value is not a usable joint; construct one with NewBallJoint,
// NewGlobalHingeJoint or NewLocalHingeJoint.
type Joint struct {
	kind JointKind

	rotorLimitDegs float32

	axis         vec.V3
	refAxis      vec.V3
	cwLimitDegs  float32
	acwLimitDegs float32
}

// NewBallJoint returns a ball-and-socket joint that limits a bone to within
// rotorLimitDegs of its reference direction.
func NewBallJoint(rotorLimitDegs float32) Joint {
	return Joint{kind: Ball, rotorLimitDegs: rotorLimitDegs}
}

// NewGlobalHingeJoint returns a hinge joint rotating about axis (a
// world-space direction), with refAxis as the zero-angle baseline inside the
// hinge plane. It returns fabrik.ErrInvalidArgument if axis or refAxis is
// zero, or if they are not perpendicular to within perpendicularityTolerance.
func NewGlobalHingeJoint(axis, refAxis vec.V3, cwLimitDegs, acwLimitDegs float32) (Joint, error) {
	return newHingeJoint(GlobalHinge, axis, refAxis, cwLimitDegs, acwLimitDegs)
}

// NewLocalHingeJoint returns a hinge joint identical to one built by
// NewGlobalHingeJoint, except axis and refAxis are interpreted in the local
// frame of a reference bone (rebuilt from that bone's direction every
// solve) rather than world space.
func NewLocalHingeJoint(axis, refAxis vec.V3, cwLimitDegs, acwLimitDegs float32) (Joint, error) {
	return newHingeJoint(LocalHinge, axis, refAxis, cwLimitDegs, acwLimitDegs)
}

func newHingeJoint(kind JointKind, axis, refAxis vec.V3, cwLimitDegs, acwLimitDegs float32) (Joint, error) {
	if axis.IsZero() || refAxis.IsZero() {
		return Joint{}, fabrik.ErrInvalidArgument
	}
	a := axis.Normalise()
	r := refAxis.Normalise()
	if math32.Abs(a.Dot(r)) > perpendicularityTolerance {
		return Joint{}, fabrik.ErrInvalidArgument
	}
	return Joint{
		kind:         kind,
		axis:         a,
		refAxis:      r,
		cwLimitDegs:  cwLimitDegs,
		acwLimitDegs: acwLimitDegs,
	}, nil
}

// Kind returns the joint's constraint kind.
func (j Joint) Kind() JointKind { return j.kind }

// RotorLimitDegs returns the ball joint's cone half-angle. It is meaningless
// for hinge joints.
func (j Joint) RotorLimitDegs() float32 { return j.rotorLimitDegs }

// Axis returns the hinge rotation axis. For a Ball joint this is the zero
// vector.
func (j Joint) Axis() vec.V3 { return j.axis }

// RefAxis returns the hinge's zero-angle baseline. For a Ball joint this is
// the zero vector.
func (j Joint) RefAxis() vec.V3 { return j.refAxis }

// CWLimitDegs returns the hinge's clockwise limit, measured from RefAxis
// about Axis.
func (j Joint) CWLimitDegs() float32 { return j.cwLimitDegs }

// ACWLimitDegs returns the hinge's anticlockwise limit, measured from
// RefAxis about Axis.
func (j Joint) ACWLimitDegs() float32 { return j.acwLimitDegs }

// SetRotorLimitDegs sets the ball joint's cone half-angle. It returns
// fabrik.ErrInvalidOperation if the joint is a hinge.
func (j *Joint) SetRotorLimitDegs(degs float32) error {
	if j.kind != Ball {
		return fabrik.ErrInvalidOperation
	}
	j.rotorLimitDegs = degs
	return nil
}

// SetHingeLimitDegs sets the hinge's clockwise and anticlockwise limits. It
// returns fabrik.ErrInvalidOperation if the joint is a Ball.
func (j *Joint) SetHingeLimitDegs(cwLimitDegs, acwLimitDegs float32) error {
	if j.kind == Ball {
		return fabrik.ErrInvalidOperation
	}
	j.cwLimitDegs = cwLimitDegs
	j.acwLimitDegs = acwLimitDegs
	return nil
}
