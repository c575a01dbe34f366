// Package fabrik2d implements the 2D FABRIK (Forward And Backward Reaching
// Inverse Kinematics) solver: bones, joints, chains and structures confined
// to the XY plane, with clockwise/anticlockwise rotational limits at each
// joint.
package fabrik2d

import (
	"github.com/itohio/fabrik/pkg/core/math"
)

// Joint describes the rotational limits of a single 2D bone relative to its
// reference direction: the previous bone's direction for an interior bone,
// or the chain's basebone constraint direction for the first bone. The bone
// is free to rotate anywhere between -cwLimitDegs and +acwLimitDegs of that
// reference, where anticlockwise is positive.
type Joint struct {
	cwLimitDegs  float32
	acwLimitDegs float32
}

// NewJoint returns an unconstrained joint (180 degrees both ways).
func NewJoint() Joint {
	return Joint{cwLimitDegs: 180, acwLimitDegs: 180}
}

// NewLimitedJoint returns a joint with the given clockwise and anticlockwise
// limits, each clamped to [0, 180].
func NewLimitedJoint(cwLimitDegs, acwLimitDegs float32) Joint {
	j := Joint{}
	j.SetCWLimitDegs(cwLimitDegs)
	j.SetACWLimitDegs(acwLimitDegs)
	return j
}

// CWLimitDegs returns the clockwise rotational limit, in degrees.
func (j Joint) CWLimitDegs() float32 { return j.cwLimitDegs }

// ACWLimitDegs returns the anticlockwise rotational limit, in degrees.
func (j Joint) ACWLimitDegs() float32 { return j.acwLimitDegs }

// SetCWLimitDegs sets the clockwise limit, clamping it to [0, 180].
func (j *Joint) SetCWLimitDegs(degs float32) {
	j.cwLimitDegs = math.Clamp(degs, 0, 180)
}

// SetACWLimitDegs sets the anticlockwise limit, clamping it to [0, 180].
func (j *Joint) SetACWLimitDegs(degs float32) {
	j.acwLimitDegs = math.Clamp(degs, 0, 180)
}

// IsUnconstrained reports whether both limits are fully open (180 degrees).
func (j Joint) IsUnconstrained() bool {
	return j.cwLimitDegs >= 180 && j.acwLimitDegs >= 180
}
