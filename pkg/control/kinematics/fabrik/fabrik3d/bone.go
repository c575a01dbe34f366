package fabrik3d

import (
	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

// ConnectionPoint selects which endpoint of a host bone a child chain
// attaches to. In this package it is carried on the connected chain's first
// bone rather than on the chain itself. End is the zero value, so a bone
// that does not set it attaches at the host bone's end.
type ConnectionPoint int

const (
	End ConnectionPoint = iota
	Start
)

// Bone is an oriented line segment of fixed length with an attached joint.
// Length is fixed at construction from the initial start/end pair; later
// updates to Start or End do not recompute it.
type Bone struct {
	Start  vec.V3
	End    vec.V3
	Length float32
	Joint  Joint

	// ConnectionPoint is read only from a chain's first bone, by a
	// structure attaching that chain to a host.
	ConnectionPoint ConnectionPoint

	Name      string
	Colour    [3]float32
	LineWidth float32
}

// NewBone builds a bone between start and end, with a ball joint of the
// given rotor limit. It returns fabrik.ErrInvalidArgument if start and end
// coincide.
func NewBone(start, end vec.V3, rotorLimitDegs float32) (Bone, error) {
	length := end.Sub(start).Magnitude()
	if length == 0 {
		return Bone{}, fabrik.ErrInvalidArgument
	}
	return Bone{
		Start:     start,
		End:       end,
		Length:    length,
		Joint:     NewBallJoint(rotorLimitDegs),
		LineWidth: 1,
	}, nil
}

// NewBoneFromDirection builds a bone starting at start, running length units
// along directionUV (normalised internally), and carrying joint. It returns
// fabrik.ErrInvalidArgument if directionUV is zero or length is not
// positive.
func NewBoneFromDirection(start, directionUV vec.V3, length float32, joint Joint) (Bone, error) {
	if directionUV.IsZero() || length <= 0 {
		return Bone{}, fabrik.ErrInvalidArgument
	}
	dir := directionUV.Normalise()
	return Bone{
		Start:     start,
		End:       start.Add(dir.MulC(length)),
		Length:    length,
		Joint:     joint,
		LineWidth: 1,
	}, nil
}

// Direction returns the unit vector from Start to End. If Start and End
// currently coincide (a transient, mid-solve degeneracy), it returns the
// zero vector rather than dividing by zero.
func (b Bone) Direction() vec.V3 {
	return b.End.Sub(b.Start).Normalise()
}
