package fabrik2d

import (
	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

// Bone is an oriented line segment of fixed length with an attached joint.
// Length is set once, on construction, from the initial start/end pair (or
// supplied explicitly via NewBoneFromDirection); later updates to Start or
// End do not recompute it. The solver treats Length as the authoritative
// constant and re-enforces it on every pass.
type Bone struct {
	Start  vec.V2
	End    vec.V2
	Length float32
	Joint  Joint

	// Name, Colour and LineWidth are identity metadata consumed only by
	// external collaborators such as a visualiser; the solver never reads
	// them.
	Name      string
	Colour    [3]float32
	LineWidth float32
}

// NewBone builds a bone between start and end with an unconstrained joint.
// It returns fabrik.ErrInvalidArgument if start and end coincide.
func NewBone(start, end vec.V2) (Bone, error) {
	length := end.Sub(start).Magnitude()
	if length == 0 {
		return Bone{}, fabrik.ErrInvalidArgument
	}
	return Bone{Start: start, End: end, Length: length, Joint: NewJoint(), LineWidth: 1}, nil
}

// NewBoneFromDirection builds a bone starting at start, running length units
// along directionUV (normalised internally), and carrying joint. It returns
// fabrik.ErrInvalidArgument if directionUV is zero or length is not
// positive.
func NewBoneFromDirection(start, directionUV vec.V2, length float32, joint Joint) (Bone, error) {
	if directionUV.Magnitude() == 0 || length <= 0 {
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
func (b Bone) Direction() vec.V2 {
	return b.End.Sub(b.Start).Normalise()
}
