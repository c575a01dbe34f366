package fabrik2d

import (
	stdmath "math"

	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/config"
	"github.com/itohio/fabrik/pkg/core/ids"
	"github.com/itohio/fabrik/pkg/core/math/vec"
	"github.com/itohio/fabrik/pkg/logger"
)

// Default tuning parameters, applied by NewChain.
const (
	DefaultSolveDistanceThreshold = float32(1.0)
	DefaultMaxIterationAttempts   = 15
	DefaultMinIterationChange     = float32(0.01)

	convergenceTolerance = float32(0.001)
)

// BaseboneConstraintType selects how the first bone of a chain is
// constrained during the backward pass.
type BaseboneConstraintType int

const (
	// None leaves the basebone direction unconstrained.
	None BaseboneConstraintType = iota
	// GlobalAbsolute limits the basebone to BaseboneConstraintDir, a fixed
	// world-space direction.
	GlobalAbsolute
	// LocalRelative limits the basebone to the direction of the host bone
	// it is connected to, recomputed by the structure every tick.
	LocalRelative
	// LocalAbsolute limits the basebone to the chain's own reference
	// direction rotated by however much the host bone has turned away from
	// world-up, recomputed by the structure every tick.
	LocalAbsolute
)

// ConnectionPoint selects which endpoint of a host bone a child chain
// attaches to.
type ConnectionPoint int

const (
	Start ConnectionPoint = iota
	End
)

var worldUp2D = vec.V2{X: 0, Y: 1}

// Chain is an ordered sequence of bones sharing endpoints, together with the
// FABRIK solver state for reaching a 2D target.
type Chain struct {
	Name string

	bones []Bone

	fixedBase    bool
	baseLocation vec.V2

	baseboneConstraintType        BaseboneConstraintType
	baseboneConstraintDir         vec.V2
	baseboneRelativeConstraintDir vec.V2

	solveDistanceThreshold float32
	maxIterationAttempts   int
	minIterationChange     float32

	embeddedTargetEnabled bool
	embeddedTarget        vec.V2

	lastTargetLocation   vec.V2
	lastBaseLocation     vec.V2
	currentSolveDistance float32

	connectedChainIndex int
	connectedBoneIndex  int
	boneConnectionPoint ConnectionPoint

	chainLength float32
}

// NewChain returns an empty chain with default convergence parameters and a
// fixed base.
func NewChain() *Chain {
	return &Chain{
		Name:                   ids.New("chain-"),
		fixedBase:              true,
		solveDistanceThreshold: DefaultSolveDistanceThreshold,
		maxIterationAttempts:   DefaultMaxIterationAttempts,
		minIterationChange:     DefaultMinIterationChange,
		connectedChainIndex:    -1,
		connectedBoneIndex:     -1,
	}
}

// AddBone appends b to the chain. If b is the first bone, it also seeds
// BaseLocation and the provisional basebone constraint direction from it.
func (c *Chain) AddBone(b Bone) {
	if len(c.bones) == 0 {
		c.baseLocation = b.Start
		c.baseboneConstraintDir = b.Direction()
	}
	c.bones = append(c.bones, b)
	c.recomputeLength()
}

// AddConsecutiveBone appends a bone that starts where the current last bone
// ends and runs length units along directionUV, carrying joint. It returns
// fabrik.ErrInvalidState if the chain has no basebone yet, or
// fabrik.ErrInvalidArgument if directionUV is zero or length is not
// positive.
func (c *Chain) AddConsecutiveBone(directionUV vec.V2, length float32, joint Joint) error {
	if len(c.bones) == 0 {
		return fabrik.ErrInvalidState
	}
	prev := c.bones[len(c.bones)-1]
	b, err := NewBoneFromDirection(prev.End, directionUV, length, joint)
	if err != nil {
		return err
	}
	c.bones = append(c.bones, b)
	c.recomputeLength()
	return nil
}

// RemoveBone removes the bone at index i. It does not re-link the endpoints
// of the remaining bones; that happens on the next solve. It returns
// fabrik.ErrOutOfRange if i is out of bounds.
func (c *Chain) RemoveBone(i int) error {
	if i < 0 || i >= len(c.bones) {
		return fabrik.ErrOutOfRange
	}
	c.bones = append(c.bones[:i], c.bones[i+1:]...)
	c.recomputeLength()
	return nil
}

func (c *Chain) recomputeLength() {
	var total float32
	for _, b := range c.bones {
		total += b.Length
	}
	c.chainLength = total
}

// NumBones returns the number of bones in the chain.
func (c *Chain) NumBones() int { return len(c.bones) }

// Bone returns a copy of the bone at index i.
func (c *Chain) Bone(i int) (Bone, error) {
	if i < 0 || i >= len(c.bones) {
		return Bone{}, fabrik.ErrOutOfRange
	}
	return c.bones[i], nil
}

// Length returns the sum of the lengths of every bone in the chain.
func (c *Chain) Length() float32 { return c.chainLength }

// EffectorLocation returns the end of the last bone in the chain.
func (c *Chain) EffectorLocation() vec.V2 {
	if len(c.bones) == 0 {
		return vec.V2{}
	}
	return c.bones[len(c.bones)-1].End
}

// CurrentSolveDistance returns the effector-to-target distance of the best
// solution found by the most recent solve.
func (c *Chain) CurrentSolveDistance() float32 { return c.currentSolveDistance }

// LastTargetLocation returns the target used by the most recent solve.
func (c *Chain) LastTargetLocation() vec.V2 { return c.lastTargetLocation }

// BaseLocation returns the chain's current base location.
func (c *Chain) BaseLocation() vec.V2 { return c.baseLocation }

// SetBaseLocation sets the chain's base location. Structures call this to
// reposition a connected chain before each solve.
func (c *Chain) SetBaseLocation(loc vec.V2) { c.baseLocation = loc }

// FixedBase reports whether the basebone start is snapped to BaseLocation at
// the end of every backward pass.
func (c *Chain) FixedBase() bool { return c.fixedBase }

// SetFixedBase enables or disables fixed-base mode. Disabling it fails with
// fabrik.ErrInvalidState if the chain is connected to a host or its basebone
// constraint is GlobalAbsolute, since both require a fixed base.
func (c *Chain) SetFixedBase(fixed bool) error {
	if !fixed && (c.connectedChainIndex >= 0 || c.baseboneConstraintType == GlobalAbsolute) {
		return fabrik.ErrInvalidState
	}
	c.fixedBase = fixed
	return nil
}

// BaseboneConstraintType returns the chain's basebone constraint kind.
func (c *Chain) BaseboneConstraintType() BaseboneConstraintType { return c.baseboneConstraintType }

// BaseboneConstraintDir returns the world-space (or, for LocalAbsolute, host
// relative) reference direction configured for the basebone constraint.
func (c *Chain) BaseboneConstraintDir() vec.V2 { return c.baseboneConstraintDir }

// BaseboneRelativeConstraintDir returns the constraint direction most
// recently computed by a hosting structure. It is read-only from outside
// this package; only a structure in the same package may write it.
func (c *Chain) BaseboneRelativeConstraintDir() vec.V2 { return c.baseboneRelativeConstraintDir }

// SetBaseboneConstraintType sets the basebone constraint kind and its
// reference direction. GlobalAbsolute requires a fixed base and a non-zero
// direction; setting it while the chain is not fixed-base fails with
// fabrik.ErrInvalidState.
func (c *Chain) SetBaseboneConstraintType(t BaseboneConstraintType, dir vec.V2) error {
	if (t == GlobalAbsolute) && dir.Magnitude() == 0 {
		return fabrik.ErrInvalidArgument
	}
	if t == GlobalAbsolute && !c.fixedBase {
		return fabrik.ErrInvalidState
	}
	c.baseboneConstraintType = t
	c.baseboneConstraintDir = dir.Normalise()
	return nil
}

// ConnectedChainIndex returns the index, within a hosting structure, of the
// chain this chain is connected to, or -1 if unconnected.
func (c *Chain) ConnectedChainIndex() int { return c.connectedChainIndex }

// ConnectedBoneIndex returns the bone index, within the host chain, that
// this chain is connected to, or -1 if unconnected.
func (c *Chain) ConnectedBoneIndex() int { return c.connectedBoneIndex }

// BoneConnectionPoint returns which endpoint of the host bone this chain
// attaches to.
func (c *Chain) BoneConnectionPoint() ConnectionPoint { return c.boneConnectionPoint }

// SetEmbeddedTargetMode enables or disables the chain's embedded target.
func (c *Chain) SetEmbeddedTargetMode(enabled bool) { c.embeddedTargetEnabled = enabled }

// EmbeddedTargetMode reports whether the chain currently uses its embedded
// target instead of a caller-supplied one.
func (c *Chain) EmbeddedTargetMode() bool { return c.embeddedTargetEnabled }

// UpdateEmbeddedTarget sets the chain's embedded target. It fails with
// fabrik.ErrInvalidState if embedded-target mode is off.
func (c *Chain) UpdateEmbeddedTarget(p vec.V2) error {
	if !c.embeddedTargetEnabled {
		return fabrik.ErrInvalidState
	}
	c.embeddedTarget = p
	return nil
}

// SolveForEmbeddedTarget solves the chain against its embedded target. It
// fails with fabrik.ErrInvalidState if embedded-target mode is off.
func (c *Chain) SolveForEmbeddedTarget() (float32, error) {
	if !c.embeddedTargetEnabled {
		return 0, fabrik.ErrInvalidState
	}
	return c.SolveForTarget(c.embeddedTarget), nil
}

// SetMaxIterationAttempts sets the hard iteration cap for SolveForTarget.
func (c *Chain) SetMaxIterationAttempts(n int) { c.maxIterationAttempts = n }

// SetSolveDistanceThreshold sets the convergence tolerance.
func (c *Chain) SetSolveDistanceThreshold(d float32) { c.solveDistanceThreshold = d }

// SetMinIterationChange sets the early-stall threshold.
func (c *Chain) SetMinIterationChange(d float32) { c.minIterationChange = d }

// ApplyTuning overwrites the chain's convergence-control parameters with
// those loaded from a config.SolverTuning.
func (c *Chain) ApplyTuning(t config.SolverTuning) {
	c.solveDistanceThreshold = t.SolveDistanceThreshold
	c.maxIterationAttempts = t.MaxIterationAttempts
	c.minIterationChange = t.MinIterationChange
}

// SolveForTarget runs FABRIK against target and returns the resulting
// effector-to-target distance. If target and BaseLocation are both within
// 0.001 of their values on the previous call, this is a no-op that returns
// the cached distance.
func (c *Chain) SolveForTarget(target vec.V2) float32 {
	if len(c.bones) == 0 {
		return 0
	}

	if target.ApproxEqual(c.lastTargetLocation, convergenceTolerance) &&
		c.baseLocation.ApproxEqual(c.lastBaseLocation, convergenceTolerance) {
		return c.currentSolveDistance
	}

	bestSolution := c.snapshot()
	bestDistance := float32(stdmath.MaxFloat32)
	lastPassDistance := bestDistance

	attempts := 0
	for attempts < c.maxIterationAttempts {
		attempts++
		d := c.runIteration(target)

		if d < bestDistance {
			bestDistance = d
			bestSolution = c.snapshot()
			if d <= c.solveDistanceThreshold {
				break
			}
		} else if absF32(d-lastPassDistance) < c.minIterationChange {
			break
		}
		lastPassDistance = d
	}

	logger.Log.Debug().Str("chain", c.Name).Int("attempts", attempts).Float("bestDistance", float64(bestDistance)).Msg("fabrik2d solve")

	c.bones = bestSolution
	c.currentSolveDistance = bestDistance
	c.lastTargetLocation = target
	c.lastBaseLocation = c.baseLocation
	return c.currentSolveDistance
}

func (c *Chain) snapshot() []Bone {
	s := make([]Bone, len(c.bones))
	copy(s, c.bones)
	return s
}

// runIteration performs one forward+backward FABRIK pass and returns the
// resulting effector-to-target distance.
func (c *Chain) runIteration(target vec.V2) float32 {
	n := len(c.bones)
	bones := c.bones

	// Forward pass: tip to base.
	for i := n - 1; i >= 0; i-- {
		bone := &bones[i]
		var uThis vec.V2
		if i == n-1 {
			bone.End = target
			uThis = bone.Start.Sub(bone.End).Normalise()
		} else {
			uOuter := bones[i+1].Start.Sub(bones[i+1].End).Normalise()
			uThis = bone.Start.Sub(bone.End).Normalise()
			uThis = constrainUV(uThis, uOuter, bones[i+1].Joint.CWLimitDegs(), bones[i+1].Joint.ACWLimitDegs())
		}
		bone.Start = bone.End.Add(uThis.MulC(bone.Length))
		if i > 0 {
			bones[i-1].End = bone.Start
		}
	}

	// Backward pass: base to tip.
	for i := 0; i < n; i++ {
		bone := &bones[i]
		if i == 0 {
			if c.fixedBase {
				bone.Start = c.baseLocation
			} else {
				u := bone.End.Sub(bone.Start).Normalise()
				bone.Start = bone.End.Sub(u.MulC(bone.Length))
			}
			uNew := bone.End.Sub(bone.Start).Normalise()
			uNew = c.constrainBasebone(uNew, bone.Joint)
			bone.End = bone.Start.Add(uNew.MulC(bone.Length))
			if n > 1 {
				bones[1].Start = bone.End
			}
		} else {
			uThis := bone.End.Sub(bone.Start).Normalise()
			uPrev := bones[i-1].End.Sub(bones[i-1].Start).Normalise()
			uThis = constrainUV(uThis, uPrev, bone.Joint.CWLimitDegs(), bone.Joint.ACWLimitDegs())
			bone.End = bone.Start.Add(uThis.MulC(bone.Length))
			if i < n-1 {
				bones[i+1].Start = bone.End
			}
		}
	}

	return bones[n-1].End.Sub(target).Magnitude()
}

func (c *Chain) constrainBasebone(uNew vec.V2, joint Joint) vec.V2 {
	switch c.baseboneConstraintType {
	case None:
		return uNew
	case GlobalAbsolute:
		return constrainUV(uNew, c.baseboneConstraintDir, joint.CWLimitDegs(), joint.ACWLimitDegs())
	case LocalRelative, LocalAbsolute:
		return constrainUV(uNew, c.baseboneRelativeConstraintDir, joint.CWLimitDegs(), joint.ACWLimitDegs())
	default:
		return uNew
	}
}

func absF32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
