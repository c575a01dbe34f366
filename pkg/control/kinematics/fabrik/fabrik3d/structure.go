package fabrik3d

import (
	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/ids"
	"github.com/itohio/fabrik/pkg/core/math/mat"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

// Structure composes one or more chains, propagating base locations and
// basebone constraint frames from host bones to their connected chains
// before each solve.
type Structure struct {
	Name string

	chains []*Chain
}

// NewStructure returns an empty structure.
func NewStructure() *Structure {
	return &Structure{Name: ids.New("structure-")}
}

// NumChains returns the number of chains in the structure.
func (s *Structure) NumChains() int { return len(s.chains) }

// Chain returns the chain at index i.
func (s *Structure) Chain(i int) (*Chain, error) {
	if i < 0 || i >= len(s.chains) {
		return nil, fabrik.ErrOutOfRange
	}
	return s.chains[i], nil
}

// AddChain appends an unconnected, host chain to the structure and returns
// its index.
func (s *Structure) AddChain(c *Chain) int {
	c.connectedChainIndex = -1
	c.connectedBoneIndex = -1
	s.chains = append(s.chains, c)
	return len(s.chains) - 1
}

// ConnectChain deep-copies child, attaches the copy to bone boneIdx of the
// existing chain at hostChainIdx, and appends it to the structure. Which
// endpoint of the host bone it attaches to is read from the child's first
// bone's ConnectionPoint. The copy is forced into fixed-base mode, since a
// connected chain's base location is dictated by its host every tick. It
// returns the new chain's index.
//
// It returns fabrik.ErrOutOfRange if hostChainIdx or boneIdx is out of
// bounds, and fabrik.ErrInvalidArgument if child has no bones.
func (s *Structure) ConnectChain(child *Chain, hostChainIdx, boneIdx int) (int, error) {
	if hostChainIdx < 0 || hostChainIdx >= len(s.chains) {
		return 0, fabrik.ErrOutOfRange
	}
	host := s.chains[hostChainIdx]
	if boneIdx < 0 || boneIdx >= len(host.bones) {
		return 0, fabrik.ErrOutOfRange
	}
	if len(child.bones) == 0 {
		return 0, fabrik.ErrInvalidArgument
	}

	copied := cloneChain(child)
	copied.connectedChainIndex = hostChainIdx
	copied.connectedBoneIndex = boneIdx
	copied.fixedBase = true

	hostPoint := host.bones[boneIdx].Start
	if copied.bones[0].ConnectionPoint == End {
		hostPoint = host.bones[boneIdx].End
	}
	offset := hostPoint.Sub(copied.bones[0].Start)
	for i := range copied.bones {
		copied.bones[i].Start = copied.bones[i].Start.Add(offset)
		copied.bones[i].End = copied.bones[i].End.Add(offset)
	}
	copied.baseLocation = hostPoint

	s.chains = append(s.chains, copied)
	return len(s.chains) - 1, nil
}

func cloneChain(c *Chain) *Chain {
	clone := *c
	clone.bones = make([]Bone, len(c.bones))
	copy(clone.bones, c.bones)
	return &clone
}

// SolveForTarget solves every chain, in structure order, against target;
// each connected chain first receives a base location and basebone
// constraint frame propagated from the bone it is attached to. Any chain,
// connected or not, that has embedded-target mode enabled solves against
// its embedded target instead of target. It returns the effector-to-target
// distance of each chain, in structure order.
func (s *Structure) SolveForTarget(target vec.V3) []float32 {
	distances := make([]float32, len(s.chains))

	for i, c := range s.chains {
		if c.connectedChainIndex >= 0 {
			s.propagateHostFrame(c)
		}

		switch {
		case c.embeddedTargetEnabled:
			distances[i], _ = c.SolveForEmbeddedTarget()
		default:
			distances[i] = c.SolveForTarget(target)
		}
	}

	return distances
}

func (s *Structure) propagateHostFrame(c *Chain) {
	host := s.chains[c.connectedChainIndex]
	hostBone := host.bones[c.connectedBoneIndex]

	hostPoint := hostBone.Start
	if c.bones[0].ConnectionPoint == End {
		hostPoint = hostBone.End
	}
	c.SetBaseLocation(hostPoint)

	h := hostBone.Direction()

	switch c.baseboneConstraintType {
	case BaseboneLocalRotor, BaseboneLocalHinge:
		c.baseboneRelativeConstraintDir = mat.Basis3FromDirection(h).ToWorld(c.baseboneConstraintDir)
	}
}
