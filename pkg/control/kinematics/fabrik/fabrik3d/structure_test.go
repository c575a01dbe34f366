package fabrik3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/fabrik/pkg/core/math/mat"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

func hostChain(t *testing.T) *Chain {
	t.Helper()
	c := NewChain()
	b, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(10, 0, 0), 90)
	require.NoError(t, err)
	c.AddBone(b)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV3(1, 0, 0), 10, NewBallJoint(90)))
	return c
}

func TestStructure_ConnectChain_TranslatesChildToHostEndpoint(t *testing.T) {
	s := NewStructure()
	hostIdx := s.AddChain(hostChain(t))

	child := NewChain()
	cb, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(5, 0, 0), 90)
	require.NoError(t, err)
	cb.ConnectionPoint = End
	child.AddBone(cb)

	childIdx, err := s.ConnectChain(child, hostIdx, 1)
	require.NoError(t, err)

	connected, err := s.Chain(childIdx)
	require.NoError(t, err)
	assert.True(t, connected.bones[0].Start.ApproxEqual(vec.NewV3(20, 0, 0), 0.001))
	assert.True(t, connected.FixedBase())
	assert.Equal(t, hostIdx, connected.ConnectedChainIndex())
	assert.Equal(t, 1, connected.ConnectedBoneIndex())
}

func TestStructure_ConnectChain_OutOfRangeHostBone(t *testing.T) {
	s := NewStructure()
	hostIdx := s.AddChain(hostChain(t))

	child := NewChain()
	cb, _ := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(5, 0, 0), 90)
	child.AddBone(cb)

	_, err := s.ConnectChain(child, hostIdx, 9)
	assert.Error(t, err)
}

func TestStructure_SolveForTarget_PropagatesBaseLocationToConnectedChain(t *testing.T) {
	s := NewStructure()
	hostIdx := s.AddChain(hostChain(t))

	child := NewChain()
	cb, _ := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(5, 0, 0), 90)
	cb.ConnectionPoint = End
	child.AddBone(cb)
	childIdx, err := s.ConnectChain(child, hostIdx, 1)
	require.NoError(t, err)

	s.SolveForTarget(vec.NewV3(5, 25, 0))

	host, _ := s.Chain(hostIdx)
	connected, _ := s.Chain(childIdx)
	hostTip := host.bones[1].End
	assert.True(t, connected.bones[0].Start.ApproxEqual(hostTip, 0.001))
}

func TestStructure_SolveForTarget_LocalRotorBaseboneTracksHostBasis(t *testing.T) {
	s := NewStructure()
	hostIdx := s.AddChain(hostChain(t))

	child := NewChain()
	cb, _ := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(5, 0, 0), 10)
	cb.ConnectionPoint = End
	child.AddBone(cb)
	// baseboneConstraintDir is the basis's local +X, not its +Z (host-aligned)
	// axis, so a correct propagation puts it roughly perpendicular to the
	// host bone rather than parallel to it.
	require.NoError(t, child.SetBaseboneConstraintType(BaseboneLocalRotor, vec.NewV3(1, 0, 0)))
	childIdx, err := s.ConnectChain(child, hostIdx, 1)
	require.NoError(t, err)

	s.SolveForTarget(vec.NewV3(-50, 50, 0))

	host, _ := s.Chain(hostIdx)
	connected, _ := s.Chain(childIdx)
	hostDir := host.bones[1].Direction()
	expectedRelativeDir := mat.Basis3FromDirection(hostDir).ToWorld(vec.NewV3(1, 0, 0))
	childDir := connected.bones[0].Direction()

	angleFromExpected := expectedRelativeDir.UnsignedAngleDegs(childDir)
	assert.LessOrEqual(t, angleFromExpected, float32(10.01))

	angleFromHost := hostDir.UnsignedAngleDegs(childDir)
	assert.Greater(t, angleFromHost, float32(45))
}
