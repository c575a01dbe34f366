package fabrik3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/mat"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

func twoBoneChain(t *testing.T) *Chain {
	t.Helper()
	c := NewChain()
	b1, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(10, 0, 0), 90)
	require.NoError(t, err)
	c.AddBone(b1)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV3(1, 0, 0), 10, NewBallJoint(90)))
	return c
}

func TestChain_SolveForTarget_ReachesInRangeTarget(t *testing.T) {
	c := twoBoneChain(t)

	d := c.SolveForTarget(vec.NewV3(15, 5, 0))

	assert.LessOrEqual(t, d, c.solveDistanceThreshold)
	assert.InDelta(t, float32(10), c.bones[0].Length, 0.001)
	assert.InDelta(t, float32(10), c.bones[1].Length, 0.001)
}

func TestChain_SolveForTarget_UnreachableTargetPicksBestSolution(t *testing.T) {
	c := NewChain()
	b1, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(10, 0, 0), 20)
	require.NoError(t, err)
	c.AddBone(b1)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV3(1, 0, 0), 10, NewBallJoint(20)))
	require.NoError(t, c.AddConsecutiveBone(vec.NewV3(1, 0, 0), 10, NewBallJoint(20)))

	target := vec.NewV3(1000, 1000, 1000)
	d := c.SolveForTarget(target)

	assert.Greater(t, d, c.solveDistanceThreshold)
	assert.InDelta(t, d, c.EffectorLocation().Sub(target).Magnitude(), 0.0001)
	assert.InDelta(t, float32(10), c.bones[0].Length, 0.001)
	assert.InDelta(t, float32(10), c.bones[2].Length, 0.001)
}

func TestChain_SolveForTarget_FixedBaseStaysAtBaseLocation(t *testing.T) {
	c := twoBoneChain(t)

	c.SolveForTarget(vec.NewV3(-5, 12, 3))

	assert.True(t, c.bones[0].Start.ApproxEqual(vec.NewV3(0, 0, 0), 0.001))
}

func TestChain_LocalHingeElbow_StaysWithinHingePlaneRotation(t *testing.T) {
	c := NewChain()
	upperArm, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(0, 10, 0), 90)
	require.NoError(t, err)
	c.AddBone(upperArm)

	elbowJoint, err := NewLocalHingeJoint(vec.NewV3(1, 0, 0), vec.NewV3(0, 0, 1), 90, 10)
	require.NoError(t, err)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV3(0, 1, 0), 10, elbowJoint))

	c.SolveForTarget(vec.NewV3(15, 20, 0))

	forearmDir := c.bones[1].Direction()
	upperDir := c.bones[0].Direction()
	basis := mat.Basis3FromDirection(upperDir)
	axisWorld := basis.ToWorld(elbowJoint.Axis())
	deviation := forearmDir.X*axisWorld.X + forearmDir.Y*axisWorld.Y + forearmDir.Z*axisWorld.Z
	assert.InDelta(t, float32(0), deviation, 0.05)
}

func TestChain_AddConsecutiveBone_RejectsZeroDirection(t *testing.T) {
	c := NewChain()
	b1, err := NewBone(vec.NewV3(0, 0, 0), vec.NewV3(10, 0, 0), 90)
	require.NoError(t, err)
	c.AddBone(b1)

	err = c.AddConsecutiveBone(vec.V3{}, 10, NewBallJoint(90))
	assert.ErrorIs(t, err, fabrik.ErrInvalidArgument)
}

func TestChain_AddConsecutiveBone_RejectsEmptyChain(t *testing.T) {
	c := NewChain()
	err := c.AddConsecutiveBone(vec.NewV3(1, 0, 0), 10, NewBallJoint(90))
	assert.ErrorIs(t, err, fabrik.ErrInvalidState)
}

func TestChain_SetFixedBase_RefusesWhenConnected(t *testing.T) {
	c := twoBoneChain(t)
	c.connectedChainIndex = 0

	err := c.SetFixedBase(false)

	assert.Error(t, err)
}
