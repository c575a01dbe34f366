package fabrik2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

func twoBoneChain(t *testing.T) *Chain {
	t.Helper()
	c := NewChain()
	b1, err := NewBone(vec.NewV2(0, 0), vec.NewV2(10, 0))
	require.NoError(t, err)
	c.AddBone(b1)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV2(1, 0), 10, NewJoint()))
	return c
}

func TestChain_SolveForTarget_ReachesInRangeTarget(t *testing.T) {
	c := twoBoneChain(t)

	d := c.SolveForTarget(vec.NewV2(15, 5))

	assert.LessOrEqual(t, d, c.solveDistanceThreshold)
	assert.InDelta(t, float32(10), c.bones[0].Length, 0.001)
	assert.InDelta(t, float32(10), c.bones[1].Length, 0.001)
	eff := c.EffectorLocation()
	assert.InDelta(t, float32(15), eff.X, 0.5)
	assert.InDelta(t, float32(5), eff.Y, 0.5)
}

func TestChain_SolveForTarget_UnreachableTargetPicksBestSolution(t *testing.T) {
	c := NewChain()
	b1, err := NewBone(vec.NewV2(0, 0), vec.NewV2(10, 0))
	require.NoError(t, err)
	c.AddBone(b1)
	require.NoError(t, c.AddConsecutiveBone(vec.NewV2(1, 0), 10, NewLimitedJoint(30, 30)))
	require.NoError(t, c.AddConsecutiveBone(vec.NewV2(1, 0), 10, NewLimitedJoint(30, 30)))

	target := vec.NewV2(1000, 1000)
	d := c.SolveForTarget(target)

	assert.Greater(t, d, c.solveDistanceThreshold)
	assert.InDelta(t, d, c.EffectorLocation().Sub(target).Magnitude(), 0.0001)
	assert.InDelta(t, float32(10), c.bones[0].Length, 0.001)
	assert.InDelta(t, float32(10), c.bones[1].Length, 0.001)
	assert.InDelta(t, float32(10), c.bones[2].Length, 0.001)
}

func TestChain_SolveForTarget_RepeatedCallWithSameTargetIsNoop(t *testing.T) {
	c := twoBoneChain(t)

	d1 := c.SolveForTarget(vec.NewV2(15, 5))
	bonesAfterFirst := c.snapshot()
	d2 := c.SolveForTarget(vec.NewV2(15, 5))

	assert.Equal(t, d1, d2)
	assert.Equal(t, bonesAfterFirst, c.bones)
}

func TestChain_SolveForTarget_FixedBaseStaysAtBaseLocation(t *testing.T) {
	c := twoBoneChain(t)

	c.SolveForTarget(vec.NewV2(-5, 12))

	assert.True(t, c.bones[0].Start.ApproxEqual(vec.NewV2(0, 0), 0.001))
}

func TestChain_AddConsecutiveBone_RejectsZeroDirection(t *testing.T) {
	c := NewChain()
	b1, err := NewBone(vec.NewV2(0, 0), vec.NewV2(10, 0))
	require.NoError(t, err)
	c.AddBone(b1)

	err = c.AddConsecutiveBone(vec.V2{}, 10, NewJoint())
	assert.ErrorIs(t, err, fabrik.ErrInvalidArgument)
}

func TestChain_AddConsecutiveBone_RejectsEmptyChain(t *testing.T) {
	c := NewChain()
	err := c.AddConsecutiveBone(vec.NewV2(1, 0), 10, NewJoint())
	assert.ErrorIs(t, err, fabrik.ErrInvalidState)
}

func TestChain_RemoveBone_OutOfRange(t *testing.T) {
	c := twoBoneChain(t)
	err := c.RemoveBone(5)
	assert.Error(t, err)
}

func TestChain_SetFixedBase_RefusesWhenConnected(t *testing.T) {
	c := twoBoneChain(t)
	c.connectedChainIndex = 0

	err := c.SetFixedBase(false)

	assert.Error(t, err)
}

func TestChain_SetBaseboneConstraintType_GlobalAbsoluteRequiresDirection(t *testing.T) {
	c := twoBoneChain(t)

	err := c.SetBaseboneConstraintType(GlobalAbsolute, vec.V2{})

	assert.Error(t, err)
}

func TestChain_ConstrainBasebone_GlobalAbsoluteLimitsFirstBone(t *testing.T) {
	c := NewChain()
	b1, err := NewBone(vec.NewV2(0, 0), vec.NewV2(10, 0))
	require.NoError(t, err)
	b1.Joint = NewLimitedJoint(10, 10)
	c.AddBone(b1)
	require.NoError(t, c.SetBaseboneConstraintType(GlobalAbsolute, vec.NewV2(1, 0)))

	c.SolveForTarget(vec.NewV2(0, 100))

	dir := c.bones[0].Direction()
	angle := signedAngleDegs(vec.NewV2(1, 0), dir)
	assert.LessOrEqual(t, angle, float32(10.01))
}
