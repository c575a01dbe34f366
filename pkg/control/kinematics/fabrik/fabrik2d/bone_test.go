package fabrik2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/fabrik/pkg/control/kinematics/fabrik"
	"github.com/itohio/fabrik/pkg/core/math/vec"
)

func TestNewBone_RejectsCoincidentEndpoints(t *testing.T) {
	_, err := NewBone(vec.NewV2(1, 1), vec.NewV2(1, 1))
	assert.ErrorIs(t, err, fabrik.ErrInvalidArgument)
}

func TestNewBone_ComputesLengthAndDirection(t *testing.T) {
	b, err := NewBone(vec.NewV2(0, 0), vec.NewV2(3, 4))
	require.NoError(t, err)

	assert.InDelta(t, float32(5), b.Length, 0.0001)
	assert.True(t, b.Direction().ApproxEqual(vec.NewV2(0.6, 0.8), 0.0001))
}

func TestNewBoneFromDirection_RejectsNonPositiveLength(t *testing.T) {
	_, err := NewBoneFromDirection(vec.V2{}, vec.NewV2(1, 0), 0, NewJoint())
	assert.ErrorIs(t, err, fabrik.ErrInvalidArgument)
}

func TestNewBoneFromDirection_PlacesEndAlongDirection(t *testing.T) {
	b, err := NewBoneFromDirection(vec.NewV2(1, 1), vec.NewV2(0, 2), 5, NewJoint())
	require.NoError(t, err)

	assert.True(t, b.End.ApproxEqual(vec.NewV2(1, 6), 0.0001))
}
