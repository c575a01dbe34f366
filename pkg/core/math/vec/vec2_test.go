package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestV2_AddSubDoNotMutateOperands(t *testing.T) {
	a := V2{1, 2}
	b := V2{3, 4}

	sum := a.Add(b)
	diff := a.Sub(b)

	assert.Equal(t, V2{4, 6}, sum)
	assert.Equal(t, V2{-2, -2}, diff)
	assert.Equal(t, V2{1, 2}, a)
	assert.Equal(t, V2{3, 4}, b)
}

func TestV2_NormaliseLeavesZeroVectorUnchanged(t *testing.T) {
	z := V2{0, 0}
	got := z.Normalise()
	assert.Equal(t, V2{0, 0}, got)
}

func TestV2_NormaliseProducesUnitLength(t *testing.T) {
	v := V2{3, 4}
	n := v.Normalise()
	assert.InDelta(t, 1.0, n.Magnitude(), 1e-6)
	assert.Equal(t, V2{3, 4}, v, "pure Normalise must not mutate the receiver")
}

func TestV2_NormaliseInPlaceMutates(t *testing.T) {
	v := V2{0, 5}
	v.NormaliseInPlace()
	assert.InDelta(t, 1.0, v.Magnitude(), 1e-6)
	assert.InDelta(t, 0.0, float64(v.X), 1e-6)
}

func TestV2_Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b V2
		want float32
	}{
		{"anticlockwise", V2{1, 0}, V2{0, 1}, 1},
		{"clockwise", V2{0, 1}, V2{1, 0}, -1},
		{"parallel", V2{1, 0}, V2{2, 0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, float64(tt.want), float64(tt.a.Cross(tt.b)), 1e-6)
		})
	}
}

func TestV2_RotateDegs(t *testing.T) {
	v := V2{1, 0}
	got := v.RotateDegs(90)
	assert.InDelta(t, 0.0, float64(got.X), 1e-5)
	assert.InDelta(t, 1.0, float64(got.Y), 1e-5)
}

func TestV2_ApproxEqual(t *testing.T) {
	assert.True(t, V2{1, 1}.ApproxEqual(V2{1.0001, 1.0001}, 0.001))
	assert.False(t, V2{1, 1}.ApproxEqual(V2{1.1, 1}, 0.001))
}
