package fabrik2d

import (
	"github.com/chewxy/math32"

	"github.com/itohio/fabrik/pkg/core/math"
)

// acosDegs returns acos(x) in degrees, with x clamped to [-1, 1] first so a
// borderline floating-point cosine never produces a NaN.
func acosDegs(x float32) float32 {
	return math.RadToDeg(math32.Acos(math.Clamp(x, -1, 1)))
}
