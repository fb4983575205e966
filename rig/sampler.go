package rig

import (
	"math"

	"github.com/achilleasa/lumirig/types"
)

// RadicalInverse reverses the base-b digits of index and scales the result
// into the unit interval. The value is clamped so that float rounding can
// never push it past 1.0. Defined for every index >= 0 and base >= 2;
// RadicalInverse(0, base) is always 0.
func RadicalInverse(index, base int) float64 {
	reversedDigits := 0
	baseN := 1
	for index > 0 {
		next := index / base
		digit := index - next*base
		reversedDigits = reversedDigits*base + digit
		baseN *= base
		index = next
	}
	return math.Min(float64(reversedDigits)/float64(baseN), 1.0)
}

// HammersleySample returns point number index of a 3D Hammersley point set
// with total points: plain stratification along X, radical inverses in
// bases 2 and 3 along Y and Z. Same (index, total) always yields the same
// point.
func HammersleySample(index, total int) types.Vec3 {
	return types.Vec3{
		float64(index) / float64(total),
		RadicalInverse(index, 2),
		RadicalInverse(index, 3),
	}
}
