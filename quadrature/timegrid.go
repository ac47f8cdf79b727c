// SPDX-License-Identifier: MIT

package quadrature

import (
	"fmt"
	"math"
)

const opTimesteps = "Timesteps"

// Timesteps returns floor(final/h)+1 evenly spaced points on [0, final],
// both ends included. With midpoint set it returns the midpoints of
// consecutive points instead, one per interval.
//
// The spacing is final/(count−1), which equals h only when h divides final.
//
// Errors:
//   - ErrTimeGrid for h ≤ 0, final < 0 or non-finite arguments.
//
// Complexity:
//   - Time O(final/h), Space O(final/h).
func Timesteps(h, final float64, midpoint bool) ([]float64, error) {
	if !(h > 0) || math.IsInf(h, 0) || math.IsNaN(final) || math.IsInf(final, 0) || final < 0 {
		return nil, fmt.Errorf("%s(h=%g, final=%g): %w", opTimesteps, h, final, ErrTimeGrid)
	}
	count := int(final/h) + 1
	times := make([]float64, count)
	if count > 1 {
		step := final / float64(count-1)
		for i := range times {
			times[i] = float64(i) * step
		}
		times[count-1] = final
	}
	if !midpoint {
		return times, nil
	}
	mids := make([]float64, count-1)
	for i := range mids {
		mids[i] = (times[i] + times[i+1]) / 2
	}

	return mids, nil
}
