// SPDX-License-Identifier: MIT

package tensor

import (
	"math"
	"slices"
)

// Equal reports whether a and b have the same shape, device and elements.
// Elements are compared with ==, so NaN never equals NaN.
func Equal[T Scalar](a, b *Tensor[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.device == b.device && slices.Equal(a.shape, b.shape) && slices.Equal(a.data, b.data)
}

// AllClose reports whether a and b have the same shape and device and every
// element pair satisfies |a-b| <= atol + rtol*|b|.
// Complexity: O(n).
func AllClose[T Scalar](a, b *Tensor[T], rtol, atol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.device != b.device || !slices.Equal(a.shape, b.shape) {
		return false
	}
	for i := range a.data {
		x, y := toFloat64(a.data[i]), toFloat64(b.data[i])
		if math.Abs(x-y) > atol+rtol*math.Abs(y) {
			return false
		}
	}

	return true
}
