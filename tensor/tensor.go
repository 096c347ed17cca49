// SPDX-License-Identifier: MIT

// Package tensor - flat row-major n-d container.
//
// Purpose:
//   - Hold per-entry values for sparse matrices, where axis 0 is the entry axis
//     and the remaining axes are the per-entry feature shape.
//   - Carry dtype and device as explicit metadata.
//
// Determinism:
//   - All loops run in index order; no map iteration, no randomness.

package tensor

import (
	"math"
	"slices"
)

// Tensor is a row-major n-dimensional array of T.
//   - shape holds the dimensions (len(shape)==0 is a rank-0 scalar).
//   - data has exactly product(shape) elements.
//   - device is a placement tag, compared explicitly by consumers.
type Tensor[T Scalar] struct {
	data   []T
	shape  []int
	device Device
}

// New wraps data as a tensor of the given shape placed on device.
// Implementation:
//   - Stage 1: validate every dimension is non-negative.
//   - Stage 2: validate product(shape) == len(data).
//   - Stage 3: adopt data (no copy) and copy shape.
//
// Errors:
//   - ErrBadShape on negative dimensions or length mismatch.
//
// Notes:
//   - data is adopted, not copied. Callers must not mutate it afterwards
//     unless they intend the tensor to observe the change.
//
// Complexity:
//   - Time O(rank), Space O(rank).
func New[T Scalar](data []T, shape []int, device Device) (*Tensor[T], error) {
	n, err := numel(shape)
	if err != nil {
		return nil, tensorErrorf("New", err)
	}
	if n != len(data) {
		return nil, tensorErrorf("New", ErrBadShape)
	}
	if data == nil {
		data = []T{}
	}

	return &Tensor[T]{data: data, shape: slices.Clone(shape), device: device}, nil
}

// FromSlice returns a 1-D CPU tensor adopting data.
func FromSlice[T Scalar](data []T) *Tensor[T] {
	if data == nil {
		data = []T{}
	}

	return &Tensor[T]{data: data, shape: []int{len(data)}, device: CPU}
}

// FromRows stacks equal-length rows into an (len(rows), k) CPU tensor.
// An empty rows slice yields shape (0, 0).
func FromRows[T Scalar](rows [][]T) (*Tensor[T], error) {
	k := 0
	if len(rows) > 0 {
		k = len(rows[0])
	}
	data := make([]T, 0, len(rows)*k)
	for _, r := range rows {
		if len(r) != k {
			return nil, tensorErrorf("FromRows", ErrRaggedRows)
		}
		data = append(data, r...)
	}

	return &Tensor[T]{data: data, shape: []int{len(rows), k}, device: CPU}, nil
}

// Zeros allocates a zero-filled tensor of the given shape on device.
// Complexity: O(product(shape)).
func Zeros[T Scalar](device Device, shape ...int) (*Tensor[T], error) {
	n, err := numel(shape)
	if err != nil {
		return nil, tensorErrorf("Zeros", err)
	}

	return &Tensor[T]{data: make([]T, n), shape: slices.Clone(shape), device: device}, nil
}

// numel returns product(shape) or ErrBadShape on negative dims or overflow.
func numel(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, ErrBadShape
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, ErrBadShape
		}
		n *= d
	}

	return n, nil
}

// Shape returns a copy of the dimensions.
func (t *Tensor[T]) Shape() []int { return slices.Clone(t.shape) }

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int { return len(t.shape) }

// Len returns the size of axis 0, or 0 for a rank-0 tensor.
func (t *Tensor[T]) Len() int {
	if len(t.shape) == 0 {
		return 0
	}

	return t.shape[0]
}

// Numel returns the total element count.
func (t *Tensor[T]) Numel() int { return len(t.data) }

// RowSize returns product(shape[1:]), the element count of one axis-0 slice.
func (t *Tensor[T]) RowSize() int {
	n := 1
	if len(t.shape) > 1 {
		for _, d := range t.shape[1:] {
			n *= d
		}
	}

	return n
}

// DType returns the element dtype.
func (t *Tensor[T]) DType() DType { return DTypeOf[T]() }

// Device returns the placement tag.
func (t *Tensor[T]) Device() Device { return t.device }

// Data exposes the backing buffer. Writes through it are visible to t.
func (t *Tensor[T]) Data() []T { return t.data }

// Row returns the i-th axis-0 slice as a view into the backing buffer.
func (t *Tensor[T]) Row(i int) ([]T, error) {
	if len(t.shape) == 0 || i < 0 || i >= t.shape[0] {
		return nil, tensorErrorf("Row", ErrOutOfRange)
	}
	w := t.RowSize()

	return t.data[i*w : (i+1)*w : (i+1)*w], nil
}

// At returns the element at the given multi-index.
// Complexity: O(rank).
func (t *Tensor[T]) At(idx ...int) (T, error) {
	var zero T
	if len(idx) != len(t.shape) {
		return zero, tensorErrorf("At", ErrOutOfRange)
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return zero, tensorErrorf("At", ErrOutOfRange)
		}
		off = off*t.shape[k] + i
	}

	return t.data[off], nil
}

// Clone returns a deep copy on the same device.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{data: slices.Clone(t.data), shape: slices.Clone(t.shape), device: t.device}
}

// To returns a deep copy tagged with device d.
func (t *Tensor[T]) To(d Device) *Tensor[T] {
	c := t.Clone()
	c.device = d

	return c
}

// Gather returns a new tensor whose i-th axis-0 slice is t's idx[i]-th slice.
// Implementation:
//   - Stage 1: validate rank >= 1 and every idx[i] in [0, Len()).
//   - Stage 2: copy whole rows in idx order into a fresh buffer.
//
// Behavior highlights:
//   - Trailing axes are copied opaquely; values are never combined.
//   - Repeated indices are legal and duplicate rows.
//
// Errors:
//   - ErrOutOfRange on rank-0 input or an index outside axis 0.
//
// Complexity:
//   - Time O(len(idx) * RowSize()), Space the same.
func (t *Tensor[T]) Gather(idx []int) (*Tensor[T], error) {
	if len(t.shape) == 0 {
		return nil, tensorErrorf("Gather", ErrOutOfRange)
	}
	n := t.shape[0]
	w := t.RowSize()
	out := make([]T, len(idx)*w)
	for dst, src := range idx {
		if src < 0 || src >= n {
			return nil, tensorErrorf("Gather", ErrOutOfRange)
		}
		copy(out[dst*w:(dst+1)*w], t.data[src*w:(src+1)*w])
	}
	shape := slices.Clone(t.shape)
	shape[0] = len(idx)

	return &Tensor[T]{data: out, shape: shape, device: t.device}, nil
}
