// SPDX-License-Identifier: MIT

// Package sparse - ValueStore: per-entry values kept aligned with the index.
//
// Layout:
//   - axis 0 is the entry axis, its length is nnz;
//   - trailing axes form the per-entry feature shape (empty for scalars).
//
// Values are only ever gathered along axis 0; they are never summed or cast.

package sparse

import (
	"github.com/katalvlaran/lvsparse/tensor"
)

// ValueStore owns the value tensor of a sparse matrix.
// It is not synchronised; SparseMatrix serialises access to it.
type ValueStore[T tensor.Scalar] struct {
	t *tensor.Tensor[T]
}

// NewValueStore adopts t as the value container.
// Errors:
//   - ErrNilValues when t is nil.
//   - ErrShapeMismatch when t is rank 0 (there is no entry axis).
func NewValueStore[T tensor.Scalar](t *tensor.Tensor[T]) (*ValueStore[T], error) {
	if t == nil {
		return nil, sparseErrorf("NewValueStore", ErrNilValues)
	}
	if t.Rank() == 0 {
		return nil, sparseErrorf("NewValueStore: rank-0 values", ErrShapeMismatch)
	}

	return &ValueStore[T]{t: t}, nil
}

// NNZ returns the length of axis 0.
func (vs *ValueStore[T]) NNZ() int { return vs.t.Len() }

// FeatureShape returns the trailing (per-entry) shape; empty for scalar entries.
func (vs *ValueStore[T]) FeatureShape() []int { return vs.t.Shape()[1:] }

// DType returns the element dtype.
func (vs *ValueStore[T]) DType() tensor.DType { return vs.t.DType() }

// Device returns the placement of the values.
func (vs *ValueStore[T]) Device() tensor.Device { return vs.t.Device() }

// Tensor returns the authoritative value container (not a copy).
func (vs *ValueStore[T]) Tensor() *tensor.Tensor[T] { return vs.t }

// Reorder returns a new store whose entry i is this store's entry perm[i].
// A nil perm means "unchanged order" and yields a deep copy.
//
// Errors:
//   - ErrShapeMismatch when len(perm) != NNZ() or an entry is out of range.
//
// Complexity:
//   - Time O(nnz * featureSize), Space the same.
func (vs *ValueStore[T]) Reorder(perm []int) (*ValueStore[T], error) {
	if perm == nil {
		return &ValueStore[T]{t: vs.t.Clone()}, nil
	}
	if len(perm) != vs.NNZ() {
		return nil, sparseErrorf("ValueStore.Reorder: len(perm) != nnz", ErrShapeMismatch)
	}
	g, err := vs.t.Gather(perm)
	if err != nil {
		return nil, sparseErrorf("ValueStore.Reorder: "+err.Error(), ErrShapeMismatch)
	}

	return &ValueStore[T]{t: g}, nil
}

// Replace makes t the authoritative container.
// Implementation:
//   - Stage 1: reject nil and rank-0 tensors.
//   - Stage 2: require t.Len() == NNZ().
//   - Stage 3: require t.Device() == Device().
//   - Stage 4: swap the container. On any error the store is unchanged.
//
// Behavior highlights:
//   - The feature shape may change; only the entry axis is pinned to nnz.
//   - dtype is fixed by T, so a dtype change is rejected at compile time.
//
// Errors:
//   - ErrNilValues, ErrShapeMismatch, ErrDeviceMismatch.
func (vs *ValueStore[T]) Replace(t *tensor.Tensor[T]) error {
	if t == nil {
		return sparseErrorf("ValueStore.Replace", ErrNilValues)
	}
	if t.Rank() == 0 || t.Len() != vs.NNZ() {
		return sparseErrorf("ValueStore.Replace: leading length != nnz", ErrShapeMismatch)
	}
	if t.Device() != vs.Device() {
		return sparseErrorf("ValueStore.Replace: "+t.Device().String()+" != "+vs.Device().String(), ErrDeviceMismatch)
	}
	vs.t = t

	return nil
}
