// SPDX-License-Identifier: MIT

// Package sparse - SparseMatrix: IndexBuffer + ValueStore.
//
// Purpose:
//   - The only type graph code needs: construct once via CreateFromCOO/CSR/CSC,
//     then query any representation, densify, or replace values.
//
// Invariants (hold for every constructed matrix):
//   - len(row) == len(col) == values.Len() == NNZ() in every representation.
//   - Every coordinate lies strictly inside Shape().
//   - Indices and shape never change after construction; SetVal is the only
//     mutator and it keeps the entry axis length.
//
// AI-Hints:
//   - Request the native Format() when you can: it returns stored indices with
//     no reordering and only copies values.
//   - Derived indices are memoised; values are gathered on every call because
//     they may have been replaced in between.

package sparse

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/lvsparse/tensor"
)

// SparseMatrix is a sparse (rows × cols) matrix whose entries are values of
// shape FeatureShape(), stored in one native index format.
type SparseMatrix[T tensor.Scalar] struct {
	idx    *IndexBuffer
	logger *slog.Logger

	mu   sync.RWMutex // guards vals
	vals *ValueStore[T]
}

// CreateFromCOO builds a COO-native matrix from per-entry (row, col, val).
// Implementation:
//   - Stage 1: wrap val in a ValueStore (nil / rank-0 rejected).
//   - Stage 2: build the COO IndexBuffer (pair length, bounds, shape inference).
//   - Stage 3: require len(row) == val.Len().
//
// Behavior highlights:
//   - Input order is kept as the native order; nothing is sorted or merged.
//   - Shape defaults to (max(row)+1, max(col)+1); pass WithShape to declare it.
//   - row and col are copied; val is adopted as the value container.
//
// Errors:
//   - ErrNilValues, ErrMalformedIndex, ErrShapeMismatch, ErrEmptyInput.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func CreateFromCOO[T tensor.Scalar](row, col []int, val *tensor.Tensor[T], opts ...Option) (*SparseMatrix[T], error) {
	o := gatherOptions(opts...)
	m, err := assemble(val, len(row), o, func() (*IndexBuffer, error) {
		return NewCOOIndex(row, col, opts...)
	})
	if err != nil {
		o.logger.Debug("sparse: construction rejected", "format", COO.String(), "error", err)
		return nil, sparseErrorf("CreateFromCOO", err)
	}

	return m, nil
}

// CreateFromCSR builds a CSR-native matrix. indptr has rows+1 entries; the
// columns of row r are indices[indptr[r]:indptr[r+1]] with values val[same].
// Shape defaults to (len(indptr)-1, max(indices)+1).
//
// Errors:
//   - ErrNilValues, ErrMalformedIndex, ErrShapeMismatch, ErrEmptyInput.
func CreateFromCSR[T tensor.Scalar](indptr, indices []int, val *tensor.Tensor[T], opts ...Option) (*SparseMatrix[T], error) {
	o := gatherOptions(opts...)
	m, err := assemble(val, len(indices), o, func() (*IndexBuffer, error) {
		return NewCSRIndex(indptr, indices, opts...)
	})
	if err != nil {
		o.logger.Debug("sparse: construction rejected", "format", CSR.String(), "error", err)
		return nil, sparseErrorf("CreateFromCSR", err)
	}

	return m, nil
}

// CreateFromCSC builds a CSC-native matrix; the column-major mirror of
// CreateFromCSR. Shape defaults to (max(indices)+1, len(indptr)-1).
func CreateFromCSC[T tensor.Scalar](indptr, indices []int, val *tensor.Tensor[T], opts ...Option) (*SparseMatrix[T], error) {
	o := gatherOptions(opts...)
	m, err := assemble(val, len(indices), o, func() (*IndexBuffer, error) {
		return NewCSCIndex(indptr, indices, opts...)
	})
	if err != nil {
		o.logger.Debug("sparse: construction rejected", "format", CSC.String(), "error", err)
		return nil, sparseErrorf("CreateFromCSC", err)
	}

	return m, nil
}

// assemble runs the shared construction sequence. Nothing is returned unless
// every check passes.
func assemble[T tensor.Scalar](val *tensor.Tensor[T], n int, o Options, build func() (*IndexBuffer, error)) (*SparseMatrix[T], error) {
	vs, err := NewValueStore(val)
	if err != nil {
		return nil, err
	}
	ib, err := build()
	if err != nil {
		return nil, err
	}
	if n != vs.NNZ() {
		return nil, fmt.Errorf("%d indices vs %d values: %w", n, vs.NNZ(), ErrShapeMismatch)
	}

	return &SparseMatrix[T]{idx: ib, logger: o.logger, vals: vs}, nil
}

// Shape returns (rows, cols). O(1).
func (m *SparseMatrix[T]) Shape() Shape { return m.idx.Shape() }

// NNZ returns the number of stored entries, duplicates included. O(1).
func (m *SparseMatrix[T]) NNZ() int { return m.idx.NNZ() }

// Format returns the native index format chosen at construction. O(1).
func (m *SparseMatrix[T]) Format() Format { return m.idx.Format() }

// DType returns the value dtype. O(1).
func (m *SparseMatrix[T]) DType() tensor.DType { return tensor.DTypeOf[T]() }

// Device returns the device of the values. O(1).
func (m *SparseMatrix[T]) Device() tensor.Device {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.vals.Device()
}

// FeatureShape returns the per-entry value shape; empty for scalar entries.
func (m *SparseMatrix[T]) FeatureShape() []int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.vals.FeatureShape()
}

// COO returns (row, col, val) with val[i] belonging to (row[i], col[i]).
// For a COO-native matrix this is exactly the constructor input order.
// All three results are fresh copies.
func (m *SparseMatrix[T]) COO() (row, col []int, val *tensor.Tensor[T]) {
	row, col, perm := m.idx.COO()

	return row, col, m.valuesFor(perm)
}

// CSR returns (indptr, indices, val) grouped by row, values aligned with
// indices. Entries sharing a row keep their native relative order.
func (m *SparseMatrix[T]) CSR() (indptr, indices []int, val *tensor.Tensor[T]) {
	indptr, indices, perm := m.idx.CSR()

	return indptr, indices, m.valuesFor(perm)
}

// CSC returns (indptr, indices, val) grouped by column; see CSR.
func (m *SparseMatrix[T]) CSC() (indptr, indices []int, val *tensor.Tensor[T]) {
	indptr, indices, perm := m.idx.CSC()

	return indptr, indices, m.valuesFor(perm)
}

// valuesFor gathers the current values by perm under the read lock.
// perm always has length nnz here, so a Reorder failure means the matrix
// invariants were broken and is treated as a programmer error.
func (m *SparseMatrix[T]) valuesFor(perm []int) *tensor.Tensor[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	vs, err := m.vals.Reorder(perm)
	if err != nil {
		panic("sparse: index/value invariant violated: " + err.Error())
	}

	return vs.Tensor()
}

// Val returns the current value container in native entry order.
// The tensor is shared with the matrix, not copied.
func (m *SparseMatrix[T]) Val() *tensor.Tensor[T] {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.vals.Tensor()
}

// SetVal replaces the values, keeping indices, shape and nnz.
// Implementation:
//   - Stage 1: take the write lock (excludes concurrent readers of values).
//   - Stage 2: delegate validation and the swap to ValueStore.Replace.
//
// Errors:
//   - ErrNilValues, ErrShapeMismatch (leading length != nnz),
//     ErrDeviceMismatch (device differs from Device()).
//     On error the matrix is unchanged.
func (m *SparseMatrix[T]) SetVal(val *tensor.Tensor[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.vals.Replace(val); err != nil {
		return sparseErrorf("SetVal", err)
	}
	m.logger.Debug("sparse: values replaced", "nnz", m.idx.NNZ(), "device", val.Device().String())

	return nil
}
