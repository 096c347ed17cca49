// SPDX-License-Identifier: MIT

// Package sparse - IndexBuffer: one native index representation plus lazily
// derived views of the other two.
//
// Purpose:
//   - Validate indices once, at construction.
//   - Answer COO/CSR/CSC queries; the native format is returned as stored,
//     derived formats are computed once and memoised.
//   - Report the entry permutation of every derived format relative to the
//     native entry order.
//
// Concurrency:
//   - Native buffers are never written after construction.
//   - Derived views are built under sync.Once, so concurrent readers are safe.

package sparse

import (
	"log/slog"
	"slices"
	"sync"
)

// view is one materialised representation.
//   - For COO: a=row, b=col.
//   - For CSR/CSC: a=indptr, b=indices.
//   - perm[newPos] = native position; nil when order equals native order.
type view struct {
	a, b []int
	perm []int
}

// IndexBuffer holds the validated indices of a sparse matrix.
// The zero value is not usable; build one with NewCOOIndex, NewCSRIndex or
// NewCSCIndex. An IndexBuffer must not be copied after first use.
type IndexBuffer struct {
	format Format
	shape  Shape
	nnz    int
	logger *slog.Logger

	once  [3]sync.Once
	views [3]view // indexed by Format
}

// NewCOOIndex validates (row, col) and returns a COO-native IndexBuffer.
// Implementation:
//   - Stage 1: gather options (explicit shape, logger).
//   - Stage 2: validate paired lengths, non-negativity and bounds; infer the
//     shape as (max(row)+1, max(col)+1) when none is given.
//   - Stage 3: copy both slices so the buffer owns its storage.
//
// Errors:
//   - ErrMalformedIndex: len(row) != len(col).
//   - ErrShapeMismatch:  negative index, or index >= declared dimension.
//   - ErrEmptyInput:     empty indices and no WithShape.
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func NewCOOIndex(row, col []int, opts ...Option) (*IndexBuffer, error) {
	o := gatherOptions(opts...)
	shape, err := validateCOO(row, col, o)
	if err != nil {
		return nil, sparseErrorf("NewCOOIndex", err)
	}
	ib := &IndexBuffer{format: COO, shape: shape, nnz: len(row), logger: o.logger}
	ib.views[COO] = view{a: cloneInts(row), b: cloneInts(col)}

	return ib, nil
}

// NewCSRIndex validates (indptr, indices) and returns a CSR-native IndexBuffer.
// Implementation:
//   - Stage 1: validate indptr (non-empty, starts at 0, non-decreasing,
//     ends at len(indices)).
//   - Stage 2: rows = len(indptr)-1 (must match WithShape rows when given);
//     cols = max(indices)+1 unless declared.
//   - Stage 3: copy both slices.
//
// Errors:
//   - ErrMalformedIndex, ErrShapeMismatch, ErrEmptyInput (see NewCOOIndex).
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows).
func NewCSRIndex(indptr, indices []int, opts ...Option) (*IndexBuffer, error) {
	o := gatherOptions(opts...)
	rows, cols, err := validateCompressed("NewCSRIndex", indptr, indices, o.shape.Rows, o.shape.Cols, o.hasShape)
	if err != nil {
		return nil, err
	}

	return newCompressed(CSR, Shape{Rows: rows, Cols: cols}, indptr, indices, o.logger), nil
}

// NewCSCIndex is NewCSRIndex with the roles of rows and columns swapped:
// cols = len(indptr)-1, rows = max(indices)+1 unless declared.
func NewCSCIndex(indptr, indices []int, opts ...Option) (*IndexBuffer, error) {
	o := gatherOptions(opts...)
	cols, rows, err := validateCompressed("NewCSCIndex", indptr, indices, o.shape.Cols, o.shape.Rows, o.hasShape)
	if err != nil {
		return nil, err
	}

	return newCompressed(CSC, Shape{Rows: rows, Cols: cols}, indptr, indices, o.logger), nil
}

// newCompressed builds a CSR/CSC-native buffer from already validated input.
func newCompressed(f Format, shape Shape, indptr, indices []int, logger *slog.Logger) *IndexBuffer {
	ib := &IndexBuffer{format: f, shape: shape, nnz: len(indices), logger: logger}
	ib.views[f] = view{a: cloneInts(indptr), b: cloneInts(indices)}

	return ib
}

// Format returns the native representation.
func (ib *IndexBuffer) Format() Format { return ib.format }

// Shape returns the (rows, cols) extent.
func (ib *IndexBuffer) Shape() Shape { return ib.shape }

// NNZ returns the number of stored entries, duplicates included.
func (ib *IndexBuffer) NNZ() int { return ib.nnz }

// COO returns per-entry (row, col) and the permutation applied relative to the
// native order (nil when unchanged).
//   - COO-native: the stored sequences, order untouched.
//   - CSR/CSC-native: expanded in compressed order; perm is nil because that
//     order is the native one.
//
// Returned slices are fresh copies.
func (ib *IndexBuffer) COO() (row, col, perm []int) {
	v := ib.get(COO)

	return cloneInts(v.a), cloneInts(v.b), slices.Clone(v.perm)
}

// CSR returns (indptr, indices) grouped by row and the permutation applied
// relative to the native order (nil when unchanged). Entries sharing a row keep
// their native relative order.
func (ib *IndexBuffer) CSR() (indptr, indices, perm []int) {
	v := ib.get(CSR)

	return cloneInts(v.a), cloneInts(v.b), slices.Clone(v.perm)
}

// CSC returns (indptr, indices) grouped by column; see CSR.
func (ib *IndexBuffer) CSC() (indptr, indices, perm []int) {
	v := ib.get(CSC)

	return cloneInts(v.a), cloneInts(v.b), slices.Clone(v.perm)
}

// get returns the memoised view for f, deriving it on first use.
// The native view is filled at construction, so its Once body is a no-op.
func (ib *IndexBuffer) get(f Format) view {
	ib.once[f].Do(func() {
		if f == ib.format {
			return
		}
		ib.views[f] = ib.derive(f)
		ib.logger.Debug("sparse: derived index format",
			"from", ib.format.String(),
			"to", f.String(),
			"nnz", ib.nnz,
			"reordered", ib.views[f].perm != nil,
		)
	})

	return ib.views[f]
}

// derive computes view f from the native view.
func (ib *IndexBuffer) derive(f Format) view {
	nat := ib.views[ib.format]
	switch {
	case ib.format == COO && f == CSR:
		indptr, indices, perm := cooToCompressed(ib.shape.Rows, nat.a, nat.b)
		return view{a: indptr, b: indices, perm: identityToNil(perm)}
	case ib.format == COO && f == CSC:
		indptr, indices, perm := cooToCompressed(ib.shape.Cols, nat.b, nat.a)
		return view{a: indptr, b: indices, perm: identityToNil(perm)}
	case ib.format == CSR && f == COO:
		row, col := compressedToCOO(nat.a, nat.b)
		return view{a: row, b: col}
	case ib.format == CSC && f == COO:
		col, row := compressedToCOO(nat.a, nat.b)
		return view{a: row, b: col}
	case ib.format == CSR && f == CSC:
		indptr, indices, perm := transposeCompressed(ib.shape.Cols, nat.a, nat.b)
		return view{a: indptr, b: indices, perm: identityToNil(perm)}
	case ib.format == CSC && f == CSR:
		indptr, indices, perm := transposeCompressed(ib.shape.Rows, nat.a, nat.b)
		return view{a: indptr, b: indices, perm: identityToNil(perm)}
	default:
		panic("sparse: derive: unsupported format pair " + ib.format.String() + "→" + f.String())
	}
}

// identityToNil drops a permutation that leaves every entry in place, so
// callers can skip the value gather.
func identityToNil(perm []int) []int {
	for i, p := range perm {
		if p != i {
			return perm
		}
	}

	return nil
}

// transpose returns a new buffer for the transposed matrix without
// re-validating: COO swaps row/col, CSR becomes CSC over the same arrays and
// vice versa. Entry order is preserved.
func (ib *IndexBuffer) transpose() *IndexBuffer {
	nat := ib.views[ib.format]
	switch ib.format {
	case CSR:
		return newCompressed(CSC, ib.shape.T(), nat.a, nat.b, ib.logger)
	case CSC:
		return newCompressed(CSR, ib.shape.T(), nat.a, nat.b, ib.logger)
	default:
		t := &IndexBuffer{format: COO, shape: ib.shape.T(), nnz: ib.nnz, logger: ib.logger}
		t.views[COO] = view{a: cloneInts(nat.b), b: cloneInts(nat.a)}
		return t
	}
}

// cloneInts copies s, mapping nil to an empty slice so index accessors never
// return nil.
func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)

	return out
}
