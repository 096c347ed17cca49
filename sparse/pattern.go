// SPDX-License-Identifier: MIT

// Package sparse - sparsity-pattern queries backed by roaring bitmaps.
//
// Purpose:
//   - Answer structural questions (duplicates, occupied rows/cols) without
//     materialising a dense mask.
//
// Notes:
//   - Every query reads the native indices or the COO view, which costs
//     O(nnz). Compressed views of the other axis are never built here, so a
//     huge declared shape with few entries stays cheap.
//   - Bitmaps are 64-bit, so no row or column id is truncated.

package sparse

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// HasDuplicate reports whether two entries share a (row, col) coordinate.
// Coordinates are linearised as row*cols+col; when rows*cols does not fit in
// 64 bits, entries are keyed by pair instead.
// Complexity: O(nnz) insertions; stops at the first repeat.
func (ib *IndexBuffer) HasDuplicate() bool {
	v := ib.get(COO)
	if hi, _ := bits.Mul64(uint64(ib.shape.Rows), uint64(ib.shape.Cols)); hi != 0 {
		seen := make(map[[2]int]struct{}, len(v.a))
		for i := range v.a {
			k := [2]int{v.a[i], v.b[i]}
			if _, ok := seen[k]; ok {
				return true
			}
			seen[k] = struct{}{}
		}

		return false
	}

	seen := roaring64.New()
	cols := uint64(ib.shape.Cols)
	for i := range v.a {
		key := uint64(v.a[i])*cols + uint64(v.b[i])
		if !seen.CheckedAdd(key) {
			return true
		}
	}

	return false
}

// NonEmptyRows returns the set of rows holding at least one entry.
// Complexity: O(nnz); a CSR-native buffer reads its indptr instead.
func (ib *IndexBuffer) NonEmptyRows() *roaring64.Bitmap {
	if ib.format == CSR {
		return occupied(ib.get(CSR).a)
	}

	return collect(ib.get(COO).a)
}

// NonEmptyCols returns the set of columns holding at least one entry.
// Complexity: O(nnz); a CSC-native buffer reads its indptr instead.
func (ib *IndexBuffer) NonEmptyCols() *roaring64.Bitmap {
	if ib.format == CSC {
		return occupied(ib.get(CSC).a)
	}

	return collect(ib.get(COO).b)
}

// collect adds every id in ids.
func collect(ids []int) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, id := range ids {
		bm.Add(uint64(id))
	}

	return bm
}

// occupied collects every bucket b with indptr[b+1] > indptr[b].
func occupied(indptr []int) *roaring64.Bitmap {
	bm := roaring64.New()
	for b := 0; b+1 < len(indptr); b++ {
		if indptr[b+1] > indptr[b] {
			bm.Add(uint64(b))
		}
	}

	return bm
}

// HasDuplicate reports whether two entries share a coordinate.
func (m *SparseMatrix[T]) HasDuplicate() bool { return m.idx.HasDuplicate() }

// NonEmptyRows returns the rows holding at least one entry (nodes with
// out-edges when the matrix is an adjacency).
func (m *SparseMatrix[T]) NonEmptyRows() *roaring64.Bitmap { return m.idx.NonEmptyRows() }

// NonEmptyCols returns the columns holding at least one entry.
func (m *SparseMatrix[T]) NonEmptyCols() *roaring64.Bitmap { return m.idx.NonEmptyCols() }
