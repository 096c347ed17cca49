// SPDX-License-Identifier: MIT

// Package sparse provides a sparse matrix with three interchangeable index
// representations: coordinate (COO), compressed-row (CSR) and
// compressed-column (CSC).
//
// The package provides:
//
//   - IndexBuffer: one validated native representation plus lazily derived,
//     memoised views of the other two, each with the entry permutation it applied.
//   - ValueStore: the per-entry value tensor (axis 0 = entries, trailing axes =
//     per-entry feature shape) with explicit dtype and device.
//   - SparseMatrix: the composed, read-mostly object handed to graph code.
//     Values are the only mutable part (SetVal).
//
// Entry semantics:
//
//   - Duplicate coordinates are legal and are never summed or removed.
//   - COO order is significant and is preserved exactly by a COO round trip.
//   - COO→CSR/CSC bucketing is stable: entries sharing a row (column) keep
//     their original relative order.
//   - Dense materialisation scatters in COO order; for duplicate coordinates
//     the later entry wins.
//
// Quick example:
//
//	row := []int{0, 0, 1, 2}
//	col := []int{1, 3, 3, 4}
//	m, err := sparse.CreateFromCOO(row, col, tensor.FromSlice([]float32{1, 2, 3, 4}))
//	// m.Shape() == (3, 5), m.NNZ() == 4
//	indptr, indices, vals := m.CSR()
//
// Concurrency: index buffers are immutable after construction and derived
// formats are memoised behind sync.Once, so any number of readers may share a
// matrix. Values are guarded by an RWMutex; SetVal excludes concurrent readers.
package sparse
