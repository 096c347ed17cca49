// Package lvsparse is a sparse-matrix core for graph computation.
//
// It provides a matrix type that holds one of three interchangeable index
// layouts and converts between them without losing or merging entries:
//
//	COO - per-entry (row, col) pairs, order significant
//	CSR - entries grouped by row via indptr/indices
//	CSC - entries grouped by column via indptr/indices
//
// Values may be scalars or per-entry vectors/tensors; they travel with their
// entries through every conversion and carry an explicit dtype and device.
//
// Layout:
//
//	tensor/   - flat n-d container with DType and Device tags
//	sparse/   - IndexBuffer, ValueStore and SparseMatrix
//	examples/ - a runnable adjacency walk-through
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
