// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Deterministic value fixtures (seeded RNG, optional feature dimension).
//   • Multiset views of (row, col, value) triples for order-insensitive checks.

package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/tensor"
	"github.com/stretchr/testify/require"
)

// randValues returns an (nnz) tensor, or (nnz, k) when k > 0, filled from a
// seeded RNG and placed on device.
func randValues(tb testing.TB, seed int64, nnz, k int, device tensor.Device) *tensor.Tensor[float32] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	shape := []int{nnz}
	n := nnz
	if k > 0 {
		shape = append(shape, k)
		n *= k
	}
	data := make([]float32, n)
	for i := range data {
		data[i] = rng.Float32()*2 - 1
	}
	t, err := tensor.New(data, shape, device)
	require.NoError(tb, err)

	return t
}

// mustCOO builds a COO matrix or fails the test.
func mustCOO[T tensor.Scalar](tb testing.TB, row, col []int, val *tensor.Tensor[T], opts ...sparse.Option) *sparse.SparseMatrix[T] {
	tb.Helper()
	m, err := sparse.CreateFromCOO(row, col, val, opts...)
	require.NoError(tb, err)

	return m
}

// triple is one logical entry; v is the formatted feature block so vector
// values compare as a unit.
type triple struct {
	r, c int
	v    string
}

// triples lists the entries of (row, col, val) for ElementsMatch.
func triples[T tensor.Scalar](tb testing.TB, row, col []int, val *tensor.Tensor[T]) []triple {
	tb.Helper()
	require.Len(tb, col, len(row))
	require.Equal(tb, len(row), val.Len())
	out := make([]triple, len(row))
	for i := range row {
		block, err := val.Row(i)
		require.NoError(tb, err)
		out[i] = triple{r: row[i], c: col[i], v: fmt.Sprint(block)}
	}

	return out
}

// vec builds a CPU float32 vector.
func vec(xs ...float32) *tensor.Tensor[float32] {
	return tensor.FromSlice(xs)
}

// maxPlusOne mirrors shape inference for expectations.
func maxPlusOne(xs []int) int {
	mx := -1
	for _, x := range xs {
		mx = max(mx, x)
	}

	return mx + 1
}
