// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/tensor"
	"github.com/stretchr/testify/require"
)

// TestDense scatters scalar and vector entries into a zero tensor of shape
// Shape() + FeatureShape().
func TestDense(t *testing.T) {
	row := []int{1, 1, 2}
	col := []int{2, 4, 3}

	for _, k := range []int{0, 2} {
		val := randValues(t, int64(k)+5, 3, k, tensor.CPU)
		m := mustCOO(t, row, col, val)

		d, err := m.Dense()
		require.NoError(t, err)

		want := []int{3, 5}
		if k > 0 {
			want = append(want, k)
		}
		require.Equal(t, want, d.Shape())

		// reference scatter: target[row[i], col[i]] = val[i]
		w := max(k, 1)
		ref := make([]float32, 3*5*w)
		for i := range row {
			copy(ref[(row[i]*5+col[i])*w:], val.Data()[i*w:(i+1)*w])
		}
		require.Equal(t, ref, d.Data())
	}
}

// TestDenseDuplicatesLastWriteWins: the later entry in COO order wins.
func TestDenseDuplicatesLastWriteWins(t *testing.T) {
	m := mustCOO(t, []int{0, 1, 0}, []int{1, 0, 1}, vec(7, 8, 9))

	d, err := m.Dense()
	require.NoError(t, err)
	require.Equal(t, []float32{0, 9, 8, 0}, d.Data())
}

// TestDenseFromCompressedUsesExpandedOrder: for CSR input, COO order is the
// row-major expansion, so the later duplicate within a row wins.
func TestDenseFromCompressedUsesExpandedOrder(t *testing.T) {
	m, err := sparse.CreateFromCSR([]int{0, 2, 3}, []int{1, 1, 0}, vec(4, 5, 6))
	require.NoError(t, err)

	d, err := m.Dense()
	require.NoError(t, err)
	require.Equal(t, []int{2, 2}, d.Shape())
	require.Equal(t, []float32{0, 5, 6, 0}, d.Data())
}

// TestDenseExplicitShape pads to the declared shape.
func TestDenseExplicitShape(t *testing.T) {
	m := mustCOO(t, []int{0}, []int{0}, tensor.FromSlice([]int32{3}), sparse.WithShape(2, 3))

	d, err := m.Dense()
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, d.Shape())
	require.Equal(t, []int32{3, 0, 0, 0, 0, 0}, d.Data())
	require.Equal(t, tensor.DTypeInt32, d.DType())
}
