// Package tensor_test verifies construction, gather and comparison of Tensor.
package tensor_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/tensor"
	"github.com/stretchr/testify/require"
)

// TestNewValidatesShape ensures New rejects negative dims and length mismatches.
func TestNewValidatesShape(t *testing.T) {
	_, err := tensor.New([]float32{1, 2, 3}, []int{2, 2}, tensor.CPU)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	_, err = tensor.New([]float32{}, []int{-1}, tensor.CPU)
	require.ErrorIs(t, err, tensor.ErrBadShape)

	x, err := tensor.New([]float32{1, 2, 3, 4, 5, 6}, []int{3, 2}, tensor.CUDA(1))
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, x.Shape())
	require.Equal(t, 3, x.Len())
	require.Equal(t, 2, x.RowSize())
	require.Equal(t, 6, x.Numel())
	require.Equal(t, tensor.DTypeFloat32, x.DType())
	require.Equal(t, tensor.CUDA(1), x.Device())
}

// TestShapeIsCopied verifies callers cannot mutate the tensor shape.
func TestShapeIsCopied(t *testing.T) {
	shape := []int{2}
	x, err := tensor.New([]int64{7, 8}, shape, tensor.CPU)
	require.NoError(t, err)

	shape[0] = 99
	got := x.Shape()
	got[0] = 42
	require.Equal(t, []int{2}, x.Shape())
}

// TestZeros checks shape and zero fill, including zero-sized axes.
func TestZeros(t *testing.T) {
	z, err := tensor.Zeros[float64](tensor.CPU, 2, 3, 4)
	require.NoError(t, err)
	require.Equal(t, 24, z.Numel())
	for _, v := range z.Data() {
		require.Zero(t, v)
	}

	empty, err := tensor.Zeros[float64](tensor.CPU, 0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Numel())
	require.Equal(t, []int{0, 5}, empty.Shape())

	_, err = tensor.Zeros[float64](tensor.CPU, 3, -2)
	require.ErrorIs(t, err, tensor.ErrBadShape)
}

// TestFromRows stacks rows and rejects ragged input.
func TestFromRows(t *testing.T) {
	x, err := tensor.FromRows([][]int32{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, x.Shape())
	require.Equal(t, []int32{1, 2, 3, 4, 5, 6}, x.Data())

	_, err = tensor.FromRows([][]int32{{1, 2}, {3}})
	require.ErrorIs(t, err, tensor.ErrRaggedRows)
}

// TestAtAndRow exercises multi-index access and axis-0 views.
func TestAtAndRow(t *testing.T) {
	x, err := tensor.New([]int{0, 1, 2, 3, 4, 5}, []int{2, 3}, tensor.CPU)
	require.NoError(t, err)

	v, err := x.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	_, err = x.At(2, 0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
	_, err = x.At(0)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)

	row, err := x.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{3, 4, 5}, row)

	_, err = x.Row(-1)
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

// TestGather reorders whole rows and keeps the trailing shape and device.
func TestGather(t *testing.T) {
	x, err := tensor.New([]float32{1, 1, 2, 2, 3, 3}, []int{3, 2}, tensor.CUDA(0))
	require.NoError(t, err)

	g, err := x.Gather([]int{2, 0, 0})
	require.NoError(t, err)
	require.Equal(t, []int{3, 2}, g.Shape())
	require.Equal(t, []float32{3, 3, 1, 1, 1, 1}, g.Data())
	require.Equal(t, tensor.CUDA(0), g.Device())

	// source is untouched
	require.Equal(t, []float32{1, 1, 2, 2, 3, 3}, x.Data())

	_, err = x.Gather([]int{3})
	require.ErrorIs(t, err, tensor.ErrOutOfRange)
}

// TestCloneAndTo verifies deep copies and device retagging.
func TestCloneAndTo(t *testing.T) {
	x := tensor.FromSlice([]float64{1, 2, 3})
	c := x.Clone()
	c.Data()[0] = 100
	require.Equal(t, 1.0, x.Data()[0])

	g := x.To(tensor.CUDA(2))
	require.Equal(t, tensor.CUDA(2), g.Device())
	require.Equal(t, tensor.CPU, x.Device())
	require.False(t, tensor.Equal(x, g))
}

// TestEqualAndAllClose compares element-wise with and without tolerance.
func TestEqualAndAllClose(t *testing.T) {
	a := tensor.FromSlice([]float64{1, 2, 3})
	b := tensor.FromSlice([]float64{1, 2, 3 + 1e-12})

	require.False(t, tensor.Equal(a, b))
	require.True(t, tensor.AllClose(a, b, 1e-9, 1e-9))
	require.False(t, tensor.AllClose(a, tensor.FromSlice([]float64{1, 2}), 1e-9, 1e-9))
	require.True(t, tensor.Equal[float64](nil, nil))
}
