// SPDX-License-Identifier: MIT

// Package sparse - interop with gonum.org/v1/gonum/mat for scalar float64
// matrices.

package sparse

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsparse/tensor"
)

// ToGonum densifies a scalar-valued float64 matrix into a *mat.Dense.
// Duplicate coordinates follow Dense: the later COO entry wins.
//
// Errors:
//   - ErrShapeMismatch when entries carry a feature shape (not representable
//     as a 2-D gonum matrix).
//   - ErrEmptyInput when rows or cols is zero (gonum rejects empty matrices).
//
// Complexity: O(rows*cols + nnz).
func ToGonum(m *SparseMatrix[float64]) (*mat.Dense, error) {
	if len(m.FeatureShape()) != 0 {
		return nil, sparseErrorf("ToGonum: non-scalar entries", ErrShapeMismatch)
	}
	s := m.Shape()
	if s.Rows == 0 || s.Cols == 0 {
		return nil, sparseErrorf("ToGonum: zero dimension", ErrEmptyInput)
	}
	d, err := m.Dense()
	if err != nil {
		return nil, sparseErrorf("ToGonum", err)
	}

	return mat.NewDense(s.Rows, s.Cols, d.Data()), nil
}

// FromGonum builds a COO-native matrix from the nonzero entries of a,
// scanned in row-major order. The shape is a's dimensions; a WithShape among
// opts is overridden.
// Complexity: O(rows*cols).
func FromGonum(a mat.Matrix, opts ...Option) (*SparseMatrix[float64], error) {
	r, c := a.Dims()
	var row, col []int
	var vals []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				row = append(row, i)
				col = append(col, j)
				vals = append(vals, v)
			}
		}
	}
	opts = append(opts[:len(opts):len(opts)], WithShape(r, c))

	return CreateFromCOO(row, col, tensor.FromSlice(vals), opts...)
}
