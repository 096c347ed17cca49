// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/tensor"
)

// Dense materialises the matrix as a tensor of shape (rows, cols, feature...).
// Implementation:
//   - Stage 1: allocate a zero tensor on the values' device.
//   - Stage 2: walk entries in COO order and copy each entry's feature block to
//     target[row, col, ...].
//
// Behavior highlights:
//   - Duplicate coordinates: the later entry in COO order wins; nothing is summed.
//   - Scalar values yield shape (rows, cols).
//
// Errors:
//   - tensor.ErrBadShape if rows*cols*featureSize overflows int.
//
// Complexity:
//   - Time O(rows*cols*featureSize + nnz*featureSize), Space O(rows*cols*featureSize).
func (m *SparseMatrix[T]) Dense() (*tensor.Tensor[T], error) {
	row, col, val := m.COO()
	s := m.Shape()

	shape := append([]int{s.Rows, s.Cols}, val.Shape()[1:]...)
	out, err := tensor.Zeros[T](val.Device(), shape...)
	if err != nil {
		return nil, sparseErrorf("Dense", err)
	}

	w := val.RowSize()
	dst, src := out.Data(), val.Data()
	for i := range row {
		off := (row[i]*s.Cols + col[i]) * w
		copy(dst[off:off+w], src[i*w:(i+1)*w])
	}

	return out, nil
}
