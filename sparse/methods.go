// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"strings"
)

// Transpose returns a new matrix with rows and columns swapped.
//   - COO-native: row and col sequences trade places, order unchanged.
//   - CSR-native: becomes CSC-native over the same indptr/indices, and vice versa.
//
// Values are copied in native order, so no gather is needed.
// Complexity: O(nnz + major dimension).
func (m *SparseMatrix[T]) Transpose() *SparseMatrix[T] {
	m.mu.RLock()
	vals := &ValueStore[T]{t: m.vals.Tensor().Clone()}
	m.mu.RUnlock()

	return &SparseMatrix[T]{idx: m.idx.transpose(), logger: m.logger, vals: vals}
}

// String renders a one-line summary, e.g.
// "SparseMatrix(shape=(3, 5), nnz=3, format=coo, dtype=float32, device=cpu:0)".
// Non-scalar entries add "feature=[k ...]".
func (m *SparseMatrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "SparseMatrix(shape=%s, nnz=%d, format=%s, dtype=%s, device=%s",
		m.Shape(), m.NNZ(), m.Format(), m.DType(), m.Device())
	if fs := m.FeatureShape(); len(fs) > 0 {
		fmt.Fprintf(&b, ", feature=%v", fs)
	}
	b.WriteString(")")

	return b.String()
}
