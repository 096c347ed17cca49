// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Format names an index representation.
type Format uint8

const (
	// COO stores one (row, col) pair per entry.
	COO Format = iota
	// CSR groups entries by row: indptr over rows, indices hold columns.
	CSR
	// CSC groups entries by column: indptr over columns, indices hold rows.
	CSC
)

// String returns "coo", "csr" or "csc".
func (f Format) String() string {
	switch f {
	case COO:
		return "coo"
	case CSR:
		return "csr"
	case CSC:
		return "csc"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Shape is the (rows, cols) extent of a matrix. Both are non-negative.
type Shape struct {
	Rows int
	Cols int
}

// String formats the shape as "(rows, cols)".
func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d)", s.Rows, s.Cols)
}

// T returns the transposed shape.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}
