// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for index validation and shape inference.
//  - Return sentinels wrapped with the validator tag so constructors only
//    prepend their own context.
//
// Determinism & Performance:
//  - Each validator is one pass over its input and allocates nothing.

package sparse

// maxIndex returns the largest value in idx, or -1 for an empty slice.
// Negative values are reported through ok=false.
func maxIndex(idx []int) (mx int, ok bool) {
	mx = -1
	for _, v := range idx {
		if v < 0 {
			return 0, false
		}
		if v > mx {
			mx = v
		}
	}

	return mx, true
}

// resolveDim checks idx against an explicit bound, or infers bound = max+1.
//   - explicit: every v must satisfy 0 <= v < bound, else ErrShapeMismatch.
//   - inferred: idx must be non-empty (ErrEmptyInput) and non-negative.
//
// Complexity: O(len(idx)).
func resolveDim(tag string, idx []int, bound int, explicit bool) (int, error) {
	mx, ok := maxIndex(idx)
	if !ok {
		return 0, sparseErrorf(tag+": negative index", ErrShapeMismatch)
	}
	if explicit {
		if mx >= bound {
			return 0, sparseErrorf(tag, ErrShapeMismatch)
		}

		return bound, nil
	}
	if len(idx) == 0 {
		return 0, sparseErrorf(tag, ErrEmptyInput)
	}

	return mx + 1, nil
}

// validateCOO checks paired lengths and bounds and resolves the shape.
// Order: pair length → rows → cols.
func validateCOO(row, col []int, o Options) (Shape, error) {
	if len(row) != len(col) {
		return Shape{}, sparseErrorf("validateCOO: len(row) != len(col)", ErrMalformedIndex)
	}
	rows, err := resolveDim("validateCOO: row", row, o.shape.Rows, o.hasShape)
	if err != nil {
		return Shape{}, err
	}
	cols, err := resolveDim("validateCOO: col", col, o.shape.Cols, o.hasShape)
	if err != nil {
		return Shape{}, err
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// validateIndptr checks indptr is a well-formed offset array over nnz entries:
// non-empty, indptr[0]==0, non-decreasing, indptr[last]==nnz.
// Complexity: O(len(indptr)).
func validateIndptr(tag string, indptr []int, nnz int) error {
	if len(indptr) == 0 {
		return sparseErrorf(tag+": empty indptr", ErrMalformedIndex)
	}
	if indptr[0] != 0 {
		return sparseErrorf(tag+": indptr[0] != 0", ErrMalformedIndex)
	}
	for i := 1; i < len(indptr); i++ {
		if indptr[i] < indptr[i-1] {
			return sparseErrorf(tag+": indptr decreases", ErrMalformedIndex)
		}
	}
	if indptr[len(indptr)-1] != nnz {
		return sparseErrorf(tag+": indptr[last] != len(indices)", ErrMalformedIndex)
	}

	return nil
}

// validateCompressed validates a CSR (major=rows) or CSC (major=cols) pair
// and resolves (major, minor) extents.
//   - major is len(indptr)-1; with an explicit shape it must equal explicitMajor.
//   - minor is explicitMinor, or max(indices)+1 when inferring.
func validateCompressed(tag string, indptr, indices []int, explicitMajor, explicitMinor int, explicit bool) (major, minor int, err error) {
	if err = validateIndptr(tag, indptr, len(indices)); err != nil {
		return 0, 0, err
	}
	major = len(indptr) - 1
	if explicit && major != explicitMajor {
		return 0, 0, sparseErrorf(tag+": len(indptr) != dim+1", ErrMalformedIndex)
	}
	minor, err = resolveDim(tag+": indices", indices, explicitMinor, explicit)
	if err != nil {
		return 0, 0, err
	}

	return major, minor, nil
}
