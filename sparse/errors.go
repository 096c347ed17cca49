// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every constructor and mutator reports failures with one of these sentinels,
// wrapped with call-site context. Callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a coordinate lies outside the declared
	// (or inferred) shape, when an index is negative, or when the leading length
	// of a value tensor differs from nnz.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrMalformedIndex is returned when indptr is empty, does not start at 0,
	// does not end at len(indices), decreases, or disagrees with the declared
	// shape; and when paired COO sequences have different lengths.
	ErrMalformedIndex = errors.New("sparse: malformed index")

	// ErrDeviceMismatch is returned when replacement values live on a device
	// other than the matrix's.
	ErrDeviceMismatch = errors.New("sparse: device mismatch")

	// ErrEmptyInput is returned when a dimension must be inferred from an empty
	// index sequence and no explicit shape was supplied.
	ErrEmptyInput = errors.New("sparse: cannot infer shape from empty indices")

	// ErrNilValues is returned when a nil value tensor is supplied.
	ErrNilValues = errors.New("sparse: nil values")
)

// sparseErrorf wraps err with an operation tag: "<tag>: <err>".
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
