// SPDX-License-Identifier: MIT

package tensor

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a shape has a negative dimension or does not
	// match the length of the supplied buffer.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates an index outside the tensor bounds.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrRaggedRows is returned by FromRows when rows differ in length.
	ErrRaggedRows = errors.New("tensor: ragged rows")

	// ErrUnknownDevice is returned by ParseDevice for unrecognised device strings.
	ErrUnknownDevice = errors.New("tensor: unknown device")
)

// tensorErrorf attaches a method tag to a sentinel.
func tensorErrorf(method string, err error) error {
	return fmt.Errorf("Tensor.%s: %w", method, err)
}
