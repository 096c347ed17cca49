// SPDX-License-Identifier: MIT

// Package tensor is the minimal n-dimensional array layer used by package sparse.
//
// A Tensor couples a flat row-major buffer with a shape, an element DType and a
// Device tag. Nothing here moves memory between devices: Device is metadata that
// callers compare explicitly, so placement mismatches surface as errors instead
// of silent coercion.
//
// Provided:
//   - New / FromSlice / FromRows / Zeros constructors with strict shape checks.
//   - Leading-axis Gather, the primitive used to reorder per-entry values.
//   - Equal / AllClose comparisons for assertions.
//   - DType resolution through github.com/gomlx/gopjrt/dtypes for the
//     supported element types, including IEEE 754 half precision
//     (github.com/x448/float16).
//
// Complexity quicksheet:
//   - New/FromSlice: O(1) (data is adopted, not copied); Zeros/Clone/To: O(n);
//     Gather: O(len(idx) * rowSize); At: O(rank).
package tensor
