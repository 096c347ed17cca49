// SPDX-License-Identifier: MIT

// Package sparse - format conversion kernels.
//
// Purpose:
//   - Pure functions over index slices; no receiver state, no logging.
//   - Every kernel that changes entry order returns the permutation it applied,
//     expressed as perm[newPos] = oldPos, so values can be gathered identically.
//
// Determinism:
//   - Counting-sort bucketing is stable: ties keep their input order.
//
// Complexity quicksheet:
//   - bucketStable: O(nnz + buckets); expandIndptr: O(nnz + len(indptr)).

package sparse

// bucketStable groups entries by key into a compressed layout.
// Implementation:
//   - Stage 1: histogram keys into counts[k+1].
//   - Stage 2: prefix-sum counts into indptr (non-decreasing by construction).
//   - Stage 3: scatter each entry in input order to the next free slot of its
//     bucket, recording other[i] in indices and i in perm.
//
// Behavior highlights:
//   - Stable: entries with equal keys keep their relative input order.
//   - Duplicates are carried through untouched.
//
// Inputs:
//   - buckets: number of keys (len(indptr)-1).
//   - keys:    per-entry bucket, each in [0, buckets).
//   - other:   per-entry payload index (the minor axis), same length as keys.
//
// Returns:
//   - indptr  (len buckets+1), indices (len nnz), perm (len nnz).
//
// Complexity:
//   - Time O(nnz + buckets), Space O(nnz + buckets).
func bucketStable(buckets int, keys, other []int) (indptr, indices, perm []int) {
	nnz := len(keys)
	indptr = make([]int, buckets+1)
	for _, k := range keys {
		indptr[k+1]++
	}
	for b := 0; b < buckets; b++ {
		indptr[b+1] += indptr[b]
	}

	next := make([]int, buckets)
	copy(next, indptr[:buckets])
	indices = make([]int, nnz)
	perm = make([]int, nnz)
	for i, k := range keys {
		pos := next[k]
		next[k]++
		indices[pos] = other[i]
		perm[pos] = i
	}

	return indptr, indices, perm
}

// expandIndptr repeats each bucket id indptr[b+1]-indptr[b] times,
// producing the major-axis label of every entry in compressed order.
// Complexity: O(nnz + len(indptr)).
func expandIndptr(indptr []int) []int {
	if len(indptr) == 0 {
		return []int{}
	}
	out := make([]int, indptr[len(indptr)-1])
	for b := 0; b+1 < len(indptr); b++ {
		for p := indptr[b]; p < indptr[b+1]; p++ {
			out[p] = b
		}
	}

	return out
}

// cooToCompressed converts COO to CSR (major=row) or CSC (major=col).
func cooToCompressed(buckets int, major, minor []int) (indptr, indices, perm []int) {
	return bucketStable(buckets, major, minor)
}

// compressedToCOO expands a compressed layout to (major, minor) per entry.
// Entry order is the compressed order, so no permutation is produced.
func compressedToCOO(indptr, indices []int) (major, minor []int) {
	minor = make([]int, len(indices))
	copy(minor, indices)

	return expandIndptr(indptr), minor
}

// transposeCompressed re-buckets a compressed layout by its minor axis:
// CSR→CSC when called with row-major input, CSC→CSR otherwise.
// perm is relative to the input compressed order.
// Complexity: O(nnz + majorDim + minorDim).
func transposeCompressed(minorDim int, indptr, indices []int) (outIndptr, outIndices, perm []int) {
	majorLabels := expandIndptr(indptr)

	return bucketStable(minorDim, indices, majorLabels)
}
