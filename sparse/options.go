// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that applies defaults.
//
// Defaults:
//   - shape: inferred from the indices.
//   - logger: discards everything.

package sparse

import "log/slog"

const (
	panicShapeInvalid  = "sparse: WithShape: rows and cols must be non-negative"
	panicLoggerInvalid = "sparse: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly; the last
// application of a given setter wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	shape    Shape // explicit shape when hasShape
	hasShape bool  // false ⇒ infer from indices

	logger *slog.Logger // never nil after gatherOptions
}

// WithShape declares the matrix shape instead of inferring it.
// Implementation:
//   - Stage 1: validate rows >= 0 and cols >= 0.
//   - Stage 2: return a setter recording the shape.
//
// Behavior highlights:
//   - Every supplied index must then satisfy row < rows and col < cols,
//     otherwise construction fails with ErrShapeMismatch.
//   - For CSR (CSC), len(indptr) must equal rows+1 (cols+1).
//
// Errors:
//   - Panics with a stable message on negative dimensions (programmer error).
//
// Complexity:
//   - Time O(1), Space O(1).
func WithShape(rows, cols int) Option {
	if rows < 0 || cols < 0 {
		panic(panicShapeInvalid)
	}

	return func(o *Options) {
		o.shape = Shape{Rows: rows, Cols: cols}
		o.hasShape = true
	}
}

// WithLogger routes debug events (format conversions, rejected constructions,
// value replacement) to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerInvalid)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the zero-config baseline.
func defaultOptions() Options {
	return Options{logger: slog.New(slog.DiscardHandler)}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
