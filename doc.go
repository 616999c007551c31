// Package lvmat is your in-memory toolkit for dense float64 matrices with
// zero-copy views and type-preserving arithmetic.
//
// 🚀 What is lvmat?
//
//	A small, synchronous library that brings together:
//		• Dense storage: row-major float64 buffers with safe At/Set
//		• Construction: shape, nested rows, flat slices, decoded JSON, other matrices
//		• Views: transpose, sub-range, selections, single rows/columns, flips
//		• Species: results keep the type of the value an operation was invoked on
//		• Dispatch: Static / ViewOps tables accepting loosely typed operands
//
// ✨ Why choose lvmat?
//
//   - Views compose: a transpose of a transpose reads its owner directly, so
//     chains never grow.
//   - Errors, not panics: every user-triggered failure is a sentinel you can
//     errors.Is against.
//   - Pure Go – no cgo.
//
// Under the hood:
//
//	matrix/   : Dense, View, wrappers, species, arithmetic, reductions
//	examples/ : runnable walkthroughs
//
// Quick ASCII example:
//
//	    [1 2 3]         [1 4]
//	    [4 5 6]   ──ᵀ─▶  [2 5]   (no copy: writes go back to the left matrix)
//	                    [3 6]
//
//	go get github.com/katalvlaran/lvmat/matrix
package lvmat
