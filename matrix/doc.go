// Package matrix offers dense float64 matrices, zero-copy views over them
// and species-resolved arithmetic.
//
// The matrix package provides:
//
//   - Dense, a row-major buffer (NewDense, NewFromRows, FromRows, New, From1D,
//     Eye, Diag, Rand, ...). At/Set return ErrIndex on out-of-range access.
//   - View, a non-owning window (NewTransposeView, NewSubView,
//     NewSelectionView, NewRowView, NewFlipRowView, ...). Reads and writes go
//     through to the owner; a view of a view collapses into one mapping over
//     the original owner.
//   - Wrap1D / Wrap2D, non-copying adapters over caller-owned slices.
//   - Species: every operation that creates a new value asks the operand (or
//     the Ops table it was called through) which type to build. Dense builds
//     Dense; views and wrappers build Dense unless created WithSpecies(...).
//   - Conversions (To1D, To2D), structural Equal and JSON, identical for
//     every implementation.
//
// Errors are package sentinels (ErrArgument, ErrDimension, ErrShape, ErrIndex,
// ErrDimensionMismatch, ErrSpecies, ErrNaNInf) wrapped with context; match
// them with errors.Is.
//
// Everything is synchronous. Nothing in the package starts goroutines or
// takes locks; sharing a matrix across goroutines requires external
// synchronization, and a view shares its owner's.
package matrix
