// Package grid provides a dense, fixed-size, generic 2D container with
// row-major storage.
//
// What:
//
//   - Grid[T] owns a flat []T plus a width and height; cell (x, y) lives at
//     linear index y*width + x.
//   - Three constructors: New (dimensions + fill), WithWidth (flat data,
//     height inferred), FromMatrix (rows of equal length).
//   - Access by linear index (At/Set) or by any Point — a value exposing
//     X() and Y() — via AtPoint/SetPoint.
//   - Conversions: ToMatrix, Slice (read-only view of the store), Clone.
//   - Iteration: Values, All, and Refs (mutable) walk all cells once in
//     row-major order.
//
// Why:
//
//   - Game boards, tile maps, terminal screens, image-like buffers: any
//     rectangle of uniform cells addressed by (column, row).
//
// Complexity:
//
//   - At/Set/AtPoint/SetPoint: O(1).
//   - Construction, ToMatrix, Clone, iteration: O(width×height).
//
// Errors:
//
//   - ErrInvalidShape: construction input cannot form a rectangle of the
//     requested width (non-divisible flat length, ragged matrix rows).
//     Returned by WithWidth and FromMatrix.
//   - ErrOutOfBounds: an access targeted a linear index outside [0, Area()).
//     Accessors panic with an error wrapping this sentinel; misuse is a
//     programmer error, and the container fails fast rather than answering
//     with a default value. There is no non-failing "try" accessor.
//
// The grid never resizes and holds no locks; share it across goroutines
// only behind external synchronization.
package grid
