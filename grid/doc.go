// Package grid models a rectangular 2D grid of characters read from
// puzzle input, together with the compass directions used to walk it.
//
// What:
//
//   - Grid wraps a rectangular set of rune rows. It is immutable once built.
//   - Direction enumerates N, NE, E, SE, S, SW, W, NW with a fixed (dx, dy) table.
//   - Position is an (X, Y) cell reference; X is the column, Y is the row.
//
// Why:
//
//   - Word searches, flood fills and path walks all need the same
//     bounds-checked stepping over a fixed grid.
//
// Complexity:
//
//   - New / Parse: O(W×H) time and memory (input is deep-copied).
//   - At, InBounds, CanStep: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package grid
