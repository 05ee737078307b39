// Package pipegrid parses a pipe maze into an immutable rectangular grid of
// connector tiles and answers bounded neighbor queries over it.
//
// What:
//
//   - Tile maps each input character (| - L J 7 F . S) to a connector kind
//     and reports which of its four sides are open.
//   - Direction is both a unit step (North, South, East, West) and the side
//     a walker arrived from.
//   - Grid holds the parsed rows, the Start location, and is read-only once
//     built. Neighbor is the only bounds check in the module.
//   - Path is an ordered, closed sequence of Locations produced by a tracer.
//
// Why:
//
//   - Higher layers (loop, area) act on tiles and steps only; they never
//     inspect numeric ranges, so all bounds logic lives here.
//
// Complexity:
//
//   - Parse:    O(W×H) time and memory.
//   - Neighbor: O(1).
//   - TileAt:   O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a character outside | - L J 7 F . S.
//   - ErrNoStart: no S tile.
//   - ErrMultipleStart: more than one S tile.
package pipegrid
