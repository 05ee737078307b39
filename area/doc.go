// Package area counts the grid cells strictly enclosed by a traced loop.
//
// Two methods are provided:
//
//   - Enclosed (Pick): twice the polygon area by the shoelace formula over
//     the loop vertices, then Pick's theorem
//     Interior = Area − Boundary/2 + 1. Exact integer arithmetic in int64.
//   - EnclosedScanline: a row-wise parity sweep. Crossing a loop tile that
//     opens North toggles "inside"; non-loop cells seen while inside count.
//     It needs the grid and the connector standing in for Start.
//
// Both methods agree on every well-formed maze, so one serves as a
// cross-check for the other.
//
// Complexity:
//
//   - Enclosed:         O(L) time, O(1) memory.
//   - EnclosedScanline: O(W×H) time, O(W×H) memory.
package area
