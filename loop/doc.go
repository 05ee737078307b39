// Package loop discovers the single closed cycle through a pipe maze.
//
// What:
//
//   - ConnectedNeighbors: the cells around a location whose tiles declare an
//     open side facing back toward it, in N, S, W, E order.
//   - StartTile: the connector the Start tile stands for on the traced loop,
//     derived from the two loop steps touching Start without rewriting the
//     grid.
//   - Next: one step of the tracer state machine. The state is a location
//     plus the side it was entered from; a fixed table of twelve
//     (tile, arrival side) pairs picks the exit.
//   - Trace: walks from Start until it returns there, producing a closed Path.
//
// Why:
//
//   - Every non-Start tile on the loop has exactly two open sides, so the
//     tile under the walker and the side it did not arrive from fix the next
//     step. No visited set or backtracking is required.
//
// Complexity:
//
//   - ConnectedNeighbors, StartTile, Next: O(1).
//   - Trace: O(L) time and memory, L = loop length.
//
// Errors:
//
//   - ErrNoLoop: Start has fewer than two connected neighbors, or the walk
//     steps off the grid. Callers report a zero result for this input.
//   - ErrBrokenPipe: the walker entered a tile through a side the tile does
//     not open. The maze is inconsistent; this is surfaced, never recovered.
package loop
