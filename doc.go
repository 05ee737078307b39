// Package pipeloop finds the single closed loop in a pipe maze, measures
// how far its farthest point lies from Start, and counts the cells the
// loop encloses.
//
// 🚀 What is pipeloop?
//
//	A small, pure, zero-state solver built from four layers:
//		• pipegrid/ : tiles, directions, locations; parse text into an immutable Grid
//		• loop/     : resolve the Start connector and trace the loop as a state machine
//		• area/     : shoelace + Pick's theorem, with a scanline sweep as cross-check
//		• batch/    : solve many independent inputs concurrently
//
// Entry points:
//
//   - SolvePart1(text): half the loop length (farthest-point distance).
//   - SolvePart2(text): number of cells strictly inside the loop.
//   - Solve(text, opts...): both answers plus the traced path.
//
// Input is one grid row per line using | - L J 7 F . S, with an optional
// trailing newline.
//
// Errors:
//
//   - Malformed grids (no S, ragged rows, unknown symbols) fail with the
//     pipegrid sentinel errors and a zero result.
//   - A Start that is not on any loop yields (0, nil).
//   - A pipe that refuses the walker yields loop.ErrBrokenPipe.
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is a loop of length 8 (part 1 = 4) enclosing one cell (part 2 = 1).
//
//	go run ./cmd/pipeloop input.txt
package pipeloop
