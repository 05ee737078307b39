// Package batch solves many independent pipe mazes concurrently.
//
// Each input is solved by pipeloop.Solve on its own goroutine, bounded by a
// worker limit. Inputs share nothing, so no synchronization beyond the
// errgroup is needed. Outcomes are returned in input order; a malformed maze
// only fails its own Outcome. Only context cancellation fails the batch.
package batch
