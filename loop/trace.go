package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

type arrival struct {
	tile pipegrid.Tile
	from pipegrid.Direction
}

// transitions maps each valid (tile, arrival side) pair to the exit side.
var transitions = map[arrival]pipegrid.Direction{
	{pipegrid.Vertical, pipegrid.North}:  pipegrid.South,
	{pipegrid.Vertical, pipegrid.South}:  pipegrid.North,
	{pipegrid.Horizontal, pipegrid.East}: pipegrid.West,
	{pipegrid.Horizontal, pipegrid.West}: pipegrid.East,
	{pipegrid.BendNE, pipegrid.North}:    pipegrid.East,
	{pipegrid.BendNE, pipegrid.East}:     pipegrid.North,
	{pipegrid.BendNW, pipegrid.North}:    pipegrid.West,
	{pipegrid.BendNW, pipegrid.West}:     pipegrid.North,
	{pipegrid.BendSW, pipegrid.South}:    pipegrid.West,
	{pipegrid.BendSW, pipegrid.West}:     pipegrid.South,
	{pipegrid.BendSE, pipegrid.South}:    pipegrid.East,
	{pipegrid.BendSE, pipegrid.East}:     pipegrid.South,
}

// Next advances the tracer by one tile. It looks up the tile at s.Loc,
// leaves through the side not arrived from and returns the state for the
// neighbor on that side.
// Returns ErrBrokenPipe when the tile does not accept s.From, and ErrNoLoop
// when the exit leads off the grid.
// Complexity: O(1).
func Next(g *pipegrid.Grid, s Step) (Step, error) {
	tile := g.TileAt(s.Loc)
	exit, ok := transitions[arrival{tile, s.From}]
	if !ok {
		return Step{}, fmt.Errorf("%w: %v at %v entered from %v", ErrBrokenPipe, tile, s.Loc, s.From)
	}
	n, ok := g.Neighbor(s.Loc, exit)
	if !ok {
		return Step{}, fmt.Errorf("%w: %v at %v exits the grid %v", ErrNoLoop, tile, s.Loc, exit)
	}
	return Step{Loc: n, From: exit.Opposite()}, nil
}

// Trace walks the loop from Start and returns it as a closed Path whose
// first and last entries are the Start location.
// The walk begins at the first connected neighbor (N, S, W, E order) and
// ends as soon as it re-enters Start.
// Returns ErrNoLoop or ErrBrokenPipe as described by Next; fewer than two
// connected neighbors around Start is ErrNoLoop.
// Complexity: O(L) time and memory.
func Trace(g *pipegrid.Grid) (pipegrid.Path, error) {
	start := g.Start()
	steps := ConnectedNeighbors(g, start)
	if len(steps) < 2 {
		return nil, fmt.Errorf("%w: start %v has %d connected neighbors", ErrNoLoop, start, len(steps))
	}

	path := pipegrid.Path{start}
	limit := g.Width() * g.Height()
	for s := steps[0]; ; {
		path = append(path, s.Loc)
		if s.Loc == start {
			return path, nil
		}
		// A walk longer than the grid has cells cannot be a simple loop.
		if len(path) > limit {
			return nil, fmt.Errorf("%w: walk exceeded %d cells", ErrNoLoop, limit)
		}
		var err error
		if s, err = Next(g, s); err != nil {
			return nil, err
		}
	}
}

// Farthest returns the step distance from Start to the farthest point on
// the loop: half the loop length.
func Farthest(p pipegrid.Path) int {
	return p.Len() / 2
}
