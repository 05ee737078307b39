package loop

import "github.com/katalvlaran/pipeloop/pipegrid"

// Step is one tracer state: the cell being entered and the side of that
// cell the walker arrives through.
type Step struct {
	Loc  pipegrid.Location
	From pipegrid.Direction
}

// ConnectedNeighbors returns every neighbor of loc whose tile opens toward
// loc, each paired with the side of the neighbor it would be entered from.
// Order is fixed: North, South, West, East.
// Complexity: O(1).
func ConnectedNeighbors(g *pipegrid.Grid, loc pipegrid.Location) []Step {
	steps := make([]Step, 0, 4)
	for _, d := range pipegrid.Directions {
		n, ok := g.Neighbor(loc, d)
		if !ok {
			continue
		}
		back := d.Opposite()
		if g.TileAt(n).Opens(back) {
			steps = append(steps, Step{Loc: n, From: back})
		}
	}
	return steps
}

// StartTile returns the connector the Start cell stands for on the traced
// loop p: the pipe joining the sides toward p[1] and toward p[len(p)-2].
// This holds even when more than two neighbors open toward Start.
// ok is false when p is too short to be a loop.
// Complexity: O(1).
func StartTile(p pipegrid.Path) (pipegrid.Tile, bool) {
	if len(p) < 4 {
		return 0, false
	}
	out, ok1 := p[0].DirectionTo(p[1])
	in, ok2 := p[0].DirectionTo(p[len(p)-2])
	if !ok1 || !ok2 {
		return 0, false
	}
	return pipegrid.PipeJoining(out, in)
}
