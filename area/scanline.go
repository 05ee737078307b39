package area

import "github.com/katalvlaran/pipeloop/pipegrid"

// Grid is the read-only view EnclosedScanline sweeps over.
// *pipegrid.Grid satisfies it.
type Grid interface {
	Width() int
	Height() int
	TileAt(loc pipegrid.Location) pipegrid.Tile
	Index(loc pipegrid.Location) int
}

// EnclosedScanline counts cells strictly inside the loop p by sweeping each
// row west to east. start is the connector the Start tile stands for; the
// Start cell itself carries no sides.
// Only tiles on p take part in crossings; every other cell, pipe or ground,
// counts when it lies inside.
// Complexity: O(W×H) time and memory.
func EnclosedScanline(g Grid, p pipegrid.Path, start pipegrid.Tile) int {
	onLoop := make([]bool, g.Width()*g.Height())
	for _, loc := range p {
		onLoop[g.Index(loc)] = true
	}

	count := 0
	for y := 0; y < g.Height(); y++ {
		inside := false
		for x := 0; x < g.Width(); x++ {
			loc := pipegrid.Location{X: x, Y: y}
			if !onLoop[g.Index(loc)] {
				if inside {
					count++
				}
				continue
			}
			t := g.TileAt(loc)
			if t == pipegrid.Start {
				t = start
			}
			if t.Opens(pipegrid.North) {
				inside = !inside
			}
		}
	}
	return count
}
