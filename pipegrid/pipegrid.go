package pipegrid

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular view over parsed tile rows.
// Width and Height are fixed at Parse; tiles[y][x] holds the input tile.
type Grid struct {
	width, height int
	tiles         [][]Tile
	start         Location
}

// Parse splits text on line breaks and maps every character to a Tile.
// "\r\n" line endings and a single trailing newline are accepted.
// Returns ErrEmptyGrid if text holds no tiles, ErrNonRectangular if any row
// length differs from the first, ErrUnknownTile for a foreign character,
// ErrNoStart when no S is present and ErrMultipleStart when several are.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	h, w := len(lines), len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{width: w, height: h, tiles: make([][]Tile, h)}
	found := false
	for y, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, y, len(line), w)
		}
		row := make([]Tile, w)
		for x := 0; x < w; x++ {
			t, err := ParseTile(line[x])
			if err != nil {
				return nil, fmt.Errorf("%w at (%d,%d)", err, x, y)
			}
			if t == Start {
				if found {
					return nil, fmt.Errorf("%w: %v and (%d,%d)", ErrMultipleStart, g.start, x, y)
				}
				g.start = Location{X: x, Y: y}
				found = true
			}
			row[x] = t
		}
		g.tiles[y] = row
	}
	if !found {
		return nil, ErrNoStart
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the location of the S tile.
func (g *Grid) Start() Location { return g.start }

// InBounds reports whether loc lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < g.width && loc.Y >= 0 && loc.Y < g.height
}

// Neighbor returns the cell one step from loc toward d.
// ok is false when the step would leave the grid.
// Complexity: O(1).
func (g *Grid) Neighbor(loc Location, d Direction) (Location, bool) {
	dx, dy := d.Delta()
	next := Location{X: loc.X + dx, Y: loc.Y + dy}
	if !g.InBounds(next) {
		return Location{}, false
	}
	return next, true
}

// TileAt returns the tile at loc. loc must come from Start or Neighbor;
// out-of-range locations panic.
// Complexity: O(1).
func (g *Grid) TileAt(loc Location) Tile {
	return g.tiles[loc.Y][loc.X]
}

// Index maps loc to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(loc Location) int {
	return loc.Y*g.width + loc.X
}
