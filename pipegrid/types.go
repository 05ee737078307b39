package pipegrid

import "fmt"

// Direction selects one of the four orthogonal sides of a tile.
type Direction int

const (
	// North is the side toward row y-1.
	North Direction = iota
	// South is the side toward row y+1.
	South
	// East is the side toward column x+1.
	East
	// West is the side toward column x-1.
	West
)

// Directions lists the four sides in resolver order: N, S, W, E.
var Directions = [4]Direction{North, South, West, East}

// offsets holds the unit step per Direction, indexed by Direction.
var offsets = [4][2]int{
	North: {0, -1},
	South: {0, 1},
	East:  {1, 0},
	West:  {-1, 0},
}

// Opposite returns the side facing d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

// Delta returns the unit step (dx, dy) for d.
func (d Direction) Delta() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Tile is a single grid cell's connector type, stored as its input symbol.
type Tile byte

const (
	// Vertical connects North and South.
	Vertical Tile = '|'
	// Horizontal connects East and West.
	Horizontal Tile = '-'
	// BendNE connects North and East.
	BendNE Tile = 'L'
	// BendNW connects North and West.
	BendNW Tile = 'J'
	// BendSW connects South and West.
	BendSW Tile = '7'
	// BendSE connects South and East.
	BendSE Tile = 'F'
	// Ground has no open side.
	Ground Tile = '.'
	// Start is the tile whose connectivity must be inferred.
	Start Tile = 'S'
)

// Pipes lists the six connector tiles.
var Pipes = [6]Tile{Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE}

// ParseTile maps an input character to its Tile.
// Returns ErrUnknownTile for any other character.
func ParseTile(c byte) (Tile, error) {
	switch t := Tile(c); t {
	case Vertical, Horizontal, BendNE, BendNW, BendSW, BendSE, Ground, Start:
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTile, c)
}

// Sides returns the two open sides of a connector tile.
// ok is false for Ground and Start, which declare no sides.
func (t Tile) Sides() (a, b Direction, ok bool) {
	switch t {
	case Vertical:
		return North, South, true
	case Horizontal:
		return East, West, true
	case BendNE:
		return North, East, true
	case BendNW:
		return North, West, true
	case BendSW:
		return South, West, true
	case BendSE:
		return South, East, true
	}
	return 0, 0, false
}

// Opens reports whether t declares an open side d.
// Start and Ground never declare any.
func (t Tile) Opens(d Direction) bool {
	a, b, ok := t.Sides()
	return ok && (a == d || b == d)
}

// PipeJoining returns the connector tile whose open sides are exactly a and b.
// ok is false when a == b.
func PipeJoining(a, b Direction) (Tile, bool) {
	for _, p := range Pipes {
		if p.Opens(a) && p.Opens(b) && a != b {
			return p, true
		}
	}
	return 0, false
}

func (t Tile) String() string {
	return string(rune(t))
}

// Location is a 0-based (X, Y) cell coordinate; Y grows southward.
type Location struct {
	X, Y int
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// DirectionTo returns the side of l facing o when o is one unit step away.
func (l Location) DirectionTo(o Location) (Direction, bool) {
	for _, d := range Directions {
		dx, dy := d.Delta()
		if l.X+dx == o.X && l.Y+dy == o.Y {
			return d, true
		}
	}
	return 0, false
}

// Path is an ordered loop of Locations: the first and last entries are the
// Start location and consecutive entries are one unit step apart.
type Path []Location

// Len returns the number of edges in the path (vertices − 1).
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Closed reports whether p starts and ends on the same Location and every
// consecutive pair differs by exactly one unit step along one axis.
func (p Path) Closed() bool {
	if len(p) < 2 || p[0] != p[len(p)-1] {
		return false
	}
	for i := 1; i < len(p); i++ {
		dx, dy := p[i].X-p[i-1].X, p[i].Y-p[i-1].Y
		if dx*dx+dy*dy != 1 {
			return false
		}
	}
	return true
}
