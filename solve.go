package pipeloop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrMethodMismatch indicates the two area methods disagreed under WithVerify.
var ErrMethodMismatch = errors.New("pipeloop: area methods disagree")

// Result holds both answers for one maze.
type Result struct {
	// Farthest is half the loop length: the part 1 answer.
	Farthest int
	// Enclosed is the number of cells strictly inside the loop: the part 2 answer.
	Enclosed int
	// StartTile is the connector the S tile stands for; zero when no loop.
	StartTile pipegrid.Tile
	// Path is the traced loop, Start at both ends; nil when no loop.
	Path pipegrid.Path
}

// Solve parses text, traces the loop through Start and computes both answers.
// A Start with no loop through it gives a zero Result and a nil error.
// Parse failures and loop.ErrBrokenPipe are returned with a zero Result.
// Complexity: O(W×H) for parsing, O(L) for tracing and Pick.
func Solve(text string, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := pipegrid.Parse(text)
	if err != nil {
		return Result{}, err
	}
	path, err := loop.Trace(g)
	if err != nil {
		return zeroOnNoLoop(err)
	}
	start, _ := loop.StartTile(path)

	res := Result{
		Farthest:  loop.Farthest(path),
		StartTile: start,
		Path:      path,
	}
	switch {
	case o.Verify:
		pick, scan := area.Enclosed(path), area.EnclosedScanline(g, path, start)
		if pick != scan {
			return Result{}, fmt.Errorf("%w: pick=%d scanline=%d", ErrMethodMismatch, pick, scan)
		}
		res.Enclosed = pick
	case o.Method == area.MethodScanline:
		res.Enclosed = area.EnclosedScanline(g, path, start)
	default:
		res.Enclosed = area.Enclosed(path)
	}

	return res, nil
}

func zeroOnNoLoop(err error) (Result, error) {
	if errors.Is(err, loop.ErrNoLoop) {
		return Result{}, nil
	}
	return Result{}, err
}

// SolvePart1 returns the distance from Start to the farthest loop tile.
func SolvePart1(text string) (int, error) {
	res, err := Solve(text)
	return res.Farthest, err
}

// SolvePart2 returns the number of cells strictly enclosed by the loop.
func SolvePart2(text string) (int, error) {
	res, err := Solve(text)
	return res.Enclosed, err
}
