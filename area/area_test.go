package area_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

var mazes = []struct {
	name     string
	rows     []string
	enclosed int
}{
	{"Square", []string{".....", ".S-7.", ".|.|.", ".L-J.", "....."}, 1},
	{"Complex", []string{"..F7.", ".FJ|.", "SJ.L7", "|F--J", "LJ..."}, 1},
	{"TwoPockets", []string{
		"...........",
		".S-------7.",
		".|F-----7|.",
		".||.....||.",
		".||.....||.",
		".|L-7.F-J|.",
		".|..|.|..|.",
		".L--J.L--J.",
		"...........",
	}, 4},
	{"SqueezedPockets", []string{
		"..........",
		".S------7.",
		".|F----7|.",
		".||....||.",
		".||....||.",
		".|L-7F-J|.",
		".|..||..|.",
		".L--JL--J.",
		"..........",
	}, 4},
	{"Larger", []string{
		".F----7F7F7F7F-7....",
		".|F--7||||||||FJ....",
		".||.FJ||||||||L7....",
		"FJL7L7LJLJ||LJ.L-7..",
		"L--J.L7...LJS7F-7L7.",
		"....F-J..F7FJ|L7L7L7",
		"....L7.F7||L7|.L7L7|",
		".....|FJLJ|FJ|F7|.LJ",
		"....FJL-7.||.||||...",
		"....L---J.LJ.LJLJ...",
	}, 8},
	{"JunkPipes", []string{
		"FF7FSF7F7F7F7F7F---7",
		"L|LJ||||||||||||F--J",
		"FL-7LJLJ||||||LJL-77",
		"F--JF--7||LJLJ7F7FJ-",
		"L---JF-JLJ.||-FJLJJ7",
		"|F|F-JF---7F7-L7L|7|",
		"|FFJF7L7F-JF7|JL---7",
		"7-L-JL7||F7|L7F-7F7|",
		"L.L7LFJ|||||FJL7||LJ",
		"L7JLJL-JLJLJL--JLJ.L",
	}, 10},
}

func trace(t *testing.T, rows []string) (*pipegrid.Grid, pipegrid.Path, pipegrid.Tile) {
	t.Helper()
	g, err := pipegrid.Parse(strings.Join(rows, "\n"))
	require.NoError(t, err)
	path, err := loop.Trace(g)
	require.NoError(t, err)
	start, ok := loop.StartTile(path)
	require.True(t, ok)
	return g, path, start
}

// TestEnclosed checks Pick's theorem and the scanline sweep on every maze.
func TestEnclosed(t *testing.T) {
	for _, m := range mazes {
		t.Run(m.name, func(t *testing.T) {
			g, path, start := trace(t, m.rows)
			assert.Equal(t, m.enclosed, area.Enclosed(path), "pick")
			assert.Equal(t, m.enclosed, area.EnclosedScanline(g, path, start), "scanline")
			assert.Zero(t, area.Shoelace(path)%2, "shoelace sum must be even")
		})
	}
}

// TestShoelace_Orientation verifies the doubled area ignores winding direction.
func TestShoelace_Orientation(t *testing.T) {
	cw := pipegrid.Path{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
		{X: 1, Y: 2}, {X: 0, Y: 2}, {X: 0, Y: 1}, {X: 0, Y: 0}}
	ccw := make(pipegrid.Path, len(cw))
	for i := range cw {
		ccw[i] = cw[len(cw)-1-i]
	}
	assert.Equal(t, int64(8), area.Shoelace(cw))
	assert.Equal(t, int64(8), area.Shoelace(ccw))
	assert.Equal(t, 1, area.Enclosed(cw))
	assert.Equal(t, 1, area.Enclosed(ccw))
}

// TestEnclosed_Degenerate covers paths that enclose nothing.
func TestEnclosed_Degenerate(t *testing.T) {
	cases := map[string]pipegrid.Path{
		"Nil":       nil,
		"Single":    {{X: 3, Y: 3}},
		"UnitBox":   {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}},
		"BackForth": {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}},
	}
	for name, p := range cases {
		assert.Zero(t, area.Enclosed(p), name)
	}
}

// TestParseMethod covers known names, case folding and rejection.
func TestParseMethod(t *testing.T) {
	for in, want := range map[string]area.Method{
		"pick": area.MethodPick, "PICK": area.MethodPick, "": area.MethodPick,
		"scanline": area.MethodScanline, " Scanline ": area.MethodScanline,
	} {
		got, err := area.ParseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
		if in == "pick" || in == "scanline" {
			assert.Equal(t, in, got.String())
		}
	}
	_, err := area.ParseMethod("flood")
	assert.ErrorIs(t, err, area.ErrUnknownMethod)
}
