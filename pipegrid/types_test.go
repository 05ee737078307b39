package pipegrid

import "testing"

// TestTileSides checks the declared sides of every tile kind.
func TestTileSides(t *testing.T) {
	cases := []struct {
		tile  Tile
		north bool
		south bool
		east  bool
		west  bool
	}{
		{Vertical, true, true, false, false},
		{Horizontal, false, false, true, true},
		{BendNE, true, false, true, false},
		{BendNW, true, false, false, true},
		{BendSW, false, true, false, true},
		{BendSE, false, true, true, false},
		{Ground, false, false, false, false},
		{Start, false, false, false, false},
	}
	for _, tc := range cases {
		got := [4]bool{tc.tile.Opens(North), tc.tile.Opens(South), tc.tile.Opens(East), tc.tile.Opens(West)}
		want := [4]bool{tc.north, tc.south, tc.east, tc.west}
		if got != want {
			t.Errorf("%v opens N,S,E,W = %v; want %v", tc.tile, got, want)
		}
		if _, _, ok := tc.tile.Sides(); ok != (tc.tile != Ground && tc.tile != Start) {
			t.Errorf("%v.Sides() ok = %v", tc.tile, ok)
		}
	}
}

// TestPipeJoining verifies every pair of distinct sides maps to exactly one pipe.
func TestPipeJoining(t *testing.T) {
	seen := make(map[Tile]bool)
	for _, a := range Directions {
		for _, b := range Directions {
			p, ok := PipeJoining(a, b)
			if a == b {
				if ok {
					t.Errorf("PipeJoining(%v, %v) = %v; want none", a, b, p)
				}
				continue
			}
			if !ok || !p.Opens(a) || !p.Opens(b) {
				t.Errorf("PipeJoining(%v, %v) = %v,%v", a, b, p, ok)
			}
			seen[p] = true
		}
	}
	if len(seen) != len(Pipes) {
		t.Errorf("PipeJoining covered %d pipes; want %d", len(seen), len(Pipes))
	}
}

// TestDirectionOpposite checks Opposite is an involution that negates Delta.
func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		o := d.Opposite()
		if o == d || o.Opposite() != d {
			t.Errorf("Opposite(%v) = %v", d, o)
		}
		dx, dy := d.Delta()
		ox, oy := o.Delta()
		if dx != -ox || dy != -oy {
			t.Errorf("Delta(%v)=(%d,%d), Delta(%v)=(%d,%d)", d, dx, dy, o, ox, oy)
		}
	}
}

// TestPathClosed covers closed, open and non-unit-step paths.
func TestPathClosed(t *testing.T) {
	square := Path{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}
	if !square.Closed() || square.Len() != 4 {
		t.Errorf("square: Closed=%v Len=%d; want true, 4", square.Closed(), square.Len())
	}
	open := Path{{1, 1}, {2, 1}, {2, 2}}
	if open.Closed() {
		t.Error("open path reported closed")
	}
	jump := Path{{0, 0}, {2, 0}, {0, 0}}
	if jump.Closed() {
		t.Error("path with a two-cell jump reported closed")
	}
	if (Path{}).Len() != 0 {
		t.Error("empty path Len != 0")
	}
}

// TestDirectionTo checks unit neighbors map to their side and others do not.
func TestDirectionTo(t *testing.T) {
	c := Location{X: 2, Y: 2}
	for _, d := range Directions {
		dx, dy := d.Delta()
		got, ok := c.DirectionTo(Location{X: 2 + dx, Y: 2 + dy})
		if !ok || got != d {
			t.Errorf("DirectionTo(step %v) = %v,%v; want %v,true", d, got, ok, d)
		}
	}
	for _, o := range []Location{c, {X: 3, Y: 3}, {X: 4, Y: 2}} {
		if _, ok := c.DirectionTo(o); ok {
			t.Errorf("DirectionTo(%v) reported a unit step", o)
		}
	}
}
