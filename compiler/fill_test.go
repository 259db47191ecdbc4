package compiler

import (
	"math"
	"testing"

	"github.com/akavel/polyclip-go"
)

// arcs around the known center (0,0) with radius 10, one per chord
// quadrant and direction; the resolver must recover the true center
// from the unsigned offsets
var quadrantTests = []struct {
	name      string
	start     polyclip.Point
	end       polyclip.Point
	clockwise bool
}{
	{"dx>=0 dy>=0 ccw-flag", polyclip.Point{X: 0, Y: -10}, polyclip.Point{X: 10, Y: 0}, true},
	{"dx>=0 dy>=0 cw-flag", polyclip.Point{X: -10, Y: 0}, polyclip.Point{X: 0, Y: 10}, false},
	{"dx>=0 dy<0 cw-flag", polyclip.Point{X: 0, Y: 10}, polyclip.Point{X: 10, Y: 0}, false},
	{"dx<0 dy>=0 ccw-flag", polyclip.Point{X: 10, Y: 0}, polyclip.Point{X: 0, Y: 10}, true},
	{"dx<0 dy<0 ccw-flag", polyclip.Point{X: 0, Y: 10}, polyclip.Point{X: -10, Y: 0}, true},
	{"dx<0 dy<0 cw-flag", polyclip.Point{X: 10, Y: 0}, polyclip.Point{X: 0, Y: -10}, false},
	{"dx>=0 dy<0 ccw-flag", polyclip.Point{X: -10, Y: 0}, polyclip.Point{X: 0, Y: -10}, true},
	{"dx<0 dy>=0 cw-flag", polyclip.Point{X: 0, Y: -10}, polyclip.Point{X: -10, Y: 0}, false},
}

func TestResolveArcCenterSingleQuadrant(t *testing.T) {
	const eps = 1e-9
	for _, tc := range quadrantTests {
		rel := polyclip.Point{X: math.Abs(tc.start.X), Y: math.Abs(tc.start.Y)}
		center, canonStart, canonEnd := ResolveArcCenter(tc.start, tc.end, rel, tc.clockwise, false)
		if math.Abs(center.X) > eps || math.Abs(center.Y) > eps {
			t.Error(tc.name, ": resolved center", center, ", want (0,0)")
		}
		rStart := math.Hypot(tc.start.X-center.X, tc.start.Y-center.Y)
		rEnd := math.Hypot(tc.end.X-center.X, tc.end.Y-center.Y)
		if math.Abs(rStart-rEnd) > eps {
			t.Error(tc.name, ": radius mismatch", rStart, rEnd)
		}
		if tc.clockwise {
			if canonStart != tc.start || canonEnd != tc.end {
				t.Error(tc.name, ": canonical pair must keep (start, end)")
			}
		} else {
			if canonStart != tc.end || canonEnd != tc.start {
				t.Error(tc.name, ": canonical pair must swap to (end, start)")
			}
		}
	}
}

func TestResolveArcCenterDeterminism(t *testing.T) {
	for _, tc := range quadrantTests {
		rel := polyclip.Point{X: math.Abs(tc.start.X), Y: math.Abs(tc.start.Y)}
		c1, s1, e1 := ResolveArcCenter(tc.start, tc.end, rel, tc.clockwise, false)
		c2, s2, e2 := ResolveArcCenter(tc.start, tc.end, rel, tc.clockwise, false)
		if c1 != c2 || s1 != s2 || e1 != e2 {
			t.Fatal(tc.name, ": resolver is not deterministic")
		}
	}
}

func TestResolveArcCenterMultiQuadrant(t *testing.T) {
	// signed offsets are authoritative, no quadrant games
	start := polyclip.Point{X: 3, Y: 4}
	end := polyclip.Point{X: 3, Y: 4}
	rel := polyclip.Point{X: -3, Y: -4}
	center, _, _ := ResolveArcCenter(start, end, rel, true, true)
	if center.X != 0 || center.Y != 0 {
		t.Error("multi-quadrant center", center, ", want (0,0)")
	}
}

// mechanical derivation of the sign table for a shallow quadrant-one
// chord, offsets (0,10)
func TestResolveArcCenterSignTable(t *testing.T) {
	start := polyclip.Point{X: 0, Y: 0}
	end := polyclip.Point{X: 10, Y: 0}
	rel := polyclip.Point{X: 0, Y: 10}
	center, canonStart, canonEnd := ResolveArcCenter(start, end, rel, true, false)
	if center.X != 0 || center.Y != 10 {
		t.Error("resolved center", center, ", want (0,10)")
	}
	if canonStart != start || canonEnd != end {
		t.Error("clockwise arc must not swap the endpoints")
	}
}

func TestFillFlashedItemDefaults(t *testing.T) {
	item := NewDrawItem()
	fillFlashedItem(item, polyclip.Point{X: 1, Y: 2}, nil, 10)
	if item.Shape != ShapeSpotCircle {
		t.Error("missing tool must degrade to a circle, got", item.Shape.String())
	}
	if item.Width != item.Height || item.Width == 0 {
		t.Error("missing tool must flash the default pen size, got", item.Width, item.Height)
	}
	if item.Start != item.End {
		t.Error("flash start and end must coincide")
	}
}
