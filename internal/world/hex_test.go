package world

import "testing"

func TestOffsetRoundTrip(t *testing.T) {
	for row := 0; row < 12; row++ {
		for col := 0; col < 12; col++ {
			h := FromOffset(col, row)
			if h.X+h.Y()+h.Z != 0 {
				t.Fatalf("FromOffset(%d, %d) = %v breaks x+y+z=0", col, row, h)
			}
			c, r := h.Offset()
			if c != col || r != row {
				t.Errorf("FromOffset(%d, %d).Offset() = (%d, %d)", col, row, c, r)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     HexCoord
		expected int
	}{
		{"identity", HexCoord{3, -1}, HexCoord{3, -1}, 0},
		{"neighbor east", HexCoord{0, 0}, HexCoord{1, 0}, 1},
		{"neighbor northwest", HexCoord{0, 0}, HexCoord{-1, 1}, 1},
		{"straight line", HexCoord{0, 0}, HexCoord{4, 0}, 4},
		{"offset corner of 5x5", FromOffset(0, 0), FromOffset(4, 4), 6},
		{"offset far row", FromOffset(0, 0), FromOffset(0, 4), 4},
		{"mixed signs", HexCoord{-2, 3}, HexCoord{2, -1}, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); got != tc.expected {
				t.Errorf("Distance() = %d, expected %d", got, tc.expected)
			}
			if got := tc.b.DistanceTo(tc.a); got != tc.expected {
				t.Errorf("DistanceTo() (reversed) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	coords := Disk(HexCoord{}, 3)
	for _, a := range coords {
		for _, b := range coords {
			for _, c := range coords {
				if Distance(a, c) > Distance(a, b)+Distance(b, c) {
					t.Fatalf("triangle inequality violated for %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestStep(t *testing.T) {
	origin := HexCoord{2, 5}
	for _, d := range Directions {
		n := origin.Step(d)
		if Distance(origin, n) != 1 {
			t.Errorf("Step(%v) = %v, not adjacent", d, n)
		}
		if back := n.Step(d.Opposite()); back != origin {
			t.Errorf("Step(%v).Step(%v) = %v, expected %v", d, d.Opposite(), back, origin)
		}
	}

	neighbors := origin.Neighbors()
	for d, n := range neighbors {
		if n != origin.Step(Direction(d)) {
			t.Errorf("Neighbors()[%d] = %v, expected %v", d, n, origin.Step(Direction(d)))
		}
	}
}

func TestDirectionRotation(t *testing.T) {
	tests := []struct {
		d                                  Direction
		opposite, next, prev, next2, prev2 Direction
	}{
		{NE, SW, E, NW, SE, W},
		{E, W, SE, NE, SW, NW},
		{SE, NW, SW, E, W, NE},
		{SW, NE, W, SE, NW, E},
		{W, E, NW, SW, NE, SE},
		{NW, SE, NE, W, E, SW},
	}

	for _, tc := range tests {
		t.Run(tc.d.String(), func(t *testing.T) {
			if got := tc.d.Opposite(); got != tc.opposite {
				t.Errorf("Opposite() = %v, expected %v", got, tc.opposite)
			}
			if got := tc.d.Next(); got != tc.next {
				t.Errorf("Next() = %v, expected %v", got, tc.next)
			}
			if got := tc.d.Previous(); got != tc.prev {
				t.Errorf("Previous() = %v, expected %v", got, tc.prev)
			}
			if got := tc.d.Next2(); got != tc.next2 {
				t.Errorf("Next2() = %v, expected %v", got, tc.next2)
			}
			if got := tc.d.Previous2(); got != tc.prev2 {
				t.Errorf("Previous2() = %v, expected %v", got, tc.prev2)
			}
		})
	}
}

func TestRing(t *testing.T) {
	center := HexCoord{1, -2}
	if got := Ring(center, 0); len(got) != 1 || got[0] != center {
		t.Fatalf("Ring(k=0) = %v, expected [%v]", got, center)
	}

	for k := 1; k <= 4; k++ {
		ring := Ring(center, k)
		if len(ring) != 6*k {
			t.Fatalf("Ring(k=%d) has %d cells, expected %d", k, len(ring), 6*k)
		}
		seen := make(map[HexCoord]bool)
		for _, h := range ring {
			if d := Distance(center, h); d != k {
				t.Errorf("Ring(k=%d) contains %v at distance %d", k, h, d)
			}
			if seen[h] {
				t.Errorf("Ring(k=%d) repeats %v", k, h)
			}
			seen[h] = true
		}
	}
}

func TestDisk(t *testing.T) {
	center := HexCoord{-3, 4}
	for r := 0; r <= 4; r++ {
		disk := Disk(center, r)
		if want := 1 + 3*r*(r+1); len(disk) != want {
			t.Fatalf("Disk(r=%d) has %d cells, expected %d", r, len(disk), want)
		}
		for _, h := range disk {
			if Distance(center, h) > r {
				t.Errorf("Disk(r=%d) contains %v outside radius", r, h)
			}
		}
	}
	if Disk(center, -1) != nil {
		t.Error("Disk(r=-1) should be empty")
	}
}

func TestPositionRoundTrip(t *testing.T) {
	for row := 0; row < 10; row++ {
		for col := 0; col < 10; col++ {
			h := FromOffset(col, row)
			x, z := h.Position()
			if got := FromPosition(x, z); got != h {
				t.Errorf("FromPosition(%v.Position()) = %v", h, got)
			}
			// A point well inside the hex maps to the same cell.
			if got := FromPosition(x+InnerRadius*0.5, z+OuterRadius*0.3); got != h {
				t.Errorf("FromPosition(near %v) = %v", h, got)
			}
		}
	}
}

func TestHexString(t *testing.T) {
	if got := (HexCoord{X: 2, Z: 4}).String(); got != "(2, -6, 4)" {
		t.Errorf("String() = %q, expected %q", got, "(2, -6, 4)")
	}
}

func TestEdgeTypeOf(t *testing.T) {
	tests := []struct {
		name     string
		e1, e2   int
		expected EdgeType
	}{
		{"flat", 2, 2, EdgeFlat},
		{"slope up", 2, 3, EdgeSlope},
		{"slope down", 3, 2, EdgeSlope},
		{"cliff up", 0, 2, EdgeCliff},
		{"cliff down", 5, -1, EdgeCliff},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EdgeTypeOf(tc.e1, tc.e2); got != tc.expected {
				t.Errorf("EdgeTypeOf(%d, %d) = %v, expected %v", tc.e1, tc.e2, got, tc.expected)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	var f Flags
	f = f.WithRoad(SE).WithRiverIn(W).WithRiverOut(NE).With(FlagWalled)

	if !f.HasRoad(SE) || f.HasRoad(E) {
		t.Errorf("road bits wrong: %b", f)
	}
	if got := f.RiverInDirection(); got != W {
		t.Errorf("RiverInDirection() = %v, expected W", got)
	}
	if got := f.RiverOutDirection(); got != NE {
		t.Errorf("RiverOutDirection() = %v, expected NE", got)
	}
	if !f.HasAll(FlagWalled|FlagRiverInNE<<W) || f.HasAny(FlagExplored) {
		t.Errorf("HasAll/HasAny wrong: %b", f)
	}
	if f = f.WithoutRoad(SE); f.HasAny(FlagRoads) {
		t.Errorf("WithoutRoad left road bits: %b", f)
	}
	if f = f.Without(FlagRiver); !f.HasNone(FlagRiver) {
		t.Errorf("Without(FlagRiver) left river bits: %b", f)
	}
}
