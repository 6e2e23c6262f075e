package geometry

import "testing"

func TestCoordinatesValid(t *testing.T) {
	c := Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 31, Y: [2]int{0, 255}}
	if !c.Valid() {
		t.Fatal("expected valid box")
	}
	bad := Coordinates{MinX: 10, MaxX: 0, MinZ: 0, MaxZ: 0, Y: [2]int{0, 255}}
	if bad.Valid() {
		t.Fatal("expected invalid box (minX > maxX)")
	}
}

func TestUndefinedUnion(t *testing.T) {
	c := Undefined(NW)
	c.ExpandToChunk(2, 3)
	c.ExpandToChunk(-1, 0)
	if c.MinX != -16 || c.MaxX != 47 {
		t.Fatalf("unexpected X bounds: %d..%d", c.MinX, c.MaxX)
	}
	if c.MinZ != 0 || c.MaxZ != 63 {
		t.Fatalf("unexpected Z bounds: %d..%d", c.MinZ, c.MaxZ)
	}
}

func TestSizeSwapIsOrientationIndependent(t *testing.T) {
	// Property 4: width/height formulas only ever consume SizeX/SizeZ, and
	// orientation only swaps which axis each maps to, never their values.
	c := Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 15, Y: [2]int{0, 255}}
	sizeX, sizeZ := c.SizeX(), c.SizeZ()
	for _, o := range []Orientation{NW, NE, SW, SE} {
		c.Orientation = o
		if c.SizeX() != sizeX || c.SizeZ() != sizeZ {
			t.Fatalf("orientation %v changed box sizes", o)
		}
	}
}

func TestShardCoversWholeBoxExactly(t *testing.T) {
	c := Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 31, Y: [2]int{0, 255}}
	shards := c.Shard(4)
	covered := map[[2]int]bool{}
	for _, s := range shards {
		minCX, minCZ, maxCX, maxCZ := s.ChunkBox()
		for cx := minCX; cx <= maxCX; cx++ {
			for cz := minCZ; cz <= maxCZ; cz++ {
				key := [2]int{cx, cz}
				if covered[key] {
					t.Fatalf("chunk %v covered by more than one shard", key)
				}
				covered[key] = true
			}
		}
	}
	minCX, minCZ, maxCX, maxCZ := c.ChunkBox()
	for cx := minCX; cx <= maxCX; cx++ {
		for cz := minCZ; cz <= maxCZ; cz++ {
			if !covered[[2]int{cx, cz}] {
				t.Fatalf("chunk (%d,%d) not covered by any shard", cx, cz)
			}
		}
	}
}

func TestWorldChunkOrientationTable(t *testing.T) {
	minCX, minCZ, maxCX, maxCZ := 0, 0, 3, 3
	cases := []struct {
		o              Orientation
		cx, cz         int
		wantX, wantZ   int
	}{
		{NW, 1, 2, 1, 2},
		{NE, 1, 2, 3 - 2, 0 + 1},
		{SW, 1, 2, 0 + 2, 3 - 1},
		{SE, 1, 2, 3 - 1, 3 - 2},
	}
	for _, tc := range cases {
		gotX, gotZ := tc.o.WorldChunk(tc.cx, tc.cz, minCX, minCZ, maxCX, maxCZ)
		if gotX != tc.wantX || gotZ != tc.wantZ {
			t.Errorf("%v.WorldChunk(%d,%d) = (%d,%d), want (%d,%d)", tc.o, tc.cx, tc.cz, gotX, gotZ, tc.wantX, tc.wantZ)
		}
	}
}

func TestRotate90Cycle(t *testing.T) {
	o := NW
	seen := []Orientation{o}
	for i := 0; i < 3; i++ {
		o = o.Rotate90()
		seen = append(seen, o)
	}
	if seen[1] != NE || seen[2] != SE || seen[3] != SW {
		t.Fatalf("unexpected rotation cycle: %v", seen)
	}
	if o.Rotate90() != NW {
		t.Fatal("rotation did not cycle back to NW")
	}
}
