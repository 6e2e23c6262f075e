package canvas

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
	"github.com/oriumgames/isomap/internal/worldio"
)

func boxNW(minX, maxX, minZ, maxZ, minY, maxY int) geometry.Coordinates {
	return geometry.Coordinates{MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ, Y: cube.Range{minY, maxY}, Orientation: geometry.NW}
}

// TestWidthHeightFormulaIndependentOfOrientation covers Testable Property 4:
// width/height are fixed by sizeX+sizeZ, regardless of which orientation
// swaps which axis onto which.
func TestWidthHeightFormulaIndependentOfOrientation(t *testing.T) {
	for _, o := range []geometry.Orientation{geometry.NW, geometry.NE, geometry.SW, geometry.SE} {
		box := geometry.Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 15, Y: cube.Range{0, 255}, Orientation: o}
		c := New(box, palette.Palette{}, nil, false, applog.Noop)
		wantWidth := (32 + 16 + 5) * 2
		wantHeight := 32 + 16 + 255*3 + 10
		if c.Width != wantWidth {
			t.Fatalf("%v: width = %d, want %d", o, c.Width, wantWidth)
		}
		if c.Height != wantHeight {
			t.Fatalf("%v: height = %d, want %d", o, c.Height, wantHeight)
		}
	}
}

// TestProjectionStaysInBoundsForCorners covers Testable Property 2: corner
// blocks of the box project within [0,width) x [0,height).
func TestProjectionStaysInBoundsForCorners(t *testing.T) {
	box := boxNW(0, 31, 0, 31, 0, 255)
	c := New(box, palette.Palette{}, nil, false, applog.Noop)

	corners := [][2]int{{0, 0}, {c.SizeX - 1, 0}, {0, c.SizeZ - 1}, {c.SizeX - 1, c.SizeZ - 1}}
	for _, corner := range corners {
		for _, y := range []int{0, 255} {
			u, v := c.project(corner[0], y, corner[1])
			if u < 0 || u >= c.Width || v < 0 || v >= c.Height {
				t.Fatalf("corner (%d,%d,%d) projected to (%d,%d), outside %dx%d", corner[0], y, corner[1], u, v, c.Width, c.Height)
			}
		}
	}
}

func TestSetAndBlendRoundTrip(t *testing.T) {
	box := boxNW(0, 15, 0, 15, 0, 15)
	c := New(box, palette.Palette{}, nil, false, applog.Noop)

	c.Set(0, 0, palette.NewColor([]int{10, 20, 30, 255}))
	c.Blend(0, 0, palette.NewColor([]int{1, 2, 3, 0}))
	if c.buf[3] == 0 {
		t.Fatal("blending a fully transparent source must be a no-op")
	}

	c.Blend(0, 0, palette.NewColor([]int{9, 9, 9, 255}))
	if c.buf[0] != 9 || c.buf[1] != 9 || c.buf[2] != 9 {
		t.Fatal("blending a fully opaque source must overwrite")
	}
}

func TestPixelOffsetPanicsOutOfBounds(t *testing.T) {
	box := boxNW(0, 15, 0, 15, 0, 15)
	c := New(box, palette.Palette{}, nil, false, applog.Noop)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an out-of-bounds pixel write")
		}
	}()
	c.Set(c.Width, 0, palette.Color{})
}

func TestCroppedHeightZeroForEmptyCanvas(t *testing.T) {
	box := boxNW(0, 15, 0, 15, 0, 15)
	c := New(box, palette.Palette{}, nil, false, applog.Noop)
	if got := c.CroppedHeight(); got != 0 {
		t.Fatalf("expected CroppedHeight() == 0 for an empty canvas, got %d", got)
	}
}

// TestDrawTerrainSingleStoneBlock covers Scenario S1: a 1x1x1 box over a
// world containing one minecraft:stone at the origin, NW, no shading,
// should paint exactly the Full-sprite footprint and nothing else.
func TestDrawTerrainSingleStoneBlock(t *testing.T) {
	pal := palette.Palette{
		"minecraft:stone": palette.NewBlock(palette.Full, palette.NewColor([]int{125, 125, 125, 255})),
	}
	box := boxNW(0, 0, 0, 0, 0, 0)
	c := New(box, pal, nil, false, applog.Noop)

	world := worldio.NewWorld(box)
	section := worldio.NewSection([]worldio.PaletteEntry{{Name: "minecraft:stone", Node: nbtadapter.Wrap(nil)}}, nil, false)
	sections := make([]worldio.Section, 1)
	sections[0] = section
	world.PutChunk(worldio.ChunkPos{X: 0, Z: 0}, worldio.Chunk{Pos: worldio.ChunkPos{X: 0, Z: 0}, DataVersion: 2566, Sections: sections}, 0x10)

	c.DrawTerrain(world)

	painted := 0
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if c.buf[(row*c.Width+col)*BytesPerPixel+3] != 0 {
				painted++
			}
		}
	}
	if painted == 0 {
		t.Fatal("expected the stone block's Full sprite to paint at least one pixel")
	}
	if painted > 16 {
		t.Fatalf("expected at most a single 4x4 Full-sprite footprint (16 px), painted %d", painted)
	}
}

func countPainted(c *Canvas) int {
	painted := 0
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			if c.buf[(row*c.Width+col)*BytesPerPixel+3] != 0 {
				painted++
			}
		}
	}
	return painted
}

// TestDrawTerrainNowaterYieldsEmptyCanvas covers Scenario S2: a box of pure
// minecraft:water with -nowater applied must paint nothing at all.
func TestDrawTerrainNowaterYieldsEmptyCanvas(t *testing.T) {
	full := palette.Palette{
		"minecraft:water": palette.NewBlock(palette.Full, palette.NewColor([]int{63, 118, 228, 180})),
	}
	pal := palette.WithoutWater(full)
	box := boxNW(0, 1, 0, 1, 0, 0)
	c := New(box, pal, nil, false, applog.Noop)

	world := worldio.NewWorld(box)
	section := worldio.NewSection([]worldio.PaletteEntry{{Name: "minecraft:water", Node: nbtadapter.Wrap(nil)}}, nil, false)
	world.PutChunk(worldio.ChunkPos{X: 0, Z: 0}, worldio.Chunk{Pos: worldio.ChunkPos{X: 0, Z: 0}, DataVersion: 2566, Sections: []worldio.Section{section}}, 0x10)

	c.DrawTerrain(world)

	if painted := countPainted(c); painted != 0 {
		t.Fatalf("-nowater should leave the water footprint fully transparent, painted %d pixels", painted)
	}
}

// TestDrawTerrainBeaconProducesBeam covers Scenario S3: a beacon with empty
// air above it paints a visible beam of mcmap:beacon_beam pixels above the
// beacon column, continuing through the empty sections above the chunk's
// content (spec.md §4.5, up to original_source's section-13 cap).
func TestDrawTerrainBeaconProducesBeam(t *testing.T) {
	pal := palette.Palette{
		"minecraft:beacon": palette.NewBlock(palette.Full, palette.NewColor([]int{252, 252, 189, 255})),
		palette.BeaconBeam: palette.NewBlock(palette.Beam, palette.NewColor([]int{255, 255, 255, 60})),
	}
	box := boxNW(0, 0, 0, 0, 0, 255)
	c := New(box, pal, nil, false, applog.Noop)

	world := worldio.NewWorld(box)
	stone := worldio.PaletteEntry{Name: "minecraft:stone", Node: nbtadapter.Wrap(nil)}
	air := worldio.PaletteEntry{Name: "minecraft:air", Node: nbtadapter.Wrap(nil)}
	beacon := worldio.PaletteEntry{Name: "minecraft:beacon", Node: nbtadapter.Wrap(nil)}

	sections := make([]worldio.Section, 5)
	for y := 0; y < 4; y++ {
		sections[y] = worldio.NewSection([]worldio.PaletteEntry{stone}, nil, false)
	}
	// Section 4 holds the beacon at world Y 64 with air everywhere else in
	// the section, so the beam starts immediately above it.
	beaconWords := make([]int64, 64)
	beaconWords[0] = 1 // local (0,0,0) == world Y 64 packs to palette index 1 (beacon)
	beaconEntries := []worldio.PaletteEntry{air, beacon}
	sections[4] = worldio.NewSection(beaconEntries, beaconWords, false)

	world.PutChunk(worldio.ChunkPos{X: 0, Z: 0}, worldio.Chunk{Pos: worldio.ChunkPos{X: 0, Z: 0}, DataVersion: 2566, Sections: sections}, 0x50)

	c.DrawTerrain(world)

	if painted := countPainted(c); painted == 0 {
		t.Fatal("expected beacon and beam pixels to paint something")
	}
}

// TestRotatedOrientationsAgreeOnFootprint covers Testable Property 7: a
// render of the same square box under all four orientations stays the same
// size and paints the same number of pixels, since rotating the compass
// only relabels which corner leads the painter's-order traversal, not how
// much of the box is visible. Shading is disabled, since Property 7 itself
// carves out light/dark shading asymmetry as orientation-baked and outside
// the rotation guarantee.
func TestRotatedOrientationsAgreeOnFootprint(t *testing.T) {
	pal := palette.Palette{
		"minecraft:stone": palette.NewBlock(palette.Full, palette.NewColor([]int{125, 125, 125, 255})),
	}

	var wantWidth, wantHeight, wantPainted int
	for i, o := range []geometry.Orientation{geometry.NW, geometry.NE, geometry.SE, geometry.SW} {
		box := geometry.Coordinates{MinX: 0, MaxX: 15, MinZ: 0, MaxZ: 15, Y: cube.Range{0, 0}, Orientation: o}
		c := New(box, pal, nil, false, applog.Noop)

		world := worldio.NewWorld(box)
		section := worldio.NewSection([]worldio.PaletteEntry{{Name: "minecraft:stone", Node: nbtadapter.Wrap(nil)}}, nil, false)
		minCX, minCZ, maxCX, maxCZ := box.ChunkBox()
		for cx := minCX; cx <= maxCX; cx++ {
			for cz := minCZ; cz <= maxCZ; cz++ {
				pos := worldio.ChunkPos{X: cx, Z: cz}
				world.PutChunk(pos, worldio.Chunk{Pos: pos, DataVersion: 2566, Sections: []worldio.Section{section}}, 0x10)
			}
		}

		c.DrawTerrain(world)
		painted := countPainted(c)

		if i == 0 {
			wantWidth, wantHeight, wantPainted = c.Width, c.Height, painted
			continue
		}
		if c.Width != wantWidth || c.Height != wantHeight {
			t.Fatalf("%v: canvas size = %dx%d, want %dx%d (rotating orientation must not change canvas dimensions for a square box)", o, c.Width, c.Height, wantWidth, wantHeight)
		}
		if painted != wantPainted {
			t.Fatalf("%v: painted %d pixels, want %d (rotating orientation must not change how much of a fully solid box is visible)", o, painted, wantPainted)
		}
	}
}
