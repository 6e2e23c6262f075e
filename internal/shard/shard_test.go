package shard

import (
	"bytes"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/canvas"
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
	"github.com/oriumgames/isomap/internal/worldio"
)

func TestBlendChannelEdgeCases(t *testing.T) {
	// Testable Property 5: blend(dst, (c,0)) == dst; blend(dst, (c,255)) == (c,255).
	dst := []byte{10, 20, 30, 40}
	overLay(dst, []byte{99, 99, 99, 0})
	if dst[0] != 10 || dst[3] != 40 {
		t.Fatal("a fully transparent source must leave dst unchanged")
	}
	overLay(dst, []byte{9, 9, 9, 255})
	if dst[0] != 9 || dst[3] != 255 {
		t.Fatal("a fully opaque source must overwrite dst")
	}
}

func uniformStoneWorld(box geometry.Coordinates) *worldio.World {
	world := worldio.NewWorld(box)
	minCX, minCZ, maxCX, maxCZ := box.ChunkBox()
	section := worldio.NewSection([]worldio.PaletteEntry{{Name: "minecraft:stone", Node: nbtadapter.Wrap(nil)}}, nil, false)
	for cx := minCX; cx <= maxCX; cx++ {
		for cz := minCZ; cz <= maxCZ; cz++ {
			sections := []worldio.Section{section}
			pos := worldio.ChunkPos{X: cx, Z: cz}
			world.PutChunk(pos, worldio.Chunk{Pos: pos, DataVersion: 2566, Sections: sections}, 0x10)
		}
	}
	return world
}

// TestMergeEqualsWholeRender covers Testable Property 6 and Scenario S4: a
// box rendered as one canvas must equal the same box rendered as shards and
// merged back together, pixel for pixel.
func TestMergeEqualsWholeRender(t *testing.T) {
	pal := palette.Palette{
		"minecraft:stone": palette.NewBlock(palette.Full, palette.NewColor([]int{120, 120, 120, 255})),
	}
	box := geometry.Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 31, Y: cube.Range{0, 0}, Orientation: geometry.NW}
	world := uniformStoneWorld(box)

	whole := canvas.New(box, pal, nil, false, applog.Noop)
	whole.DrawTerrain(world)

	shards := box.Shard(4)
	main := canvas.New(box, pal, nil, false, applog.Noop)
	var subs []*canvas.Canvas
	for _, s := range shards {
		c := canvas.New(s, pal, nil, false, applog.Noop)
		c.DrawTerrain(world)
		subs = append(subs, c)
	}
	if err := MergeAll(main, subs); err != nil {
		t.Fatalf("MergeAll: %v", err)
	}

	if main.Width != whole.Width || main.Height != whole.Height {
		t.Fatalf("dimension mismatch: main=%dx%d whole=%dx%d", main.Width, main.Height, whole.Width, whole.Height)
	}
	if !bytes.Equal(main.Bytes(), whole.Bytes()) {
		t.Fatal("merging shards did not reproduce the whole-box render byte-for-byte")
	}
}

func TestMergeRejectsOversizedSubCanvas(t *testing.T) {
	box := geometry.Coordinates{MinX: 0, MaxX: 15, MinZ: 0, MaxZ: 15, Y: cube.Range{0, 0}, Orientation: geometry.NW}
	bigBox := geometry.Coordinates{MinX: 0, MaxX: 31, MinZ: 0, MaxZ: 31, Y: cube.Range{0, 0}, Orientation: geometry.NW}
	main := canvas.New(box, palette.Palette{}, nil, false, applog.Noop)
	big := canvas.New(bigBox, palette.Palette{}, nil, false, applog.Noop)
	if err := Merge(main, big); err == nil {
		t.Fatal("expected an error merging a larger canvas into a smaller one")
	}
}
