package canvas

import (
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
	"github.com/oriumgames/isomap/internal/sprite"
	"github.com/oriumgames/isomap/internal/worldio"
)

// chunkMarker is a marker pre-scoped to one chunk, carrying the marker's
// in-chunk local block coordinate (spec.md §4.5, "Pre-scan the chunk for
// marker columns").
type chunkMarker struct {
	localX, localZ int
	color           palette.Block
}

// DrawTerrain walks every canvas-local chunk row-major and renders it,
// scoped per spec.md §4.5's "Chunk draw order" (the per-chunk beacon/marker
// scratch state lives in drawChunk, not on the Canvas, per spec.md §9:
// "Beacon/marker tracking ... scope them to the drawChunk operation").
func (c *Canvas) DrawTerrain(world *worldio.World) {
	nChunksX := (c.SizeX + 15) / 16
	nChunksZ := (c.SizeZ + 15) / 16
	minCX, minCZ, maxCX, maxCZ := c.Box.ChunkBox()

	for cx := 0; cx < nChunksX; cx++ {
		for cz := 0; cz < nChunksZ; cz++ {
			worldCX, worldCZ := c.Box.Orientation.WorldChunk(cx, cz, minCX, minCZ, maxCX, maxCZ)
			c.drawChunk(world, cx, cz, worldCX, worldCZ)
		}
	}
}

func (c *Canvas) drawChunk(world *worldio.World, cx, cz, worldCX, worldCZ int) {
	chunk, ok := world.ChunkAt(worldCX, worldCZ)
	if !ok || chunk.Empty() {
		return
	}
	height := world.HeightAt(worldCX, worldCZ)

	minSection := c.Box.Y[0] >> 4
	if lo := int(height & 0x0F); lo > minSection {
		minSection = lo
	}
	maxSection := c.Box.Y[1]>>4 + 1
	if hi := int(height >> 4); hi < maxSection {
		maxSection = hi
	}

	markers := c.markersInChunk(worldCX, worldCZ)

	beaconColumns := map[[2]int]bool{}
	for y := minSection; y < maxSection; y++ {
		section, ok := chunk.SectionAt(y)
		if !ok {
			continue
		}
		c.drawSection(section, cx, cz, y, worldCX, worldCZ, markers, beaconColumns)
	}

	if (len(beaconColumns) > 0 || len(markers) > 0) && maxSection < 13 {
		c.drawBeams(cx, cz, maxSection, worldCX, worldCZ, beaconColumns, markers)
	}
}

func (c *Canvas) markersInChunk(worldCX, worldCZ int) []chunkMarker {
	var out []chunkMarker
	for _, m := range c.markers {
		if (m.X >> 4) != worldCX || (m.Z >> 4) != worldCZ {
			continue
		}
		out = append(out, chunkMarker{localX: m.X & 0x0F, localZ: m.Z & 0x0F, color: m.Color})
	}
	return out
}

// drawSection renders one 16x16x16 section, orienting the painter's-order
// traversal per spec.md §4.2 while fetching and bounds-checking blocks by
// their true (unoriented) world position.
func (c *Canvas) drawSection(section worldio.Section, cx, cz, sectionY, worldCX, worldCZ int, markers []chunkMarker, beaconColumns map[[2]int]bool) {
	if section.Empty() {
		return
	}

	flipX, flipZ, swapXZ := c.Box.Orientation.Flips()
	for ox := 0; ox < 16; ox++ {
		for oz := 0; oz < 16; oz++ {
			// Undo OrientBlock (swap, then flip) to find the unoriented block.
			x, z := ox, oz
			if swapXZ {
				x, z = z, x
			}
			if flipX {
				x = 15 - x
			}
			if flipZ {
				z = 15 - z
			}
			worldX, worldZ := worldCX*16+x, worldCZ*16+z
			if worldX < c.Box.MinX || worldX > c.Box.MaxX || worldZ < c.Box.MinZ || worldZ > c.Box.MaxZ {
				continue
			}

			canvasX, canvasZ := cx*16+ox, cz*16+oz

			beaconBeam := beaconColumns[[2]int{x, z}]
			var marker *chunkMarker
			for i := range markers {
				if markers[i].localX == x && markers[i].localZ == z {
					marker = &markers[i]
					break
				}
			}

			for y := 0; y < 16; y++ {
				worldY := sectionY*16 + y
				if beaconBeam {
					c.drawBlock(c.palette.Get(palette.BeaconBeam), canvasX, worldY, canvasZ, worldX, worldZ, nbtadapter.Node{})
				}
				if marker != nil {
					c.drawBlock(marker.color, canvasX, worldY, canvasZ, worldX, worldZ, nbtadapter.Node{})
				}

				if worldY < c.Box.Y[0] || worldY > c.Box.Y[1] {
					continue
				}

				entry := section.BlockAt(x, y, z)
				block := c.worldToPalette(entry)

				var next *palette.Block
				if y != 15 {
					nextEntry := section.BlockAt(x, y+1, z)
					nb := c.worldToPalette(nextEntry)
					next = &nb
				}

				c.drawBlockWithMetadata(block, canvasX, worldY, canvasZ, worldX, worldZ, entry.Node, next)

				if entry.Name == "minecraft:beacon" {
					beaconColumns[[2]int{x, z}] = true
					beaconBeam = true
				}
			}
		}
	}
}

func (c *Canvas) drawBeams(cx, cz, fromSection, worldCX, worldCZ int, beaconColumns map[[2]int]bool, markers []chunkMarker) {
	beaconBeam := c.palette.Get(palette.BeaconBeam)
	for sectionY := fromSection; sectionY < 13; sectionY++ {
		for col := range beaconColumns {
			x, z := col[0], col[1]
			ox, oz := c.Box.Orientation.OrientBlock(x, z)
			canvasX, canvasZ := cx*16+ox, cz*16+oz
			worldX, worldZ := worldCX*16+x, worldCZ*16+z
			for y := 0; y < 16; y++ {
				worldY := sectionY*16 + y
				if worldY < c.Box.Y[0] || worldY > c.Box.Y[1] {
					continue
				}
				c.drawBlock(beaconBeam, canvasX, worldY, canvasZ, worldX, worldZ, nbtadapter.Node{})
			}
		}
		for _, m := range markers {
			ox, oz := c.Box.Orientation.OrientBlock(m.localX, m.localZ)
			canvasX, canvasZ := cx*16+ox, cz*16+oz
			worldX, worldZ := worldCX*16+m.localX, worldCZ*16+m.localZ
			for y := 0; y < 16; y++ {
				worldY := sectionY*16 + y
				if worldY < c.Box.Y[0] || worldY > c.Box.Y[1] {
					continue
				}
				c.drawBlock(m.color, canvasX, worldY, canvasZ, worldX, worldZ, nbtadapter.Node{})
			}
		}
	}
}

func (c *Canvas) drawBlock(block palette.Block, x, y, z, worldX, worldZ int, metadata nbtadapter.Node) {
	c.drawBlockWithMetadata(block, x, y, z, worldX, worldZ, metadata, nil)
}

// drawBlockWithMetadata dithers (if the recipe carries noise), applies
// shading (if enabled) and projects (x,y,z) to its pixel anchor before
// handing off to the sprite renderer table, per spec.md §4.3's "Shading"
// and §4.5's "Projection". worldX/worldZ are the block's true world
// coordinate, used only to seed the noise dither so the same world block
// always dithers the same way regardless of which shard renders it
// (SPEC_FULL.md §C6).
func (c *Canvas) drawBlockWithMetadata(block palette.Block, x, y, z, worldX, worldZ int, metadata nbtadapter.Node, next *palette.Block) {
	if block.Primary.Empty() {
		return
	}

	if block.Primary.Noise > 0 {
		block.Primary = block.Primary.Dithered(worldX, y, worldZ)
	}

	if c.Shading {
		fsub := c.brightness[y&0xFF]
		sub := int(fsub * (float64(block.Primary.Luminance)/323.0 + 0.21))
		block = block.Shaded(sub)
	}

	u, v := c.project(x, y, z)
	env := sprite.Env{Orientation: c.Box.Orientation, Water: c.palette.Get("minecraft:water")}
	sprite.Render(c, u, v, metadata, block, next, env)
}
