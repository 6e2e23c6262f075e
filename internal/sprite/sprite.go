// Package sprite implements spec.md §4.3's closed set of block sprites: one
// stateless function per SpriteType, each writing into a 4x5-pixel
// footprint anchored at the (x,y) the canvas projects a block onto.
package sprite

import (
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// Surface is the pixel-writing capability a sprite needs from the canvas:
// a direct overwrite and an alpha-composited blend, both addressed in
// absolute canvas pixel coordinates.
type Surface interface {
	Set(x, y int, c palette.Color)
	Blend(x, y int, c palette.Color)
}

// Env carries render-wide context a sprite needs beyond its own recipe and
// metadata: the water color for underwater-plant's overlay, and the
// canvas's orientation, which a log sprite needs to pick its visible face
// (spec.md §4.3: "log (... orientation alters which face is visible)").
type Env struct {
	Water       palette.Block
	Orientation geometry.Orientation
}

type renderer func(s Surface, x, y int, metadata nbtadapter.Node, block palette.Block, next *palette.Block, env Env)

var table = map[palette.SpriteType]renderer{
	palette.Full:            drawFull,
	palette.Slab:            drawSlab,
	palette.Log:             drawLog,
	palette.Torch:           drawTorch,
	palette.Plant:           drawPlant,
	palette.UnderwaterPlant: drawUnderwaterPlant,
	palette.Fire:            drawFire,
	palette.Ore:             drawOre,
	palette.Grown:           drawGrown,
	palette.Rod:             drawRod,
	palette.Beam:            drawBeam,
	palette.Thin:            drawThin,
	palette.Head:            drawHead,
	palette.Wire:            drawWire,
	palette.Hidden:          drawHidden,
	palette.Transparent:     drawTransparent,
}

// Render dispatches to the sprite function selected by block.Type. A block
// whose primary color is empty is a no-op splat (spec.md §3's "acts as
// no-op during splat" rule), so every caller can skip the empty check
// itself.
func Render(s Surface, x, y int, metadata nbtadapter.Node, block palette.Block, next *palette.Block, env Env) {
	if block.Primary.Empty() {
		return
	}
	r, ok := table[block.Type]
	if !ok {
		return
	}
	r(s, x, y, metadata, block, next, env)
}

func drawHidden(Surface, int, int, nbtadapter.Node, palette.Block, *palette.Block, Env) {}
