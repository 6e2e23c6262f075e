package sprite

import (
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// drawFull renders the base 4x4 block footprint: top row primary, lower
// three rows split dark (left half) / light (right half). When the block
// directly above is fully opaque, the top row is elided (spec.md §4.3).
func drawFull(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, next *palette.Block, _ Env) {
	sprite := [4][4]palette.Color{
		{block.Primary, block.Primary, block.Primary, block.Primary},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
	}

	covered := 0
	if next != nil && next.Primary.A == 255 {
		covered = 1
	}

	opaque := block.Primary.A == 255
	for j := covered; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if opaque {
				s.Set(x+i, y+j, sprite[j][i])
			} else {
				s.Blend(x+i, y+j, sprite[j][i])
			}
		}
	}
}

// drawSlab renders a half-height block, shifted down one row for a bottom
// slab or flush with the top for a top slab; a double slab renders as a
// full block (spec.md §4.3, "slab (top/bottom/double via Properties.type)").
func drawSlab(s Surface, x, y int, metadata nbtadapter.Node, block palette.Block, next *palette.Block, env Env) {
	spriteBottom := [3][4]palette.Color{
		{block.Primary, block.Primary, block.Primary, block.Primary},
		{block.Dark, block.Primary, block.Primary, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
	}
	spriteTop := [3][4]palette.Color{
		{block.Primary, block.Primary, block.Primary, block.Primary},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
	}

	target := &spriteBottom
	top := false
	if t, ok := metadata.Index("Properties").String("type"); ok {
		if t == "double" {
			drawFull(s, x, y, metadata, block, next, env)
			return
		}
		if t == "top" {
			top = true
			target = &spriteTop
		}
	}

	yOffset := 1
	if top {
		yOffset = 0
	}
	for j := 0; j < 3; j++ {
		for i := 0; i < 4; i++ {
			s.Set(x+i, y+yOffset+j, target[j][i])
		}
	}
}

// drawLog renders an axial log block, choosing a face sprite from
// Properties.axis; for the x/z axes the visible face also depends on
// orientation (spec.md §4.3, "log (axis x/y/z via Properties.axis;
// orientation alters which face is visible)").
func drawLog(s Surface, x, y int, metadata nbtadapter.Node, block palette.Block, _ *palette.Block, env Env) {
	sub := palette.AccentSub(block.Primary)
	secondaryLight := block.Secondary.ModChannel(sub - 15)
	secondaryDark := block.Secondary.ModChannel(sub - 25)

	spriteY := [4][4]palette.Color{
		{block.Secondary, block.Secondary, block.Secondary, block.Secondary},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
	}
	spriteX := [4][4]palette.Color{
		{block.Primary, block.Primary, block.Primary, block.Primary},
		{secondaryDark, secondaryDark, block.Light, block.Light},
		{secondaryDark, secondaryDark, block.Light, block.Light},
		{secondaryDark, secondaryDark, block.Light, block.Light},
	}
	spriteZ := [4][4]palette.Color{
		{block.Primary, block.Primary, block.Primary, block.Primary},
		{block.Dark, block.Dark, secondaryLight, secondaryLight},
		{block.Dark, block.Dark, secondaryLight, secondaryLight},
		{block.Dark, block.Dark, secondaryLight, secondaryLight},
	}

	frontFacing := env.Orientation == geometry.NW || env.Orientation == geometry.SE

	target := &spriteY
	if axis, ok := metadata.Index("Properties").String("axis"); ok {
		switch {
		case axis == "x" && frontFacing:
			target = &spriteZ
		case axis == "x":
			target = &spriteX
		case axis == "z" && frontFacing:
			target = &spriteX
		case axis == "z":
			target = &spriteZ
		}
	}

	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			s.Set(x+i, y+j, target[j][i])
		}
	}
}
