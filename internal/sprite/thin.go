package sprite

import (
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// drawRod renders a centered 2-wide pillar, used for fence posts and
// similar rod-shaped blocks (spec.md §4.3, "rod").
func drawRod(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Set(x+1, y, block.Primary)
	s.Set(x+2, y, block.Primary)
	for j := 1; j < 4; j++ {
		s.Set(x+1, y+j, block.Dark)
		s.Set(x+2, y+j, block.Light)
	}
}

// drawBeam renders a vertical shaft with no top cap, used for beacon and
// marker beams so consecutive sections read as one continuous column
// (spec.md §4.3, "beam").
func drawBeam(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	for j := 1; j < 4; j++ {
		s.Blend(x+1, y+j, block.Dark)
		s.Blend(x+2, y+j, block.Light)
	}
}

// drawThin overwrites the block below's top layer with a single flat
// plane, used for signs, doors and similar sub-voxel blocks (spec.md
// §4.3, "thin").
func drawThin(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	for i := 0; i < 4; i++ {
		s.Set(x+i, y+3, block.Primary)
	}
	s.Set(x+1, y+4, block.Dark)
	s.Set(x+2, y+4, block.Light)
}

// drawHead renders a small centered block, used for skulls and similar
// decorative heads (spec.md §4.3, "head").
func drawHead(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Set(x+1, y+2, block.Primary)
	s.Set(x+2, y+2, block.Primary)
	s.Set(x+1, y+3, block.Dark)
	s.Set(x+2, y+3, block.Light)
}

// drawWire renders a minimal two-pixel dot, used for redstone wire
// (spec.md §4.3, "wire").
func drawWire(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Set(x+1, y+3, block.Primary)
	s.Set(x+2, y+3, block.Primary)
}
