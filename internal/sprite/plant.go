package sprite

import (
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// drawPlant renders a loose scatter of primary-colored pixels, used for
// grass, flowers and similar cross-shaped blocks (spec.md §4.3, "plant").
func drawPlant(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Set(x+1, y+1, block.Primary)
	s.Set(x+3, y+1, block.Primary)
	s.Set(x+2, y+2, block.Primary)
	s.Set(x+1, y+3, block.Primary)
}

// drawUnderwaterPlant renders a plant overlaid with a transparent water
// tint (spec.md §4.3, "underwater-plant (= plant then transparent water
// overlay)").
func drawUnderwaterPlant(s Surface, x, y int, metadata nbtadapter.Node, block palette.Block, next *palette.Block, env Env) {
	drawPlant(s, x, y, metadata, block, next, env)
	drawTransparent(s, x, y, metadata, env.Water, next, env)
}

// drawFire renders the flickering fire outline, using light/dark to frame
// the primary flame core (spec.md §4.3, "fire").
func drawFire(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Blend(x, y, block.Light)
	s.Blend(x+2, y, block.Dark)

	for j := 1; j < 3; j++ {
		s.Blend(x, y+j, block.Dark)
		s.Blend(x+j, y+j, block.Primary)
		s.Blend(x+3, y+j, block.Light)
	}

	s.Blend(x+2, y+3, block.Light)
}

// drawTorch renders a small flame-tipped post, the secondary color forming
// the flame and primary the post (spec.md §4.3, "torch").
func drawTorch(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	s.Set(x+2, y+1, block.Secondary)
	s.Set(x+2, y+2, block.Primary)
	s.Set(x+2, y+3, block.Primary)
}
