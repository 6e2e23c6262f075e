package sprite

import (
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// drawTransparent renders a block that should read as "see-through":
// light/dark tints on the three lower rows only (the top row and
// dark/light edge seams are skipped for a clearer look through), plus a
// primary overlay on the top row when the block above differs from this
// one (spec.md §4.3, "transparent (four semi-opaque side pixels plus
// conditional top if next-above differs from self)").
func drawTransparent(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, next *palette.Block, _ Env) {
	for j := 1; j < 4; j++ {
		for i := 0; i < 4; i++ {
			if i < 2 {
				s.Blend(x+i, y+j, block.Light)
			} else {
				s.Blend(x+i, y+j, block.Dark)
			}
		}
	}

	if next != nil && next.Primary != block.Primary {
		for i := 0; i < 4; i++ {
			s.Blend(x+i, y, block.Primary)
		}
	}
}
