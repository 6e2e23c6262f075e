package sprite

import (
	"github.com/oriumgames/isomap/internal/nbtadapter"
	"github.com/oriumgames/isomap/internal/palette"
)

// drawOre renders a vein of the secondary color scattered through the
// primary/dark/light field (spec.md §4.3, "ore (secondary veins)").
func drawOre(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	sub := palette.AccentSub(block.Primary)
	secondaryLight := block.Secondary.ModChannel(sub - 15)
	secondaryDark := block.Secondary.ModChannel(sub - 25)

	sprite := [4][4]palette.Color{
		{block.Primary, block.Secondary, block.Primary, block.Primary},
		{block.Dark, block.Dark, secondaryLight, block.Light},
		{block.Dark, secondaryDark, block.Light, secondaryLight},
		{secondaryDark, block.Dark, block.Light, block.Light},
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			s.Set(x+i, y+j, sprite[j][i])
		}
	}
}

// drawGrown renders the secondary color across the top row, for
// crop-topped blocks like wheat (spec.md §4.3, "grown (secondary-colored
// top)").
func drawGrown(s Surface, x, y int, _ nbtadapter.Node, block palette.Block, _ *palette.Block, _ Env) {
	sub := palette.AccentSub(block.Primary)
	secondaryLight := block.Secondary.ModChannel(sub - 15)
	secondaryDark := block.Secondary.ModChannel(sub - 25)

	sprite := [4][4]palette.Color{
		{block.Secondary, block.Secondary, block.Secondary, block.Secondary},
		{block.Dark, secondaryDark, secondaryLight, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
		{block.Dark, block.Dark, block.Light, block.Light},
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			s.Set(x+i, y+j, sprite[j][i])
		}
	}
}
