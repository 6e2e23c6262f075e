package palette

import "github.com/oriumgames/isomap/internal/applog"

// markerColors is the closed set of named marker colors, grounded directly
// on original_source/src/colors.h's markerColors table.
var markerColors = map[string]Color{
	"white": NewColor([]int{250, 250, 250, 70}),
	"red":   NewColor([]int{250, 0, 0, 70}),
	"green": NewColor([]int{0, 250, 0, 70}),
	"blue":  NewColor([]int{0, 0, 250, 70}),
}

// Marker is a world-space point (X, Z) rendered as a full-height beam down
// to the target block (spec.md §3, §4.5 "Marker & beam extension").
type Marker struct {
	X, Z  int
	Color Block
}

// NewMarker resolves colorName against the built-in table, falling back to
// white with a warning for unknown names (mirrors Colors::Marker's
// constructor in original_source/src/colors.h).
func NewMarker(x, z int, colorName string, log applog.Logger) Marker {
	c, ok := markerColors[colorName]
	if !ok {
		log.Warnf("invalid marker color %q, defaulting to white", colorName)
		c = markerColors["white"]
	}
	return Marker{X: x, Z: z, Color: NewBlockWithAccent(Beam, c, c)}
}
