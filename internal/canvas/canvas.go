// Package canvas implements spec.md §4.5's Isometric Canvas: an RGBA pixel
// buffer sized from a Coordinates box, the block→pixel projection, and the
// section-by-section draw loop that walks a decoded Terrain through the
// sprite renderer table.
package canvas

import (
	"fmt"

	"github.com/oriumgames/isomap/internal/applog"
	"github.com/oriumgames/isomap/internal/geometry"
	"github.com/oriumgames/isomap/internal/palette"
	"github.com/oriumgames/isomap/internal/worldio"
)

// BytesPerPixel is the RGBA8 pixel stride used throughout the canvas and
// shard-merge code.
const BytesPerPixel = 4

const (
	padding      = 5
	heightOffset = 3
)

// Canvas is the RGBA buffer plus the projection parameters spec.md §4.5
// derives from a Coordinates box. SizeX/SizeZ are the box's extents after
// orientation has (possibly) swapped which world axis maps to which canvas
// axis; they are distinct from geometry.Coordinates.SizeX/SizeZ, which never
// swap (Testable Property 4).
type Canvas struct {
	Box     geometry.Coordinates
	Width   int
	Height  int
	SizeX   int
	SizeZ   int
	Padding int
	Shading bool

	buf        []byte
	brightness [256]float64
	palette    palette.Palette
	markers    []palette.Marker
	log        applog.Logger
}

// New allocates a zeroed canvas sized for box, per spec.md §4.5's width/
// height formulas.
func New(box geometry.Coordinates, pal palette.Palette, markers []palette.Marker, shading bool, log applog.Logger) *Canvas {
	sizeX, sizeZ := box.SizeX(), box.SizeZ()
	if box.Orientation == geometry.NE || box.Orientation == geometry.SW {
		sizeX, sizeZ = sizeZ, sizeX
	}

	width := (sizeX + sizeZ + 5) * 2
	height := sizeX + sizeZ + (box.Y[1]-box.Y[0])*3 + 10

	c := &Canvas{
		Box:     box,
		Width:   width,
		Height:  height,
		SizeX:   sizeX,
		SizeZ:   sizeZ,
		Padding: padding,
		Shading: shading,
		buf:     make([]byte, width*height*BytesPerPixel),
		palette: pal,
		markers: markers,
		log:     log,
	}
	c.brightness = buildBrightnessLookup(box.Y[0], box.Y[1])
	return c
}

// Bytes returns the canvas' raw RGBA8 buffer, row-major, width*4 per row.
func (c *Canvas) Bytes() []byte { return c.buf }

func (c *Canvas) pixelOffset(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("isomap: pixel (%d,%d) out of canvas bounds %dx%d", x, y, c.Width, c.Height))
	}
	return (y*c.Width + x) * BytesPerPixel
}

// Set implements sprite.Surface: an unconditional pixel overwrite.
func (c *Canvas) Set(x, y int, col palette.Color) {
	i := c.pixelOffset(x, y)
	c.buf[i] = col.R
	c.buf[i+1] = col.G
	c.buf[i+2] = col.B
	c.buf[i+3] = col.A
}

// Blend implements sprite.Surface: alpha-composites col over the existing
// pixel via spec.md §4.4's blend primitive.
func (c *Canvas) Blend(x, y int, col palette.Color) {
	i := c.pixelOffset(x, y)
	dst := palette.Color{R: c.buf[i], G: c.buf[i+1], B: c.buf[i+2], A: c.buf[i+3]}
	palette.Blend(&dst, col)
	c.buf[i] = dst.R
	c.buf[i+1] = dst.G
	c.buf[i+2] = dst.B
	c.buf[i+3] = dst.A
}

// project maps a canvas-local block coordinate (x, y, z) to its top-left
// pixel anchor, per spec.md §4.5:
//
//	u = 2·(sizeZ−1) + (x−z)·2 + padding
//	v = height − 2 + x + z − sizeX − sizeZ − (y − minY)·3 − padding
func (c *Canvas) project(x, y, z int) (u, v int) {
	u = 2*(c.SizeZ-1) + (x-z)*2 + c.Padding
	v = c.Height - 2 + x + z - c.SizeX - c.SizeZ - (y-c.Box.Y[0])*heightOffset - c.Padding
	return u, v
}

// buildBrightnessLookup derives a per-world-Y shading delta, from −20 near
// the bottom of the requested range to +20 at the top: higher blocks read
// brighter, a cheap substitute for real light propagation (spec.md §4.3
// leaves brightnessLookup's construction to the implementation, only fixing
// its use as a per-Y multiplier on the luminance-derived factor).
func buildBrightnessLookup(minY, maxY int) [256]float64 {
	var table [256]float64
	span := maxY - minY
	if span <= 0 {
		span = 1
	}
	for y := 0; y < 256; y++ {
		t := float64(y-minY) / float64(span)
		table[y] = -20 + 40*t
	}
	return table
}

func (c *Canvas) worldToPalette(entry worldio.PaletteEntry) palette.Block {
	return c.palette.Get(entry.Name)
}
