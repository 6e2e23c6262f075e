// Package geometry provides the coordinate box, compass orientation, and
// chunk/block/region index math shared by the decoder, canvas, and merger.
package geometry

// Orientation selects which world corner appears at the top of the rendered
// image. It changes both the block-to-pixel projection (canvas package) and
// the chunk iteration order (world decoder, canvas draw loop).
type Orientation uint8

const (
	NW Orientation = iota
	NE
	SW
	SE
)

// String returns the CLI flag spelling of the orientation.
func (o Orientation) String() string {
	switch o {
	case NW:
		return "nw"
	case NE:
		return "ne"
	case SW:
		return "sw"
	case SE:
		return "se"
	default:
		return "unknown"
	}
}

// Flips reports whether this orientation mirrors the X and/or Z axis within
// a chunk/section, and whether X and Z are swapped. These three booleans are
// sufficient to derive both the world-chunk iteration order (§4.2) and the
// in-section block orientation used by the canvas draw loop.
func (o Orientation) Flips() (flipX, flipZ, swapXZ bool) {
	switch o {
	case NW:
		return false, false, false
	case NE:
		return true, false, true
	case SW:
		return false, true, true
	case SE:
		return true, true, false
	default:
		return false, false, false
	}
}

// WorldChunk translates a canvas-local chunk coordinate (cx, cz), in
// [0, nChunksX) x [0, nChunksZ), to the world chunk coordinate it
// corresponds to under this orientation, per spec.md §4.2's table.
func (o Orientation) WorldChunk(cx, cz, minCX, minCZ, maxCX, maxCZ int) (worldCX, worldCZ int) {
	switch o {
	case NW:
		return minCX + cx, minCZ + cz
	case NE:
		return maxCX - cz, minCZ + cx
	case SW:
		return minCX + cz, maxCZ - cx
	case SE:
		return maxCX - cx, maxCZ - cz
	default:
		return minCX + cx, minCZ + cz
	}
}

// OrientBlock reorients an in-section local block coordinate (x, z), each in
// [0,16), to the orientation's painter's-order traversal coordinate.
func (o Orientation) OrientBlock(x, z int) (ox, oz int) {
	flipX, flipZ, swapXZ := o.Flips()
	if flipX {
		x = 15 - x
	}
	if flipZ {
		z = 15 - z
	}
	if swapXZ {
		x, z = z, x
	}
	return x, z
}

// Rotate90 returns the orientation reached by rotating the compass one step
// clockwise: NW -> NE -> SE -> SW -> NW. Used only by property tests
// (spec.md §8, property 7).
func (o Orientation) Rotate90() Orientation {
	switch o {
	case NW:
		return NE
	case NE:
		return SE
	case SE:
		return SW
	case SW:
		return NW
	default:
		return NW
	}
}

// ParseOrientation maps a CLI flag name to an Orientation. Unknown names
// default to NW, matching spec.md §6 ("default NW").
func ParseOrientation(flag string) Orientation {
	switch flag {
	case "ne":
		return NE
	case "sw":
		return SW
	case "se":
		return SE
	default:
		return NW
	}
}
