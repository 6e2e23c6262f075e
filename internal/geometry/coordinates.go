package geometry

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// undefinedMin/undefinedMax are the sentinels spec.md §3 describes: an
// "undefined" box uses int-max/int-min so unions can be built with min/max
// without a separate "is this the first box" branch.
const (
	undefinedMin = math.MaxInt32
	undefinedMax = math.MinInt32
)

// Coordinates is an integer axis-aligned block-space box plus the
// orientation it is rendered under. Y bounds are carried as a dragonfly
// cube.Range, the same type the teacher threads between its world provider
// and block converter for a dimension's vertical extent.
type Coordinates struct {
	MinX, MaxX int
	MinZ, MaxZ int
	Y          cube.Range
	Orientation Orientation
}

// Undefined returns an empty box suitable as the zero value of a running
// union: every Expand call will replace both bounds on each axis.
func Undefined(o Orientation) Coordinates {
	return Coordinates{
		MinX: undefinedMin, MaxX: undefinedMax,
		MinZ: undefinedMin, MaxZ: undefinedMax,
		Y:           cube.Range{255, 0},
		Orientation: o,
	}
}

// Valid reports whether the box satisfies spec.md §3's invariants.
func (c Coordinates) Valid() bool {
	return c.MinX <= c.MaxX && c.MinZ <= c.MaxZ && c.Y[0] <= c.Y[1] && c.Y[1] <= 255
}

// ExpandToChunk folds a chunk's block-space rectangle into the running
// union box, used while the decoder scans region headers to derive the
// world's bounding chunk rectangle (spec.md §4.1, "Region scan").
func (c *Coordinates) ExpandToChunk(cx, cz int) {
	minX, maxX := cx*16, cx*16+15
	minZ, maxZ := cz*16, cz*16+15
	if minX < c.MinX {
		c.MinX = minX
	}
	if maxX > c.MaxX {
		c.MaxX = maxX
	}
	if minZ < c.MinZ {
		c.MinZ = minZ
	}
	if maxZ > c.MaxZ {
		c.MaxZ = maxZ
	}
}

// SizeX and SizeZ are the box's block-space extents, consumed by the canvas
// dimension formulas in spec.md §4.5. Orientation swaps which of SizeX/SizeZ
// maps onto the horizontal/vertical canvas axes but never changes the two
// values themselves (Testable Property 4).
func (c Coordinates) SizeX() int { return c.MaxX - c.MinX + 1 }
func (c Coordinates) SizeZ() int { return c.MaxZ - c.MinZ + 1 }

// ChunkBox returns the inclusive chunk-space rectangle covering this block
// box: minCX, minCZ, maxCX, maxCZ.
func (c Coordinates) ChunkBox() (minCX, minCZ, maxCX, maxCZ int) {
	return floorDiv16(c.MinX), floorDiv16(c.MinZ), floorDiv16(c.MaxX), floorDiv16(c.MaxZ)
}

// NChunks returns the number of chunks spanned on each axis.
func (c Coordinates) NChunks() (nx, nz int) {
	minCX, minCZ, maxCX, maxCZ := c.ChunkBox()
	return maxCX - minCX + 1, maxCZ - minCZ + 1
}

func floorDiv16(v int) int {
	if v >= 0 {
		return v / 16
	}
	return -((-v + 15) / 16)
}

// Shard splits the box into at most n sub-boxes tiling it in row-major
// chunk-space stripes (split along Z first, then X), so n need not be a
// perfect square. A grid row or column that would start past the box's last
// chunk is dropped, so fewer than n boxes can be returned (n=4 over a 4x1
// chunk box yields 2).
// Every sub-box shares the parent's orientation and Y range, per spec.md
// §4.6's requirement that "all sub-canvases shar[e] the main orientation".
func (c Coordinates) Shard(n int) []Coordinates {
	if n <= 1 {
		return []Coordinates{c}
	}
	minCX, minCZ, maxCX, maxCZ := c.ChunkBox()
	nChunksX := maxCX - minCX + 1
	nChunksZ := maxCZ - minCZ + 1
	totalChunks := nChunksX * nChunksZ
	if n > totalChunks {
		n = totalChunks
	}
	if n < 1 {
		n = 1
	}

	// Choose a row/column split as square as possible, rows first (Z axis)
	// so a 1-D strip world (nChunksZ == 1) degrades to column shards.
	rows := isqrtFloor(n)
	for rows > 1 && n%rows != 0 {
		rows--
	}
	cols := n / rows

	shards := make([]Coordinates, 0, n)
	chunksPerRow := ceilDiv(nChunksZ, rows)
	chunksPerCol := ceilDiv(nChunksX, cols)

	for r := 0; r < rows; r++ {
		cz0 := minCZ + r*chunksPerRow
		cz1 := cz0 + chunksPerRow - 1
		if cz1 > maxCZ {
			cz1 = maxCZ
		}
		if cz0 > maxCZ {
			continue
		}
		for col := 0; col < cols; col++ {
			cx0 := minCX + col*chunksPerCol
			cx1 := cx0 + chunksPerCol - 1
			if cx1 > maxCX {
				cx1 = maxCX
			}
			if cx0 > maxCX {
				continue
			}
			sub := Coordinates{
				MinX: max(cx0*16, c.MinX), MaxX: min(cx1*16+15, c.MaxX),
				MinZ: max(cz0*16, c.MinZ), MaxZ: min(cz1*16+15, c.MaxZ),
				Y:           c.Y,
				Orientation: c.Orientation,
			}
			shards = append(shards, sub)
		}
	}
	return shards
}

func isqrtFloor(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	if r < 1 {
		r = 1
	}
	return r
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
