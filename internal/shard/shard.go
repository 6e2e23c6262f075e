// Package shard implements spec.md §4.6's Shard Merger: composing a set of
// independently rendered sub-canvases into one final canvas, in a fixed
// order, via orientation-dependent over/under alpha blending.
package shard

import (
	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/canvas"
	"github.com/oriumgames/isomap/internal/geometry"
)

// anchor computes the byte offset in the main canvas' buffer that
// corresponds to sub's bottom-left pixel, grounded on
// IsometricCanvas::calcAnchor in the original renderer.
func anchor(main, sub *canvas.Canvas) int {
	minOffset := (sub.Box.MinX - main.Box.MinX) + (sub.Box.MinZ - main.Box.MinZ)
	maxOffset := (main.Box.MaxX - sub.Box.MaxX) + (main.Box.MaxZ - sub.Box.MaxZ)
	dMinX, dMaxX := sub.Box.MinX-main.Box.MinX, main.Box.MaxX-sub.Box.MaxX
	dMinZ, dMaxZ := sub.Box.MinZ-main.Box.MinZ, main.Box.MaxZ-sub.Box.MaxZ

	var anchorU, anchorV int
	switch main.Box.Orientation {
	case geometry.NW:
		anchorU = (dMinX + dMaxZ) * 2
		anchorV = main.Height - maxOffset
	case geometry.SE:
		anchorU = (dMaxX + dMinZ) * 2
		anchorV = main.Height - minOffset
	case geometry.SW:
		anchorU = maxOffset * 2
		anchorV = main.Height - (dMaxX + dMinZ)
	case geometry.NE:
		anchorU = minOffset * 2
		anchorV = main.Height - (dMinX + dMaxZ)
	}

	anchorU = anchorU + main.Padding - sub.Padding
	anchorV = anchorV - main.Padding + sub.Padding

	return (anchorU + main.Width*anchorV) * canvas.BytesPerPixel
}

// overLay composites a sub-canvas row above the main canvas' existing
// content: transparent source pixels are skipped, opaque source pixels (or
// an empty destination) overwrite, everything else alpha-blends.
func overLay(dst, src []byte) {
	for i := 0; i+4 <= len(src); i += 4 {
		if src[i+3] == 0 {
			continue
		}
		if src[i+3] == 255 || dst[i+3] == 0 {
			copy(dst[i:i+4], src[i:i+4])
			continue
		}
		blendPixel(dst[i:i+4], src[i:i+4])
	}
}

// underLay composites a sub-canvas row below the main canvas' existing
// content: the existing opaque pixel wins outright; otherwise the source
// is written first and the prior destination pixel blended back over it.
func underLay(dst, src []byte) {
	var tmp [4]byte
	for i := 0; i+4 <= len(src); i += 4 {
		if src[i+3] == 0 || dst[i+3] == 255 {
			continue
		}
		copy(tmp[:], dst[i:i+4])
		copy(dst[i:i+4], src[i:i+4])
		blendPixel(dst[i:i+4], tmp[:])
	}
}

func blendPixel(dst, src []byte) {
	sa := int(src[3])
	dst[0] = blendChannel(dst[0], src[0], sa)
	dst[1] = blendChannel(dst[1], src[1], sa)
	dst[2] = blendChannel(dst[2], src[2], sa)
	dst[3] = byte(int(dst[3]) + sa*(255-int(dst[3]))/255)
}

func blendChannel(d, s byte, sa int) byte {
	return byte((int(s)*sa + int(d)*(255-sa)) / 255)
}

// Merge composites sub onto main in place. Callers must merge sub-canvases
// in the fixed row-major shard order (spec.md §4.6, §5): merges are not
// commutative once any pixel has partial alpha.
func Merge(main, sub *canvas.Canvas) error {
	if sub.Width > main.Width || sub.Height > main.Height {
		return errors.New("cannot merge a canvas of larger dimensions into a smaller one")
	}

	base := anchor(main, sub)
	mainBuf := main.Bytes()
	subBuf := sub.Bytes()
	mainStride := main.Width * canvas.BytesPerPixel
	subStride := sub.Width * canvas.BytesPerPixel

	over := main.Box.Orientation == geometry.NW || main.Box.Orientation == geometry.SW

	for line := 1; line <= sub.Height; line++ {
		subOff := len(subBuf) - line*subStride
		mainOff := base - line*mainStride
		if subOff < 0 || mainOff < 0 || mainOff+subStride > len(mainBuf) {
			return errors.New("shard merge anchor out of bounds")
		}
		subLine := subBuf[subOff : subOff+subStride]
		mainLine := mainBuf[mainOff : mainOff+subStride]
		if over {
			overLay(mainLine, subLine)
		} else {
			underLay(mainLine, subLine)
		}
	}
	return nil
}

// MergeAll merges every sub-canvas into main in the order given, which must
// already be the fixed row-major shard order spec.md §4.6 requires.
func MergeAll(main *canvas.Canvas, subs []*canvas.Canvas) error {
	for _, sub := range subs {
		if err := Merge(main, sub); err != nil {
			return errors.Wrap(err, "merge shard")
		}
	}
	return nil
}
