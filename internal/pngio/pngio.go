// Package pngio implements spec.md §4.7's PNG Encoder Adapter: it streams a
// canvas' cropped RGBA buffer to an output file using the standard image/png
// encoder, spec.md §1 explicitly naming "a standard PNG encoder" as the
// external collaborator this component delegates to.
package pngio

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/oriumgames/isomap/internal/canvas"
)

// croppedImage adapts a canvas' cropped sub-rectangle to image.Image
// without copying the backing buffer.
type croppedImage struct {
	pix           []byte
	width, height int
}

func (c *croppedImage) ColorModel() color.Model { return color.RGBAModel }
func (c *croppedImage) Bounds() image.Rectangle { return image.Rect(0, 0, c.width, c.height) }
func (c *croppedImage) At(x, y int) color.Color {
	i := (y*c.width + x) * canvas.BytesPerPixel
	return color.RGBA{R: c.pix[i], G: c.pix[i+1], B: c.pix[i+2], A: c.pix[i+3]}
}

// Write encodes c's cropped sub-rectangle as an 8-bit RGBA PNG to path.
// The write is atomic: the encoder writes to a sibling temp file first and
// renames it into place, so a crash or a write failure never leaves a
// partial file at path (spec.md §7, "Fatal I/O ... cannot open output PNG
// or write -> exit 2": a half-written file would itself be a fatal-I/O-class
// problem for the next run to trip over).
func Write(path string, c *canvas.Canvas) error {
	height := c.CroppedHeight()
	if height == 0 {
		// A canvas with no content (spec.md §4.5) still needs a valid PNG
		// out the other end; emit a single fully-transparent row rather
		// than asking the encoder to handle a zero-height image.
		height = 1
	}
	img := &croppedImage{
		pix:    c.Bytes()[c.CroppedOffset():],
		width:  c.CroppedWidth(),
		height: height,
	}

	dir := filepath.Dir(path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	f, err := os.Create(tmpPath)
	if err != nil {
		return errors.Wrap(err, "create temporary output file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "encode PNG")
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close temporary output file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "move output file into place")
	}
	return nil
}
