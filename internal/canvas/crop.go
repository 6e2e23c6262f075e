package canvas

// firstLine returns the topmost row with at least one non-transparent
// pixel, minus (padding − 2), per spec.md §4.5's "Crop". Rows are scanned
// from the top; a fully empty canvas returns 0.
func (c *Canvas) firstLine() int {
	for row := 0; row < c.Height; row++ {
		if c.rowHasContent(row) {
			line := row - (c.Padding - 2)
			if line < 0 {
				line = 0
			}
			return line
		}
	}
	return 0
}

// lastLine returns the bottommost row with at least one non-transparent
// pixel, plus (padding − 2).
func (c *Canvas) lastLine() int {
	for row := c.Height - 1; row > 0; row-- {
		if c.rowHasContent(row) {
			line := row + (c.Padding - 2)
			if line >= c.Height {
				line = c.Height - 1
			}
			return line
		}
	}
	return 0
}

func (c *Canvas) rowHasContent(row int) bool {
	base := row * c.Width * BytesPerPixel
	for col := 0; col < c.Width; col++ {
		if c.buf[base+col*BytesPerPixel+3] != 0 {
			return true
		}
	}
	return false
}

// CroppedHeight returns the height of the cropped sub-image, or 0 if the
// canvas carries no content (spec.md §4.5).
func (c *Canvas) CroppedHeight() int {
	for row := 0; row < c.Height; row++ {
		if c.rowHasContent(row) {
			return c.lastLine() - c.firstLine() + 1
		}
	}
	return 0
}

// CroppedOffset returns the byte offset of the first row to render in the
// cropped view.
func (c *Canvas) CroppedOffset() int {
	return c.firstLine() * c.Width * BytesPerPixel
}

// CroppedWidth returns the canvas width; spec.md §4.5 leaves width cropping
// unimplemented (only row-wise cropping is specified).
func (c *Canvas) CroppedWidth() int { return c.Width }
