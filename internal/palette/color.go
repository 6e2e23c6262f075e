// Package palette implements the RGBA color model, the block-recipe/sprite
// pairing, and the named palette loader described in spec.md §3-4.2.
package palette

import "math"

// Color is the four-channel pixel format used throughout the renderer, plus
// two precomputed scalars (Noise, Luminance) used by shading.
type Color struct {
	R, G, B, A uint8
	Noise      uint8
	Luminance  uint8
}

// NewColor builds a Color from an RGBA channel list, precomputing its
// luminance. A nil or short list yields the zero (empty) Color.
func NewColor(channels []int) Color {
	var c Color
	if len(channels) > 0 {
		c.R = clampChannel(channels[0])
	}
	if len(channels) > 1 {
		c.G = clampChannel(channels[1])
	}
	if len(channels) > 2 {
		c.B = clampChannel(channels[2])
	}
	if len(channels) > 3 {
		c.A = clampChannel(channels[3])
	}
	c.Luminance = luminance(c.R, c.G, c.B)
	return c
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// luminance implements spec.md §3's sqrt(.2126R^2+.7152G^2+.0722B^2).
func luminance(r, g, b uint8) uint8 {
	rf, gf, bf := float64(r), float64(g), float64(b)
	v := math.Sqrt(rf*rf*0.2126 + gf*gf*0.7152 + bf*bf*0.0722)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Empty reports whether all four channels are zero — the splat no-op case
// from spec.md §3.
func (c Color) Empty() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

// Dithered returns c with R/G/B jittered by a value in [-Noise/2, Noise/2]
// derived from a position-seeded hash, so the same block at the same world
// coordinate always dithers the same way (SPEC_FULL.md §C6: re-rendering a
// box, whole or sharded, must stay byte-identical). A Color with Noise == 0
// is returned unchanged.
func (c Color) Dithered(x, y, z int) Color {
	if c.Noise == 0 {
		return c
	}
	h := positionHash(x, y, z)
	jitter := int(h%uint32(c.Noise)+1) - int(c.Noise)/2 - 1
	c.R = clampChannel(int(c.R) + jitter)
	c.G = clampChannel(int(c.G) + jitter)
	c.B = clampChannel(int(c.B) + jitter)
	return c
}

// positionHash is a cheap integer hash (grounded on the FNV-style mixing
// already used by the dragonfly dependency chain's chunk keys), producing a
// well-distributed deterministic value from a block's world coordinate.
func positionHash(x, y, z int) uint32 {
	h := uint32(x)*374761393 + uint32(y)*668265263 + uint32(z)*2246822519
	h = (h ^ (h >> 13)) * 1274126177
	return h ^ (h >> 16)
}

// ModChannel returns a copy of c with R/G/B shifted by mod and saturated to
// [0,255]; used to derive light/dark shades and to apply shading deltas.
func (c Color) ModChannel(mod int) Color {
	c.R = clampChannel(int(c.R) + mod)
	c.G = clampChannel(int(c.G) + mod)
	c.B = clampChannel(int(c.B) + mod)
	return c
}

// Blend implements spec.md §4.4's blend(dst, src) primitive: alpha-composite
// src over dst in place, with the fast paths for src.A==0 / dst.A==0 /
// src.A==255 the original exploits to skip the general formula.
func Blend(dst *Color, src Color) {
	if src.A == 0 {
		return
	}
	if dst.A == 0 || src.A == 255 {
		*dst = src
		return
	}
	sa := int(src.A)
	dst.R = blendChannel(dst.R, src.R, sa)
	dst.G = blendChannel(dst.G, src.G, sa)
	dst.B = blendChannel(dst.B, src.B, sa)
	dst.A = uint8(int(dst.A) + sa*(255-int(dst.A))/255)
}

func blendChannel(d, s uint8, sa int) uint8 {
	return uint8((int(s)*sa + int(d)*(255-sa)) / 255)
}

// AccentSub derives the shading delta used to shade a secondary/accent
// color into its own light/dark pair (ore veins, grown-crop tops, log
// faces), from the primary color's luminance alone: sprite types driven by
// a secondary color have no precomputed accent shades, so each sprite
// computes them from this at render time.
func AccentSub(primary Color) int {
	return int(float64(primary.Luminance)/323.0 + 0.21)
}

// AddColor implements spec.md §4.4's weaker tint primitive: dst is nudged
// toward add, proportionally to add's alpha, without consuming it as a full
// blend would.
func AddColor(dst *Color, add Color) {
	v2 := float64(add.A) / 255
	v1 := 1 - 0.2*v2
	dst.R = clampChannel(int(float64(dst.R)*v1 + float64(add.R)*v2))
	dst.G = clampChannel(int(float64(dst.G)*v1 + float64(add.G)*v2))
	dst.B = clampChannel(int(float64(dst.B)*v1 + float64(add.B)*v2))
}
