package rive

import "image/color"

// UnpackColor decodes a packed 0xAARRGGBB value. It is the only color
// decoder in the package; paints and gradient stops both use it.
func UnpackColor(v uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: uint8(v >> 24),
	}
}

// PackColor encodes c as 0xAARRGGBB.
func PackColor(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ColorARGB packs four channels as 0xAARRGGBB.
func ColorARGB(a, r, g, b uint8) uint32 {
	return PackColor(color.NRGBA{R: r, G: g, B: b, A: a})
}
