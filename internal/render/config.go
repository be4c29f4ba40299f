package render

import (
	"image/color"

	"github.com/rook-computer/pixelplay/internal/numeric"
)

// Presentation defaults.
var (
	// 640x480 RGBA8, shown at 2x.
	DefaultSurface = Surface{Size: numeric.V2[int32](640, 480), BytesPerPixel: 4}
	DefaultScale   = int32(2)

	CaptionColor  = numeric.V4[float32](1, 1, 1, 1)
	CaptionShadow = color.RGBA{A: 0xFF}
	CaptionPanel  = color.RGBA{A: 0xA0}
	CaptionSize   = 14.0
)

// RGBA converts a normalized [0,1] color vector to 8-bit RGBA, clamping
// out-of-range components.
func RGBA(c numeric.Float4) color.RGBA {
	c = clamp4(c, 0, 1).MulScalar(255).AddScalar(0.5)
	return color.RGBA{R: uint8(c.X), G: uint8(c.Y), B: uint8(c.Z), A: uint8(c.W)}
}

func clamp4(v numeric.Float4, lo, hi float32) numeric.Float4 {
	for i := 0; i < v.Len(); i++ {
		p := v.Ptr(i)
		if *p < lo {
			*p = lo
		} else if *p > hi {
			*p = hi
		}
	}
	return v
}
