// Package fbdev presents frames on a Linux framebuffer device.
package fbdev

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render/layout"
)

// Placement centers src on dst at the largest whole scale that fits.
func Placement(src numeric.Int2, dst image.Rectangle) image.Rectangle {
	scale := layout.IntegerScale(src, layout.Size(dst))
	return layout.Center(dst, src.MulScalar(scale))
}

// blit scales canvas into rect on dst with nearest-neighbour sampling.
// Pixels are written opaque.
func blit(dst draw.Image, rect image.Rectangle, canvas *image.RGBA) {
	srcSize := layout.Size(canvas.Bounds())
	dstSize := layout.Size(rect)
	if dstSize.X <= 0 || dstSize.Y <= 0 {
		return
	}
	for y := int32(0); y < dstSize.Y; y++ {
		for x := int32(0); x < dstSize.X; x++ {
			s := numeric.V2(x, y).Mul(srcSize).Div(dstSize)
			p := canvas.RGBAAt(int(s.X), int(s.Y))
			dst.Set(rect.Min.X+int(x), rect.Min.Y+int(y), color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xFF})
		}
	}
}

// clearOutside paints everything on dst outside keep black, so a letterboxed
// frame does not leave console text around it.
func clearOutside(dst draw.Image, keep image.Rectangle) {
	black := image.NewUniform(color.Black)
	b := dst.Bounds()
	for _, r := range []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, keep.Min.Y),
		image.Rect(b.Min.X, keep.Max.Y, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, keep.Min.Y, keep.Min.X, keep.Max.Y),
		image.Rect(keep.Max.X, keep.Min.Y, b.Max.X, keep.Max.Y),
	} {
		if !r.Empty() {
			draw.Draw(dst, r, black, image.Point{}, draw.Src)
		}
	}
}
