package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/rook-computer/pixelplay/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is a driver-owned copy of the latest frame. Captions are drawn
// here, never into the frame source's bytes.
type Canvas struct {
	surface Surface
	img     *image.RGBA
	face    font.Face
}

func NewCanvas(surface Surface, face font.Face) *Canvas {
	return &Canvas{
		surface: surface,
		img:     image.NewRGBA(layout.Rect(numeric.Int2{}, surface.Size)),
		face:    face,
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }
func (c *Canvas) Surface() Surface   { return c.surface }

// Load copies a frame's bytes into the canvas with alpha forced opaque.
func (c *Canvas) Load(pix []byte) error {
	if err := c.surface.CheckFrame(pix); err != nil {
		return err
	}
	copy(c.img.Pix, pix)
	for i := 3; i < len(c.img.Pix); i += 4 {
		c.img.Pix[i] = 0xFF
	}
	return nil
}

// DrawCaption draws text in the top-left corner on a translucent panel.
// Empty text or a canvas without a face draws nothing.
func (c *Canvas) DrawCaption(text string, fg numeric.Float4) {
	if text == "" || c.face == nil {
		return
	}
	metrics := c.face.Metrics()
	ascent := int32(metrics.Ascent.Ceil())
	lineHeight := int32(metrics.Height.Ceil())
	drawer := &font.Drawer{Dst: c.img, Src: image.NewUniform(RGBA(fg)), Face: c.face}
	width := int32(drawer.MeasureString(text).Ceil())

	const margin, padding = 8, 4
	box := layout.AnchorTopLeft(
		layout.Inset(c.img.Bounds(), margin),
		numeric.V2(width, lineHeight).AddScalar(2*padding),
	)
	draw.Draw(c.img, box, image.NewUniform(CaptionPanel), image.Point{}, draw.Over)

	baseline := numeric.FromPoint(box.Min).AddScalar(padding).Add(numeric.V2(int32(0), ascent))
	drawTextAt(c.img, text, baseline.Add(numeric.V2[int32](1, 1)), CaptionShadow, c.face)
	drawTextAt(c.img, text, baseline, RGBA(fg), c.face)
}

func drawTextAt(img *image.RGBA, text string, dot numeric.Int2, fg color.Color, face font.Face) {
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(fg), Face: face}
	drawer.Dot = fixed.P(int(dot.X), int(dot.Y))
	drawer.DrawString(text)
}

// WritePNG encodes the canvas.
func (c *Canvas) WritePNG(w io.Writer) error { return png.Encode(w, c.img) }

// FrameImage wraps frame bytes as a straight-alpha image without copying.
// The image aliases pix.
func FrameImage(surface Surface, pix []byte) (*image.NRGBA, error) {
	if err := surface.CheckFrame(pix); err != nil {
		return nil, err
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: surface.Stride(),
		Rect:   layout.Rect(numeric.Int2{}, surface.Size),
	}, nil
}

// WriteFramePNG encodes frame bytes as they are, alpha included.
func WriteFramePNG(w io.Writer, surface Surface, pix []byte) error {
	img, err := FrameImage(surface, pix)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
