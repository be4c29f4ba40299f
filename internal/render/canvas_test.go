package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func testSurface() Surface {
	return Surface{Size: numeric.V2[int32](64, 32), BytesPerPixel: 4}
}

func TestSurfaceAccounting(t *testing.T) {
	s := DefaultSurface
	assert.Equal(t, 640*4, s.Stride())
	assert.Equal(t, 640*480, s.PixelCount())
	assert.Equal(t, 640*480*4, s.Bytes())
	assert.NoError(t, s.Validate())

	assert.Error(t, Surface{Size: numeric.V2[int32](0, 10), BytesPerPixel: 4}.Validate())
	assert.Error(t, Surface{Size: numeric.V2[int32](10, 10), BytesPerPixel: 3}.Validate())
}

func TestSurfaceTooLarge(t *testing.T) {
	huge := Surface{Size: numeric.V2[int32](65536, 65537), BytesPerPixel: 4}
	assert.Equal(t, 65536*65537, huge.PixelCount())
	assert.Error(t, huge.Validate())

	// 32768 x 32768 x 4 is exactly 4 GiB, one past the limit
	assert.Error(t, Surface{Size: numeric.V2[int32](32768, 32768), BytesPerPixel: 4}.Validate())
	assert.NoError(t, Surface{Size: numeric.V2[int32](32768, 32767), BytesPerPixel: 4}.Validate())
}

func TestCanvasLoadCopiesAndForcesOpaque(t *testing.T) {
	s := testSurface()
	c := NewCanvas(s, nil)
	pix := bytes.Repeat([]byte{1, 2, 3, 4}, s.PixelCount())

	require.NoError(t, c.Load(pix))
	assert.Equal(t, color.RGBA{1, 2, 3, 0xFF}, c.Image().RGBAAt(5, 5))

	// the source bytes are untouched
	assert.Equal(t, byte(4), pix[3])
	pix[0] = 99
	assert.Equal(t, uint8(1), c.Image().RGBAAt(0, 0).R)
}

func TestCanvasLoadRejectsWrongSize(t *testing.T) {
	c := NewCanvas(testSurface(), nil)
	assert.Error(t, c.Load(make([]byte, 12)))
}

func TestDrawCaptionTouchesOnlyCanvas(t *testing.T) {
	s := testSurface()
	pix := make([]byte, s.Bytes())
	c := NewCanvas(s, basicfont.Face7x13)
	require.NoError(t, c.Load(pix))

	before := bytes.Clone(c.Image().Pix)
	c.DrawCaption("fps=60", CaptionColor)
	assert.NotEqual(t, before, c.Image().Pix)
	assert.Equal(t, make([]byte, s.Bytes()), pix)

	// the bottom-right corner is outside the caption panel
	assert.Equal(t, color.RGBA{A: 0xFF}, c.Image().RGBAAt(63, 31))
}

func TestDrawCaptionNoop(t *testing.T) {
	c := NewCanvas(testSurface(), nil)
	before := bytes.Clone(c.Image().Pix)
	c.DrawCaption("fps=60", CaptionColor)
	c.face = basicfont.Face7x13
	c.DrawCaption("", CaptionColor)
	assert.Equal(t, before, c.Image().Pix)
}

func TestLoadFace(t *testing.T) {
	assert.NotNil(t, LoadFace("mono", 12, nil))
	assert.NotNil(t, LoadFace("regular", 0, nil))
	assert.Equal(t, basicfont.Face7x13, LoadFace("missing", 12, nil))
}

func TestFrameImageAliases(t *testing.T) {
	s := testSurface()
	pix := make([]byte, s.Bytes())
	img, err := FrameImage(s, pix)
	require.NoError(t, err)
	img.Pix[0] = 7
	assert.Equal(t, byte(7), pix[0])

	_, err = FrameImage(s, pix[:4])
	assert.Error(t, err)
}

func TestWritePNG(t *testing.T) {
	c := NewCanvas(testSurface(), nil)
	var out bytes.Buffer
	require.NoError(t, c.WritePNG(&out))
	img, err := png.Decode(&out)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestWriteFramePNGKeepsStraightAlpha(t *testing.T) {
	s := Surface{Size: numeric.V2[int32](2, 1), BytesPerPixel: 4}
	pix := []byte{200, 100, 50, 10, 1, 2, 3, 0}

	var out bytes.Buffer
	require.NoError(t, WriteFramePNG(&out, s, pix))
	img, err := png.Decode(&out)
	require.NoError(t, err)

	nrgba, ok := img.(*image.NRGBA)
	require.True(t, ok, "decoded %T", img)
	assert.Equal(t, pix, nrgba.Pix)
}

func TestRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, RGBA(numeric.V4[float32](1, 0.5, 0, 1)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, RGBA(numeric.V4[float32](2, -1, 0, 1)))
}
