package layout

import (
	"image"
	"testing"

	"github.com/rook-computer/pixelplay/internal/numeric"
	"github.com/stretchr/testify/assert"
)

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 100, 50)
	assert.Equal(t, image.Rect(10, 10, 90, 40), Inset(r, 10))
	assert.Equal(t, image.Rect(-5, -5, 105, 55), Inset(r, -5))
	assert.Equal(t, image.Rect(50, 25, 50, 25), Inset(r, 30))
	assert.Equal(t, image.Rect(10, 10, 90, 40), Inset(image.Rect(100, 50, 0, 0), 10))
}

func TestAnchorAndCenter(t *testing.T) {
	r := image.Rect(10, 20, 110, 70)
	assert.Equal(t, image.Rect(10, 20, 40, 30), AnchorTopLeft(r, numeric.V2[int32](30, 10)))
	assert.Equal(t, image.Rect(10, 20, 110, 70), AnchorTopLeft(r, numeric.V2[int32](500, 500)))
	assert.Equal(t, image.Rect(10, 20, 10, 20), AnchorTopLeft(r, numeric.V2[int32](-3, -3)))

	assert.Equal(t, image.Rect(50, 40, 70, 50), Center(r, numeric.V2[int32](20, 10)))
}

func TestIntegerScale(t *testing.T) {
	src := numeric.V2[int32](640, 480)
	assert.Equal(t, int32(2), IntegerScale(src, numeric.V2[int32](1280, 960)))
	assert.Equal(t, int32(3), IntegerScale(src, numeric.V2[int32](1920, 1440)))
	assert.Equal(t, int32(2), IntegerScale(src, numeric.V2[int32](1920, 1080)))
	assert.Equal(t, int32(1), IntegerScale(src, numeric.V2[int32](320, 240)))
	assert.Equal(t, int32(1), IntegerScale(numeric.Int2{}, numeric.V2[int32](320, 240)))
}

func TestRectAndSize(t *testing.T) {
	rect := Rect(numeric.V2[int32](5, 6), numeric.V2[int32](10, 20))
	assert.Equal(t, image.Rect(5, 6, 15, 26), rect)
	assert.Equal(t, numeric.V2[int32](10, 20), Size(rect))
}
