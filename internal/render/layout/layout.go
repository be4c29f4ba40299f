package layout

import (
	"image"

	"github.com/rook-computer/pixelplay/internal/numeric"
)

// Rect builds a rectangle at origin with the given size.
func Rect(origin, size numeric.Int2) image.Rectangle {
	return image.Rectangle{Min: origin.Point(), Max: origin.Add(size).Point()}
}

// Size returns the extent of rect.
func Size(rect image.Rectangle) numeric.Int2 {
	return numeric.FromPoint(Normalize(rect).Size())
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by padding on all sides, or grows it when padding is
// negative. An inset larger than the rect collapses it to its center.
func Inset(rect image.Rectangle, padding int32) image.Rectangle {
	rect = Normalize(rect)
	size := Size(rect)
	pad := numeric.V2(padding, padding)
	if limit := size.DivScalar(2); !pad.LessEqual(limit) {
		center := numeric.FromPoint(rect.Min).Add(limit)
		return Rect(center, numeric.Int2{})
	}
	return Rect(numeric.FromPoint(rect.Min).Add(pad), size.Sub(pad.MulScalar(2)))
}

// Clamp limits each component of size to [0, max].
func Clamp(size, max numeric.Int2) numeric.Int2 {
	for i := 0; i < size.Len(); i++ {
		p := size.Ptr(i)
		if *p < 0 {
			*p = 0
		}
		if m := max.At(i); *p > m {
			*p = m
		}
	}
	return size
}

// AnchorTopLeft places a box of size into the top-left of rect, clamped to
// rect's extent.
func AnchorTopLeft(rect image.Rectangle, size numeric.Int2) image.Rectangle {
	rect = Normalize(rect)
	return Rect(numeric.FromPoint(rect.Min), Clamp(size, Size(rect)))
}

// Center places a box of size in the middle of rect, clamped to rect's extent.
func Center(rect image.Rectangle, size numeric.Int2) image.Rectangle {
	rect = Normalize(rect)
	outer := Size(rect)
	size = Clamp(size, outer)
	origin := numeric.FromPoint(rect.Min).Add(outer.Sub(size).DivScalar(2))
	return Rect(origin, size)
}

// IntegerScale is the largest whole factor that fits src inside dst, at
// least 1.
func IntegerScale(src, dst numeric.Int2) int32 {
	if src.X <= 0 || src.Y <= 0 {
		return 1
	}
	fit := dst.Div(src)
	scale := min(fit.X, fit.Y)
	if scale < 1 {
		return 1
	}
	return scale
}
