package numeric

import (
	"fmt"
	"image"
)

// Vec2 is a 2-component vector.
type Vec2[K Scalar] struct {
	X, Y K
}

func V2[K Scalar](x, y K) Vec2[K] { return Vec2[K]{X: x, Y: y} }

func (v Vec2[K]) Len() int { return 2 }

func (v Vec2[K]) Add(o Vec2[K]) Vec2[K] { return Vec2[K]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[K]) Sub(o Vec2[K]) Vec2[K] { return Vec2[K]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[K]) Mul(o Vec2[K]) Vec2[K] { return Vec2[K]{v.X * o.X, v.Y * o.Y} }

// Div divides component by component. A zero integer component panics.
func (v Vec2[K]) Div(o Vec2[K]) Vec2[K] { return Vec2[K]{v.X / o.X, v.Y / o.Y} }

func (v Vec2[K]) AddScalar(s K) Vec2[K] { return Vec2[K]{v.X + s, v.Y + s} }
func (v Vec2[K]) SubScalar(s K) Vec2[K] { return Vec2[K]{v.X - s, v.Y - s} }
func (v Vec2[K]) MulScalar(s K) Vec2[K] { return Vec2[K]{v.X * s, v.Y * s} }
func (v Vec2[K]) DivScalar(s K) Vec2[K] { return Vec2[K]{v.X / s, v.Y / s} }

func (v *Vec2[K]) AddAssign(o Vec2[K]) *Vec2[K] { *v = v.Add(o); return v }
func (v *Vec2[K]) SubAssign(o Vec2[K]) *Vec2[K] { *v = v.Sub(o); return v }
func (v *Vec2[K]) MulAssign(o Vec2[K]) *Vec2[K] { *v = v.Mul(o); return v }
func (v *Vec2[K]) DivAssign(o Vec2[K]) *Vec2[K] { *v = v.Div(o); return v }

func (v *Vec2[K]) AddScalarAssign(s K) *Vec2[K] { *v = v.AddScalar(s); return v }
func (v *Vec2[K]) SubScalarAssign(s K) *Vec2[K] { *v = v.SubScalar(s); return v }
func (v *Vec2[K]) MulScalarAssign(s K) *Vec2[K] { *v = v.MulScalar(s); return v }
func (v *Vec2[K]) DivScalarAssign(s K) *Vec2[K] { *v = v.DivScalar(s); return v }

func (v Vec2[K]) Neg() Vec2[K] { return Vec2[K]{-v.X, -v.Y} }

func (v Vec2[K]) Equal(o Vec2[K]) bool    { return v.X == o.X && v.Y == o.Y }
func (v Vec2[K]) NotEqual(o Vec2[K]) bool { return v.X != o.X || v.Y != o.Y }

// Less reports whether every component of v is below the matching one in o.
func (v Vec2[K]) Less(o Vec2[K]) bool         { return v.X < o.X && v.Y < o.Y }
func (v Vec2[K]) LessEqual(o Vec2[K]) bool    { return v.X <= o.X && v.Y <= o.Y }
func (v Vec2[K]) Greater(o Vec2[K]) bool      { return v.X > o.X && v.Y > o.Y }
func (v Vec2[K]) GreaterEqual(o Vec2[K]) bool { return v.X >= o.X && v.Y >= o.Y }

// At returns component i (0 is X, 1 is Y). It panics when i is out of range.
func (v Vec2[K]) At(i int) K { return *v.Ptr(i) }

// Set assigns component i. It panics when i is out of range.
func (v *Vec2[K]) Set(i int, value K) { *v.Ptr(i) = value }

// Ptr returns the address of component i. It panics when i is out of range.
func (v *Vec2[K]) Ptr(i int) *K {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	}
	indexPanic(i, 2)
	return nil
}

// Point converts to an image.Point, truncating float components.
func (v Vec2[K]) Point() image.Point { return image.Pt(int(v.X), int(v.Y)) }

// Area is X*Y.
func (v Vec2[K]) Area() K { return v.X * v.Y }

func (v Vec2[K]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

// Convert2 changes the element kind of v using Go conversion rules.
func Convert2[To, From Scalar](v Vec2[From]) Vec2[To] {
	return Vec2[To]{To(v.X), To(v.Y)}
}

// FromPoint builds an integer vector from an image.Point.
func FromPoint(p image.Point) Int2 { return Int2{int32(p.X), int32(p.Y)} }
