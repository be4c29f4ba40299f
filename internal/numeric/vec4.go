package numeric

import "fmt"

// Vec4 is a 4-component vector. Dot and Cross treat it as a 3D direction
// with a W component carried along.
type Vec4[K Scalar] struct {
	X, Y, Z, W K
}

func V4[K Scalar](x, y, z, w K) Vec4[K] { return Vec4[K]{X: x, Y: y, Z: z, W: w} }

func (v Vec4[K]) Len() int { return 4 }

func (v Vec4[K]) Add(o Vec4[K]) Vec4[K] {
	return Vec4[K]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4[K]) Sub(o Vec4[K]) Vec4[K] {
	return Vec4[K]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4[K]) Mul(o Vec4[K]) Vec4[K] {
	return Vec4[K]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div divides component by component. A zero integer component panics.
func (v Vec4[K]) Div(o Vec4[K]) Vec4[K] {
	return Vec4[K]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vec4[K]) AddScalar(s K) Vec4[K] { return Vec4[K]{v.X + s, v.Y + s, v.Z + s, v.W + s} }
func (v Vec4[K]) SubScalar(s K) Vec4[K] { return Vec4[K]{v.X - s, v.Y - s, v.Z - s, v.W - s} }
func (v Vec4[K]) MulScalar(s K) Vec4[K] { return Vec4[K]{v.X * s, v.Y * s, v.Z * s, v.W * s} }
func (v Vec4[K]) DivScalar(s K) Vec4[K] { return Vec4[K]{v.X / s, v.Y / s, v.Z / s, v.W / s} }

func (v *Vec4[K]) AddAssign(o Vec4[K]) *Vec4[K] { *v = v.Add(o); return v }
func (v *Vec4[K]) SubAssign(o Vec4[K]) *Vec4[K] { *v = v.Sub(o); return v }
func (v *Vec4[K]) MulAssign(o Vec4[K]) *Vec4[K] { *v = v.Mul(o); return v }
func (v *Vec4[K]) DivAssign(o Vec4[K]) *Vec4[K] { *v = v.Div(o); return v }

func (v *Vec4[K]) AddScalarAssign(s K) *Vec4[K] { *v = v.AddScalar(s); return v }
func (v *Vec4[K]) SubScalarAssign(s K) *Vec4[K] { *v = v.SubScalar(s); return v }
func (v *Vec4[K]) MulScalarAssign(s K) *Vec4[K] { *v = v.MulScalar(s); return v }
func (v *Vec4[K]) DivScalarAssign(s K) *Vec4[K] { *v = v.DivScalar(s); return v }

func (v Vec4[K]) Neg() Vec4[K] { return Vec4[K]{-v.X, -v.Y, -v.Z, -v.W} }

func (v Vec4[K]) Equal(o Vec4[K]) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z && v.W == o.W
}

func (v Vec4[K]) NotEqual(o Vec4[K]) bool {
	return v.X != o.X || v.Y != o.Y || v.Z != o.Z || v.W != o.W
}

// Less reports whether every component of v is below the matching one in o.
func (v Vec4[K]) Less(o Vec4[K]) bool {
	return v.X < o.X && v.Y < o.Y && v.Z < o.Z && v.W < o.W
}

func (v Vec4[K]) LessEqual(o Vec4[K]) bool {
	return v.X <= o.X && v.Y <= o.Y && v.Z <= o.Z && v.W <= o.W
}

func (v Vec4[K]) Greater(o Vec4[K]) bool {
	return v.X > o.X && v.Y > o.Y && v.Z > o.Z && v.W > o.W
}

func (v Vec4[K]) GreaterEqual(o Vec4[K]) bool {
	return v.X >= o.X && v.Y >= o.Y && v.Z >= o.Z && v.W >= o.W
}

// At returns component i (0..3 for X, Y, Z, W). It panics when i is out of range.
func (v Vec4[K]) At(i int) K { return *v.Ptr(i) }

// Set assigns component i. It panics when i is out of range.
func (v *Vec4[K]) Set(i int, value K) { *v.Ptr(i) = value }

// Ptr returns the address of component i. It panics when i is out of range.
func (v *Vec4[K]) Ptr(i int) *K {
	switch i {
	case 0:
		return &v.X
	case 1:
		return &v.Y
	case 2:
		return &v.Z
	case 3:
		return &v.W
	}
	indexPanic(i, 4)
	return nil
}

func (v Vec4[K]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// Dot sums the pairwise products of all four components.
func Dot[K Scalar](a, b Vec4[K]) K {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross is the 3D cross product of the X, Y, Z parts. W of the result is
// always zero.
func Cross[K Scalar](a, b Vec4[K]) Vec4[K] {
	return Vec4[K]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Convert4 changes the element kind of v using Go conversion rules.
func Convert4[To, From Scalar](v Vec4[From]) Vec4[To] {
	return Vec4[To]{To(v.X), To(v.Y), To(v.Z), To(v.W)}
}
