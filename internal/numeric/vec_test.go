package numeric

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestZeroValue(t *testing.T) {
	var f Float2
	var i4 Int4
	assert.Equal(t, Float2{0, 0}, f)
	assert.Equal(t, Int4{0, 0, 0, 0}, i4)
}

func TestAddSubRoundTrip(t *testing.T) {
	t.Run("int2", func(t *testing.T) {
		a, b := V2[int32](7, -3), V2[int32](-12, 40)
		assert.True(t, a.Add(b).Sub(b).Equal(a))
	})

	t.Run("int4", func(t *testing.T) {
		a, b := V4[int32](1, 2, 3, 4), V4[int32](100, -200, 300, -400)
		assert.True(t, a.Add(b).Sub(b).Equal(a))
	})

	t.Run("float2", func(t *testing.T) {
		a, b := V2[float32](0.1, 2.5), V2[float32](1e3, -0.7)
		got := a.Add(b).Sub(b)
		assert.InDelta(t, a.X, got.X, 1e-4)
		assert.InDelta(t, a.Y, got.Y, 1e-4)
	})

	t.Run("float4", func(t *testing.T) {
		a, b := V4[float32](0.1, 0.2, 0.3, 0.4), V4[float32](3, 5, 7, 11)
		got := a.Add(b).Sub(b)
		for i := 0; i < 4; i++ {
			assert.InDelta(t, a.At(i), got.At(i), 1e-5)
		}
	})
}

func TestDoubleNegation(t *testing.T) {
	a2 := V2[float32](1.5, -2)
	a4 := V4[int32](1, -2, 3, -4)
	assert.Equal(t, a2, a2.Neg().Neg())
	assert.Equal(t, a4, a4.Neg().Neg())
	assert.Equal(t, V4[int32](-1, 2, -3, 4), a4.Neg())
}

func TestElementwiseOps(t *testing.T) {
	a, b := V2[int32](6, 8), V2[int32](3, 2)
	assert.Equal(t, V2[int32](9, 10), a.Add(b))
	assert.Equal(t, V2[int32](3, 6), a.Sub(b))
	assert.Equal(t, V2[int32](18, 16), a.Mul(b))
	assert.Equal(t, V2[int32](2, 4), a.Div(b))

	c, d := V4[float32](2, 4, 6, 8), V4[float32](2, 2, 3, 4)
	assert.Equal(t, V4[float32](1, 2, 2, 2), c.Div(d))
	assert.Equal(t, V4[float32](4, 8, 18, 32), c.Mul(d))
}

func TestScalarOps(t *testing.T) {
	a := V4[int32](2, 4, 6, 8)
	assert.Equal(t, V4[int32](3, 5, 7, 9), a.AddScalar(1))
	assert.Equal(t, V4[int32](0, 2, 4, 6), a.SubScalar(2))
	assert.Equal(t, V4[int32](6, 12, 18, 24), a.MulScalar(3))
	assert.Equal(t, V4[int32](1, 2, 3, 4), a.DivScalar(2))

	f := V2[float32](1, 3)
	assert.Equal(t, V2[float32](0.5, 1.5), f.DivScalar(2))
}

func TestCompoundAssignChains(t *testing.T) {
	v := V2[int32](1, 2)
	v.AddAssign(V2[int32](1, 1)).MulScalarAssign(10).SubScalarAssign(5)
	assert.Equal(t, V2[int32](15, 25), v)

	w := V4[float32](8, 8, 8, 8)
	got := w.DivScalarAssign(2).AddScalarAssign(1).DivAssign(V4[float32](5, 1, 5, 1)).MulAssign(V4[float32](1, 2, 3, 4))
	assert.Same(t, &w, got)
	assert.Equal(t, V4[float32](1, 10, 3, 20), w)

	u := V4[int32](5, 5, 5, 5)
	u.SubAssign(V4[int32](1, 2, 3, 4))
	assert.Equal(t, V4[int32](4, 3, 2, 1), u)
}

func TestEquality(t *testing.T) {
	a := V4[int32](1, 2, 3, 4)
	b := a
	assert.True(t, a.Equal(b))
	assert.False(t, a.NotEqual(b))

	b.W = 5
	assert.False(t, a.Equal(b))
	assert.True(t, a.NotEqual(b))

	c := V2[float32](1, 2)
	assert.True(t, c.NotEqual(V2[float32](1, 2.0001)))
}

func TestOrderingIsPartial(t *testing.T) {
	a, b := V2[int32](1, 2), V2[int32](2, 1)
	assert.False(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.False(t, a.Greater(b))
	assert.False(t, a.Equal(b))

	lo, hi := V4[float32](0, 0, 0, 0), V4[float32](1, 1, 1, 1)
	assert.True(t, lo.Less(hi))
	assert.True(t, hi.Greater(lo))
	assert.True(t, lo.LessEqual(lo))
	assert.True(t, hi.GreaterEqual(hi))

	// one tied component breaks strict ordering but not the non-strict one
	tie := V4[float32](0, 1, 1, 1)
	assert.False(t, lo.Less(tie))
	assert.True(t, lo.LessEqual(tie))
	assert.False(t, tie.Greater(lo))
	assert.True(t, tie.GreaterEqual(lo))
}

func TestIndexing(t *testing.T) {
	v2 := V2[int32](3, 4)
	assert.Equal(t, v2.X, v2.At(0))
	assert.Equal(t, v2.Y, v2.At(1))

	v4 := V4[float32](1, 2, 3, 4)
	assert.Equal(t, v4.X, v4.At(0))
	assert.Equal(t, v4.Y, v4.At(1))
	assert.Equal(t, v4.Z, v4.At(2))
	assert.Equal(t, v4.W, v4.At(3))

	v4.Set(2, 9)
	*v4.Ptr(3) += 1
	assert.Equal(t, V4[float32](1, 2, 9, 5), v4)
	assert.Equal(t, 4, v4.Len())
	assert.Equal(t, 2, v2.Len())
}

func TestIndexOutOfRangePanics(t *testing.T) {
	v2 := V2[int32](1, 2)
	v4 := V4[int32](1, 2, 3, 4)
	assert.Panics(t, func() { v2.At(2) })
	assert.Panics(t, func() { v2.At(-1) })
	assert.Panics(t, func() { v4.At(4) })
	assert.Panics(t, func() { v4.Set(7, 1) })
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(0), Dot(V4[float32](1, 0, 0, 0), V4[float32](0, 1, 0, 0)))
	assert.Equal(t, float32(29), Dot(V4[float32](2, 3, 4, 0), V4[float32](2, 3, 4, 0)))
	assert.Equal(t, int32(30), Dot(V4[int32](1, 2, 3, 4), V4[int32](1, 2, 3, 4)))
}

func TestCross(t *testing.T) {
	x, y := V4[float32](1, 0, 0, 0), V4[float32](0, 1, 0, 0)
	assert.Equal(t, V4[float32](0, 0, 1, 0), Cross(x, y))
	assert.Equal(t, V4[float32](0, 0, -1, 0), Cross(y, x))

	// W of the inputs never leaks into the result
	xw, yw := V4[float32](1, 0, 0, 7), V4[float32](0, 1, 0, -3)
	assert.Equal(t, V4[float32](0, 0, 1, 0), Cross(xw, yw))

	a, b := V4[int32](2, 3, 4, 1), V4[int32](5, 6, 7, 1)
	assert.Equal(t, V4[int32](-3, 6, -3, 0), Cross(a, b))
}

func TestDivisionByZero(t *testing.T) {
	f := V2[float32](1, 0).Div(V2[float32](0, 0))
	assert.True(t, math.IsInf(float64(f.X), 1))
	assert.True(t, math.IsNaN(float64(f.Y)))

	assert.Panics(t, func() { V2[int32](1, 1).Div(V2[int32](1, 0)) })
}

func TestConversions(t *testing.T) {
	assert.Equal(t, V2[float32](3, -2), Convert2[float32](V2[int32](3, -2)))
	assert.Equal(t, V4[int32](1, 2, 0, -1), Convert4[int32](V4[float32](1.9, 2.1, 0.4, -1.5)))
	assert.Equal(t, image.Pt(640, 480), V2[int32](640, 480).Point())
	assert.Equal(t, V2[int32](3, 4), FromPoint(image.Pt(3, 4)))
	assert.Equal(t, int32(12), V2[int32](3, 4).Area())
	assert.Equal(t, "(1, 2)", V2[int32](1, 2).String())
	assert.Equal(t, "(1, 2, 3, 4)", V4[int32](1, 2, 3, 4).String())
}

func TestYAML(t *testing.T) {
	type doc struct {
		Size  Int2   `yaml:"size"`
		Color Float4 `yaml:"color"`
	}

	var d doc
	require.NoError(t, yaml.Unmarshal([]byte("size: [640, 480]\ncolor: [1, 0.5, 0, 1]\n"), &d))
	assert.Equal(t, V2[int32](640, 480), d.Size)
	assert.Equal(t, V4[float32](1, 0.5, 0, 1), d.Color)

	out, err := yaml.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), "size: [640, 480]")

	err = yaml.Unmarshal([]byte("size: [1, 2, 3]\n"), &d)
	assert.Error(t, err)
	err = yaml.Unmarshal([]byte("size: 4\n"), &d)
	assert.Error(t, err)
}
