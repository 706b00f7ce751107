package fixvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec4Zero(t *testing.T) {
	var v Vec4[float32]
	assert.Equal(t, Vec4[float32]{}, v)
}

func TestVec4Arithmetic(t *testing.T) {
	a := V4[float32](1, 2, 3, 4)
	b := V4[float32](5, 6, 7, 8)

	assert.Equal(t, V4[float32](6, 8, 10, 12), a.Add(b))
	assert.Equal(t, V4[float32](-4, -4, -4, -4), a.Sub(b))
	assert.Equal(t, V4[float32](2, 4, 6, 8), a.Scale(2))
	assert.Equal(t, V4[float32](0.5, 1, 1.5, 2), a.Div(2))
	assert.Equal(t, V4[float32](-1, -2, -3, -4), a.Neg())
	assert.Equal(t, V4[float32](1, 2, 3, 4), a)
}

func TestVec4InPlace(t *testing.T) {
	v := V4[float32](1, 2, 3, 4)
	v.AddInPlace(V4[float32](1, 1, 1, 1))
	v.SubInPlace(V4[float32](2, 3, 4, 5))
	v.ScaleInPlace(6)
	v.DivInPlace(3)
	assert.Equal(t, Vec4[float32]{}, v)
}

func TestVec4Dot(t *testing.T) {
	assert.InDelta(t, 70, V4[float32](1, 2, 3, 4).Dot(V4[float32](5, 6, 7, 8)), 1e-5)
}

func TestVec4Norm(t *testing.T) {
	// 2^2 + 4^2 + 5^2 + 6^2 = 81
	v := V4[float32](2, 4, 5, 6)
	assert.InDelta(t, 81, v.NormSq(), 1e-5)
	assert.InDelta(t, 9, v.Norm(), 1e-5)
}

func TestVec4Normalized(t *testing.T) {
	got := V4[float32](2, 4, 5, 6).Normalized()
	assert.InDelta(t, 1, got.Norm(), 1e-5)

	assert.Equal(t, Vec4[float32]{}, Vec4[float32]{}.Normalized())

	v := V4[float32](0, 0, 0, 9)
	v.Normalize()
	assert.True(t, v.Near(V4[float32](0, 0, 0, 1), 1e-5))
}

func TestVec4AtSet(t *testing.T) {
	v := V4(1, 2, 3, 4)
	for i, want := range []int{1, 2, 3, 4} {
		assert.Equal(t, want, v.At(i))
	}

	v.Set(3, 0)
	assert.Equal(t, V4(1, 2, 3, 0), v)

	assert.Panics(t, func() { v.At(4) })
	assert.Panics(t, func() { v.Set(4, 0) })
}

func TestVec4Preconditions(t *testing.T) {
	assert.PanicsWithValue(t, "fixvec: division by zero scalar", func() { V4[float32](1, 2, 3, 4).Div(0) })
	assert.Panics(t, func() { FromSlice4([]float32{1, 2, 3}) })
	assert.Equal(t, V4[float32](1, 2, 3, 4), FromSlice4([]float32{1, 2, 3, 4}))
}

func TestVec4String(t *testing.T) {
	assert.Equal(t, "[1, 2, 3, 4]", V4[float32](1, 2, 3, 4).String())
}
