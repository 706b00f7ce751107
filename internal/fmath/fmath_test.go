package fmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSqrt(t *testing.T) {
	assert.InDelta(t, 3, Sqrt(9), 1e-9)
	assert.InDelta(t, 5, Sqrt(float32(25)), 1e-9)
	assert.Equal(t, 0.0, Sqrt(0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, 7.0, Abs(7))
	assert.Equal(t, 3.0, Abs(uint8(3)))
}

func TestNear(t *testing.T) {
	assert.True(t, Near(1.0, 1.0+1e-9, 1e-5))
	assert.False(t, Near(1.0, 1.1, 1e-5))

	// Unsigned differences must not wrap.
	assert.False(t, Near(uint32(1), uint32(2), 0.5))
	assert.True(t, Near(uint32(1), uint32(2), 1.5))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(3, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}
