package register

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmplitudeArithmetic(t *testing.T) {
	a := NewAmplitude(1, 2)
	b := NewAmplitude(3, -1)

	assert.Equal(t, NewAmplitude(4, 1), a.Add(b))
	assert.Equal(t, NewAmplitude(-2, 3), a.Sub(b))
	// (1+2i)(3-i) = 3 - i + 6i - 2i² = 5 + 5i
	assert.Equal(t, NewAmplitude(5, 5), a.Mul(b))
	assert.Equal(t, NewAmplitude(0.5, 1), a.Scale(0.5))
	assert.Equal(t, NewAmplitude(1, -2), a.Conj())
	assert.Equal(t, 1.0, a.Real())
	assert.Equal(t, 2.0, a.Imag())
}

func TestAmplitudeModulus(t *testing.T) {
	a := NewAmplitude(3, 4)
	assert.Equal(t, 25.0, a.NormSqr())
	assert.InDelta(t, 5.0, a.Abs(), 1e-12)

	assert.InDelta(t, math.Pi/2, NewAmplitude(0, 1).Phase(), 1e-12)
	assert.InDelta(t, math.Pi, NewAmplitude(-1, 0).Phase(), 1e-12)
	assert.Equal(t, "0.7071-0.5000i", NewAmplitude(0.70710678, -0.5).String())
}
