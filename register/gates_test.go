package register

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredefinedMatricesAreUnitary(t *testing.T) {
	matrices := map[string]Matrix2{
		"I":      Identity,
		"H":      Hadamard,
		"X":      PauliX,
		"Y":      PauliY,
		"Z":      PauliZ,
		"S":      SGate,
		"T":      TGate,
		"RX":     RXMatrix(0.3),
		"RY":     RYMatrix(-1.7),
		"RZ":     RZMatrix(math.Pi / 3),
		"P":      PhaseMatrix(2.1),
		"T†":     TGate.Dagger(),
		"HZH":    Hadamard.Mul(PauliZ).Mul(Hadamard),
		"RX(2π)": RXMatrix(2 * math.Pi),
	}

	for name, m := range matrices {
		assert.True(t, m.IsUnitary(UnitaryTolerance), name)
	}
	assert.True(t, SwapMatrix.IsUnitary(UnitaryTolerance))
}

func TestNonUnitaryMatricesAreRejected(t *testing.T) {
	assert.False(t, Matrix2{{1, 1}, {0, 1}}.IsUnitary(UnitaryTolerance))
	assert.False(t, Matrix2{{2, 0}, {0, 1}}.IsUnitary(UnitaryTolerance))
	assert.False(t, Matrix4{}.IsUnitary(UnitaryTolerance))
}

func TestMatrixIdentities(t *testing.T) {
	assertMatrixNear(t, Identity, Hadamard.Mul(Hadamard))
	assertMatrixNear(t, PauliX, Hadamard.Mul(PauliZ).Mul(Hadamard))
	assertMatrixNear(t, SGate, TGate.Mul(TGate))
	assertMatrixNear(t, PauliZ, SGate.Mul(SGate))
	assertMatrixNear(t, Identity, TGate.Mul(TGate.Dagger()))
}

func TestApplyMatrix2Controls(t *testing.T) {
	// Three-bit vector, amplitudes labelled by index so moves are visible.
	amps := make([]Amplitude, 8)
	for i := range amps {
		amps[i] = Amplitude(complex(float64(i), 0))
	}

	// X on bit 0b001 only where bit 0b100 is set.
	applyMatrix2(amps, 0b100, 0b001, PauliX)
	assert.Equal(t, []Amplitude{0, 1, 2, 3, 5, 4, 7, 6}, amps)
}

func TestApplyMatrix4Swap(t *testing.T) {
	amps := []Amplitude{0, 1, 2, 3}
	applyMatrix4(amps, 0b10, 0b01, SwapMatrix)
	assert.Equal(t, []Amplitude{0, 2, 1, 3}, amps)
}

func TestApplyPhaseMask(t *testing.T) {
	amps := []Amplitude{1, 1, 1, 1}
	applyPhase(amps, 0b11, -1)
	assert.Equal(t, []Amplitude{1, 1, 1, -1}, amps)
}

func assertMatrixNear(t *testing.T, want, got Matrix2) {
	t.Helper()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, real(want[r][c]), real(got[r][c]), 1e-12, "re[%d][%d]", r, c)
			assert.InDelta(t, imag(want[r][c]), imag(got[r][c]), 1e-12, "im[%d][%d]", r, c)
		}
	}
}
