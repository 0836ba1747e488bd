package register

import (
	"math"
	"math/cmplx"
)

// UnitaryTolerance bounds the entry-wise error accepted by IsUnitary.
const UnitaryTolerance = 1e-9

// Matrix2 is a single-qubit operator over the basis (|0⟩, |1⟩), row-major.
type Matrix2 [2][2]Amplitude

// Matrix4 is a two-qubit operator over (|00⟩, |01⟩, |10⟩, |11⟩), where the
// first qubit of the pair is the high bit of the sub-index.
type Matrix4 [4][4]Amplitude

var invSqrt2 = Amplitude(complex(1/math.Sqrt2, 0))

var (
	Identity = Matrix2{{1, 0}, {0, 1}}
	Hadamard = Matrix2{{invSqrt2, invSqrt2}, {invSqrt2, -invSqrt2}}
	PauliX   = Matrix2{{0, 1}, {1, 0}}
	PauliY   = Matrix2{{0, -1i}, {1i, 0}}
	PauliZ   = Matrix2{{1, 0}, {0, -1}}
	SGate    = Matrix2{{1, 0}, {0, 1i}}
	TGate    = Matrix2{{1, 0}, {0, Amplitude(cmplx.Exp(complex(0, math.Pi/4)))}}

	SwapMatrix = Matrix4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
)

// RXMatrix rotates by theta about the X axis.
func RXMatrix(theta float64) Matrix2 {
	c := Amplitude(complex(math.Cos(theta/2), 0))
	js := Amplitude(complex(0, -math.Sin(theta/2)))
	return Matrix2{{c, js}, {js, c}}
}

// RYMatrix rotates by theta about the Y axis. It is real-valued, so it maps
// real states to real states.
func RYMatrix(theta float64) Matrix2 {
	c := Amplitude(complex(math.Cos(theta/2), 0))
	s := Amplitude(complex(math.Sin(theta/2), 0))
	return Matrix2{{c, -s}, {s, c}}
}

// RZMatrix rotates by theta about the Z axis.
func RZMatrix(theta float64) Matrix2 {
	phase := Amplitude(cmplx.Exp(complex(0, theta/2)))
	return Matrix2{{phase.Conj(), 0}, {0, phase}}
}

// PhaseMatrix multiplies |1⟩ by e^{iλ}.
func PhaseMatrix(lambda float64) Matrix2 {
	return Matrix2{{1, 0}, {0, Amplitude(cmplx.Exp(complex(0, lambda)))}}
}

// Dagger returns the conjugate transpose.
func (m Matrix2) Dagger() Matrix2 {
	return Matrix2{
		{m[0][0].Conj(), m[1][0].Conj()},
		{m[0][1].Conj(), m[1][1].Conj()},
	}
}

// Mul returns the product m·o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	var out Matrix2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c]
		}
	}
	return out
}

// IsUnitary reports whether m†m equals the identity within tol.
func (m Matrix2) IsUnitary(tol float64) bool {
	p := m.Dagger().Mul(m)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !near(p[r][c], r == c, tol) {
				return false
			}
		}
	}
	return true
}

func (m Matrix4) Dagger() Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[c][r].Conj()
		}
	}
	return out
}

func (m Matrix4) IsUnitary(tol float64) bool {
	d := m.Dagger()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum Amplitude
			for k := 0; k < 4; k++ {
				sum += d[r][k] * m[k][c]
			}
			if !near(sum, r == c, tol) {
				return false
			}
		}
	}
	return true
}

func near(a Amplitude, one bool, tol float64) bool {
	want := 0.0
	if one {
		want = 1
	}
	return math.Abs(real(a)-want) <= tol && math.Abs(imag(a)) <= tol
}

// ──────────────────────────── Kernels ────────────────────────────
//
// Every kernel walks the basis indices whose target bits are 0 and whose
// control bits are all 1, and transforms the small group of amplitudes that
// index selects. Nothing outside that group is touched.

// applyMatrix2 applies m to each pair (i, i|target) with i&controls == controls.
func applyMatrix2(amps []Amplitude, controls, target uint64, m Matrix2) {
	n := uint64(len(amps))
	for i := uint64(0); i < n; i++ {
		if i&target != 0 || i&controls != controls {
			continue
		}
		j := i | target
		a0, a1 := amps[i], amps[j]
		amps[i] = m[0][0]*a0 + m[0][1]*a1
		amps[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

// swapPairs exchanges the amplitudes of each pair (i, i|target) with
// i&controls == controls. It is the exact form of a controlled X.
func swapPairs(amps []Amplitude, controls, target uint64) {
	n := uint64(len(amps))
	for i := uint64(0); i < n; i++ {
		if i&target != 0 || i&controls != controls {
			continue
		}
		j := i | target
		amps[i], amps[j] = amps[j], amps[i]
	}
}

// applyPhase multiplies every amplitude whose index has all bits of mask set.
func applyPhase(amps []Amplitude, mask uint64, factor Amplitude) {
	n := uint64(len(amps))
	for i := uint64(0); i < n; i++ {
		if i&mask == mask {
			amps[i] *= factor
		}
	}
}

// applyMatrix4 applies m to each group {i, i|lo, i|hi, i|hi|lo}.
func applyMatrix4(amps []Amplitude, hi, lo uint64, m Matrix4) {
	n := uint64(len(amps))
	for i := uint64(0); i < n; i++ {
		if i&(hi|lo) != 0 {
			continue
		}
		idx := [4]uint64{i, i | lo, i | hi, i | hi | lo}
		var in [4]Amplitude
		for k, x := range idx {
			in[k] = amps[x]
		}
		for r, x := range idx {
			var sum Amplitude
			for c := 0; c < 4; c++ {
				sum += m[r][c] * in[c]
			}
			amps[x] = sum
		}
	}
}
