package register

import (
	"fmt"
	"math/cmplx"
)

// Amplitude is the complex coefficient of a single basis state.
type Amplitude complex128

// NewAmplitude returns re + im·i.
func NewAmplitude(re, im float64) Amplitude {
	return Amplitude(complex(re, im))
}

// Real and Imag return the components of a.
func (a Amplitude) Real() float64 { return real(a) }
func (a Amplitude) Imag() float64 { return imag(a) }

// Add, Sub and Mul are the complex field operations.
func (a Amplitude) Add(b Amplitude) Amplitude { return a + b }
func (a Amplitude) Sub(b Amplitude) Amplitude { return a - b }
func (a Amplitude) Mul(b Amplitude) Amplitude { return a * b }

// Scale multiplies the amplitude by a real factor.
func (a Amplitude) Scale(f float64) Amplitude {
	return Amplitude(complex(real(a)*f, imag(a)*f))
}

// Conj returns the complex conjugate.
func (a Amplitude) Conj() Amplitude {
	return Amplitude(cmplx.Conj(complex128(a)))
}

// NormSqr returns |a|², the probability contribution of the basis state.
func (a Amplitude) NormSqr() float64 {
	re, im := real(a), imag(a)
	return re*re + im*im
}

// Abs returns the modulus |a|.
func (a Amplitude) Abs() float64 {
	return cmplx.Abs(complex128(a))
}

// Phase returns the argument of a in (-π, π].
func (a Amplitude) Phase() float64 {
	return cmplx.Phase(complex128(a))
}

// String formats a as "re±imi" with four decimals.
func (a Amplitude) String() string {
	return fmt.Sprintf("%.4f%+.4fi", real(a), imag(a))
}
