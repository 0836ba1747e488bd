package register

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Gates validate all of their qubit arguments before touching the vector,
// so a failed call leaves the state unchanged. Any successful gate moves the
// register to StatusEvolving, including one applied after Measure: it then
// acts on the collapsed basis state.

// H applies the Hadamard gate to qubit q.
func (q *QuantumRegister) H(qubit int) error {
	return q.Apply(qubit, Hadamard)
}

// X flips qubit q.
func (q *QuantumRegister) X(qubit int) error {
	if err := q.checkQubit(qubit); err != nil {
		return err
	}
	swapPairs(q.amplitudes, 0, q.mask(qubit))
	q.evolve()
	return nil
}

// Y applies the Pauli-Y gate to qubit q.
func (q *QuantumRegister) Y(qubit int) error {
	return q.Apply(qubit, PauliY)
}

// Z flips the sign of the |1⟩ component of qubit q.
func (q *QuantumRegister) Z(qubit int) error {
	return q.phase(qubit, -1)
}

// S applies the quarter-turn phase gate.
func (q *QuantumRegister) S(qubit int) error {
	return q.phase(qubit, 1i)
}

// Sdg applies the inverse of S.
func (q *QuantumRegister) Sdg(qubit int) error {
	return q.phase(qubit, -1i)
}

// T applies the eighth-turn phase gate.
func (q *QuantumRegister) T(qubit int) error {
	return q.phase(qubit, Amplitude(cmplx.Exp(complex(0, math.Pi/4))))
}

// Tdg applies the inverse of T.
func (q *QuantumRegister) Tdg(qubit int) error {
	return q.phase(qubit, Amplitude(cmplx.Exp(complex(0, -math.Pi/4))))
}

// RX rotates qubit q by theta about the X axis.
func (q *QuantumRegister) RX(qubit int, theta float64) error {
	return q.Apply(qubit, RXMatrix(theta))
}

// RY rotates qubit q by theta about the Y axis.
func (q *QuantumRegister) RY(qubit int, theta float64) error {
	return q.Apply(qubit, RYMatrix(theta))
}

// RZ rotates qubit q by theta about the Z axis.
func (q *QuantumRegister) RZ(qubit int, theta float64) error {
	return q.Apply(qubit, RZMatrix(theta))
}

// Phase multiplies the |1⟩ component of qubit q by e^{iλ}.
func (q *QuantumRegister) Phase(qubit int, lambda float64) error {
	return q.phase(qubit, Amplitude(cmplx.Exp(complex(0, lambda))))
}

// CNOT flips target wherever control is 1.
func (q *QuantumRegister) CNOT(control, target int) error {
	if err := q.checkQubits(control, target); err != nil {
		return err
	}
	swapPairs(q.amplitudes, q.mask(control), q.mask(target))
	q.evolve()
	return nil
}

// CZ negates the amplitudes where both qubits are 1. It is symmetric in its
// arguments.
func (q *QuantumRegister) CZ(control, target int) error {
	if err := q.checkQubits(control, target); err != nil {
		return err
	}
	applyPhase(q.amplitudes, q.mask(control)|q.mask(target), -1)
	q.evolve()
	return nil
}

// Swap exchanges the states of qubits a and b.
func (q *QuantumRegister) Swap(a, b int) error {
	return q.ApplyTwoQubit(a, b, SwapMatrix)
}

// Toffoli flips target wherever both controls are 1.
func (q *QuantumRegister) Toffoli(control1, control2, target int) error {
	if err := q.checkQubits(control1, control2, target); err != nil {
		return err
	}
	swapPairs(q.amplitudes, q.mask(control1)|q.mask(control2), q.mask(target))
	q.evolve()
	return nil
}

// Controlled applies m to target on the subspace where every control is 1.
func (q *QuantumRegister) Controlled(controls []int, target int, m Matrix2) error {
	if err := q.checkQubits(append(append([]int(nil), controls...), target)...); err != nil {
		return err
	}
	if !m.IsUnitary(UnitaryTolerance) {
		return fmt.Errorf("%w: matrix is not unitary", ErrInvalidGateArguments)
	}
	var cmask uint64
	for _, c := range controls {
		cmask |= q.mask(c)
	}
	applyMatrix2(q.amplitudes, cmask, q.mask(target), m)
	q.evolve()
	return nil
}

// Apply applies an arbitrary single-qubit unitary to qubit q.
func (q *QuantumRegister) Apply(qubit int, m Matrix2) error {
	return q.Controlled(nil, qubit, m)
}

// ApplyTwoQubit applies m to qubits a and b, with a as the high bit of m's
// sub-index.
func (q *QuantumRegister) ApplyTwoQubit(a, b int, m Matrix4) error {
	if err := q.checkQubits(a, b); err != nil {
		return err
	}
	if !m.IsUnitary(UnitaryTolerance) {
		return fmt.Errorf("%w: matrix is not unitary", ErrInvalidGateArguments)
	}
	applyMatrix4(q.amplitudes, q.mask(a), q.mask(b), m)
	q.evolve()
	return nil
}

func (q *QuantumRegister) phase(qubit int, factor Amplitude) error {
	if err := q.checkQubit(qubit); err != nil {
		return err
	}
	applyPhase(q.amplitudes, q.mask(qubit), factor)
	q.evolve()
	return nil
}

func (q *QuantumRegister) evolve() {
	q.status = StatusEvolving
	q.outcome = ClassicalRegister{}
}
