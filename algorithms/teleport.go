package algorithms

import (
	"fmt"

	"qreg/register"
)

// Teleportation is the outcome of a teleportation run. Register holds the
// collapsed sender qubits 1 and 2 and the received state on qubit 3.
type Teleportation struct {
	Register *register.QuantumRegister
	M1, M2   int
}

// Teleport prepares a state on qubit 1 with prepare, then moves it to qubit
// 3 through a shared Bell pair on qubits 2 and 3 and two classical bits.
func Teleport(prepare func(q *register.QuantumRegister, qubit int) error, opts ...register.Option) (*Teleportation, error) {
	q, err := zeros(3, opts...)
	if err != nil {
		return nil, err
	}
	if err := prepare(q, 1); err != nil {
		return nil, fmt.Errorf("teleport: prepare: %w", err)
	}

	steps := []func() error{
		func() error { return q.H(2) },
		func() error { return q.CNOT(2, 3) },
		func() error { return q.CNOT(1, 2) },
		func() error { return q.H(1) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return nil, fmt.Errorf("teleport: %w", err)
		}
	}

	m1, err := q.MeasureQubit(1)
	if err != nil {
		return nil, fmt.Errorf("teleport: %w", err)
	}
	m2, err := q.MeasureQubit(2)
	if err != nil {
		return nil, fmt.Errorf("teleport: %w", err)
	}

	// Bob holds X^m2 Z^m1 |ψ⟩.
	if m2 == 1 {
		if err := q.X(3); err != nil {
			return nil, err
		}
	}
	if m1 == 1 {
		if err := q.Z(3); err != nil {
			return nil, err
		}
	}
	return &Teleportation{Register: q, M1: m1, M2: m2}, nil
}

// Received returns the two amplitudes of qubit 3 after teleportation.
func (t *Teleportation) Received() (alpha, beta register.Amplitude) {
	base := uint64(t.M1<<2 | t.M2<<1)
	alpha, _ = t.Register.Amplitude(base)
	beta, _ = t.Register.Amplitude(base | 1)
	return alpha, beta
}
