// Package algorithms builds textbook circuits on top of the register engine.
package algorithms

import (
	"fmt"

	"qreg/register"
)

// Bell prepares the two-qubit state (|00⟩ + |11⟩)/√2.
func Bell(opts ...register.Option) (*register.QuantumRegister, error) {
	return GHZ(2, opts...)
}

// GHZ prepares (|0…0⟩ + |1…1⟩)/√2 across n qubits.
func GHZ(n int, opts ...register.Option) (*register.QuantumRegister, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: ghz needs at least 2 qubits, got %d", register.ErrInvalidInput, n)
	}
	q, err := zeros(n, opts...)
	if err != nil {
		return nil, err
	}
	if err := q.H(1); err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		if err := q.CNOT(i, i+1); err != nil {
			return nil, fmt.Errorf("ghz: %w", err)
		}
	}
	return q, nil
}

func zeros(n int, opts ...register.Option) (*register.QuantumRegister, error) {
	cr, err := register.Zeros(n)
	if err != nil {
		return nil, err
	}
	return register.New(cr, opts...)
}
