// Package register simulates an n-qubit register as a dense vector of 2^n
// complex amplitudes.
//
// A ClassicalRegister seeds the initial basis state, gate methods evolve the
// vector in place, and Measure samples a classical outcome and collapses the
// state onto it:
//
//	cr, _ := register.FromValue(2, 0)
//	q, _ := register.New(cr)
//	_ = q.H(1)
//	_ = q.CNOT(1, 2)
//	out, _ := q.Measure() // "00" or "11"
//
// Qubits are numbered from 1, with qubit 1 as the most significant bit of
// the basis index.
package register
