package algorithms

import (
	"fmt"
	"math/bits"

	"qreg/register"
)

// Oracle evaluates f on the n input qubits 1..n by flipping the ancilla,
// qubit n+1, whenever f(x) = 1.
type Oracle func(q *register.QuantumRegister, n int) error

// ConstantOracle returns the oracle for f(x) = value. value must be 0 or 1.
func ConstantOracle(value int) Oracle {
	return func(q *register.QuantumRegister, n int) error {
		switch value {
		case 0:
			return nil
		case 1:
			return q.X(n + 1)
		default:
			return fmt.Errorf("%w: constant oracle value %d", register.ErrInvalidInput, value)
		}
	}
}

// BalancedOracle returns the oracle for f(x) = popcount(x & mask) mod 2.
// Qubit 1 is the most significant bit of x. A nonzero mask always gives a
// balanced function.
func BalancedOracle(mask uint64) Oracle {
	return func(q *register.QuantumRegister, n int) error {
		if mask == 0 || bits.Len64(mask) > n {
			return fmt.Errorf("%w: mask %b does not fit %d input qubits", register.ErrInvalidInput, mask, n)
		}
		for i := 1; i <= n; i++ {
			if mask&(1<<uint(n-i)) == 0 {
				continue
			}
			if err := q.CNOT(i, n+1); err != nil {
				return err
			}
		}
		return nil
	}
}

// Negate returns the oracle for 1 - f(x).
func Negate(o Oracle) Oracle {
	return func(q *register.QuantumRegister, n int) error {
		if err := o(q, n); err != nil {
			return err
		}
		return q.X(n + 1)
	}
}
