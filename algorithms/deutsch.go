package algorithms

import (
	"fmt"

	"qreg/register"
)

// Deutsch reports whether a one-bit function is constant, using a single
// oracle query.
func Deutsch(oracle Oracle, opts ...register.Option) (bool, error) {
	return DeutschJozsa(1, oracle, opts...)
}

// DeutschJozsa reports whether an n-bit function, promised to be either
// constant or balanced, is constant.
func DeutschJozsa(n int, oracle Oracle, opts ...register.Option) (bool, error) {
	x, err := query(n, oracle, opts...)
	if err != nil {
		return false, fmt.Errorf("deutsch-jozsa: %w", err)
	}
	return x.Value() == 0, nil
}

// BernsteinVazirani recovers the hidden string s of f(x) = s·x mod 2 with one
// query. secret is given as a bit pattern over n bits, qubit 1 first.
func BernsteinVazirani(n int, secret uint64, opts ...register.Option) (register.ClassicalRegister, error) {
	var oracle Oracle = ConstantOracle(0)
	if secret != 0 {
		oracle = BalancedOracle(secret)
	}
	x, err := query(n, oracle, opts...)
	if err != nil {
		return register.ClassicalRegister{}, fmt.Errorf("bernstein-vazirani: %w", err)
	}
	return x, nil
}

// query runs H⊗ⁿ · U_f · H⊗ⁿ with the ancilla in |−⟩ and measures the
// inputs. The ancilla is dropped from the result.
func query(n int, oracle Oracle, opts ...register.Option) (register.ClassicalRegister, error) {
	if n < 1 || n >= register.MaxQubits {
		return register.ClassicalRegister{}, fmt.Errorf("%w: %d input qubits", register.ErrInvalidInput, n)
	}

	seed, err := register.FromValue(n+1, 1)
	if err != nil {
		return register.ClassicalRegister{}, err
	}
	q, err := register.New(seed, opts...)
	if err != nil {
		return register.ClassicalRegister{}, err
	}

	for i := 1; i <= n+1; i++ {
		if err := q.H(i); err != nil {
			return register.ClassicalRegister{}, err
		}
	}
	if err := oracle(q, n); err != nil {
		return register.ClassicalRegister{}, fmt.Errorf("oracle: %w", err)
	}
	for i := 1; i <= n; i++ {
		if err := q.H(i); err != nil {
			return register.ClassicalRegister{}, err
		}
	}

	out, err := q.Measure()
	if err != nil {
		return register.ClassicalRegister{}, err
	}
	return register.FromValue(n, out.Value()>>1)
}
