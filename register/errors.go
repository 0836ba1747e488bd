package register

import "errors"

var (
	// ErrInvalidInput reports a malformed register construction or argument.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexOutOfRange reports a qubit or bit position outside [1, n].
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidGateArguments reports repeated qubits or a non-unitary matrix.
	ErrInvalidGateArguments = errors.New("invalid gate arguments")
	// ErrNormalization reports probability mass that drifted past NormTolerance.
	ErrNormalization = errors.New("normalization error")
)
