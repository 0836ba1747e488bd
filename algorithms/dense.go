package algorithms

import (
	"fmt"

	"qreg/register"
)

// SuperdenseCoding sends a two-bit message such as "10" through one qubit of
// a shared Bell pair and returns what the receiver decodes.
func SuperdenseCoding(message string, opts ...register.Option) (string, error) {
	if len(message) != 2 || !isBit(message[0]) || !isBit(message[1]) {
		return "", fmt.Errorf("%w: message must be two bits, got %q", register.ErrInvalidInput, message)
	}

	q, err := Bell(opts...)
	if err != nil {
		return "", err
	}

	if message[1] == '1' {
		if err := q.X(1); err != nil {
			return "", err
		}
	}
	if message[0] == '1' {
		if err := q.Z(1); err != nil {
			return "", err
		}
	}

	if err := q.CNOT(1, 2); err != nil {
		return "", err
	}
	if err := q.H(1); err != nil {
		return "", err
	}

	out, err := q.Measure()
	if err != nil {
		return "", fmt.Errorf("superdense coding: %w", err)
	}
	return out.String(), nil
}

func isBit(b byte) bool { return b == '0' || b == '1' }
