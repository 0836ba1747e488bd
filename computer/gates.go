package computer

import (
	"sort"
	"strings"

	"qreg/register"
)

type gateSpec struct {
	qubits int
	params int
	apply  func(r *register.QuantumRegister, q []int, p []float64) error
}

func single(f func(*register.QuantumRegister, int) error) gateSpec {
	return gateSpec{qubits: 1, apply: func(r *register.QuantumRegister, q []int, _ []float64) error {
		return f(r, q[0])
	}}
}

func rotation(f func(*register.QuantumRegister, int, float64) error) gateSpec {
	return gateSpec{qubits: 1, params: 1, apply: func(r *register.QuantumRegister, q []int, p []float64) error {
		return f(r, q[0], p[0])
	}}
}

func pair(f func(*register.QuantumRegister, int, int) error) gateSpec {
	return gateSpec{qubits: 2, apply: func(r *register.QuantumRegister, q []int, _ []float64) error {
		return f(r, q[0], q[1])
	}}
}

// gateSet maps gate names, including common aliases, to register operations.
var gateSet = map[string]gateSpec{
	"I":   single(func(r *register.QuantumRegister, q int) error { return r.Apply(q, register.Identity) }),
	"H":   single((*register.QuantumRegister).H),
	"X":   single((*register.QuantumRegister).X),
	"Y":   single((*register.QuantumRegister).Y),
	"Z":   single((*register.QuantumRegister).Z),
	"S":   single((*register.QuantumRegister).S),
	"SDG": single((*register.QuantumRegister).Sdg),
	"T":   single((*register.QuantumRegister).T),
	"TDG": single((*register.QuantumRegister).Tdg),

	"RX": rotation((*register.QuantumRegister).RX),
	"RY": rotation((*register.QuantumRegister).RY),
	"RZ": rotation((*register.QuantumRegister).RZ),
	"P":  rotation((*register.QuantumRegister).Phase),
	"U1": rotation((*register.QuantumRegister).Phase),

	"CX":   pair((*register.QuantumRegister).CNOT),
	"CNOT": pair((*register.QuantumRegister).CNOT),
	"CZ":   pair((*register.QuantumRegister).CZ),
	"SWAP": pair((*register.QuantumRegister).Swap),
	"CH": pair(func(r *register.QuantumRegister, c, t int) error {
		return r.Controlled([]int{c}, t, register.Hadamard)
	}),

	"CCX": {qubits: 3, apply: func(r *register.QuantumRegister, q []int, _ []float64) error {
		return r.Toffoli(q[0], q[1], q[2])
	}},
}

// Gates lists the names ApplyGate accepts, sorted.
func Gates() []string {
	names := make([]string, 0, len(gateSet))
	for name := range gateSet {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Arity returns how many qubits and parameters a gate takes. Names are
// matched case-insensitively, as in ApplyGate.
func Arity(name string) (qubits, params int, ok bool) {
	spec, ok := gateSet[gateName(name)]
	return spec.qubits, spec.params, ok
}

func gateName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
