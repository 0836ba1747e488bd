// Package computer wraps a quantum register and its classical read-out in
// a single beginner-friendly object.
package computer

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"qreg/register"
)

// ErrUnknownGate is returned by ApplyGate for an unrecognised gate name.
var ErrUnknownGate = errors.New("unknown gate")

// QuantumComputer pairs a QuantumRegister with the classical register its
// last measurement produced.
type QuantumComputer struct {
	id     uuid.UUID
	reg    *register.QuantumRegister
	result register.ClassicalRegister
	source register.Source
	log    zerolog.Logger
}

type options struct {
	log    zerolog.Logger
	source register.Source
}

// Option configures a QuantumComputer.
type Option func(*options)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithSource sets the random source used for measurement.
func WithSource(src register.Source) Option {
	return func(o *options) { o.source = src }
}

// New creates a computer with numQubits qubits in |0…0⟩.
func New(numQubits int, opts ...Option) (*QuantumComputer, error) {
	cr, err := register.Zeros(numQubits)
	if err != nil {
		return nil, fmt.Errorf("create computer: %w", err)
	}
	return FromClassical(cr, opts...)
}

// FromClassical creates a computer seeded with the basis state cr.
func FromClassical(cr register.ClassicalRegister, opts ...Option) (*QuantumComputer, error) {
	o := options{log: zerolog.Nop(), source: register.DefaultSource()}
	for _, opt := range opts {
		opt(&o)
	}

	reg, err := register.New(cr, register.WithSource(o.source))
	if err != nil {
		return nil, fmt.Errorf("create computer: %w", err)
	}

	id := uuid.New()
	qc := &QuantumComputer{
		id:     id,
		reg:    reg,
		source: o.source,
		log:    o.log.With().Str("computer", id.String()).Logger(),
	}
	qc.log.Info().Int("qubits", reg.Len()).Str("seed", cr.String()).Msg("computer created")
	return qc, nil
}

// ID identifies the computer in log output.
func (qc *QuantumComputer) ID() uuid.UUID { return qc.id }

// Len returns the number of qubits.
func (qc *QuantumComputer) Len() int { return qc.reg.Len() }

// Status reports the register lifecycle stage.
func (qc *QuantumComputer) Status() register.Status { return qc.reg.Status() }

// Register returns a snapshot of the underlying register.
func (qc *QuantumComputer) Register() *register.QuantumRegister {
	return qc.reg.Clone()
}

// Result returns the outcome of the last measurement, if there was one
// since the last reset.
func (qc *QuantumComputer) Result() (register.ClassicalRegister, bool) {
	return qc.result, qc.result.Width() > 0
}

// H, X, Y and Z apply the named single-qubit gate.
func (qc *QuantumComputer) H(qubit int) error { return qc.ApplyGate("H", []int{qubit}) }
func (qc *QuantumComputer) X(qubit int) error { return qc.ApplyGate("X", []int{qubit}) }
func (qc *QuantumComputer) Y(qubit int) error { return qc.ApplyGate("Y", []int{qubit}) }
func (qc *QuantumComputer) Z(qubit int) error { return qc.ApplyGate("Z", []int{qubit}) }

// CNOT flips target wherever control is 1.
func (qc *QuantumComputer) CNOT(control, target int) error {
	return qc.ApplyGate("CX", []int{control, target})
}

// ApplyGate applies a gate by name. Controls come before the target in
// qubits; rotation angles are passed in params.
func (qc *QuantumComputer) ApplyGate(name string, qubits []int, params ...float64) error {
	name = gateName(name)
	spec, ok := gateSet[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGate, name)
	}
	if len(qubits) != spec.qubits {
		return fmt.Errorf("%s takes %d qubit(s), got %d: %w", name, spec.qubits, len(qubits), register.ErrInvalidGateArguments)
	}
	if len(params) != spec.params {
		return fmt.Errorf("%s takes %d parameter(s), got %d: %w", name, spec.params, len(params), register.ErrInvalidGateArguments)
	}

	if err := spec.apply(qc.reg, qubits, params); err != nil {
		qc.log.Warn().Err(err).Str("gate", name).Ints("qubits", qubits).Msg("gate rejected")
		return fmt.Errorf("apply %s: %w", name, err)
	}
	qc.log.Debug().Str("gate", name).Ints("qubits", qubits).Floats64("params", params).Msg("gate applied")
	return nil
}

// Measure collapses the register and records the classical outcome.
func (qc *QuantumComputer) Measure() (register.ClassicalRegister, error) {
	out, err := qc.reg.Measure()
	if err != nil {
		qc.log.Error().Err(err).Msg("measurement failed")
		return register.ClassicalRegister{}, fmt.Errorf("measure: %w", err)
	}
	qc.result = out
	qc.log.Info().Str("outcome", out.String()).Uint64("value", out.Value()).Msg("measured")
	return out, nil
}

// MeasureQubit measures a single qubit without collapsing the others.
func (qc *QuantumComputer) MeasureQubit(qubit int) (int, error) {
	bit, err := qc.reg.MeasureQubit(qubit)
	if err != nil {
		return 0, fmt.Errorf("measure qubit %d: %w", qubit, err)
	}
	qc.log.Info().Int("qubit", qubit).Int("bit", bit).Msg("qubit measured")
	return bit, nil
}

// Run samples the current state shots times without collapsing it.
func (qc *QuantumComputer) Run(shots int) (*register.Histogram, error) {
	h, err := qc.reg.Sample(shots)
	if err != nil {
		return nil, fmt.Errorf("run %d shots: %w", shots, err)
	}
	qc.log.Debug().Int("shots", shots).Int("outcomes", len(h.Counts)).Msg("sampled")
	return h, nil
}

// Reset returns the register to |0…0⟩ and clears the last result.
func (qc *QuantumComputer) Reset() error {
	return qc.Resize(qc.reg.Len())
}

// Resize replaces the register with a fresh |0…0⟩ of a different width.
func (qc *QuantumComputer) Resize(numQubits int) error {
	cr, err := register.Zeros(numQubits)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	reg, err := register.New(cr, register.WithSource(qc.source))
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	qc.reg = reg
	qc.result = register.ClassicalRegister{}
	qc.log.Info().Int("qubits", numQubits).Msg("resized")
	return nil
}

// String renders the state in Dirac notation.
func (qc *QuantumComputer) String() string {
	return qc.reg.String()
}
