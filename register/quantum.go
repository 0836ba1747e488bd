package register

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// MaxQubits caps the register size; 2^24 amplitudes already take 256 MiB.
const MaxQubits = 24

// Status is the lifecycle stage of a QuantumRegister.
type Status int

const (
	StatusInitialized Status = iota
	StatusEvolving
	StatusMeasured
)

func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusEvolving:
		return "evolving"
	case StatusMeasured:
		return "measured"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// QuantumRegister holds the dense amplitude vector of an n-qubit system.
//
// Qubits are numbered from 1 and qubit q is bit q of the basis index read
// as an n-bit pattern, so qubit 1 is the most significant bit. This matches
// the bit positions of ClassicalRegister.
//
// A QuantumRegister is not safe for concurrent use.
type QuantumRegister struct {
	amplitudes []Amplitude
	numQubits  int
	status     Status
	outcome    ClassicalRegister
	source     Source
}

// Option configures a QuantumRegister at construction.
type Option func(*QuantumRegister)

// WithSource sets the random source used by measurement and sampling.
func WithSource(src Source) Option {
	return func(q *QuantumRegister) {
		if src != nil {
			q.source = src
		}
	}
}

// New prepares the basis state |cr.Value()⟩ on cr.Width() qubits.
func New(cr ClassicalRegister, opts ...Option) (*QuantumRegister, error) {
	n := cr.Width()
	if n < 1 {
		return nil, fmt.Errorf("%w: classical register has no bits", ErrInvalidInput)
	}
	if n > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits exceeds the limit of %d", ErrInvalidInput, n, MaxQubits)
	}

	amps := make([]Amplitude, 1<<uint(n))
	amps[cr.Value()] = 1

	q := &QuantumRegister{
		amplitudes: amps,
		numQubits:  n,
		status:     StatusInitialized,
		source:     DefaultSource(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q, nil
}

// Len returns the number of qubits.
func (q *QuantumRegister) Len() int { return q.numQubits }

func (q *QuantumRegister) Status() Status { return q.status }

// Amplitudes returns a copy of the amplitude vector.
func (q *QuantumRegister) Amplitudes() []Amplitude {
	out := make([]Amplitude, len(q.amplitudes))
	copy(out, q.amplitudes)
	return out
}

// Amplitude returns the coefficient of basis state index.
func (q *QuantumRegister) Amplitude(index uint64) (Amplitude, error) {
	if index >= uint64(len(q.amplitudes)) {
		return 0, fmt.Errorf("%w: basis index %d outside [0, %d)", ErrIndexOutOfRange, index, len(q.amplitudes))
	}
	return q.amplitudes[index], nil
}

// Probabilities returns |aᵢ|² for every basis state.
func (q *QuantumRegister) Probabilities() []float64 {
	probs := make([]float64, len(q.amplitudes))
	for i, a := range q.amplitudes {
		probs[i] = a.NormSqr()
	}
	return probs
}

// Norm returns the total probability mass, which is 1 for a valid state.
func (q *QuantumRegister) Norm() float64 {
	return floats.Sum(q.Probabilities())
}

// Clone returns an independent copy that shares the random source.
func (q *QuantumRegister) Clone() *QuantumRegister {
	c := *q
	c.amplitudes = q.Amplitudes()
	return &c
}

// QubitProbability is the marginal distribution of one qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the marginals of qubits 1..n, in order.
func (q *QuantumRegister) QubitProbabilities() []QubitProbability {
	probs := make([]QubitProbability, q.numQubits)
	for i, a := range q.amplitudes {
		p := a.NormSqr()
		for k := range probs {
			if uint64(i)&q.mask(k+1) != 0 {
				probs[k].Prob1 += p
			} else {
				probs[k].Prob0 += p
			}
		}
	}
	return probs
}

// Term is one basis state of the superposition.
type Term struct {
	Index       uint64
	Bits        string
	Amplitude   Amplitude
	Probability float64
	Phase       float64
	Weight      int // number of qubits in |1⟩
}

// Terms lists the basis states whose probability exceeds threshold.
func (q *QuantumRegister) Terms(threshold float64) []Term {
	terms := make([]Term, 0)
	for i, a := range q.amplitudes {
		p := a.NormSqr()
		if p <= threshold {
			continue
		}
		idx := uint64(i)
		terms = append(terms, Term{
			Index:       idx,
			Bits:        q.pattern(idx),
			Amplitude:   a,
			Probability: p,
			Phase:       a.Phase(),
			Weight:      bits.OnesCount64(idx),
		})
	}
	return terms
}

// String renders the state in Dirac notation, omitting negligible terms.
func (q *QuantumRegister) String() string {
	terms := q.Terms(1e-12)
	if len(terms) == 0 {
		return "0"
	}
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = fmt.Sprintf("(%s)|%s⟩", t.Amplitude, t.Bits)
	}
	return strings.Join(parts, " + ")
}

// mask returns the basis-index bit of the 1-based qubit.
func (q *QuantumRegister) mask(qubit int) uint64 {
	return uint64(1) << uint(q.numQubits-qubit)
}

func (q *QuantumRegister) pattern(index uint64) string {
	return fmt.Sprintf("%0*b", q.numQubits, index)
}

func (q *QuantumRegister) checkQubit(qubit int) error {
	if qubit < 1 || qubit > q.numQubits {
		return fmt.Errorf("%w: qubit %d outside [1, %d]", ErrIndexOutOfRange, qubit, q.numQubits)
	}
	return nil
}

// checkQubits validates every index and rejects repeats.
func (q *QuantumRegister) checkQubits(qubits ...int) error {
	for i, a := range qubits {
		if err := q.checkQubit(a); err != nil {
			return err
		}
		for _, b := range qubits[:i] {
			if a == b {
				return fmt.Errorf("%w: qubit %d used more than once", ErrInvalidGateArguments, a)
			}
		}
	}
	return nil
}

// deviation reports how far the total probability has drifted from 1.
func deviation(total float64) float64 {
	return math.Abs(total - 1)
}
