package register

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NormTolerance is the largest drift of the total probability from 1 that
// measurement silently renormalizes.
const NormTolerance = 1e-6

// Measure samples a basis state with probability |aᵢ|² and collapses the
// register onto it. Once the register is measured, further calls return the
// same outcome without drawing randomness until a gate is applied.
func (q *QuantumRegister) Measure() (ClassicalRegister, error) {
	if q.status == StatusMeasured {
		return q.outcome, nil
	}

	probs, err := q.distribution()
	if err != nil {
		return ClassicalRegister{}, err
	}

	index := pick(probs, q.source.Float64())
	outcome, err := FromValue(q.numQubits, index)
	if err != nil {
		return ClassicalRegister{}, err
	}

	clear(q.amplitudes)
	q.amplitudes[index] = 1
	q.status = StatusMeasured
	q.outcome = outcome
	return outcome, nil
}

// MeasureQubit projects a single qubit onto |0⟩ or |1⟩ and renormalizes the
// rest of the state. The register stays in StatusEvolving since other qubits
// may still be in superposition.
func (q *QuantumRegister) MeasureQubit(qubit int) (int, error) {
	if err := q.checkQubit(qubit); err != nil {
		return 0, err
	}

	mask := q.mask(qubit)
	var p0, p1 float64
	for i, a := range q.amplitudes {
		if uint64(i)&mask != 0 {
			p1 += a.NormSqr()
		} else {
			p0 += a.NormSqr()
		}
	}
	total := p0 + p1
	if deviation(total) > NormTolerance {
		return 0, fmt.Errorf("%w: total probability %.9g", ErrNormalization, total)
	}

	// A branch with no mass is never chosen, whatever the draw.
	bit, kept := 0, p0
	if r := q.source.Float64(); p1 > 0 && (p0 == 0 || r*total >= p0) {
		bit, kept = 1, p1
	}

	scale := 1 / math.Sqrt(kept)
	for i := range q.amplitudes {
		if (uint64(i)&mask != 0) == (bit == 1) {
			q.amplitudes[i] = q.amplitudes[i].Scale(scale)
		} else {
			q.amplitudes[i] = 0
		}
	}
	q.evolve()
	return bit, nil
}

// Sample draws shots outcomes from the current distribution without
// collapsing the register.
func (q *QuantumRegister) Sample(shots int) (*Histogram, error) {
	if shots < 1 {
		return nil, fmt.Errorf("%w: shots must be positive, got %d", ErrInvalidInput, shots)
	}

	probs, err := q.distribution()
	if err != nil {
		return nil, err
	}

	h := NewHistogram(q.numQubits)
	for i := 0; i < shots; i++ {
		h.Add(pick(probs, q.source.Float64()))
	}
	return h, nil
}

// distribution returns the renormalized probabilities, or ErrNormalization
// when the state has drifted past NormTolerance.
func (q *QuantumRegister) distribution() ([]float64, error) {
	probs := q.Probabilities()
	total := floats.Sum(probs)
	if deviation(total) > NormTolerance {
		return nil, fmt.Errorf("%w: total probability %.9g", ErrNormalization, total)
	}
	floats.Scale(1/total, probs)
	return probs, nil
}

// pick returns the first index whose cumulative probability exceeds r.
// Zero-probability indices are never returned.
func pick(probs []float64, r float64) uint64 {
	var cum float64
	last := -1
	for i, p := range probs {
		if p == 0 {
			continue
		}
		last = i
		cum += p
		if r < cum {
			return uint64(i)
		}
	}
	if last < 0 {
		return 0
	}
	return uint64(last)
}

// Histogram counts measurement outcomes of a fixed width.
type Histogram struct {
	Width  int
	Shots  int
	Counts map[uint64]int
}

// NewHistogram returns an empty histogram for outcomes of the given width.
func NewHistogram(width int) *Histogram {
	return &Histogram{Width: width, Counts: make(map[uint64]int)}
}

// Add records one shot with the given outcome.
func (h *Histogram) Add(outcome uint64) {
	h.Counts[outcome]++
	h.Shots++
}

// Frequency returns the observed fraction of shots equal to outcome.
func (h *Histogram) Frequency(outcome uint64) float64 {
	if h.Shots == 0 {
		return 0
	}
	return float64(h.Counts[outcome]) / float64(h.Shots)
}

// Outcomes returns the observed outcomes in ascending order.
func (h *Histogram) Outcomes() []uint64 {
	out := make([]uint64, 0, len(h.Counts))
	for k := range h.Counts {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Label formats an outcome as a bit pattern of the histogram's width.
func (h *Histogram) Label(outcome uint64) string {
	return fmt.Sprintf("%0*b", h.Width, outcome)
}
