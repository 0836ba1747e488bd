package register

import "math/rand/v2"

// Source produces uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource returns a Source backed by the process-wide generator.
func DefaultSource() Source {
	return globalSource{}
}

// NewSeededSource returns a reproducible PCG stream for the given seed.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SequenceSource replays a fixed list of values, wrapping around at the end.
type SequenceSource struct {
	values []float64
	next   int
}

// NewSequenceSource panics if values is empty or any value lies outside [0, 1).
func NewSequenceSource(values ...float64) *SequenceSource {
	if len(values) == 0 {
		panic("register: empty sequence source")
	}
	for _, v := range values {
		if v < 0 || v >= 1 {
			panic("register: sequence value outside [0, 1)")
		}
	}
	return &SequenceSource{values: append([]float64(nil), values...)}
}

func (s *SequenceSource) Float64() float64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}
