package main

import (
	"fmt"
	"strings"
)

// step is one entry of the session history, drawn as a column of the
// circuit panel. For gates qubits lists the controls first and the target
// last.
type step struct {
	gate    string
	qubits  []int
	params  []float64
	outcome string // measurement read-out, empty for gates
}

func (s step) isMeasurement() bool {
	return s.gate == actionMeasure || s.gate == actionMeasureQubit
}

// String formats the step the way the history line shows it, e.g.
// "RX(pi/2) q1" or "CX q1,q2".
func (s step) String() string {
	var sb strings.Builder
	sb.WriteString(gateDisplayName(s.gate))
	if len(s.params) > 0 {
		parts := make([]string, len(s.params))
		for i, p := range s.params {
			parts[i] = formatAngle(p)
		}
		fmt.Fprintf(&sb, "(%s)", strings.Join(parts, ","))
	}
	qs := make([]string, len(s.qubits))
	for i, q := range s.qubits {
		qs[i] = fmt.Sprintf("q%d", q)
	}
	sb.WriteString(" " + strings.Join(qs, ","))
	if s.outcome != "" {
		sb.WriteString(" → " + s.outcome)
	}
	return sb.String()
}

// cellInfo describes what occupies a single cell in the circuit grid.
type cellInfo struct {
	step        *step
	isControl   bool
	isTarget    bool
	vertAbove   bool
	vertBelow   bool
	passThrough bool
}

// cellAt returns rendering information for qubit within s.
func cellAt(s *step, qubit int) cellInfo {
	var info cellInfo
	if s == nil {
		return info
	}

	idx := -1
	for i, q := range s.qubits {
		if q == qubit {
			idx = i
			break
		}
	}

	if s.isMeasurement() || len(s.qubits) == 1 {
		if idx >= 0 {
			info.step = s
		}
		return info
	}

	if idx >= 0 {
		info.step = s
		info.isTarget = idx == len(s.qubits)-1
		info.isControl = !info.isTarget
	}

	minQ, maxQ := s.qubits[0], s.qubits[0]
	for _, q := range s.qubits[1:] {
		minQ = min(minQ, q)
		maxQ = max(maxQ, q)
	}
	if qubit >= minQ && qubit <= maxQ {
		info.vertAbove = qubit > minQ
		info.vertBelow = qubit < maxQ
		info.passThrough = idx < 0
	}
	return info
}
