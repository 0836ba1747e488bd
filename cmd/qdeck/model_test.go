package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qreg/internal/config"
	"qreg/register"
)

func newTestModel(t *testing.T, qubits int) Model {
	t.Helper()
	cfg := &config.Config{Qubits: qubits, Shots: 200, Seed: 7, LogLevel: "info"}
	m, err := newModel(cfg, zerolog.Nop())
	require.NoError(t, err)
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestBellFromKeys(t *testing.T) {
	m := newTestModel(t, 2)

	// Hadamard on q1.
	m = press(t, m, runes("a"), enter)
	require.Len(t, m.history, 1)
	assert.Equal(t, "H q1", m.history[0].String())

	// CNOT q1 → q2 from the Multi Qubit tab.
	m = press(t, m, runes("a"), right, right, enter)
	assert.Equal(t, focusSelectTarget, m.focus)
	assert.Equal(t, 2, m.targetQubit)
	m = press(t, m, enter)

	require.Len(t, m.history, 2)
	assert.Equal(t, []int{1, 2}, m.history[1].qubits)
	assert.Equal(t, focusCircuit, m.focus)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.5}, m.qc.Register().Probabilities(), 1e-12)

	m = press(t, m, runes("s"))
	require.NotNil(t, m.hist)
	assert.Equal(t, 200, m.hist.Shots)
	for _, o := range m.hist.Outcomes() {
		assert.Contains(t, []uint64{0, 3}, o)
	}

	m = press(t, m, runes("m"))
	require.Len(t, m.history, 3)
	out := m.history[2].outcome
	assert.Contains(t, []string{"00", "11"}, out)
	assert.Equal(t, register.StatusMeasured, m.qc.Status())
}

func TestRotationPrompt(t *testing.T) {
	m := newTestModel(t, 2)
	m = press(t, m, down, runes("a"), right, enter)
	require.Equal(t, focusInputAngle, m.focus)
	assert.Equal(t, "RX", m.pendingGate)

	m = press(t, m, runes("n"), runes("o"), enter)
	assert.Equal(t, focusInputAngle, m.focus)
	assert.True(t, m.statusErr)

	m.angleInput.SetValue("pi")
	m = press(t, m, enter)
	assert.Equal(t, focusCircuit, m.focus)
	require.Len(t, m.history, 1)
	assert.Equal(t, "RX(pi) q2", m.history[0].String())

	probs := m.qc.Register().QubitProbabilities()
	assert.InDelta(t, 0, probs[0].Prob1, 1e-12)
	assert.InDelta(t, 1, probs[1].Prob1, 1e-12)
}

func TestToffoliSelection(t *testing.T) {
	m := newTestModel(t, 3)
	m = press(t, m, runes("a"), right, right)
	for i := 0; i < 4; i++ {
		m = press(t, m, down)
	}
	m = press(t, m, enter)
	require.Equal(t, focusSelectControl, m.focus)
	assert.Equal(t, "CCX", m.pendingGate)
	assert.Equal(t, 2, m.targetQubit)

	m = press(t, m, enter)
	require.Equal(t, focusSelectTarget, m.focus)
	assert.Equal(t, 3, m.targetQubit, "used qubits are skipped")

	m = press(t, m, enter)
	require.Len(t, m.history, 1)
	assert.Equal(t, "CCX q1,q2,q3", m.history[0].String())
}

func TestToffoliNeedsThreeQubits(t *testing.T) {
	m := newTestModel(t, 2)
	m = press(t, m, runes("a"), right, right)
	for i := 0; i < 4; i++ {
		m = press(t, m, down)
	}
	m = press(t, m, enter)

	assert.Equal(t, focusCircuit, m.focus)
	assert.Empty(t, m.history)
	assert.Contains(t, m.statusMsg, "needs 3 qubits")
}

func TestEscapeCancels(t *testing.T) {
	m := newTestModel(t, 2)
	m = press(t, m, runes("a"), right, right, enter, esc)
	assert.Equal(t, focusCircuit, m.focus)
	assert.Empty(t, m.pendingGate)
	assert.Empty(t, m.history)
}

func TestResizeAndReset(t *testing.T) {
	m := newTestModel(t, 2)
	m = press(t, m, runes("a"), enter, runes("+"))
	assert.Equal(t, 3, m.qc.Len())
	assert.Empty(t, m.history)

	for i := 0; i < 5; i++ {
		m = press(t, m, runes("-"))
	}
	assert.Equal(t, 1, m.qc.Len())
	assert.Equal(t, 1, m.cursorQubit)

	m = press(t, m, runes("a"), enter, runes("s"))
	require.NotNil(t, m.hist)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Empty(t, m.history)
	assert.Nil(t, m.hist)
	assert.Equal(t, register.StatusInitialized, m.qc.Status())
}

func TestMeasureQubitFromMenu(t *testing.T) {
	m := newTestModel(t, 2)
	m = press(t, m, runes("a"), right, right, right, down, enter)
	require.Len(t, m.history, 1)
	assert.Equal(t, "M q1 → 0", m.history[0].String())
}

func TestView(t *testing.T) {
	m := newTestModel(t, 2)
	assert.Equal(t, "Loading...", m.View())

	m = press(t, m, tea.WindowSizeMsg{Width: 140, Height: 40}, runes("a"), enter)
	view := m.View()
	assert.Contains(t, view, "Gate History")
	assert.Contains(t, view, "State")
	assert.Contains(t, view, "|00⟩")
	assert.Contains(t, view, "|10⟩")

	m = press(t, m, runes("a"))
	assert.True(t, strings.Contains(m.View(), "Add Gate at q1"))
}
