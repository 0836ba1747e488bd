package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"qreg/computer"
	"qreg/internal/config"
	"qreg/register"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusMenu
	focusInputAngle
	focusSelectControl
	focusSelectTarget
)

// Model represents the TUI application state.
type Model struct {
	qc      *computer.QuantumComputer
	shots   int
	log     zerolog.Logger
	history []step
	hist    *register.Histogram

	cursorQubit int // 1-based, like the register
	width       int
	height      int
	focus       focus
	help        help.Model
	statusMsg   string
	statusErr   bool

	// Menu state
	menuCat  int
	menuItem int

	// Pending gate state
	pendingGate string
	params      []float64
	controls    []int // extra controls chosen for CCX
	targetQubit int
	angleInput  textinput.Model
}

func newModel(cfg *config.Config, log zerolog.Logger) (Model, error) {
	src := register.DefaultSource()
	if cfg.Seed != 0 {
		src = register.NewSeededSource(cfg.Seed)
	}

	qc, err := computer.New(cfg.Qubits, computer.WithLogger(log), computer.WithSource(src))
	if err != nil {
		return Model{}, err
	}

	ti := textinput.New()
	ti.Placeholder = "pi/2"
	ti.CharLimit = 32
	ti.Width = 20

	return Model{
		qc:          qc,
		shots:       cfg.Shots,
		log:         log,
		cursorQubit: 1,
		focus:       focusCircuit,
		help:        help.New(),
		angleInput:  ti,
	}, nil
}

func (m *Model) setStatus(format string, args ...any) {
	m.statusMsg = fmt.Sprintf(format, args...)
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.log.Debug().Err(err).Msg("action failed")
	m.statusMsg = err.Error()
	m.statusErr = true
}

// clearPending drops any half-entered gate.
func (m *Model) clearPending() {
	m.pendingGate = ""
	m.params = nil
	m.controls = nil
	m.angleInput.Reset()
	m.angleInput.Blur()
}

// applyGate runs the pending gate on qubits and records it in the history.
func (m *Model) applyGate(qubits []int) {
	gate, params := m.pendingGate, m.params
	m.clearPending()
	m.focus = focusCircuit

	if err := m.qc.ApplyGate(gate, qubits, params...); err != nil {
		m.setError(err)
		return
	}
	m.history = append(m.history, step{gate: gate, qubits: qubits, params: params})
	m.hist = nil
}

func (m *Model) measureAll() {
	out, err := m.qc.Measure()
	if err != nil {
		m.setError(err)
		return
	}
	qubits := make([]int, m.qc.Len())
	for i := range qubits {
		qubits[i] = i + 1
	}
	m.history = append(m.history, step{gate: actionMeasure, qubits: qubits, outcome: out.String()})
	m.setStatus("Measured |%s⟩", out)
}

func (m *Model) measureQubit(qubit int) {
	bit, err := m.qc.MeasureQubit(qubit)
	if err != nil {
		m.setError(err)
		return
	}
	m.history = append(m.history, step{gate: actionMeasureQubit, qubits: []int{qubit}, outcome: fmt.Sprint(bit)})
	m.hist = nil
	m.setStatus("q%d → %d", qubit, bit)
}

func (m *Model) sample() {
	h, err := m.qc.Run(m.shots)
	if err != nil {
		m.setError(err)
		return
	}
	m.hist = h
	m.setStatus("Sampled %d shots", h.Shots)
}

// resize swaps in a fresh register of n qubits, dropping the history.
func (m *Model) resize(n int) {
	if n < 1 || n > config.MaxUIQubits {
		return
	}
	if err := m.qc.Resize(n); err != nil {
		m.setError(err)
		return
	}
	m.history = nil
	m.hist = nil
	m.cursorQubit = min(m.cursorQubit, n)
}

func (m *Model) reset() {
	if err := m.qc.Reset(); err != nil {
		m.setError(err)
		return
	}
	m.history = nil
	m.hist = nil
	m.setStatus("Reset to |%0*d⟩", m.qc.Len(), 0)
}

// taken reports whether qubit is already part of the pending gate.
func (m *Model) taken(qubit int) bool {
	return qubit == m.cursorQubit || slices.Contains(m.controls, qubit)
}

// firstFree returns the lowest qubit not yet used by the pending gate.
func (m *Model) firstFree() int {
	for q := 1; q <= m.qc.Len(); q++ {
		if !m.taken(q) {
			return q
		}
	}
	return 0
}

// moveTarget steps the target selection by dir, skipping used qubits.
func (m *Model) moveTarget(dir int) {
	for next := m.targetQubit + dir; next >= 1 && next <= m.qc.Len(); next += dir {
		if !m.taken(next) {
			m.targetQubit = next
			return
		}
	}
}

// choose acts on the selected menu item.
func (m *Model) choose(item menuItem) {
	m.pendingGate = item.gateType
	m.focus = focusCircuit

	switch {
	case item.gateType == actionMeasure:
		m.clearPending()
		m.measureAll()
	case item.gateType == actionMeasureQubit:
		m.clearPending()
		m.measureQubit(m.cursorQubit)
	case item.gateType == actionSample:
		m.clearPending()
		m.sample()
	case item.needsParams:
		m.focus = focusInputAngle
		m.angleInput.Reset()
		m.angleInput.Focus()
	default:
		m.selectQubits()
	}
}

// selectQubits moves on to control/target selection, or applies the
// pending gate straight away when it acts on the cursor qubit alone.
func (m *Model) selectQubits() {
	qubits, _, _ := computer.Arity(m.pendingGate)
	if qubits > m.qc.Len() {
		m.setStatus("%s needs %d qubits", m.pendingGate, qubits)
		m.clearPending()
		return
	}
	switch qubits {
	case 1:
		m.applyGate([]int{m.cursorQubit})
	case 3:
		m.focus = focusSelectControl
		m.targetQubit = m.firstFree()
	default:
		m.focus = focusSelectTarget
		m.targetQubit = m.firstFree()
	}
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		m.statusMsg = ""

		switch m.focus {
		case focusCircuit:
			switch {
			case key.Matches(msg, keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, keys.Up):
				m.cursorQubit = max(m.cursorQubit-1, 1)
			case key.Matches(msg, keys.Down):
				m.cursorQubit = min(m.cursorQubit+1, m.qc.Len())
			case key.Matches(msg, keys.AddGate):
				m.focus = focusMenu
				m.menuCat = 0
				m.menuItem = 0
			case key.Matches(msg, keys.Measure):
				m.measureAll()
			case key.Matches(msg, keys.Sample):
				m.sample()
			case key.Matches(msg, keys.Reset):
				m.reset()
			case key.Matches(msg, keys.More):
				m.resize(m.qc.Len() + 1)
			case key.Matches(msg, keys.Fewer):
				m.resize(m.qc.Len() - 1)
			case key.Matches(msg, keys.Help):
				m.help.ShowAll = !m.help.ShowAll
			}

		case focusMenu:
			switch msg.String() {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(gateMenu[m.menuCat].items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(gateMenu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "enter":
				m.choose(gateMenu[m.menuCat].items[m.menuItem])
			}

		case focusInputAngle:
			switch msg.String() {
			case "esc":
				m.clearPending()
				m.focus = focusCircuit
			case "enter":
				angle, err := parseAngle(m.angleInput.Value())
				if err != nil {
					m.setError(fmt.Errorf("%w (use numbers or pi expressions, e.g. pi/2)", err))
					break
				}
				m.params = []float64{angle}
				m.angleInput.Blur()
				m.selectQubits()
			default:
				m.angleInput, cmd = m.angleInput.Update(msg)
			}

		case focusSelectControl, focusSelectTarget:
			switch msg.String() {
			case "esc":
				m.clearPending()
				m.focus = focusCircuit
			case "up", "k":
				m.moveTarget(-1)
			case "down", "j":
				m.moveTarget(1)
			case "enter":
				if m.focus == focusSelectControl {
					m.controls = append(m.controls, m.targetQubit)
					m.focus = focusSelectTarget
					m.targetQubit = m.firstFree()
					break
				}
				qubits := append([]int{m.cursorQubit}, m.controls...)
				m.applyGate(append(qubits, m.targetQubit))
			}
		}
	}

	return m, cmd
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	stateWidth := m.width * 2 / 5
	circuitWidth := m.width - stateWidth - 4
	controlsHeight := 3
	if m.help.ShowAll {
		controlsHeight = 6
	}
	panelHeight := max(m.height-controlsHeight-4, 6)

	circuitPanel := m.renderCircuitPanel(circuitWidth, panelHeight)

	var right string
	switch m.focus {
	case focusMenu:
		right = lipgloss.Place(stateWidth, panelHeight, lipgloss.Center, lipgloss.Center, m.renderMenu())
	case focusInputAngle:
		right = lipgloss.Place(stateWidth, panelHeight, lipgloss.Center, lipgloss.Center, m.renderAngleInput())
	default:
		right = m.renderStatePanel(stateWidth, panelHeight)
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, right)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}
