package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"qreg/register"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// gateDisplayName returns a short display name for a gate type.
func gateDisplayName(gateType string) string {
	switch gateType {
	case actionMeasure, actionMeasureQubit:
		return "M"
	case "SDG":
		return "S†"
	case "TDG":
		return "T†"
	default:
		return gateType
	}
}

// controlSymbol returns the wire symbol for a control qubit.
func controlSymbol(gateType string) string {
	if gateType == "SWAP" {
		return "×"
	}
	return "●"
}

// targetSymbol returns the wire symbol for the target qubit of a
// multi-qubit gate.
func targetSymbol(gateType string) string {
	switch gateType {
	case "CZ":
		return "●"
	case "SWAP":
		return "×"
	case "CH":
		return "H"
	default:
		return "⊕"
	}
}

// bar renders p ∈ [0,1] as a horizontal bar of the given width.
func bar(p float64, width int) string {
	filled := int(math.Round(p * float64(width)))
	filled = min(max(filled, 0), width)
	return barFillStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// ──────────────────────────── Cell rendering ────────────────────────────

type cellHighlight int

const (
	hlNone cellHighlight = iota
	hlCursor
	hlTargetSelect
)

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo, hl cellHighlight) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)

	// The cursor column is always empty: it is where the next gate goes.
	if hl == hlCursor || hl == hlTargetSelect {
		bdr := cursorBoxStyle
		if hl == hlTargetSelect {
			bdr = targetSelectStyle
		}
		innerW := cellW - 2
		top = bdr.Render("╔" + strings.Repeat("═", innerW) + "╗")
		mid = bdr.Render("║") + strings.Repeat("─", innerW) + bdr.Render("║")
		bot = bdr.Render("╚" + strings.Repeat("═", innerW) + "╝")
		return
	}

	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1
	wire := func(sym string) string {
		return strings.Repeat("─", dashL) + gateStyle.Render(sym) + strings.Repeat("─", dashR)
	}

	top, bot = emptyRow, emptyRow
	if info.vertAbove {
		top = vertRow
	}
	if info.vertBelow {
		bot = vertRow
	}

	switch {
	case info.passThrough:
		mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
	case info.step == nil:
		mid = strings.Repeat("─", cellW)
	case info.isControl:
		mid = wire(controlSymbol(info.step.gate))
	case info.isTarget:
		mid = wire(targetSymbol(info.step.gate))
	default:
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		name := padCenter(gateDisplayName(info.step.gate), gateNameW)
		top = strings.Repeat(" ", margin) + gateStyle.Render("┌"+strings.Repeat("─", gateNameW)+"┐") + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + gateStyle.Render("┤"+name+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + gateStyle.Render("└"+strings.Repeat("─", gateNameW)+"┘") + strings.Repeat(" ", rightMargin)
	}
	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel draws the gate history as a circuit, one column per
// step, with the cursor in the column after the last step.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Gate History"))
	sb.WriteString("\n\n")

	availWidth := width - labelVisualW - 4
	maxCols := max(availWidth/cellW, 1)

	cursorCol := len(m.history)
	startCol := 0
	if cursorCol >= maxCols {
		startCol = cursorCol - maxCols + 1
	}
	if startCol > 0 {
		fmt.Fprintf(&sb, "  ◀ showing steps %d–%d\n", startCol+1, cursorCol+1)
	}

	header := strings.Repeat(" ", labelVisualW)
	for col := startCol; col <= cursorCol; col++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", col+1), cellW))
	}
	sb.WriteString(header + "\n")

	selecting := m.focus == focusSelectTarget || m.focus == focusSelectControl
	for qubit := 1; qubit <= m.qc.Len(); qubit++ {
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q%d", qubit))) + "──"
		botLine := strings.Repeat(" ", labelVisualW)

		for col := startCol; col <= cursorCol; col++ {
			var info cellInfo
			hl := hlNone
			if col < cursorCol {
				info = cellAt(&m.history[col], qubit)
			} else if qubit == m.cursorQubit || slices.Contains(m.controls, qubit) {
				hl = hlCursor
			} else if selecting && qubit == m.targetQubit {
				hl = hlTargetSelect
			}

			top, mid, bot := renderCell(info, hl)
			topLine += top
			midLine += mid
			botLine += bot
		}

		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	// Classical wire with the read-out of each measurement step.
	cbitLine := cbitLabelStyle.Render(fmt.Sprintf("%-5s", "c")) + cbitWireStyle.Render("══")
	for col := startCol; col <= cursorCol; col++ {
		if col < cursorCol && m.history[col].outcome != "" {
			cbitLine += cbitLabelStyle.Render(padCenter(m.history[col].outcome, cellW))
		} else {
			cbitLine += cbitWireStyle.Render(strings.Repeat("═", cellW))
		}
	}
	sb.WriteString(cbitLine + "\n")

	switch m.focus {
	case focusSelectControl:
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(m.pendingGate))
		sb.WriteString("  Select second control: ")
		sb.WriteString(targetSelectStyle.Render(fmt.Sprintf("q%d", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	case focusSelectTarget:
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "  %s", activeGateStyle.Render(m.pendingGate))
		sb.WriteString("  Select target qubit: ")
		sb.WriteString(targetSelectStyle.Render(fmt.Sprintf("q%d", m.targetQubit)))
		sb.WriteString(dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	default:
		fmt.Fprintf(&sb, "\n  Qubit %d of %d  │  %d step(s)", m.cursorQubit, m.qc.Len(), len(m.history))
		if n := len(m.history); n > 0 {
			fmt.Fprintf(&sb, "  │  last: %s", m.history[n-1])
		}
	}
	if m.statusMsg != "" {
		style := activeGateStyle
		if m.statusErr {
			style = errorStyle
		}
		fmt.Fprintf(&sb, "\n  %s", style.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel shows the amplitudes in Dirac form with probability
// bars, the per-qubit marginals and the latest histogram.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	reg := m.qc.Register()
	sb.WriteString(titleStyle.Render("State"))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  %s", reg.Status())))
	sb.WriteString("\n\n")

	terms := reg.Terms(1e-9)
	limit := max(height/3, 4)
	for i, t := range terms {
		if i == limit {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("… %d more terms", len(terms)-limit)))
			sb.WriteString("\n")
			break
		}
		fmt.Fprintf(&sb, "%s  %s  %s %5.1f%%\n",
			qubitLabelStyle.Render("|"+t.Bits+"⟩"),
			fmt.Sprintf("%16s", t.Amplitude),
			bar(t.Probability, barW),
			100*t.Probability)
	}

	sb.WriteString("\n")
	sb.WriteString(activeGateStyle.Render("P(1) per qubit"))
	sb.WriteString("\n")
	for i, p := range reg.QubitProbabilities() {
		fmt.Fprintf(&sb, "q%-3d %s %.3f\n", i+1, bar(p.Prob1, barW), p.Prob1)
	}

	if res, ok := m.qc.Result(); ok {
		sb.WriteString("\n")
		sb.WriteString(activeGateStyle.Render("Last measurement: "))
		sb.WriteString(cbitLabelStyle.Render(res.String()))
		fmt.Fprintf(&sb, " (%d)\n", res.Value())
	}

	if m.hist != nil {
		sb.WriteString("\n")
		sb.WriteString(renderHistogram(m.hist))
	}

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderHistogram lists sampled outcomes with their observed frequency.
func renderHistogram(h *register.Histogram) string {
	var sb strings.Builder
	sb.WriteString(activeGateStyle.Render(fmt.Sprintf("Histogram (%d shots)", h.Shots)))
	sb.WriteString("\n")
	for _, o := range h.Outcomes() {
		f := h.Frequency(o)
		fmt.Fprintf(&sb, "%s %s %6d  %5.1f%%\n", cbitLabelStyle.Render(h.Label(o)), bar(f, barW), h.Counts[o], 100*f)
	}
	return sb.String()
}

// renderControlsPanel renders the bottom help bar.
func (m Model) renderControlsPanel(width, height int) string {
	return controlsStyle.Width(width).Height(height).Render(m.help.View(keys))
}

// renderAngleInput renders the angle prompt.
func (m Model) renderAngleInput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("%s angle", m.pendingGate)))
	sb.WriteString("\n\n")
	sb.WriteString(m.angleInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(dimStyle.Render("Examples: pi/2, -3*pi/4, 1.57"))
	return menuBorderStyle.Render(sb.String())
}
