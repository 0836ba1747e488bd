package main

import (
	"fmt"
	"strings"
)

// Actions in the Measurement tab that are not gates.
const (
	actionMeasure      = "MEASURE"
	actionMeasureQubit = "MEASURE_Q"
	actionSample       = "SAMPLE"
)

// menuItem represents a single choice in the gate picker.
type menuItem struct {
	name        string
	gateType    string
	symbol      string
	needsTarget bool
	needsParams bool
	example     string
}

// menuCategory groups related menu items under a tab.
type menuCategory struct {
	name  string
	items []menuItem
}

// gateMenu defines the gate picker categories and items. Every gateType
// outside the Measurement tab is a name computer.ApplyGate accepts.
var gateMenu = []menuCategory{
	{
		name: "Single Qubit",
		items: []menuItem{
			{name: "Hadamard", gateType: "H", symbol: "H"},
			{name: "Pauli-X (NOT)", gateType: "X", symbol: "X"},
			{name: "Pauli-Y", gateType: "Y", symbol: "Y"},
			{name: "Pauli-Z", gateType: "Z", symbol: "Z"},
			{name: "Identity", gateType: "I", symbol: "I"},
			{name: "Phase (S)", gateType: "S", symbol: "S"},
			{name: "Phase Dagger (S†)", gateType: "SDG", symbol: "S†"},
			{name: "T Gate", gateType: "T", symbol: "T"},
			{name: "T Dagger (T†)", gateType: "TDG", symbol: "T†"},
		},
	},
	{
		name: "Rotation",
		items: []menuItem{
			{name: "Rotate X", gateType: "RX", symbol: "RX", needsParams: true, example: "pi/2"},
			{name: "Rotate Y", gateType: "RY", symbol: "RY", needsParams: true, example: "pi/2"},
			{name: "Rotate Z", gateType: "RZ", symbol: "RZ", needsParams: true, example: "pi/2"},
			{name: "Phase Shift", gateType: "P", symbol: "P", needsParams: true, example: "pi/4"},
		},
	},
	{
		name: "Multi Qubit",
		items: []menuItem{
			{name: "CNOT", gateType: "CX", symbol: "●─⊕", needsTarget: true},
			{name: "Controlled-Z", gateType: "CZ", symbol: "●─●", needsTarget: true},
			{name: "Controlled-H", gateType: "CH", symbol: "●─H", needsTarget: true},
			{name: "SWAP", gateType: "SWAP", symbol: "×─×", needsTarget: true},
			{name: "Toffoli (CCX)", gateType: "CCX", symbol: "●─●─⊕", needsTarget: true},
		},
	},
	{
		name: "Measurement",
		items: []menuItem{
			{name: "Measure all", gateType: actionMeasure, symbol: "M"},
			{name: "Measure qubit", gateType: actionMeasureQubit, symbol: "M"},
			{name: "Sample", gateType: actionSample, symbol: "▁▃▅"},
		},
	},
}

// renderMenu renders the floating gate-picker popup.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Add Gate at q%d", m.cursorQubit)))
	sb.WriteString("\n")

	for i, cat := range gateMenu {
		name := " " + cat.name + " "
		if i == m.menuCat {
			sb.WriteString(activeGateStyle.Render(name))
		} else {
			sb.WriteString(dimStyle.Render(name))
		}
		if i < len(gateMenu)-1 {
			sb.WriteString(dimStyle.Render("│"))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(strings.Repeat("─", 42)))
	sb.WriteString("\n")

	cat := gateMenu[m.menuCat]
	for i, item := range cat.items {
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render(" ▸ "))
			sb.WriteString(menuSelectedStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(gateStyle.Render(item.symbol))
		} else {
			sb.WriteString("   ")
			sb.WriteString(menuNormalStyle.Render(fmt.Sprintf("%-18s", item.name)))
			sb.WriteString(dimStyle.Render(item.symbol))
		}
		if item.needsTarget {
			sb.WriteString(dimStyle.Render(" →target"))
		}
		if item.needsParams {
			sb.WriteString(dimStyle.Render(fmt.Sprintf(" (%s)", item.example)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" ↑↓ Select  ←→ Cat  ⏎ Ok  Esc ✕"))

	return menuBorderStyle.Render(sb.String())
}
