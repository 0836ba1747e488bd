package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	AddGate key.Binding
	Measure key.Binding
	Sample  key.Binding
	Reset   key.Binding
	More    key.Binding
	Fewer   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "qubit up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "qubit down"),
	),
	AddGate: key.NewBinding(
		key.WithKeys("a", "enter"),
		key.WithHelp("a", "add gate"),
	),
	Measure: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "measure"),
	),
	Sample: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sample"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("^R", "reset"),
	),
	More: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "add qubit"),
	),
	Fewer: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "remove qubit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddGate, k.Measure, k.Sample, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.More, k.Fewer},
		{k.AddGate, k.Measure, k.Sample},
		{k.Reset, k.Help, k.Quit},
	}
}
