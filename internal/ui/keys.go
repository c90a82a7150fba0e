package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding

	// View switching
	ViewCalculator key.Binding
	ViewCountdown  key.Binding
	ViewStopwatch  key.Binding

	// Calculator
	OpAdd      key.Binding
	OpSubtract key.Binding
	OpMultiply key.Binding
	OpDivide   key.Binding
	Apply      key.Binding
	ClearCalc  key.Binding

	// Timers
	Start     key.Binding
	Pause     key.Binding
	StopTimer key.Binding
	Reset     key.Binding
	Lap       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next view"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous view"),
		),

		ViewCalculator: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "calculator"),
		),
		ViewCountdown: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "countdown"),
		),
		ViewStopwatch: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "stopwatch"),
		),

		OpAdd: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "add"),
		),
		OpSubtract: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "subtract"),
		),
		OpMultiply: key.NewBinding(
			key.WithKeys("*"),
			key.WithHelp("*", "multiply"),
		),
		OpDivide: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "divide"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add operand"),
		),
		ClearCalc: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),

		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		StopTimer: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		Lap: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "lap"),
		),
	}
}
