package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/deskset/internal/calc"
	"github.com/five82/deskset/internal/prefs"
	"github.com/five82/deskset/internal/timer"
)

// View represents the current active view.
type View int

const (
	ViewCalculator View = iota
	ViewCountdown
	ViewStopwatch
)

var viewNames = map[View]string{
	ViewCalculator: "calculator",
	ViewCountdown:  "countdown",
	ViewStopwatch:  "stopwatch",
}

func viewByName(name string) View {
	for v, n := range viewNames {
		if n == name {
			return v
		}
	}
	return ViewCalculator
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Calculator *calc.Calculator
	Countdown  *timer.Countdown
	Stopwatch  *timer.Stopwatch
	ThemeName  string
	StartTab   string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	calculator *calc.Calculator
	countdown  *timer.Countdown
	stopwatch  *timer.Stopwatch
	prefsPath  string

	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	showHelp    bool

	// Calculator operand entry
	input textinput.Model

	// Latest committed snapshots
	calcState calc.State
	cdState   timer.CountdownState
	swState   timer.StopwatchState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	input := textinput.New()
	input.Placeholder = "operand"
	input.CharLimit = 24
	input.Width = 16
	input.Focus()

	return Model{
		calculator:  opts.Calculator,
		countdown:   opts.Countdown,
		stopwatch:   opts.Stopwatch,
		prefsPath:   opts.PrefsPath,
		theme:       GetTheme(opts.ThemeName),
		keys:        DefaultKeyMap(),
		currentView: viewByName(opts.StartTab),
		input:       input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		fetchCalcCmd(m.calculator),
		fetchCountdownCmd(m.countdown),
		fetchStopwatchCmd(m.stopwatch),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case calcMsg:
		m.calcState = calc.State(msg)
		return m, nil

	case countdownMsg:
		m.cdState = timer.CountdownState(msg)
		return m, nil

	case stopwatchMsg:
		m.swState = timer.StopwatchState(msg)
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Digits belong to the operand buffer on the calculator tab, so the
	// numeric view-switch keys apply only elsewhere; calculator view
	// switching is tab/shift+tab.
	if m.currentView == ViewCalculator && allowedOperandKey(msg) {
		return m.handleCalculatorKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.switchView((m.currentView + 1) % 3), nil

	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchView((m.currentView + 2) % 3), nil

	case key.Matches(msg, m.keys.ViewCalculator):
		return m.switchView(ViewCalculator), nil

	case key.Matches(msg, m.keys.ViewCountdown):
		return m.switchView(ViewCountdown), nil

	case key.Matches(msg, m.keys.ViewStopwatch):
		return m.switchView(ViewStopwatch), nil
	}

	switch m.currentView {
	case ViewCalculator:
		return m.handleCalculatorKey(msg)
	case ViewCountdown:
		return m.handleCountdownKey(msg)
	case ViewStopwatch:
		return m.handleStopwatchKey(msg)
	}
	return m, nil
}

func (m Model) handleCalculatorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	operand, hasOperand := m.parseOperand()

	switch {
	case key.Matches(msg, m.keys.OpAdd):
		if hasOperand {
			m.calculator.Add(operand)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.OpSubtract):
		// A leading "-" with an empty buffer is a sign, not an operator.
		if m.input.Value() == "" {
			break
		}
		if hasOperand {
			m.calculator.Subtract(operand)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.OpMultiply):
		if hasOperand {
			m.calculator.Multiply(operand)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.OpDivide):
		if hasOperand {
			m.calculator.Divide(operand)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		if hasOperand {
			m.calculator.Add(operand)
			m.input.Reset()
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearCalc):
		m.calculator.Clear(0)
		m.input.Reset()
		return m, nil
	}

	if !allowedOperandKey(msg) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleCountdownKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.countdown.Start()
	case key.Matches(msg, m.keys.Pause):
		m.countdown.Pause()
	case key.Matches(msg, m.keys.StopTimer):
		m.countdown.Stop()
	case key.Matches(msg, m.keys.Reset):
		m.countdown.Reset()
	}
	return m, nil
}

func (m Model) handleStopwatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.stopwatch.Start()
	case key.Matches(msg, m.keys.Pause):
		m.stopwatch.Pause()
	case key.Matches(msg, m.keys.StopTimer):
		m.stopwatch.Stop()
	case key.Matches(msg, m.keys.Reset):
		m.stopwatch.Reset()
	case key.Matches(msg, m.keys.Lap):
		m.stopwatch.Lap()
	}
	return m, nil
}

func (m Model) switchView(v View) Model {
	m.currentView = v
	m.savePrefs()
	return m
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	_ = prefs.Save(m.prefsPath, prefs.Prefs{
		Theme: m.theme.Name,
		Tab:   viewNames[m.currentView],
	})
}

func (m Model) parseOperand() (float64, bool) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// allowedOperandKey limits the calculator buffer to numeric input plus the
// usual editing keys; everything else stays available as a command key.
func allowedOperandKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyCtrlU:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '.' && r != '-' {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Messages

type calcMsg calc.State

type countdownMsg timer.CountdownState

type stopwatchMsg timer.StopwatchState

// Commands

func fetchCalcCmd(c *calc.Calculator) tea.Cmd {
	return func() tea.Msg { return calcMsg(c.State()) }
}

func fetchCountdownCmd(cd *timer.Countdown) tea.Cmd {
	return func() tea.Msg { return countdownMsg(cd.State()) }
}

func fetchStopwatchCmd(sw *timer.Stopwatch) tea.Cmd {
	return func() tea.Msg { return stopwatchMsg(sw.State()) }
}

// Run starts the Bubble Tea program and subscribes it to every utility so a
// commit anywhere re-renders the screen.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	opts.Calculator.Subscribe(func(s calc.State) { p.Send(calcMsg(s)) })
	opts.Countdown.Subscribe(func(s timer.CountdownState) { p.Send(countdownMsg(s)) })
	opts.Stopwatch.Subscribe(func(s timer.StopwatchState) { p.Send(stopwatchMsg(s)) })

	_, err := p.Run()
	return err
}
