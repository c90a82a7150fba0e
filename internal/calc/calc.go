package calc

import (
	"strconv"
	"strings"

	"github.com/five82/deskset/internal/observe"
)

// Operator identifies a calculator operation. Initial marks the seed entry
// of the history and never appears past index zero.
type Operator int

const (
	Initial Operator = iota
	Add
	Subtract
	Multiply
	Divide
)

// Symbol returns the display glyph for the operator. Initial has none.
func (op Operator) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return ""
	}
}

// Entry is one step of the calculation history: the operator applied and its
// operand. The first entry carries Initial and the starting value.
type Entry struct {
	Operator Operator
	Value    float64
}

// State is the calculator snapshot. Value always equals the left-to-right
// reduction of History.
type State struct {
	Value   float64
	History []Entry
	Display string
}

// Calculator is an arithmetic accumulator. Every operation commits a fresh
// snapshot; subscribers see each one in turn.
type Calculator struct {
	value *observe.Value[State]
}

// New returns a calculator cleared to zero.
func New() *Calculator {
	return &Calculator{value: observe.New(cleared(0))}
}

// State returns the current snapshot with a defensive copy of the history.
func (c *Calculator) State() State {
	s := c.value.State()
	s.History = cloneHistory(s.History)
	return s
}

// Subscribe registers fn to receive every snapshot committed after this
// call. The constructor's initial state is not delivered.
func (c *Calculator) Subscribe(fn func(State)) {
	c.value.Subscribe(fn)
}

// Add adds n to the current value.
func (c *Calculator) Add(n float64) { c.apply(Add, n) }

// Subtract subtracts n from the current value.
func (c *Calculator) Subtract(n float64) { c.apply(Subtract, n) }

// Multiply multiplies the current value by n.
func (c *Calculator) Multiply(n float64) { c.apply(Multiply, n) }

// Divide divides the current value by n. Division by zero follows IEEE-754
// semantics and yields ±Inf or NaN rather than an error.
func (c *Calculator) Divide(n float64) { c.apply(Divide, n) }

// Clear resets the calculator: value and history seed become initial, and
// the display shows just the value with no trailing "=".
func (c *Calculator) Clear(initial float64) {
	c.value.Commit(cleared(initial))
}

func (c *Calculator) apply(op Operator, n float64) {
	cur := c.value.State()

	history := make([]Entry, len(cur.History)+1)
	copy(history, cur.History)
	history[len(cur.History)] = Entry{Operator: op, Value: n}

	next := State{
		Value:   applyOperator(op, cur.Value, n),
		History: history,
	}
	next.Display = render(history)
	c.value.Commit(next)
}

func applyOperator(op Operator, acc, n float64) float64 {
	switch op {
	case Add:
		return acc + n
	case Subtract:
		return acc - n
	case Multiply:
		return acc * n
	case Divide:
		return acc / n
	default:
		return n
	}
}

func cleared(initial float64) State {
	return State{
		Value:   initial,
		History: []Entry{{Operator: Initial, Value: initial}},
		Display: formatNumber(initial),
	}
}

// render joins the history into the display string: the seed value, then
// "<symbol> <operand>" per entry, with a trailing "=" once at least one
// operation has run.
func render(history []Entry) string {
	var b strings.Builder
	b.WriteString(formatNumber(history[0].Value))
	for _, e := range history[1:] {
		b.WriteByte(' ')
		b.WriteString(e.Operator.Symbol())
		b.WriteByte(' ')
		b.WriteString(formatNumber(e.Value))
	}
	if len(history) > 1 {
		b.WriteString(" =")
	}
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func cloneHistory(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
