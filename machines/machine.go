package machines

import (
	"fmt"
	"log/slog"
	"math/big"
	"slices"
	"strings"

	"github.com/reusee/tapecalc/ariths"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/tapes"
)

const (
	Delimiter   = "#"
	ErrorMarker = "ERROR"
)

// Machine owns a tape and the head addressing it.
// It is not safe for concurrent use.
type Machine struct {
	tape    *tapes.Tape
	head    *tapes.Head
	status  Status
	history []string
	radius  int
	logger  logs.Logger
}

func New(logger logs.Logger, radius int) *Machine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if radius < 0 {
		radius = tapes.DefaultRadius
	}
	tape := tapes.New()
	return &Machine{
		tape:   tape,
		head:   tapes.NewHead(tape),
		status: StatusInitial,
		radius: radius,
		logger: logger,
	}
}

func (m *Machine) Add(a, b *big.Int) Result {
	return m.run(OpAdd, []*big.Int{a, b}, func() (*big.Rat, error) {
		return new(big.Rat).SetInt(ariths.Add(a, b)), nil
	})
}

func (m *Machine) Subtract(a, b *big.Int) Result {
	return m.run(OpSubtract, []*big.Int{a, b}, func() (*big.Rat, error) {
		return new(big.Rat).SetInt(ariths.Subtract(a, b)), nil
	})
}

func (m *Machine) Multiply(a, b *big.Int) Result {
	return m.run(OpMultiply, []*big.Int{a, b}, func() (*big.Rat, error) {
		return new(big.Rat).SetInt(ariths.Multiply(a, b)), nil
	})
}

func (m *Machine) Divide(a, b *big.Int) Result {
	return m.run(OpDivide, []*big.Int{a, b}, func() (*big.Rat, error) {
		return integral(ariths.Divide(a, b))
	})
}

func (m *Machine) Power(a, b *big.Int) Result {
	return m.run(OpPower, []*big.Int{a, b}, func() (*big.Rat, error) {
		return ariths.Power(a, b)
	})
}

func (m *Machine) IntegerSqrt(a *big.Int) Result {
	return m.run(OpIntegerSqrt, []*big.Int{a}, func() (*big.Rat, error) {
		return integral(ariths.IntegerSqrt(a))
	})
}

func (m *Machine) Apply(op Op, operands ...*big.Int) Result {
	if len(operands) != op.Arity() {
		panic(fmt.Errorf("%s takes %d operands, got %d", op, op.Arity(), len(operands)))
	}
	switch op {
	case OpAdd:
		return m.Add(operands[0], operands[1])
	case OpSubtract:
		return m.Subtract(operands[0], operands[1])
	case OpMultiply:
		return m.Multiply(operands[0], operands[1])
	case OpDivide:
		return m.Divide(operands[0], operands[1])
	case OpPower:
		return m.Power(operands[0], operands[1])
	case OpIntegerSqrt:
		return m.IntegerSqrt(operands[0])
	}
	panic(fmt.Errorf("%w: %s", ErrUnknownOp, op))
}

func (m *Machine) run(op Op, operands []*big.Int, compute func() (*big.Rat, error)) Result {
	for i, operand := range operands {
		if operand == nil {
			panic(fmt.Errorf("%s: operand %d is nil", op, i))
		}
	}

	m.prepare(operands)

	result := Result{
		Op:       op,
		Operands: operands,
	}
	result.Value, result.Err = compute()
	if result.Err != nil {
		result.Value = nil
		m.writeError()
		m.logger.Debug("operation failed",
			"op", op,
			"expr", result.Expr(),
			"error", result.Err,
		)
	} else {
		m.writeResult(result.Value)
		m.logger.Debug("operation",
			"op", op,
			"expr", result.Expr(),
			"result", result.Value.RatString(),
		)
	}

	m.history = append(m.history, result.entry())
	return result
}

func (m *Machine) prepare(operands []*big.Int) {
	m.tape.Clear()
	m.head.MoveTo(0)
	parts := make([]string, 0, len(operands))
	for _, operand := range operands {
		parts = append(parts, operand.String())
	}
	m.head.WriteString(strings.Join(parts, Delimiter))
	m.head.MoveTo(0)
	m.status = StatusPrepared
}

func integral(value *big.Int, err error) (*big.Rat, error) {
	if err != nil {
		return nil, err
	}
	return new(big.Rat).SetInt(value), nil
}

// writeResult writes integers in decimal and fractions as p/q.
func (m *Machine) writeResult(value *big.Rat) {
	m.tape.Clear()
	m.head.MoveTo(0)
	m.head.WriteString(value.RatString())
	m.head.MoveTo(0)
	m.status = StatusCompleted
}

func (m *Machine) writeError() {
	m.tape.Clear()
	m.head.MoveTo(0)
	// the head stays past the marker
	m.head.WriteString(ErrorMarker)
	m.status = StatusError
}

func (m *Machine) Status() Status {
	return m.status
}

func (m *Machine) History() []string {
	return slices.Clone(m.history)
}

func (m *Machine) ClearHistory() {
	m.history = nil
}

func (m *Machine) Reset() {
	m.tape.Clear()
	m.head.MoveTo(0)
	m.status = StatusInitial
	m.ClearHistory()
	m.logger.Debug("reset")
}

func (m *Machine) Tape() *tapes.Tape {
	return m.tape
}

func (m *Machine) Head() *tapes.Head {
	return m.head
}

func (m *Machine) Radius() int {
	return m.radius
}

func (m *Machine) DisplayStatus() string {
	var b strings.Builder
	fmt.Fprintf(&b, "status: %s\n", m.status)
	fmt.Fprintf(&b, "head position: %d\n", m.head.Position())
	fmt.Fprintf(&b, "symbol: '%c'\n", m.head.Read())
	fmt.Fprintf(&b, "tape: %s\n", m.tape.Window(m.head.Position(), m.radius))
	fmt.Fprintf(&b, "content: '%s'", m.tape.Content())
	return b.String()
}

func (m *Machine) String() string {
	return fmt.Sprintf("Machine(status=%s, position=%d)", m.status, m.head.Position())
}
