package machines

import (
	"encoding/json"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/ariths"
	"github.com/reusee/tapecalc/modes"
	"github.com/reusee/tapecalc/tapes"
)

func n(i int64) *big.Int {
	return big.NewInt(i)
}

func TestOperations(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	cases := []struct {
		name   string
		result Result
		want   int64
	}{
		{"add", m.Add(n(3), n(5)), 8},
		{"subtract", m.Subtract(n(10), n(4)), 6},
		{"multiply", m.Multiply(n(7), n(6)), 42},
		{"divide", m.Divide(n(20), n(4)), 5},
		{"power", m.Power(n(2), n(3)), 8},
		{"sqrt", m.IntegerSqrt(n(16)), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !c.result.OK() {
				t.Fatalf("got %v", c.result.Err)
			}
			if c.result.Value.Cmp(big.NewRat(c.want, 1)) != 0 {
				t.Fatalf("got %v", c.result.Value)
			}
		})
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("got %v", m.Status())
	}
	if len(m.History()) != len(cases) {
		t.Fatalf("got %d", len(m.History()))
	}
}

func TestCompletedTape(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	res := m.Divide(n(20), n(4))
	if got, ok := res.Int(); !ok || got.Int64() != 5 {
		t.Fatalf("got %v", res)
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("got %v", m.Status())
	}
	if got := m.Tape().Content(); got != "5" {
		t.Fatalf("got %q", got)
	}
	if m.Head().Position() != 0 {
		t.Fatalf("got %d", m.Head().Position())
	}

	m.Subtract(n(3), n(10))
	if got := m.Tape().Content(); got != "-7" {
		t.Fatalf("got %q", got)
	}
	if got := m.Head().Read(); got != '-' {
		t.Fatalf("got %q", got)
	}
}

func TestDivideByZero(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	res := m.Divide(n(7), n(0))
	if res.OK() {
		t.Fatal("should fail")
	}
	if !errors.Is(res.Err, ariths.ErrDivideByZero) {
		t.Fatalf("got %v", res.Err)
	}
	if res.Value != nil {
		t.Fatalf("got %v", res.Value)
	}
	if m.Status() != StatusError {
		t.Fatalf("got %v", m.Status())
	}
	if got := m.Tape().Content(); got != ErrorMarker {
		t.Fatalf("got %q", got)
	}
	history := m.History()
	if len(history) != 1 {
		t.Fatalf("got %v", history)
	}
	if history[0] != "divide: 7 / 0 = error: division by zero" {
		t.Fatalf("got %q", history[0])
	}
}

func TestNegativeRadicand(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	res := m.IntegerSqrt(n(-1))
	if !errors.Is(res.Err, ariths.ErrNegativeRadicand) {
		t.Fatalf("got %v", res.Err)
	}
	if m.Status() != StatusError {
		t.Fatalf("got %v", m.Status())
	}
	if got := m.Tape().Content(); got != "ERROR" {
		t.Fatalf("got %q", got)
	}
	if len(m.History()) != 1 {
		t.Fatal()
	}

	// recovers on the next operation
	res = m.IntegerSqrt(n(16))
	if got, ok := res.Int(); !ok || got.Int64() != 4 {
		t.Fatalf("got %v", res)
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("got %v", m.Status())
	}
}

func TestNegativeExponent(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	res := m.Power(n(2), n(-1))
	if !res.OK() {
		t.Fatalf("got %v", res.Err)
	}
	if res.Value.Cmp(big.NewRat(1, 2)) != 0 {
		t.Fatalf("got %v", res.Value)
	}
	if _, ok := res.Int(); ok {
		t.Fatal("should not be an integer")
	}
	if m.Status() != StatusCompleted {
		t.Fatalf("got %v", m.Status())
	}
	if got := m.Tape().Content(); got != "1/2" {
		t.Fatalf("got %q", got)
	}
	if m.Head().Position() != 0 {
		t.Fatalf("got %d", m.Head().Position())
	}

	m.Power(n(-2), n(-3))
	if got := m.Tape().Content(); got != "-1/8" {
		t.Fatalf("got %q", got)
	}

	res = m.Power(n(0), n(-1))
	if !errors.Is(res.Err, ariths.ErrDivideByZero) {
		t.Fatalf("got %v", res.Err)
	}
	if m.Status() != StatusError {
		t.Fatalf("got %v", m.Status())
	}

	if diff := cmp.Diff(m.History(), []string{
		"power: 2^-1 = 1/2",
		"power: -2^-3 = -1/8",
		"power: 0^-1 = error: division by zero",
	}); diff != "" {
		t.Fatal(diff)
	}
}

func TestHistory(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	m.Add(n(3), n(5))
	m.Subtract(n(10), n(4))
	m.Multiply(n(7), n(6))
	m.Divide(n(20), n(4))
	m.Power(n(2), n(3))
	m.IntegerSqrt(n(16))
	m.Divide(n(7), n(0))

	want := []string{
		"add: 3 + 5 = 8",
		"subtract: 10 - 4 = 6",
		"multiply: 7 * 6 = 42",
		"divide: 20 / 4 = 5",
		"power: 2^3 = 8",
		"sqrt: √16 = 4",
		"divide: 7 / 0 = error: division by zero",
	}
	if diff := cmp.Diff(want, m.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	// snapshot is a copy
	snapshot := m.History()
	snapshot[0] = "tampered"
	if diff := cmp.Diff(want, m.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	status := m.Status()
	content := m.Tape().Content()
	m.ClearHistory()
	if len(m.History()) != 0 {
		t.Fatal()
	}
	if m.Status() != status || m.Tape().Content() != content {
		t.Fatal("clear history touched the tape")
	}

	m.Add(n(1), n(1))
	if diff := cmp.Diff([]string{"add: 1 + 1 = 2"}, m.History()); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}
}

func TestReset(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	if m.Status() != StatusInitial {
		t.Fatalf("got %v", m.Status())
	}
	m.Multiply(n(123), n(456))
	m.Divide(n(1), n(0))
	m.Head().MoveTo(-3)
	m.Head().Write('x')

	m.Reset()
	if m.Status() != StatusInitial {
		t.Fatalf("got %v", m.Status())
	}
	if len(m.History()) != 0 {
		t.Fatal()
	}
	if m.Head().Position() != 0 {
		t.Fatalf("got %d", m.Head().Position())
	}
	for pos := -20; pos <= 20; pos++ {
		if got := m.Tape().Read(pos); got != tapes.Blank {
			t.Fatalf("pos %d: got %q", pos, got)
		}
	}
}

func TestPrepareInput(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	m.prepare([]*big.Int{n(12), n(-3)})
	if m.Status() != StatusPrepared {
		t.Fatalf("got %v", m.Status())
	}
	if got := m.Tape().Content(); got != "12#-3" {
		t.Fatalf("got %q", got)
	}
	if m.Head().Position() != 0 {
		t.Fatalf("got %d", m.Head().Position())
	}

	m.prepare([]*big.Int{n(16)})
	if got := m.Tape().Content(); got != "16" {
		t.Fatalf("got %q", got)
	}
}

func TestApply(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	for _, op := range Ops {
		operands := []*big.Int{n(9), n(2)}[:op.Arity()]
		res := m.Apply(op, operands...)
		if res.Op != op {
			t.Fatalf("got %v", res.Op)
		}
		if !res.OK() {
			t.Fatalf("%s: %v", op, res.Err)
		}
	}
	if got := m.Apply(OpPower, n(2), n(10)).String(); got != "1024" {
		t.Fatalf("got %s", got)
	}
}

func TestApplyArity(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	defer func() {
		p := recover()
		if p == nil {
			t.Fatal("should panic")
		}
		if !strings.Contains(p.(error).Error(), "sqrt takes 1 operands, got 2") {
			t.Fatalf("got %v", p)
		}
	}()
	m.Apply(OpIntegerSqrt, n(1), n(2))
}

func TestNilOperand(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
		if len(m.History()) != 0 {
			t.Fatal("history should not record contract violations")
		}
	}()
	m.Add(n(1), nil)
}

func TestBigResult(t *testing.T) {
	m := New(nil, tapes.DefaultRadius)
	res := m.Power(n(2), n(100))
	if res.String() != "1267650600228229401496703205376" {
		t.Fatalf("got %v", res.Value)
	}
	if got := m.Tape().Content(); got != res.String() {
		t.Fatalf("got %q", got)
	}
}

func TestDisplayStatus(t *testing.T) {
	m := New(nil, 2)
	m.Add(n(40), n(2))
	got := m.DisplayStatus()
	want := strings.Join([]string{
		"status: completed",
		"head position: 0",
		"symbol: '4'",
		"tape:   [4]2 ",
		"content: '42'",
	}, "\n")
	if got != want {
		t.Fatalf("got %q", got)
	}
	// presentation does not change state
	if m.DisplayStatus() != got || len(m.History()) != 1 {
		t.Fatal()
	}

	m.Divide(n(1), n(0))
	got = m.DisplayStatus()
	if !strings.Contains(got, "status: error") {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(got, "head position: 5") {
		t.Fatalf("got %q", got)
	}
}

func TestSnapshot(t *testing.T) {
	m := New(nil, 1)
	m.IntegerSqrt(n(81))
	data, err := json.Marshal(m.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	want := `{"status":"completed","position":0,"symbol":"9","content":"9","window":" [9] ","history":["sqrt: √81 = 9"]}`
	if string(data) != want {
		t.Fatalf("got %s", data)
	}
}

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		newMachine NewMachine,
	) {
		m1 := newMachine()
		m2 := newMachine()
		if m1 == m2 {
			t.Fatal("machines should not share state")
		}
		if m1.Radius() != tapes.DefaultRadius {
			t.Fatalf("got %d", m1.Radius())
		}
		m1.Add(n(1), n(2))
		if len(m2.History()) != 0 {
			t.Fatal()
		}
		if m2.Status() != StatusInitial {
			t.Fatal()
		}
	})
}
