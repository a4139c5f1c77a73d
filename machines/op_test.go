package machines

import (
	"errors"
	"testing"
)

func TestParseOp(t *testing.T) {
	for name, want := range map[string]Op{
		"add":          OpAdd,
		"+":            OpAdd,
		"Subtract":     OpSubtract,
		"mul":          OpMultiply,
		"/":            OpDivide,
		"**":           OpPower,
		" pow ":        OpPower,
		"sqrt":         OpIntegerSqrt,
		"integer_sqrt": OpIntegerSqrt,
	} {
		got, err := ParseOp(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%s: got %v", name, got)
		}
	}

	_, err := ParseOp("mod")
	if !errors.Is(err, ErrUnknownOp) {
		t.Fatalf("got %v", err)
	}
}

func TestOpString(t *testing.T) {
	for _, op := range Ops {
		parsed, err := ParseOp(op.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != op {
			t.Fatalf("got %v", parsed)
		}
	}
	if got := Op(99).String(); got != "Op(99)" {
		t.Fatalf("got %s", got)
	}
	if OpIntegerSqrt.Arity() != 1 || OpDivide.Arity() != 2 {
		t.Fatal()
	}
}

func TestStatusString(t *testing.T) {
	for status, want := range map[Status]string{
		StatusInitial:   "initial",
		StatusPrepared:  "prepared",
		StatusCompleted: "completed",
		StatusError:     "error",
		Status(42):      "unknown",
	} {
		if got := status.String(); got != want {
			t.Fatalf("got %s", got)
		}
	}
}
