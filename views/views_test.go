package views

import (
	"io"
	"math/big"
	"strings"
	"testing"

	"github.com/reusee/tapecalc/machines"
)

func TestMenu(t *testing.T) {
	v := New(io.Discard, "tape calculator")
	menu := v.Menu()
	if !strings.Contains(menu, "TAPE CALCULATOR") {
		t.Fatalf("got %s", menu)
	}
	for _, item := range Menu {
		if !strings.Contains(menu, item.Key+". "+item.Label) {
			t.Fatalf("missing %s in %s", item.Label, menu)
		}
	}
}

func TestStatus(t *testing.T) {
	v := New(io.Discard, "")
	m := machines.New(nil, 2)
	m.Add(big.NewInt(40), big.NewInt(2))
	got := v.Status(m)
	for _, want := range []string{
		"status:", "completed",
		"head position:", "0",
		"'4'",
		"[4]2",
		"'42'",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in %s", want, got)
		}
	}

	m.Divide(big.NewInt(1), big.NewInt(0))
	got = v.Status(m)
	if !strings.Contains(got, "error") || !strings.Contains(got, "'ERROR'") {
		t.Fatalf("got %s", got)
	}
}

func TestHistory(t *testing.T) {
	v := New(io.Discard, "")
	if got := v.History(nil, "history"); got != "no operations in history" {
		t.Fatalf("got %q", got)
	}
	got := v.History([]string{
		"add: 3 + 5 = 8",
		"sqrt: √16 = 4",
	}, "history")
	want := "history (2)\n 1. add: 3 + 5 = 8\n 2. sqrt: √16 = 4"
	if got != want {
		t.Fatalf("got %q", got)
	}
}

func TestResult(t *testing.T) {
	v := New(io.Discard, "")
	m := machines.New(nil, 2)
	if got := v.Result(m.Power(big.NewInt(2), big.NewInt(3))); got != "result: 2^3 = 8" {
		t.Fatalf("got %q", got)
	}
	if got := v.Result(m.Divide(big.NewInt(7), big.NewInt(0))); got != "error: 7 / 0 = division by zero" {
		t.Fatalf("got %q", got)
	}
}
