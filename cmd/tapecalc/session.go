package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/reusee/tapecalc/exprs"
	"github.com/reusee/tapecalc/machines"
	"github.com/reusee/tapecalc/views"
)

var errEOF = errors.New("end of input")

// Session is the interactive menu loop.
type Session struct {
	Machine *machines.Machine
	View    *views.View
	Title   string
	In      *bufio.Scanner
	Out     io.Writer
}

var menuOps = map[string]machines.Op{
	"1": machines.OpAdd,
	"2": machines.OpSubtract,
	"3": machines.OpMultiply,
	"4": machines.OpDivide,
	"5": machines.OpPower,
	"6": machines.OpIntegerSqrt,
}

var operandPrompts = map[machines.Op][]string{
	machines.OpAdd:         {"first number: ", "second number: "},
	machines.OpSubtract:    {"minuend: ", "subtrahend: "},
	machines.OpMultiply:    {"first factor: ", "second factor: "},
	machines.OpDivide:      {"dividend: ", "divisor: "},
	machines.OpPower:       {"base: ", "exponent: "},
	machines.OpIntegerSqrt: {"number: "},
}

func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintln(s.Out)
		fmt.Fprintln(s.Out, s.View.Menu())
		choice, err := s.readLine("\nchoose an option: ")
		if errors.Is(err, errEOF) {
			fmt.Fprintln(s.Out, "\nbye")
			return nil
		} else if err != nil {
			return err
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.Out, "bye")
			return nil
		case "7":
			fmt.Fprintln(s.Out, s.View.Status(s.Machine))
		case "8":
			fmt.Fprintln(s.Out, s.View.History(s.Machine.History(), s.Title))
		case "9":
			s.Machine.Reset()
			fmt.Fprintln(s.Out, "machine reset")
		default:
			op, ok := menuOps[choice]
			if !ok {
				fmt.Fprintln(s.Out, "invalid option, choose from 0 to 9")
				continue
			}
			operands := make([]*big.Int, 0, op.Arity())
			for _, prompt := range operandPrompts[op] {
				operand, err := s.readInt(prompt)
				if errors.Is(err, errEOF) {
					fmt.Fprintln(s.Out, "\nbye")
					return nil
				} else if err != nil {
					return err
				}
				operands = append(operands, operand)
			}
			fmt.Fprintln(s.Out, s.View.Result(s.Machine.Apply(op, operands...)))
		}
	}
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.Out, prompt)
	if !s.In.Scan() {
		if err := s.In.Err(); err != nil {
			return "", err
		}
		return "", errEOF
	}
	return strings.TrimSpace(s.In.Text()), nil
}

// readInt prompts until an integer is entered.
func (s *Session) readInt(prompt string) (*big.Int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return nil, err
		}
		if i, ok := new(big.Int).SetString(line, 10); ok {
			return i, nil
		}
		fmt.Fprintln(s.Out, "please enter a valid integer")
	}
}

// evalLines evaluates one expression per line.
func evalLines(ctx context.Context, machine *machines.Machine, view *views.View, r io.Reader, w io.Writer, asJSON bool) error {
	scanner := bufio.NewScanner(r)
	encoder := json.NewEncoder(w)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		call, err := exprs.Parse(line)
		if err != nil {
			fmt.Fprintln(w, err)
			continue
		}
		result := call.Apply(machine)
		if asJSON {
			entry := struct {
				Expr   string `json:"expr"`
				Result string `json:"result,omitempty"`
				Error  string `json:"error,omitempty"`
			}{
				Expr: result.Expr(),
			}
			if result.OK() {
				entry.Result = result.String()
			} else {
				entry.Error = result.Err.Error()
			}
			if err := encoder.Encode(entry); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(w, view.Result(result))
	}
	return scanner.Err()
}
