package programs

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
)

type Runner struct {
	Machine *machines.Machine
	Logger  logs.Logger
	// Observe is called after each executed step.
	Observe func(step *Step)
}

// OperationError marks a step whose arithmetic failed on the machine.
type OperationError struct {
	Result machines.Result
}

func (o *OperationError) Error() string {
	return o.Result.Err.Error()
}

func (o *OperationError) Unwrap() error {
	return o.Result.Err
}

func (r *Runner) Run(ctx context.Context, program *Program) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		done, err := r.RunStep(ctx, program)
		if err != nil {
			r.Logger.ErrorContext(ctx, "step execution failed", "error", err)
			return logs.WrapSpan(ctx, err)
		}
		if done {
			r.Logger.InfoContext(ctx, "program completed",
				"steps", len(program.Steps),
				"failed", len(program.Failed()),
			)
			return nil
		}
	}
}

func (r *Runner) RunStep(ctx context.Context, program *Program) (bool, error) {
	if program.Done() {
		return true, nil
	}

	step := program.Steps[program.PC]

	switch step.Status {
	case StatusCompleted, StatusFailed:
		// executed before
		program.PC++
		return program.Done(), nil

	case StatusRunning:
		r.Logger.WarnContext(ctx, "rerunning interrupted step", "name", step.label())
	}

	r.Logger.DebugContext(ctx, "executing step",
		"name", step.label(),
		"pc", program.PC,
		"action", step.Action,
	)
	step.Status = StatusRunning

	output, nextPC, err := r.execute(step, program)
	step.Output = output

	if err != nil {
		step.Status = StatusFailed
		step.Error = err.Error()
		program.log(step, "Error: "+err.Error())
		if r.Observe != nil {
			r.Observe(step)
		}
		var opErr *OperationError
		if errors.As(err, &opErr) {
			// arithmetic failures are recorded, the program goes on
			program.PC++
			return program.Done(), nil
		}
		return false, fmt.Errorf("step %s: %w", step.label(), err)
	}

	step.Status = StatusCompleted
	step.Error = ""
	if nextPC != -1 {
		program.PC = nextPC
	} else {
		program.PC++
	}
	program.log(step, "Success")
	if r.Observe != nil {
		r.Observe(step)
	}

	return program.Done(), nil
}

func (r *Runner) execute(step *Step, program *Program) (string, int, error) {
	parts := strings.SplitN(step.Action, ":", 2)
	actionType := strings.ToLower(strings.TrimSpace(parts[0]))
	var content string
	if len(parts) > 1 {
		content = strings.TrimSpace(parts[1])
	}

	switch actionType {
	case "nop":
		return "nop", -1, nil

	case "reset":
		r.Machine.Reset()
		return "reset", -1, nil

	case "clear_history":
		r.Machine.ClearHistory()
		return "history cleared", -1, nil

	case "status":
		return r.Machine.DisplayStatus(), -1, nil

	case "history":
		return strings.Join(r.Machine.History(), "\n"), -1, nil

	case "jump":
		// content can be index or name/id
		target := content
		for i, s := range program.Steps {
			if s.Name == target || s.ID == target {
				return "jumped to " + target, i, nil
			}
		}
		if idx, err := strconv.Atoi(target); err == nil {
			if idx < 0 || idx > len(program.Steps) {
				return "", -1, fmt.Errorf("jump index out of range: %d", idx)
			}
			return "jumped to index", idx, nil
		}
		return "", -1, fmt.Errorf("jump target not found: %s", target)

	case "exit":
		return "exiting", len(program.Steps), nil
	}

	op, err := machines.ParseOp(actionType)
	if err != nil {
		return "", -1, fmt.Errorf("unknown action type: %s", actionType)
	}
	operands, err := parseOperands(content)
	if err != nil {
		return "", -1, err
	}
	if len(operands) != op.Arity() {
		return "", -1, fmt.Errorf("%s takes %d operands, got %d", op, op.Arity(), len(operands))
	}
	result := r.Machine.Apply(op, operands...)
	if !result.OK() {
		return result.String(), -1, &OperationError{
			Result: result,
		}
	}
	return result.String(), -1, nil
}

func parseOperands(content string) ([]*big.Int, error) {
	var ret []*big.Int
	for _, field := range strings.Fields(content) {
		i, ok := new(big.Int).SetString(field, 10)
		if !ok {
			return nil, fmt.Errorf("not an integer: %q", field)
		}
		ret = append(ret, i)
	}
	return ret, nil
}
