package scripts

import (
	"math/big"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tapecalc/machines"
	"go.starlark.net/starlark"
)

// Globals binds one machine to starlark builtins.
func Globals(m *machines.Machine) starlark.StringDict {
	globals := starlark.StringDict{
		"display":       starlarkutil.MakeFunc("display", m.DisplayStatus),
		"clear_history": starlarkutil.MakeFunc("clear_history", m.ClearHistory),
		"reset":         starlarkutil.MakeFunc("reset", m.Reset),
		"window": starlarkutil.MakeFunc("window", func(radius int) string {
			return m.Tape().Window(m.Head().Position(), radius)
		}),
		"history": starlark.NewBuiltin("history", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			var elems []starlark.Value
			for _, entry := range m.History() {
				elems = append(elems, starlark.String(entry))
			}
			return starlark.NewList(elems), nil
		}),
	}
	globals["status"] = starlark.NewBuiltin("status", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return starlark.String(m.Status().String()), nil
	})
	for _, op := range machines.Ops {
		globals[op.String()] = opBuiltin(m, op)
	}
	return globals
}

// opBuiltin returns None when the machine reports an error, and a float for
// fractional powers.
func opBuiltin(m *machines.Machine, op machines.Op) *starlark.Builtin {
	return starlark.NewBuiltin(op.String(), func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		ints := make([]starlark.Int, op.Arity())
		ptrs := make([]any, op.Arity())
		for i := range ints {
			ptrs[i] = &ints[i]
		}
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, op.Arity(), ptrs...); err != nil {
			return nil, err
		}
		operands := make([]*big.Int, len(ints))
		for i, v := range ints {
			operands[i] = v.BigInt()
		}
		result := m.Apply(op, operands...)
		if !result.OK() {
			return starlark.None, nil
		}
		if value, ok := result.Int(); ok {
			return starlark.MakeBigInt(value), nil
		}
		f, _ := result.Value.Float64()
		return starlark.Float(f), nil
	})
}
