package scripts

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type Env struct {
	Machine *machines.Machine
	Logger  logs.Logger
	Stdout  io.Writer
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Run executes src, or the file named by name when src is nil.
func (e *Env) Run(ctx context.Context, name string, src any) (starlark.StringDict, error) {
	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(e.Stdout, msg)
		},
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	e.Logger.DebugContext(ctx, "run script", "name", name)
	globals, err := starlark.ExecFileOptions(fileOptions, thread, name, src, Globals(e.Machine))
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			e.Logger.DebugContext(ctx, "script failed",
				"name", name,
				"backtrace", evalErr.Backtrace(),
			)
		}
		if ctx.Err() != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("run script %s: %w", name, context.Cause(ctx)))
		}
		return nil, logs.WrapSpan(ctx, fmt.Errorf("run script %s: %w", name, err))
	}
	return globals, nil
}
