package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
	"github.com/reusee/tapecalc/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		mappings := make(starlark.StringDict, len(globals))
		for name, value := range globals {
			mappings[name] = toStarlarkValue(value)
		}

		thread := &starlark.Thread{
			Name: what,
		}
		stop := context.AfterFunc(ctx, func() {
			thread.Cancel("tap canceled")
		})
		defer stop()
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		}, thread, mappings)
	}
}

// Inspect taps a machine with its script builtins and the machine itself.
type Inspect func(ctx context.Context, machine *machines.Machine)

func (Module) Inspect(
	tap Tap,
) Inspect {
	return func(ctx context.Context, machine *machines.Machine) {
		globals := map[string]any{
			"machine": machine.Snapshot,
			"tape":    machine.Tape().View,
		}
		for name, value := range scripts.Globals(machine) {
			globals[name] = value
		}
		tap(ctx, "machine", globals)
	}
}
