package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/calcconfigs"
	"github.com/reusee/tapecalc/cmds"
	"github.com/reusee/tapecalc/debugs"
	"github.com/reusee/tapecalc/exprs"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
	"github.com/reusee/tapecalc/modes"
	"github.com/reusee/tapecalc/programs"
	"github.com/reusee/tapecalc/scripts"
	"github.com/reusee/tapecalc/views"
	"golang.org/x/term"
)

var (
	evalArgs     = cmds.Collect[string]("eval", "evaluate an expression like '7 / 0'")
	runExamples  = cmds.Switch("examples", "run one example of each operation")
	programPaths = cmds.Collect[string]("run", "run a json program file")
	runConfig    = cmds.Switch("program", "run the program from config files")
	scriptPath   = cmds.Var[string]("script", "run a starlark script")
	doRepl       = cmds.Switch("repl", "open a starlark repl on the machine")
	outputJSON   = cmds.Switch("-json", "print the final machine snapshot as json")
)

var ErrProgramsFailed = errors.New("programs failed")

func main() {
	cmds.Execute(os.Args[1:])
	err := run()
	if closeErr := logs.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newMachine machines.NewMachine,
		newRunner programs.NewRunner,
		runFiles programs.RunFiles,
		newEnv scripts.NewEnv,
		configSteps programs.ConfigSteps,
		inspect debugs.Inspect,
		title calcconfigs.HistoryTitle,
	) {
		ctx, _ := newSpan(ctx, "tapecalc")
		a := &app{
			Logger:      logger,
			NewRunner:   newRunner,
			RunFiles:    runFiles,
			NewEnv:      newEnv,
			ConfigSteps: configSteps,
			Inspect:     inspect,
			Title:       string(title),
			Machine:     newMachine(),
			View:        views.New(os.Stdout, "tape calculator"),
			In:          os.Stdin,
			Interactive: term.IsTerminal(int(os.Stdin.Fd())),
			Out:         os.Stdout,
		}
		err = a.run(ctx)
	})
	return
}

// app runs the mode selected by flags against one machine.
type app struct {
	Logger      logs.Logger
	NewRunner   programs.NewRunner
	RunFiles    programs.RunFiles
	NewEnv      scripts.NewEnv
	ConfigSteps programs.ConfigSteps
	Inspect     debugs.Inspect
	Title       string
	Machine     *machines.Machine
	View        *views.View
	In          io.Reader
	Interactive bool
	Out         io.Writer
}

// run prints the machine snapshot after every mode except line evaluation,
// which already writes one json object per expression.
func (a *app) run(ctx context.Context) error {
	snapshot, err := a.dispatch(ctx)
	if snapshot && *outputJSON {
		err = errors.Join(err, json.NewEncoder(a.Out).Encode(a.Machine.Snapshot()))
	}
	return err
}

func (a *app) dispatch(ctx context.Context) (snapshot bool, err error) {
	machine := a.Machine
	switch {

	case len(*evalArgs) > 0:
		for _, input := range *evalArgs {
			call, err := exprs.Parse(input)
			if err != nil {
				return true, err
			}
			result := call.Apply(machine)
			if !*outputJSON {
				fmt.Fprintln(a.Out, a.View.Result(result))
			}
		}

	case *runExamples:
		runner := a.NewRunner(machine)
		if !*outputJSON {
			runner.Observe = func(step *programs.Step) {
				fmt.Fprintf(a.Out, "\n%s:\n", step.Name)
				fmt.Fprintf(a.Out, "   result: %s\n", step.Output)
				fmt.Fprintf(a.Out, "   status: %s\n", machine.Status())
				fmt.Fprintf(a.Out, "   tape: %s\n", machine.Tape().Window(machine.Head().Position(), machine.Radius()))
			}
		}
		if err := runner.Run(ctx, programs.Examples()); err != nil {
			return true, err
		}
		if !*outputJSON {
			fmt.Fprintln(a.Out)
			fmt.Fprintln(a.Out, a.View.History(machine.History(), a.Title))
		}

	case len(*programPaths) > 0:
		failed := 0
		for _, res := range a.RunFiles(ctx, *programPaths) {
			if res.Program != nil && !*outputJSON {
				fmt.Fprintf(a.Out, "%s:\n", res.Path)
				for _, step := range res.Program.Steps {
					a.printStep(step)
				}
			}
			if res.Err != nil {
				a.Logger.ErrorContext(ctx, "program failed", "path", res.Path, "error", res.Err)
				failed++
			}
		}
		if failed > 0 {
			return true, fmt.Errorf("%w: %d of %d", ErrProgramsFailed, failed, len(*programPaths))
		}

	case *runConfig:
		runner := a.NewRunner(machine)
		if !*outputJSON {
			runner.Observe = a.printStep
		}
		program := programs.New(a.ConfigSteps...)
		if err := runner.Run(ctx, program); err != nil {
			return true, err
		}
		if failed := program.Failed(); len(failed) > 0 {
			a.Logger.WarnContext(ctx, "failed steps", "count", len(failed))
		}

	case *scriptPath != "":
		env := a.NewEnv(machine)
		env.Stdout = a.Out
		if *outputJSON {
			env.Stdout = io.Discard
		}
		if _, err := env.Run(ctx, *scriptPath, nil); err != nil {
			return true, err
		}

	case *doRepl:
		a.Inspect(ctx, machine)

	case a.Interactive:
		session := &Session{
			Machine: machine,
			View:    a.View,
			Title:   a.Title,
			In:      bufio.NewScanner(a.In),
			Out:     a.Out,
		}
		return true, session.Run(ctx)

	default:
		return false, evalLines(ctx, machine, a.View, a.In, a.Out, *outputJSON)

	}
	return true, nil
}

func (a *app) printStep(step *programs.Step) {
	if step.Error != "" {
		fmt.Fprintf(a.Out, "  %s: %s (%s)\n", step.Status, step.Action, step.Error)
		return
	}
	fmt.Fprintf(a.Out, "  %s: %s => %s\n", step.Status, step.Action, step.Output)
}
