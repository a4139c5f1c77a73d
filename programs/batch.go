package programs

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/reusee/tapecalc/cmds"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
	"github.com/reusee/tapecalc/syncs"
)

var jobsFlag = cmds.Var[int]("-jobs", "number of program files run concurrently")

// FileResult is the outcome of running one program file on its own machine.
type FileResult struct {
	Path    string
	Program *Program
	Machine *machines.Machine
	Err     error
}

// RunFiles runs program files concurrently, each on a fresh machine.
// Results are in the order of paths.
type RunFiles func(ctx context.Context, paths []string) []FileResult

func (Module) RunFiles(
	logger logs.Logger,
	newSpan logs.NewSpan,
	newMachine machines.NewMachine,
	newRunner NewRunner,
) RunFiles {
	return func(ctx context.Context, paths []string) []FileResult {
		jobs := *jobsFlag
		if jobs <= 0 {
			jobs = 4
		}
		sem := syncs.NewSemaphore(jobs)
		results := make([]FileResult, len(paths))
		var wg sync.WaitGroup
		for i, path := range paths {
			results[i].Path = path
			wg.Go(func() {
				res := &results[i]
				if err := sem.Acquire(ctx); err != nil {
					res.Err = err
					return
				}
				defer sem.Release()

				program, err := Load(path)
				if err != nil {
					res.Err = err
					return
				}
				res.Program = program
				res.Machine = newMachine()
				ctx, _ := newSpan(ctx, filepath.Base(path))
				res.Err = newRunner(res.Machine).Run(ctx, program)
				logger.DebugContext(ctx, "program file done",
					"path", path,
					"error", res.Err,
				)
			})
		}
		wg.Wait()
		return results
	}
}
