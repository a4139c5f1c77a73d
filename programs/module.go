package programs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/configs"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
)

type Module struct {
	dscope.Module
	Machines machines.Module
}

type NewRunner func(machine *machines.Machine) *Runner

func (Module) NewRunner(
	logger logs.Logger,
) NewRunner {
	return func(machine *machines.Machine) *Runner {
		return &Runner{
			Machine: machine,
			Logger:  logger,
		}
	}
}

// ConfigSteps are the "program" lists of all config files, concatenated in load order.
type ConfigSteps []*Step

func (Module) ConfigSteps(
	loader configs.Loader,
) ConfigSteps {
	lists, err := configs.All[[]*Step](loader, "program")
	if err != nil {
		panic(err)
	}
	var ret ConfigSteps
	for _, steps := range lists {
		ret = append(ret, steps...)
	}
	return ret
}
