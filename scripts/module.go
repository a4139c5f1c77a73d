package scripts

import (
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/logs"
	"github.com/reusee/tapecalc/machines"
)

type Module struct {
	dscope.Module
	Machines machines.Module
}

type NewEnv func(machine *machines.Machine) *Env

func (Module) NewEnv(
	logger logs.Logger,
) NewEnv {
	return func(machine *machines.Machine) *Env {
		return &Env{
			Machine: machine,
			Logger:  logger,
			Stdout:  os.Stdout,
		}
	}
}
