package machines

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/calcconfigs"
	"github.com/reusee/tapecalc/logs"
)

type Module struct {
	dscope.Module
	CalcConfigs calcconfigs.Module
}

type NewMachine func() *Machine

func (Module) NewMachine(
	logger logs.Logger,
	radius calcconfigs.WindowRadius,
) NewMachine {
	return func() *Machine {
		return New(logger, int(radius))
	}
}
