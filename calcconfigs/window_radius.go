package calcconfigs

import (
	"github.com/reusee/tapecalc/cmds"
	"github.com/reusee/tapecalc/configs"
	"github.com/reusee/tapecalc/tapes"
)

// WindowRadius is the number of cells shown on each side of the head.
type WindowRadius int

var radiusFlag = cmds.Var[*int]("-radius", "cells shown on each side of the head")

func (Module) WindowRadius(
	loader configs.Loader,
) WindowRadius {
	if *radiusFlag != nil && **radiusFlag >= 0 {
		return WindowRadius(**radiusFlag)
	}
	return WindowRadius(configs.First(loader, "window_radius", tapes.DefaultRadius))
}
