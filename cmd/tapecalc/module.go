package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/debugs"
	"github.com/reusee/tapecalc/programs"
	"github.com/reusee/tapecalc/scripts"
)

type Module struct {
	dscope.Module
	Programs programs.Module
	Scripts  scripts.Module
	Debugs   debugs.Module
}
