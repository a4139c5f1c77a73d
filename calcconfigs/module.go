package calcconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tapecalc/configs"
	"github.com/reusee/tapecalc/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
