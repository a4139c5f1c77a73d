package calcconfigs

import (
	"github.com/reusee/tapecalc/configs"
	"github.com/reusee/tapecalc/vars"
)

// HistoryTitle heads the history listing.
type HistoryTitle string

func (Module) HistoryTitle(
	loader configs.Loader,
) HistoryTitle {
	return HistoryTitle(vars.FirstNonZero(
		configs.First(loader, "history_title", ""),
		"history",
	))
}
