package coopconfigs

import (
	"slices"

	"github.com/reusee/coop/cmds"
	"github.com/reusee/coop/configs"
	"github.com/reusee/coop/vars"
)

// Entries are the script functions scheduled on the loop at startup, from
// repeated -entry flags followed by the "entries" config list. With neither
// set, the scalar "entry" config value applies, then "main".
type Entries []string

var entryFlag = cmds.Collect[string]("-entry")

func (Module) Entries(
	loader configs.Loader,
) Entries {
	entries := slices.Clone(*entryFlag)
	entries = append(entries, configs.First[[]string](loader, "entries")...)
	if len(entries) == 0 {
		entries = []string{
			vars.FirstNonZero(
				configs.First[string](loader, "entry"),
				"main",
			),
		}
	}
	return Entries(entries)
}
