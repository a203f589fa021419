package coopconfigs

import (
	"slices"

	"github.com/reusee/coop/cmds"
	"github.com/reusee/coop/configs"
)

// ScriptPaths are the script files to compile, from repeated -script flags
// followed by the "scripts" config list.
type ScriptPaths []string

var scriptFlag = cmds.Collect[string]("-script")

func (Module) ScriptPaths(
	loader configs.Loader,
) ScriptPaths {
	paths := slices.Clone(*scriptFlag)
	paths = append(paths, configs.First[[]string](loader, "scripts")...)
	return ScriptPaths(paths)
}
