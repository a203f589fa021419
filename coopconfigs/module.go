package coopconfigs

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
