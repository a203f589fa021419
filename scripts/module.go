package scripts

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/tasks"
)

type Module struct {
	dscope.Module
	Tasks tasks.Module
}
