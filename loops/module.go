package loops

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/frames"
	"github.com/reusee/coop/logs"
	"github.com/reusee/coop/tasks"
)

type Module struct {
	dscope.Module
	Tasks tasks.Module
}

// New creates an empty loop.
type New func() *Loop

func (Module) New(
	drive tasks.Drive,
	table *frames.Table,
	logger logs.Logger,
	now clocks.Now,
	idle clocks.Idle,
) New {
	return func() *Loop {
		return &Loop{
			drive:  drive,
			table:  table,
			logger: logger,
			now:    now,
			idle:   idle,
		}
	}
}
