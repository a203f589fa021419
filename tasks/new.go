package tasks

import (
	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/frames"
	"github.com/reusee/coop/logs"
)

// New creates a task owning a fresh suspended frame. The body does not run
// until the first resume.
type New func(name string, body Body) *Task

func (Module) New(
	table *frames.Table,
	logger logs.Logger,
	now clocks.Now,
	drive Drive,
) New {
	return func(name string, body Body) *Task {
		co := &Co{
			table: table,
			now:   now,
		}
		frame := frames.NewFrame(func() {
			value, err := body(co)
			if err != nil {
				co.frame.Fail(err)
			} else {
				co.frame.Return(value)
			}
		})
		co.frame = frame
		id := table.Add(frame)
		logger.Debug("new task",
			"name", name,
			"frame", id,
		)
		return &Task{
			name:  name,
			frame: frame,
			table: table,
			drive: drive,
		}
	}
}
