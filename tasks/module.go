package tasks

import (
	"github.com/reusee/dscope"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/frames"
	"github.com/reusee/coop/logs"
)

type Module struct {
	dscope.Module
	Frames frames.Module
	Logs   logs.Module
	Clocks clocks.Module
}
