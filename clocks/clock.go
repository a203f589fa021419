package clocks

import (
	"time"

	"github.com/reusee/dscope"
)

// Now supplies the current instant for due-time comparisons. The runtime
// never reads the wall clock directly.
type Now func() time.Time

// Idle is called by the loop when nothing is ready and the earliest timer is
// in the future. The loop only computes the duration; waiting it out is this
// collaborator's concern.
type Idle func(time.Duration)

type Module struct {
	dscope.Module
}

func (Module) Now() Now {
	return time.Now
}

func (Module) Idle() Idle {
	return time.Sleep
}
