package tasks

import (
	"fmt"

	"github.com/reusee/coop/frames"
	"github.com/reusee/coop/logs"
)

// Drive is the trampoline: it steps the referenced frame and then walks the
// transfer chain as explicit data until control leaves the protocol. A
// "called" interrupt descends into the callee; a "returned" interrupt
// ascends into the continuation. Neither grows the native stack: each hop is
// one more iteration operating on the next frame reference.
//
// Drive returns the interrupt of the frame that parked last, so the caller
// knows whether that frame yielded, slept, or finished the whole walk.
type Drive func(id frames.ID) frames.Interrupt

func (Module) Drive(
	table *frames.Table,
	logger logs.Logger,
) Drive {
	return func(id frames.ID) frames.Interrupt {
		frame, ok := table.Get(id)
		if !ok {
			panic(fmt.Errorf("%w: drive frame %d", frames.ErrNotFound, id))
		}

		for {
			interrupt := frame.Step()

			switch interrupt.Kind {

			case frames.KindYielded, frames.KindSlept:
				// back to the external driver
				return interrupt

			case frames.KindCalled:
				callee, ok := table.Get(interrupt.Callee)
				if !ok {
					// awaiting a destroyed frame, prevented by the owner
					panic(fmt.Errorf("%w: descend into frame %d", frames.ErrNotFound, interrupt.Callee))
				}
				logger.Debug("descend",
					"caller", frame.ID(),
					"callee", callee.ID(),
				)
				frame = callee

			case frames.KindReturned:
				next := frame.Next()
				if next == frames.None {
					// top-level frame, nothing further to resume
					return interrupt
				}
				caller, ok := table.Get(next)
				if !ok {
					// the awaiter was released first; lack of a caller is a
					// terminal state, not a failure
					logger.Warn("continuation released",
						"frame", frame.ID(),
						"continuation", next,
					)
					return interrupt
				}
				if caller.Done() {
					return interrupt
				}
				logger.Debug("ascend",
					"callee", frame.ID(),
					"caller", caller.ID(),
				)
				frame = caller
			}
		}
	}
}
