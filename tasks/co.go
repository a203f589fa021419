package tasks

import (
	"fmt"
	"time"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/frames"
)

// Body is one unit of cooperative computation. The returned value completes
// the frame; a non-nil error completes it as failed. A body only runs
// between two suspension points at a time, driven from outside.
type Body func(co *Co) (any, error)

// Co is the body-side surface of a frame: every method that parks suspends
// the body exactly where it is called and hands control back through the
// protocol.
type Co struct {
	frame *frames.Frame
	table *frames.Table
	now   clocks.Now
}

// Yield publishes an intermediate value and suspends until the next resume.
func (co *Co) Yield(value any) {
	co.frame.Yield(value)
	co.frame.Park(frames.Interrupt{
		Kind: frames.KindYielded,
	})
}

// SleepUntil suspends and asks the driving loop to not resume this frame
// before t.
func (co *Co) SleepUntil(t time.Time) {
	co.frame.Park(frames.Interrupt{
		Kind: frames.KindSlept,
		At:   t,
	})
}

// SleepFor suspends for at least d of scheduler time.
func (co *Co) SleepFor(d time.Duration) {
	co.SleepUntil(co.now().Add(d))
}

// Now reads the injected clock.
func (co *Co) Now() time.Time {
	return co.now()
}

// Await runs the callee task to completion and returns its result. This is
// the descend half of the call protocol:
//
//   - a callee that already completed is read immediately, with no
//     suspension and no transfer;
//   - otherwise this frame is attached as the callee's continuation and
//     control transfers into the callee within the same logical step.
//
// When the callee completes, the return protocol resumes this frame right
// here, and the callee's stored error, if any, is re-raised as the returned
// error. Awaiting a released task, or being resumed from outside while the
// call is still in flight, is a fatal usage error.
func (co *Co) Await(callee *Task) (any, error) {
	calleeFrame := callee.must()
	if calleeFrame.Done() {
		return calleeFrame.Result()
	}
	if _, ok := co.table.Get(calleeFrame.ID()); !ok {
		panic(fmt.Errorf("%w: await frame %d", frames.ErrNotFound, calleeFrame.ID()))
	}
	calleeFrame.Attach(co.frame.ID())
	co.frame.Park(frames.Interrupt{
		Kind:   frames.KindCalled,
		Callee: calleeFrame.ID(),
	})
	// only the callee's ascent may resume this frame; anything else (say a
	// stale scheduler entry) reached it while the call is still in flight
	if !calleeFrame.Done() {
		panic(fmt.Errorf("%w: frame %d awaiting frame %d",
			frames.ErrSpuriousResume, co.frame.ID(), calleeFrame.ID()))
	}
	return calleeFrame.Result()
}
