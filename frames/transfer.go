package frames

import (
	"errors"
	"fmt"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Step drives the frame from its last suspension point to the next one and
// reports why it parked. The first step starts the body; the body does not
// run before that. Stepping a completed or released frame is a usage error.
//
// While the body runs, the calling goroutine blocks on parkCh; while the body
// is parked, it blocks on resumeCh. Exactly one side is ever runnable.
func (f *Frame) Step() Interrupt {
	if f.released {
		panic(fmt.Errorf("%w: step frame %d", ErrReleased, f.id))
	}
	if f.done {
		panic(fmt.Errorf("%w: step frame %d", ErrCompleted, f.id))
	}
	if !f.started {
		f.started = true
		go f.run()
	} else {
		f.resumeCh <- nil
	}
	return <-f.parkCh
}

// Park is the body side of Step: report the interrupt, wait to be resumed.
// A released frame is resumed with ErrReleased, which unwinds the body.
func (f *Frame) Park(i Interrupt) {
	i.Frame = f.id
	f.parkCh <- i
	if err := <-f.resumeCh; err != nil {
		panic(err)
	}
}

func (f *Frame) run() {
	defer func() {
		if p := recover(); p != nil {
			err := asError(p)
			if errors.Is(err, ErrReleased) {
				// unwound by the owner, nobody is listening
				return
			}
			if !f.done {
				f.Fail(wrap(err))
			}
		}
		if f.done {
			// final suspension: the instant of completion, before handoff
			f.parkCh <- Interrupt{Kind: KindReturned, Frame: f.id}
		}
	}()
	f.body()
}

// release poisons a parked body so its goroutine unwinds, then marks the
// frame unusable. Safe on frames that never started or already completed.
func (f *Frame) release() {
	if f.released {
		return
	}
	f.released = true
	if f.started && !f.done {
		f.resumeCh <- ErrReleased
	}
}

func asError(p any) error {
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}
