package frames

import (
	"errors"
	"fmt"
)

// ID refers to a frame slot in a Table. The zero ID is the "return to the
// scheduler" sentinel: a frame whose continuation is None hands control back
// to whatever drives it.
type ID int64

const None ID = 0

var (
	ErrCompleted      = errors.New("frames: frame already completed")
	ErrContinuation   = errors.New("frames: continuation already attached")
	ErrReleased       = errors.New("frames: frame released")
	ErrNotFound       = errors.New("frames: no such frame")
	ErrSpuriousResume = errors.New("frames: frame resumed before its callee completed")
)

// Frame is the suspended state of one computation unit: its completion flag,
// its value or error slot, and the back-link to the frame that awaits it.
//
// A frame alternates strictly between its body goroutine and whoever drives
// it; the channel handoff in transfer.go orders every field access, so no
// field needs a lock.
type Frame struct {
	id   ID
	body func()

	done  bool
	value any   // last yielded value, or the return value once done
	err   error // set instead of value when the body failed
	next  ID    // continuation, None means return to the scheduler

	started  bool
	released bool
	resumeCh chan error // driver -> body, non-nil poisons the body
	parkCh   chan Interrupt
}

func NewFrame(body func()) *Frame {
	return &Frame{
		body:     body,
		resumeCh: make(chan error),
		parkCh:   make(chan Interrupt),
	}
}

func (f *Frame) ID() ID {
	return f.id
}

// Done reports whether the frame completed, with either a value or an error.
func (f *Frame) Done() bool {
	return f.done
}

// Value returns the current value: the last yielded one while suspended, the
// returned one once complete. It never blocks.
func (f *Frame) Value() any {
	return f.value
}

// Return completes the frame with a value.
func (f *Frame) Return(value any) {
	if f.done {
		panic(fmt.Errorf("%w: return %v", ErrCompleted, value))
	}
	f.value = value
	f.err = nil
	f.done = true
}

// Fail completes the frame with an error. The error is not raised here; it is
// re-raised at every result read during ascent.
func (f *Frame) Fail(err error) {
	if f.done {
		panic(fmt.Errorf("%w: fail %v", ErrCompleted, err))
	}
	f.value = nil
	f.err = err
	f.done = true
}

// Yield stores an intermediate value without completing the frame.
func (f *Frame) Yield(value any) {
	if f.done {
		panic(fmt.Errorf("%w: yield %v", ErrCompleted, value))
	}
	f.value = value
}

// Result reads the completed frame: the stored error if the body failed, the
// return value otherwise. Before completion it reports no value.
func (f *Frame) Result() (any, error) {
	if !f.done {
		return nil, nil
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.value, nil
}

// Attach links the awaiting frame as this frame's continuation. A frame has
// at most one awaiter, attached at most once, before completion.
func (f *Frame) Attach(next ID) {
	if f.done {
		panic(fmt.Errorf("%w: attach to completed frame %d", ErrContinuation, f.id))
	}
	if f.next != None {
		panic(fmt.Errorf("%w: frame %d", ErrContinuation, f.id))
	}
	f.next = next
}

// Next returns the continuation, None when there is no awaiter.
func (f *Frame) Next() ID {
	return f.next
}
