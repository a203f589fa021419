package tasks

import (
	"fmt"

	"github.com/reusee/coop/frames"
)

// Task is the exclusive owner of one frame and the only way to drive or
// query it from outside the call/return protocol.
//
// Ownership is move-only: Move empties the source handle, Release destroys
// the frame exactly once. Copying a Task by value and releasing both copies
// is a usage error the frame table turns into a failed lookup.
type Task struct {
	name  string
	frame *frames.Frame
	table *frames.Table
	drive Drive
}

func (t *Task) Name() string {
	return t.name
}

// ID returns the owned frame's reference for scheduling. The handle must
// outlive every scheduler entry made with it.
func (t *Task) ID() frames.ID {
	return t.must().ID()
}

// IsDone reports whether the owned frame completed.
func (t *Task) IsDone() bool {
	return t.must().Done()
}

// Value returns the frame's current value without blocking: the last
// yielded value while suspended, the return value once done.
func (t *Task) Value() any {
	return t.must().Value()
}

// Result reads the completed frame. A stored computation error is re-raised
// here, not out of Resume. Before completion it returns (nil, nil): no value
// yet, never an error, never blocking.
func (t *Task) Result() (any, error) {
	return t.must().Result()
}

// Resume drives the frame from its last suspension point through the
// call/return protocol until control comes back outside: the next yield,
// sleep, or completion of the trampoline walk. Resuming a completed or
// released frame is a usage error.
func (t *Task) Resume() frames.Interrupt {
	return t.drive(t.must().ID())
}

// Move transfers ownership to the returned handle and empties t.
func (t *Task) Move() *Task {
	moved := *t
	t.frame = nil
	return &moved
}

// Release destroys the owned frame: it is removed from the table and, if
// still suspended, its body is unwound. Releasing an empty or already
// released handle is a no-op, so deferring Release after Move is safe.
func (t *Task) Release() {
	if t.frame == nil {
		return
	}
	id := t.frame.ID()
	t.frame = nil
	t.table.Remove(id)
}

func (t *Task) must() *frames.Frame {
	if t.frame == nil {
		panic(fmt.Errorf("%w: task %q", frames.ErrReleased, t.name))
	}
	return t.frame
}
