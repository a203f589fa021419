package loops

import (
	"container/heap"
	"time"

	"github.com/reusee/coop/clocks"
	"github.com/reusee/coop/frames"
	"github.com/reusee/coop/logs"
	"github.com/reusee/coop/tasks"
)

// Loop drives scheduled frames to completion with two structures and no
// other state: a FIFO ready queue and an expiry-ordered timer heap. It never
// owns frames; entries are transient references, and the owning task must
// outlive them.
type Loop struct {
	drive  tasks.Drive
	table  *frames.Table
	logger logs.Logger
	now    clocks.Now
	idle   clocks.Idle

	ready  []frames.ID
	timers timerHeap
	seq    uint64
}

// Add queues the frame for resumption in the next pass.
func (l *Loop) Add(id frames.ID) {
	l.ready = append(l.ready, id)
}

// AddAt queues the frame for resumption once the clock reaches at. Entries
// with equal expiry fire in the order they were added.
func (l *Loop) AddAt(at time.Time, id frames.ID) {
	l.seq++
	heap.Push(&l.timers, timerEntry{
		at:    at,
		frame: id,
		seq:   l.seq,
	})
}

// Run resumes frames until both the ready queue and the timer heap are
// empty.
//
// Each pass snapshots the ready queue and drains exactly that snapshot in
// FIFO order, one resume per entry; whatever gets scheduled during the pass
// runs in the next one, so every frame advances at most one suspension step
// per pass. When the ready queue is empty, due timers are promoted onto it;
// when none are due yet, the idle collaborator is handed the remaining wait.
func (l *Loop) Run() {
	for len(l.ready) > 0 || l.timers.Len() > 0 {

		if len(l.ready) > 0 {
			pass := l.ready
			l.ready = nil
			for _, id := range pass {
				l.resume(id)
			}
			continue
		}

		now := l.now()
		promoted := false
		for l.timers.Len() > 0 && !l.timers[0].at.After(now) {
			entry := heap.Pop(&l.timers).(timerEntry)
			l.logger.Debug("timer due",
				"frame", entry.frame,
				"at", entry.at,
			)
			l.ready = append(l.ready, entry.frame)
			promoted = true
		}
		if !promoted && l.timers.Len() > 0 {
			wait := l.timers[0].at.Sub(now)
			if wait < 0 {
				wait = 0
			}
			l.idle(wait)
		}
	}
}

func (l *Loop) resume(id frames.ID) {
	frame, ok := l.table.Get(id)
	if !ok {
		l.logger.Warn("scheduled frame released",
			"frame", id,
		)
		return
	}
	if frame.Done() {
		// completed earlier in this run through an awaiting chain
		l.logger.Debug("scheduled frame already complete",
			"frame", id,
		)
		return
	}

	interrupt := l.drive(id)
	switch interrupt.Kind {
	case frames.KindYielded:
		// one suspension step taken, next step in the next pass
		l.ready = append(l.ready, interrupt.Frame)
	case frames.KindSlept:
		l.AddAt(interrupt.At, interrupt.Frame)
	case frames.KindReturned:
		// dropped, the owning task reads the result
	}
}
