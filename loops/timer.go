package loops

import (
	"time"

	"github.com/reusee/coop/frames"
)

type timerEntry struct {
	at    time.Time
	frame frames.ID
	seq   uint64
}

// timerHeap is a min-heap on expiry, stable on ties via insertion sequence.
type timerHeap []timerEntry

func (h timerHeap) Len() int {
	return len(h)
}

func (h timerHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *timerHeap) Push(x any) {
	*h = append(*h, x.(timerEntry))
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}
