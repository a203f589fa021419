package frames

import "sync"

// Table is the frame arena. Continuations and scheduler entries refer to
// frames by ID, so a reference that outlives its frame becomes a failed
// lookup instead of a dangling pointer.
type Table struct {
	sync.Mutex
	nextID ID
	frames map[ID]*Frame
}

func NewTable() *Table {
	return &Table{
		frames: make(map[ID]*Frame),
	}
}

// Add assigns the frame an ID and registers it.
func (t *Table) Add(f *Frame) ID {
	t.Lock()
	defer t.Unlock()
	t.nextID++
	f.id = t.nextID
	t.frames[f.id] = f
	return f.id
}

func (t *Table) Get(id ID) (*Frame, bool) {
	t.Lock()
	defer t.Unlock()
	f, ok := t.frames[id]
	return f, ok
}

// Remove unregisters the frame and unwinds its body if still suspended.
// Removing twice is a no-op.
func (t *Table) Remove(id ID) {
	t.Lock()
	f, ok := t.frames[id]
	delete(t.frames, id)
	t.Unlock()
	if ok {
		f.release()
	}
}

func (t *Table) Len() int {
	t.Lock()
	defer t.Unlock()
	return len(t.frames)
}
