package frames

import "time"

// Interrupt describes why a frame parked. Every suspension point produces
// exactly one of the four kinds; the trampoline and the loop dispatch on it.
type Interrupt struct {
	Kind   Kind
	Frame  ID        // the frame that parked
	Callee ID        // KindCalled: the frame to descend into
	At     time.Time // KindSlept: do not resume before this instant
}

type Kind uint8

const (
	KindReturned Kind = iota + 1 // frame completed, ascend or hand back
	KindYielded                  // intermediate value stored, back to the driver
	KindSlept                    // resume not before At
	KindCalled                   // descend into Callee
)

func (k Kind) String() string {
	switch k {
	case KindReturned:
		return "returned"
	case KindYielded:
		return "yielded"
	case KindSlept:
		return "slept"
	case KindCalled:
		return "called"
	}
	return "invalid"
}
