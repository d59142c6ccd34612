package core

// Input represents a semantic input event, abstracted from physical keys.
// The platform maps key presses to inputs; the game only sees these.
type Input int

const (
	InputNone  Input = iota
	InputJump        // Space, Up, W - flap / start a round
	InputRetry       // R - start a new round after game over
	InputQuit        // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the input.
func (in Input) String() string {
	switch in {
	case InputNone:
		return "None"
	case InputJump:
		return "Jump"
	case InputRetry:
		return "Retry"
	case InputQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// priority orders inputs when several arrive within one tick.
// Quit always wins so it can never be lost behind other keys.
func (in Input) priority() int {
	switch in {
	case InputQuit:
		return 3
	case InputRetry:
		return 2
	case InputJump:
		return 1
	default:
		return 0
	}
}

// InputSource is polled once per tick for pending input.
// Poll must not block; InputNone means nothing is pending.
type InputSource interface {
	Poll() Input
}

// DefaultInputQueueSize bounds how many key events can pile up between ticks.
const DefaultInputQueueSize = 16

// InputQueue buffers input events between ticks.
// Push is called from the key handler, Poll from the tick handler. Both run
// on the same event loop, so the queue needs no locking.
type InputQueue struct {
	events []Input
	limit  int
}

// NewInputQueue creates a queue holding at most limit events.
func NewInputQueue(limit int) *InputQueue {
	if limit <= 0 {
		limit = DefaultInputQueueSize
	}
	return &InputQueue{
		events: make([]Input, 0, limit),
		limit:  limit,
	}
}

// Push enqueues an event. InputNone is ignored. When the queue is full the
// event is dropped unless it is a Quit, which replaces the newest entry.
func (q *InputQueue) Push(in Input) {
	if in == InputNone {
		return
	}
	if len(q.events) >= q.limit {
		if in == InputQuit {
			q.events[len(q.events)-1] = in
		}
		return
	}
	q.events = append(q.events, in)
}

// Poll removes and returns the oldest pending event, or InputNone.
func (q *InputQueue) Poll() Input {
	if len(q.events) == 0 {
		return InputNone
	}
	in := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]
	return in
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int {
	return len(q.events)
}

// Drain polls src until it is empty and collapses everything into the single
// strongest input (Quit > Retry > Jump). Several jumps within one tick
// therefore count as one.
func Drain(src InputSource) Input {
	strongest := InputNone
	for {
		in := src.Poll()
		if in == InputNone {
			return strongest
		}
		if in.priority() > strongest.priority() {
			strongest = in
		}
	}
}
