package input

import "errors"

type Event string

const (
	Quit          Event = "quit"
	Pause         Event = "pause"
	Resume        Event = "resume"
	TogglePause   Event = "toggle-pause"
	ToggleOverlay Event = "toggle-overlay"
)

// ErrQuit is returned by a frame source once a Quit event has been handled.
// Drivers treat it as an orderly shutdown.
var ErrQuit = errors.New("quit requested")

// Queue carries events from any goroutine (key watchers, HTTP handlers) to
// the frame loop, which drains it once per frame.
type Queue struct{ ch chan Event }

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 16
	}
	return &Queue{ch: make(chan Event, capacity)}
}

// Push enqueues ev without blocking. It reports false when the queue is
// full and the event was dropped.
func (q *Queue) Push(ev Event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

// Drain returns every queued event in arrival order.
func (q *Queue) Drain() []Event {
	var out []Event
	for {
		select {
		case ev := <-q.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}
