package components

import (
	cfg "github.com/pixeldojo/shadowboxer/config"
	"github.com/yohamta/donburi"
)

// ActionQueueData is the bounded FIFO of pending fighter actions. Input
// sources only ever append to it; the fighter state machine is the only
// consumer.
type ActionQueueData struct {
	Pending []cfg.ActionID
	Cap     int
	// Dropped counts actions discarded because the queue was full.
	Dropped int
}

// Enqueue appends an action, dropping it (and counting the drop) when the
// queue is at capacity.
func (q *ActionQueueData) Enqueue(action cfg.ActionID) bool {
	if q.Cap > 0 && len(q.Pending) >= q.Cap {
		q.Dropped++
		return false
	}
	q.Pending = append(q.Pending, action)
	return true
}

// Dequeue pops the oldest pending action.
func (q *ActionQueueData) Dequeue() (cfg.ActionID, bool) {
	if len(q.Pending) == 0 {
		return cfg.ActionNone, false
	}
	action := q.Pending[0]
	q.Pending = q.Pending[1:]
	return action, true
}

// Peek returns the oldest pending action without removing it.
func (q *ActionQueueData) Peek() (cfg.ActionID, bool) {
	if len(q.Pending) == 0 {
		return cfg.ActionNone, false
	}
	return q.Pending[0], true
}

// Len returns the number of pending actions.
func (q *ActionQueueData) Len() int {
	return len(q.Pending)
}

// Clear discards all pending actions.
func (q *ActionQueueData) Clear() {
	q.Pending = q.Pending[:0]
}

var ActionQueue = donburi.NewComponentType[ActionQueueData]()
