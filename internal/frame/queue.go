// Package frame provides a requestAnimationFrame-style callback queue.
package frame

// ID identifies a pending frame request. Zero is never issued.
type ID uint64

// Requester schedules callbacks for the next frame.
type Requester interface {
	Request(fn func()) ID
	Cancel(id ID)
}

type request struct {
	id ID
	fn func()
}

// Queue holds callbacks until the host flushes them once per display frame.
type Queue struct {
	pending []request
	running []request
	next    ID
}

// Request schedules fn for the next Flush.
func (q *Queue) Request(fn func()) ID {
	q.next++
	q.pending = append(q.pending, request{id: q.next, fn: fn})
	return q.next
}

// Cancel drops a request that has not run yet, including one later in the
// batch currently being flushed. Unknown ids are ignored.
func (q *Queue) Cancel(id ID) {
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
	for i := range q.pending {
		if q.pending[i].id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs the callbacks pending when it was called and returns how many
// ran. Callbacks requested during the flush wait for the next one.
func (q *Queue) Flush() int {
	q.running, q.pending = q.pending, nil
	ran := 0
	for i := range q.running {
		fn := q.running[i].fn
		if fn == nil {
			continue
		}
		q.running[i].fn = nil
		fn()
		ran++
	}
	q.running = nil
	return ran
}

// Len returns the number of pending requests.
func (q *Queue) Len() int { return len(q.pending) }
