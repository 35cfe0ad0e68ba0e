package pq

import (
	"container/heap"
	"fmt"
)

// Queue is an indexed binary min-heap keyed by V.
//
// The zero value is not usable; construct with New.
type Queue[V comparable, P Number] struct {
	h heapSlice[V, P]
}

// New returns an empty queue with room for capacity entries.
// A negative capacity is treated as zero.
func New[V comparable, P Number](capacity int) *Queue[V, P] {
	if capacity < 0 {
		capacity = 0
	}

	return &Queue[V, P]{
		h: heapSlice[V, P]{
			entries: make([]entry[V, P], 0, capacity),
			pos:     make(map[V]int, capacity),
		},
	}
}

// Insert adds v with priority p.
//
// Errors:
//   - ErrDuplicateKey if v is already queued (the queue is unchanged).
//   - ErrInvalidPriority if p is NaN.
func (q *Queue[V, P]) Insert(v V, p P) error {
	if isNaN(p) {
		return ErrInvalidPriority
	}
	if _, ok := q.h.pos[v]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, v)
	}
	heap.Push(&q.h, entry[V, P]{value: v, priority: p, seq: q.h.nextSeq})
	q.h.nextSeq++

	return nil
}

// DecreaseKey lowers the priority of v to p.
//
// Errors:
//   - ErrNotFound if v is not queued.
//   - ErrNotDecreased if p >= the current priority; the entry is left as is.
//   - ErrInvalidPriority if p is NaN.
func (q *Queue[V, P]) DecreaseKey(v V, p P) error {
	if isNaN(p) {
		return ErrInvalidPriority
	}
	i, ok := q.h.pos[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNotFound, v)
	}
	if p >= q.h.entries[i].priority {
		return fmt.Errorf("%w: %v (current %v, requested %v)", ErrNotDecreased, v, q.h.entries[i].priority, p)
	}
	q.h.entries[i].priority = p
	heap.Fix(&q.h, i)

	return nil
}

// PushOrDecrease inserts v if absent, or lowers its priority if p is strictly
// smaller than the current one. It reports whether the queue changed.
func (q *Queue[V, P]) PushOrDecrease(v V, p P) (bool, error) {
	if isNaN(p) {
		return false, ErrInvalidPriority
	}
	i, ok := q.h.pos[v]
	if !ok {
		heap.Push(&q.h, entry[V, P]{value: v, priority: p, seq: q.h.nextSeq})
		q.h.nextSeq++

		return true, nil
	}
	if p >= q.h.entries[i].priority {
		return false, nil
	}
	q.h.entries[i].priority = p
	heap.Fix(&q.h, i)

	return true, nil
}

// ExtractMin removes and returns the entry with the smallest priority.
// Among equal priorities the earliest inserted wins.
func (q *Queue[V, P]) ExtractMin() (Item[V, P], error) {
	if len(q.h.entries) == 0 {
		return Item[V, P]{}, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[V, P])

	return Item[V, P]{Value: e.value, Priority: e.priority}, nil
}

// Peek returns the minimum entry without removing it.
func (q *Queue[V, P]) Peek() (Item[V, P], error) {
	if len(q.h.entries) == 0 {
		return Item[V, P]{}, ErrEmptyQueue
	}
	e := q.h.entries[0]

	return Item[V, P]{Value: e.value, Priority: e.priority}, nil
}

// Len returns the number of queued entries.
func (q *Queue[V, P]) Len() int { return len(q.h.entries) }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[V, P]) IsEmpty() bool { return len(q.h.entries) == 0 }

// Contains reports whether v is queued.
func (q *Queue[V, P]) Contains(v V) bool {
	_, ok := q.h.pos[v]

	return ok
}

// Priority returns the current priority of v and whether v is queued.
func (q *Queue[V, P]) Priority(v V) (P, bool) {
	i, ok := q.h.pos[v]
	if !ok {
		var zero P

		return zero, false
	}

	return q.h.entries[i].priority, true
}

// Reset empties the queue, keeping the allocated storage.
func (q *Queue[V, P]) Reset() {
	q.h.entries = q.h.entries[:0]
	clear(q.h.pos)
	q.h.nextSeq = 0
}

// isNaN reports whether p is a floating-point NaN. It is always false for integers.
func isNaN[P Number](p P) bool { return p != p }

// heapSlice implements heap.Interface and keeps pos in sync with every move.
type heapSlice[V comparable, P Number] struct {
	entries []entry[V, P]
	pos     map[V]int
	nextSeq uint64
}

// Len returns the number of entries in the heap.
func (h heapSlice[V, P]) Len() int { return len(h.entries) }

// Less orders by priority, then by insertion sequence.
func (h heapSlice[V, P]) Less(i, j int) bool {
	a, b := h.entries[i], h.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}

	return a.seq < b.seq
}

// Swap exchanges two slots and updates the position index.
func (h heapSlice[V, P]) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.pos[h.entries[i].value] = i
	h.pos[h.entries[j].value] = j
}

// Push appends x; called by heap.Push.
func (h *heapSlice[V, P]) Push(x any) {
	e := x.(entry[V, P])
	h.pos[e.value] = len(h.entries)
	h.entries = append(h.entries, e)
}

// Pop removes the last slot; called by heap.Pop.
func (h *heapSlice[V, P]) Pop() any {
	old := h.entries
	n := len(old)
	e := old[n-1]
	old[n-1] = entry[V, P]{}
	h.entries = old[:n-1]
	delete(h.pos, e.value)

	return e
}
