// Package pq provides a generic indexed binary min-heap with decrease-key.
//
// A Queue[V, P] holds at most one live entry per value V, ordered by its
// priority P. Unlike the lazy "push a duplicate and skip stale entries"
// pattern, every value has exactly one slot in the heap and a position index
// (map[V]int) that is updated on every swap, so DecreaseKey can locate and
// re-sift an entry in O(log n).
//
// Ordering:
//
//   - Smaller priority first.
//   - Equal priorities are extracted in insertion order (FIFO). A decreased
//     entry keeps the sequence number it was inserted with, so the order of
//     extraction is fully deterministic for a given operation sequence.
//
// Operations:
//
//	Insert(v, p)          O(log n)  ErrDuplicateKey, ErrInvalidPriority
//	DecreaseKey(v, p)     O(log n)  ErrNotFound, ErrNotDecreased, ErrInvalidPriority
//	PushOrDecrease(v, p)  O(log n)  insert or decrease, reports whether anything changed
//	ExtractMin()          O(log n)  ErrEmptyQueue
//	Peek()                O(1)      ErrEmptyQueue
//	Contains, Priority    O(1)
//	Len, IsEmpty, Reset   O(1)
//
// DecreaseKey never raises a priority: a request with p >= current leaves the
// entry untouched and returns ErrNotDecreased.
//
// A Queue is not safe for concurrent use; every search owns its own queue.
package pq
