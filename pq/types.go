package pq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Queue operations.
var (
	// ErrEmptyQueue is returned by ExtractMin and Peek on an empty queue.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrDuplicateKey is returned by Insert when the value is already queued.
	ErrDuplicateKey = errors.New("pq: value already in queue")

	// ErrNotFound is returned by DecreaseKey when the value is not queued.
	ErrNotFound = errors.New("pq: value not in queue")

	// ErrNotDecreased is returned by DecreaseKey when the new priority is not
	// strictly lower than the current one.
	ErrNotDecreased = errors.New("pq: priority not decreased")

	// ErrInvalidPriority is returned for a NaN priority.
	ErrInvalidPriority = errors.New("pq: invalid priority")
)

// Number is the set of priority types a Queue accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Item is a value together with its priority, as returned by ExtractMin and Peek.
type Item[V comparable, P Number] struct {
	Value    V
	Priority P
}

// entry is the heap slot. seq is the insertion sequence used for FIFO ties.
type entry[V comparable, P Number] struct {
	value    V
	priority P
	seq      uint64
}
