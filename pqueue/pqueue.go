package pqueue

import (
	"container/heap"
	"errors"
)

// ErrEmptyQueue indicates ExtractMin was called on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: extract from empty queue")

// entry pairs a queued value with its ordering key and an insertion sequence
// number used to break key ties first-in-first-out.
type entry[T any] struct {
	value T
	key   int64
	seq   uint64
}

// minHeap implements heap.Interface. Smaller key wins; on equal keys the
// earlier insertion wins.
type minHeap[T any] []entry[T]

func (h minHeap[T]) Len() int { return len(h) }

func (h minHeap[T]) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}

	return h[i].seq < h[j].seq
}

func (h minHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends x; called by heap.Push.
func (h *minHeap[T]) Push(x any) { *h = append(*h, x.(entry[T])) }

// Pop removes and returns the last element; called by heap.Pop.
func (h *minHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}

// Queue is a min-ordered priority queue of values of type T keyed by int64.
// The zero value is not usable; construct with NewMin. Not safe for
// concurrent use — each algorithm invocation owns its queue.
type Queue[T any] struct {
	h   minHeap[T]
	seq uint64
}

// NewMin returns an empty queue with capacity for hint entries.
func NewMin[T any](hint int) *Queue[T] {
	return &Queue[T]{h: make(minHeap[T], 0, hint)}
}

// Insert adds value with the given ordering key.
// Complexity: O(log n).
func (q *Queue[T]) Insert(value T, key int64) {
	q.seq++
	heap.Push(&q.h, entry[T]{value: value, key: key, seq: q.seq})
}

// ExtractMin removes and returns the value with the smallest key, along with
// that key. Equal keys come out in insertion order. Returns ErrEmptyQueue if
// the queue is empty.
// Complexity: O(log n).
func (q *Queue[T]) ExtractMin() (T, int64, error) {
	if len(q.h) == 0 {
		var zero T

		return zero, 0, ErrEmptyQueue
	}
	e := heap.Pop(&q.h).(entry[T])

	return e.value, e.key, nil
}

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[T]) IsEmpty() bool { return len(q.h) == 0 }

// Len returns the number of queued entries, stale ones included.
func (q *Queue[T]) Len() int { return len(q.h) }
