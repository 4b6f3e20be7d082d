// Package pqueue provides the min-ordered priority-queue capability consumed
// by Dijkstra and Prim.
//
// Queue is a binary min-heap over int64 keys built on container/heap. Equal
// keys are extracted in insertion order (stable FIFO tie-break), which is
// what makes the path and MST outputs of the algorithm packages
// deterministic and testable.
//
// The queue deliberately has no decrease-key operation. The consuming
// algorithms use lazy deletion instead: when a better key is found for an
// item already queued, a fresh entry is inserted and the stale one is
// recognized and skipped when popped. ExtractMin on an empty queue returns
// ErrEmptyQueue — in correctly written algorithms that is a programming
// error, not a recoverable condition.
package pqueue
