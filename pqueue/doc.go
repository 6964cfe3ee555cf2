// Package pqueue implements an indexed binary min-heap: a priority queue
// that tracks each element's current array position so DecreaseKey runs in
// genuine O(log n), not the push-a-duplicate-and-skip-stale-pops pattern
// pathfinding and spanning-tree code gets over container/heap directly.
//
// The heap satisfies container/heap.Interface internally (same idiom the
// elsewhere in this module) but wraps it behind a small typed API so callers
// never touch heap.Push/heap.Pop directly and never see the position index.
package pqueue
