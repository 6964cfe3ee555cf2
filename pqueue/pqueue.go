package pqueue

import (
	"container/heap"

	"github.com/mearman/graphbox/result"
)

// entry pairs an element with its priority and is the internal heap node.
type entry struct {
	elem     string
	priority float64
	index    int // current position in the backing slice; -1 once popped
}

// innerHeap implements container/heap.Interface over []*entry, exactly the
// shape a container/heap.Interface implementation uses, plus position bookkeeping in Swap.
type innerHeap []*entry

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *innerHeap) Push(x interface{}) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// Queue is an indexed binary min-heap over string-identified elements.
// Elements must be unique while present in the queue; re-Insert of a
// present element is rejected (use DecreaseKey instead).
type Queue struct {
	h         innerHeap
	positions map[string]*entry
}

// New returns an empty Queue.
func New() *Queue {
	return &Queue{positions: make(map[string]*entry)}
}

// Len reports the number of elements currently queued.
func (q *Queue) Len() int { return len(q.h) }

// IsEmpty reports whether the queue currently holds no elements.
func (q *Queue) IsEmpty() bool { return len(q.h) == 0 }

// Insert adds elem with the given priority. O(log n).
// Returns an InvalidInput error if elem is already present.
func (q *Queue) Insert(elem string, priority float64) error {
	if _, exists := q.positions[elem]; exists {
		return result.New(result.InvalidInput, "element %q already queued", elem).WithNode(elem)
	}
	e := &entry{elem: elem, priority: priority}
	q.positions[elem] = e
	heap.Push(&q.h, e)
	return nil
}

// ExtractMin removes and returns the element with the smallest priority.
// Returns ok=false if the queue is empty.
func (q *Queue) ExtractMin() (elem string, priority float64, ok bool) {
	if len(q.h) == 0 {
		return "", 0, false
	}
	e := heap.Pop(&q.h).(*entry)
	delete(q.positions, e.elem)
	return e.elem, e.priority, true
}

// ExtractMinBatch pops up to k elements in ascending priority order,
// unwrapped for hot perf paths that already know the queue is non-empty.
func (q *Queue) ExtractMinBatch(k int) []string {
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		elem, _, ok := q.ExtractMin()
		if !ok {
			break
		}
		out = append(out, elem)
	}
	return out
}

// DecreaseKey lowers elem's priority to newPriority in O(log n), rebalancing
// the heap from elem's tracked position upward.
//
// Returns an InvalidInput error if elem is absent or if newPriority is
// strictly greater than the element's current priority.
func (q *Queue) DecreaseKey(elem string, newPriority float64) error {
	e, ok := q.positions[elem]
	if !ok {
		return result.New(result.InvalidInput, "element %q not in queue", elem).WithNode(elem)
	}
	if newPriority > e.priority {
		return result.New(result.InvalidInput,
			"new priority %g is greater than current priority %g for %q", newPriority, e.priority, elem).WithNode(elem)
	}
	e.priority = newPriority
	heap.Fix(&q.h, e.index)
	return nil
}

// Peek returns the minimum element without removing it.
func (q *Queue) Peek() (elem string, priority float64, ok bool) {
	if len(q.h) == 0 {
		return "", 0, false
	}
	return q.h[0].elem, q.h[0].priority, true
}

// Contains reports whether elem is currently queued.
func (q *Queue) Contains(elem string) bool {
	_, ok := q.positions[elem]
	return ok
}
