package pathfind

import (
	"container/heap"
	"math"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

// dsKey is a D* Lite priority, compared lexicographically.
type dsKey struct {
	K1, K2 float64
}

var infKey = dsKey{math.Inf(1), math.Inf(1)}

func (a dsKey) less(b dsKey) bool {
	if a.K1 != b.K1 {
		return a.K1 < b.K1
	}
	return a.K2 < b.K2
}

type pqEntry struct {
	pos        grid.Position
	key        dsKey
	generation int
	index      int
}

type pqHeap []*pqEntry

func (h pqHeap) Len() int            { return len(h) }
func (h pqHeap) Less(i, j int) bool  { return h[i].key.less(h[j].key) }
func (h pqHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pqHeap) Push(x any)         { e := x.(*pqEntry); e.index = len(*h); *h = append(*h, e) }
func (h *pqHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return e
}

// lazyQueue is U: a binary heap of (key, position, generation) entries
// with a per-position generation counter. Popping discards any entry
// whose attached generation is stale, avoiding O(log n) random-access
// removal.
type lazyQueue struct {
	items      pqHeap
	generation map[grid.Position]int
	inQueue    map[grid.Position]bool
}

func newLazyQueue() *lazyQueue {
	return &lazyQueue{
		items:      pqHeap{},
		generation: make(map[grid.Position]int),
		inQueue:    make(map[grid.Position]bool),
	}
}

// clean discards stale entries from the top of the heap.
func (q *lazyQueue) clean() {
	for len(q.items) > 0 {
		top := q.items[0]
		if top.generation != q.generation[top.pos] {
			heap.Pop(&q.items)
			continue
		}
		return
	}
}

func (q *lazyQueue) isEmpty() bool {
	q.clean()
	return len(q.items) == 0
}

func (q *lazyQueue) topKey() dsKey {
	q.clean()
	if len(q.items) == 0 {
		return infKey
	}
	return q.items[0].key
}

// pop removes and returns the vertex with the smallest key, along with
// the key it was popped with.
func (q *lazyQueue) pop() (grid.Position, dsKey) {
	q.clean()
	e := heap.Pop(&q.items).(*pqEntry)
	q.inQueue[e.pos] = false
	return e.pos, e.key
}

func (q *lazyQueue) contains(p grid.Position) bool {
	return q.inQueue[p]
}

// insert adds or re-adds p to U with key k, bumping its generation so any
// previously queued entry for p becomes stale.
func (q *lazyQueue) insert(p grid.Position, k dsKey) {
	q.generation[p]++
	q.inQueue[p] = true
	heap.Push(&q.items, &pqEntry{pos: p, key: k, generation: q.generation[p]})
}

// remove invalidates any queued entry for p without touching the heap
// array; stale entries are discarded lazily by clean().
func (q *lazyQueue) remove(p grid.Position) {
	if !q.inQueue[p] {
		return
	}
	q.inQueue[p] = false
	q.generation[p]++
}
