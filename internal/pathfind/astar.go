package pathfind

import (
	"container/heap"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

// AStar is a stateless classical A* engine with a Manhattan heuristic and
// uniform move cost 1.
type AStar struct{}

// NewAStar returns a ready-to-use A* engine.
func NewAStar() *AStar { return &AStar{} }

type astarNode struct {
	pos    grid.Position
	g      int
	f      int
	parent *astarNode
	index  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int { return len(h) }
func (h astarHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	// Deterministic tie-break on position so enumeration order is fixed
	// for a given successor order, independent of heap internals.
	if h[i].pos.X != h[j].pos.X {
		return h[i].pos.X < h[j].pos.X
	}
	return h[i].pos.Y < h[j].pos.Y
}
func (h astarHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *astarHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// FindPath implements Engine.
func (a *AStar) FindPath(g *grid.Grid, start, goal grid.Position, obstacles ObstacleSet) (Path, bool) {
	open := &astarHeap{}
	heap.Init(open)
	heap.Push(open, &astarNode{pos: start, g: 0, f: grid.ManhattanDist(start, goal)})

	best := make(map[grid.Position]int)
	best[start] = 0
	closed := make(map[grid.Position]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)
		if closed[current.pos] {
			continue
		}
		closed[current.pos] = true

		if current.pos == goal {
			return reconstructAStarPath(current), true
		}

		for _, next := range g.Neighbors(current.pos, obstacles) {
			if closed[next] {
				continue
			}
			tentativeG := current.g + 1
			if existing, ok := best[next]; ok && existing <= tentativeG {
				continue
			}
			best[next] = tentativeG
			heap.Push(open, &astarNode{
				pos:    next,
				g:      tentativeG,
				f:      tentativeG + grid.ManhattanDist(next, goal),
				parent: current,
			})
		}
	}

	return nil, false
}

// UpdateEnvironment implements Engine; A* is stateless.
func (a *AStar) UpdateEnvironment(g *grid.Grid, obstacles ObstacleSet) {}

// UsageStats implements Engine; A* does not delegate.
func (a *AStar) UsageStats() (int, int) { return 0, 0 }

func reconstructAStarPath(node *astarNode) Path {
	var path Path
	for n := node; n != nil; n = n.parent {
		path = append(Path{n.pos}, path...)
	}
	return path
}
