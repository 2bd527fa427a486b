package pathfind

import (
	"math"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

// DStarLite is the incremental backward-search engine following the
// Koenig-Likhachev 2002 formulation. It keeps g/rhs tables and a priority
// queue of locally-inconsistent vertices across calls, updating only the
// neighborhood of cells whose passability changed.
type DStarLite struct {
	g   map[grid.Position]float64
	rhs map[grid.Position]float64
	u   *lazyQueue

	kM      float64
	sStart  grid.Position
	sGoal   grid.Position
	sLast   grid.Position

	lastObstacles ObstacleSet
	initialized   bool
}

// NewDStarLite returns an uninitialized D* Lite engine; state is built on
// the first FindPath call.
func NewDStarLite() *DStarLite {
	return &DStarLite{}
}

func (d *DStarLite) getG(p grid.Position) float64 {
	if v, ok := d.g[p]; ok {
		return v
	}
	return math.Inf(1)
}

func (d *DStarLite) getRhs(p grid.Position) float64 {
	if v, ok := d.rhs[p]; ok {
		return v
	}
	return math.Inf(1)
}

func heuristic(a, b grid.Position) float64 {
	return float64(grid.ManhattanDist(a, b))
}

// calcKey computes key(s) = (min(g,rhs) + h(s_start,s) + k_m, min(g,rhs)).
// IEEE 754 infinity arithmetic already saturates (Inf + finite = Inf), so
// no explicit saturating-add helper is needed.
func (d *DStarLite) calcKey(s grid.Position) dsKey {
	m := math.Min(d.getG(s), d.getRhs(s))
	return dsKey{K1: m + heuristic(d.sStart, s) + d.kM, K2: m}
}

// edgeCost is c(u, v): 1 if v is in-bounds, not a Wall, and not currently
// obstructed; otherwise infinite. Wall exclusion is handled by the caller
// only ever offering grid.AllNeighbors(u) as candidate v's.
func edgeCost(v grid.Position, obstacles ObstacleSet) float64 {
	if _, blocked := obstacles[v]; blocked {
		return math.Inf(1)
	}
	return 1
}

func (d *DStarLite) initialize(start, goal grid.Position, obstacles ObstacleSet) {
	d.g = make(map[grid.Position]float64)
	d.rhs = make(map[grid.Position]float64)
	d.u = newLazyQueue()
	d.kM = 0
	d.sStart = start
	d.sGoal = goal
	d.sLast = start
	d.rhs[goal] = 0
	d.u.insert(goal, d.calcKey(goal))
	d.lastObstacles = cloneObstacles(obstacles)
	d.initialized = true
}

func (d *DStarLite) computeRhs(u grid.Position, gr *grid.Grid, obstacles ObstacleSet) float64 {
	if u == d.sGoal {
		return 0
	}
	best := math.Inf(1)
	for _, v := range gr.AllNeighbors(u) {
		candidate := edgeCost(v, obstacles) + d.getG(v)
		if candidate < best {
			best = candidate
		}
	}
	return best
}

func (d *DStarLite) updateVertex(u grid.Position, gr *grid.Grid, obstacles ObstacleSet) {
	if u != d.sGoal {
		d.rhs[u] = d.computeRhs(u, gr, obstacles)
	}
	d.u.remove(u)
	if d.getG(u) != d.getRhs(u) {
		d.u.insert(u, d.calcKey(u))
	}
}

func (d *DStarLite) computeShortestPath(gr *grid.Grid, obstacles ObstacleSet) {
	for !d.u.isEmpty() && (d.u.topKey().less(d.calcKey(d.sStart)) || d.getRhs(d.sStart) != d.getG(d.sStart)) {
		u, kOld := d.u.pop()
		kNew := d.calcKey(u)

		if kOld.less(kNew) {
			d.u.insert(u, kNew)
			continue
		}

		if d.getG(u) > d.getRhs(u) {
			d.g[u] = d.getRhs(u)
			for _, p := range gr.AllNeighbors(u) {
				d.updateVertex(p, gr, obstacles)
			}
		} else {
			d.g[u] = math.Inf(1)
			d.updateVertex(u, gr, obstacles)
			for _, p := range gr.AllNeighbors(u) {
				d.updateVertex(p, gr, obstacles)
			}
		}
	}
}

// applyObstacleDelta propagates edge-cost changes for exactly the cells
// that entered or left obstacles since the last call, plus their
// neighbors. Idempotent: calling it twice with the same obstacles is a
// no-op the second time, since the symmetric difference is then empty.
func (d *DStarLite) applyObstacleDelta(gr *grid.Grid, obstacles ObstacleSet) {
	for pos := range symmetricDiff(d.lastObstacles, obstacles) {
		d.updateVertex(pos, gr, obstacles)
		for _, n := range gr.AllNeighbors(pos) {
			d.updateVertex(n, gr, obstacles)
		}
	}
	d.lastObstacles = cloneObstacles(obstacles)
}

// UpdateEnvironment implements Engine.
func (d *DStarLite) UpdateEnvironment(gr *grid.Grid, obstacles ObstacleSet) {
	if !d.initialized {
		return
	}
	d.applyObstacleDelta(gr, obstacles)
}

// FindPath implements Engine.
func (d *DStarLite) FindPath(gr *grid.Grid, start, goal grid.Position, obstacles ObstacleSet) (Path, bool) {
	switch {
	case !d.initialized || goal != d.sGoal:
		d.initialize(start, goal, obstacles)
	case start != d.sStart:
		d.kM += heuristic(d.sLast, start)
		d.sLast = d.sStart
		d.sStart = start
	}

	d.applyObstacleDelta(gr, obstacles)
	d.computeShortestPath(gr, obstacles)

	if math.IsInf(d.getG(d.sStart), 1) {
		return nil, false
	}

	path := Path{d.sStart}
	current := d.sStart
	for i := 0; i < gr.Size*gr.Size && current != goal; i++ {
		best := math.Inf(1)
		var next grid.Position
		found := false
		for _, v := range gr.AllNeighbors(current) {
			candidate := edgeCost(v, obstacles) + d.getG(v)
			if candidate < best {
				best = candidate
				next = v
				found = true
			}
		}
		if !found {
			return nil, false
		}
		path = append(path, next)
		current = next
	}
	if current != goal {
		return nil, false
	}
	return path, true
}

// UsageStats implements Engine; D* Lite does not delegate.
func (d *DStarLite) UsageStats() (int, int) { return 0, 0 }

func cloneObstacles(o ObstacleSet) ObstacleSet {
	out := make(ObstacleSet, len(o))
	for p := range o {
		out[p] = struct{}{}
	}
	return out
}

func symmetricDiff(a, b ObstacleSet) ObstacleSet {
	out := make(ObstacleSet)
	for p := range a {
		if _, ok := b[p]; !ok {
			out[p] = struct{}{}
		}
	}
	for p := range b {
		if _, ok := a[p]; !ok {
			out[p] = struct{}{}
		}
	}
	return out
}
