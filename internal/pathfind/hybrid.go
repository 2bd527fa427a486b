package pathfind

import "github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"

// Hybrid dispatch thresholds, tuned empirically rather than derived.
const (
	startDisplacementThreshold = 3
	obstacleDeltaThreshold     = 5
)

// Hybrid runs A* for initial/major replans and D* Lite for small
// incremental updates, falling back to A* whenever D* Lite fails.
type Hybrid struct {
	astar      *AStar
	dstar      *DStarLite
	aStarCalls int
	dStarCalls int

	havePath      bool
	lastGoal      grid.Position
	lastStart     grid.Position
	lastGoalSet   bool
	lastObstacles ObstacleSet
}

// NewHybrid returns a hybrid dispatcher wrapping fresh A* and D* Lite
// engines.
func NewHybrid() *Hybrid {
	return &Hybrid{astar: NewAStar(), dstar: NewDStarLite()}
}

func (h *Hybrid) shouldUseAStar(start, goal grid.Position, obstacles ObstacleSet) bool {
	if !h.havePath {
		return true
	}
	if !h.lastGoalSet || goal != h.lastGoal {
		return true
	}
	if grid.ManhattanDist(start, h.lastStart) > startDisplacementThreshold {
		return true
	}
	if len(symmetricDiff(h.lastObstacles, obstacles)) > obstacleDeltaThreshold {
		return true
	}
	return false
}

// FindPath implements Engine.
func (h *Hybrid) FindPath(gr *grid.Grid, start, goal grid.Position, obstacles ObstacleSet) (Path, bool) {
	var path Path
	var ok bool

	if h.shouldUseAStar(start, goal, obstacles) {
		path, ok = h.astar.FindPath(gr, start, goal, obstacles)
		h.aStarCalls++
	} else {
		path, ok = h.dstar.FindPath(gr, start, goal, obstacles)
		h.dStarCalls++
		if !ok {
			path, ok = h.astar.FindPath(gr, start, goal, obstacles)
			h.aStarCalls++
		}
	}

	h.lastStart = start
	h.lastGoal = goal
	h.lastGoalSet = true
	h.lastObstacles = cloneObstacles(obstacles)
	h.havePath = ok

	return path, ok
}

// UpdateEnvironment implements Engine, forwarding to the D* Lite engine
// so its state stays current between dispatch decisions.
func (h *Hybrid) UpdateEnvironment(gr *grid.Grid, obstacles ObstacleSet) {
	h.dstar.UpdateEnvironment(gr, obstacles)
}

// UsageStats implements Engine, reporting (a_star_calls, d_star_calls),
// including A* calls made as a D* Lite fallback.
func (h *Hybrid) UsageStats() (int, int) {
	return h.aStarCalls, h.dStarCalls
}
