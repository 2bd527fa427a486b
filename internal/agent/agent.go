// Package agent models the moving entity traversing the grid: its
// position, sensing radius, and re-derived view of nearby obstacles.
package agent

import "github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"

// Agent is the entity moving from Grid.Start toward Grid.Goal.
type Agent struct {
	Position grid.Position
	Radius   int

	// KnownObstacles is re-derived from scratch every Observe call. It
	// never carries state from a prior tick: the agent has no memory of
	// obstacles outside its current sensing box.
	KnownObstacles map[grid.Position]struct{}
}

// New creates an agent at start with the given sensing radius.
func New(start grid.Position, radius int) *Agent {
	return &Agent{
		Position:       start,
		Radius:         radius,
		KnownObstacles: make(map[grid.Position]struct{}),
	}
}

// Observe re-derives KnownObstacles from ground truth within the
// Chebyshev box [x±r, y±r], clamped to the grid. Only Obstacle cells are
// recorded; Walls are never added (callers check Walls directly against
// the grid).
func (a *Agent) Observe(g *grid.Grid) {
	known := make(map[grid.Position]struct{})

	minX, maxX := clamp(a.Position.X-a.Radius, 0, g.Size-1), clamp(a.Position.X+a.Radius, 0, g.Size-1)
	minY, maxY := clamp(a.Position.Y-a.Radius, 0, g.Size-1), clamp(a.Position.Y+a.Radius, 0, g.Size-1)

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			p := grid.Position{X: x, Y: y}
			if g.Cell(p) == grid.Obstacle {
				known[p] = struct{}{}
			}
		}
	}

	a.KnownObstacles = known
}

// Move sets the agent's position to the next cell on a path. It is the
// caller's responsibility to ensure next is a valid 4-neighbor move.
func (a *Agent) Move(next grid.Position) {
	a.Position = next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
