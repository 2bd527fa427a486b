// Package pathfind implements the three pathfinding engines — A*, D* Lite,
// and a hybrid dispatcher between them — behind one shared contract.
package pathfind

import "github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"

// Path is a sequence of positions from start to goal inclusive, where each
// consecutive pair is a 4-neighbor move.
type Path []grid.Position

// ObstacleSet is the agent's currently-known transient obstacle positions.
type ObstacleSet map[grid.Position]struct{}

// Engine is the uniform contract every pathfinding strategy exposes.
// Implementations may cache state across calls but must not retain
// references to g or obstacles beyond the call.
type Engine interface {
	// FindPath returns the path from start to goal given the current
	// obstacle knowledge, or (nil, false) if none exists.
	FindPath(g *grid.Grid, start, goal grid.Position, obstacles ObstacleSet) (Path, bool)

	// UpdateEnvironment lets incremental engines apply edge-cost deltas
	// eagerly, ahead of the next FindPath call. Stateless engines no-op.
	UpdateEnvironment(g *grid.Grid, obstacles ObstacleSet)

	// UsageStats reports (primary engine calls, secondary engine calls)
	// for dispatchers that delegate to more than one underlying engine.
	// Non-dispatching engines report (0, 0).
	UsageStats() (primary, secondary int)
}
