package agent_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/agent"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

func TestObserveIgnoresWallsAndOutOfRadius(t *testing.T) {
	g, err := grid.New(10, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9})
	require.NoError(t, err)

	g.Set(grid.Position{X: 1, Y: 0}, grid.Wall)
	g.Set(grid.Position{X: 2, Y: 0}, grid.Obstacle) // inside radius
	g.Set(grid.Position{X: 5, Y: 5}, grid.Obstacle) // outside radius

	a := agent.New(grid.Position{X: 0, Y: 0}, 2)
	a.Observe(g)

	_, hasObstacle := a.KnownObstacles[grid.Position{X: 2, Y: 0}]
	require.True(t, hasObstacle)

	_, hasWall := a.KnownObstacles[grid.Position{X: 1, Y: 0}]
	require.False(t, hasWall, "walls are never recorded in KnownObstacles")

	_, hasFar := a.KnownObstacles[grid.Position{X: 5, Y: 5}]
	require.False(t, hasFar, "obstacles outside the sensing box are not known")
}

func TestObserveReDerivesEachCall(t *testing.T) {
	g, err := grid.New(10, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9})
	require.NoError(t, err)

	a := agent.New(grid.Position{X: 0, Y: 0}, 3)
	g.Set(grid.Position{X: 1, Y: 1}, grid.Obstacle)
	a.Observe(g)
	require.Len(t, a.KnownObstacles, 1)

	g.Set(grid.Position{X: 1, Y: 1}, grid.Empty)
	a.Observe(g)
	require.Len(t, a.KnownObstacles, 0, "stale obstacle must not persist once cleared")
}

func TestObserveClampsToGridBounds(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)

	a := agent.New(grid.Position{X: 0, Y: 0}, 10)
	a.Observe(g) // must not panic despite radius exceeding grid bounds
	require.Empty(t, a.KnownObstacles)
}
