package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/pathfind"
)

func TestAStarEmptyGridOptimalLength(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)

	path, ok := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)
	require.Len(t, path, 9)
	assertValidPath(t, g, path, g.Start, g.Goal, nil)
}

func TestAStarWallColumnDetour(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)
	for _, y := range []int{0, 1, 2, 3} {
		g.Set(grid.Position{X: 2, Y: y}, grid.Wall)
	}

	path, ok := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)
	require.Len(t, path, 9)
	assertValidPath(t, g, path, g.Start, g.Goal, nil)
}

func TestAStarUnreachableGoal(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)
	// Wall ring fully enclosing the goal.
	for _, p := range []grid.Position{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}} {
		g.Set(p, grid.Wall)
	}

	_, ok := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, nil)
	require.False(t, ok)
}

func TestAStarRespectsObstacles(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 0})
	require.NoError(t, err)
	obstacles := pathfind.ObstacleSet{{X: 2, Y: 0}: {}}

	path, ok := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, obstacles)
	require.True(t, ok)
	assertValidPath(t, g, path, g.Start, g.Goal, obstacles)
}

// assertValidPath checks the path-validity invariant from spec.md §8.
func assertValidPath(t *testing.T, g *grid.Grid, path pathfind.Path, start, goal grid.Position, obstacles pathfind.ObstacleSet) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])

	for i, p := range path {
		require.NotEqual(t, grid.Wall, g.Cell(p))
		if i > 0 && i < len(path)-1 {
			_, blocked := obstacles[p]
			require.False(t, blocked, "interior cell %v must not be an obstacle", p)
		}
		if i > 0 {
			require.Equal(t, 1, grid.ManhattanDist(path[i-1], p), "consecutive cells must be 4-neighbors")
		}
	}
}
