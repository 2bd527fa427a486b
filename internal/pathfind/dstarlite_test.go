package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/pathfind"
)

func TestDStarLiteEmptyGridOptimalLength(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)

	path, ok := pathfind.NewDStarLite().FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)
	require.Len(t, path, 9)
}

func TestDStarLiteEquivalenceWithAStar(t *testing.T) {
	g, err := grid.New(8, grid.Position{X: 0, Y: 0}, grid.Position{X: 7, Y: 7})
	require.NoError(t, err)
	for _, y := range []int{0, 1, 2, 3, 4, 5} {
		g.Set(grid.Position{X: 3, Y: y}, grid.Wall)
	}
	obstacles := pathfind.ObstacleSet{{X: 5, Y: 6}: {}}

	aPath, aOK := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, obstacles)
	dPath, dOK := pathfind.NewDStarLite().FindPath(g, g.Start, g.Goal, obstacles)

	require.Equal(t, aOK, dOK)
	require.Len(t, dPath, len(aPath))
}

func TestDStarLiteIncrementalIdempotence(t *testing.T) {
	g, err := grid.New(10, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9})
	require.NoError(t, err)

	d := pathfind.NewDStarLite()
	first, ok := d.FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)

	second, ok := d.FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)
	require.Equal(t, first, second)
}

func TestDStarLiteReplanAfterLocalObstacle(t *testing.T) {
	g, err := grid.New(10, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9})
	require.NoError(t, err)

	d := pathfind.NewDStarLite()
	_, ok := d.FindPath(g, g.Start, g.Goal, nil)
	require.True(t, ok)

	obstacles := pathfind.ObstacleSet{{X: 5, Y: 5}: {}}
	path, ok := d.FindPath(g, g.Start, g.Goal, obstacles)
	require.True(t, ok)
	for _, p := range path {
		_, blocked := obstacles[p]
		require.False(t, blocked)
	}
}

func TestDStarLiteUnreachableGoal(t *testing.T) {
	g, err := grid.New(5, grid.Position{X: 0, Y: 0}, grid.Position{X: 4, Y: 4})
	require.NoError(t, err)
	for _, p := range []grid.Position{{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 4, Y: 3}} {
		g.Set(p, grid.Wall)
	}

	_, ok := pathfind.NewDStarLite().FindPath(g, g.Start, g.Goal, nil)
	require.False(t, ok)
}

func TestDStarLiteFollowsMovingStart(t *testing.T) {
	g, err := grid.New(10, grid.Position{X: 0, Y: 0}, grid.Position{X: 9, Y: 9})
	require.NoError(t, err)

	d := pathfind.NewDStarLite()
	_, ok := d.FindPath(g, grid.Position{X: 0, Y: 0}, g.Goal, nil)
	require.True(t, ok)

	path, ok := d.FindPath(g, grid.Position{X: 1, Y: 0}, g.Goal, nil)
	require.True(t, ok)
	require.Equal(t, grid.Position{X: 1, Y: 0}, path[0])
	require.Equal(t, g.Goal, path[len(path)-1])
}
