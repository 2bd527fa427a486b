package envgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/envgen"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

func TestGenerateStartGoalQuadrants(t *testing.T) {
	env, err := envgen.Generate(envgen.Params{GridSize: 20, NumWalls: 10, NumObstacles: 4, Seed: 7})
	require.NoError(t, err)

	half := 20 / 2
	require.Less(t, env.Grid.Start.X, half)
	require.Less(t, env.Grid.Start.Y, half)
	require.GreaterOrEqual(t, env.Grid.Goal.X, half)
	require.GreaterOrEqual(t, env.Grid.Goal.Y, half)
}

func TestGenerateDeterministicForFixedSeed(t *testing.T) {
	params := envgen.Params{GridSize: 20, NumWalls: 15, NumObstacles: 5, Seed: 42}

	a, err := envgen.Generate(params)
	require.NoError(t, err)
	b, err := envgen.Generate(params)
	require.NoError(t, err)

	require.Equal(t, a.Grid.Start, b.Grid.Start)
	require.Equal(t, a.Grid.Goal, b.Grid.Goal)
	require.Equal(t, a.Timeline, b.Timeline)
	for x := 0; x < a.Grid.Size; x++ {
		for y := 0; y < a.Grid.Size; y++ {
			p := grid.Position{X: x, Y: y}
			require.Equal(t, a.Grid.Cell(p), b.Grid.Cell(p))
		}
	}
}

func TestGenerateNeverWallsStartOrGoal(t *testing.T) {
	env, err := envgen.Generate(envgen.Params{GridSize: 10, NumWalls: 200, NumObstacles: 3, Seed: 1})
	require.NoError(t, err)

	require.Equal(t, grid.Empty, env.Grid.Cell(env.Grid.Start))
	require.Equal(t, grid.Empty, env.Grid.Cell(env.Grid.Goal))
}

func TestGenerateTimelineEntryCount(t *testing.T) {
	env, err := envgen.Generate(envgen.Params{GridSize: 20, NumWalls: 5, NumObstacles: 4, Seed: 3, CycleInterval: 5})
	require.NoError(t, err)

	require.Len(t, env.Timeline, (20*20)/5)
}
