// Package envgen builds a seeded environment — a grid with walls and a
// pre-rolled obstacle timeline — from a set of CLI-facing parameters.
// Generation consumes no randomness beyond construction: simulation runs
// are fully deterministic given (seed, config).
package envgen

import (
	"math/rand"
	"sort"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

// Params configures a single environment generation.
type Params struct {
	GridSize      int
	NumWalls      int
	NumObstacles  int
	Seed          int64
	CycleInterval int // ticks between obstacle-timeline advances
}

// DefaultCycleInterval matches the cadence the simulation driver uses to
// advance the obstacle timeline when Params.CycleInterval is left zero.
const DefaultCycleInterval = 5

// Environment is a generated grid plus its pre-rolled obstacle timeline.
// The timeline is consumed, one group per CycleInterval ticks, by the
// simulation driver.
type Environment struct {
	Grid          *grid.Grid
	Timeline      []ObstacleGroup
	CycleInterval int
}

// ObstacleGroup is one pre-generated wave of transient obstacle cells.
type ObstacleGroup struct {
	Positions []grid.Position
}

// Generate builds a grid with start/goal/walls and a seeded obstacle
// timeline, per the environment generator contract: start is drawn from
// [0, N/2) x [0, N/2), goal from [N/2, N) x [N/2, N); walls are placed by
// rejection sampling (at most 3*NumWalls attempts); the timeline has
// floor(N^2 / CycleInterval) entries, each assembled by rejection
// sampling up to 10*NumObstacles attempts.
func Generate(p Params) (*Environment, error) {
	cycleInterval := p.CycleInterval
	if cycleInterval <= 0 {
		cycleInterval = DefaultCycleInterval
	}

	rng := rand.New(rand.NewSource(p.Seed))
	half := p.GridSize / 2

	start := grid.Position{X: rng.Intn(half), Y: rng.Intn(half)}
	goal := grid.Position{X: half + rng.Intn(p.GridSize-half), Y: half + rng.Intn(p.GridSize-half)}

	g, err := grid.New(p.GridSize, start, goal)
	if err != nil {
		return nil, err
	}

	placeWalls(g, rng, p.NumWalls)
	timeline := buildTimeline(g, rng, p.GridSize, p.NumObstacles, cycleInterval)

	return &Environment{Grid: g, Timeline: timeline, CycleInterval: cycleInterval}, nil
}

func placeWalls(g *grid.Grid, rng *rand.Rand, numWalls int) {
	placed := 0
	maxAttempts := 3 * numWalls
	for attempts := 0; placed < numWalls && attempts < maxAttempts; attempts++ {
		p := grid.Position{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
		if p == g.Start || p == g.Goal || g.Cell(p) != grid.Empty {
			continue
		}
		g.Set(p, grid.Wall)
		placed++
	}
}

func buildTimeline(g *grid.Grid, rng *rand.Rand, gridSize, numObstacles, cycleInterval int) []ObstacleGroup {
	entries := (gridSize * gridSize) / cycleInterval
	timeline := make([]ObstacleGroup, 0, entries)

	for i := 0; i < entries; i++ {
		seen := make(map[grid.Position]struct{}, numObstacles)
		maxAttempts := 10 * numObstacles
		for attempts := 0; len(seen) < numObstacles && attempts < maxAttempts; attempts++ {
			p := grid.Position{X: rng.Intn(gridSize), Y: rng.Intn(gridSize)}
			if p == g.Start || p == g.Goal || g.Cell(p) != grid.Empty {
				continue
			}
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
		}

		positions := make([]grid.Position, 0, len(seen))
		for p := range seen {
			positions = append(positions, p)
		}
		// Map iteration order is randomized per process; sort so the
		// timeline is byte-for-byte identical across runs for a fixed
		// seed, per the determinism requirement.
		sort.Slice(positions, func(i, j int) bool {
			if positions[i].X != positions[j].X {
				return positions[i].X < positions[j].X
			}
			return positions[i].Y < positions[j].Y
		})
		timeline = append(timeline, ObstacleGroup{Positions: positions})
	}

	return timeline
}
