// Package simulate runs one end-to-end simulation: it builds an
// environment, drives the obstacle lifecycle tick by tick, triggers
// replans through a pathfind.Engine, and reports statistics.
package simulate

import (
	"errors"
	"time"

	"github.com/edaniels/golog"
	pkgerrors "github.com/pkg/errors"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/agent"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/config"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/envgen"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/pathfind"
)

// ErrNoPathAtSetup is returned when no walls-only path connects start to
// goal; the run never starts.
var ErrNoPathAtSetup = errors.New("simulate: no path from start to goal at setup")

// maxConsecutiveStuck is K from spec.md §4.5: after this many consecutive
// replan failures, the run aborts as failed.
const maxConsecutiveStuck = 5

// defaultPersistence is the remaining-cycles value assigned to a newly
// spawned obstacle group.
const defaultPersistence = 5

// defaultRadius is the agent's sensing radius when RunParams.Radius is
// left zero.
const defaultRadius = 3

// RunParams configures a single simulation run.
type RunParams struct {
	GridSize      int
	NumWalls      int
	NumObstacles  int
	Algorithm     config.Algorithm
	Seed          int64
	Radius        int
	CycleInterval int
	Persistence   int

	// OnTick, if set, is called once after setup and again after every
	// tick with the current grid and agent position. Callers use it to
	// render the run; the driver itself has no rendering or pacing
	// concerns.
	OnTick func(g *grid.Grid, agentPos grid.Position)
}

// Driver orchestrates one simulation run.
type Driver struct {
	logger golog.Logger
}

// NewDriver returns a driver that logs per-tick diagnostics through logger.
func NewDriver(logger golog.Logger) *Driver {
	return &Driver{logger: logger}
}

type activeGroup struct {
	positions []grid.Position
	remaining int
}

// Run executes one complete simulation and returns its statistics.
// A setup failure (no path at all) returns a non-nil error; every other
// outcome, including a stuck or iteration-capped run, is reported as a
// failed Stats value with a nil error, per spec.md §7's per-run-failure
// policy.
func (d *Driver) Run(p RunParams) (*Stats, error) {
	radius := p.Radius
	if radius <= 0 {
		radius = defaultRadius
	}
	persistence := p.Persistence
	if persistence <= 0 {
		persistence = defaultPersistence
	}

	start := time.Now()

	env, err := envgen.Generate(envgen.Params{
		GridSize:      p.GridSize,
		NumWalls:      p.NumWalls,
		NumObstacles:  p.NumObstacles,
		Seed:          p.Seed,
		CycleInterval: p.CycleInterval,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(err, "environment generation")
	}
	g := env.Grid

	optimalPath, ok := pathfind.NewAStar().FindPath(g, g.Start, g.Goal, nil)
	if !ok {
		d.logger.Warnw("no walls-only path from start to goal", "seed", p.Seed)
		return nil, ErrNoPathAtSetup
	}
	optimalLen := len(optimalPath) - 1

	engine, err := newEngine(p.Algorithm)
	if err != nil {
		return nil, err
	}

	stats := &Stats{OptimalPathLength: optimalLen}
	a := agent.New(g.Start, radius)

	finalize := func() *Stats {
		switch p.Algorithm {
		case config.Hybrid:
			stats.AStarCalls, stats.DStarCalls = engine.UsageStats()
		case config.DStarLite:
			stats.DStarCalls = stats.TotalPathfindingCalls()
		default:
			stats.AStarCalls = stats.TotalPathfindingCalls()
		}
		stats.ExecutionTime = time.Since(start)
		return stats
	}

	a.Observe(g)
	path, ok := timedFindPath(stats, engine, g, a.Position, g.Goal, a.KnownObstacles)
	if !ok {
		stats.Success = false
		return finalize(), nil
	}
	pathIndex := 0
	if p.OnTick != nil {
		p.OnTick(g, a.Position)
	}

	timelineIdx := 0
	ticksSinceSpawn := 0
	var active []*activeGroup
	consecutiveStuck := 0

	maxIterations := 4 * g.Size * g.Size
	for iter := 0; iter < maxIterations; iter++ {
		if a.Position == g.Goal {
			stats.Success = true
			break
		}

		obstaclesChanged := advanceTimeline(g, env, &active, &timelineIdx, &ticksSinceSpawn, persistence, a.Position)

		observeStart := time.Now()
		a.Observe(g)
		stats.ObserveTimes = append(stats.ObserveTimes, time.Since(observeStart))

		needsReplan := obstaclesChanged || pathBlocked(g, path, pathIndex, a.KnownObstacles)

		if needsReplan {
			engine.UpdateEnvironment(g, a.KnownObstacles)
			newPath, ok := timedFindPath(stats, engine, g, a.Position, g.Goal, a.KnownObstacles)
			stats.ReplanCount++
			if !ok {
				consecutiveStuck++
				stats.TotalMoves++
				d.logger.Debugw("stuck wait", "tick", iter, "consecutive", consecutiveStuck)
				if consecutiveStuck >= maxConsecutiveStuck {
					stats.Success = false
					return finalize(), nil
				}
				if p.OnTick != nil {
					p.OnTick(g, a.Position)
				}
				continue
			}
			path = newPath
			pathIndex = 0
			consecutiveStuck = 0
		}

		if pathIndex+1 >= len(path) {
			// Path already ends at the agent's position; nothing to
			// advance this tick (can happen right after a replan whose
			// path is just [position]).
			stats.TotalMoves++
			continue
		}

		pathIndex++
		a.Move(path[pathIndex])
		stats.TotalMoves++

		if p.OnTick != nil {
			p.OnTick(g, a.Position)
		}
	}

	// stats.Success remains false here unless the goal-reached break above
	// ran: either the iteration cap was hit, which is a failed run.
	clearRemainingObstacles(g, active)
	return finalize(), nil
}

func newEngine(algo config.Algorithm) (pathfind.Engine, error) {
	switch algo {
	case config.AStar:
		return pathfind.NewAStar(), nil
	case config.DStarLite:
		return pathfind.NewDStarLite(), nil
	case config.Hybrid:
		return pathfind.NewHybrid(), nil
	default:
		return nil, pkgerrors.Wrapf(config.ErrAlgorithmUnknown, "%q", algo)
	}
}

func timedFindPath(stats *Stats, engine pathfind.Engine, g *grid.Grid, start, goal grid.Position, obstacles pathfind.ObstacleSet) (pathfind.Path, bool) {
	t0 := time.Now()
	path, ok := engine.FindPath(g, start, goal, obstacles)
	stats.FindPathTimes = append(stats.FindPathTimes, time.Since(t0))
	return path, ok
}

// pathBlocked checks whether the next step, or a short lookahead window
// beyond it, is obstructed by the agent's current knowledge.
const lookaheadWindow = 3

func pathBlocked(g *grid.Grid, path pathfind.Path, index int, obstacles pathfind.ObstacleSet) bool {
	for i := index + 1; i < len(path) && i <= index+lookaheadWindow; i++ {
		p := path[i]
		if g.Cell(p) == grid.Wall {
			return true
		}
		if _, blocked := obstacles[p]; blocked {
			return true
		}
	}
	return false
}

// advanceTimeline decrements active obstacle groups, clears expired ones,
// and spawns the next timeline entry every CycleInterval ticks. It
// returns whether the ground-truth obstacle set changed this tick.
func advanceTimeline(g *grid.Grid, env *envgen.Environment, active *[]*activeGroup, timelineIdx *int, ticksSinceSpawn *int, persistence int, agentPos grid.Position) bool {
	changed := false

	kept := (*active)[:0]
	for _, grp := range *active {
		grp.remaining--
		if grp.remaining <= 0 {
			for _, p := range grp.positions {
				g.Set(p, grid.Empty)
			}
			changed = true
			continue
		}
		kept = append(kept, grp)
	}
	*active = kept

	*ticksSinceSpawn++
	if *ticksSinceSpawn >= env.CycleInterval && *timelineIdx < len(env.Timeline) {
		*ticksSinceSpawn = 0
		entry := env.Timeline[*timelineIdx]
		*timelineIdx++

		var placed []grid.Position
		for _, p := range entry.Positions {
			if p == g.Start || p == g.Goal || p == agentPos || g.Cell(p) != grid.Empty {
				continue
			}
			g.Set(p, grid.Obstacle)
			placed = append(placed, p)
		}
		if len(placed) > 0 {
			*active = append(*active, &activeGroup{positions: placed, remaining: persistence})
			changed = true
		}
	}

	return changed
}

func clearRemainingObstacles(g *grid.Grid, active []*activeGroup) {
	for _, grp := range active {
		for _, p := range grp.positions {
			g.Set(p, grid.Empty)
		}
	}
}
