package simulate

import (
	"math/rand"
	"time"

	"github.com/edaniels/golog"
	pkgerrors "github.com/pkg/errors"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/config"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/report"
)

// BatchParams configures a sequence of simulations with randomized
// wall/obstacle counts drawn from the configured ranges.
type BatchParams struct {
	GridSize       int
	MinWalls       int
	MaxWalls       int
	MinObstacles   int
	MaxObstacles   int
	NumSimulations int
	Algorithms     []config.Algorithm
	BaseSeed       int64
	TimeoutSeconds int
}

// RunBatch runs NumSimulations simulations (each against every requested
// algorithm, sharing a seed so they see identical environments) and
// writes one CSV row per simulation x algorithm. It honors a wall-clock
// timeout checked between simulations. Per-run failures never abort the
// batch: a run that fails at setup is logged and recorded as a failed
// row. Only a CSV write error aborts the batch.
func RunBatch(logger golog.Logger, p BatchParams, w *report.Writer) error {
	deadline := time.Now().Add(time.Duration(p.TimeoutSeconds) * time.Second)
	rng := rand.New(rand.NewSource(p.BaseSeed))
	driver := NewDriver(logger)

	for simID := 1; simID <= p.NumSimulations; simID++ {
		if time.Now().After(deadline) {
			logger.Warnw("batch timeout reached", "completed", simID-1, "requested", p.NumSimulations)
			break
		}

		numWalls := randInRange(rng, p.MinWalls, p.MaxWalls)
		numObstacles := randInRange(rng, p.MinObstacles, p.MaxObstacles)
		seed := rng.Int63()

		for _, algo := range p.Algorithms {
			stats, err := driver.Run(RunParams{
				GridSize:     p.GridSize,
				NumWalls:     numWalls,
				NumObstacles: numObstacles,
				Algorithm:    algo,
				Seed:         seed,
			})
			if err != nil {
				logger.Warnw("simulation setup failed", "simulation_id", simID, "algorithm", algo, "error", err)
				stats = &Stats{Success: false}
			}

			row := report.Row{
				SimulationID:          simID,
				Algorithm:             string(algo),
				GridSize:              p.GridSize,
				NumWalls:              numWalls,
				NumObstacles:          numObstacles,
				Success:               stats.Success,
				TotalMoves:            stats.TotalMoves,
				OptimalPathLength:     stats.OptimalPathLength,
				RouteEfficiency:       stats.RouteEfficiency(),
				ExecutionTimeMs:       stats.ExecutionTime.Milliseconds(),
				AStarCalls:            stats.AStarCalls,
				DStarCalls:            stats.DStarCalls,
				AverageObserveTimeNs:  stats.AverageObserveTimeNs(),
				AverageFindPathTimeNs: stats.AverageFindPathTimeNs(),
				TotalPathfindingCalls: stats.TotalPathfindingCalls(),
			}
			if err := w.WriteRow(row); err != nil {
				return pkgerrors.Wrap(report.ErrIOFailure, err.Error())
			}
		}
	}

	return nil
}

func randInRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
