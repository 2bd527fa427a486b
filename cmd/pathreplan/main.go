// Command pathreplan drives single-run and batch incremental-replanning
// simulations on a 2D grid with dynamically appearing and disappearing
// obstacles, comparing A*, D* Lite, and a hybrid dispatcher between them.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/edaniels/golog"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/config"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/report"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/simulate"
	"github.com/georgehyde-dot/dynamic-pathfinding/internal/visualize"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

var allAlgorithms = []config.Algorithm{config.AStar, config.DStarLite, config.Hybrid}

func run(args []string) int {
	cfg, err := config.Parse(args, time.Now().UnixNano())
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathreplan: %v\n", err)
		return 1
	}

	logger := golog.NewDevelopmentLogger("pathreplan")

	if cfg.BatchMode {
		return runBatch(logger, cfg)
	}
	return runSingle(logger, cfg)
}

func runBatch(logger golog.Logger, cfg *config.Config) int {
	w, err := report.NewWriter(cfg.OutputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathreplan: %v\n", err)
		return 1
	}
	defer w.Close()

	algorithms := []config.Algorithm{cfg.Algorithm}
	if cfg.Algorithm == config.AllAlgos {
		algorithms = allAlgorithms
	}

	if !cfg.Quiet {
		fmt.Printf("running %d simulations x %d algorithm(s) -> %s\n", cfg.NumSimulations, len(algorithms), cfg.OutputFile)
	}

	err = simulate.RunBatch(logger, simulate.BatchParams{
		GridSize:       cfg.GridSize,
		MinWalls:       cfg.MinWalls,
		MaxWalls:       cfg.MaxWalls,
		MinObstacles:   cfg.MinObstacles,
		MaxObstacles:   cfg.MaxObstacles,
		NumSimulations: cfg.NumSimulations,
		Algorithms:     algorithms,
		BaseSeed:       cfg.Seed,
		TimeoutSeconds: cfg.TimeoutSeconds,
	}, w)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathreplan: %v\n", err)
		return 1
	}

	if !cfg.Quiet {
		fmt.Println("batch complete")
	}
	return 0
}

func runSingle(logger golog.Logger, cfg *config.Config) int {
	if cfg.Algorithm == config.AllAlgos {
		return runComparison(logger, cfg)
	}

	stats, err := simulate.NewDriver(logger).Run(simulate.RunParams{
		GridSize:     cfg.GridSize,
		NumWalls:     cfg.NumWalls,
		NumObstacles: cfg.NumObstacles,
		Algorithm:    cfg.Algorithm,
		Seed:         cfg.Seed,
		OnTick:       tickRenderer(cfg),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pathreplan: %v\n", err)
		return 1
	}

	printSummary(cfg, stats)
	return 0
}

// runComparison runs every algorithm against the same seeded environment
// and prints a side-by-side summary, the non-batch analogue of
// --algorithm all in batch mode.
func runComparison(logger golog.Logger, cfg *config.Config) int {
	driver := simulate.NewDriver(logger)
	fmt.Printf("comparing algorithms on one environment (seed=%d)\n\n", cfg.Seed)

	anySetupFailure := false
	for _, algo := range allAlgorithms {
		stats, err := driver.Run(simulate.RunParams{
			GridSize:     cfg.GridSize,
			NumWalls:     cfg.NumWalls,
			NumObstacles: cfg.NumObstacles,
			Algorithm:    algo,
			Seed:         cfg.Seed,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "pathreplan: %s: %v\n", algo, err)
			anySetupFailure = true
			continue
		}
		fmt.Printf("%-12s success=%-5t moves=%-4d optimal=%-4d efficiency=%.3f a*=%-4d d*=%-4d\n",
			algo, stats.Success, stats.TotalMoves, stats.OptimalPathLength,
			stats.RouteEfficiency(), stats.AStarCalls, stats.DStarCalls)
	}
	if anySetupFailure {
		return 1
	}
	return 0
}

// tickRenderer returns the OnTick hook used for live visualization, or
// nil when visualization is disabled.
func tickRenderer(cfg *config.Config) func(*grid.Grid, grid.Position) {
	if cfg.NoVisualization {
		return nil
	}
	delay := time.Duration(cfg.DelayMs) * time.Millisecond
	return func(g *grid.Grid, agentPos grid.Position) {
		visualize.ClearScreen(os.Stdout)
		visualize.Render(os.Stdout, g, agentPos)
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

func printSummary(cfg *config.Config, stats *simulate.Stats) {
	if cfg.Quiet {
		return
	}
	if stats.Success {
		fmt.Println(visualize.GoalReachedBanner)
	} else {
		fmt.Println(visualize.StuckBanner)
	}
	fmt.Printf("algorithm=%s moves=%d optimal=%d efficiency=%.3f replans=%d\n",
		cfg.Algorithm, stats.TotalMoves, stats.OptimalPathLength, stats.RouteEfficiency(), stats.ReplanCount)
	fmt.Printf("pathfinding calls=%d (a*=%d d*=%d) avg-observe=%dns avg-find-path=%dns exec=%s\n",
		stats.TotalPathfindingCalls(), stats.AStarCalls, stats.DStarCalls,
		stats.AverageObserveTimeNs(), stats.AverageFindPathTimeNs(), stats.ExecutionTime)
}
