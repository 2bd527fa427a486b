package simulate

import "time"

// Stats accumulates the measurements spec.md §4.5 names, plus the
// full per-call timing breakdown original_source/statistics.rs reports
// beyond the two CSV-bound averages.
type Stats struct {
	Success           bool
	TotalMoves        int
	OptimalPathLength int
	ReplanCount       int
	AStarCalls        int
	DStarCalls        int

	ObserveTimes  []time.Duration
	FindPathTimes []time.Duration

	ExecutionTime time.Duration
}

// RouteEfficiency is total moves over the walls-only optimal path length.
// Zero optimal length (start == goal) reports 0 rather than dividing by
// zero.
func (s *Stats) RouteEfficiency() float64 {
	if s.OptimalPathLength == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.OptimalPathLength)
}

func averageNs(durations []time.Duration) int64 {
	if len(durations) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range durations {
		total += d
	}
	return total.Nanoseconds() / int64(len(durations))
}

// AverageObserveTimeNs is the mean Agent.Observe duration across the run.
func (s *Stats) AverageObserveTimeNs() int64 { return averageNs(s.ObserveTimes) }

// AverageFindPathTimeNs is the mean Engine.FindPath duration across the run.
func (s *Stats) AverageFindPathTimeNs() int64 { return averageNs(s.FindPathTimes) }

// TotalPathfindingCalls is the number of FindPath invocations made
// during the run (the initial call plus every replan).
func (s *Stats) TotalPathfindingCalls() int { return len(s.FindPathTimes) }
