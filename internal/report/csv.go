// Package report writes batch simulation results to CSV, matching the
// schema external tooling expects: one header line, one row per
// simulation x algorithm.
package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	pkgerrors "github.com/pkg/errors"
)

// ErrIOFailure wraps any CSV write error; it surfaces as a batch-level
// error rather than aborting an individual simulation.
var ErrIOFailure = errors.New("report: csv write failed")

var header = []string{
	"simulation_id", "algorithm", "grid_size", "num_walls", "num_obstacles",
	"success", "total_moves", "optimal_path_length", "route_efficiency",
	"execution_time_ms", "a_star_calls", "d_star_calls",
	"average_observe_time_ns", "average_find_path_time_ns", "total_pathfinding_calls",
}

// flushEvery bounds in-memory buffering: rows are flushed to disk in
// batches of this size.
const flushEvery = 100

// Row is one simulation x algorithm result.
type Row struct {
	SimulationID          int
	Algorithm             string
	GridSize              int
	NumWalls              int
	NumObstacles          int
	Success               bool
	TotalMoves            int
	OptimalPathLength     int
	RouteEfficiency       float64
	ExecutionTimeMs       int64
	AStarCalls            int
	DStarCalls            int
	AverageObserveTimeNs  int64
	AverageFindPathTimeNs int64
	TotalPathfindingCalls int
}

func (r Row) toCSV() []string {
	return []string{
		fmt.Sprintf("%d", r.SimulationID),
		r.Algorithm,
		fmt.Sprintf("%d", r.GridSize),
		fmt.Sprintf("%d", r.NumWalls),
		fmt.Sprintf("%d", r.NumObstacles),
		fmt.Sprintf("%t", r.Success),
		fmt.Sprintf("%d", r.TotalMoves),
		fmt.Sprintf("%d", r.OptimalPathLength),
		fmt.Sprintf("%.6f", r.RouteEfficiency),
		fmt.Sprintf("%d", r.ExecutionTimeMs),
		fmt.Sprintf("%d", r.AStarCalls),
		fmt.Sprintf("%d", r.DStarCalls),
		fmt.Sprintf("%d", r.AverageObserveTimeNs),
		fmt.Sprintf("%d", r.AverageFindPathTimeNs),
		fmt.Sprintf("%d", r.TotalPathfindingCalls),
	}
}

// Writer appends rows to a CSV file, writing the header once and
// flushing every flushEvery rows to bound memory use.
type Writer struct {
	f              *os.File
	w              *csv.Writer
	rowsSinceFlush int
}

// NewWriter opens path in append mode, writing the header line only if
// the file is new or empty.
func NewWriter(path string) (*Writer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, pkgerrors.Wrap(ErrIOFailure, err.Error())
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, pkgerrors.Wrap(ErrIOFailure, err.Error())
	}

	w := &Writer{f: f, w: csv.NewWriter(f)}
	if info.Size() == 0 {
		if err := w.w.Write(header); err != nil {
			f.Close()
			return nil, pkgerrors.Wrap(ErrIOFailure, err.Error())
		}
		w.w.Flush()
	}
	return w, nil
}

// WriteRow appends one row, flushing every flushEvery rows.
func (w *Writer) WriteRow(r Row) error {
	if err := w.w.Write(r.toCSV()); err != nil {
		return pkgerrors.Wrap(ErrIOFailure, err.Error())
	}
	w.rowsSinceFlush++
	if w.rowsSinceFlush >= flushEvery {
		w.w.Flush()
		w.rowsSinceFlush = 0
		if err := w.w.Error(); err != nil {
			return pkgerrors.Wrap(ErrIOFailure, err.Error())
		}
	}
	return nil
}

// Close flushes any buffered rows and closes the underlying file.
func (w *Writer) Close() error {
	w.w.Flush()
	if err := w.w.Error(); err != nil {
		w.f.Close()
		return pkgerrors.Wrap(ErrIOFailure, err.Error())
	}
	return w.f.Close()
}
