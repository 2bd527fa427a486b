// Package visualize renders a grid and agent state to a terminal using
// ANSI escape sequences.
package visualize

import (
	"fmt"
	"io"

	"github.com/georgehyde-dot/dynamic-pathfinding/internal/grid"
)

// ClearScreen emits the ANSI clear-screen-and-home sequence.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\x1b[2J\x1b[1;1H")
}

// Render draws the grid: S=start, G=goal, A=agent, #=Wall, O=Obstacle,
// .=Empty, with row and column indices labelled.
func Render(w io.Writer, g *grid.Grid, agentPos grid.Position) {
	fmt.Fprint(w, "   ")
	for x := 0; x < g.Size; x++ {
		fmt.Fprintf(w, "%2d", x)
	}
	fmt.Fprintln(w)

	for y := 0; y < g.Size; y++ {
		fmt.Fprintf(w, "%2d ", y)
		for x := 0; x < g.Size; x++ {
			p := grid.Position{X: x, Y: y}
			fmt.Fprintf(w, " %s", symbolFor(g, p, agentPos))
		}
		fmt.Fprintln(w)
	}
}

func symbolFor(g *grid.Grid, p, agentPos grid.Position) string {
	switch {
	case p == agentPos:
		return "A"
	case g.Cell(p) == grid.Wall:
		return "#"
	case g.Cell(p) == grid.Obstacle:
		return "O"
	case p == g.Goal:
		return "G"
	case p == g.Start:
		return "S"
	default:
		return "."
	}
}

// GoalReachedBanner and StuckBanner are printed at the end of a
// non-batch run, distinguishing a clean finish from an aborted one.
const (
	GoalReachedBanner = "goal reached"
	StuckBanner       = "agent got stuck"
)
