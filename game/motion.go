package game

import (
	"math"

	"github.com/dkolarov/kindermaze/layout"
	"github.com/dkolarov/kindermaze/maze"
)

// Speed is the per-tick pixel cap of the drag chase.
func Speed(cellSize float64) float64 {
	s := math.Floor(cellSize * 0.32)
	if s < 3 {
		return 3
	}
	return s
}

// Resolve moves (x, y) one tick toward the drag target (tx, ty) without ever
// crossing a closed wall. When the direct step is rejected it retries the X
// component alone, then the Y component, so the character slides along walls
// instead of sticking to them. blocked is true when neither axis made
// progress.
func Resolve(m *maze.Maze, met layout.Metrics, x, y, tx, ty float64) (nx, ny float64, blocked bool) {
	dx, dy := tx-x, ty-y
	dist := math.Hypot(dx, dy)
	if dist < 0.5 {
		return x, y, false
	}
	step := Speed(met.CellSize)
	if dist < step {
		step = dist
	}
	sx, sy := x+dx/dist*step, y+dy/dist*step
	if Traversable(m, met, x, y, sx, sy) {
		return sx, sy, false
	}
	if sx != x && Traversable(m, met, x, y, sx, y) {
		return sx, y, false
	}
	if sy != y && Traversable(m, met, x, y, x, sy) {
		return x, sy, false
	}
	return x, y, true
}

// Traversable maps both endpoints to cells and consults the passage mask.
// Staying inside one cell is always fine; direct neighbors need the shared
// wall carved; anything farther in one go is tunneling and rejected.
func Traversable(m *maze.Maze, met layout.Metrics, x0, y0, x1, y1 float64) bool {
	c0x, c0y, ok0 := met.CellFromPoint(x0, y0)
	c1x, c1y, ok1 := met.CellFromPoint(x1, y1)
	if !ok0 || !ok1 {
		return false
	}
	if c0x == c1x && c0y == c1y {
		return true
	}
	d, ok := stepDir(c0x, c0y, c1x, c1y)
	if !ok {
		return false
	}
	return m.CanMove(c0x, c0y, d)
}

// stepDir classifies a cell pair as a single orthogonal step.
func stepDir(x0, y0, x1, y1 int) (int, bool) {
	switch {
	case x1 == x0 && y1 == y0-1:
		return maze.Up, true
	case x1 == x0+1 && y1 == y0:
		return maze.Right, true
	case x1 == x0 && y1 == y0+1:
		return maze.Down, true
	case x1 == x0-1 && y1 == y0:
		return maze.Left, true
	}
	return 0, false
}
