// Package maze builds perfect mazes (spanning trees over a cell grid) and
// answers wall queries for the movement code.
package maze

// Directions, clockwise from up.
const (
	Up = iota
	Right
	Down
	Left
)

var dx = [4]int{0, 1, 0, -1}
var dy = [4]int{-1, 0, 1, 0}

// Opposite returns the direction pointing back at the caller.
func Opposite(d int) int { return (d + 2) % 4 }

// Delta returns the cell offset of one step in direction d.
func Delta(d int) (int, int) { return dx[d], dy[d] }

type Point struct {
	X, Y int
}

// Cell carries a 4-bit passage mask, one bit per direction. A set bit means
// the wall toward that neighbor is open. After generation bits only ever get
// set, never cleared.
type Cell struct {
	X, Y     int
	Passages uint8
}

// Open reports whether the passage toward direction d is carved.
func (c *Cell) Open(d int) bool { return c.Passages&(1<<uint(d)) != 0 }

func (c *Cell) carve(d int) { c.Passages |= 1 << uint(d) }

// Maze owns a dense row-major grid of cells plus the start and goal corners.
// Immutable once Generate returns.
type Maze struct {
	Cols, Rows int
	Cells      []Cell
	Start      Point
	Goal       Point
}

// At returns the cell at (x,y), nil when outside the grid.
func (m *Maze) At(x, y int) *Cell {
	if x < 0 || x >= m.Cols || y < 0 || y >= m.Rows {
		return nil
	}
	return &m.Cells[y*m.Cols+x]
}

// CanMove reports whether one step from (x,y) in direction d stays on the
// grid and passes through a carved wall. Out-of-range input is plain false,
// never a panic.
func (m *Maze) CanMove(x, y, d int) bool {
	c := m.At(x, y)
	if c == nil || d < Up || d > Left {
		return false
	}
	if m.At(x+dx[d], y+dy[d]) == nil {
		return false
	}
	return c.Open(d)
}

// PassagePairs counts carved passages, each shared wall exactly once. A
// perfect maze has Cols*Rows-1 of them.
func (m *Maze) PassagePairs() int {
	n := 0
	for i := range m.Cells {
		if m.Cells[i].Open(Right) {
			n++
		}
		if m.Cells[i].Open(Down) {
			n++
		}
	}
	return n
}

// Masks copies out the raw passage bits, row-major. Used by the monitor
// snapshot.
func (m *Maze) Masks() []uint8 {
	out := make([]uint8, len(m.Cells))
	for i := range m.Cells {
		out[i] = m.Cells[i].Passages
	}
	return out
}

// Generate builds a perfect maze. The same seed always yields the same maze.
func Generate(cols, rows int, seed uint32) *Maze {
	return GenerateWith(cols, rows, NewSource(seed))
}

// GenerateWith carves a spanning tree with an iterative randomized
// depth-first backtracker, taking randomness from src. Start is (0,0), goal
// the far corner. Degenerate 1xN / Nx1 / 1x1 grids are fine, they just have
// nothing much to carve.
func GenerateWith(cols, rows int, src Source) *Maze {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	m := &Maze{
		Cols:  cols,
		Rows:  rows,
		Cells: make([]Cell, cols*rows),
		Start: Point{0, 0},
		Goal:  Point{cols - 1, rows - 1},
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			m.Cells[y*cols+x] = Cell{X: x, Y: y}
		}
	}

	visited := make([]bool, cols*rows)
	visited[0] = true
	stack := make([]Point, 1, cols*rows)
	stack[0] = Point{0, 0}
	var open [4]int

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		n := 0
		for d := Up; d <= Left; d++ {
			nx, ny := curr.X+dx[d], curr.Y+dy[d]
			if nx < 0 || nx >= cols || ny < 0 || ny >= rows {
				continue
			}
			if !visited[ny*cols+nx] {
				open[n] = d
				n++
			}
		}
		if n == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		d := open[int(src.Float64()*float64(n))]
		nx, ny := curr.X+dx[d], curr.Y+dy[d]
		// both sides carve, passages are always mutual
		m.At(curr.X, curr.Y).carve(d)
		m.At(nx, ny).carve(Opposite(d))
		visited[ny*cols+nx] = true
		stack = append(stack, Point{nx, ny})
	}
	return m
}
