package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable floods from start through open passages and counts cells.
func reachable(m *Maze) int {
	seen := make([]bool, m.Cols*m.Rows)
	seen[m.Start.Y*m.Cols+m.Start.X] = true
	queue := []Point{m.Start}
	count := 0
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++
		for d := Up; d <= Left; d++ {
			if !m.CanMove(c.X, c.Y, d) {
				continue
			}
			ddx, ddy := Delta(d)
			nx, ny := c.X+ddx, c.Y+ddy
			if !seen[ny*m.Cols+nx] {
				seen[ny*m.Cols+nx] = true
				queue = append(queue, Point{nx, ny})
			}
		}
	}
	return count
}

func TestGeneratePerfectMaze(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 8}, {8, 1}, {2, 2}, {5, 5}, {7, 9}, {12, 12}}
	for _, s := range sizes {
		cols, rows := s[0], s[1]
		m := Generate(cols, rows, 1234)
		require.Equal(t, cols*rows, len(m.Cells))
		assert.Equal(t, cols*rows-1, m.PassagePairs(), "size %dx%d", cols, rows)
		assert.Equal(t, cols*rows, reachable(m), "size %dx%d", cols, rows)
		assert.Equal(t, Point{0, 0}, m.Start)
		assert.Equal(t, Point{cols - 1, rows - 1}, m.Goal)
	}
}

func TestGenerate5x5Seed42(t *testing.T) {
	m := Generate(5, 5, 42)
	assert.Equal(t, 24, m.PassagePairs())
	assert.Equal(t, 25, reachable(m))
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(9, 9, 77)
	b := Generate(9, 9, 77)
	require.Equal(t, a.Cells, b.Cells)

	c := Generate(9, 9, 78)
	assert.NotEqual(t, a.Cells, c.Cells, "different seeds should differ on a 9x9 grid")
}

func TestMutualPassages(t *testing.T) {
	m := Generate(11, 7, 5)
	for _, c := range m.Cells {
		for d := Up; d <= Left; d++ {
			if !c.Open(d) {
				continue
			}
			ddx, ddy := Delta(d)
			n := m.At(c.X+ddx, c.Y+ddy)
			require.NotNil(t, n, "open passage must have a neighbor")
			assert.True(t, n.Open(Opposite(d)))
		}
	}
}

func TestCanMoveBounds(t *testing.T) {
	m := Generate(4, 4, 9)
	// off-grid coordinates are false, not a panic
	assert.False(t, m.CanMove(-1, 0, Right))
	assert.False(t, m.CanMove(0, -1, Down))
	assert.False(t, m.CanMove(4, 0, Left))
	assert.False(t, m.CanMove(0, 4, Up))
	assert.False(t, m.CanMove(100, 100, Up))
	// moves that would leave the grid are false regardless of the mask
	assert.False(t, m.CanMove(0, 0, Up))
	assert.False(t, m.CanMove(0, 0, Left))
	assert.False(t, m.CanMove(3, 3, Right))
	assert.False(t, m.CanMove(3, 3, Down))
	// junk direction
	assert.False(t, m.CanMove(1, 1, 4))
	assert.False(t, m.CanMove(1, 1, -1))
}

// fixed source that always picks the first candidate
type zeroSource struct{}

func (zeroSource) Float64() float64 { return 0 }

func TestGenerateWithInjectedSource(t *testing.T) {
	// With the first candidate always chosen the 2x2 walk is Right, Down,
	// Left, leaving only the start's top-right wall pair uncarved.
	m := GenerateWith(2, 2, zeroSource{})
	want := []uint8{
		1 << Right,             // (0,0)
		1<<Left | 1<<Down,      // (1,0)
		1 << Right,             // (0,1)
		1<<Up | 1<<Left,        // (1,1)
	}
	got := m.Masks()
	require.Equal(t, want, got)
	assert.Equal(t, 3, m.PassagePairs())
}

func TestOneByOne(t *testing.T) {
	m := Generate(1, 1, 3)
	assert.Equal(t, m.Start, m.Goal)
	assert.Equal(t, 0, m.PassagePairs())
	assert.Equal(t, uint8(0), m.Cells[0].Passages)
}
