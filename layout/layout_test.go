package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeCenters(t *testing.T) {
	m := Compute(640, 480, 5, 5)
	require.Greater(t, m.CellSize, 0.0)
	// maze fits in the short dimension minus padding
	assert.LessOrEqual(t, m.CellSize*5, 480-2*Padding)
	// centered
	assert.InDelta(t, (640-m.CellSize*5)/2, m.OriginX, 1e-9)
	assert.InDelta(t, (480-m.CellSize*5)/2, m.OriginY, 1e-9)
}

func TestComputeIdempotent(t *testing.T) {
	a := Compute(800, 600, 7, 7)
	b := Compute(800, 600, 7, 7)
	assert.Equal(t, a, b)
}

func TestCellRoundTrip(t *testing.T) {
	cases := []struct {
		w, h       float64
		cols, rows int
	}{
		{640, 480, 5, 5},
		{480, 640, 12, 12},
		{333, 777, 7, 9},
		{1000, 1000, 1, 1},
		{500, 120, 9, 1},
	}
	for _, c := range cases {
		m := Compute(c.w, c.h, c.cols, c.rows)
		for cy := 0; cy < c.rows; cy++ {
			for cx := 0; cx < c.cols; cx++ {
				px, py := m.CellCenter(cx, cy)
				gx, gy, ok := m.CellFromPoint(px, py)
				require.True(t, ok, "%dx%d cell (%d,%d)", c.cols, c.rows, cx, cy)
				assert.Equal(t, cx, gx)
				assert.Equal(t, cy, gy)
			}
		}
	}
}

func TestCellFromPointOutside(t *testing.T) {
	m := Compute(640, 640, 5, 5)
	_, _, ok := m.CellFromPoint(-10, -10)
	assert.False(t, ok)
	_, _, ok = m.CellFromPoint(10000, 300)
	assert.False(t, ok)
	// just above the grid's top edge
	px, _ := m.CellCenter(0, 0)
	_, _, ok = m.CellFromPoint(px, m.OriginY-1)
	assert.False(t, ok)
}

func TestComputeTinyCanvas(t *testing.T) {
	m := Compute(10, 10, 12, 12)
	assert.Equal(t, 0.0, m.CellSize)
	_, _, ok := m.CellFromPoint(5, 5)
	assert.False(t, ok)
}
