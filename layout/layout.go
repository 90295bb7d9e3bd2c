// Package layout maps maze cells onto canvas pixels. Pure geometry, derived
// per redraw, no state.
package layout

import "math"

// Padding kept between the maze and the canvas edge on the tight side.
const Padding = 16.0

// Metrics is the affine map from cell coordinates to pixels. Recomputed
// whenever the canvas size changes, never persisted.
type Metrics struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
	Cols     int
	Rows     int
}

// Compute fits a cols x rows grid of square cells into a w x h canvas,
// centered both ways.
func Compute(w, h float64, cols, rows int) Metrics {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	span := math.Min(w, h) - 2*Padding
	if span < 0 {
		span = 0
	}
	n := cols
	if rows > n {
		n = rows
	}
	size := math.Floor(span / float64(n))
	return Metrics{
		CellSize: size,
		OriginX:  (w - size*float64(cols)) / 2,
		OriginY:  (h - size*float64(rows)) / 2,
		Cols:     cols,
		Rows:     rows,
	}
}

// CellCenter returns the pixel center of cell (cx, cy).
func (m Metrics) CellCenter(cx, cy int) (float64, float64) {
	return m.OriginX + (float64(cx)+0.5)*m.CellSize,
		m.OriginY + (float64(cy)+0.5)*m.CellSize
}

// CellFromPoint inverts CellCenter for arbitrary pixels. ok is false when
// the point lies outside the grid (or the canvas is too small to hold one).
func (m Metrics) CellFromPoint(px, py float64) (cx, cy int, ok bool) {
	if m.CellSize <= 0 {
		return 0, 0, false
	}
	cx = int(math.Floor((px - m.OriginX) / m.CellSize))
	cy = int(math.Floor((py - m.OriginY) / m.CellSize))
	if cx < 0 || cx >= m.Cols || cy < 0 || cy >= m.Rows {
		return cx, cy, false
	}
	return cx, cy, true
}
