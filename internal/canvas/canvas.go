// Package canvas implements an addressable grid of colored characters with
// axis-aligned drawing primitives. Coordinates are y-up: (0, 0) is the
// bottom-left cell and y grows toward the top of the screen. Storage is
// row-major top-to-bottom, so row index = height-1-y.
//
// A Canvas is built fresh for every frame and thrown away after
// serialization; nothing in here is safe for concurrent use and nothing
// needs to be.
package canvas

import (
	"strings"

	"github.com/pingplot/pingplot/internal/errors"
)

// Point is an (x, y) coordinate in the y-up drawing space.
type Point struct {
	X, Y int
}

// Cell is one character plus its color tag. The zero value is a blank,
// uncolored cell.
type Cell struct {
	Ch    rune
	Color Color
}

const blankRune = ' '

// Canvas is a width × height grid of cells.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// New creates a blank canvas of the given dimensions.
func New(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for i := range cells {
		row := make([]Cell, width)
		for j := range row {
			row[j] = Cell{Ch: blankRune}
		}
		cells[i] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Set writes one cell. Writes outside the grid are discarded, so callers
// can draw against a terminal smaller than the composed scene without
// guarding every coordinate.
func (c *Canvas) Set(p Point, ch rune, color Color) {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return
	}
	c.cells[c.height-1-p.Y][p.X] = Cell{Ch: ch, Color: color}
}

// At returns the cell at p. Out-of-range reads return a blank cell.
func (c *Canvas) At(p Point) Cell {
	if p.X < 0 || p.X >= c.width || p.Y < 0 || p.Y >= c.height {
		return Cell{Ch: blankRune}
	}
	return c.cells[c.height-1-p.Y][p.X]
}

// paintAt resolves the painter at (x, y), treating a nil painter as uncolored.
func paintAt(paint Painter, x, y int) Color {
	if paint == nil {
		return None
	}
	return paint(x, y)
}

// HorizontalRun writes pattern along row for x in [from, to). A single-rune
// pattern repeats across the run; a longer pattern is written rune by rune.
func (c *Canvas) HorizontalRun(pattern string, row, from, to int, paint Painter) {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return
	}
	for i, x := 0, from; x < to; i, x = i+1, x+1 {
		ch := runes[0]
		if len(runes) > 1 {
			if i >= len(runes) {
				break
			}
			ch = runes[i]
		}
		c.Set(Point{x, row}, ch, paintAt(paint, x, row))
	}
}

// VerticalRun writes pattern along column for y in [from, to], inclusive of
// the top endpoint. Bars are drawn bottom-up, so the inclusive top keeps a
// one-unit bar one cell tall.
func (c *Canvas) VerticalRun(pattern string, column, from, to int, paint Painter) {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return
	}
	for i, y := 0, from; y <= to; i, y = i+1, y+1 {
		ch := runes[0]
		if len(runes) > 1 {
			if i >= len(runes) {
				break
			}
			ch = runes[i]
		}
		c.Set(Point{column, y}, ch, paintAt(paint, column, y))
	}
}

// Line draws an axis-aligned line between a and b. The glyph defaults to
// '|' for vertical and '-' for horizontal lines. Diagonal endpoints are a
// contract violation and return a GEOMETRY error.
func (c *Canvas) Line(a, b Point, paint Painter, glyph rune) error {
	switch {
	case a.X == b.X:
		lo, hi := a.Y, b.Y
		if lo > hi {
			lo, hi = hi, lo
		}
		g := glyph
		if g == 0 {
			g = '|'
		}
		c.VerticalRun(string(g), a.X, lo, hi, paint)
	case a.Y == b.Y:
		lo, hi := a.X, b.X
		if lo > hi {
			lo, hi = hi, lo
		}
		g := glyph
		if g == 0 {
			g = '-'
		}
		// Inclusive endpoints for lines; runs are half-open horizontally.
		c.HorizontalRun(string(g), a.Y, lo, hi+1, paint)
	default:
		return errors.New(errors.ErrGeometry,
			"Can't draw a diagonal line",
			"Canvas lines must share an x or y coordinate.")
	}
	return nil
}

// Box traces the rectangle between bottomLeft and topRight with line glyphs.
// With blank set, the perimeter is drawn in spaces instead; the plotter uses
// that to punch a quiet halo behind the stats overlay.
func (c *Canvas) Box(bottomLeft, topRight Point, paint Painter, blank bool) error {
	var glyph rune
	if blank {
		glyph = ' '
	}
	path := []Point{
		{bottomLeft.X, topRight.Y},
		topRight,
		{topRight.X, bottomLeft.Y},
		bottomLeft,
	}
	last := bottomLeft
	for _, p := range path {
		if err := c.Line(last, p, paint, glyph); err != nil {
			return err
		}
		last = p
	}
	return nil
}

// Rows serializes the canvas top row first. Color escape sequences are only
// emitted when the color changes across non-blank cells within a row, and a
// reset is emitted when a colored run returns to uncolored output. Two
// canvases with identical cell grids serialize to identical bytes no matter
// how they were drawn.
func (c *Canvas) Rows() []string {
	rows := make([]string, 0, c.height)
	for _, row := range c.cells {
		var b strings.Builder
		current := None
		for _, cell := range row {
			if cell.Color != current && cell.Ch != blankRune {
				if cell.Color == None {
					b.WriteString(resetSequence)
				} else {
					b.WriteString(cell.Color.Sequence())
				}
				current = cell.Color
			}
			b.WriteRune(cell.Ch)
		}
		rows = append(rows, b.String())
	}
	return rows
}

// String joins the serialized rows with newlines.
func (c *Canvas) String() string {
	return strings.Join(c.Rows(), "\n")
}
