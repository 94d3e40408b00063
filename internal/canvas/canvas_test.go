package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pingplot/pingplot/internal/errors"
)

func TestSet_YUpCoordinates(t *testing.T) {
	c := New(4, 3)
	c.Set(Point{0, 0}, 'a', None)
	c.Set(Point{3, 2}, 'b', None)

	rows := c.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "   b", rows[0], "y=2 is the top row")
	assert.Equal(t, "a   ", rows[2], "y=0 is the bottom row")
}

func TestSet_OutOfBoundsDiscarded(t *testing.T) {
	c := New(2, 2)
	c.Set(Point{-1, 0}, 'x', None)
	c.Set(Point{0, -1}, 'x', None)
	c.Set(Point{2, 0}, 'x', None)
	c.Set(Point{0, 2}, 'x', None)

	assert.Equal(t, "  \n  ", c.String(), "out-of-bounds writes must not land anywhere")
}

func TestHorizontalRun_HalfOpenRange(t *testing.T) {
	c := New(8, 4)
	c.HorizontalRun("#", 1, 2, 5, nil)

	for x := 0; x < 8; x++ {
		cell := c.At(Point{x, 1})
		if x >= 2 && x < 5 {
			assert.Equal(t, '#', cell.Ch, "column %d should be painted", x)
		} else {
			assert.Equal(t, ' ', cell.Ch, "column %d should be untouched", x)
		}
	}
}

func TestHorizontalRun_TextPattern(t *testing.T) {
	c := New(10, 2)
	c.HorizontalRun("abc", 0, 1, 4, nil)

	assert.Equal(t, 'a', c.At(Point{1, 0}).Ch)
	assert.Equal(t, 'b', c.At(Point{2, 0}).Ch)
	assert.Equal(t, 'c', c.At(Point{3, 0}).Ch)
}

func TestVerticalRun_InclusiveTop(t *testing.T) {
	c := New(4, 8)
	c.VerticalRun("█", 1, 2, 4, nil)

	assert.Equal(t, ' ', c.At(Point{1, 1}).Ch)
	assert.Equal(t, '█', c.At(Point{1, 2}).Ch)
	assert.Equal(t, '█', c.At(Point{1, 3}).Ch)
	assert.Equal(t, '█', c.At(Point{1, 4}).Ch, "vertical runs include the top endpoint")
	assert.Equal(t, ' ', c.At(Point{1, 5}).Ch)
}

func TestVerticalRun_ZeroLengthDrawsOneCell(t *testing.T) {
	c := New(4, 4)
	c.VerticalRun("█", 2, 1, 1, nil)

	assert.Equal(t, '█', c.At(Point{2, 1}).Ch)
	assert.Equal(t, ' ', c.At(Point{2, 2}).Ch)
}

func TestLine_DefaultGlyphs(t *testing.T) {
	c := New(6, 6)
	require.NoError(t, c.Line(Point{1, 1}, Point{4, 1}, nil, 0))
	require.NoError(t, c.Line(Point{1, 1}, Point{1, 4}, nil, 0))

	assert.Equal(t, '-', c.At(Point{3, 1}).Ch)
	assert.Equal(t, '|', c.At(Point{1, 3}).Ch)
}

func TestLine_EndpointOrderIrrelevant(t *testing.T) {
	a := New(6, 6)
	b := New(6, 6)
	require.NoError(t, a.Line(Point{1, 1}, Point{4, 1}, nil, 0))
	require.NoError(t, b.Line(Point{4, 1}, Point{1, 1}, nil, 0))

	assert.Equal(t, a.String(), b.String())
}

func TestLine_DiagonalIsContractViolation(t *testing.T) {
	c := New(6, 6)
	err := c.Line(Point{0, 0}, Point{3, 3}, nil, 0)

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrGeometry))
}

func TestBox_PerimeterOnly(t *testing.T) {
	c := New(8, 8)
	require.NoError(t, c.Box(Point{1, 1}, Point{5, 5}, nil, false))

	for x := 1; x <= 5; x++ {
		for y := 1; y <= 5; y++ {
			cell := c.At(Point{x, y})
			onPerimeter := x == 1 || x == 5 || y == 1 || y == 5
			if onPerimeter {
				assert.NotEqual(t, ' ', cell.Ch, "perimeter cell (%d,%d) should be painted", x, y)
			} else {
				assert.Equal(t, ' ', cell.Ch, "interior cell (%d,%d) should be untouched", x, y)
			}
		}
	}
}

func TestBox_BlankClearsArea(t *testing.T) {
	c := New(8, 8)
	c.VerticalRun("█", 2, 0, 7, Solid(Green))
	require.NoError(t, c.Box(Point{1, 2}, Point{4, 5}, nil, true))

	assert.Equal(t, ' ', c.At(Point{2, 2}).Ch, "blank box should erase the bar on its perimeter")
	assert.Equal(t, '█', c.At(Point{2, 0}).Ch, "cells outside the box stay")
}

func TestRows_ColorRunLengthOptimization(t *testing.T) {
	c := New(4, 1)
	c.Set(Point{0, 0}, 'a', Green)
	c.Set(Point{1, 0}, 'b', Green)
	c.Set(Point{2, 0}, 'c', Red)
	c.Set(Point{3, 0}, 'd', Red)

	row := c.Rows()[0]
	assert.Equal(t, 1, strings.Count(row, Green.Sequence()), "one escape per color run")
	assert.Equal(t, 1, strings.Count(row, Red.Sequence()))
}

func TestRows_ResetAfterColoredRun(t *testing.T) {
	c := New(3, 1)
	c.Set(Point{0, 0}, 'a', Red)
	c.Set(Point{1, 0}, 'b', None)

	row := c.Rows()[0]
	assert.Contains(t, row, resetSequence, "returning to uncolored output must reset")
}

func TestRows_BlanksDoNotBreakRuns(t *testing.T) {
	c := New(5, 1)
	c.Set(Point{0, 0}, 'a', Green)
	// gap at x=1..2 stays blank
	c.Set(Point{3, 0}, 'b', Green)

	row := c.Rows()[0]
	assert.Equal(t, 1, strings.Count(row, Green.Sequence()),
		"blank cells between same-colored cells must not re-emit the escape")
}

func TestRows_IdenticalGridsSerializeIdentically(t *testing.T) {
	a := New(6, 3)
	b := New(6, 3)

	// Construct the same grid in different orders.
	a.HorizontalRun("##", 1, 1, 3, Solid(Yellow))
	a.Set(Point{4, 1}, 'x', Red)

	b.Set(Point{4, 1}, 'x', Red)
	b.Set(Point{2, 1}, '#', Yellow)
	b.Set(Point{1, 1}, '#', Yellow)

	assert.Equal(t, a.String(), b.String())
}

func TestNew_DegenerateSizes(t *testing.T) {
	assert.Equal(t, "", New(0, 0).String())
	assert.Equal(t, 0, New(-3, -3).Width())
}
