package entity

import (
	"testing"

	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/stretchr/testify/assert"
)

func TestCell(t *testing.T) {
	assert.Equal(t, []coordinate.Position{{Row: 1, Col: 2}}, Collect(Cell(1, 2), 3, 3))
	assert.Empty(t, Collect(Cell(3, 0), 3, 3), "out of range rows are excluded")
	assert.Empty(t, Collect(Cell(-1, 0), 3, 3))
}

func TestRowAndColumn(t *testing.T) {
	assert.Equal(t,
		[]coordinate.Position{{Row: 1, Col: 0}, {Row: 1, Col: 1}},
		Collect(Row(1), 3, 2),
	)
	assert.Equal(t,
		[]coordinate.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}},
		Collect(Column(1), 2, 3),
	)
	assert.Empty(t, Collect(Column(5), 2, 3))
}

func TestRanges(t *testing.T) {
	assert.Len(t, Collect(Rows(1, End()), 4, 2), 6)
	assert.Len(t, Collect(Rows(1, 2), 4, 2), 2)
	assert.Len(t, Collect(Columns(0, 10), 2, 3), 6)
	assert.Empty(t, Collect(Rows(3, 1), 4, 2))
}

func TestSegment(t *testing.T) {
	got := Collect(Segment(1, 3, 1, 3), 3, 3)
	assert.Equal(t, []coordinate.Position{
		{Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 1}, {Row: 2, Col: 2},
	}, got)
}

func TestAll_RowMajor(t *testing.T) {
	got := Collect(All(), 2, 2)
	assert.Equal(t, []coordinate.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 1},
		{Row: 1, Col: 0}, {Row: 1, Col: 1},
	}, got)
	assert.Empty(t, Collect(All(), 0, 5))
}

func TestLastRowAndColumn(t *testing.T) {
	assert.Equal(t,
		[]coordinate.Position{{Row: 2, Col: 0}},
		Collect(LastRow(), 3, 1),
	)
	assert.Equal(t,
		[]coordinate.Position{{Row: 0, Col: 2}},
		Collect(LastColumn(), 1, 3),
	)
	assert.Empty(t, Collect(LastRow(), 0, 3))
}

func TestAnd_DeduplicatesInOrder(t *testing.T) {
	got := Collect(And(Cell(1, 1), Row(0), Cell(1, 1)), 2, 2)
	assert.Equal(t, []coordinate.Position{
		{Row: 1, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 1},
	}, got)
}

func TestNot(t *testing.T) {
	got := Collect(Not(All(), Column(0)), 2, 2)
	assert.Equal(t, []coordinate.Position{{Row: 0, Col: 1}, {Row: 1, Col: 1}}, got)
}

func TestIter_Restartable(t *testing.T) {
	seq := Row(0).Iter(1, 3)
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	assert.Equal(t, 3, first)
	assert.Equal(t, first, second)
}

func TestIter_EarlyStop(t *testing.T) {
	count := 0
	for range And(All(), All()).Iter(3, 3) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
