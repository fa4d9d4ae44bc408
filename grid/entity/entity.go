// Package entity resolves logical cell selectors against a table shape.
//
// Resolution is best effort: coordinates outside [0, rows) x [0, cols) are
// dropped silently so that a selector stays usable when the table changes
// shape. Resolution never fails; an empty selection yields nothing.
package entity

import (
	"iter"

	"github.com/hnimtadd/tablo/grid/coordinate"
)

// Entity is a selector over the cells of a table.
type Entity interface {
	// Iter yields the selected positions in row-major order. The sequence
	// is lazy and can be ranged over more than once.
	Iter(rows, cols int) iter.Seq[coordinate.Position]
}

// Func adapts a plain function to an Entity.
type Func func(rows, cols int) iter.Seq[coordinate.Position]

func (f Func) Iter(rows, cols int) iter.Seq[coordinate.Position] {
	return f(rows, cols)
}

// end is used as an open upper bound for ranges.
const end = -1

type segment struct {
	rowFrom, rowTo int
	colFrom, colTo int
}

func (s segment) Iter(rows, cols int) iter.Seq[coordinate.Position] {
	rowFrom, rowTo := bounds(s.rowFrom, s.rowTo, rows)
	colFrom, colTo := bounds(s.colFrom, s.colTo, cols)
	return func(yield func(coordinate.Position) bool) {
		for r := rowFrom; r < rowTo; r++ {
			for c := colFrom; c < colTo; c++ {
				if !yield(coordinate.At(r, c)) {
					return
				}
			}
		}
	}
}

// bounds clips the half open range [from, to) to [0, limit). Negative to
// means "up to limit".
func bounds(from, to, limit int) (int, int) {
	if to < 0 || to > limit {
		to = limit
	}
	from = max(from, 0)
	if from > to {
		from = to
	}
	return from, to
}

// Cell selects a single cell.
func Cell(row, col int) Entity {
	if row < 0 || col < 0 {
		return segment{0, 0, 0, 0}
	}
	return segment{row, row + 1, col, col + 1}
}

// Row selects every cell of one row.
func Row(row int) Entity {
	if row < 0 {
		return segment{0, 0, 0, 0}
	}
	return segment{row, row + 1, 0, end}
}

// Column selects every cell of one column.
func Column(col int) Entity {
	if col < 0 {
		return segment{0, 0, 0, 0}
	}
	return segment{0, end, col, col + 1}
}

// Rows selects the rows in [from, to). A negative to selects up to the last
// row.
func Rows(from, to int) Entity {
	return segment{from, to, 0, end}
}

// Columns selects the columns in [from, to). A negative to selects up to the
// last column.
func Columns(from, to int) Entity {
	return segment{0, end, from, to}
}

// Segment selects the rectangle [rowFrom, rowTo) x [colFrom, colTo).
// Negative upper bounds are open.
func Segment(rowFrom, rowTo, colFrom, colTo int) Entity {
	return segment{rowFrom, rowTo, colFrom, colTo}
}

// All selects every cell.
func All() Entity {
	return segment{0, end, 0, end}
}

// FirstRow selects the first row of the current shape.
func FirstRow() Entity {
	return Row(0)
}

// LastRow selects the last row of the current shape.
func LastRow() Entity {
	return Func(func(rows, cols int) iter.Seq[coordinate.Position] {
		return Row(rows-1).Iter(rows, cols)
	})
}

// FirstColumn selects the first column of the current shape.
func FirstColumn() Entity {
	return Column(0)
}

// LastColumn selects the last column of the current shape.
func LastColumn() Entity {
	return Func(func(rows, cols int) iter.Seq[coordinate.Position] {
		return Column(cols-1).Iter(rows, cols)
	})
}

// And is the ordered union of the given selectors. Positions already
// yielded by an earlier selector are skipped.
func And(entities ...Entity) Entity {
	return Func(func(rows, cols int) iter.Seq[coordinate.Position] {
		return func(yield func(coordinate.Position) bool) {
			seen := make(map[coordinate.Position]struct{})
			for _, e := range entities {
				for pos := range e.Iter(rows, cols) {
					if _, ok := seen[pos]; ok {
						continue
					}
					seen[pos] = struct{}{}
					if !yield(pos) {
						return
					}
				}
			}
		}
	})
}

// Not yields the positions of e that are not selected by exclude.
func Not(e, exclude Entity) Entity {
	return Func(func(rows, cols int) iter.Seq[coordinate.Position] {
		return func(yield func(coordinate.Position) bool) {
			skip := Set(exclude, rows, cols)
			for pos := range e.Iter(rows, cols) {
				if _, ok := skip[pos]; ok {
					continue
				}
				if !yield(pos) {
					return
				}
			}
		}
	})
}

// Set collects a resolved selection into a set.
func Set(e Entity, rows, cols int) map[coordinate.Position]struct{} {
	set := make(map[coordinate.Position]struct{})
	for pos := range e.Iter(rows, cols) {
		set[pos] = struct{}{}
	}
	return set
}

// Collect resolves e into a slice, preserving order.
func Collect(e Entity, rows, cols int) []coordinate.Position {
	var out []coordinate.Position
	for pos := range e.Iter(rows, cols) {
		out = append(out, pos)
	}
	return out
}

// End returns the open upper bound accepted by Rows, Columns and Segment.
func End() int {
	return end
}
