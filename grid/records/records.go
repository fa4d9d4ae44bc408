// Package records holds the cell text a table renders.
//
// The engine only reads records through the Records interface. Vec is the
// owned, mutable implementation a table keeps so that settings such as
// panels can insert synthetic rows.
package records

import (
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/utils"
)

// Records is a read-only 2-D source of cell text.
type Records interface {
	CountRows() int
	CountColumns() int
	// Get returns the display text of the cell. Positions outside the shape
	// return "".
	Get(pos coordinate.Position) string
}

// Vec stores records as a dense slice of rows. Every row has exactly
// CountColumns cells.
type Vec struct {
	rows [][]string
	cols int
}

// NewVec builds records from rows. Ragged input is normalised to the widest
// row, filling missing cells with "".
func NewVec(data [][]string) *Vec {
	cols := 0
	for _, row := range data {
		cols = max(cols, len(row))
	}
	rows := make([][]string, len(data))
	for i, row := range data {
		rows[i] = make([]string, cols)
		copy(rows[i], row)
	}
	return &Vec{rows: rows, cols: cols}
}

// FromRecords copies any Records implementation into a Vec.
func FromRecords(r Records) *Vec {
	if v, ok := r.(*Vec); ok {
		return v.Clone()
	}
	count, cols := r.CountRows(), r.CountColumns()
	rows := make([][]string, count)
	for i := range count {
		rows[i] = make([]string, cols)
		for j := range cols {
			rows[i][j] = r.Get(coordinate.At(i, j))
		}
	}
	return &Vec{rows: rows, cols: cols}
}

func (v *Vec) CountRows() int {
	return len(v.rows)
}

func (v *Vec) CountColumns() int {
	return v.cols
}

func (v *Vec) Get(pos coordinate.Position) string {
	if !pos.Within(len(v.rows), v.cols) {
		return ""
	}
	return v.rows[pos.Row][pos.Col]
}

// Set replaces the text of a cell. Positions outside the shape are ignored.
func (v *Vec) Set(pos coordinate.Position, text string) {
	if !pos.Within(len(v.rows), v.cols) {
		return
	}
	v.rows[pos.Row][pos.Col] = text
}

// InsertRow inserts a row before index, clamping index to [0, rows]. The
// cells are truncated or extended to the current column count. It returns
// the index the row ended up at.
func (v *Vec) InsertRow(index int, cells []string) int {
	index = utils.Clamp(index, 0, len(v.rows))
	if len(v.rows) == 0 && v.cols == 0 {
		v.cols = len(cells)
	}
	row := make([]string, v.cols)
	copy(row, cells)

	v.rows = append(v.rows, nil)
	copy(v.rows[index+1:], v.rows[index:])
	v.rows[index] = row
	return index
}

// AppendRows appends the rows of other below v. Both sides are widened to
// the larger column count.
func (v *Vec) AppendRows(other Records) {
	cols := max(v.cols, other.CountColumns())
	v.widen(cols)
	for i := range other.CountRows() {
		row := make([]string, cols)
		for j := range other.CountColumns() {
			row[j] = other.Get(coordinate.At(i, j))
		}
		v.rows = append(v.rows, row)
	}
}

// AppendColumns appends the columns of other to the right of v. Missing rows
// on either side are filled with empty cells.
func (v *Vec) AppendColumns(other Records) {
	extra := other.CountColumns()
	for len(v.rows) < other.CountRows() {
		v.rows = append(v.rows, make([]string, v.cols))
	}
	for i := range v.rows {
		row := make([]string, extra)
		if i < other.CountRows() {
			for j := range extra {
				row[j] = other.Get(coordinate.At(i, j))
			}
		}
		v.rows[i] = append(v.rows[i], row...)
	}
	v.cols += extra
}

// Clone returns a deep copy.
func (v *Vec) Clone() *Vec {
	rows := make([][]string, len(v.rows))
	for i, row := range v.rows {
		rows[i] = append([]string(nil), row...)
	}
	return &Vec{rows: rows, cols: v.cols}
}

func (v *Vec) widen(cols int) {
	if cols <= v.cols {
		return
	}
	for i, row := range v.rows {
		grown := make([]string, cols)
		copy(grown, row)
		v.rows[i] = grown
	}
	v.cols = cols
}
