package coordinate

import "fmt"

// Position identifies one logical cell of a table. Both indexes are zero
// based and positions are ordered row-major.
type Position struct {
	Row int
	Col int
}

func At(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Right returns the position n columns to the right.
func (p Position) Right(n int) Position {
	return Position{Row: p.Row, Col: p.Col + n}
}

// Down returns the position n rows below.
func (p Position) Down(n int) Position {
	return Position{Row: p.Row + n, Col: p.Col}
}

// Within reports whether the position lies inside a rows x cols shape.
func (p Position) Within(rows, cols int) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < rows && p.Col < cols
}

// Less orders positions row-major.
func (p Position) Less(o Position) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
