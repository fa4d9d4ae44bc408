package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

type highlight struct {
	target entity.Entity
	border config.Border
}

// Highlight draws border around the outline of the cells target selects.
// Only the outer boundary of the selection is drawn, edges between two
// selected cells are left alone. Unset sides of border are not drawn.
//
// A selected cell inside a span selects the whole span, so the outline
// always runs along drawn boundaries.
func Highlight(target entity.Entity, border config.Border) TableOption {
	return highlight{target: target, border: border}
}

func (h highlight) ChangeTable(r *records.Vec, cfg *config.Config) {
	rows, cols := r.CountRows(), r.CountColumns()
	selected := make(map[coordinate.Position]struct{})
	for pos := range cfg.Targets(h.target, rows, cols) {
		size, ok := cfg.Span(pos)
		if !ok {
			size = 1
		}
		for i := range size {
			selected[pos.Right(i)] = struct{}{}
		}
	}
	in := func(row, col int) bool {
		_, ok := selected[coordinate.At(row, col)]
		return ok
	}
	b := h.border

	corners := make(map[coordinate.Position]struct{})
	for pos := range selected {
		row, col := pos.Row, pos.Col
		if !in(row-1, col) {
			edge(cfg.SetHorizontalEdge, row, col, b.Top)
		}
		if !in(row+1, col) {
			edge(cfg.SetHorizontalEdge, row+1, col, b.Bottom)
		}
		if !in(row, col-1) {
			edge(cfg.SetVerticalEdge, row, col, b.Left)
		}
		if !in(row, col+1) {
			edge(cfg.SetVerticalEdge, row, col+1, b.Right)
		}
		for _, p := range []coordinate.Position{pos, pos.Right(1), pos.Down(1), pos.Down(1).Right(1)} {
			corners[p] = struct{}{}
		}
	}

	for p := range corners {
		c := corner(b,
			in(p.Row-1, p.Col-1), in(p.Row-1, p.Col),
			in(p.Row, p.Col-1), in(p.Row, p.Col),
		)
		edge(cfg.SetIntersection, p.Row, p.Col, c)
	}
}

func edge(set func(int, int, rune), a, b int, r rune) {
	if r != 0 {
		set(a, b, r)
	}
}

// corner picks the character for a grid point from which of the four cells
// around it are selected. Points inside the selection get 0.
func corner(b config.Border, topLeft, topRight, bottomLeft, bottomRight bool) rune {
	switch [4]bool{topLeft, topRight, bottomLeft, bottomRight} {
	// one cell: an outer corner
	case [4]bool{false, false, false, true}:
		return b.TopLeft
	case [4]bool{false, false, true, false}:
		return b.TopRight
	case [4]bool{false, true, false, false}:
		return b.BottomLeft
	case [4]bool{true, false, false, false}:
		return b.BottomRight

	// two neighbours: the outline runs straight through
	case [4]bool{false, false, true, true}:
		return b.Top
	case [4]bool{true, true, false, false}:
		return b.Bottom
	case [4]bool{false, true, false, true}:
		return b.Left
	case [4]bool{true, false, true, false}:
		return b.Right

	// two diagonal cells touching at the point
	case [4]bool{true, false, false, true}:
		return b.TopLeft
	case [4]bool{false, true, true, false}:
		return b.TopRight

	// three cells: an inner corner
	case [4]bool{false, true, true, true}:
		return b.BottomRight
	case [4]bool{true, false, true, true}:
		return b.BottomLeft
	case [4]bool{true, true, false, true}:
		return b.TopRight
	case [4]bool{true, true, true, false}:
		return b.TopLeft
	}
	return 0
}
