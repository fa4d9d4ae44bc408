package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

type span struct {
	size int
}

// Span merges every selected cell with the size-1 cells to its right. The
// size is clamped to the columns left in the row and a size of 1 or less
// removes the span. A selected cell already merged by this same option is
// skipped, so spanning a whole row pairs its cells up left to right.
func Span(size int) CellOption {
	return span{size: size}
}

func (s span) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	cols := r.CountColumns()
	until := make(map[int]int)
	for pos := range e.Iter(r.CountRows(), cols) {
		if end, ok := until[pos.Row]; ok && pos.Col < end {
			continue
		}
		if n := cfg.SetSpan(pos, s.size, cols); n > 0 {
			until[pos.Row] = pos.Col + n
		}
	}
}
