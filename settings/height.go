package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

type height struct {
	size int
}

// Height fixes the height of the rows holding the selected cells, padding
// included. Lines that do not fit are cut from the bottom.
func Height(size int) CellOption {
	return height{size: size}
}

func (h height) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	seen := make(map[int]struct{})
	for pos := range e.Iter(r.CountRows(), r.CountColumns()) {
		if _, ok := seen[pos.Row]; ok {
			continue
		}
		seen[pos.Row] = struct{}{}
		cfg.SetRowHeight(pos.Row, h.size)
	}
}

type heightList []int

// HeightList fixes the height of row i to heights[i]. Rows past the end of
// the list keep their natural height.
func HeightList(heights ...int) TableOption {
	return heightList(heights)
}

func (l heightList) ChangeTable(r *records.Vec, cfg *config.Config) {
	for row, h := range l {
		if row >= r.CountRows() {
			return
		}
		cfg.SetRowHeight(row, h)
	}
}
