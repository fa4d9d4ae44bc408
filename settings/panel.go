package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/records"
)

type panel struct {
	text   string
	row    int
	footer bool
}

// Panel inserts a row at index holding text in a single cell spanning every
// column, centered. Configuration of the rows below is moved down with
// them. An index past the end appends the row.
func Panel(text string, index int) TableOption {
	return panel{text: text, row: index}
}

// Header inserts a panel above the first row.
func Header(text string) TableOption {
	return panel{text: text}
}

// Footer appends a panel below the last row.
func Footer(text string) TableOption {
	return panel{text: text, footer: true}
}

func (p panel) ChangeTable(r *records.Vec, cfg *config.Config) {
	index := p.row
	if p.footer {
		index = r.CountRows()
	}
	index = r.InsertRow(index, []string{p.text})
	cfg.InsertRow(index)

	pos := coordinate.At(index, 0)
	cfg.SetSpan(pos, r.CountColumns(), r.CountColumns())
	cfg.SetAlignmentH(pos, config.AlignCenter)
}
