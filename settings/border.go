package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

// Border sets the border of every selected cell, replacing whatever border
// the cell had. Unset sides fall back to the style.
type Border config.Border

// FilledBorder uses c for every side and corner.
func FilledBorder(c rune) Border {
	return Border(config.Filled(c))
}

// FullBorder sets every side and corner.
func FullBorder(top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight rune) Border {
	return Border(config.Full(top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight))
}

func (b Border) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for pos := range cfg.Targets(e, r.CountRows(), r.CountColumns()) {
		cfg.SetBorder(pos, config.Border(b))
	}
}

type emptyBorder struct{}

// EmptyBorder removes the border override of every selected cell.
func EmptyBorder() CellOption {
	return emptyBorder{}
}

func (emptyBorder) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for pos := range cfg.Targets(e, r.CountRows(), r.CountColumns()) {
		cfg.RemoveBorder(pos)
	}
}
