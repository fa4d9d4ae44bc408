// Package settings implements the modifiers that shape a table.
//
// A TableOption changes the table as a whole, a CellOption changes the
// cells an entity selects. Options are applied in order and mutate the
// records and configuration in place, so applying them is order sensitive.
package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

// TableOption modifies a table.
type TableOption interface {
	ChangeTable(r *records.Vec, cfg *config.Config)
}

// CellOption modifies the cells selected by an entity.
type CellOption interface {
	ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity)
}

// TableFunc adapts a function to a TableOption.
type TableFunc func(r *records.Vec, cfg *config.Config)

func (f TableFunc) ChangeTable(r *records.Vec, cfg *config.Config) {
	f(r, cfg)
}

// CellFunc adapts a function to a CellOption.
type CellFunc func(r *records.Vec, cfg *config.Config, e entity.Entity)

func (f CellFunc) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	f(r, cfg, e)
}

type modify struct {
	target entity.Entity
	opts   []CellOption
}

// Modify applies opts, in order, to the cells target selects.
func Modify(target entity.Entity, opts ...CellOption) TableOption {
	return modify{target: target, opts: opts}
}

func (m modify) ChangeTable(r *records.Vec, cfg *config.Config) {
	for _, opt := range m.opts {
		opt.ChangeCell(r, cfg, m.target)
	}
}

// Text replaces the content of the selected cells.
func Text(text string) CellOption {
	return CellFunc(func(r *records.Vec, cfg *config.Config, e entity.Entity) {
		for pos := range cfg.Targets(e, r.CountRows(), r.CountColumns()) {
			r.Set(pos, text)
		}
	})
}
