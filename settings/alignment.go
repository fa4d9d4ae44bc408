package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

// Alignment places content inside its cell. Used as a table option it
// changes the default, used on cells it overrides theirs.
type Alignment struct {
	vertical bool
	h        config.AlignmentH
	v        config.AlignmentV
}

func AlignLeft() Alignment   { return Alignment{h: config.AlignLeft} }
func AlignCenter() Alignment { return Alignment{h: config.AlignCenter} }
func AlignRight() Alignment  { return Alignment{h: config.AlignRight} }
func AlignTop() Alignment    { return Alignment{vertical: true, v: config.AlignTop} }
func AlignMiddle() Alignment { return Alignment{vertical: true, v: config.AlignMiddle} }
func AlignBottom() Alignment { return Alignment{vertical: true, v: config.AlignBottom} }

func (a Alignment) ChangeTable(_ *records.Vec, cfg *config.Config) {
	if a.vertical {
		cfg.SetDefaultAlignmentV(a.v)
		return
	}
	cfg.SetDefaultAlignmentH(a.h)
}

func (a Alignment) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for pos := range cfg.Targets(e, r.CountRows(), r.CountColumns()) {
		if a.vertical {
			cfg.SetAlignmentV(pos, a.v)
		} else {
			cfg.SetAlignmentH(pos, a.h)
		}
	}
}
