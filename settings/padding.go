package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
)

// PaddingOption sets cell padding. Used as a table option it changes the
// default padding, used on cells it overrides theirs.
type PaddingOption struct {
	padding config.Padding
}

// Padding pads cells with spaces.
func Padding(top, bottom, left, right int) PaddingOption {
	return PaddingOption{padding: config.Padding{
		Top:    config.Spaces(top),
		Bottom: config.Spaces(bottom),
		Left:   config.Spaces(left),
		Right:  config.Spaces(right),
	}}
}

// PaddingZero removes all padding.
func PaddingZero() PaddingOption {
	return Padding(0, 0, 0, 0)
}

// Fill changes the characters the padding is drawn with.
func (p PaddingOption) Fill(top, bottom, left, right rune) PaddingOption {
	p.padding.Top.Fill = top
	p.padding.Bottom.Fill = bottom
	p.padding.Left.Fill = left
	p.padding.Right.Fill = right
	return p
}

func (p PaddingOption) ChangeTable(_ *records.Vec, cfg *config.Config) {
	cfg.SetDefaultPadding(p.padding)
}

func (p PaddingOption) ChangeCell(r *records.Vec, cfg *config.Config, e entity.Entity) {
	for pos := range cfg.Targets(e, r.CountRows(), r.CountColumns()) {
		cfg.SetPadding(pos, p.padding)
	}
}
