package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/records"
)

// MarginOption surrounds the whole table with blank space.
type MarginOption struct {
	margin config.Margin
}

func Margin(top, bottom, left, right int) MarginOption {
	return MarginOption{margin: config.Margin{
		Top:    config.Spaces(top),
		Bottom: config.Spaces(bottom),
		Left:   config.Spaces(left),
		Right:  config.Spaces(right),
	}}
}

// Fill changes the characters the margin is drawn with.
func (m MarginOption) Fill(top, bottom, left, right rune) MarginOption {
	m.margin.Top.Fill = top
	m.margin.Bottom.Fill = bottom
	m.margin.Left.Fill = left
	m.margin.Right.Fill = right
	return m
}

func (m MarginOption) ChangeTable(_ *records.Vec, cfg *config.Config) {
	cfg.SetMargin(m.margin)
	cfg.SetMarginOffset(config.MarginOffset{})
}
