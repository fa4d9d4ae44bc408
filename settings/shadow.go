package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/records"
)

// DefaultShadowFill is the character a shadow is drawn with.
const DefaultShadowFill = '▒'

// ShadowOption draws a drop shadow beside the table. It is built on the
// margin, which it replaces.
type ShadowOption struct {
	size   int
	offset int
	left   bool
	top    bool
	fill   rune
}

// Shadow casts a shadow size characters thick to the bottom right, shifted
// by one line and column.
func Shadow(size int) ShadowOption {
	return ShadowOption{size: size, offset: 1, fill: DefaultShadowFill}
}

// Offset shifts the shadow away from the table corner it starts at.
func (s ShadowOption) Offset(n int) ShadowOption {
	s.offset = max(n, 0)
	return s
}

func (s ShadowOption) Left() ShadowOption {
	s.left = true
	return s
}

func (s ShadowOption) Right() ShadowOption {
	s.left = false
	return s
}

func (s ShadowOption) Top() ShadowOption {
	s.top = true
	return s
}

func (s ShadowOption) Bottom() ShadowOption {
	s.top = false
	return s
}

func (s ShadowOption) Fill(c rune) ShadowOption {
	s.fill = c
	return s
}

func (s ShadowOption) ChangeTable(_ *records.Vec, cfg *config.Config) {
	shade := config.Indent{Size: s.size, Fill: s.fill}
	var (
		m   config.Margin
		off config.MarginOffset
	)

	// The side shadow skips offset lines at the end nearest the light, the
	// top or bottom shadow skips offset columns the same way.
	vertical := config.Offset{Begin: s.offset}
	if s.top {
		vertical = config.Offset{End: s.offset}
	}
	horizontal := config.Offset{Begin: s.offset}
	if s.left {
		horizontal = config.Offset{End: s.offset}
	}

	if s.left {
		m.Left, off.Left = shade, vertical
	} else {
		m.Right, off.Right = shade, vertical
	}
	if s.top {
		m.Top, off.Top = shade, horizontal
	} else {
		m.Bottom, off.Bottom = shade, horizontal
	}
	cfg.SetMargin(m)
	cfg.SetMarginOffset(off)
}
