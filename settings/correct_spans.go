package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/records"
)

type correctSpans struct{}

// CorrectSpans fixes the intersections on the lines above and below every
// span. Where a divider stops at the span the crossing becomes a T pointing
// away from it, and where no divider continues on either side the line is
// drawn straight through.
func CorrectSpans() TableOption {
	return correctSpans{}
}

func (correctSpans) ChangeTable(r *records.Vec, cfg *config.Config) {
	rows, cols := r.CountRows(), r.CountColumns()
	for origin, size := range cfg.Spans() {
		for boundary := origin.Col + 1; boundary < origin.Col+size; boundary++ {
			correctPoint(cfg, origin.Row, boundary, rows, cols)
			correctPoint(cfg, origin.Row+1, boundary, rows, cols)
		}
	}
}

func correctPoint(cfg *config.Config, line, boundary, rows, cols int) {
	if !cfg.HasHorizontal(line, rows) || !cfg.HasVertical(boundary, cols) {
		return
	}
	divides := func(row int) bool {
		pos := coordinate.At(row, boundary)
		return cfg.SpanOrigin(pos) == pos
	}
	above := line > 0 && divides(line-1)
	below := line < rows && divides(line)

	b := cfg.Borders()
	var c rune
	switch {
	case above && below:
		return
	case below:
		c = b.TopIntersection
	case above:
		c = b.BottomIntersection
	default:
		c = cfg.HorizontalChar(line, boundary, rows)
	}
	if c != 0 {
		cfg.SetIntersection(line, boundary, c)
	}
}
