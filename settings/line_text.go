package settings

import (
	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/records"
)

const lastLine = -1

// LineTextOption writes a label over a horizontal border line.
type LineTextOption struct {
	text    string
	line    int
	offset  int
	fromEnd bool
}

// LineText writes text over horizontal line, 0 being the top border.
func LineText(text string, line int) LineTextOption {
	return LineTextOption{text: text, line: line}
}

// TopLineText writes text over the top border.
func TopLineText(text string) LineTextOption {
	return LineText(text, 0)
}

// BottomLineText writes text over the bottom border, whatever the row
// count is when the option is applied.
func BottomLineText(text string) LineTextOption {
	return LineText(text, lastLine)
}

// Offset starts the text n columns after the start of the line.
func (t LineTextOption) Offset(n int) LineTextOption {
	t.offset, t.fromEnd = n, false
	return t
}

// OffsetEnd ends the text n columns before the end of the line.
func (t LineTextOption) OffsetEnd(n int) LineTextOption {
	t.offset, t.fromEnd = n, true
	return t
}

func (t LineTextOption) ChangeTable(r *records.Vec, cfg *config.Config) {
	line := t.line
	if line == lastLine {
		line = r.CountRows()
	}
	cfg.AddLineText(line, config.LineText{Text: t.text, Offset: t.offset, FromEnd: t.fromEnd})
}
