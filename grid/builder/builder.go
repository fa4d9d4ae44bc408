// Package builder renders a table from its records, configuration and
// sizing plan.
//
// The grid is walked top to bottom: a border line before the first row and
// after every row, and height content lines per row. Within a content line
// a span origin renders across its merged width and the cells it absorbs
// emit nothing, so the dividers inside a span are never drawn.
package builder

import (
	"strings"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/dimension"
	"github.com/hnimtadd/tablo/grid/records"
	"github.com/hnimtadd/tablo/grid/utils"
	"github.com/hnimtadd/tablo/grid/width"
)

// Grid renders one table. It only reads its inputs, so rendering twice
// gives identical output.
type Grid struct {
	records records.Records
	cfg     *config.Config
	plan    dimension.Plan
}

func New(r records.Records, cfg *config.Config, plan dimension.Plan) *Grid {
	utils.Assertf(
		plan.Rows() == r.CountRows() && plan.Cols() == r.CountColumns(),
		"plan %dx%d does not match records %dx%d",
		plan.Rows(), plan.Cols(), r.CountRows(), r.CountColumns(),
	)
	return &Grid{records: r, cfg: cfg, plan: plan}
}

// Lines renders the grid and its margin as a slice of lines.
func (g *Grid) Lines() []string {
	rows, cols := g.plan.Rows(), g.plan.Cols()
	if rows == 0 || cols == 0 {
		return nil
	}

	lines := make([]string, 0, g.plan.GridHeight())
	for row := 0; row <= rows; row++ {
		if g.plan.Horizontals[row] {
			lines = append(lines, g.horizontal(row))
		}
		if row == rows {
			break
		}
		for i := range g.plan.Heights[row] {
			lines = append(lines, g.content(row, i))
		}
	}
	return g.withMargin(lines)
}

// String renders the grid joined by newlines, without a trailing one.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func (g *Grid) horizontal(row int) string {
	rows, cols := g.plan.Rows(), g.plan.Cols()
	buf := make(line, 0, g.plan.GridWidth())
	for col := 0; col <= cols; col++ {
		if g.plan.Verticals[col] {
			buf.rune(g.cfg.IntersectionChar(row, col, rows, cols), 1)
		}
		if col < cols {
			buf.rune(g.cfg.HorizontalChar(row, col, rows), g.plan.Widths[col])
		}
	}

	for _, text := range g.cfg.LineTexts(row) {
		start := text.Offset
		if text.FromEnd {
			start = len(buf) - text.Offset - width.Line(text.Text)
		}
		buf.overlay(text.Text, start)
	}
	return buf.String()
}

func (g *Grid) content(row, index int) string {
	cols := g.plan.Cols()
	var sb strings.Builder
	for col := 0; col < cols; {
		pos := coordinate.At(row, col)
		utils.Assert(pos == g.spanOrigin(pos), "content walk landed inside a span")

		if g.plan.Verticals[col] {
			sb.WriteRune(g.cfg.VerticalChar(row, col, cols))
		}
		sb.WriteString(g.cellLine(pos, index))
		col += g.spanSize(pos)
	}
	if g.plan.Verticals[cols] {
		sb.WriteRune(g.cfg.VerticalChar(row, cols, cols))
	}
	return sb.String()
}

func (g *Grid) spanSize(pos coordinate.Position) int {
	if s, ok := g.plan.Spans[pos]; ok {
		return s
	}
	return 1
}

func (g *Grid) spanOrigin(pos coordinate.Position) coordinate.Position {
	if origin, ok := g.plan.Covered[pos]; ok {
		return origin
	}
	return pos
}

// cellLine renders line index of the cell at pos, exactly as wide as the
// columns the cell covers.
func (g *Grid) cellLine(pos coordinate.Position, index int) string {
	w := g.plan.SpanWidth(pos)
	height := g.plan.Heights[pos.Row]
	format := g.cfg.Format(pos)
	pad := format.Padding

	if index < pad.Top.Size {
		return width.Repeat(pad.Top.Fill, w)
	}
	if index >= height-pad.Bottom.Size {
		return width.Repeat(pad.Bottom.Fill, w)
	}

	lines := dimension.CellLines(g.plan, g.records, g.cfg, pos)
	inner := utils.SubOrZero(height, pad.Vertical())
	offset := 0
	switch format.AlignV {
	case config.AlignMiddle:
		offset = max((inner-len(lines))/2, 0)
	case config.AlignBottom:
		offset = utils.SubOrZero(inner, len(lines))
	}

	text := ""
	if i := index - pad.Top.Size - offset; i >= 0 && i < len(lines) {
		text = lines[i]
	}

	innerWidth := utils.SubOrZero(w, pad.Horizontal())
	out := width.Repeat(pad.Left.Fill, pad.Left.Size) +
		align(text, innerWidth, format.AlignH) +
		width.Repeat(pad.Right.Fill, pad.Right.Size)
	return exact(out, w)
}

// align places text inside w columns.
func align(text string, w int, a config.AlignmentH) string {
	tw := width.Line(text)
	if tw > w {
		return width.Truncate(text, w, "")
	}
	free := w - tw
	switch a {
	case config.AlignRight:
		return strings.Repeat(" ", free) + text
	case config.AlignCenter:
		left := free / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", free-left)
	default:
		return text + strings.Repeat(" ", free)
	}
}

// exact cuts or pads s to exactly w columns.
func exact(s string, w int) string {
	if width.Line(s) > w {
		s = width.Truncate(s, w, "")
	}
	return width.Pad(s, w, ' ')
}

func (g *Grid) withMargin(lines []string) []string {
	m, off := g.cfg.Margin(), g.cfg.MarginOffset()
	if m == (config.Margin{}) {
		return lines
	}

	total := m.Left.Size + g.plan.GridWidth() + m.Right.Size
	out := make([]string, 0, len(lines)+m.Top.Size+m.Bottom.Size)
	for range m.Top.Size {
		out = append(out, across(m.Top.Fill, total, off.Top))
	}
	for i, l := range lines {
		left := side(m.Left.Fill, m.Left.Size, off.Left, i, len(lines))
		right := side(m.Right.Fill, m.Right.Size, off.Right, i, len(lines))
		out = append(out, left+l+right)
	}
	for range m.Bottom.Size {
		out = append(out, across(m.Bottom.Fill, total, off.Bottom))
	}
	return out
}

// across renders one line of the top or bottom margin.
func across(fill rune, size int, off config.Offset) string {
	begin := min(off.Begin, size)
	end := min(off.End, size-begin)
	return strings.Repeat(" ", begin) +
		width.Repeat(fill, size-begin-end) +
		strings.Repeat(" ", end)
}

// side renders the left or right margin of line index out of count.
func side(fill rune, size int, off config.Offset, index, count int) string {
	if size <= 0 {
		return ""
	}
	if index < off.Begin || index >= count-off.End {
		return strings.Repeat(" ", size)
	}
	return width.Repeat(fill, size)
}
