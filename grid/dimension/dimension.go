// Package dimension computes the sizing plan of a table: the width of every
// column, the height of every row and which border lines exist.
//
// A plan is derived from the current records and configuration and is
// computed fresh for every render.
package dimension

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/records"
	"github.com/hnimtadd/tablo/grid/utils"
	"github.com/hnimtadd/tablo/grid/width"
)

// ErrInconsistentGeometry is returned when the configuration references
// cells the records do not have, so no bounds can be computed.
var ErrInconsistentGeometry = errors.New("inconsistent geometry")

// Plan is the resolved geometry of one render.
type Plan struct {
	Widths  []int
	Heights []int

	// Horizontals[i] reports whether horizontal line i (0..rows) is drawn.
	Horizontals []bool
	// Verticals[j] reports whether vertical boundary j (0..cols) is drawn.
	Verticals []bool

	// Covered maps positions absorbed by a span to their origin.
	Covered map[coordinate.Position]coordinate.Position
	// Spans are the span sizes keyed by origin.
	Spans map[coordinate.Position]int
}

func (p Plan) Rows() int {
	return len(p.Heights)
}

func (p Plan) Cols() int {
	return len(p.Widths)
}

// SpanWidth returns the columns available to the cell at pos: the widths of
// every column it covers plus the dividers between them.
func (p Plan) SpanWidth(pos coordinate.Position) int {
	size := p.span(pos)
	total := 0
	for col := pos.Col; col < pos.Col+size && col < len(p.Widths); col++ {
		total += p.Widths[col]
		if col > pos.Col && p.Verticals[col] {
			total++
		}
	}
	return total
}

func (p Plan) span(pos coordinate.Position) int {
	if s, ok := p.Spans[pos]; ok {
		return s
	}
	return 1
}

// GridWidth is the width of the bordered grid, margins excluded.
func (p Plan) GridWidth() int {
	total := 0
	for _, w := range p.Widths {
		total += w
	}
	return total + count(p.Verticals)
}

// GridHeight is the line count of the bordered grid, margins excluded.
func (p Plan) GridHeight() int {
	total := 0
	for _, h := range p.Heights {
		total += h
	}
	return total + count(p.Horizontals)
}

func count(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// Estimate computes the plan for r under cfg.
func Estimate(r records.Records, cfg *config.Config) (Plan, error) {
	rows, cols := r.CountRows(), r.CountColumns()
	spans := cfg.Spans()
	if err := validate(spans, rows, cols); err != nil {
		return Plan{}, err
	}

	plan := Plan{
		Widths:      make([]int, cols),
		Heights:     make([]int, rows),
		Horizontals: make([]bool, rows+1),
		Verticals:   make([]bool, cols+1),
		Covered:     cfg.Covered(),
		Spans:       spans,
	}
	for i := range plan.Horizontals {
		plan.Horizontals[i] = cfg.HasHorizontal(i, rows)
	}
	for j := range plan.Verticals {
		plan.Verticals[j] = cfg.HasVertical(j, cols)
	}

	estimateWidths(&plan, r, cfg)
	estimateHeights(&plan, r, cfg)
	return plan, nil
}

func validate(spans map[coordinate.Position]int, rows, cols int) error {
	for origin, size := range spans {
		if !origin.Within(rows, cols) || origin.Col+size > cols {
			return fmt.Errorf(
				"%w: span %d at %s exceeds a %dx%d table",
				ErrInconsistentGeometry, size, origin, rows, cols,
			)
		}
	}
	return nil
}

func estimateWidths(plan *Plan, r records.Records, cfg *config.Config) {
	rows, cols := len(plan.Heights), len(plan.Widths)
	for col := range cols {
		if w, ok := cfg.ColumnWidth(col); ok {
			plan.Widths[col] = w.Size
			continue
		}
		natural := 0
		for row := range rows {
			pos := coordinate.At(row, col)
			if _, covered := plan.Covered[pos]; covered {
				continue
			}
			if _, spanned := plan.Spans[pos]; spanned {
				continue
			}
			natural = max(natural, naturalWidth(r, cfg, pos))
		}
		plan.Widths[col] = max(natural, cfg.MinColumnWidth(col))
	}

	// Narrow spans first so wider ones see the columns they already grew.
	origins := make([]coordinate.Position, 0, len(plan.Spans))
	for origin := range plan.Spans {
		origins = append(origins, origin)
	}
	slices.SortFunc(origins, func(a, b coordinate.Position) int {
		if d := plan.Spans[a] - plan.Spans[b]; d != 0 {
			return d
		}
		if a.Less(b) {
			return -1
		}
		if b.Less(a) {
			return 1
		}
		return 0
	})
	for _, origin := range origins {
		growSpan(plan, r, cfg, origin)
	}
}

// growSpan widens the columns under the span at origin until its content
// fits. The shortfall is split evenly and the remainder goes to the
// rightmost member. Fixed-width members never grow.
func growSpan(plan *Plan, r records.Records, cfg *config.Config, origin coordinate.Position) {
	needed := naturalWidth(r, cfg, origin)
	short := needed - plan.SpanWidth(origin)
	if short <= 0 {
		return
	}

	var members []int
	for col := origin.Col; col < origin.Col+plan.Spans[origin]; col++ {
		if _, fixed := cfg.ColumnWidth(col); !fixed {
			members = append(members, col)
		}
	}
	if len(members) == 0 {
		return
	}
	each, rest := short/len(members), short%len(members)
	for _, col := range members {
		plan.Widths[col] += each
	}
	plan.Widths[members[len(members)-1]] += rest
}

func naturalWidth(r records.Records, cfg *config.Config, pos coordinate.Position) int {
	w, _ := width.Text(r.Get(pos))
	return w + cfg.Format(pos).Padding.Horizontal()
}

func estimateHeights(plan *Plan, r records.Records, cfg *config.Config) {
	for row := range plan.Heights {
		if h, ok := cfg.RowHeight(row); ok {
			plan.Heights[row] = h
			continue
		}
		height := 0
		for col := range plan.Widths {
			pos := coordinate.At(row, col)
			if _, covered := plan.Covered[pos]; covered {
				continue
			}
			lines := len(CellLines(*plan, r, cfg, pos))
			height = max(height, lines+cfg.Format(pos).Padding.Vertical())
		}
		plan.Heights[row] = height
	}
}

// CellLines returns the content lines of the cell at pos fitted to the
// width the plan gives it. Content is only reshaped when a column it
// covers has a fixed width; the fixed width of the origin column decides
// the mode.
func CellLines(plan Plan, r records.Records, cfg *config.Config, pos coordinate.Position) []string {
	text := r.Get(pos)
	rule, fixed := fitRule(plan, cfg, pos)
	if !fixed {
		return width.Lines(text)
	}

	avail := utils.SubOrZero(plan.SpanWidth(pos), cfg.Format(pos).Padding.Horizontal())
	switch rule.Mode {
	case config.WidthWrap:
		return width.Lines(width.Wrap(text, avail))
	default:
		return width.Lines(width.Truncate(text, avail, rule.Suffix))
	}
}

func fitRule(plan Plan, cfg *config.Config, pos coordinate.Position) (config.Width, bool) {
	for col := pos.Col; col < pos.Col+plan.span(pos); col++ {
		if w, ok := cfg.ColumnWidth(col); ok {
			return w, true
		}
	}
	return config.Width{}, false
}

// TotalWidth is the rendered width of the table, margins included.
func TotalWidth(plan Plan, cfg *config.Config) int {
	if plan.Rows() == 0 || plan.Cols() == 0 {
		return 0
	}
	m := cfg.Margin()
	return m.Left.Size + plan.GridWidth() + m.Right.Size
}

// TotalHeight is the rendered line count of the table, margins included.
func TotalHeight(plan Plan, cfg *config.Config) int {
	if plan.Rows() == 0 || plan.Cols() == 0 {
		return 0
	}
	m := cfg.Margin()
	return m.Top.Size + plan.GridHeight() + m.Bottom.Size
}
