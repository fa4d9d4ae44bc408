package settings

import (
	"maps"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/records"
)

// Style is a table-wide border template plus optional overrides of single
// horizontal lines. Applying a style replaces the previous one, cell
// borders set with Border or Highlight are kept.
//
// A style is a value; every builder method returns a modified copy.
type Style struct {
	borders config.Borders
	lines   map[int]config.Line
}

// NewStyle builds a style from a complete template.
func NewStyle(b config.Borders) Style {
	return Style{borders: b}
}

// Empty draws no borders at all.
func Empty() Style {
	return Style{}
}

// Blank separates columns by a space and draws nothing else.
func Blank() Style {
	return Style{borders: config.Borders{Vertical: ' '}}
}

func ASCII() Style {
	return Style{borders: config.Borders{
		Top: '-', Bottom: '-', Left: '|', Right: '|', Horizontal: '-', Vertical: '|',
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		TopIntersection: '+', BottomIntersection: '+',
		LeftIntersection: '+', RightIntersection: '+', Intersection: '+',
	}}
}

// Psql separates columns by '|' and the header by a dashed line.
func Psql() Style {
	return Style{
		borders: config.Borders{Vertical: '|'},
		lines:   map[int]config.Line{1: {Main: '-', Intersection: '+'}},
	}
}

func Markdown() Style {
	return Style{
		borders: config.Borders{Left: '|', Right: '|', Vertical: '|'},
		lines:   map[int]config.Line{1: {Main: '-', Intersection: '|', Left: '|', Right: '|'}},
	}
}

func Modern() Style {
	return Style{borders: config.Borders{
		Top: '─', Bottom: '─', Left: '│', Right: '│', Horizontal: '─', Vertical: '│',
		TopLeft: '┌', TopRight: '┐', BottomLeft: '└', BottomRight: '┘',
		TopIntersection: '┬', BottomIntersection: '┴',
		LeftIntersection: '├', RightIntersection: '┤', Intersection: '┼',
	}}
}

// Sharp is Modern with only the header separated.
func Sharp() Style {
	return Modern().RemoveHorizontal().Line(1, config.Line{
		Main: '─', Intersection: '┼', Left: '├', Right: '┤',
	})
}

// Rounded is Sharp with rounded corners.
func Rounded() Style {
	return Sharp().
		CornerTopLeft('╭').CornerTopRight('╮').
		CornerBottomLeft('╰').CornerBottomRight('╯')
}

// Extended uses double lines everywhere.
func Extended() Style {
	return Style{borders: config.Borders{
		Top: '═', Bottom: '═', Left: '║', Right: '║', Horizontal: '═', Vertical: '║',
		TopLeft: '╔', TopRight: '╗', BottomLeft: '╚', BottomRight: '╝',
		TopIntersection: '╦', BottomIntersection: '╩',
		LeftIntersection: '╠', RightIntersection: '╣', Intersection: '╬',
	}}
}

func Dots() Style {
	return Style{borders: config.Borders{
		Top: '.', Bottom: '.', Left: ':', Right: ':', Horizontal: '.', Vertical: ':',
		TopLeft: '.', TopRight: '.', BottomLeft: ':', BottomRight: ':',
		TopIntersection: '.', BottomIntersection: ':',
		LeftIntersection: ':', RightIntersection: ':', Intersection: ':',
	}}
}

// ReStructuredText draws '=' rules around the table and under the header.
func ReStructuredText() Style {
	return Style{
		borders: config.Borders{
			Top: '=', Bottom: '=', Vertical: ' ',
			TopIntersection: ' ', BottomIntersection: ' ',
		},
		lines: map[int]config.Line{1: {Main: '=', Intersection: ' '}},
	}
}

func ASCIIRounded() Style {
	return Style{borders: config.Borders{
		Top: '-', Bottom: '-', Left: '|', Right: '|', Horizontal: '-', Vertical: '|',
		TopLeft: '.', TopRight: '.', BottomLeft: '\'', BottomRight: '\'',
		TopIntersection: '-', BottomIntersection: '-',
		LeftIntersection: ':', RightIntersection: ':', Intersection: '+',
	}}
}

func (s Style) with(fn func(b *config.Borders)) Style {
	fn(&s.borders)
	s.lines = maps.Clone(s.lines)
	return s
}

func (s Style) Top(c rune) Style { return s.with(func(b *config.Borders) { b.Top = c }) }

func (s Style) Bottom(c rune) Style { return s.with(func(b *config.Borders) { b.Bottom = c }) }

func (s Style) Left(c rune) Style { return s.with(func(b *config.Borders) { b.Left = c }) }

func (s Style) Right(c rune) Style { return s.with(func(b *config.Borders) { b.Right = c }) }

func (s Style) Horizontal(c rune) Style { return s.with(func(b *config.Borders) { b.Horizontal = c }) }

func (s Style) Vertical(c rune) Style { return s.with(func(b *config.Borders) { b.Vertical = c }) }

func (s Style) CornerTopLeft(c rune) Style { return s.with(func(b *config.Borders) { b.TopLeft = c }) }

func (s Style) CornerTopRight(c rune) Style { return s.with(func(b *config.Borders) { b.TopRight = c }) }

func (s Style) CornerBottomLeft(c rune) Style {
	return s.with(func(b *config.Borders) { b.BottomLeft = c })
}

func (s Style) CornerBottomRight(c rune) Style {
	return s.with(func(b *config.Borders) { b.BottomRight = c })
}

func (s Style) TopIntersection(c rune) Style {
	return s.with(func(b *config.Borders) { b.TopIntersection = c })
}

func (s Style) BottomIntersection(c rune) Style {
	return s.with(func(b *config.Borders) { b.BottomIntersection = c })
}

func (s Style) LeftIntersection(c rune) Style {
	return s.with(func(b *config.Borders) { b.LeftIntersection = c })
}

func (s Style) RightIntersection(c rune) Style {
	return s.with(func(b *config.Borders) { b.RightIntersection = c })
}

func (s Style) Intersection(c rune) Style {
	return s.with(func(b *config.Borders) { b.Intersection = c })
}

// Line overrides horizontal line index, counted from the top border.
func (s Style) Line(index int, l config.Line) Style {
	s = s.with(func(*config.Borders) {})
	if s.lines == nil {
		s.lines = make(map[int]config.Line)
	}
	s.lines[index] = l
	return s
}

// Horizontals replaces every line override.
func (s Style) Horizontals(lines map[int]config.Line) Style {
	s.lines = maps.Clone(lines)
	return s
}

// RemoveHorizontal drops the inner horizontal lines and every line
// override. The top and bottom border stay.
func (s Style) RemoveHorizontal() Style {
	s = s.with(func(b *config.Borders) {
		b.Horizontal = 0
		b.LeftIntersection = 0
		b.RightIntersection = 0
		b.Intersection = 0
	})
	s.lines = nil
	return s
}

// RemoveVertical drops the inner vertical lines. The left and right
// border stay.
func (s Style) RemoveVertical() Style {
	return s.with(func(b *config.Borders) {
		b.Vertical = 0
		b.TopIntersection = 0
		b.BottomIntersection = 0
		b.Intersection = 0
	})
}

// RemoveFrame drops the outer border and keeps the inner lines.
func (s Style) RemoveFrame() Style {
	s = s.with(func(b *config.Borders) {
		b.Top, b.Bottom, b.Left, b.Right = 0, 0, 0, 0
		b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight = 0, 0, 0, 0
		b.TopIntersection, b.BottomIntersection = 0, 0
		b.LeftIntersection, b.RightIntersection = 0, 0
	})
	for i, l := range s.lines {
		l.Left, l.Right = 0, 0
		s.lines[i] = l
	}
	return s
}

func (s Style) Borders() config.Borders {
	return s.borders
}

// HorizontalLine returns the inner horizontal line of the template as a
// line override, handy for building custom lines from an existing style.
func (s Style) HorizontalLine() config.Line {
	return config.Line{
		Main:         s.borders.Horizontal,
		Intersection: s.borders.Intersection,
		Left:         s.borders.LeftIntersection,
		Right:        s.borders.RightIntersection,
	}
}

func (s Style) ChangeTable(_ *records.Vec, cfg *config.Config) {
	cfg.SetBorders(s.borders, s.lines)
}
