// Package config holds the mutable grid configuration of a table.
//
// Borders are stored as edges rather than per cell. A horizontal segment is
// keyed by (line, column), a vertical segment by (row, boundary) and an
// intersection by (line, boundary), so two neighbouring cells that write
// the same edge simply overwrite each other and the last write wins.
package config

import (
	"iter"
	"maps"
	"slices"

	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/set"
)

// Config is the grid configuration of one table. It is mutated by settings
// and only read while rendering.
type Config struct {
	borders     Borders
	horizontals map[int]Line

	hEdges  map[coordinate.Position]rune
	vEdges  map[coordinate.Position]rune
	crosses map[coordinate.Position]rune

	spans map[coordinate.Position]int

	// Formats are interned. Every position with an override holds a
	// reference on its format; positions without one use defaults.
	formats     *set.RefCountedSet[Format]
	cellFormats map[coordinate.Position]set.ID
	defaults    Resolved

	widths    map[int]Width
	minWidths map[int]int
	heights   map[int]int

	margin       Margin
	marginOffset MarginOffset

	lineTexts map[int][]LineText
}

// DefaultPadding is one space on the left and right of every cell.
var DefaultPadding = Padding{Left: Spaces(1), Right: Spaces(1)}

func New() *Config {
	return &Config{
		horizontals: make(map[int]Line),
		hEdges:      make(map[coordinate.Position]rune),
		vEdges:      make(map[coordinate.Position]rune),
		crosses:     make(map[coordinate.Position]rune),
		spans:       make(map[coordinate.Position]int),
		formats:     set.NewRefCountedSet[Format](),
		cellFormats: make(map[coordinate.Position]set.ID),
		defaults: Resolved{
			Padding: DefaultPadding,
			AlignH:  AlignLeft,
			AlignV:  AlignTop,
		},
		widths:    make(map[int]Width),
		minWidths: make(map[int]int),
		heights:   make(map[int]int),
		lineTexts: make(map[int][]LineText),
	}
}

// Clone returns a deep copy sharing nothing with c.
func (c *Config) Clone() *Config {
	out := &Config{
		borders:      c.borders,
		horizontals:  maps.Clone(c.horizontals),
		hEdges:       maps.Clone(c.hEdges),
		vEdges:       maps.Clone(c.vEdges),
		crosses:      maps.Clone(c.crosses),
		spans:        maps.Clone(c.spans),
		formats:      c.formats.Clone(),
		cellFormats:  maps.Clone(c.cellFormats),
		defaults:     c.defaults,
		widths:       maps.Clone(c.widths),
		minWidths:    maps.Clone(c.minWidths),
		heights:      maps.Clone(c.heights),
		margin:       c.margin,
		marginOffset: c.marginOffset,
		lineTexts:    make(map[int][]LineText, len(c.lineTexts)),
	}
	for line, texts := range c.lineTexts {
		out.lineTexts[line] = slices.Clone(texts)
	}
	return out
}

// ---------------------------------------------------------------------------
// style

// SetBorders replaces the style template and every line override. Cell
// border overrides are kept.
func (c *Config) SetBorders(b Borders, lines map[int]Line) {
	c.borders = b
	c.horizontals = make(map[int]Line, len(lines))
	for line, l := range lines {
		if !l.IsEmpty() {
			c.horizontals[line] = l
		}
	}
}

func (c *Config) Borders() Borders {
	return c.borders
}

// SetHorizontalLine overrides one horizontal line of the style. An empty
// line removes the override.
func (c *Config) SetHorizontalLine(line int, l Line) {
	if l.IsEmpty() {
		delete(c.horizontals, line)
		return
	}
	c.horizontals[line] = l
}

func (c *Config) HorizontalLine(line int) (Line, bool) {
	l, ok := c.horizontals[line]
	return l, ok
}

// ---------------------------------------------------------------------------
// cell borders

// SetBorder overwrites the border of the cell at pos. Every edge the cell
// owns is cleared first, so unset sides of b do not keep older values. A
// span origin owns the edges of its whole merged region.
func (c *Config) SetBorder(pos coordinate.Position, b Border) {
	c.RemoveBorder(pos)
	c.writeBorder(pos, b)
}

// RemoveBorder clears the border override of the cell at pos, reverting it
// to the style.
func (c *Config) RemoveBorder(pos coordinate.Position) {
	size := c.spanSize(pos)
	for col := pos.Col; col < pos.Col+size; col++ {
		delete(c.hEdges, coordinate.At(pos.Row, col))
		delete(c.hEdges, coordinate.At(pos.Row+1, col))
	}
	delete(c.vEdges, pos)
	delete(c.vEdges, pos.Right(size))
	delete(c.crosses, pos)
	delete(c.crosses, pos.Right(size))
	delete(c.crosses, pos.Down(1))
	delete(c.crosses, pos.Down(1).Right(size))
}

func (c *Config) writeBorder(pos coordinate.Position, b Border) {
	size := c.spanSize(pos)
	for col := pos.Col; col < pos.Col+size; col++ {
		setRune(c.hEdges, coordinate.At(pos.Row, col), b.Top)
		setRune(c.hEdges, coordinate.At(pos.Row+1, col), b.Bottom)
	}
	setRune(c.vEdges, pos, b.Left)
	setRune(c.vEdges, pos.Right(size), b.Right)
	setRune(c.crosses, pos, b.TopLeft)
	setRune(c.crosses, pos.Right(size), b.TopRight)
	setRune(c.crosses, pos.Down(1), b.BottomLeft)
	setRune(c.crosses, pos.Down(1).Right(size), b.BottomRight)
}

// Border reads back the override of the cell at pos.
func (c *Config) Border(pos coordinate.Position) Border {
	size := c.spanSize(pos)
	return Border{
		Top:         c.hEdges[pos],
		Bottom:      c.hEdges[pos.Down(1)],
		Left:        c.vEdges[pos],
		Right:       c.vEdges[pos.Right(size)],
		TopLeft:     c.crosses[pos],
		TopRight:    c.crosses[pos.Right(size)],
		BottomLeft:  c.crosses[pos.Down(1)],
		BottomRight: c.crosses[pos.Down(1).Right(size)],
	}
}

// SetHorizontalEdge overrides the horizontal border segment above the cell
// (line, col). A zero rune removes the override.
func (c *Config) SetHorizontalEdge(line, col int, r rune) {
	setRune(c.hEdges, coordinate.At(line, col), r)
}

// SetVerticalEdge overrides the vertical border segment left of boundary in
// row. A zero rune removes the override.
func (c *Config) SetVerticalEdge(row, boundary int, r rune) {
	setRune(c.vEdges, coordinate.At(row, boundary), r)
}

// SetIntersection overrides the character where horizontal line and
// vertical boundary cross. A zero rune removes the override.
func (c *Config) SetIntersection(line, boundary int, r rune) {
	setRune(c.crosses, coordinate.At(line, boundary), r)
}

func setRune(m map[coordinate.Position]rune, pos coordinate.Position, r rune) {
	if r == 0 {
		delete(m, pos)
		return
	}
	m[pos] = r
}

// ---------------------------------------------------------------------------
// spans

// SetSpan makes the cell at pos cover size columns of a table with cols
// columns. The size is clamped to the columns remaining to the right of
// pos, and a size of 1 or less removes the span. Other spans overlapping
// the new one are dropped. It returns the size that was stored, 0 when the
// span was removed.
func (c *Config) SetSpan(pos coordinate.Position, size, cols int) int {
	size = min(size, cols-pos.Col)
	if size <= 1 || pos.Col < 0 || pos.Row < 0 {
		delete(c.spans, pos)
		return 0
	}
	for origin, s := range c.spans {
		if origin == pos || origin.Row != pos.Row {
			continue
		}
		if origin.Col < pos.Col+size && pos.Col < origin.Col+s {
			delete(c.spans, origin)
		}
	}
	c.spans[pos] = size
	return size
}

// Span returns the span size registered at pos, 1 when there is none.
func (c *Config) Span(pos coordinate.Position) (int, bool) {
	s, ok := c.spans[pos]
	if !ok {
		return 1, false
	}
	return s, true
}

func (c *Config) spanSize(pos coordinate.Position) int {
	s, _ := c.Span(pos)
	return s
}

// SpanOrigin returns the origin of the span covering pos. A position that
// is not covered is its own origin.
func (c *Config) SpanOrigin(pos coordinate.Position) coordinate.Position {
	for origin, s := range c.spans {
		if origin.Row == pos.Row && origin.Col < pos.Col && pos.Col < origin.Col+s {
			return origin
		}
	}
	return pos
}

// IsAbsorbed reports whether pos is covered by a span it is not the origin
// of.
func (c *Config) IsAbsorbed(pos coordinate.Position) bool {
	return c.SpanOrigin(pos) != pos
}

// Covered maps every position absorbed by a span to the span origin.
func (c *Config) Covered() map[coordinate.Position]coordinate.Position {
	out := make(map[coordinate.Position]coordinate.Position)
	for origin, s := range c.spans {
		for col := origin.Col + 1; col < origin.Col+s; col++ {
			out[coordinate.At(origin.Row, col)] = origin
		}
	}
	return out
}

// Spans returns every registered span keyed by origin.
func (c *Config) Spans() map[coordinate.Position]int {
	return maps.Clone(c.spans)
}

// Targets resolves e the way cell settings see it: positions absorbed by a
// span are redirected to the span origin, and each origin is yielded once.
func (c *Config) Targets(e entity.Entity, rows, cols int) iter.Seq[coordinate.Position] {
	return func(yield func(coordinate.Position) bool) {
		seen := make(map[coordinate.Position]struct{})
		for pos := range e.Iter(rows, cols) {
			pos = c.SpanOrigin(pos)
			if _, ok := seen[pos]; ok {
				continue
			}
			seen[pos] = struct{}{}
			if !yield(pos) {
				return
			}
		}
	}
}

// ---------------------------------------------------------------------------
// formats

// Format returns the effective presentation of the cell at pos.
func (c *Config) Format(pos coordinate.Position) Resolved {
	return c.cellFormat(pos).over(c.defaults)
}

func (c *Config) cellFormat(pos coordinate.Position) Format {
	id, ok := c.cellFormats[pos]
	if !ok {
		return Format{}
	}
	f, _ := c.formats.Get(id)
	return f
}

// updateFormat applies fn to the format override of pos and re-interns it.
func (c *Config) updateFormat(pos coordinate.Position, fn func(*Format)) {
	f := c.cellFormat(pos)
	fn(&f)

	if old, ok := c.cellFormats[pos]; ok {
		c.formats.Release(old)
		delete(c.cellFormats, pos)
	}
	if f.IsDefault() {
		return
	}
	c.cellFormats[pos] = c.formats.Add(f)
}

func (c *Config) SetPadding(pos coordinate.Position, p Padding) {
	c.updateFormat(pos, func(f *Format) {
		f.HasPadding, f.Padding = true, p
	})
}

func (c *Config) SetAlignmentH(pos coordinate.Position, a AlignmentH) {
	c.updateFormat(pos, func(f *Format) {
		f.HasAlignH, f.AlignH = true, a
	})
}

func (c *Config) SetAlignmentV(pos coordinate.Position, a AlignmentV) {
	c.updateFormat(pos, func(f *Format) {
		f.HasAlignV, f.AlignV = true, a
	})
}

// ClearFormat drops every presentation override of pos.
func (c *Config) ClearFormat(pos coordinate.Position) {
	c.updateFormat(pos, func(f *Format) { *f = Format{} })
}

// SetDefaultPadding changes the padding of every cell without an override.
func (c *Config) SetDefaultPadding(p Padding) {
	c.defaults.Padding = p
}

func (c *Config) SetDefaultAlignmentH(a AlignmentH) {
	c.defaults.AlignH = a
}

func (c *Config) SetDefaultAlignmentV(a AlignmentV) {
	c.defaults.AlignV = a
}

func (c *Config) Defaults() Resolved {
	return c.defaults
}

// FormatCount returns the number of distinct interned formats.
func (c *Config) FormatCount() int {
	return c.formats.Count()
}

// ---------------------------------------------------------------------------
// dimensions

// SetColumnWidth fixes the width of col. A non-positive size removes it.
func (c *Config) SetColumnWidth(col int, w Width) {
	if w.Size <= 0 {
		delete(c.widths, col)
		return
	}
	c.widths[col] = w
}

func (c *Config) ColumnWidth(col int) (Width, bool) {
	w, ok := c.widths[col]
	return w, ok
}

// SetMinColumnWidth makes col at least n columns wide.
func (c *Config) SetMinColumnWidth(col, n int) {
	if n <= 0 {
		delete(c.minWidths, col)
		return
	}
	c.minWidths[col] = n
}

func (c *Config) MinColumnWidth(col int) int {
	return c.minWidths[col]
}

// SetRowHeight fixes the height of row. A negative height removes it.
func (c *Config) SetRowHeight(row, n int) {
	if n < 0 {
		delete(c.heights, row)
		return
	}
	c.heights[row] = n
}

func (c *Config) RowHeight(row int) (int, bool) {
	h, ok := c.heights[row]
	return h, ok
}

// ---------------------------------------------------------------------------
// margin and line text

func (c *Config) SetMargin(m Margin) {
	c.margin = m
}

func (c *Config) Margin() Margin {
	return c.margin
}

func (c *Config) SetMarginOffset(o MarginOffset) {
	c.marginOffset = o
}

func (c *Config) MarginOffset() MarginOffset {
	return c.marginOffset
}

// AddLineText overlays text on horizontal line. Later texts are drawn over
// earlier ones.
func (c *Config) AddLineText(line int, t LineText) {
	c.lineTexts[line] = append(c.lineTexts[line], t)
}

func (c *Config) LineTexts(line int) []LineText {
	return c.lineTexts[line]
}

// ---------------------------------------------------------------------------
// shape changes

// InsertRow shifts every row-keyed entry at or below index one row down,
// making room for a row inserted at index. Style lines and line texts are
// positional and stay where they are.
func (c *Config) InsertRow(index int) {
	shift := func(p coordinate.Position) coordinate.Position {
		if p.Row >= index {
			return p.Down(1)
		}
		return p
	}
	c.hEdges = remap(c.hEdges, shift)
	c.vEdges = remap(c.vEdges, shift)
	c.crosses = remap(c.crosses, shift)
	c.spans = remap(c.spans, shift)
	c.cellFormats = remap(c.cellFormats, shift)

	heights := make(map[int]int, len(c.heights))
	for row, h := range c.heights {
		if row >= index {
			row++
		}
		heights[row] = h
	}
	c.heights = heights
}

func remap[V any](m map[coordinate.Position]V, fn func(coordinate.Position) coordinate.Position) map[coordinate.Position]V {
	out := make(map[coordinate.Position]V, len(m))
	for pos, v := range m {
		out[fn(pos)] = v
	}
	return out
}

// Merge copies the cell-level configuration of other into c, moved by
// rowOffset rows and colOffset columns. Style, margin and line texts of c
// are kept. other may be c itself.
func (c *Config) Merge(other *Config, rowOffset, colOffset int) {
	other = other.Clone()
	move := func(p coordinate.Position) coordinate.Position {
		return coordinate.At(p.Row+rowOffset, p.Col+colOffset)
	}
	for pos, r := range other.hEdges {
		c.hEdges[move(pos)] = r
	}
	for pos, r := range other.vEdges {
		c.vEdges[move(pos)] = r
	}
	for pos, r := range other.crosses {
		c.crosses[move(pos)] = r
	}
	for pos, s := range other.spans {
		c.spans[move(pos)] = s
	}
	for pos := range other.cellFormats {
		f := other.cellFormat(pos)
		c.updateFormat(move(pos), func(dst *Format) { *dst = f })
	}
	for col, w := range other.widths {
		c.widths[col+colOffset] = w
	}
	for col, n := range other.minWidths {
		c.minWidths[col+colOffset] = n
	}
	for row, h := range other.heights {
		c.heights[row+rowOffset] = h
	}
}
