package config

import "github.com/hnimtadd/tablo/grid/coordinate"

// Border lookups resolve a character in three tiers: a cell edge override,
// then a style line override, then the style template. A line or boundary
// exists when any tier gives it a main character; intersections alone never
// make a line exist.

// HasHorizontal reports whether horizontal line (0..rows) is drawn.
func (c *Config) HasHorizontal(line, rows int) bool {
	if c.horizontalMain(line, rows) != 0 {
		return true
	}
	for pos := range c.hEdges {
		if pos.Row == line {
			return true
		}
	}
	return false
}

// HasVertical reports whether vertical boundary (0..cols) is drawn.
func (c *Config) HasVertical(boundary, cols int) bool {
	if c.verticalMain(boundary, cols) != 0 {
		return true
	}
	for pos := range c.vEdges {
		if pos.Col == boundary {
			return true
		}
	}
	return false
}

func (c *Config) horizontalMain(line, rows int) rune {
	if l, ok := c.horizontals[line]; ok && l.Main != 0 {
		return l.Main
	}
	switch line {
	case 0:
		return c.borders.Top
	case rows:
		return c.borders.Bottom
	default:
		return c.borders.Horizontal
	}
}

func (c *Config) verticalMain(boundary, cols int) rune {
	switch boundary {
	case 0:
		return c.borders.Left
	case cols:
		return c.borders.Right
	default:
		return c.borders.Vertical
	}
}

// HorizontalChar returns the character of the segment of line above column
// col. It is a space when the line exists but nothing defines the segment.
func (c *Config) HorizontalChar(line, col, rows int) rune {
	if r, ok := c.hEdges[coordinate.At(line, col)]; ok {
		return r
	}
	if r := c.horizontalMain(line, rows); r != 0 {
		return r
	}
	return ' '
}

// VerticalChar returns the character of boundary in row.
func (c *Config) VerticalChar(row, boundary, cols int) rune {
	if r, ok := c.vEdges[coordinate.At(row, boundary)]; ok {
		return r
	}
	if r := c.verticalMain(boundary, cols); r != 0 {
		return r
	}
	return ' '
}

// IntersectionChar returns the character where line crosses boundary.
func (c *Config) IntersectionChar(line, boundary, rows, cols int) rune {
	if r, ok := c.crosses[coordinate.At(line, boundary)]; ok {
		return r
	}
	if l, ok := c.horizontals[line]; ok {
		var r rune
		switch boundary {
		case 0:
			r = l.Left
		case cols:
			r = l.Right
		default:
			r = l.Intersection
		}
		if r != 0 {
			return r
		}
	}
	if r := c.styleIntersection(line, boundary, rows, cols); r != 0 {
		return r
	}
	return ' '
}

func (c *Config) styleIntersection(line, boundary, rows, cols int) rune {
	b := c.borders
	switch {
	case line == 0 && boundary == 0:
		return b.TopLeft
	case line == 0 && boundary == cols:
		return b.TopRight
	case line == 0:
		return b.TopIntersection
	case line == rows && boundary == 0:
		return b.BottomLeft
	case line == rows && boundary == cols:
		return b.BottomRight
	case line == rows:
		return b.BottomIntersection
	case boundary == 0:
		return b.LeftIntersection
	case boundary == cols:
		return b.RightIntersection
	default:
		return b.Intersection
	}
}

// LineHorizontal returns the main character horizontal line would use from
// the style alone, ignoring cell overrides.
func (c *Config) LineHorizontal(line, rows int) rune {
	return c.horizontalMain(line, rows)
}
