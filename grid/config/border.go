package config

// Border is the border of a single cell as up to 8 characters. A zero rune
// means the side is not set.
//
//	top left corner --> +-------+ <-- top right corner
//	                    |       |
//	left border ------> |  cell | <-- right border
//	                    |       |
//	bottom left ------> +-------+ <-- bottom right corner
type Border struct {
	Top    rune
	Bottom rune
	Left   rune
	Right  rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

// Filled returns a border using c for every side and corner.
func Filled(c rune) Border {
	return Full(c, c, c, c, c, c, c, c)
}

// Full returns a border with every side and corner set.
func Full(top, bottom, left, right, topLeft, topRight, bottomLeft, bottomRight rune) Border {
	return Border{
		Top:         top,
		Bottom:      bottom,
		Left:        left,
		Right:       right,
		TopLeft:     topLeft,
		TopRight:    topRight,
		BottomLeft:  bottomLeft,
		BottomRight: bottomRight,
	}
}

func (b Border) IsEmpty() bool {
	return b == Border{}
}

func (b Border) WithTop(c rune) Border {
	b.Top = c
	return b
}

func (b Border) WithBottom(c rune) Border {
	b.Bottom = c
	return b
}

func (b Border) WithLeft(c rune) Border {
	b.Left = c
	return b
}

func (b Border) WithRight(c rune) Border {
	b.Right = c
	return b
}

func (b Border) WithCorners(topLeft, topRight, bottomLeft, bottomRight rune) Border {
	b.TopLeft, b.TopRight = topLeft, topRight
	b.BottomLeft, b.BottomRight = bottomLeft, bottomRight
	return b
}

// Borders is the table-wide border template a style provides. It is used
// wherever no cell or line override exists.
type Borders struct {
	Top        rune
	Bottom     rune
	Left       rune
	Right      rune
	Horizontal rune
	Vertical   rune

	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune

	TopIntersection    rune
	BottomIntersection rune
	LeftIntersection   rune
	RightIntersection  rune
	Intersection       rune
}

// Line overrides the characters of one horizontal border line.
type Line struct {
	Main         rune
	Intersection rune
	Left         rune
	Right        rune
}

func (l Line) IsEmpty() bool {
	return l == Line{}
}
