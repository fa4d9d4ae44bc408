package config

import (
	"fmt"

	"github.com/hnimtadd/tablo/grid/set"
	"github.com/hnimtadd/tablo/grid/utils"
	"github.com/mitchellh/hashstructure/v2"
)

// Indent is a run of Size fill characters. A zero Fill renders as a space.
type Indent struct {
	Size int
	Fill rune
}

func Spaces(n int) Indent {
	return Indent{Size: n, Fill: ' '}
}

// Padding is the space between a cell's border and its content.
type Padding struct {
	Top    Indent
	Bottom Indent
	Left   Indent
	Right  Indent
}

// Horizontal returns the columns taken by left and right padding.
func (p Padding) Horizontal() int {
	return p.Left.Size + p.Right.Size
}

// Vertical returns the lines taken by top and bottom padding.
func (p Padding) Vertical() int {
	return p.Top.Size + p.Bottom.Size
}

type AlignmentH int

const (
	AlignLeft AlignmentH = iota
	AlignCenter
	AlignRight
)

type AlignmentV int

const (
	AlignTop AlignmentV = iota
	AlignMiddle
	AlignBottom
)

// Format is the per-cell presentation. Each field only applies when its
// Has flag is set, otherwise the table default is used.
type Format struct {
	HasPadding bool
	Padding    Padding

	HasAlignH bool
	AlignH    AlignmentH

	HasAlignV bool
	AlignV    AlignmentV
}

// Resolved is a format with every field decided.
type Resolved struct {
	Padding Padding
	AlignH  AlignmentH
	AlignV  AlignmentV
}

// over layers f on top of base.
func (f Format) over(base Resolved) Resolved {
	if f.HasPadding {
		base.Padding = f.Padding
	}
	if f.HasAlignH {
		base.AlignH = f.AlignH
	}
	if f.HasAlignV {
		base.AlignV = f.AlignV
	}
	return base
}

func (f Format) IsDefault() bool {
	return !f.HasPadding && !f.HasAlignH && !f.HasAlignV
}

func (f Format) Hash() uint64 {
	hashed, err := hashstructure.Hash(f, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash format: %v", err))
	return hashed
}

func (f Format) Equals(other set.Hashable) bool {
	o, ok := other.(Format)
	return ok && o == f
}

// WidthMode decides how content is fitted into a fixed column width.
type WidthMode int

const (
	// WidthTruncate drops trailing characters, appending Suffix if it fits.
	WidthTruncate WidthMode = iota
	// WidthWrap breaks content onto more lines.
	WidthWrap
)

// Width fixes the total width of a column, padding included.
type Width struct {
	Size   int
	Mode   WidthMode
	Suffix string
}

// Margin is the space around the whole rendered table.
type Margin struct {
	Top    Indent
	Bottom Indent
	Left   Indent
	Right  Indent
}

// Offset blanks the first Begin and the last End characters of a margin
// side, rendering them as spaces instead of the fill.
type Offset struct {
	Begin int
	End   int
}

// MarginOffset holds the offset of each margin side. Top and bottom run
// left to right, left and right run top to bottom.
type MarginOffset struct {
	Top    Offset
	Bottom Offset
	Left   Offset
	Right  Offset
}

// LineText overlays Text on a horizontal border line. Offset counts
// columns from the start of the line, or from its end when FromEnd is set.
type LineText struct {
	Text    string
	Offset  int
	FromEnd bool
}
