package builder

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/hnimtadd/tablo/grid/width"
)

type wide int

const (
	// cell holds one rune a single column wide.
	wideNarrow wide = iota
	// cell holds a rune two columns wide.
	wideWide
	// cell is the second column of a wide rune. Do not render.
	wideSpacerTail
)

// cell is one display column of a border line.
type cell struct {
	text string
	wide wide
}

// line is a border line addressed by display column, so that texts can be
// overlaid at exact offsets.
type line []cell

func (l *line) rune(r rune, n int) {
	for range n {
		*l = append(*l, cell{text: string(r)})
	}
}

// overlay writes text over l starting at column start. Runes that would
// fall outside the line are clipped, and a wide rune that does not fit
// whole is dropped.
func (l line) overlay(text string, start int) {
	if strings.ContainsRune(text, '\x1b') {
		text = ansi.Strip(text)
	}
	col := start
	for _, r := range text {
		w := width.Rune(r)
		if w == 0 {
			continue
		}
		if col >= 0 && col+w <= len(l) {
			l.clear(col)
			if w == 2 {
				l.clear(col + 1)
				l[col] = cell{text: string(r), wide: wideWide}
				l[col+1] = cell{wide: wideSpacerTail}
			} else {
				l[col] = cell{text: string(r)}
			}
		}
		col += w
		if col >= len(l) {
			return
		}
	}
}

// clear blanks the column at i, also blanking the other half of a wide rune
// it splits.
func (l line) clear(i int) {
	switch l[i].wide {
	case wideWide:
		if i+1 < len(l) {
			l[i+1] = cell{text: " "}
		}
	case wideSpacerTail:
		if i > 0 {
			l[i-1] = cell{text: " "}
		}
	}
	l[i] = cell{text: " "}
}

func (l line) String() string {
	var sb strings.Builder
	for _, c := range l {
		if c.wide == wideSpacerTail {
			continue
		}
		sb.WriteString(c.text)
	}
	return sb.String()
}
