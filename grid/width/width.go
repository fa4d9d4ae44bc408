// Package width measures and reshapes cell text in display columns.
//
// ANSI escape sequences are treated as opaque decorations: they are
// stripped before measuring and kept intact when text is cut or wrapped.
package width

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	dw "github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Line returns the display width of a single line.
func Line(s string) int {
	if !strings.ContainsRune(s, '\x1b') {
		return dw.StringWidth(s)
	}
	return dw.StringWidth(ansi.Strip(s))
}

// Rune returns the display width of r.
func Rune(r rune) int {
	return dw.RuneWidth(r)
}

// Lines splits s into its lines. The empty string is one empty line.
func Lines(s string) []string {
	return strings.Split(s, "\n")
}

// Text returns the widest line of s and its line count.
func Text(s string) (width, lines int) {
	for _, line := range Lines(s) {
		width = max(width, Line(line))
		lines++
	}
	return width, lines
}

// Truncate cuts every line of s to at most w columns. The suffix replaces
// the tail of lines that were cut, when it fits. Lines are never cut in the
// middle of a wide rune.
func Truncate(s string, w int, suffix string) string {
	lines := Lines(s)
	for i, line := range lines {
		lines[i] = truncateLine(line, w, suffix)
	}
	return strings.Join(lines, "\n")
}

func truncateLine(line string, w int, suffix string) string {
	if w <= 0 {
		return ""
	}
	if Line(line) <= w {
		return line
	}
	if Line(suffix) > w {
		suffix = ""
	}
	return truncate.StringWithTail(line, uint(w), suffix)
}

// Wrap breaks s into lines of at most w columns, preferring word
// boundaries and hard-breaking words that are longer than w.
func Wrap(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return wrap.String(wordwrap.String(s, w), w)
}

// Pad fills line with fill up to w columns. Lines already at or past w are
// returned unchanged.
func Pad(line string, w int, fill rune) string {
	n := w - Line(line)
	if n <= 0 {
		return line
	}
	return line + Repeat(fill, n)
}

// Repeat returns fill repeated to cover exactly n columns. When a wide fill
// does not divide n, the rest is padded with spaces.
func Repeat(fill rune, n int) string {
	if n <= 0 {
		return ""
	}
	if fill == 0 {
		fill = ' '
	}
	w := max(Rune(fill), 1)
	return strings.Repeat(string(fill), n/w) + strings.Repeat(" ", n%w)
}
