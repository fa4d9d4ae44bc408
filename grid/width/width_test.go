package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	assert.Equal(t, 5, Line("hello"))
	assert.Equal(t, 4, Line("你好"))
	assert.Equal(t, 0, Line(""))
}

func TestLine_StripsANSI(t *testing.T) {
	assert.Equal(t, 3, Line("\x1b[31mred\x1b[0m"))
}

func TestText(t *testing.T) {
	w, h := Text("a\nlonger\nmid")
	assert.Equal(t, 6, w)
	assert.Equal(t, 3, h)

	w, h = Text("")
	assert.Equal(t, 0, w)
	assert.Equal(t, 1, h)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hel", Truncate("hello", 3, ""))
	assert.Equal(t, "he.", Truncate("hello", 3, "."))
	assert.Equal(t, "hello", Truncate("hello", 5, "..."))
	assert.Equal(t, "", Truncate("hello", 0, ""))
	assert.Equal(t, "ab\ncd", Truncate("abc\ncde", 2, ""))
}

func TestTruncate_SuffixTooWide(t *testing.T) {
	assert.Equal(t, "he", Truncate("hello", 2, "..."))
}

func TestTruncate_WideRuneNotSplit(t *testing.T) {
	got := Truncate("你好", 3, "")
	assert.Equal(t, "你", got)
	assert.Equal(t, 2, Line(got))
}

func TestTruncate_KeepsANSI(t *testing.T) {
	got := Truncate("\x1b[31mhello\x1b[0m", 2, "")
	assert.Equal(t, 2, Line(got))
	assert.Contains(t, got, "\x1b[31m")
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "hello\nworld", Wrap("hello world", 5))
	assert.Equal(t, "abc\ndef", Wrap("abcdef", 3))
	assert.Equal(t, "", Wrap("abc", 0))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", Pad("ab", 4, ' '))
	assert.Equal(t, "ab..", Pad("ab", 4, '.'))
	assert.Equal(t, "abcd", Pad("abcd", 2, ' '))
	assert.Equal(t, "   ", Repeat(0, 3))
}

func TestRepeat_WideFill(t *testing.T) {
	assert.Equal(t, "你你", Repeat('你', 4))
	assert.Equal(t, "你 ", Repeat('你', 3))
	assert.Equal(t, " ", Repeat('你', 1))
	assert.Equal(t, 5, Line(Repeat('你', 5)))
}
