package builder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/dimension"
	"github.com/hnimtadd/tablo/grid/records"
	"github.com/hnimtadd/tablo/grid/width"
)

func TestGrid_ASCII(t *testing.T) {
	r := records.NewVec([][]string{{"a", "bb"}, {"ccc", "d"}})
	cfg := asciiConfig()

	assert.Equal(t, join(
		"+-----+----+",
		"| a   | bb |",
		"+-----+----+",
		"| ccc | d  |",
		"+-----+----+",
	), render(t, r, cfg))
}

func TestGrid_Span(t *testing.T) {
	r := records.NewVec([][]string{{"span", ""}, {"x", "y"}})
	cfg := asciiConfig()
	cfg.SetSpan(coordinate.At(0, 0), 2, 2)

	assert.Equal(t, join(
		"+---+---+",
		"| span  |",
		"+---+---+",
		"| x | y |",
		"+---+---+",
	), render(t, r, cfg))
}

func TestGrid_Alignment(t *testing.T) {
	r := records.NewVec([][]string{{"a\nb\nc", "x", "y"}})
	cfg := config.New()
	cfg.SetAlignmentV(coordinate.At(0, 1), config.AlignBottom)
	cfg.SetAlignmentV(coordinate.At(0, 2), config.AlignMiddle)
	cfg.SetMinColumnWidth(2, 5)
	cfg.SetAlignmentH(coordinate.At(0, 2), config.AlignCenter)

	blank := func(n int) string { return strings.Repeat(" ", n) }
	assert.Equal(t, join(
		" a "+blank(3)+blank(5),
		" b "+blank(3)+"  y  ",
		" c "+" x "+blank(5),
	), render(t, r, cfg))
}

func TestGrid_Padding(t *testing.T) {
	r := records.NewVec([][]string{{"a"}})
	cfg := config.New()
	cfg.SetDefaultPadding(config.Padding{
		Top:    config.Indent{Size: 1, Fill: '^'},
		Bottom: config.Indent{Size: 1, Fill: 'v'},
		Left:   config.Indent{Size: 2, Fill: '<'},
		Right:  config.Indent{Size: 1, Fill: '>'},
	})

	assert.Equal(t, join(
		"^^^^",
		"<<a>",
		"vvvv",
	), render(t, r, cfg))
}

func TestGrid_LineText(t *testing.T) {
	r := records.NewVec([][]string{{"hello"}})
	cfg := asciiConfig()
	cfg.AddLineText(0, config.LineText{Text: "ab", Offset: 1})
	cfg.AddLineText(1, config.LineText{Text: "xy", Offset: 1, FromEnd: true})
	cfg.AddLineText(1, config.LineText{Text: "far too long", Offset: 6})

	assert.Equal(t, join(
		"+ab-----+",
		"| hello |",
		"+-----far",
	), render(t, r, cfg))
}

func TestGrid_Margin(t *testing.T) {
	r := records.NewVec([][]string{{"a"}})
	cfg := config.New()
	cfg.SetMargin(config.Margin{
		Top:    config.Indent{Size: 1, Fill: '*'},
		Bottom: config.Indent{Size: 1, Fill: '*'},
		Left:   config.Indent{Size: 1, Fill: '*'},
		Right:  config.Indent{Size: 1, Fill: '*'},
	})

	assert.Equal(t, join(
		"*****",
		"* a *",
		"*****",
	), render(t, r, cfg))
}

func TestGrid_MarginOffset(t *testing.T) {
	r := records.NewVec([][]string{{"a"}, {"b"}})
	cfg := config.New()
	cfg.SetMargin(config.Margin{
		Right:  config.Indent{Size: 1, Fill: '▒'},
		Bottom: config.Indent{Size: 1, Fill: '▒'},
	})
	cfg.SetMarginOffset(config.MarginOffset{
		Right:  config.Offset{Begin: 1},
		Bottom: config.Offset{Begin: 1},
	})

	assert.Equal(t, join(
		" a  ",
		" b ▒",
		" ▒▒▒",
	), render(t, r, cfg))
}

func TestGrid_CellOverrideDrawsSpaceWhereStyleIsEmpty(t *testing.T) {
	r := records.NewVec([][]string{{"a", "b"}, {"c", "d"}})
	cfg := config.New()
	cfg.SetBorders(config.Borders{Vertical: '|'}, nil)
	cfg.SetBorder(coordinate.At(0, 0), config.Border{Left: '#'})

	assert.Equal(t, join(
		"# a | b ",
		"  c | d ",
	), render(t, r, cfg))
}

func TestGrid_Empty(t *testing.T) {
	r := records.NewVec(nil)
	assert.Equal(t, "", render(t, r, asciiConfig()))
}

func TestGrid_Idempotent(t *testing.T) {
	r := records.NewVec([][]string{{"a", "b"}})
	cfg := asciiConfig()
	plan, err := dimension.Estimate(r, cfg)
	require.NoError(t, err)

	g := New(r, cfg, plan)
	assert.Equal(t, g.String(), g.String())
}

func TestGrid_LinesHaveEqualWidth(t *testing.T) {
	r := records.NewVec([][]string{{"日本", "x"}, {"a", "multi\nline"}})
	cfg := asciiConfig()
	cfg.SetSpan(coordinate.At(0, 0), 2, 2)
	plan, err := dimension.Estimate(r, cfg)
	require.NoError(t, err)

	for _, l := range New(r, cfg, plan).Lines() {
		assert.Equal(t, plan.GridWidth(), width.Line(l), l)
	}
}

func render(t *testing.T, r records.Records, cfg *config.Config) string {
	t.Helper()
	plan, err := dimension.Estimate(r, cfg)
	require.NoError(t, err)
	return New(r, cfg, plan).String()
}

func asciiConfig() *config.Config {
	cfg := config.New()
	cfg.SetBorders(config.Borders{
		Top: '-', Bottom: '-', Left: '|', Right: '|', Horizontal: '-', Vertical: '|',
		TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
		TopIntersection: '+', BottomIntersection: '+',
		LeftIntersection: '+', RightIntersection: '+', Intersection: '+',
	}, nil)
	return cfg
}

func join(lines ...string) string {
	return strings.Join(lines, "\n")
}
