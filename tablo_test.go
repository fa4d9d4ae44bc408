package tablo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/tablo/grid/config"
	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/hnimtadd/tablo/grid/entity"
	"github.com/hnimtadd/tablo/grid/records"
	"github.com/hnimtadd/tablo/logger"
	"github.com/hnimtadd/tablo/settings"
)

func TestTable_Render(t *testing.T) {
	table := New([][]string{{"a", "b"}, {"c"}}).With(settings.ASCII())

	out, err := table.Render()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+---+",
		"| a | b |",
		"+---+---+",
		"| c |   |",
		"+---+---+",
	}, "\n"), out)

	again, err := table.Render()
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestTable_Empty(t *testing.T) {
	table := New(nil).With(settings.Modern())

	out, err := table.Render()
	require.NoError(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, 0, table.TotalWidth())
	assert.Equal(t, 0, table.TotalHeight())
}

func TestTable_InconsistentGeometry(t *testing.T) {
	var buf bytes.Buffer
	table := New([][]string{{"a", "b"}}, WithLogger(logger.New(logger.Options{Buffer: &buf}))).
		With(settings.TableFunc(func(r *records.Vec, cfg *config.Config) {
			cfg.SetSpan(coordinate.At(3, 0), 2, r.CountColumns())
		}))

	_, err := table.Render()
	assert.ErrorIs(t, err, ErrInconsistentGeometry)

	assert.Equal(t, "", table.String())
	assert.Contains(t, buf.String(), "render failed")
	assert.Equal(t, 0, table.TotalWidth())
}

func TestTable_DefaultStyleSize(t *testing.T) {
	tests := []struct {
		name   string
		data   [][]string
		widths []int
		lines  int
	}{
		{"single cell", [][]string{{"a"}}, []int{3}, 1},
		{"two by two", [][]string{{"a", "bb"}, {"c", "d"}}, []int{3, 4}, 1},
		{"three columns", [][]string{{"x", "", "long"}, {"", "y", ""}, {"z", "", ""}}, []int{3, 3, 6}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := New(tt.data)
			rows, cols := table.Shape()

			want := cols + 1
			for _, w := range tt.widths {
				want += w
			}
			out, err := table.Render()
			require.NoError(t, err)
			lines := strings.Split(out, "\n")
			assert.Len(t, lines, rows*(1+tt.lines)+1)
			for _, l := range lines {
				assert.Equal(t, want, len([]rune(l)))
			}
			assert.Equal(t, want, table.TotalWidth())
		})
	}

	out, err := New([][]string{{"a", "bb"}, {"c", "d"}}).Render()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+----+",
		"| a | bb |",
		"+---+----+",
		"| c | d  |",
		"+---+----+",
	}, "\n"), out)
}

func TestTable_Shape(t *testing.T) {
	rows, cols := New([][]string{{"a"}, {"b", "c", "d"}}).Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
}

func TestTable_TotalSize(t *testing.T) {
	table := New([][]string{{"ab", "c"}, {"d", "e"}}).With(settings.Modern())

	out, err := table.Render()
	require.NoError(t, err)
	lines := strings.Split(out, "\n")
	assert.Equal(t, len(lines), table.TotalHeight())
	for _, l := range lines {
		assert.Equal(t, table.TotalWidth(), len([]rune(l)))
	}
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := New([][]string{{"a", "b"}}).With(settings.ASCII())
	clone := table.Clone().
		Modify(entity.Cell(0, 0), settings.Text("changed")).
		With(settings.Blank())

	out, err := table.Render()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+---+",
		"| a | b |",
		"+---+---+",
	}, "\n"), out)
	assert.Equal(t, "changed", clone.Records().Get(coordinate.At(0, 0)))
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	table := New([][]string{{"a"}})
	table.Records().Set(coordinate.At(0, 0), "x")
	table.Config().SetRowHeight(0, 5)

	assert.Equal(t, "a", table.Records().Get(coordinate.At(0, 0)))
	_, ok := table.Config().RowHeight(0)
	assert.False(t, ok)
}

func TestTable_ConcatHorizontal(t *testing.T) {
	left := New([][]string{{"a"}, {"b"}}).With(settings.ASCII())
	right := New([][]string{{"x", "y"}}).
		Modify(entity.Cell(0, 0), settings.Span(2))

	left.ConcatHorizontal(right)

	rows, cols := left.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	size, ok := left.Config().Span(coordinate.At(0, 1))
	require.True(t, ok)
	assert.Equal(t, 2, size)

	out, err := left.Render()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---+--+--+",
		"| a | x   |",
		"+---+--+--+",
		"| b |  |  |",
		"+---+--+--+",
	}, "\n"), out)
}

func TestTable_ConcatWithItself(t *testing.T) {
	build := func() *Table {
		return New([][]string{{"a", "b"}}).
			Modify(entity.Cell(0, 0), settings.FilledBorder('#'))
	}
	want := strings.Join([]string{
		"#####---#####---+",
		"# a # b # a # b |",
		"#####---#####---+",
	}, "\n")

	for range 8 {
		table := build()
		table.ConcatHorizontal(table)
		out, err := table.Render()
		require.NoError(t, err)
		assert.Equal(t, want, out)
	}

	table := build()
	table.ConcatVertical(table)
	rows, _ := table.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, "a", table.Records().Get(coordinate.At(1, 0)))
	assert.Equal(t, '#', table.Config().Border(coordinate.At(1, 0)).Left)
}

func TestTable_ConcatVertical(t *testing.T) {
	top := New([][]string{{"a", "b"}}).With(settings.ASCII())
	bottom := New([][]string{{"c", "d"}}).Modify(entity.Cell(0, 1), settings.AlignRight())

	top.ConcatVertical(bottom)

	rows, _ := top.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, config.AlignRight, top.Config().Format(coordinate.At(1, 1)).AlignH)
	assert.Equal(t, "c", top.Records().Get(coordinate.At(1, 0)))
}

func TestTable_Lines(t *testing.T) {
	lines, err := New([][]string{{"a"}, {"b"}}).Lines()
	require.NoError(t, err)
	assert.Equal(t, []string{"+---+", "| a |", "+---+", "| b |", "+---+"}, lines)

	lines, err = New(nil).Lines()
	require.NoError(t, err)
	assert.Nil(t, lines)
}

func TestFromRecords_Copies(t *testing.T) {
	src := records.NewVec([][]string{{"a"}})
	table := FromRecords(src)
	src.Set(coordinate.At(0, 0), "b")

	assert.Equal(t, "a", table.Records().Get(coordinate.At(0, 0)))
}

func TestWithLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Options{Buffer: &buf, Level: logger.DebugLevel, Type: logger.TypeJSON})
	table := New([][]string{{"a"}}, WithLogger(l)).With(settings.Modern())

	_, err := table.Render()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"rendering table"`)
	assert.Contains(t, buf.String(), "settings.Style")
}
