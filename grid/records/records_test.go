package records

import (
	"testing"

	"github.com/hnimtadd/tablo/grid/coordinate"
	"github.com/stretchr/testify/assert"
)

func TestVec_NormalisesRaggedRows(t *testing.T) {
	v := NewVec([][]string{{"a"}, {"b", "c", "d"}})

	assert.Equal(t, 2, v.CountRows())
	assert.Equal(t, 3, v.CountColumns())
	assert.Equal(t, "", v.Get(coordinate.At(0, 2)))
	assert.Equal(t, "d", v.Get(coordinate.At(1, 2)))
}

func TestVec_GetOutOfRange(t *testing.T) {
	v := NewVec([][]string{{"a"}})
	assert.Equal(t, "", v.Get(coordinate.At(5, 0)))
	assert.Equal(t, "", v.Get(coordinate.At(0, -1)))
	v.Set(coordinate.At(3, 3), "x")
	assert.Equal(t, "a", v.Get(coordinate.At(0, 0)))
}

func TestVec_InsertRow(t *testing.T) {
	v := NewVec([][]string{{"a", "b"}, {"c", "d"}})

	idx := v.InsertRow(1, []string{"panel"})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, v.CountRows())
	assert.Equal(t, "panel", v.Get(coordinate.At(1, 0)))
	assert.Equal(t, "", v.Get(coordinate.At(1, 1)))
	assert.Equal(t, "c", v.Get(coordinate.At(2, 0)))

	idx = v.InsertRow(99, []string{"x", "y", "z"})
	assert.Equal(t, 3, idx)
	assert.Equal(t, "y", v.Get(coordinate.At(3, 1)))
	assert.Equal(t, 2, v.CountColumns())
}

func TestVec_InsertRowIntoEmpty(t *testing.T) {
	v := NewVec(nil)
	v.InsertRow(0, []string{"only"})
	assert.Equal(t, 1, v.CountRows())
	assert.Equal(t, 1, v.CountColumns())
}

func TestVec_AppendRowsAndColumns(t *testing.T) {
	v := NewVec([][]string{{"a"}})
	v.AppendRows(NewVec([][]string{{"b", "c"}}))
	assert.Equal(t, 2, v.CountRows())
	assert.Equal(t, 2, v.CountColumns())
	assert.Equal(t, "c", v.Get(coordinate.At(1, 1)))

	v.AppendColumns(NewVec([][]string{{"x"}, {"y"}, {"z"}}))
	assert.Equal(t, 3, v.CountRows())
	assert.Equal(t, 3, v.CountColumns())
	assert.Equal(t, "x", v.Get(coordinate.At(0, 2)))
	assert.Equal(t, "z", v.Get(coordinate.At(2, 2)))
	assert.Equal(t, "", v.Get(coordinate.At(2, 0)))
}

func TestFromRecords_Copies(t *testing.T) {
	src := NewVec([][]string{{"a"}})
	cp := FromRecords(src)
	cp.Set(coordinate.At(0, 0), "b")
	assert.Equal(t, "a", src.Get(coordinate.At(0, 0)))
	assert.Equal(t, "b", cp.Get(coordinate.At(0, 0)))
}
