package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnimtadd/tablo"
)

const tomlProfile = `
style = "ascii"
header = "Title"
correct_spans = true

[padding]
left = 1
right = 1

[[widths]]
column = 1
size = 5
suffix = "."
`

const yamlProfile = `
style: ascii
header: Title
correct_spans: true
padding:
  left: 1
  right: 1
widths:
  - column: 1
    size: 5
    suffix: "."
`

func TestParse_TOMLAndYAMLAgree(t *testing.T) {
	fromTOML, err := Parse([]byte(tomlProfile), FormatTOML)
	require.NoError(t, err)
	fromYAML, err := Parse([]byte(yamlProfile), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, fromTOML, fromYAML)
	assert.Equal(t, "ascii", fromTOML.Style)
	require.Len(t, fromTOML.Widths, 1)
	assert.Equal(t, Column{Column: 1, Size: 5, Suffix: "."}, fromTOML.Widths[0])
}

func TestProfile_Options(t *testing.T) {
	p, err := Parse([]byte(tomlProfile), FormatTOML)
	require.NoError(t, err)
	opts, err := p.Options()
	require.NoError(t, err)

	out, err := tablo.New([][]string{{"a", "long text"}}).With(opts...).Render()
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+---------+",
		"|  Title  |",
		"+---+-----+",
		"| a | lo. |",
		"+---+-----+",
	}, "\n"), out)
}

func TestProfile_UnknownStyle(t *testing.T) {
	p := &Profile{Style: "fancy"}
	_, err := p.Options()
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestProfile_UnknownAlignment(t *testing.T) {
	p := &Profile{Align: "diagonal"}
	_, err := p.Options()
	assert.ErrorIs(t, err, ErrUnknownAlignment)
}

func TestProfile_Shadow(t *testing.T) {
	offset := 0
	p := &Profile{Style: "empty", Shadow: &Shadow{Size: 1, Offset: &offset, Fill: "#"}}
	opts, err := p.Options()
	require.NoError(t, err)

	out, err := tablo.New([][]string{{"a"}}).With(opts...).Render()
	require.NoError(t, err)
	assert.Equal(t, " a #\n####", out)
}

func TestParse_InvalidDocument(t *testing.T) {
	_, err := Parse([]byte("style = "), FormatTOML)
	assert.Error(t, err)
	_, err = Parse([]byte("style: [unclosed"), FormatYAML)
	assert.Error(t, err)
	_, err = Parse(nil, Format(42))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_PicksFormatFromExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "profile.yml")
	require.NoError(t, os.WriteFile(yml, []byte(yamlProfile), 0o644))

	p, err := Load(yml)
	require.NoError(t, err)
	assert.Equal(t, "Title", p.Header)

	_, err = Load(filepath.Join(dir, "profile.json"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestStyleByName(t *testing.T) {
	for _, name := range StyleNames() {
		_, err := StyleByName(name)
		assert.NoError(t, err, name)
	}
	_, err := StyleByName("MODERN")
	assert.NoError(t, err)
}
