package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_TextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: WarnLevel, Type: TypeText})

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("span clamped", "col", 3)
	assert.Contains(t, buf.String(), "span clamped")
	assert.Contains(t, buf.String(), "col=3")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Buffer: &buf, Level: DebugLevel, Type: TypeJSON})

	l.Debug("render", "rows", 2)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "render", record["msg"])
	assert.EqualValues(t, 2, record["rows"])
}

func TestLogger_NilBufferDiscards(t *testing.T) {
	l := New(Options{})
	assert.NotPanics(t, func() { l.Error("nowhere") })
	assert.NotPanics(t, func() { Nop().Error("nowhere") })
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, DebugLevel, l)
	assert.Equal(t, "debug", l.String())

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("json")
	require.NoError(t, err)
	assert.Equal(t, TypeJSON, typ)

	_, err = ParseType("xml")
	assert.Error(t, err)
}
