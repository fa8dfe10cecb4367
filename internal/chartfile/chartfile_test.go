package chartfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pie"
)

var want = &Document{
	Options: pie.Options{Width: 400, Mode: pie.ModeDonut},
	Max:     10,
	Data: []pie.DataPoint{
		{Key: "A", Value: 3},
		{Key: "B", Value: 7},
	},
}

func TestDecode(t *testing.T) {
	tests := []struct {
		format Format
		input  string
	}{
		{FormatYAML, `
options:
  width: 400
  mode: donut
max: 10
data:
  - {key: A, value: 3}
  - {key: B, value: 7}
`},
		{FormatTOML, `
max = 10.0

[options]
width = 400.0
mode = "donut"

[[data]]
key = "A"
value = 3.0

[[data]]
key = "B"
value = 7.0
`},
		{FormatJSON, `{
  "options": {"width": 400, "mode": "donut"},
  "max": 10,
  "data": [{"key": "A", "value": 3}, {"key": "B", "value": 7}]
}`},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			got, err := Decode([]byte(tt.input), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestDecodeCSV(t *testing.T) {
	got, err := Decode([]byte("Value,Key,note\n3,A,x\n7, B,y\n"), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, []pie.DataPoint{{Key: "A", Value: 3}, {Key: "B", Value: 7}}, got.Data)
	assert.Zero(t, got.Options)
}

func TestParseCSVErrors(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("name,value\nA,1\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ParseCSV(strings.NewReader("key,value\nA,lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("data: [unterminated"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(nil, Format("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatOf(t *testing.T) {
	for path, f := range map[string]Format{
		"a.yaml":     FormatYAML,
		"a.YML":      FormatYAML,
		"dir/a.toml": FormatTOML,
		"a.json":     FormatJSON,
		"a.csv":      FormatCSV,
	} {
		got, err := FormatOf(path)
		if assert.NoError(t, err, path) {
			assert.Equal(t, f, got, path)
		}
	}
	_, err := FormatOf("a.txt")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"data":[{"key":"A","value":1}]}`), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []pie.DataPoint{{Key: "A", Value: 1}}, doc.Data)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDocumentChanges(t *testing.T) {
	ch := want.Changes()
	require.NotNil(t, ch.Options)
	require.NotNil(t, ch.Max)
	assert.Equal(t, want.Options, *ch.Options)
	assert.Equal(t, 10.0, *ch.Max)
	assert.Equal(t, want.Data, ch.Data)
}
