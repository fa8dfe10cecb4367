// Package chartfile loads chart documents: data points plus optional
// options and max hint, stored as YAML, TOML, JSON or CSV.
package chartfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/pie"
)

// Format is a chart document encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

// Errors.
var (
	// ErrUnknownFormat is returned for a file extension or format name that
	// is not one of the supported formats.
	ErrUnknownFormat = errors.New("chartfile: unknown format")

	// ErrMissingColumn is returned when a CSV header has no key or value
	// column.
	ErrMissingColumn = errors.New("chartfile: missing column")
)

// Document is one chart document.
//
// YAML example:
//
//	options:
//	  mode: donut
//	max: 10
//	data:
//	  - {key: A, value: 3}
//	  - {key: B, value: 7}
type Document struct {
	Options pie.Options     `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty"`
	Max     float64         `json:"max,omitempty" yaml:"max,omitempty" toml:"max,omitempty"`
	Data    []pie.DataPoint `json:"data" yaml:"data" toml:"data"`
}

// Changes returns the document as a single chart change notification.
func (d *Document) Changes() pie.Changes {
	opts, hint := d.Options, d.Max
	return pie.Changes{Data: d.Data, Options: &opts, Max: &hint}
}

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads the document at path, choosing the format by extension.
func Load(path string) (*Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	doc, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Decode parses data in the given format.
func Decode(data []byte, f Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, doc)
	case FormatTOML:
		err = toml.Unmarshal(data, doc)
	case FormatJSON:
		err = json.Unmarshal(data, doc)
	case FormatCSV:
		doc.Data, err = ParseCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("chartfile: decode %s: %w", f, err)
	}
	return doc, nil
}

// ParseCSV reads data points from CSV with a header row. The "key" and
// "value" columns are located by name, case-insensitively; other columns
// are skipped.
func ParseCSV(r io.Reader) ([]pie.DataPoint, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	keyCol, valueCol := -1, -1
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "key":
			keyCol = i
		case "value":
			valueCol = i
		}
	}
	if keyCol < 0 {
		return nil, fmt.Errorf("%w: key", ErrMissingColumn)
	}
	if valueCol < 0 {
		return nil, fmt.Errorf("%w: value", ErrMissingColumn)
	}

	var points []pie.DataPoint
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[valueCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: value %q: %w", line, row[valueCol], err)
		}
		points = append(points, pie.DataPoint{Key: row[keyCol], Value: v})
	}
	return points, nil
}
