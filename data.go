package pie

import "math"

// DataPoint is one labeled value of the chart.
type DataPoint struct {
	Key   string  `json:"key" yaml:"key" toml:"key"`
	Value float64 `json:"value" yaml:"value" toml:"value"`
}

// hasData reports whether data is present and its first element is set.
// An absent update must not blank an already rendered chart.
func hasData(data []DataPoint) bool {
	return len(data) > 0 && data[0] != (DataPoint{})
}

// validate checks that every value is finite and non-negative.
func validate(data []DataPoint) error {
	for i, d := range data {
		if math.IsNaN(d.Value) || math.IsInf(d.Value, 0) || d.Value < 0 {
			return &ValueError{Index: i, Key: d.Key, Value: d.Value}
		}
	}
	return nil
}

// dedupe collapses duplicate keys with last-seen-wins semantics: the value
// of a later point replaces the value of an earlier one with the same key.
// It returns the collapsed points and the keys that were duplicated.
func dedupe(data []DataPoint) ([]DataPoint, []string) {
	pos := make(map[string]int, len(data))
	out := make([]DataPoint, 0, len(data))
	var dups []string
	for _, d := range data {
		if i, ok := pos[d.Key]; ok {
			out[i].Value = d.Value
			dups = append(dups, d.Key)
			continue
		}
		pos[d.Key] = len(out)
		out = append(out, d)
	}
	return out, dups
}
