package pie

// Palette is a finite, ordered list of categorical colors.
type Palette []RGBA

// Category10 is the ten-color categorical palette used by default.
var Category10 = Palette{
	Hex("#1f77b4"),
	Hex("#ff7f0e"),
	Hex("#2ca02c"),
	Hex("#d62728"),
	Hex("#9467bd"),
	Hex("#8c564b"),
	Hex("#e377c2"),
	Hex("#7f7f7f"),
	Hex("#bcbd22"),
	Hex("#17becf"),
}

// OrdinalScale maps category keys to palette colors in first-seen order.
//
// The first distinct key gets palette[0], the second palette[1], and so on,
// cycling when the palette is exhausted. Assignments are never forgotten, so
// a key that leaves the data and comes back keeps its color. The zero value
// is not usable; create scales with NewOrdinalScale.
//
// OrdinalScale is NOT safe for concurrent use.
type OrdinalScale struct {
	palette Palette
	index   map[string]int
	keys    []string
}

// NewOrdinalScale creates a scale over the given palette.
// An empty palette falls back to Category10.
func NewOrdinalScale(p Palette) *OrdinalScale {
	if len(p) == 0 {
		p = Category10
	}
	return &OrdinalScale{
		palette: append(Palette(nil), p...),
		index:   make(map[string]int),
	}
}

// Color returns the color assigned to key, assigning the next palette
// entry if the key has not been seen before.
func (s *OrdinalScale) Color(key string) RGBA {
	i, ok := s.index[key]
	if !ok {
		i = len(s.keys)
		s.index[key] = i
		s.keys = append(s.keys, key)
	}
	return s.palette[i%len(s.palette)]
}

// Lookup returns the color of an already seen key without assigning.
func (s *OrdinalScale) Lookup(key string) (RGBA, bool) {
	i, ok := s.index[key]
	if !ok {
		return RGBA{}, false
	}
	return s.palette[i%len(s.palette)], true
}

// Keys returns the seen keys in first-seen order.
func (s *OrdinalScale) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Len returns the number of distinct keys seen.
func (s *OrdinalScale) Len() int {
	return len(s.keys)
}

// Reset forgets every assignment.
func (s *OrdinalScale) Reset() {
	s.index = make(map[string]int)
	s.keys = nil
}
