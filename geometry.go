package pie

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Slice is one angular sector of the chart, derived from a DataPoint.
// Angles are in radians, starting at 12 o'clock and growing clockwise.
type Slice struct {
	Key        string
	Value      float64
	Index      int // position in angular order
	StartAngle float64
	EndAngle   float64
	PadAngle   float64
}

// Span returns the angular width of the slice.
func (s Slice) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// KeyCollator returns a locale-aware string comparison for tag.
// The returned function is not safe for concurrent use.
func KeyCollator(tag language.Tag) func(a, b string) int {
	c := collate.New(tag)
	return c.CompareString
}

// Layout orders points by key and assigns each a span proportional to its
// share of the total, covering 2π in all.
//
// Keys are compared with cmp (byte order when nil); keys that cmp considers
// equal are ordered byte-wise so the result does not depend on input order.
// When the values sum to zero every slice gets a zero span.
func Layout(points []DataPoint, cmp func(a, b string) int) []Slice {
	sorted := append([]DataPoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Key, sorted[j].Key
		if cmp != nil {
			if c := cmp(a, b); c != 0 {
				return c < 0
			}
		}
		return strings.Compare(a, b) < 0
	})

	var sum float64
	for _, p := range sorted {
		sum += p.Value
	}
	var k float64
	if sum > 0 {
		k = 2 * math.Pi / sum
	}

	slices := make([]Slice, len(sorted))
	angle := 0.0
	for i, p := range sorted {
		end := angle + p.Value*k
		slices[i] = Slice{
			Key:        p.Key,
			Value:      p.Value,
			Index:      i,
			StartAngle: angle,
			EndAngle:   end,
		}
		angle = end
	}
	return slices
}

// Radii is the inner/outer radius pair of the chart's arcs.
type Radii struct {
	Inner float64
	Outer float64
}

// ComputeRadii derives the arc radii from merged options: the outer radius
// keeps a 10px margin inside the half of the smaller dimension, and donut
// mode opens a hole of a quarter of that half.
func ComputeRadii(o Options) Radii {
	radius := math.Min(o.Width, o.Height) / 2
	r := Radii{Outer: math.Max(radius-10, 0)}
	if o.Mode == ModeDonut {
		r.Inner = math.Min(radius/4, r.Outer)
	}
	return r
}

// ArcPath returns the annular-sector path between r.Inner and r.Outer
// spanning [start, end], centered on the origin. A zero span or zero outer
// radius yields an empty path.
func ArcPath(r Radii, start, end float64) *Path {
	p := NewPath()
	if !(end > start) || r.Outer <= 0 {
		return p
	}
	p.Arc(0, 0, r.Outer, start, end)
	if r.Inner > 0 {
		p.Arc(0, 0, r.Inner, end, start)
	} else {
		p.LineTo(0, 0)
	}
	p.Close()
	return p
}

// Centroid returns the midpoint of the annular sector: halfway between the
// radii on the bisector of the angles.
func Centroid(inner, outer, start, end float64) Point {
	return Polar((inner+outer)/2, (start+end)/2)
}

// LabelAnchor returns where a slice's label is placed. Labels sit at the
// centroid of the solid sector even in donut mode.
func LabelAnchor(r Radii, s Slice) Point {
	return Centroid(0, r.Outer, s.StartAngle, s.EndAngle)
}
