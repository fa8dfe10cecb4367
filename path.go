package pie

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path. Paths are built by the geometry engine and
// handed to surfaces read-only.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point. On an empty path it behaves as MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.elements) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if len(p.elements) == 0 {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// maxArcStep is the largest sweep approximated by one cubic segment.
const maxArcStep = math.Pi / 2

// Arc adds a circular arc around (cx, cy) from chart angle a0 to a1.
// The sweep is signed: a1 > a0 runs clockwise on screen, a1 < a0
// counter-clockwise. The arc start is joined to the current point with a
// line, or becomes the start of a new subpath on an empty path.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) {
	c := Pt(cx, cy)
	start := Polar(r, a0).Add(c)
	if len(p.elements) == 0 {
		p.MoveTo(start.X, start.Y)
	} else if p.current != start {
		p.LineTo(start.X, start.Y)
	}

	sweep := a1 - a0
	if sweep == 0 || r == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / maxArcStep))
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		s := a0 + float64(i)*step
		p.arcSegment(c, r, s, s+step)
	}
}

// arcSegment adds a single arc segment (at most 90 degrees) as a cubic.
// Angles are chart angles; they are shifted by -π/2 into screen angles.
func (p *Path) arcSegment(c Point, r, a1, a2 float64) {
	t1, t2 := a1-math.Pi/2, a2-math.Pi/2
	d := t2 - t1
	alpha := math.Sin(d) * (math.Sqrt(4+3*math.Tan(d/2)*math.Tan(d/2)) - 1) / 3

	cos1, sin1 := math.Cos(t1), math.Sin(t1)
	cos2, sin2 := math.Cos(t2), math.Sin(t2)

	x1 := c.X + r*cos1
	y1 := c.Y + r*sin1
	x2 := c.X + r*cos2
	y2 := c.Y + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

// flattenSteps is the number of line segments used per cubic when
// flattening.
const flattenSteps = 16

// Flatten converts the path into closed polygons, one per subpath.
func (p *Path) Flatten() [][]Point {
	var (
		polys [][]Point
		cur   []Point
		last  Point
	)
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flush()
			cur = append(cur, e.Point)
			last = e.Point
		case LineTo:
			cur = append(cur, e.Point)
			last = e.Point
		case CubicTo:
			for i := 1; i <= flattenSteps; i++ {
				cur = append(cur, cubicAt(last, e.Control1, e.Control2, e.Point, float64(i)/flattenSteps))
			}
			last = e.Point
		case Close:
			flush()
		}
	}
	flush()
	return polys
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// Contains reports whether pt lies inside the path under the non-zero
// winding rule.
func (p *Path) Contains(pt Point) bool {
	winding := 0
	for _, poly := range p.Flatten() {
		for i := range poly {
			a, b := poly[i], poly[(i+1)%len(poly)]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && b.Sub(a).X*(pt.Y-a.Y)-(pt.X-a.X)*b.Sub(a).Y > 0 {
					winding++
				}
			} else if b.Y <= pt.Y && b.Sub(a).X*(pt.Y-a.Y)-(pt.X-a.X)*b.Sub(a).Y < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// String encodes the path as SVG path data, e.g. "M0,-215C...Z".
func (p *Path) String() string {
	var sb strings.Builder
	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			sb.WriteByte('M')
			writePoints(&sb, e.Point)
		case LineTo:
			sb.WriteByte('L')
			writePoints(&sb, e.Point)
		case CubicTo:
			sb.WriteByte('C')
			writePoints(&sb, e.Control1, e.Control2, e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoints(sb *strings.Builder, pts ...Point) {
	for i, pt := range pts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(FormatNumber(round3(pt.X)))
		sb.WriteByte(',')
		sb.WriteString(FormatNumber(round3(pt.Y)))
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// FormatNumber formats v in its shortest decimal form ("3", "1.5").
// Negative zero is printed as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
