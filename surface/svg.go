// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/gogpu/pie"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG is a Document host serialized as an SVG document.
//
// Example:
//
//	doc := surface.NewSVG()
//	_ = chart.Setup(doc, pie.Options{})
//	_ = chart.SetData(points)
//	_, _ = doc.WriteTo(os.Stdout)
type SVG struct {
	*Document
}

// NewSVG creates an empty SVG host.
func NewSVG() *SVG {
	return &SVG{Document: NewDocument()}
}

// Release drops the document tree.
func (s *SVG) Release() error {
	s.Clear()
	return nil
}

// WriteTo writes the document as SVG markup. Each viewport becomes an
// <svg> element; content outside a viewport is written as-is.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)

	var encodeErr error
	var encode func(id pie.Node)
	encode = func(id pie.Node) {
		if encodeErr != nil {
			return
		}
		nd := s.nodes[id]
		start := svgStart(nd)
		if encodeErr = enc.EncodeToken(start); encodeErr != nil {
			return
		}
		if !nd.viewport && (nd.el.Kind == pie.KindText || nd.el.Kind == pie.KindTitle) {
			if encodeErr = enc.EncodeToken(xml.CharData(nd.el.Text)); encodeErr != nil {
				return
			}
		}
		for _, c := range nd.children {
			encode(c)
		}
		if encodeErr == nil {
			encodeErr = enc.EncodeToken(start.End())
		}
	}
	for _, id := range s.roots {
		encode(id)
	}
	if encodeErr != nil {
		return cw.n, encodeErr
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// String returns the SVG markup.
func (s *SVG) String() string {
	var buf bytes.Buffer
	_, _ = s.WriteTo(&buf)
	return buf.String()
}

func svgStart(nd *node) xml.StartElement {
	attr := func(name, value string) xml.Attr {
		return xml.Attr{Name: xml.Name{Local: name}, Value: value}
	}
	if nd.viewport {
		return xml.StartElement{
			Name: xml.Name{Local: "svg"},
			Attr: []xml.Attr{
				attr("xmlns", svgNamespace),
				attr("viewBox", "0 0 "+pie.FormatNumber(nd.width)+" "+pie.FormatNumber(nd.height)),
			},
		}
	}

	el := nd.el
	start := xml.StartElement{Name: xml.Name{Local: el.Kind.String()}}
	switch el.Kind {
	case pie.KindGroup:
		if el.Translate != (pie.Point{}) {
			start.Attr = append(start.Attr, attr("transform", translate(el.Translate)))
		}
	case pie.KindPath:
		d := ""
		if el.Path != nil {
			d = el.Path.String()
		}
		start.Attr = append(start.Attr, attr("d", d), attr("fill", el.Fill.Hex()))
	case pie.KindText:
		start.Attr = append(start.Attr, attr("transform", translate(el.Translate)))
	}
	if el.Class != "" {
		start.Attr = append(start.Attr, attr("class", el.Class))
	}
	if el.Key != "" {
		start.Attr = append(start.Attr, attr("keyval", el.Key))
	}
	if len(nd.styles) > 0 {
		parts := make([]string, len(nd.styles))
		for i, st := range nd.styles {
			parts[i] = st.name + ": " + st.value
		}
		start.Attr = append(start.Attr, attr("style", strings.Join(parts, "; ")))
	}
	return start
}

func translate(p pie.Point) string {
	return "translate(" + pie.FormatNumber(p.X) + "," + pie.FormatNumber(p.Y) + ")"
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
