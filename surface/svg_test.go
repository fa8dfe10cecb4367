// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/gogpu/pie"
)

func drawSVG(t *testing.T, o pie.Options, data []pie.DataPoint) (*SVG, *pie.Chart) {
	t.Helper()
	s := NewSVG()
	c := pie.NewChart()
	if err := c.Setup(s, o); err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := c.SetData(data); err != nil {
		t.Fatalf("SetData() error = %v", err)
	}
	return s, c
}

func TestSVGWriteTo(t *testing.T) {
	s, _ := drawSVG(t, pie.Options{Width: 200, Height: 100},
		[]pie.DataPoint{{Key: "A", Value: 1}, {Key: "B", Value: 1}})

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}

	out := buf.String()
	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 100">`,
		`<g transform="translate(100,50)">`,
		`<g class="arc" keyval="A">`,
		`<path d="M0,-40`,
		`fill="#1f77b4"`,
		`fill="#ff7f0e"`,
		`style="cursor: default"`,
		`style="text-anchor: middle; font-weight: bold; font-size: 14; cursor: default">A: 1</text>`,
		`<title keyval="B">B: 1</title>`,
		`</svg>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestSVGWellFormed(t *testing.T) {
	s, _ := drawSVG(t, pie.Options{Mode: pie.ModeDonut},
		[]pie.DataPoint{{Key: "<b>&", Value: 3}, {Key: "x", Value: 2}})

	dec := xml.NewDecoder(strings.NewReader(s.String()))
	paths := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "path" {
			paths++
		}
	}
	if paths != 2 {
		t.Errorf("decoded %d paths, want 2", paths)
	}
	if !strings.Contains(s.String(), "&lt;b&gt;&amp;: 3") {
		t.Error("label text not escaped")
	}
}

func TestSVGPointerCursor(t *testing.T) {
	s := NewSVG()
	c := pie.NewChart()
	c.Subscribe(func(pie.Selection) {})
	if err := c.Setup(s, pie.Options{}); err != nil {
		t.Fatal(err)
	}
	if err := c.SetData([]pie.DataPoint{{Key: "A", Value: 1}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s.String(), "cursor: pointer") {
		t.Error("subscribed chart did not draw a pointer cursor")
	}
}

func TestSVGEmptyAndRelease(t *testing.T) {
	s := NewSVG()
	if got := s.String(); got != "" {
		t.Errorf("empty document = %q, want empty", got)
	}

	s, c := drawSVG(t, pie.Options{}, []pie.DataPoint{{Key: "A", Value: 1}})
	if err := c.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if got := s.String(); got != "" {
		t.Errorf("document after Destroy = %q, want empty", got)
	}
}

func TestSVGRedrawReplaces(t *testing.T) {
	s, c := drawSVG(t, pie.Options{}, []pie.DataPoint{{Key: "A", Value: 1}})
	if err := c.SetData([]pie.DataPoint{{Key: "B", Value: 1}, {Key: "C", Value: 1}}); err != nil {
		t.Fatal(err)
	}
	out := s.String()
	if strings.Count(out, "<svg") != 1 {
		t.Errorf("redraw left %d viewports", strings.Count(out, "<svg"))
	}
	if strings.Contains(out, `keyval="A"`) {
		t.Error("redraw kept a stale slice")
	}
}
