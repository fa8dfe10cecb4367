// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/pie"
	"github.com/gogpu/pie/internal/cache"
)

// maxWidths bounds the shaped label widths kept per face.
const maxWidths = 256

// defaultFontSize is used when a text node has no usable font-size.
const defaultFontSize = 16

// fontSource is an embedded TrueType font parsed on first use, once for
// rasterization and once for shaping.
type fontSource struct {
	data []byte
	once sync.Once
	ot   *opentype.Font
	gt   *gotext.Font
	err  error
}

func (s *fontSource) load() error {
	s.once.Do(func() {
		if s.ot, s.err = opentype.Parse(s.data); s.err != nil {
			return
		}
		// ParseTTF returns a *Face embedding the read-only *Font.
		face, err := gotext.ParseTTF(bytes.NewReader(s.data))
		if err != nil {
			s.err = err
			return
		}
		s.gt = face.Font
	})
	return s.err
}

var (
	regularSource = &fontSource{data: goregular.TTF}
	boldSource    = &fontSource{data: gobold.TTF}
)

// fontsAvailable reports whether the label fonts parse.
func fontsAvailable() bool {
	return regularSource.load() == nil && boldSource.load() == nil
}

// labelStyle is the text styling read from a node's style properties.
type labelStyle struct {
	size   float64
	bold   bool
	anchor string
}

func readLabelStyle(d *Document, n pie.Node) labelStyle {
	ls := labelStyle{size: defaultFontSize, anchor: "start"}
	if v, ok := d.Style(n, "font-size"); ok {
		v = strings.TrimSuffix(strings.TrimSpace(v), "px")
		if size, err := strconv.ParseFloat(v, 64); err == nil && size > 0 {
			ls.size = size
		}
	}
	if v, ok := d.Style(n, "font-weight"); ok {
		switch v {
		case "bold", "bolder":
			ls.bold = true
		default:
			w, err := strconv.Atoi(v)
			ls.bold = err == nil && w >= 600
		}
	}
	if v, ok := d.Style(n, "text-anchor"); ok && (v == "middle" || v == "end") {
		ls.anchor = v
	}
	return ls
}

// labelFace measures and draws label text at one size and weight.
//
// Width comes from Harfbuzz shaping so kerning is accounted for;
// glyphs are drawn with the x/image opentype rasterizer.
type labelFace struct {
	size   float64
	face   font.Face
	gt     *gotext.Font
	shaper shaping.HarfbuzzShaper
	widths *cache.Cache[string, float64]
}

func newLabelFace(ls labelStyle) (*labelFace, error) {
	src := regularSource
	if ls.bold {
		src = boldSource
	}
	if err := src.load(); err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(src.ot, &opentype.FaceOptions{
		Size:    ls.size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, err
	}
	return &labelFace{
		size:   ls.size,
		face:   face,
		gt:     src.gt,
		widths: cache.New[string, float64](maxWidths, nil),
	}, nil
}

// advance returns the shaped width of s in pixels.
func (f *labelFace) advance(s string) float64 {
	w, _ := f.widths.GetOrCreate(s, func() (float64, error) {
		return f.shape(s), nil
	})
	return w
}

func (f *labelFace) shape(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(f.gt),
		Size:      fixed.Int26_6(f.size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})
	return float64(out.Advance) / 64
}

// bounds returns the box covered by s drawn with its baseline anchored
// at origin.
func (f *labelFace) bounds(s string, origin pie.Point, anchor string) (minPt, maxPt pie.Point) {
	w := f.advance(s)
	m := f.face.Metrics()
	x := origin.X + anchorOffset(anchor, w)
	return pie.Pt(x, origin.Y-float64(m.Ascent)/64), pie.Pt(x+w, origin.Y+float64(m.Descent)/64)
}

// draw renders s with its baseline anchored at origin.
func (f *labelFace) draw(dst draw.Image, s string, origin pie.Point, anchor string, c color.Color) {
	x := origin.X + anchorOffset(anchor, f.advance(s))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(origin.Y * 64)},
	}
	d.DrawString(s)
}

func (f *labelFace) close() error {
	return f.face.Close()
}

func anchorOffset(anchor string, width float64) float64 {
	switch anchor {
	case "middle":
		return -width / 2
	case "end":
		return -width
	default:
		return 0
	}
}

// detectScript returns the script of the first letter in runes.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return language.LookupScript(r)
		}
	}
	return language.Latin
}
