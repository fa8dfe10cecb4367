// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pie"
	"github.com/gogpu/pie/internal/cache"
)

// maxFaces bounds the label faces an Image keeps open.
const maxFaces = 8

// faceKey identifies a cached label face.
type faceKey struct {
	size float64
	bold bool
}

// Image is a Document host rasterized to an RGBA image.
//
// Paths are filled with the x/image vector rasterizer and labels are drawn
// with the embedded Go fonts. Click maps a pixel position back to the node
// drawn there and activates it.
//
// Image is NOT thread-safe.
type Image struct {
	*Document
	background color.Color
	faces      *cache.Cache[faceKey, *labelFace]
	closeErrs  []error
}

// NewImage creates an empty raster host. A nil background leaves
// undrawn pixels transparent.
func NewImage(background color.Color) *Image {
	im := &Image{
		Document:   NewDocument(),
		background: background,
	}
	im.faces = cache.New(maxFaces, func(_ faceKey, f *labelFace) {
		if err := f.close(); err != nil {
			im.closeErrs = append(im.closeErrs, err)
		}
	})
	return im
}

func (im *Image) face(ls labelStyle) (*labelFace, error) {
	f, err := im.faces.GetOrCreate(faceKey{size: ls.size, bold: ls.bold}, func() (*labelFace, error) {
		return newLabelFace(ls)
	})
	if err != nil {
		return nil, fmt.Errorf("surface: label font: %w", err)
	}
	return f, nil
}

// Rasterize draws the document in document order and returns the result.
// The image has the size of the first viewport, rounded up; without a
// viewport it is empty.
func (im *Image) Rasterize() (*image.RGBA, error) {
	w, h, ok := im.Viewport()
	if !ok {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))))
	if dst.Bounds().Empty() {
		return dst, nil
	}
	if im.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(im.background), image.Point{}, draw.Src)
	}

	z := vector.NewRasterizer(dst.Bounds().Dx(), dst.Bounds().Dy())
	var err error
	im.walk(func(nd *node, origin pie.Point) bool {
		if err != nil {
			return false
		}
		if nd.viewport {
			return true
		}
		switch nd.el.Kind {
		case pie.KindPath:
			if nd.el.Path != nil && !nd.el.Path.IsEmpty() {
				fillPath(z, dst, nd.el.Path, origin, nd.el.Fill)
			}
		case pie.KindText:
			ls := readLabelStyle(im.Document, nd.id)
			var f *labelFace
			if f, err = im.face(ls); err != nil {
				return false
			}
			f.draw(dst, nd.el.Text, origin.Add(nd.el.Translate), ls.anchor, textColor(nd.el.Fill))
		}
		return true
	})
	return dst, err
}

// fillPath fills p translated by origin onto dst.
func fillPath(z *vector.Rasterizer, dst draw.Image, p *pie.Path, origin pie.Point, fill pie.RGBA) {
	b := dst.Bounds()
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = draw.Over

	at := func(pt pie.Point) (float32, float32) {
		return float32(pt.X + origin.X), float32(pt.Y + origin.Y)
	}
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case pie.MoveTo:
			z.MoveTo(at(e.Point))
		case pie.LineTo:
			z.LineTo(at(e.Point))
		case pie.CubicTo:
			c1x, c1y := at(e.Control1)
			c2x, c2y := at(e.Control2)
			x, y := at(e.Point)
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case pie.Close:
			z.ClosePath()
		}
	}
	z.Draw(dst, b, image.NewUniform(fill.Color()), image.Point{})
}

// textColor is the label fill; an unset fill draws black.
func textColor(fill pie.RGBA) color.Color {
	if fill == (pie.RGBA{}) {
		return color.Black
	}
	return fill.Color()
}

// EncodePNG rasterizes the document and writes it as PNG.
func (im *Image) EncodePNG(w io.Writer) error {
	img, err := im.Rasterize()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteTo writes the rasterized document as PNG.
func (im *Image) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := im.EncodePNG(cw)
	return cw.n, err
}

// HitTest returns the topmost path or text node drawn at the pixel
// position (x, y).
func (im *Image) HitTest(x, y float64) (pie.Node, bool) {
	pt := pie.Pt(x, y)
	hit := pie.NoNode
	im.walk(func(nd *node, origin pie.Point) bool {
		if nd.viewport {
			return true
		}
		switch nd.el.Kind {
		case pie.KindPath:
			if nd.el.Path != nil && nd.el.Path.Contains(pt.Sub(origin)) {
				hit = nd.id
			}
		case pie.KindText:
			ls := readLabelStyle(im.Document, nd.id)
			f, err := im.face(ls)
			if err != nil {
				return true
			}
			lo, hi := f.bounds(nd.el.Text, origin.Add(nd.el.Translate), ls.anchor)
			if pt.X >= lo.X && pt.X <= hi.X && pt.Y >= lo.Y && pt.Y <= hi.Y {
				hit = nd.id
			}
		}
		return true
	})
	return hit, hit != pie.NoNode
}

// Click activates the topmost node at (x, y). It reports whether a node
// with activation handlers was hit.
func (im *Image) Click(x, y float64) bool {
	n, ok := im.HitTest(x, y)
	if !ok {
		return false
	}
	return im.Activate(n)
}

// Release drops the document tree and closes cached faces.
func (im *Image) Release() error {
	im.Clear()
	im.faces.Clear()
	err := errors.Join(im.closeErrs...)
	im.closeErrs = nil
	return err
}
