// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image/color"
	"io"

	"github.com/gogpu/pie"
)

// Host is a chart surface that can serialize what was drawn on it.
//
// Hosts are NOT thread-safe. Each host should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	h, err := surface.NewSurfaceByName("image", surface.Options{Background: color.White})
//	if err != nil {
//	    return err
//	}
//	_ = chart.Setup(h, pie.Options{Mode: pie.ModeDonut})
//	_ = chart.SetData(points)
//	_, err = h.WriteTo(w)
type Host interface {
	pie.Surface
	io.WriterTo

	// Find returns the nodes of a kind tagged with key, in document order.
	Find(kind pie.NodeKind, key string) []pie.Node

	// Activate runs the activation handlers of a node.
	Activate(n pie.Node) bool
}

// Verify the built-in hosts implement Host and pie.Releaser.
var (
	_ Host         = (*SVG)(nil)
	_ Host         = (*Image)(nil)
	_ pie.Releaser = (*SVG)(nil)
	_ pie.Releaser = (*Image)(nil)
)

// Options configures a host created through the registry.
type Options struct {
	// Background fills raster output before the chart is drawn.
	// Nil leaves it transparent. Vector hosts ignore it.
	Background color.Color
}
