// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides hosts that a pie.Chart draws into.
//
// A host records the retained node tree the chart appends (viewport,
// groups, paths, labels, tooltips) and turns it into an output format:
//
//   - SVG: SVG markup written with encoding/xml
//   - Image: an RGBA raster with pixel hit testing
//
// Both hosts share Document, the in-memory tree implementing pie.Surface.
// Document can also be used on its own where only the activation wiring
// matters, for example in tests.
//
// # Registry
//
// Hosts are registered by name with a priority:
//
//	surface.Register("pdf", 5, func(opts surface.Options) (surface.Host, error) {
//	    return newPDF(opts), nil
//	}, nil)
//
//	h, err := surface.NewSurfaceByName("image", surface.Options{Background: color.White})
//
// "svg" (priority 20) and "image" (priority 10) are registered at init.
//
// # Activation
//
// Hosts deliver activations to the handlers the chart registered with
// OnActivate. Activate triggers a node directly; Image.Click first finds
// the topmost path or label under a pixel:
//
//	img := surface.NewImage(color.White)
//	_ = chart.Setup(img, pie.Options{Width: 400, Height: 400})
//	_ = chart.SetData(points)
//	img.Click(200, 100) // emits the slice under the pixel
package surface
