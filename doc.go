// Package pie lays out and draws pie and donut charts.
//
// # Overview
//
// Given labeled values, pie orders them by key, turns them into angular
// slices, builds arc, label and tooltip geometry for a flat pie or a donut,
// assigns every key a stable color and reports clicks on slices to
// subscribers. Drawing goes through the [Surface] interface, so the package
// never depends on a concrete drawing library.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/pie"
//	    "github.com/gogpu/pie/surface"
//	)
//
//	doc := surface.NewSVG()
//	c := pie.NewChart()
//	if err := c.Setup(doc, pie.Options{Mode: pie.ModeDonut}); err != nil {
//	    return err
//	}
//	c.Subscribe(func(s pie.Selection) { log.Println(s.Key, s.Value) })
//	if err := c.SetData([]pie.DataPoint{{Key: "A", Value: 1}, {Key: "B", Value: 3}}); err != nil {
//	    return err
//	}
//	doc.WriteTo(os.Stdout)
//
// # Components
//
//   - Geometry: [Layout], [ComputeRadii], [ArcPath], [Centroid]
//   - Colors: [Palette], [OrdinalScale], [Category10]
//   - Events: [Dispatcher], [Selection]
//   - Controller: [Chart]
//
// # Coordinate System
//
// Angles are in radians, 0 at 12 o'clock, increasing clockwise. Arc paths
// are centered on the origin; the chart translates them to the middle of a
// width x height viewport with the y axis pointing down.
//
// # Ordering
//
// Slices are ordered by key using locale-aware collation from
// golang.org/x/text/collate (English unless [WithLocale] says otherwise).
// Re-rendering the same data in any input order yields the same angles.
package pie
