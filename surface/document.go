// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/pie"
)

// style is one style property of a node, kept in assignment order.
type style struct {
	name, value string
}

// node is one entry of a Document tree.
type node struct {
	id       pie.Node
	parent   pie.Node
	el       pie.Element
	viewport bool
	width    float64
	height   float64
	children []pie.Node
	styles   []style
	handlers []func()
}

// Document is an in-memory retained node tree implementing pie.Surface.
//
// Document is the shared core of the SVG and Image hosts: it records what
// the chart appends and dispatches activations to the registered handlers.
// It has no output format of its own.
//
// Document is NOT thread-safe.
type Document struct {
	next  pie.Node
	nodes map[pie.Node]*node
	roots []pie.Node
}

// Verify Document implements pie.Surface.
var _ pie.Surface = (*Document)(nil)

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{nodes: make(map[pie.Node]*node)}
}

// Clear removes every node. Handles issued before Clear become invalid.
func (d *Document) Clear() {
	d.nodes = make(map[pie.Node]*node)
	d.roots = nil
}

func (d *Document) add(parent pie.Node, n *node) pie.Node {
	if d.nodes == nil {
		d.nodes = make(map[pie.Node]*node)
	}
	d.next++
	n.id = d.next
	if p, ok := d.nodes[parent]; ok {
		n.parent = parent
		p.children = append(p.children, n.id)
	} else {
		n.parent = pie.NoNode
		d.roots = append(d.roots, n.id)
	}
	d.nodes[n.id] = n
	return n.id
}

// AppendSurface appends a top-level viewport of the given size.
func (d *Document) AppendSurface(width, height float64) pie.Node {
	return d.add(pie.NoNode, &node{viewport: true, width: width, height: height})
}

// AppendNode appends el under parent. An unknown parent appends at the
// top level.
func (d *Document) AppendNode(parent pie.Node, el pie.Element) pie.Node {
	return d.add(parent, &node{el: el})
}

// SetStyle sets a style property on n, replacing an earlier value.
func (d *Document) SetStyle(n pie.Node, name, value string) {
	nd, ok := d.nodes[n]
	if !ok {
		return
	}
	for i := range nd.styles {
		if nd.styles[i].name == name {
			nd.styles[i].value = value
			return
		}
	}
	nd.styles = append(nd.styles, style{name: name, value: value})
}

// OnActivate registers fn to run when n is activated.
func (d *Document) OnActivate(n pie.Node, fn func()) {
	if nd, ok := d.nodes[n]; ok && fn != nil {
		nd.handlers = append(nd.handlers, fn)
	}
}

// Activate runs the activation handlers of n, as a click on it would.
// It reports whether n had any handler.
func (d *Document) Activate(n pie.Node) bool {
	nd, ok := d.nodes[n]
	if !ok || len(nd.handlers) == 0 {
		return false
	}
	for _, h := range nd.handlers {
		h()
	}
	return true
}

// Len returns the number of nodes in the document.
func (d *Document) Len() int {
	return len(d.nodes)
}

// Style returns the value of a style property of n.
func (d *Document) Style(n pie.Node, name string) (string, bool) {
	if nd, ok := d.nodes[n]; ok {
		for _, s := range nd.styles {
			if s.name == name {
				return s.value, true
			}
		}
	}
	return "", false
}

// Element returns the element n was appended with.
func (d *Document) Element(n pie.Node) (pie.Element, bool) {
	nd, ok := d.nodes[n]
	if !ok {
		return pie.Element{}, false
	}
	return nd.el, true
}

// Find returns the nodes of the given kind tagged with key, in document
// order. An empty key matches every node of the kind.
func (d *Document) Find(kind pie.NodeKind, key string) []pie.Node {
	var out []pie.Node
	d.walk(func(nd *node, _ pie.Point) bool {
		if !nd.viewport && nd.el.Kind == kind && (key == "" || nd.el.Key == key) {
			out = append(out, nd.id)
		}
		return true
	})
	return out
}

// Viewport returns the size of the first viewport, if any.
func (d *Document) Viewport() (width, height float64, ok bool) {
	for _, id := range d.roots {
		if nd := d.nodes[id]; nd.viewport {
			return nd.width, nd.height, true
		}
	}
	return 0, 0, false
}

// walk visits nodes depth-first in document order. origin is the
// accumulated group translation the node is drawn at. Returning false
// from fn skips the node's children.
func (d *Document) walk(fn func(nd *node, origin pie.Point) bool) {
	var visit func(id pie.Node, origin pie.Point)
	visit = func(id pie.Node, origin pie.Point) {
		nd := d.nodes[id]
		if !fn(nd, origin) {
			return
		}
		if !nd.viewport && nd.el.Kind == pie.KindGroup {
			origin = origin.Add(nd.el.Translate)
		}
		for _, c := range nd.children {
			visit(c, origin)
		}
	}
	for _, id := range d.roots {
		visit(id, pie.Point{})
	}
}
