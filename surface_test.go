package pie

// fakeNode is one node recorded by fakeSurface.
type fakeNode struct {
	id       Node
	parent   Node
	el       Element
	viewport [2]float64
	styles   map[string]string
	handlers []func()
}

// fakeSurface is an in-memory Surface that records what was drawn.
type fakeSurface struct {
	clears   int
	next     Node
	nodes    map[Node]*fakeNode
	order    []Node
	released bool
}

var _ Surface = (*fakeSurface)(nil)

func newFakeSurface() *fakeSurface {
	return &fakeSurface{nodes: make(map[Node]*fakeNode)}
}

func (f *fakeSurface) Clear() {
	f.clears++
	f.nodes = make(map[Node]*fakeNode)
	f.order = nil
}

func (f *fakeSurface) add(parent Node, el Element) *fakeNode {
	f.next++
	n := &fakeNode{id: f.next, parent: parent, el: el, styles: make(map[string]string)}
	f.nodes[n.id] = n
	f.order = append(f.order, n.id)
	return n
}

func (f *fakeSurface) AppendSurface(width, height float64) Node {
	n := f.add(NoNode, Element{Kind: KindGroup, Class: "svg"})
	n.viewport = [2]float64{width, height}
	return n.id
}

func (f *fakeSurface) AppendNode(parent Node, el Element) Node {
	return f.add(parent, el).id
}

func (f *fakeSurface) SetStyle(n Node, name, value string) {
	if fn, ok := f.nodes[n]; ok {
		fn.styles[name] = value
	}
}

func (f *fakeSurface) OnActivate(n Node, fn func()) {
	if node, ok := f.nodes[n]; ok {
		node.handlers = append(node.handlers, fn)
	}
}

func (f *fakeSurface) Release() error {
	f.released = true
	return nil
}

// find returns the recorded nodes of a kind, in append order.
func (f *fakeSurface) find(kind NodeKind) []*fakeNode {
	var out []*fakeNode
	for _, id := range f.order {
		n := f.nodes[id]
		if n.el.Kind == kind && n.el.Class != "svg" {
			out = append(out, n)
		}
	}
	return out
}

// activate runs the handlers of the first node of kind tagged with key.
func (f *fakeSurface) activate(kind NodeKind, key string) bool {
	for _, n := range f.find(kind) {
		if n.el.Key == key {
			for _, h := range n.handlers {
				h()
			}
			return true
		}
	}
	return false
}
