package pie

// Selection is the event emitted when a slice or its label is activated.
type Selection struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Handler receives selections.
type Handler func(Selection)

// Dispatcher is a registry of selection subscribers.
//
// Dispatcher is NOT safe for concurrent use; like the chart that owns it,
// it is driven from a single goroutine.
type Dispatcher struct {
	next     int
	handlers map[int]Handler
	order    []int
}

// Subscribe registers h and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (d *Dispatcher) Subscribe(h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	if d.handlers == nil {
		d.handlers = make(map[int]Handler)
	}
	id := d.next
	d.next++
	d.handlers[id] = h
	d.order = append(d.order, id)
	return func() {
		if _, ok := d.handlers[id]; !ok {
			return
		}
		delete(d.handlers, id)
		for i, v := range d.order {
			if v == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
}

// HasObservers reports whether at least one subscriber is registered.
func (d *Dispatcher) HasObservers() bool {
	return len(d.handlers) > 0
}

// Emit delivers sel to every subscriber in subscription order.
// With no subscribers it does nothing.
func (d *Dispatcher) Emit(sel Selection) {
	for _, id := range append([]int(nil), d.order...) {
		if h, ok := d.handlers[id]; ok {
			h(sel)
		}
	}
}

// Cursor values used for interactive affordance.
const (
	CursorPointer = "pointer"
	CursorDefault = "default"
)

// cursor returns the cursor style matching the current subscriber count.
func (d *Dispatcher) cursor() string {
	if d.HasObservers() {
		return CursorPointer
	}
	return CursorDefault
}

// wire attaches activation handlers to the drawn nodes of one slice. The
// emitted selection is read from the slice itself.
func (d *Dispatcher) wire(host Surface, s Slice, nodes ...Node) {
	sel := Selection{Key: s.Key, Value: s.Value}
	for _, n := range nodes {
		host.OnActivate(n, func() { d.Emit(sel) })
	}
}
