package pie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherEmitOrder(t *testing.T) {
	var d Dispatcher
	var got []string
	d.Subscribe(func(s Selection) { got = append(got, "first:"+s.Key) })
	d.Subscribe(func(s Selection) { got = append(got, "second:"+s.Key) })

	d.Emit(Selection{Key: "A", Value: 1})
	assert.Equal(t, []string{"first:A", "second:A"}, got)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	var d Dispatcher
	assert.False(t, d.HasObservers())
	assert.Equal(t, CursorDefault, d.cursor())
	assert.NotPanics(t, func() { d.Emit(Selection{Key: "A"}) })
}

func TestDispatcherUnsubscribe(t *testing.T) {
	var d Dispatcher
	calls := 0
	unsubscribe := d.Subscribe(func(Selection) { calls++ })
	assert.True(t, d.HasObservers())
	assert.Equal(t, CursorPointer, d.cursor())

	unsubscribe()
	unsubscribe()
	assert.False(t, d.HasObservers())

	d.Emit(Selection{Key: "A"})
	assert.Zero(t, calls)
}

func TestDispatcherUnsubscribeDuringEmit(t *testing.T) {
	var d Dispatcher
	calls := 0
	var unsubscribe func()
	unsubscribe = d.Subscribe(func(Selection) {
		calls++
		unsubscribe()
	})
	d.Subscribe(func(Selection) { calls++ })

	d.Emit(Selection{})
	d.Emit(Selection{})
	assert.Equal(t, 3, calls)
}

func TestDispatcherNilHandler(t *testing.T) {
	var d Dispatcher
	unsubscribe := d.Subscribe(nil)
	assert.False(t, d.HasObservers())
	assert.NotPanics(t, unsubscribe)
}

func TestDispatcherWireReadsSlice(t *testing.T) {
	var d Dispatcher
	var got []Selection
	d.Subscribe(func(s Selection) { got = append(got, s) })

	host := newFakeSurface()
	root := host.AppendSurface(10, 10)
	path := host.AppendNode(root, Element{Kind: KindPath, Key: "A"})
	label := host.AppendNode(root, Element{Kind: KindText, Key: "A"})
	d.wire(host, Slice{Key: "A", Value: 2.5}, path, label)

	host.activate(KindPath, "A")
	host.activate(KindText, "A")
	assert.Equal(t, []Selection{{Key: "A", Value: 2.5}, {Key: "A", Value: 2.5}}, got)
}
