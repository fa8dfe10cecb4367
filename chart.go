package pie

import (
	"fmt"
	"log/slog"
)

// State is the lifecycle state of a Chart.
type State uint8

const (
	// StateUninitialized is the state of a new chart before Setup.
	StateUninitialized State = iota

	// StateIdle waits for the next change notification.
	StateIdle

	// StateRendering is held for the duration of one render pass.
	StateRendering

	// StateDestroyed is terminal.
	StateDestroyed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Chart is a pie or donut chart bound to one host surface.
//
// Every change of data, options or max triggers a render pass that clears
// the host and redraws from scratch. The color table is the only state kept
// across passes: a key keeps its color for the lifetime of the chart.
//
// Chart is NOT safe for concurrent use. Change notifications must arrive
// serially, and each pass runs to completion before the setter returns.
//
// Example:
//
//	c := pie.NewChart()
//	_ = c.Setup(host, pie.Options{Mode: pie.ModeDonut})
//	c.Subscribe(func(s pie.Selection) { fmt.Println(s.Key, s.Value) })
//	_ = c.SetData([]pie.DataPoint{{Key: "A", Value: 1}, {Key: "B", Value: 3}})
type Chart struct {
	cfg     chartConfig
	compare func(a, b string) int

	state   State
	host    Surface
	options Options // as given; merged on every pass
	merged  Options
	data    []DataPoint
	max     float64

	scale  *OrdinalScale
	events Dispatcher
	slices []Slice
}

// NewChart creates an uninitialized chart.
func NewChart(opts ...Option) *Chart {
	cfg := defaultChartConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cmp := cfg.compare
	if cmp == nil {
		cmp = KeyCollator(cfg.locale)
	}
	return &Chart{
		cfg:     cfg,
		compare: cmp,
		merged:  DefaultOptions(),
		scale:   NewOrdinalScale(cfg.palette),
	}
}

func (c *Chart) logger() *slog.Logger {
	if c.cfg.logger != nil {
		return c.cfg.logger
	}
	return Logger()
}

// Setup binds the chart to its host surface and merges options over the
// defaults. Nothing is drawn until the next change notification.
func (c *Chart) Setup(host Surface, options Options) error {
	switch c.state {
	case StateDestroyed:
		return ErrDestroyed
	case StateUninitialized:
	default:
		return ErrAlreadySetUp
	}
	if host == nil {
		return ErrNoSurface
	}
	merged, err := MergeOptions(options)
	if err != nil {
		return err
	}
	c.host = host
	c.options = options
	c.merged = merged
	c.state = StateIdle
	c.logger().Info("pie: chart ready",
		"width", merged.Width, "height", merged.Height, "mode", merged.Mode)
	return nil
}

// Changes carries the inputs of one change notification. Nil fields are
// left as they are.
type Changes struct {
	Data    []DataPoint
	Options *Options
	Max     *float64
}

// Update applies every field of ch and runs a single render pass.
func (c *Chart) Update(ch Changes) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	if ch.Data != nil {
		c.data = ch.Data
	}
	if ch.Options != nil {
		c.options = *ch.Options
	}
	if ch.Max != nil {
		c.max = *ch.Max
	}
	return c.changed()
}

// SetData replaces the data and re-renders.
func (c *Chart) SetData(data []DataPoint) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	c.data = data
	return c.changed()
}

// SetOptions replaces the (partial) options and re-renders.
func (c *Chart) SetOptions(options Options) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	c.options = options
	return c.changed()
}

// SetMax sets the upper-bound hint for value scaling and re-renders. The
// hint is kept for consumers; layout does not use it.
func (c *Chart) SetMax(hint float64) error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	c.max = hint
	return c.changed()
}

// Render runs a render pass with the current inputs.
func (c *Chart) Render() error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	return c.changed()
}

// changed handles one change notification.
func (c *Chart) changed() error {
	if c.state != StateIdle {
		c.logger().Debug("pie: change stored, chart not set up")
		return nil
	}
	if !hasData(c.data) {
		c.logger().Debug("pie: render skipped, no data")
		return nil
	}
	if err := validate(c.data); err != nil {
		return err
	}
	merged, err := MergeOptions(c.options)
	if err != nil {
		return err
	}
	points, dups := dedupe(c.data)
	if len(dups) > 0 {
		c.logger().Warn("pie: duplicate keys, last value wins", "keys", dups)
	}

	c.state = StateRendering
	defer func() { c.state = StateIdle }()

	c.host.Clear()
	c.merged = merged
	radii := ComputeRadii(merged)

	slices := Layout(points, c.compare)

	colors := make([]RGBA, len(slices))
	for i, s := range slices {
		colors[i] = c.scale.Color(s.Key)
	}

	nodes := draw(c.host, merged, slices, radii, colors, c.events.cursor())

	for _, n := range nodes {
		c.events.wire(c.host, n.slice, n.path, n.label)
	}

	c.slices = slices
	c.logger().Debug("pie: chart rendered",
		"slices", len(slices), "mode", merged.Mode,
		"inner", radii.Inner, "outer", radii.Outer,
		"interactive", c.events.HasObservers())
	return nil
}

// Subscribe registers h for selection events and returns a function that
// removes it. Cursor affordance follows the subscriber count as of the
// last render pass.
func (c *Chart) Subscribe(h Handler) (unsubscribe func()) {
	return c.events.Subscribe(h)
}

// HasObservers reports whether a selection subscriber is registered.
func (c *Chart) HasObservers() bool {
	return c.events.HasObservers()
}

// Destroy releases the host surface and drops the color table.
func (c *Chart) Destroy() error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	var err error
	if r, ok := c.host.(Releaser); ok {
		if rerr := r.Release(); rerr != nil {
			err = fmt.Errorf("pie: release surface: %w", rerr)
		}
	}
	c.host = nil
	c.scale.Reset()
	c.events = Dispatcher{}
	c.slices = nil
	c.data = nil
	c.state = StateDestroyed
	c.logger().Info("pie: chart destroyed")
	return err
}

// State returns the lifecycle state.
func (c *Chart) State() State {
	return c.state
}

// Options returns the options of the last setup or render pass, merged
// over the defaults.
func (c *Chart) Options() Options {
	return c.merged
}

// Max returns the value-scaling hint.
func (c *Chart) Max() float64 {
	return c.max
}

// Slices returns the layout of the last render pass.
func (c *Chart) Slices() []Slice {
	return append([]Slice(nil), c.slices...)
}

// Color returns the color assigned to key, if it has been rendered.
func (c *Chart) Color(key string) (RGBA, bool) {
	return c.scale.Lookup(key)
}
