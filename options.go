package pie

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/jinzhu/copier"
	"golang.org/x/text/language"
)

// Mode selects between a flat pie and a donut.
type Mode string

const (
	// ModePie draws solid sectors (inner radius 0).
	ModePie Mode = "pie"

	// ModeDonut leaves a central hole of a quarter of the radius.
	ModeDonut Mode = "donut"
)

// Options are the chart dimensions and mode. Zero fields are unspecified
// and fall back to DefaultOptions when merged.
type Options struct {
	Width  float64 `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height float64 `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	Mode   Mode    `json:"mode,omitempty" yaml:"mode,omitempty" toml:"mode,omitempty"`
}

// DefaultOptions returns the options used for unspecified fields.
func DefaultOptions() Options {
	return Options{Width: 960, Height: 450, Mode: ModePie}
}

// MergeOptions returns DefaultOptions overridden by every field set in o.
func MergeOptions(o Options) (Options, error) {
	merged := DefaultOptions()
	if err := copier.CopyWithOption(&merged, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return Options{}, fmt.Errorf("pie: merge options: %w", err)
	}
	if !validDim(merged.Width) || !validDim(merged.Height) {
		return Options{}, fmt.Errorf("%w: %gx%g", ErrInvalidOptions, merged.Width, merged.Height)
	}
	return merged, nil
}

func validDim(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}

// Option configures a Chart during creation.
//
// Example:
//
//	c := pie.NewChart(
//	    pie.WithLocale(language.German),
//	    pie.WithPalette(pie.Palette{pie.Hex("#4477aa"), pie.Hex("#ee6677")}),
//	)
type Option func(*chartConfig)

type chartConfig struct {
	palette Palette
	locale  language.Tag
	compare func(a, b string) int
	logger  *slog.Logger
}

func defaultChartConfig() chartConfig {
	return chartConfig{
		palette: Category10,
		locale:  language.English,
	}
}

// WithPalette sets the categorical palette of the chart's color scale.
// An empty palette keeps Category10.
func WithPalette(p Palette) Option {
	return func(c *chartConfig) {
		if len(p) > 0 {
			c.palette = p
		}
	}
}

// WithLocale sets the language whose collation orders slice keys.
func WithLocale(tag language.Tag) Option {
	return func(c *chartConfig) {
		c.locale = tag
	}
}

// WithKeyOrder replaces locale collation with a custom key comparison.
// cmp must return a negative number when a sorts before b.
func WithKeyOrder(cmp func(a, b string) int) Option {
	return func(c *chartConfig) {
		c.compare = cmp
	}
}

// WithLogger sets a chart-specific logger instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *chartConfig) {
		c.logger = l
	}
}
