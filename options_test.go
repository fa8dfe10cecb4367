package pie

import (
	"errors"
	"math"
	"testing"
)

func TestMergeOptions(t *testing.T) {
	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"empty", Options{}, Options{Width: 960, Height: 450, Mode: ModePie}},
		{"mode only", Options{Mode: ModeDonut}, Options{Width: 960, Height: 450, Mode: ModeDonut}},
		{"width only", Options{Width: 300}, Options{Width: 300, Height: 450, Mode: ModePie}},
		{"all", Options{Width: 100, Height: 200, Mode: ModeDonut}, Options{Width: 100, Height: 200, Mode: ModeDonut}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MergeOptions(tt.in)
			if err != nil {
				t.Fatalf("MergeOptions() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("MergeOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeOptionsInvalid(t *testing.T) {
	for _, in := range []Options{
		{Width: -1},
		{Height: math.Inf(1)},
		{Width: math.NaN()},
	} {
		if _, err := MergeOptions(in); !errors.Is(err, ErrInvalidOptions) {
			t.Errorf("MergeOptions(%+v) error = %v, want ErrInvalidOptions", in, err)
		}
	}
}

func TestMergeOptionsDoesNotMutateDefaults(t *testing.T) {
	if _, err := MergeOptions(Options{Width: 1}); err != nil {
		t.Fatal(err)
	}
	if DefaultOptions().Width != 960 {
		t.Error("DefaultOptions changed after merge")
	}
}

func TestChartOptions(t *testing.T) {
	cfg := defaultChartConfig()
	WithPalette(nil)(&cfg)
	if len(cfg.palette) != len(Category10) {
		t.Error("WithPalette(nil) replaced the default palette")
	}
	WithPalette(Palette{Hex("#abc")})(&cfg)
	if len(cfg.palette) != 1 {
		t.Errorf("WithPalette did not apply: %d colors", len(cfg.palette))
	}
	WithKeyOrder(func(a, b string) int { return 0 })(&cfg)
	if cfg.compare == nil {
		t.Error("WithKeyOrder did not apply")
	}
}
