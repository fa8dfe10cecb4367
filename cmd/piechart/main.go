// Command piechart renders a pie or donut chart to SVG or PNG.
//
// Data comes from a chart document (YAML, TOML, JSON or CSV) or from a SQL
// query:
//
//	piechart -in sales.yaml -out sales.svg
//	piechart -in sales.csv -format image -mode donut -out sales.png
//	piechart -db sqlite -dsn shop.db -query "SELECT region, SUM(total) FROM orders GROUP BY region"
//
// With -watch the chart is redrawn whenever the input document changes.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"

	"github.com/gogpu/pie"
	"github.com/gogpu/pie/internal/chartfile"
	"github.com/gogpu/pie/internal/sqlsource"
	"github.com/gogpu/pie/internal/watch"
	"github.com/gogpu/pie/surface"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "piechart: %v\n", err)
		os.Exit(1)
	}
}

// config holds the parsed command line.
type config struct {
	in       string
	db       string
	dsn      string
	query    string
	format   string
	out      string
	width    float64
	height   float64
	mode     string
	locale   string
	watch    bool
	activate string
	verbose  bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("piechart", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "", "chart document (.yaml, .yml, .toml, .json or .csv)")
	fs.StringVar(&cfg.db, "db", "", "database driver: sqlite or pgx")
	fs.StringVar(&cfg.dsn, "dsn", "", "database DSN (with -db)")
	fs.StringVar(&cfg.query, "query", "", "query returning key and value columns (with -db)")
	fs.StringVar(&cfg.format, "format", "svg", "output host: svg or image (PNG)")
	fs.StringVar(&cfg.out, "out", "-", `output file, "-" for stdout`)
	fs.Float64Var(&cfg.width, "width", 0, "chart width (overrides the document)")
	fs.Float64Var(&cfg.height, "height", 0, "chart height (overrides the document)")
	fs.StringVar(&cfg.mode, "mode", "", "pie or donut (overrides the document)")
	fs.StringVar(&cfg.locale, "locale", "en", "BCP 47 tag used to order keys")
	fs.BoolVar(&cfg.watch, "watch", false, "redraw when the -in document changes")
	fs.StringVar(&cfg.activate, "activate", "", "activate the slice with this key and print the selection")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch {
	case cfg.in == "" && cfg.db == "":
		return cfg, errors.New("one of -in or -db is required")
	case cfg.in != "" && cfg.db != "":
		return cfg, errors.New("-in and -db are exclusive")
	case cfg.watch && cfg.in == "":
		return cfg, errors.New("-watch needs -in")
	}
	switch pie.Mode(cfg.mode) {
	case "", pie.ModePie, pie.ModeDonut:
	default:
		return cfg, fmt.Errorf("unknown mode %q", cfg.mode)
	}
	return cfg, nil
}

// app is one chart bound to its host and sources.
type app struct {
	cfg    config
	log    *slog.Logger
	chart  *pie.Chart
	host   surface.Host
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	pie.SetLogger(logger)
	defer pie.SetLogger(nil)

	tag, err := language.Parse(cfg.locale)
	if err != nil {
		return fmt.Errorf("locale: %w", err)
	}

	var hostOpts surface.Options
	if cfg.format == "image" {
		hostOpts.Background = color.White
	}
	host, err := surface.NewSurfaceByName(cfg.format, hostOpts)
	if err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		log:    logger,
		chart:  pie.NewChart(pie.WithLocale(tag)),
		host:   host,
		stdout: stdout,
		stderr: stderr,
	}
	defer func() {
		if err := a.chart.Destroy(); err != nil {
			logger.Warn("piechart: destroy", "err", err)
		}
	}()

	if cfg.activate != "" {
		enc := json.NewEncoder(stderr)
		a.chart.Subscribe(func(s pie.Selection) {
			if err := enc.Encode(s); err != nil {
				logger.Warn("piechart: write selection", "err", err)
			}
		})
	}
	if err := a.chart.Setup(host, pie.Options{}); err != nil {
		return err
	}

	if err := a.render(ctx); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}

	logger.Info("piechart: watching", "path", cfg.in)
	return watch.Watch(ctx, cfg.in, func() {
		if err := a.render(ctx); err != nil {
			logger.Error("piechart: redraw failed", "err", err)
		}
	})
}

// load reads the chart document from the configured source and applies
// the command line overrides.
func (a *app) load(ctx context.Context) (*chartfile.Document, error) {
	var doc *chartfile.Document
	if a.cfg.in != "" {
		var err error
		if doc, err = chartfile.Load(a.cfg.in); err != nil {
			return nil, err
		}
	} else {
		points, err := sqlsource.LoadDSN(ctx, a.cfg.db, a.cfg.dsn, a.cfg.query)
		if err != nil {
			return nil, err
		}
		doc = &chartfile.Document{Data: points}
	}

	if a.cfg.width > 0 {
		doc.Options.Width = a.cfg.width
	}
	if a.cfg.height > 0 {
		doc.Options.Height = a.cfg.height
	}
	if a.cfg.mode != "" {
		doc.Options.Mode = pie.Mode(a.cfg.mode)
	}
	return doc, nil
}

func (a *app) render(ctx context.Context) error {
	doc, err := a.load(ctx)
	if err != nil {
		return err
	}
	if err := a.chart.Update(doc.Changes()); err != nil {
		return err
	}

	if key := a.cfg.activate; key != "" {
		nodes := a.host.Find(pie.KindPath, key)
		if len(nodes) == 0 || !a.host.Activate(nodes[0]) {
			a.log.Warn("piechart: no slice to activate", "key", key)
		}
	}
	return a.write()
}

func (a *app) write() error {
	if a.cfg.out == "" || a.cfg.out == "-" {
		_, err := a.host.WriteTo(a.stdout)
		return err
	}
	f, err := os.Create(a.cfg.out)
	if err != nil {
		return err
	}
	if _, err := a.host.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	a.log.Debug("piechart: wrote", "path", a.cfg.out, "format", a.cfg.format)
	return nil
}
