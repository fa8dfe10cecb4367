// Package watch reports changes of a single file.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/pie"
)

// DefaultDelay is how long events are coalesced before a change is
// reported. Editors often write a file in several steps.
const DefaultDelay = 100 * time.Millisecond

type config struct {
	delay time.Duration
}

// Option configures Watch.
type Option func(*config)

// WithDelay sets the coalescing delay. Zero or negative reports every
// event batch immediately.
func WithDelay(d time.Duration) Option {
	return func(c *config) { c.delay = d }
}

// Watch calls fn each time the file at path is written or replaced, until
// ctx is done. Calls are serial and run on the caller's goroutine.
//
// The parent directory is watched rather than the file, so editors that
// save by renaming a temporary file over path are seen too.
func Watch(ctx context.Context, path string, fn func(), opts ...Option) error {
	cfg := config{delay: DefaultDelay}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.delay <= 0 {
		cfg.delay = time.Nanosecond
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(target), err)
	}
	pie.Logger().Debug("watch: started", "path", target)

	timer := time.NewTimer(cfg.delay)
	timer.Stop()
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			timer.Reset(cfg.delay)
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			pie.Logger().Warn("watch: watcher error", "path", target, "err", err)
		case <-fire:
			fire = nil
			fn()
		}
	}
}
