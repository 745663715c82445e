package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"object-builder/internal/config"
	"object-builder/internal/configurator"
	"object-builder/internal/diagnostic"
	"object-builder/internal/schema"
)

// DefaultDebounce coalesces bursts of file events into one reload.
const DefaultDebounce = 200 * time.Millisecond

// ReloadFunc receives the result of every reload.
type ReloadFunc func(res *diagnostic.Diagnostics, err error)

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithDebounce sets how long to wait for further events before reloading.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithReloadFunc sets the callback invoked after every reload.
func WithReloadFunc(fn ReloadFunc) Option {
	return func(w *Watcher) { w.onReload = fn }
}

// Watcher reloads a schema file and a configuration file into a
// Configurator.
type Watcher struct {
	logger     zerolog.Logger
	debounce   time.Duration
	onReload   ReloadFunc
	schemaPath string
	configPath string

	// mu serializes access to c, which is not safe for concurrent use.
	mu sync.Mutex
	c  *configurator.Configurator
}

// New returns a Watcher for the given files.
func New(c *configurator.Configurator, schemaPath, configPath string, opts ...Option) *Watcher {
	w := &Watcher{
		logger:     zerolog.Nop(),
		debounce:   DefaultDebounce,
		schemaPath: filepath.Clean(schemaPath),
		configPath: filepath.Clean(configPath),
		c:          c,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Load reads both files into the configurator, activating it on first use,
// and returns the validation result.
func (w *Watcher) Load() (*diagnostic.Diagnostics, error) {
	tree, err := schema.LoadFile(w.schemaPath)
	if err != nil {
		return nil, err
	}

	draft, err := config.LoadFile(w.configPath)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.c.SetSchema(tree); err != nil {
		return nil, err
	}

	w.c.SetDraft(draft)

	if !w.c.Active() {
		w.c.Activate()
	}

	return w.c.Validate(), nil
}

// Run loads both files, then reloads on every change until ctx is done.
// Reloads and the reload callback run on the calling goroutine, one at a
// time, and never after Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch directories so files replaced by rename are still seen.
	dirs := map[string]struct{}{
		filepath.Dir(w.schemaPath): {},
		filepath.Dir(w.configPath): {},
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.reload()

	w.logger.Info().
		Str("schema", w.schemaPath).
		Str("config", w.configPath).
		Msg("Started watching")

	// The debounce timer only signals; a pending signal absorbs later ones.
	pending := make(chan struct{}, 1)
	notify := func() {
		select {
		case pending <- struct{}{}:
		default:
		}
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-pending:
			w.reload()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !w.relevant(event) {
				continue
			}

			w.logger.Debug().
				Str("file", event.Name).
				Str("op", event.Op.String()).
				Msg("File changed")

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, notify)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}

	name := filepath.Clean(event.Name)

	return name == w.schemaPath || name == w.configPath
}

func (w *Watcher) reload() {
	res, err := w.Load()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to reload")
	} else {
		w.logger.Info().
			Bool("valid", res.IsValid()).
			Int("errors", len(res.Errors)).
			Int("warnings", len(res.Warnings)).
			Msg("Reloaded")
	}

	if w.onReload != nil {
		w.onReload(res, err)
	}
}
