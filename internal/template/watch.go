package template

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce coalesces bursts of filesystem events (editors typically
// emit several per save) into a single reload.
const reloadDebounce = 300 * time.Millisecond

// Watcher hot-reloads custom template bundles when the templates directory
// changes. A failed reload keeps the previously loaded set.
type Watcher struct {
	registry *Registry
	dir      string
	pdf      PDFSettings
	logger   *zap.Logger
}

// NewWatcher creates a watcher for dir. It performs an initial load so the
// registry is populated before Run starts.
func NewWatcher(registry *Registry, dir string, pdf PDFSettings, logger *zap.Logger) (*Watcher, error) {
	w := &Watcher{
		registry: registry,
		dir:      dir,
		pdf:      pdf,
		logger:   logger,
	}
	if err := w.reload(); err != nil {
		return nil, err
	}
	return w, nil
}

// Run watches the templates directory until ctx is canceled. Bundle
// subdirectories are watched too so edits to layout files trigger reloads.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := w.addWatches(watcher); err != nil {
		return err
	}

	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("template change detected",
				zap.String("path", event.Name),
				zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
				pending = timer.C
			} else {
				timer.Reset(reloadDebounce)
			}
		case <-pending:
			if err := w.reload(); err != nil {
				w.logger.Warn("template reload failed, keeping previous set", zap.Error(err))
			}
			// New bundle directories need their own watches.
			if err := w.addWatches(watcher); err != nil {
				w.logger.Warn("failed to refresh template watches", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("template watcher error", zap.Error(err))
		}
	}
}

// addWatches registers the templates dir and each bundle subdirectory.
// Re-adding an existing watch is a no-op for fsnotify.
func (w *Watcher) addWatches(watcher *fsnotify.Watcher) error {
	if err := watcher.Add(w.dir); err != nil {
		return err
	}
	for _, sub := range bundleDirs(w.dir) {
		if err := watcher.Add(sub); err != nil {
			w.logger.Warn("failed to watch template bundle", zap.String("dir", sub), zap.Error(err))
		}
	}
	return nil
}

func (w *Watcher) reload() error {
	factories, err := LoadDir(w.dir, w.pdf)
	if err != nil {
		return err
	}
	if err := w.registry.ReplaceCustom(factories); err != nil {
		return err
	}
	w.logger.Info("custom templates loaded",
		zap.String("dir", w.dir),
		zap.Int("count", len(factories)))
	return nil
}
