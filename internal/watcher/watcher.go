package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/patrickprogramme/substats/internal/logger"
)

type implWatcher struct {
	path     string
	handler  EventHandler
	logger   logger.Logger
	watcher  *fsnotify.Watcher
	debounce time.Duration
}

// Start bloque jusqu'à l'annulation de ctx. Les écritures rapprochées
// (moins de debounce d'écart) ne déclenchent qu'un seul appel au handler.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Surveillance de %s (debounce %s)", w.path, w.debounce)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Surveillance arrêtée")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.isTarget(event) {
				continue
			}
			w.logger.Debug(ctx, "Événement %s sur %s", event.Op, event.Name)
			if w.debounce == 0 {
				w.run(ctx)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.run(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop ferme le watcher fsnotify.
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

func (w *implWatcher) run(ctx context.Context) {
	if err := w.handler(ctx, w.path); err != nil {
		w.logger.Error(ctx, "Échec du recalcul pour %s: %v", w.path, err)
	}
}

// isTarget : seules les écritures / créations du fichier surveillé comptent.
func (w *implWatcher) isTarget(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return filepath.Clean(event.Name) == w.path
}
