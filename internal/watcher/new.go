package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/patrickprogramme/substats/internal/logger"
)

// New surveille le dossier parent de filePath : les éditeurs remplacent
// souvent le fichier (rename), ce qui ferait perdre une surveillance directe.
func New(filePath string, handler EventHandler, log logger.Logger, debounce time.Duration) (Watcher, error) {
	abs, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", filePath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s est un dossier", abs)
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	if log == nil {
		log = logger.Nop()
	}
	if debounce < 0 {
		debounce = 0
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		path:     abs,
		handler:  handler,
		logger:   log,
		watcher:  fw,
		debounce: debounce,
	}, nil
}
