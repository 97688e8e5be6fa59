package watcher

import "context"

// Watcher surveille un fichier de sous-titres et déclenche un recalcul à chaque écriture.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler est appelé (séquentiellement) après chaque rafale d'écritures.
type EventHandler func(ctx context.Context, filePath string) error
