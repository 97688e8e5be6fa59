package watcher

import (
	"context"
	"testing"
)

// testContext remplace t.Context() (Go 1.24+) : contexte annulé au nettoyage du test.
func testContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
