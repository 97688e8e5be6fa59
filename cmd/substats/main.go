package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
)

func main() {
	// root context qui s'annule sur SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(executableDir())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "erreur :", err)
		}
		os.Exit(1)
	}
}

// executableDir : dossier du binaire (config, templates et packs de libellés
// modifiables y sont cherchés). "." si introuvable.
func executableDir() string {
	exePath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "impossible de déterminer le chemin de l'exécutable: %v\n", err)
		return "."
	}
	return filepath.Dir(exePath)
}
