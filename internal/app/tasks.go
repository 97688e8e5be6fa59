package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/patrickprogramme/substats/internal/charset"
	"github.com/patrickprogramme/substats/internal/clipboard"
	"github.com/patrickprogramme/substats/internal/fsutil"
	"github.com/patrickprogramme/substats/internal/report"
	"github.com/patrickprogramme/substats/pkg/model"
)

// le rapport est toujours du texte brut
var exportExt = model.FormatTXT.Extension()

// Export écrit le rapport courant sur disque et retourne le chemin final.
//   - path vide : <output_dir>/<nom de la source>.Stats.txt ; sans
//     export.overwrite, un fichier existant reçoit un suffixe _1, _2... ;
//   - sinon path tel quel (remplacé s'il existe).
//
// L'encodage de sortie suit export.encoding.
func (a *App) Export(path string) (string, error) {
	rep := a.Last()
	if rep == nil {
		return "", ErrNoReport
	}

	content, err := charset.Encode(string(rep.Text), a.cfg.Export.Encoding)
	if err != nil {
		return "", fmt.Errorf("export: %w", err)
	}

	var final string
	if path == "" {
		final, err = fsutil.SaveFileAtomic(a.cfg.OutputDir, report.DefaultExportName(rep.Source), exportExt, content, a.cfg.Export.Overwrite)
		if err != nil {
			return "", fmt.Errorf("export: %w", err)
		}
	} else {
		// chemin explicite : écrit tel quel, même s'il existe
		final = filepath.Clean(path)
		if err := fsutil.WriteFileAtomic(final, content, 0o644); err != nil {
			return "", fmt.Errorf("export %s: %w", final, err)
		}
	}

	a.log.Debug(context.Background(), "Rapport écrit : %s (%s, %s)", final, humanize.Bytes(uint64(len(content))), a.cfg.Export.Encoding)
	return final, nil
}

// Copy place le rapport courant dans le presse-papier (texte Unicode).
func (a *App) Copy(ctx context.Context) error {
	rep := a.Last()
	if rep == nil {
		return ErrNoReport
	}
	if err := a.clip.WriteAll(string(rep.Text)); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	if !clipboard.Equals(a.clip, string(rep.Text)) {
		a.log.Warn(ctx, "Le presse-papier ne contient pas le rapport après la copie")
	}
	return nil
}
