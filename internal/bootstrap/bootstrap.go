// Package bootstrap copie sur disque les ressources embarquées (config,
// template du rapport, packs de libellés) pour que l'utilisateur puisse les modifier.
package bootstrap

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/patrickprogramme/substats/internal/fsutil"
)

// Statuts retournés par ExportDefaults
const (
	StatusWritten     = "written"
	StatusUnchanged   = "unchanged"
	StatusSkipped     = "skipped (different)"
	StatusOverwritten = "overwritten"
)

// ExportDefaults copie récursivement tous les fichiers sous srcPrefix (dans fsys)
// vers destDir en préservant la hiérarchie relative.
// - fsys : embed.FS (ou tout fs.FS)
// - srcPrefix : chemin racine dans fsys à copier (ex: "templates")
// - destDir : dossier sur disque cible
// - force : si true, écrase les fichiers différents (avec backup)
//
// Retourne une map[embeddedPath]status et une erreur globale si Walk échoue.
func ExportDefaults(fsys fs.FS, srcPrefix, destDir string, force bool) (map[string]string, error) {
	status := make(map[string]string)

	err := fs.WalkDir(fsys, srcPrefix, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		// chemin relatif par rapport à srcPrefix
		rel, err := filepath.Rel(srcPrefix, path)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if rel == "." {
				return nil
			}
			return os.MkdirAll(filepath.Join(destDir, rel), 0o755)
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			status[path] = "error: read embedded failed"
			return err
		}
		destPath := filepath.Join(destDir, rel)

		// si le fichier existe déjà : comparer
		if existing, err := os.ReadFile(destPath); err == nil {
			if bytes.Equal(existing, data) {
				status[path] = StatusUnchanged
				return nil
			}
			if !force {
				status[path] = StatusSkipped
				return nil
			}
			// force == true -> backup + overwrite
			backup := destPath + ".bak." + time.Now().Format("20060102T150405")
			if err := fsutil.WriteFileAtomic(backup, existing, 0o644); err != nil {
				status[path] = "error: backup failed"
				return fmt.Errorf("backup failed for %s: %w", destPath, err)
			}
			if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
				status[path] = "error: overwrite failed"
				return err
			}
			status[path] = StatusOverwritten
			return nil
		}

		if err := fsutil.WriteFileAtomic(destPath, data, 0o644); err != nil {
			status[path] = "error: write failed"
			return err
		}
		status[path] = StatusWritten
		return nil
	})

	return status, err
}

// EnsureFilesPresent s'assure que les fichiers listés existent dans destDir.
//
// - destDir  : dossier destination sur disque (ex: "<binDir>/templates")
// - fsys     : embed.FS (ou autre fs.FS) contenant les ressources embarquées
// - srcFiles : chemins DANS fsys (ex: "templates/stats_report.txt.tmpl")
//
// Crée destDir si besoin et copie chaque fichier absent (à plat, par basename).
// NE REMPLACE JAMAIS les fichiers existants. Retourne la liste des fichiers écrits.
func EnsureFilesPresent(destDir string, fsys fs.FS, srcFiles []string) ([]string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("échec de création du répertoire %s : %w", destDir, err)
	}

	var written []string
	for _, src := range srcFiles {
		dest := filepath.Join(destDir, filepath.Base(src))
		if _, err := os.Stat(dest); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return written, fmt.Errorf("échec lors du test du fichier %s : %w", dest, err)
		}

		data, err := fs.ReadFile(fsys, filepath.ToSlash(src))
		if err != nil {
			return written, fmt.Errorf("fichier embarqué introuvable %s : %w", src, err)
		}
		if err := fsutil.WriteFileAtomic(dest, data, 0o644); err != nil {
			return written, fmt.Errorf("échec d'écriture du fichier %s : %w", dest, err)
		}
		written = append(written, dest)
	}
	return written, nil
}
