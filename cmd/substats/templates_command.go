package main

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/patrickprogramme/substats/internal/assets"
	"github.com/patrickprogramme/substats/internal/bootstrap"
	"github.com/patrickprogramme/substats/internal/report"
	"github.com/spf13/cobra"
)

// dossiers embarqués exportés à côté du binaire
var exportedAssetDirs = []string{"templates", "lang"}

func newTemplatesCommand(ctx *commandContext) *cobra.Command {
	var force bool
	var dir string
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Copie le template du rapport et les packs de libellés pour personnalisation",
		Long: `Copie templates/stats_report.txt.tmpl et lang/*.yaml dans le dossier du binaire
(ou --dir). Les fichiers présents sont utilisés à la place des versions embarquées.
Les fichiers existants ne sont jamais modifiés, sauf avec --force (sauvegarde .bak).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = ctx.binDir
			}
			out := cmd.OutOrStdout()

			if !force {
				var written []string
				for i, files := range [][]string{assets.DefaultTemplatePaths, assets.DefaultLangPaths} {
					w, err := bootstrap.EnsureFilesPresent(filepath.Join(dir, exportedAssetDirs[i]), assets.Embedded, files)
					written = append(written, w...)
					if err != nil {
						return err
					}
				}
				if len(written) == 0 {
					fmt.Fprintln(out, "Aucun fichier écrit (déjà présents, --force pour remplacer).")
				}
				for _, p := range written {
					fmt.Fprintf(out, "%s: %s\n", bootstrap.StatusWritten, p)
				}
				return checkTemplates(out, dir)
			}

			for _, prefix := range exportedAssetDirs {
				status, err := bootstrap.ExportDefaults(assets.Embedded, prefix, filepath.Join(dir, prefix), true)
				keys := make([]string, 0, len(status))
				for k := range status {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				for _, k := range keys {
					fmt.Fprintf(out, "%s: %s\n", status[k], k)
				}
				if err != nil {
					return err
				}
			}
			return checkTemplates(out, dir)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Remplace les fichiers modifiés (avec sauvegarde)")
	cmd.Flags().StringVar(&dir, "dir", "", "Dossier de destination (défaut : dossier du binaire)")
	return cmd
}

// checkTemplates parse les templates de dir comme le fera le rapport et les liste.
func checkTemplates(out io.Writer, dir string) error {
	r, err := report.DefaultRenderer(dir, assets.Embedded, assets.ReportTemplate)
	if err != nil {
		return fmt.Errorf("template invalide dans %s : %w", dir, err)
	}
	names := r.TemplateNames()
	sort.Strings(names)
	fmt.Fprintf(out, "Templates chargés : %s\n", strings.Join(names, ", "))
	return nil
}
