package main

import (
	"fmt"
	"strings"

	"github.com/patrickprogramme/substats/internal/app"
	"github.com/patrickprogramme/substats/internal/config"
	"github.com/spf13/cobra"
)

// exportAuto : valeur de --export sans argument.
const exportAuto = "auto"

// reportFlags : options du rapport partagées par la racine, report et watch.
type reportFlags struct {
	export         string
	copy           bool
	lang           string
	strategy       string
	widths         bool
	detectLanguage bool
}

func (f *reportFlags) bind(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.export, "export", "", "Exporte le rapport (sans valeur : <output_dir>/<nom>.Stats.txt)")
	fl.Lookup("export").NoOptDefVal = exportAuto
	fl.BoolVar(&f.copy, "copy", false, "Copie le rapport dans le presse-papier")
	fl.StringVar(&f.lang, "lang", "", "Libellés du rapport : en, fr ou chemin d'un fichier YAML")
	fl.StringVar(&f.strategy, "strategy", "", "Comptage des caractères : all, no_space, no_space_punctuation, cjk_wide")
	fl.BoolVar(&f.widths, "widths", false, "Ajoute la largeur en pixels des lignes")
	fl.BoolVar(&f.detectLanguage, "detect-language", false, "Ajoute la langue détectée")
}

// apply reporte sur cfg les flags explicitement passés.
func (f *reportFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("lang") {
		cfg.Language = strings.TrimSpace(f.lang)
	}
	if fl.Changed("strategy") {
		cfg.CountStrategy = strings.ToLower(strings.TrimSpace(f.strategy))
	}
	if fl.Changed("widths") {
		cfg.WideLines.Enabled = f.widths
	}
	if fl.Changed("detect-language") {
		cfg.DetectLanguage = f.detectLanguage
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("options invalides : %w", err)
	}
	return nil
}

func (f *reportFlags) runOptions() app.RunOptions {
	opts := app.RunOptions{Copy: f.copy}
	if f.export != "" {
		opts.Export = true
		if f.export != exportAuto {
			opts.ExportPath = f.export
		}
	}
	return opts
}

func newReportCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "report <fichier|url>",
		Short: "Affiche le rapport de statistiques (et l'exporte / le copie)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, ctx, flags, args[0])
		},
	}
	flags.bind(cmd)
	return cmd
}

func runReport(cmd *cobra.Command, ctx *commandContext, flags *reportFlags, source string) error {
	cfg, err := ctx.ensureConfig(cmd.Context())
	if err != nil {
		return err
	}
	if err := flags.apply(cmd, cfg); err != nil {
		return err
	}
	a, err := ctx.newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Run(cmd.Context(), source, flags.runOptions())
}
