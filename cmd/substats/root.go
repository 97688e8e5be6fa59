package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(binDir string) *cobra.Command {
	var configFlag string
	var logLevelFlag string

	ctx := newCommandContext(binDir, &configFlag, &logLevelFlag)
	flags := &reportFlags{}

	rootCmd := &cobra.Command{
		Use:   "substats [fichier|url]",
		Short: "Statistiques de sous-titres (longueurs, durées, CPS, mots et lignes les plus utilisés)",
		Long: `substats calcule un rapport de statistiques pour un fichier de sous-titres
(srt, ass, ssa, vtt, ttml, json3) local ou distant (http/https).

Sans sous-commande, "substats <fichier>" équivaut à "substats report <fichier>".`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig(cmd.Context())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runReport(cmd, ctx, flags, args[0])
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Chemin du fichier de configuration (défaut : substats.yaml à côté du binaire)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Niveau de log : debug, info, warn, error (défaut : config)")
	flags.bind(rootCmd)

	rootCmd.AddCommand(newReportCommand(ctx))
	rootCmd.AddCommand(newWordsCommand(ctx))
	rootCmd.AddCommand(newLinesCommand(ctx))
	rootCmd.AddCommand(newWatchCommand(ctx))
	rootCmd.AddCommand(newTemplatesCommand(ctx))

	return rootCmd
}

// shouldSkipConfig : l'aide et la complétion ne créent pas de fichier de config.
func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
