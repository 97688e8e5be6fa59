package main

import (
	"context"
	"errors"

	"github.com/patrickprogramme/substats/internal/fetch"
	"github.com/patrickprogramme/substats/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	flags := &reportFlags{}
	cmd := &cobra.Command{
		Use:   "watch <fichier>",
		Short: "Recalcule le rapport à chaque modification du fichier (Ctrl+C pour quitter)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			if fetch.IsURL(source) {
				return errors.New("watch : seuls les fichiers locaux peuvent être surveillés")
			}
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

			opts := flags.runOptions()
			log := ctx.logger()

			// premier calcul ; une erreur ici (fichier en cours d'écriture...) n'arrête pas la surveillance
			if err := a.Run(cmd.Context(), source, opts); err != nil {
				log.Error(cmd.Context(), "Calcul initial : %v", err)
			}

			w, err := watcher.New(source, func(c context.Context, _ string) error {
				return a.Run(c, source, opts)
			}, log, cfg.WatchDebounce())
			if err != nil {
				return err
			}
			defer w.Stop()

			if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
