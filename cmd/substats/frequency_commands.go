package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/patrickprogramme/substats/internal/stats"
	"github.com/spf13/cobra"
)

const defaultTop = 20

type frequencyFlags struct {
	top   int
	plain bool
}

func newWordsCommand(ctx *commandContext) *cobra.Command {
	return newFrequencyCommand(ctx, "words", "Mot", "Classement des mots les plus utilisés",
		func(r *stats.Result) ([]stats.Frequency, string) { return r.Words, r.MostUsedWords })
}

func newLinesCommand(ctx *commandContext) *cobra.Command {
	return newFrequencyCommand(ctx, "lines", "Ligne", "Classement des lignes les plus utilisées",
		func(r *stats.Result) ([]stats.Frequency, string) { return r.Lines, r.MostUsedLines })
}

// newFrequencyCommand : words et lines ne diffèrent que par la liste affichée.
func newFrequencyCommand(ctx *commandContext, name, column, short string, pick func(*stats.Result) ([]stats.Frequency, string)) *cobra.Command {
	flags := &frequencyFlags{}
	cmd := &cobra.Command{
		Use:   name + " <fichier|url>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd.Context())
			if err != nil {
				return err
			}
			a, err := ctx.newApp(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			rep, err := a.Analyze(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			list, placeholder := pick(rep.Result)
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				_, err := io.WriteString(out, placeholder)
				return err
			}
			list = topN(list, flags.top)
			if flags.plain || !isTerminal(out) {
				return writePlain(out, list)
			}
			_, err = fmt.Fprintln(out, frequencyTable(column, list))
			return err
		},
	}
	cmd.Flags().IntVarP(&flags.top, "top", "n", defaultTop, "Nombre d'entrées affichées (0 : toutes)")
	cmd.Flags().BoolVar(&flags.plain, "plain", false, "Sortie texte \"N: texte\" au lieu d'un tableau")
	return cmd
}

func topN(list []stats.Frequency, n int) []stats.Frequency {
	if n <= 0 || n >= len(list) {
		return list
	}
	return list[:n]
}

// writePlain : même forme que les blocs du rapport.
func writePlain(w io.Writer, list []stats.Frequency) error {
	for _, f := range list {
		if _, err := fmt.Fprintf(w, "%d: %s\n", f.Count, f.Text); err != nil {
			return err
		}
	}
	return nil
}

func frequencyTable(column string, list []stats.Frequency) string {
	rows := make([][]string, 0, len(list))
	for i, f := range list {
		rows = append(rows, []string{strconv.Itoa(i + 1), strconv.Itoa(f.Count), f.Text})
	}
	return renderTable([]string{"#", "Nombre", column}, rows, []columnAlignment{alignRight, alignRight, alignLeft})
}
