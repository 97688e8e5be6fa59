// Package stats calcule les statistiques d'un document de sous-titres :
// métriques générales (longueurs, durées, CPS avec les répliques qui
// atteignent chaque extremum), mots et lignes les plus utilisés.
//
// Le calcul est sans état et déterministe : le même document donne toujours
// le même texte.
package stats

import (
	"github.com/patrickprogramme/substats/internal/subtitles"
	"github.com/patrickprogramme/substats/pkg/model"
)

// Options du calcul. La valeur zéro est utilisable.
type Options struct {
	Format         model.Format // format de la longueur sérialisée ; défaut : format du document
	Strategy       Strategy
	Labels         *Labels       // nil : anglais
	Width          WidthMeasurer // nil : pas de métriques de largeur
	DetectLanguage bool
}

// Result : les trois blocs texte du rapport et leurs données structurées.
type Result struct {
	General       string
	MostUsedWords string
	MostUsedLines string

	Metrics Metrics // zéro si le document est vide
	Words   []Frequency
	Lines   []Frequency
}

// Compute calcule le rapport complet. Un document vide (ou nil) donne le
// libellé nothing_found dans chaque bloc.
func Compute(doc *subtitles.Document, opts Options) *Result {
	labels := DefaultLabels()
	if opts.Labels != nil {
		labels = *opts.Labels
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategyAll
	}

	res := &Result{}

	wordCounts := make(map[string]int)
	lineCounts := make(map[string]int)
	totalWords := 0
	if doc != nil {
		for _, e := range doc.Entries {
			addWords(wordCounts, e.Text)
			totalWords += CountWords(e.Text)
		}
		for _, e := range doc.Entries {
			addLines(lineCounts, e.Text)
		}
	}

	res.Words = rankFrequencies(wordCounts)
	res.MostUsedWords = renderFrequencies(res.Words, labels.NothingFound)

	if doc.IsEmpty() {
		res.General = labels.NothingFound
	} else {
		res.Metrics = computeMetrics(doc, opts, totalWords)
		res.General = renderGeneral(res.Metrics, labels)
	}

	res.Lines = rankFrequencies(lineCounts)
	res.MostUsedLines = renderFrequencies(res.Lines, labels.NothingFound)
	return res
}
