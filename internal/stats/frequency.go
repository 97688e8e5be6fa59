package stats

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Frequency : un mot ou une ligne et son nombre d'occurrences.
type Frequency struct {
	Text  string
	Count int
}

// rankFrequencies garde les entrées vues plus d'une fois, triées par nombre
// décroissant puis par texte décroissant (ordre des octets).
// La clé "%04d_%s" triée puis inversée reproduit exactement cet ordre.
func rankFrequencies(counts map[string]int) []Frequency {
	keys := make([]string, 0, len(counts))
	byKey := make(map[string]Frequency, len(counts))
	for text, n := range counts {
		if n <= 1 {
			continue
		}
		k := fmt.Sprintf("%04d_%s", n, text)
		keys = append(keys, k)
		byKey[k] = Frequency{Text: text, Count: n}
	}
	sort.Strings(keys)

	out := make([]Frequency, 0, len(keys))
	for i := len(keys) - 1; i >= 0; i-- {
		out = append(out, byKey[keys[i]])
	}
	return out
}

// renderFrequencies : une ligne "N: texte" par entrée puis une ligne vide,
// ou nothingFound suivi d'un saut de ligne.
func renderFrequencies(list []Frequency, nothingFound string) string {
	if len(list) == 0 {
		return nothingFound + "\n"
	}
	var b strings.Builder
	for _, f := range list {
		b.WriteString(strconv.Itoa(f.Count))
		b.WriteString(": ")
		b.WriteString(f.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}
