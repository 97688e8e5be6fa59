package stats

import "strings"

var lineNormalizer = strings.NewReplacer("!", ".", "?", ".")

// addLines ajoute les "phrases" de text au compteur. Une phrase déjà connue
// est toujours comptée ; une nouvelle n'est retenue que si elle contient un espace.
func addLines(counts map[string]int, text string) {
	text = strings.ReplaceAll(text, "\r\n", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "  ", " ")

	text = stripStyleTags(text)
	text = lineNormalizer.Replace(text)
	text = strings.ReplaceAll(text, "...", ".")
	text = strings.ReplaceAll(text, "..", ".")
	text = strings.ReplaceAll(text, "-", " ")
	text = fixExtraSpaces(text)
	text = RemoveSSATags(text)

	for _, part := range strings.Split(text, ".") {
		s := strings.TrimSpace(part)
		if _, ok := counts[s]; ok {
			counts[s]++
		} else if s != "" && strings.Contains(s, " ") {
			counts[s] = 1
		}
	}
}
