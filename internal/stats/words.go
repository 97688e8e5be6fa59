package stats

import (
	"strings"
	"unicode/utf8"
)

// séparateurs de mots ; les sauts de ligne en font aussi partie
const wordSplitChars = "♪♫\"()[] ,!?.:;-_@<>/0123456789،؟؛\r\n"

// addWords ajoute les mots de text au compteur.
func addWords(counts map[string]int, text string) {
	if strings.Contains(text, "< ") {
		text = FixInvalidItalicTags(text)
	}
	text = stripStyleTags(text)
	text = stripFontTags(text)
	text = RemoveSSATags(text)

	for _, tok := range strings.FieldsFunc(text, isWordSeparator) {
		w := strings.TrimSpace(tok)
		if utf8.RuneCountInString(w) > 1 {
			counts[w]++
		}
	}
}

func isWordSeparator(r rune) bool {
	return strings.ContainsRune(wordSplitChars, r)
}
