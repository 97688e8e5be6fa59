package stats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/patrickprogramme/substats/internal/subtitles"
)

// Strategy : manière de compter les caractères (longueurs et CPS).
type Strategy string

const (
	StrategyAll                Strategy = "all"
	StrategyNoSpace            Strategy = "no_space"
	StrategyNoSpacePunctuation Strategy = "no_space_punctuation"
	StrategyCJKWide            Strategy = "cjk_wide"
)

// Strategies liste les stratégies acceptées (ordre d'affichage).
var Strategies = []Strategy{StrategyAll, StrategyNoSpace, StrategyNoSpacePunctuation, StrategyCJKWide}

// ParseStrategy accepte "" comme StrategyAll.
func ParseStrategy(s string) (Strategy, error) {
	v := Strategy(strings.ToLower(strings.TrimSpace(s)))
	if v == "" {
		return StrategyAll, nil
	}
	for _, known := range Strategies {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("stratégie de comptage inconnue: %q", s)
}

// CountCharacters compte les caractères visibles de s : balises retirées,
// sauts de ligne, caractères de contrôle et de largeur nulle ignorés.
func CountCharacters(s string, strategy Strategy) int {
	s = RemoveHTMLTags(s, true)
	n := 0
	for _, r := range s {
		if r == '\r' || r == '\n' || isZeroWidth(r) || unicode.IsControl(r) {
			continue
		}
		switch strategy {
		case StrategyNoSpace:
			if unicode.IsSpace(r) {
				continue
			}
		case StrategyNoSpacePunctuation:
			if unicode.IsSpace(r) || unicode.IsPunct(r) {
				continue
			}
		case StrategyCJKWide:
			if isCJK(r) {
				n += 2
				continue
			}
		}
		n++
	}
	return n
}

// CharactersPerSecond : 999 quand la durée est inférieure à 1 ms.
func CharactersPerSecond(e subtitles.Entry, strategy Strategy) float64 {
	ms := float64(e.Duration().Milliseconds())
	if ms < 1 {
		return 999
	}
	return float64(CountCharacters(e.Text, strategy)) / (ms / 1000)
}

var wordSeparators = " ,.!?;:()[]{}\"♪♫-–—…/\\\t\r\n"

// CountWords compte les mots d'un texte (balisage retiré).
func CountWords(s string) int {
	s = RemoveHTMLTags(s, true)
	return len(strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(wordSeparators, r) || unicode.IsSpace(r)
	}))
}

// fixExtraSpaces réduit les suites d'espaces et nettoie autour des sauts de ligne.
func fixExtraSpaces(s string) string {
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	s = strings.ReplaceAll(s, " \n", "\n")
	return strings.ReplaceAll(s, "\n ", "\n")
}

func isZeroWidth(r rune) bool {
	switch r {
	case '\u200b', '\u200c', '\u200d', '\u200e', '\u200f', '\u2060', '\ufeff',
		'\u202a', '\u202b', '\u202c', '\u202d', '\u202e':
		return true
	}
	return false
}

func isCJK(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
