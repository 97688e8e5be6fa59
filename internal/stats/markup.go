package stats

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reItalicOpen  = regexp.MustCompile(`(?i)<\s*i\s*>`)
	reItalicClose = regexp.MustCompile(`(?i)<\s*/\s*i\s*>`)
	// balises HTML connues des sous-titres ; le texte "a < b" reste intact
	reHTMLTag = regexp.MustCompile(`(?i)</?(?:i|b|u|s|font|span|c|v|lang|ruby|rt)(?:[\s.][^<>]*)?>`)
)

// styleTagReplacer : ouvrantes supprimées, fermantes remplacées par un point.
var styleTagReplacer = strings.NewReplacer(
	"<i>", "", "</i>", ".",
	"<I>", "", "</I>", ".",
	"<b>", "", "</b>", ".",
	"<B>", "", "</B>", ".",
	"<u>", "", "</u>", ".",
	"<U>", "", "</U>", ".",
)

// FixInvalidItalicTags répare les balises italiques espacées ("< i >", "</ i>").
func FixInvalidItalicTags(s string) string {
	s = reItalicOpen.ReplaceAllString(s, "<i>")
	return reItalicClose.ReplaceAllString(s, "</i>")
}

// stripStyleTags : retire les apostrophes aux extrémités et les guillemets.
// Sous 8 caractères le texte est rendu tel quel, sinon les balises i/b/u
// sont retirées (fermantes -> ".").
func stripStyleTags(s string) string {
	s = strings.Trim(s, "'")
	s = strings.ReplaceAll(s, `"`, "")
	if utf8.RuneCountInString(s) < 8 {
		return s
	}
	return styleTagReplacer.Replace(s)
}

// stripFontTags retire les balises <font ...>. Si une balise n'est pas fermée
// par '>', on s'arrête là : le reste du texte n'est pas touché et les
// "</font>" ne sont pas remplacés.
func stripFontTags(s string) string {
	idx := indexFoldASCII(s, "<font", 0)
	for idx >= 0 {
		end := -1
		if idx+5 <= len(s) {
			if j := strings.IndexByte(s[idx+5:], '>'); j >= 0 {
				end = idx + 5 + j
			}
		}
		if end < 0 {
			return s
		}
		s = s[:idx] + s[end+1:]
		idx = indexFoldASCII(s, "<font", idx)
	}
	return strings.ReplaceAll(s, "</font>", ".")
}

// RemoveSSATags retire les blocs d'override SSA "{\...}". Un bloc non fermé est conservé.
func RemoveSSATags(s string) string {
	from := 0
	for {
		i := strings.Index(s[from:], `{\`)
		if i < 0 {
			return s
		}
		i += from
		j := strings.IndexByte(s[i:], '}')
		if j < 0 {
			return s
		}
		s = s[:i] + s[i+j+1:]
		from = i
	}
}

// RemoveHTMLTags retire les balises HTML connues, et les blocs SSA si alsoSSA.
func RemoveHTMLTags(s string, alsoSSA bool) string {
	if alsoSSA {
		s = RemoveSSATags(s)
	}
	if !strings.Contains(s, "<") {
		return s
	}
	return reHTMLTag.ReplaceAllString(s, "")
}

// CountTag compte les occurrences (sans chevauchement) de tag dans s.
func CountTag(s, tag string) int {
	if tag == "" {
		return 0
	}
	return strings.Count(s, tag)
}

// indexFoldASCII cherche sub (ASCII) dans s à partir de from, sans tenir compte
// de la casse ASCII. Les octets non ASCII sont comparés tels quels.
func indexFoldASCII(s, sub string, from int) int {
	n := len(sub)
	for i := from; i+n <= len(s); i++ {
		ok := true
		for k := 0; k < n; k++ {
			if lowerASCII(s[i+k]) != lowerASCII(sub[k]) {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
