package fsutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// longueur maximale d'un nom (en octets, sous la limite de 255 des systèmes courants)
const maxNameLen = 200

// caractères refusés par Windows ou Unix dans un nom de fichier
const forbiddenNameChars = `<>"/\|?*`

// SanitizeFilename rend name utilisable comme nom de fichier : ":" devient "-",
// les autres caractères interdits et les caractères de contrôle deviennent un
// espace, les espaces sont fusionnés et les points finaux retirés.
// Retourne fallback si rien ne reste.
func SanitizeFilename(name, fallback string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r == ':':
			return '-'
		case unicode.IsControl(r), strings.ContainsRune(forbiddenNameChars, r):
			return ' '
		}
		return r
	}, name)

	clean := strings.Join(strings.Fields(mapped), " ")
	clean = strings.TrimRight(clean, ". ")
	if clean == "" {
		return fallback
	}
	if len(clean) > maxNameLen {
		clean = strings.TrimRight(truncateRunes(clean, maxNameLen), ". ")
	}
	return clean
}

// truncateRunes coupe s à au plus n octets sans casser une rune UTF-8.
func truncateRunes(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
