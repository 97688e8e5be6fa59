package model

import (
	"fmt"
	"path/filepath"
	"strings"
)

// constantes pour les formats de fichiers
type Format string

const (
	FormatSRT   Format = "srt"
	FormatASS   Format = "ass"
	FormatSSA   Format = "ssa"
	FormatVTT   Format = "vtt"
	FormatTTML  Format = "ttml"
	FormatJSON3 Format = "json3"
	FormatTXT   Format = "txt"
)

// du format en chaine à la constante de type Format, return une erreur si format inconnu
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "."))) {
	case "srt":
		return FormatSRT, nil
	case "ass":
		return FormatASS, nil
	case "ssa":
		return FormatSSA, nil
	case "vtt", "webvtt":
		return FormatVTT, nil
	case "ttml", "dfxp", "xml":
		return FormatTTML, nil
	case "json3", "json":
		return FormatJSON3, nil
	case "txt":
		return FormatTXT, nil
	default:
		return "", fmt.Errorf("format demandé inconnu: %s", s)
	}
}

// FormatFromPath déduit le format depuis l'extension du fichier.
// Retourne false si l'extension ne correspond à aucun format de sous-titres.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil || !f.IsSubtitle() {
		return "", false
	}
	return f, true
}

func (f Format) IsSubtitle() bool {
	switch f {
	case FormatSRT, FormatASS, FormatSSA, FormatVTT, FormatTTML, FormatJSON3:
		return true
	}
	return false
}

func (f Format) IsTextual() bool {
	return f == FormatTXT
}

func (f Format) Extension() string {
	return "." + string(f)
}

// FriendlyName est le nom affiché dans le rapport ("Number of characters as ...").
func (f Format) FriendlyName() string {
	switch f {
	case FormatSRT:
		return "SubRip (.srt)"
	case FormatASS:
		return "Advanced Sub Station Alpha (.ass)"
	case FormatSSA:
		return "Sub Station Alpha (.ssa)"
	case FormatVTT:
		return "WebVTT (.vtt)"
	case FormatTTML:
		return "Timed Text (.ttml)"
	case FormatJSON3:
		return "YouTube timed text (.json3)"
	case FormatTXT:
		return "Plain text (.txt)"
	default:
		return string(f)
	}
}

func (f Format) String() string {
	return string(f)
}
