package subtitles

import (
	"regexp"
	"strings"

	"github.com/patrickprogramme/substats/pkg/model"
)

var reTimingPair = regexp.MustCompile(`(\d{1,2}):(\d{2}):(\d{2})[.,](\d{2,3})`)

// GuessFormat devine le format d'après le contenu. Retourne "" si rien ne correspond.
func GuessFormat(content string) model.Format {
	lower := strings.ToLower(content)
	trimmed := strings.TrimLeft(strings.TrimPrefix(content, "\ufeff"), " \t\r\n")

	switch {
	case strings.Contains(lower, "[v4+ styles]"):
		return model.FormatASS
	case strings.Contains(lower, "[v4 styles]"):
		return model.FormatSSA
	case strings.HasPrefix(trimmed, "WEBVTT"):
		return model.FormatVTT
	case strings.HasPrefix(trimmed, "{") && strings.Contains(content, `"events"`):
		return model.FormatJSON3
	case strings.Contains(lower, "<tt ") || strings.Contains(lower, "<tt>") || strings.Contains(lower, "<tt:tt"):
		return model.FormatTTML
	}

	for _, l := range SplitToLines(content) {
		if len(reTimingPair.FindAllString(l, 3)) == 2 && strings.Contains(l, "-->") {
			return model.FormatSRT
		}
	}
	return ""
}
