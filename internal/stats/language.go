package stats

import (
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/patrickprogramme/substats/internal/subtitles"
)

// Language est le résultat de la détection sur le texte complet.
type Language struct {
	Name       string
	Confidence float64
}

// DetectLanguage concatène le texte nettoyé des répliques et détecte la langue.
// Retourne false si le texte est vide ou la langue introuvable.
func DetectLanguage(entries []subtitles.Entry) (Language, bool) {
	var b strings.Builder
	for _, e := range entries {
		t := RemoveHTMLTags(e.Text, true)
		t = strings.TrimSpace(strings.ReplaceAll(t, "\n", " "))
		if t == "" {
			continue
		}
		b.WriteString(t)
		b.WriteString(" ")
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return Language{}, false
	}
	info := whatlanggo.Detect(text)
	if info.Lang == -1 {
		return Language{}, false
	}
	return Language{Name: info.Lang.String(), Confidence: info.Confidence}, true
}
