// Package report met en forme le rapport de statistiques via text/template.
package report

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/patrickprogramme/substats/internal/fsutil"
	"github.com/patrickprogramme/substats/internal/stats"
)

const (
	Generator = "substats"
	Homepage  = "https://github.com/patrickprogramme/substats"

	bannerFill = "============================="
)

// Data : ce que reçoit le template du rapport.
type Data struct {
	Generator     string
	Homepage      string
	Source        string // chemin ou URL du document
	General       string
	MostUsedWords string
	MostUsedLines string
	Result        *stats.Result
}

// NewData construit Data depuis le résultat du calcul.
func NewData(source string, res *stats.Result) Data {
	d := Data{
		Generator: Generator,
		Homepage:  Homepage,
		Source:    source,
		Result:    res,
	}
	if res != nil {
		d.General = res.General
		d.MostUsedWords = res.MostUsedWords
		d.MostUsedLines = res.MostUsedLines
	}
	return d
}

// DefaultExportName : nom de base du fichier source sans extension + ".Stats".
// Pour une URL on garde le dernier segment du chemin (décodé). Les caractères
// interdits dans un nom de fichier sont remplacés.
func DefaultExportName(source string) string {
	s := strings.SplitN(source, "?", 2)[0]
	s = strings.TrimRight(strings.ReplaceAll(s, `\`, "/"), "/")
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if u, err := url.PathUnescape(s); err == nil {
		s = u
	}
	base := strings.TrimSuffix(s, filepath.Ext(s))
	return fsutil.SanitizeFilename(base, "subtitle") + ".Stats"
}

// banner : "===== titre =====" comme séparateur de section.
func banner(title string) string {
	return bannerFill + " " + title + " " + bannerFill
}
