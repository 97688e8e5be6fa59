package assets

import "embed"

//go:embed substats.example.yaml
//go:embed templates/*.tmpl
//go:embed lang/*.yaml
var Embedded embed.FS

// Nom de l'asset de config par défaut (chemin DANS Embedded)
const DefaultConfigAsset = "substats.example.yaml"

// Nom du template du rapport (basename, utilisé par ExecuteTemplate)
const ReportTemplate = "stats_report.txt.tmpl"

// DefaultTemplatePaths : templates embarqués copiés à côté du binaire par "substats templates".
// Chemins relatifs DANS Embedded.
var DefaultTemplatePaths = []string{
	"templates/" + ReportTemplate,
}

// DefaultLangPaths : packs de libellés embarqués.
var DefaultLangPaths = []string{
	"lang/en.yaml",
	"lang/fr.yaml",
}
