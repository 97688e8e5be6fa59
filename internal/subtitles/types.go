package subtitles

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/patrickprogramme/substats/pkg/model"
)

var (
	ErrUnknownFormat = errors.New("format de sous-titres inconnu")
	ErrEmptyInput    = errors.New("fichier de sous-titres vide")
)

// Entry est une réplique chronométrée. Text peut contenir plusieurs lignes
// séparées par "\n" ainsi que des balises (<i>, <font ...>, {\an8}...).
type Entry struct {
	Number int // numérotation d'origine (informative)
	Start  time.Duration
	End    time.Duration
	Text   string
}

// Duration retourne End - Start.
func (e Entry) Duration() time.Duration {
	return e.End - e.Start
}

// Lines découpe le texte en lignes physiques (\r\n, \r ou \n).
// Un texte vide donne une seule ligne vide.
func (e Entry) Lines() []string {
	return SplitToLines(e.Text)
}

// Document est la suite ordonnée des répliques d'un fichier.
// L'ordre est l'ordre d'affichage ; les index externes commencent à 1.
type Document struct {
	Name    string // chemin ou URL d'origine
	Format  model.Format
	Entries []Entry
}

// NewDocument construit un Document à partir de données déjà prêtes (pas d'I/O).
func NewDocument(name string, format model.Format, entries []Entry) *Document {
	return &Document{
		Name:    name,
		Format:  format,
		Entries: entries,
	}
}

// Len retourne le nombre de répliques (0 pour un document nil).
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Entries)
}

// IsEmpty indique si le document est nil ou sans répliques.
func (d *Document) IsEmpty() bool {
	return d.Len() == 0
}

func (d *Document) String() string {
	if d == nil {
		return "Document(nil)"
	}
	return fmt.Sprintf("Document[Name=%q, Format=%s, Entries=%d]", d.Name, d.Format, len(d.Entries))
}

// SplitToLines découpe s sur \r\n, \r et \n.
func SplitToLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
