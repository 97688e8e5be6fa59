// Package clipboard enveloppe atotto/clipboard.
package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
)

var (
	ErrEmptyText   = errors.New("le texte à copier ne peut pas être vide")
	ErrUnavailable = errors.New("presse-papier indisponible sur ce système")
)

// Interface permet de remplacer le presse-papier système (tests, mode sans affichage).
type Interface interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type system struct{}

// System retourne le presse-papier du système.
func System() Interface {
	return system{}
}

func (system) ReadAll() (string, error) {
	return ReadAll()
}

func (system) WriteAll(text string) error {
	return WriteAll(text)
}

// Available indique si un presse-papier est utilisable (xclip/xsel/wl-copy sous Linux).
func Available() bool {
	return !clipboard.Unsupported
}

// ReadAll lit le contenu texte du presse-papier.
func ReadAll() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// WriteAll écrit une chaîne de caractères dans le presse-papier.
// Retourne une erreur si le texte est vide ou si l'opération échoue.
func WriteAll(text string) error {
	if text == "" {
		return ErrEmptyText
	}
	if !Available() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Equals vérifie si le contenu actuel de c est égal à text, aux fins de
// ligne près (certains systèmes convertissent \n en \r\n).
// En cas d'erreur de lecture, retourne false.
func Equals(c Interface, text string) bool {
	current, err := c.ReadAll()
	if err != nil {
		return false
	}
	return normalize(current) == normalize(text)
}

func normalize(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.ReplaceAll(s, "\r\n", "\n")
}
