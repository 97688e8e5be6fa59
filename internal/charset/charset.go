// Package charset convertit les fichiers de sous-titres vers UTF-8 en entrée
// et vers l'encodage choisi pour l'export du rapport.
package charset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var ErrUnsupported = errors.New("encodage non supporté")

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// ToUTF8 détecte l'encodage de data et le convertit en UTF-8.
// Le BOM éventuel est retiré. Retourne aussi le nom du charset détecté.
func ToUTF8(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return data, "UTF-8", nil
	}
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):], "UTF-8", nil
	}
	// UTF-8 valide : rien à faire, chardet se trompe parfois sur de l'ASCII pur
	if utf8.Valid(data) && !looksUTF16(data) {
		return data, "UTF-8", nil
	}

	res, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, "", fmt.Errorf("charset detect: %w", err)
	}
	if strings.EqualFold(res.Charset, "UTF-8") {
		return data, res.Charset, nil
	}

	enc, err := Lookup(res.Charset)
	if err != nil {
		return nil, res.Charset, err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return nil, res.Charset, fmt.Errorf("charset decode %s: %w", res.Charset, err)
	}
	out = bytes.TrimPrefix(out, utf8BOM)
	return out, res.Charset, nil
}

// Encode convertit un texte UTF-8 vers l'encodage IANA name.
// "" et "utf-8" retournent le texte tel quel. Les caractères absents de
// l'encodage cible sont remplacés par son caractère de substitution.
func Encode(text, name string) ([]byte, error) {
	if isUTF8Name(name) {
		return []byte(text), nil
	}
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.Bytes(encoding.ReplaceUnsupported(enc.NewEncoder()), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("charset encode %s: %w", name, err)
	}
	return out, nil
}

// Lookup retrouve un encodage par son nom IANA (ou MIB en secours).
func Lookup(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		enc, err = ianaindex.MIB.Encoding(name)
	}
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}
	return enc, nil
}

// Supported indique si name est un encodage utilisable pour l'export.
func Supported(name string) bool {
	if isUTF8Name(name) {
		return true
	}
	_, err := Lookup(name)
	return err == nil
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// BOM UTF-16 : utf8.Valid accepte ces octets, il faut les repérer avant.
func looksUTF16(data []byte) bool {
	return len(data) >= 2 && ((data[0] == 0xff && data[1] == 0xfe) || (data[0] == 0xfe && data[1] == 0xff))
}
