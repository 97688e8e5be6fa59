package subtitles

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/patrickprogramme/substats/internal/charset"
	"github.com/patrickprogramme/substats/internal/fetch"
	"github.com/patrickprogramme/substats/pkg/model"
)

// LoadOptions règle le chargement. Les valeurs nulles prennent les défauts de fetch.
type LoadOptions struct {
	Format       model.Format // forcé ; sinon extension puis contenu
	FetchTimeout time.Duration
	MaxBytes     int64
}

// Load lit un fichier local ou une URL http(s) et retourne le Document.
func Load(ctx context.Context, source string, opts LoadOptions) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if fetch.IsURL(source) {
		data, err = fetch.FetchBytesWithTimeout(ctx, source, opts.FetchTimeout, opts.MaxBytes)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}

	format := opts.Format
	if format == "" {
		// on ignore la query string des URL pour l'extension
		format, _ = model.FormatFromPath(strings.SplitN(source, "?", 2)[0])
	}
	doc, err := LoadBytes(source, data, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", source, err)
	}
	return doc, nil
}

// LoadBytes décode data (charset) puis le parse. format peut être vide.
func LoadBytes(name string, data []byte, format model.Format) (*Document, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	utf8Data, _, err := charset.ToUTF8(data)
	if err != nil {
		return nil, err
	}
	return Parse(name, string(utf8Data), format)
}

// Parse interprète un contenu déjà en UTF-8.
func Parse(name, content string, format model.Format) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}
	if format == "" {
		format = GuessFormat(content)
	}

	var (
		entries []Entry
		err     error
	)
	switch format {
	case model.FormatSRT:
		entries = ParseSRT(content)
	case model.FormatASS, model.FormatSSA, model.FormatVTT, model.FormatTTML:
		entries, err = readAstisub([]byte(content), format)
	case model.FormatJSON3:
		var raw rawJSON3
		raw, err = ParseJSON3Bytes([]byte(content))
		entries = entriesFromJSON3(raw)
	default:
		return nil, fmt.Errorf("parse %q: %w", name, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	return NewDocument(name, format, entries), nil
}

// ToText sérialise le document dans format. Un document vide donne "".
func (d *Document) ToText(format model.Format) (string, error) {
	if d.IsEmpty() {
		return "", nil
	}
	switch format {
	case model.FormatSRT:
		return writeSRT(d.Entries), nil
	case model.FormatASS, model.FormatSSA, model.FormatVTT, model.FormatTTML:
		return writeAstisub(d.Entries, format)
	case model.FormatJSON3:
		b, err := json.Marshal(json3FromEntries(d.Entries))
		if err != nil {
			return "", fmt.Errorf("write json3: %w", err)
		}
		return string(b), nil
	}
	// texte seul : une réplique par bloc, sans minutage
	if format.IsTextual() {
		var b strings.Builder
		for _, e := range d.Entries {
			b.WriteString(e.Text)
			b.WriteString("\n")
		}
		return b.String(), nil
	}
	return "", fmt.Errorf("ToText %s: %w", format, ErrUnknownFormat)
}
