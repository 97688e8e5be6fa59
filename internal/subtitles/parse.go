package subtitles

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

var reMultiSpace = regexp.MustCompile(`[ \t]+`)

// ParseJSON3Bytes parse un blob JSON ([]byte) et retourne la structure rawJSON3.
//
// Utilise json.Decoder en lecture depuis un bytes.Reader quand les données sont
// déjà en présentes 100% en mémoire : adapté aux fichiers pas trop volumineux
func ParseJSON3Bytes(b []byte) (rawJSON3, error) {
	var raw rawJSON3
	if len(b) == 0 {
		return raw, fmt.Errorf("ParseJSON3Bytes: %w", ErrEmptyInput)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	// Ne pas appeler DisallowUnknownFields() car le JSON contient souvent des champs
	// inutiles/non mappés : on les ignore.
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("ParseJSON3Bytes: decode error: %w", err)
	}
	return raw, nil
}

// ParseJSON3Reader parse depuis un io.Reader (utile si on veut décoder depuis un flux)
func ParseJSON3Reader(r io.Reader) (rawJSON3, error) {
	var raw rawJSON3
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return raw, fmt.Errorf("ParseJSON3Reader: decode error: %w", err)
	}
	return raw, nil
}

// EventText assemble le texte d'un event. Les "\n" des segs sont conservés
// comme sauts de ligne ; les espaces multiples sont réduits.
func EventText(ev rawEvent) string {
	var b strings.Builder
	for _, seg := range ev.Segs {
		b.WriteString(strings.ReplaceAll(seg.Utf8, "\\n", "\n"))
	}
	lines := SplitToLines(b.String())
	out := lines[:0]
	for _, l := range lines {
		l = strings.TrimSpace(reMultiSpace.ReplaceAllString(l, " "))
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// entriesFromJSON3 : une réplique par event non vide, fin = début + durée.
func entriesFromJSON3(raw rawJSON3) []Entry {
	var out []Entry
	for _, ev := range raw.Events {
		if len(ev.Segs) == 0 || ev.IsNewlineOnly() {
			continue
		}
		text := EventText(ev)
		if text == "" {
			continue
		}
		var start, dur int64
		if ev.TStartMs != nil {
			start = *ev.TStartMs
		}
		if ev.DDurationMs != nil {
			dur = *ev.DDurationMs
		}
		out = append(out, Entry{
			Number: len(out) + 1,
			Start:  time.Duration(start) * time.Millisecond,
			End:    time.Duration(start+dur) * time.Millisecond,
			Text:   text,
		})
	}
	return out
}

// json3FromEntries fait l'opération inverse (utilisé pour la taille sérialisée).
func json3FromEntries(entries []Entry) rawJSON3 {
	raw := rawJSON3{WireMagic: "pb3", Events: make([]rawEvent, 0, len(entries))}
	for _, e := range entries {
		start := e.Start.Milliseconds()
		dur := e.Duration().Milliseconds()
		raw.Events = append(raw.Events, rawEvent{
			TStartMs:    &start,
			DDurationMs: &dur,
			Segs:        []rawSeg{{Utf8: e.Text}},
		})
	}
	return raw
}
