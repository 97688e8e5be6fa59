package subtitles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/asticode/go-astisub"
	"github.com/patrickprogramme/substats/pkg/model"
)

// readAstisub lit les formats pris en charge par go-astisub (ASS/SSA, WebVTT, TTML).
func readAstisub(data []byte, format model.Format) ([]Entry, error) {
	var (
		s   *astisub.Subtitles
		err error
	)
	switch format {
	case model.FormatASS, model.FormatSSA:
		// certains fichiers portent une couleur mal formée que le parseur refuse
		data = bytes.Replace(data, []byte(",&H00H202020,"), []byte(",&H00202020,"), 1)
		s, err = astisub.ReadFromSSA(bytes.NewReader(data))
	case model.FormatVTT:
		s, err = astisub.ReadFromWebVTT(bytes.NewReader(data))
	case model.FormatTTML:
		s, err = astisub.ReadFromTTML(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("readAstisub %s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", format, err)
	}
	return entriesFromAstisub(s), nil
}

func entriesFromAstisub(s *astisub.Subtitles) []Entry {
	if s == nil {
		return nil
	}
	out := make([]Entry, 0, len(s.Items))
	for i, item := range s.Items {
		if item == nil {
			continue
		}
		lines := make([]string, 0, len(item.Lines))
		for _, l := range item.Lines {
			lines = append(lines, lineText(l))
		}
		out = append(out, Entry{
			Number: i + 1,
			Start:  item.StartAt,
			End:    item.EndAt,
			Text:   strings.Join(lines, "\n"),
		})
	}
	return out
}

// lineText recolle les morceaux d'une ligne astisub. Les sauts de ligne SSA
// (\N, \n) encore présents deviennent de vrais sauts de ligne.
func lineText(l astisub.Line) string {
	parts := make([]string, 0, len(l.Items))
	for _, it := range l.Items {
		parts = append(parts, it.Text)
	}
	t := strings.Join(parts, " ")
	t = strings.ReplaceAll(t, `\N`, "\n")
	t = strings.ReplaceAll(t, `\n`, "\n")
	for strings.Contains(t, "  ") {
		t = strings.ReplaceAll(t, "  ", " ")
	}
	return strings.TrimSpace(t)
}

// writeAstisub sérialise via go-astisub (ASS/SSA, WebVTT, TTML).
func writeAstisub(entries []Entry, format model.Format) (string, error) {
	s := astisub.NewSubtitles()
	s.Metadata = &astisub.Metadata{}
	for _, e := range entries {
		item := &astisub.Item{StartAt: e.Start, EndAt: e.End}
		for _, l := range SplitToLines(e.Text) {
			item.Lines = append(item.Lines, astisub.Line{Items: []astisub.LineItem{{Text: l}}})
		}
		s.Items = append(s.Items, item)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case model.FormatASS, model.FormatSSA:
		err = s.WriteToSSA(&buf)
	case model.FormatVTT:
		err = s.WriteToWebVTT(&buf)
	case model.FormatTTML:
		err = s.WriteToTTML(&buf)
	default:
		return "", fmt.Errorf("writeAstisub %s: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return "", fmt.Errorf("write %s: %w", format, err)
	}
	return buf.String(), nil
}
